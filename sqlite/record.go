package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/papersect"
	"github.com/google/uuid"
)

// RecordService stores records and their sections under a run.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores rec and all of its sections in one transaction.
func (s *RecordService) CreateRecord(ctx context.Context, runID string, rec *papersect.Record) error {
	if runID == "" {
		return papersect.Errorf(papersect.EINVALID, "run ID required")
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO records (id, run_id, position, url, title, authors, publication_date,
			full_text_url, available, content_hash, tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, runID, rec.Position, rec.URL, rec.Title, rec.Authors, rec.PublicationDate,
		rec.FullTextURL, sqlBool(rec.Available), rec.ContentHash, rec.Tokens,
		timestamp(time.Now())); err != nil {
		return err
	}

	for i, sec := range rec.Sections {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sections (record_id, ordinal, name, found, text)
			VALUES (?, ?, ?, ?, ?)
		`, id, i, string(sec.Name), sqlBool(sec.Found), sec.Text); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter in emission order.
func (s *RecordService) FindRecords(ctx context.Context, filter papersect.RecordFilter) ([]*papersect.Record, error) {
	var query strings.Builder
	query.WriteString(`SELECT id, position, url, title, authors, publication_date,
		full_text_url, available, content_hash, tokens FROM records WHERE 1=1`)
	var args []any

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Available != nil {
		query.WriteString(" AND available = ?")
		args = append(args, sqlBool(*filter.Available))
	}

	query.WriteString(" ORDER BY position, created_at")
	clause, extra := limitClause(filter.Limit, filter.Offset)
	query.WriteString(clause)
	args = append(args, extra...)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	var records []*papersect.Record
	for rows.Next() {
		var id string
		var available int
		rec := &papersect.Record{}
		if err := rows.Scan(&id, &rec.Position, &rec.URL, &rec.Title, &rec.Authors,
			&rec.PublicationDate, &rec.FullTextURL, &available, &rec.ContentHash, &rec.Tokens); err != nil {
			return nil, err
		}
		rec.Available = available != 0
		ids = append(ids, id)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Release the single connection before loading sections.
	rows.Close()

	for i, rec := range records {
		sections, err := s.findSections(ctx, ids[i])
		if err != nil {
			return nil, err
		}
		rec.Sections = sections
	}
	return records, nil
}

func (s *RecordService) findSections(ctx context.Context, recordID string) (papersect.Sections, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, found, text FROM sections
		WHERE record_id = ?
		ORDER BY ordinal
	`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections papersect.Sections
	for rows.Next() {
		var name string
		var found int
		var sec papersect.Section
		if err := rows.Scan(&name, &found, &sec.Text); err != nil {
			return nil, err
		}
		sec.Name = papersect.SectionName(name)
		sec.Found = found != 0
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// SectionTally aggregates detected sections across the records of a run.
func (s *RecordService) SectionTally(ctx context.Context, runID string, names []papersect.SectionName) (*papersect.Tally, error) {
	tally := papersect.NewTally(names)

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(available), 0) FROM records WHERE run_id = ?
	`, runID).Scan(&tally.Records, &tally.Available); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name, COUNT(*) FROM sections s
		JOIN records r ON r.id = s.record_id
		WHERE r.run_id = ? AND s.found = 1
		GROUP BY s.name
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		tally.Set(papersect.SectionName(name), n)
	}
	return tally, rows.Err()
}

// Sink returns a RecordSink that stores records under runID.
func (s *RecordService) Sink(runID string) papersect.RecordSink {
	return &runSink{records: s, runID: runID}
}

type runSink struct {
	records *RecordService
	runID   string
}

func (s *runSink) WriteRecord(ctx context.Context, rec *papersect.Record) error {
	return s.records.CreateRecord(ctx, s.runID, rec)
}

// Close is a no-op; the database is closed by its owner.
func (s *runSink) Close() error { return nil }
