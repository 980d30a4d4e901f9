package sqlite

import (
	"fmt"
	"time"
)

// timestamp is the stored form of every time column.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", column, err)
	}
	return t, nil
}

// limitClause renders LIMIT/OFFSET for non-positive-means-unset values.
// SQLite rejects OFFSET without LIMIT, hence LIMIT -1.
func limitClause(limit, offset int) (string, []any) {
	switch {
	case limit > 0 && offset > 0:
		return " LIMIT ? OFFSET ?", []any{limit, offset}
	case limit > 0:
		return " LIMIT ?", []any{limit}
	case offset > 0:
		return " LIMIT -1 OFFSET ?", []any{offset}
	}
	return "", nil
}

// sqlBool maps b to SQLite's 0/1.
func sqlBool(b bool) int {
	if b {
		return 1
	}
	return 0
}
