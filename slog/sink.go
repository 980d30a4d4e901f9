package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papersect"
)

// Ensure LoggingSink implements papersect.RecordSink.
var _ papersect.RecordSink = (*LoggingSink)(nil)

// LoggingSink wraps a RecordSink with logging of each write.
type LoggingSink struct {
	next   papersect.RecordSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next papersect.RecordSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// WriteRecord delegates to the wrapped sink and logs the record.
func (s *LoggingSink) WriteRecord(ctx context.Context, rec *papersect.Record) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("write record",
				"position", rec.Position,
				"url", rec.URL,
				"err", err,
			)
			return
		}
		s.logger.Debug("write record",
			"position", rec.Position,
			"url", rec.URL,
			"available", rec.Available,
			"found", rec.Sections.CountFound(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.WriteRecord(ctx, rec)
}

// Close delegates to the wrapped sink.
func (s *LoggingSink) Close() (err error) {
	defer func() {
		if err != nil {
			s.logger.Error("close sink", "err", err)
		}
	}()
	return s.next.Close()
}
