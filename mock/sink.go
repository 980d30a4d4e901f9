package mock

import (
	"context"

	"github.com/fwojciec/papersect"
)

var _ papersect.RecordSink = (*RecordSink)(nil)

// RecordSink is a mock implementation of papersect.RecordSink.
type RecordSink struct {
	WriteRecordFn func(ctx context.Context, rec *papersect.Record) error
	CloseFn       func() error
}

func (s *RecordSink) WriteRecord(ctx context.Context, rec *papersect.Record) error {
	return s.WriteRecordFn(ctx, rec)
}

func (s *RecordSink) Close() error {
	return s.CloseFn()
}
