package mock

import (
	"context"

	"github.com/fwojciec/papersect"
)

var _ papersect.ItemFrontier = (*ItemFrontier)(nil)

// ItemFrontier is a mock implementation of papersect.ItemFrontier.
type ItemFrontier struct {
	PushFn func(item papersect.ItemReference) bool
	PopFn  func() (papersect.ItemReference, bool)
	LenFn  func() int
}

func (f *ItemFrontier) Push(item papersect.ItemReference) bool {
	return f.PushFn(item)
}

func (f *ItemFrontier) Pop() (papersect.ItemReference, bool) {
	return f.PopFn()
}

func (f *ItemFrontier) Len() int {
	return f.LenFn()
}

var _ papersect.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of papersect.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
