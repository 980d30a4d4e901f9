// Package bloom provides a probabilistic seen-set for item URLs using Bloom
// filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records keys that have been seen. It may report an unseen key as
// seen with the configured false positive rate; it never forgets a key.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether key was already in the filter and adds it.
func (f *Filter) Seen(key string) bool {
	return f.f.TestAndAddString(key)
}

// Contains reports whether key might be in the filter without adding it.
func (f *Filter) Contains(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
