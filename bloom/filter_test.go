package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/papersect/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("https://pubmed.ncbi.nlm.nih.gov/1/"), "first sighting")
	assert.True(t, f.Seen("https://pubmed.ncbi.nlm.nih.gov/1/"), "second sighting")
	assert.False(t, f.Seen("https://pubmed.ncbi.nlm.nih.gov/2/"))
}

func TestFilter_Contains_does_not_add(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Contains("https://pubmed.ncbi.nlm.nih.gov/1/"))
	assert.False(t, f.Contains("https://pubmed.ncbi.nlm.nih.gov/1/"))

	f.Seen("https://pubmed.ncbi.nlm.nih.gov/1/")

	assert.True(t, f.Contains("https://pubmed.ncbi.nlm.nih.gov/1/"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Seen("https://pubmed.ncbi.nlm.nih.gov/1/")
	f.Seen("https://pubmed.ncbi.nlm.nih.gov/2/")
	f.Seen("https://pubmed.ncbi.nlm.nih.gov/3/")
	f.Seen("https://pubmed.ncbi.nlm.nih.gov/3/")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Seen(fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%d/", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Contains(fmt.Sprintf("https://www.ncbi.nlm.nih.gov/pmc/articles/PMC%d/", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
