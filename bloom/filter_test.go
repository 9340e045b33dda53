package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/blogcrawl/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Link not yet added should return false
	assert.False(t, f.Test("https://example.com/blog/post-1"))

	// Add link
	f.Add("https://example.com/blog/post-1")

	// Now it should return true
	assert.True(t, f.Test("https://example.com/blog/post-1"))

	// Different link should still return false
	assert.False(t, f.Test("https://example.com/blog/post-2"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.EstimatedCount())

	// Add some links
	f.Add("https://example.com/blog/post-1")
	f.Add("https://example.com/blog/post-2")
	f.Add("https://example.com/blog/post-3")

	// Estimated count should be approximately 3
	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	link := "https://example.com/blog/post-1"

	f.Add(link)
	countAfterFirst := f.EstimatedCount()

	// Adding the same link multiple times should not change the filter
	f.Add(link)
	f.Add(link)
	f.Add(link)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(link))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	// Add 10k links
	for i := range numItems {
		f.Add(fmt.Sprintf("https://example.com/added/%d", i))
	}

	// Test with 10k links that were NOT added
	falsePositives := 0
	for i := range testProbes {
		link := fmt.Sprintf("https://example.com/notadded/%d", i)
		if f.Test(link) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
