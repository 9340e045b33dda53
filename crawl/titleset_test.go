package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/blogcrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTitleSet_Add_records_each_title_once(t *testing.T) {
	t.Parallel()

	s := crawl.NewTitleSet()

	assert.True(t, s.Add("Understanding Systems"), "first add should report new")
	assert.False(t, s.Add("Understanding Systems"), "second add should report already present")
	assert.Equal(t, 1, s.Len())
}

func TestTitleSet_Seen_reflects_added_titles(t *testing.T) {
	t.Parallel()

	s := crawl.NewTitleSet()

	assert.False(t, s.Seen("Understanding Systems"))

	s.Add("Understanding Systems")

	assert.True(t, s.Seen("Understanding Systems"))
	assert.False(t, s.Seen("A Different Post"), "unrelated title should not be seen")
}

func TestTitleSet_concurrent_access(t *testing.T) {
	t.Parallel()

	s := crawl.NewTitleSet()

	const numGoroutines = 10
	const numTitlesPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numTitlesPerGoroutine; j++ {
				s.Add(fmt.Sprintf("Post %d-%d", id, j))
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, numGoroutines*numTitlesPerGoroutine, s.Len())
}
