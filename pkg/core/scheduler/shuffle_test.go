package scheduler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededShuffler_SameSeedSameOrder(t *testing.T) {
	a := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}
	b := append([]string(nil), a...)

	first, second := NewSeededShuffler(7), NewSeededShuffler(7)
	for range 5 {
		first.Shuffle(a)
		second.Shuffle(b)
		assert.Equal(t, a, b)
	}
}

func TestRun_ConcurrentRunsWithSameSeedMatch(t *testing.T) {
	employees, raw := ExampleDataset()
	cfg := ExampleConfig()

	expected, err := Run(employees, raw, cfg)
	require.NoError(t, err)

	const workers = 8
	results := make([]*Result, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Run(employees, raw, cfg)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, expected, results[i], "run %d", i)
	}
}
