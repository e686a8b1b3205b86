package dijkstra

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/spath/core"
)

// FromEach runs ShortestPaths once per source, concurrently, over the same
// read-only adj. results[i] belongs to sources[i].
//
// If any run fails, the error of the lowest failing index is returned and
// the results are discarded. OnSettle hooks passed in opts are shared by all
// runs and must be safe for concurrent use.
func FromEach(adj *core.Adjacency, sources []int, opts ...Option) ([]*Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	results := make([]*Result, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	wg.Add(len(sources))
	for i, src := range sources {
		go func(i, src int) {
			defer wg.Done()
			results[i], errs[i] = ShortestPaths(adj, src, opts...)
		}(i, src)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("dijkstra: source #%d (%d): %w", i, sources[i], err)
		}
	}

	return results, nil
}
