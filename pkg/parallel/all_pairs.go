package parallel

import (
	"sync"

	"github.com/dd0wney/ridegraph/pkg/analytics"
	"github.com/dd0wney/ridegraph/pkg/graph"
)

// AllDistances computes the all-pairs BFS distance table with one task per
// source node. Row i of the result is analytics.Distances(g, i); workers
// never share mutable state, so the table matches the sequential driver
// byte for byte.
func AllDistances(g *graph.Graph, workers int) [][]int {
	n := g.NodeCount()
	tables := make([][]int, n)
	if n == 0 {
		return tables
	}

	pool := NewWorkerPool(workers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		source := i
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			tables[source], _ = analytics.Distances(g, source)
		})
	}
	wg.Wait()
	pool.Close()

	return tables
}
