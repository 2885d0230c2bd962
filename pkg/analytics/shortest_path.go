package analytics

import (
	"container/list"

	"github.com/dd0wney/ridegraph/pkg/graph"
)

// Unreachable marks a node with no path from the BFS source.
const Unreachable = -1

// ShortestPath finds a shortest path by hop count from start to end using
// breadth-first search over the directed adjacency. All edges weigh 1.
// Returns the index sequence from start to end inclusive, or nil when end
// is unreachable. An out-of-range index is a caller bug and returns
// graph.ErrIndexOutOfRange.
func ShortestPath(g *graph.Graph, start, end int) ([]int, error) {
	if err := g.CheckIndex(start); err != nil {
		return nil, err
	}
	if err := g.CheckIndex(end); err != nil {
		return nil, err
	}
	if start == end {
		return []int{start}, nil
	}

	n := g.NodeCount()
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
		prev[i] = Unreachable
	}
	dist[start] = 0

	queue := list.New()
	queue.PushBack(start)

	for queue.Len() > 0 {
		u := queue.Remove(queue.Front()).(int)
		if u == end {
			break
		}
		neighbors, _ := g.Neighbors(u)
		for _, v := range neighbors {
			if dist[v] == Unreachable {
				dist[v] = dist[u] + 1
				prev[v] = u
				queue.PushBack(v)
			}
		}
	}

	if dist[end] == Unreachable {
		return nil, nil // no path
	}

	// Walk predecessors from end back to start, then reverse.
	path := make([]int, 0, dist[end]+1)
	for node := end; node != Unreachable; node = prev[node] {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Distances runs a full BFS from source and returns the hop count to every
// node, indexed by location index. Unreachable nodes hold Unreachable.
// The table always reports distance 0 for the source itself.
func Distances(g *graph.Graph, source int) ([]int, error) {
	if err := g.CheckIndex(source); err != nil {
		return nil, err
	}

	dist := make([]int, g.NodeCount())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		u := queue.Remove(queue.Front()).(int)
		neighbors, _ := g.Neighbors(u)
		for _, v := range neighbors {
			if dist[v] == Unreachable {
				dist[v] = dist[u] + 1
				queue.PushBack(v)
			}
		}
	}

	return dist, nil
}

// AllDistances computes the full distance table, one BFS per source node.
// Row i is Distances(g, i). See pkg/parallel for the concurrent driver;
// both produce identical tables.
func AllDistances(g *graph.Graph) [][]int {
	tables := make([][]int, g.NodeCount())
	for i := range tables {
		tables[i], _ = Distances(g, i) // index i is always valid here
	}
	return tables
}
