// Package graph builds the directed location graph from trip records.
//
// Locations are assigned dense integer indices after sorting names
// lexicographically, so the same record set always produces the same
// index assignment and the same adjacency structure.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dd0wney/ridegraph/pkg/trip"
)

// ErrIndexOutOfRange is returned when a location index falls outside [0, N).
var ErrIndexOutOfRange = errors.New("location index out of range")

// Graph is the adjacency view of a ride log. It is read-only after Build:
// analytics run concurrently over a Graph without synchronization.
type Graph struct {
	locations []string       // sorted unique location names, position = index
	index     map[string]int // name -> index
	adjacency [][]int        // adjacency[u] lists v once per recorded u->v trip
	edges     int
}

// Build derives the unique location set from both endpoints of every record,
// sorts it, and appends one directed edge per record. Parallel edges are
// kept; multiplicity matters to the route aggregator even though BFS visits
// each node once. An empty record slice yields an empty graph.
func Build(records []trip.Record) *Graph {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.Origin] = struct{}{}
		seen[r.Destination] = struct{}{}
	}

	locations := make([]string, 0, len(seen))
	for name := range seen {
		locations = append(locations, name)
	}
	sort.Strings(locations)

	index := make(map[string]int, len(locations))
	for i, name := range locations {
		index[name] = i
	}

	adjacency := make([][]int, len(locations))
	edges := 0
	for _, r := range records {
		u, okU := index[r.Origin]
		v, okV := index[r.Destination]
		if !okU || !okV {
			// Cannot happen: the index is built from the same records.
			continue
		}
		adjacency[u] = append(adjacency[u], v)
		edges++
	}

	return &Graph{
		locations: locations,
		index:     index,
		adjacency: adjacency,
		edges:     edges,
	}
}

// NodeCount returns the number of unique locations.
func (g *Graph) NodeCount() int {
	return len(g.locations)
}

// EdgeCount returns the number of directed edges, counting multiplicity.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Locations returns the sorted location names. The slice is shared; callers
// must not modify it.
func (g *Graph) Locations() []string {
	return g.locations
}

// IndexOf returns the index for a location name.
func (g *Graph) IndexOf(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// NameOf returns the location name for an index.
func (g *Graph) NameOf(index int) (string, error) {
	if err := g.CheckIndex(index); err != nil {
		return "", err
	}
	return g.locations[index], nil
}

// Neighbors returns the destination indices reachable by one hop from index,
// one entry per recorded trip. The slice is shared; callers must not modify it.
func (g *Graph) Neighbors(index int) ([]int, error) {
	if err := g.CheckIndex(index); err != nil {
		return nil, err
	}
	return g.adjacency[index], nil
}

// CheckIndex validates that index lies within [0, NodeCount).
func (g *Graph) CheckIndex(index int) error {
	if index < 0 || index >= len(g.locations) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(g.locations))
	}
	return nil
}

// PathNames maps a path of indices to location names, for presentation.
func (g *Graph) PathNames(path []int) ([]string, error) {
	names := make([]string, 0, len(path))
	for _, idx := range path {
		name, err := g.NameOf(idx)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
