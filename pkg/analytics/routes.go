// Package analytics computes descriptive statistics over a ride log and its
// location graph: frequent direct routes, per-category hubs, shortest hop
// paths, and aggregate distance statistics. Every function here is a pure
// function of its inputs.
package analytics

import (
	"sort"

	"github.com/dd0wney/ridegraph/pkg/trip"
)

// Route is a directed origin/destination pair.
type Route struct {
	Origin      string
	Destination string
}

// RouteCount pairs a route with the number of rides recorded on it.
type RouteCount struct {
	Route Route
	Count int
}

// TopRoutes returns the k most frequent direct routes, sorted by descending
// count. Equal counts are ordered by ascending (origin, destination) so the
// result is stable across runs. Fewer than k distinct routes returns all of
// them; k <= 0 returns an empty slice.
func TopRoutes(records []trip.Record, k int) []RouteCount {
	if k <= 0 {
		return []RouteCount{}
	}

	counts := make(map[Route]int, len(records))
	for _, r := range records {
		counts[Route{Origin: r.Origin, Destination: r.Destination}]++
	}

	ranked := make([]RouteCount, 0, len(counts))
	for route, count := range counts {
		ranked = append(ranked, RouteCount{Route: route, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		if ranked[i].Route.Origin != ranked[j].Route.Origin {
			return ranked[i].Route.Origin < ranked[j].Route.Origin
		}
		return ranked[i].Route.Destination < ranked[j].Route.Destination
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
