package analytics

import "github.com/dd0wney/ridegraph/pkg/trip"

// Hubs holds the most visited location per trip category. A hub is the
// location with the highest endpoint count (origin or destination) among
// rides of that category. Empty string means the category had no rides.
type Hubs struct {
	Personal string
	Business string
}

// PopularHubs tallies endpoint appearances per category and returns the
// maximal location for each. Ties are broken toward the lexicographically
// smallest name so the result does not depend on map iteration order.
func PopularHubs(records []trip.Record) Hubs {
	tallies := make(map[trip.Category]map[string]int, 2)
	for _, c := range trip.Categories() {
		tallies[c] = make(map[string]int)
	}

	for _, r := range records {
		tally := tallies[r.Category]
		tally[r.Origin]++
		tally[r.Destination]++
	}

	return Hubs{
		Personal: maxLocation(tallies[trip.Personal]),
		Business: maxLocation(tallies[trip.Business]),
	}
}

// maxLocation picks the location with the highest count, preferring the
// lexicographically smaller name on equal counts.
func maxLocation(tally map[string]int) string {
	best := ""
	bestCount := 0
	for loc, count := range tally {
		if count > bestCount || (count == bestCount && bestCount > 0 && loc < best) {
			best = loc
			bestCount = count
		}
	}
	return best
}
