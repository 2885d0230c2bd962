package analytics

import "math"

// Stats aggregates graph distances over all reachable source/destination
// pairs. Self-distances of 0 are included; unreachable pairs are not.
type Stats struct {
	Mean   float64 // arithmetic mean of finite distances
	StdDev float64 // population standard deviation (divide by count)
	Max    int     // largest finite distance observed
	Finite int     // number of finite entries aggregated
}

// DistanceStats folds every finite entry of the per-source distance tables
// into mean, population standard deviation, and maximum. With zero finite
// entries (only possible for an empty graph) all fields are zero; the
// function never divides by zero.
func DistanceStats(tables [][]int) Stats {
	var (
		sum   float64
		count int
		max   int
	)
	for _, table := range tables {
		for _, d := range table {
			if d == Unreachable {
				continue
			}
			sum += float64(d)
			count++
			if d > max {
				max = d
			}
		}
	}

	if count == 0 {
		return Stats{}
	}

	mean := sum / float64(count)

	var sq float64
	for _, table := range tables {
		for _, d := range table {
			if d == Unreachable {
				continue
			}
			diff := float64(d) - mean
			sq += diff * diff
		}
	}

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(sq / float64(count)),
		Max:    max,
		Finite: count,
	}
}
