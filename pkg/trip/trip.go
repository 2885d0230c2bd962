// Package trip defines the ride-log record model shared by ingestion and
// analytics.
package trip

import "fmt"

// Category classifies a ride as business or personal travel.
type Category uint8

const (
	Business Category = iota
	Personal
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case Business:
		return "Business"
	case Personal:
		return "Personal"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a string to a Category.
// Anything that is not "Business" is treated as Personal, matching the
// dataset contract where the category column is free-form.
func ParseCategory(s string) Category {
	if s == "Business" {
		return Business
	}
	return Personal
}

// Categories lists all valid categories in a fixed order.
func Categories() []Category {
	return []Category{Business, Personal}
}

// Record is a single ride: where it started, where it ended, and whether
// it was a business or personal trip. Records are immutable values.
type Record struct {
	Origin      string
	Destination string
	Category    Category
}

// String implements fmt.Stringer for log output.
func (r Record) String() string {
	return fmt.Sprintf("%s -> %s (%s)", r.Origin, r.Destination, r.Category)
}

// Source supplies the ordered sequence of trip records to analyze.
// Implementations own filtering; records returned here are ready for the
// graph builder (no empty or placeholder endpoints).
type Source interface {
	Records() ([]Record, error)
}

// SliceSource adapts an in-memory slice to the Source interface.
// Useful for tests and for callers that already hold records.
type SliceSource []Record

// Records returns the underlying slice.
func (s SliceSource) Records() ([]Record, error) {
	return s, nil
}
