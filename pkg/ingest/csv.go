// Package ingest reads ride logs from delimited text files and produces
// filtered trip records for the analytics pipeline.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/ridegraph/pkg/trip"
)

// unknownLocation is the dataset's placeholder for rides without a resolved
// endpoint. Rows carrying it are dropped, as are rows with empty endpoints.
const unknownLocation = "Unknown Location"

var validate = validator.New()

// Options configures how the ride-log file is parsed. The defaults match the
// published dataset: comma-delimited, one header row, category in column 2,
// origin in column 3, destination in column 4.
type Options struct {
	Comma          rune `validate:"required"`
	SkipHeader     bool
	CategoryColumn int `validate:"gte=0"`
	OriginColumn   int `validate:"gte=0"`
	DestColumn     int `validate:"gte=0,nefield=OriginColumn"`
}

// DefaultOptions returns the column layout of the stock ride-log export.
func DefaultOptions() Options {
	return Options{
		Comma:          ',',
		SkipHeader:     true,
		CategoryColumn: 2,
		OriginColumn:   3,
		DestColumn:     4,
	}
}

// Stats reports what happened during one read of the source.
type Stats struct {
	RowsRead    int // data rows seen (header excluded)
	RowsKept    int
	RowsDropped int // filtered: short rows, empty or unknown endpoints
}

// CSVSource reads trip records from a delimited file. It implements
// trip.Source.
type CSVSource struct {
	path  string
	opts  Options
	stats Stats
}

// NewCSVSource validates the options and returns a source for path.
func NewCSVSource(path string, opts Options) (*CSVSource, error) {
	if path == "" {
		return nil, fmt.Errorf("ingest: dataset path is empty")
	}
	if err := validate.Struct(&opts); err != nil {
		return nil, fmt.Errorf("ingest: invalid options: %w", err)
	}
	if opts.DestColumn == opts.CategoryColumn || opts.OriginColumn == opts.CategoryColumn {
		return nil, fmt.Errorf("ingest: column indices must be distinct")
	}
	return &CSVSource{path: path, opts: opts}, nil
}

// Records reads the whole file, dropping rows whose endpoints are empty or
// the unknown-location placeholder. Row order is preserved.
func (s *CSVSource) Records() ([]trip.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", s.path, err)
	}
	defer file.Close()

	records, stats, err := s.read(file)
	if err != nil {
		return nil, err
	}
	s.stats = stats
	return records, nil
}

// Stats returns counters from the most recent Records call.
func (s *CSVSource) Stats() Stats {
	return s.stats
}

func (s *CSVSource) read(r io.Reader) ([]trip.Record, Stats, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.opts.Comma
	reader.FieldsPerRecord = -1 // ride logs have ragged rows

	var (
		records []trip.Record
		stats   Stats
		first   = true
	)

	maxCol := s.opts.CategoryColumn
	if s.opts.OriginColumn > maxCol {
		maxCol = s.opts.OriginColumn
	}
	if s.opts.DestColumn > maxCol {
		maxCol = s.opts.DestColumn
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("ingest: read %s: %w", s.path, err)
		}

		if first && s.opts.SkipHeader {
			first = false
			continue
		}
		first = false
		stats.RowsRead++

		if len(row) <= maxCol {
			stats.RowsDropped++
			continue
		}

		origin := row[s.opts.OriginColumn]
		dest := row[s.opts.DestColumn]
		if origin == "" || dest == "" || origin == unknownLocation || dest == unknownLocation {
			stats.RowsDropped++
			continue
		}

		records = append(records, trip.Record{
			Origin:      origin,
			Destination: dest,
			Category:    trip.ParseCategory(row[s.opts.CategoryColumn]),
		})
		stats.RowsKept++
	}

	return records, stats, nil
}
