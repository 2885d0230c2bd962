package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dd0wney/ridegraph/pkg/trip"
)

const sampleLog = `START_DATE,END_DATE,CATEGORY,START,STOP,MILES
1/1/2016 21:11,1/1/2016 21:17,Business,Fort Pierce,Fort Pierce,5.1
1/2/2016 1:25,1/2/2016 1:37,Business,Fort Pierce,West Palm Beach,8.2
1/5/2016 10:00,1/5/2016 10:30,Personal,Cary,Morrisville,3.0
1/6/2016 11:00,1/6/2016 11:10,Business,Unknown Location,Cary,2.0
1/6/2016 12:00,1/6/2016 12:10,Business,Cary,,2.0
`

// TestCSVSource_ReadsAndFilters verifies parsing, header skip, and
// endpoint filtering.
func TestCSVSource_ReadsAndFilters(t *testing.T) {
	src := writeLog(t, sampleLog)

	records, err := src.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}

	want := []trip.Record{
		{Origin: "Fort Pierce", Destination: "Fort Pierce", Category: trip.Business},
		{Origin: "Fort Pierce", Destination: "West Palm Beach", Category: trip.Business},
		{Origin: "Cary", Destination: "Morrisville", Category: trip.Personal},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %v, want %v", i, records[i], want[i])
		}
	}

	stats := src.Stats()
	if stats.RowsRead != 5 || stats.RowsKept != 3 || stats.RowsDropped != 2 {
		t.Errorf("stats = %+v, want read 5 / kept 3 / dropped 2", stats)
	}
}

// TestCSVSource_ShortRows verifies rows missing the location columns are
// dropped, not fatal.
func TestCSVSource_ShortRows(t *testing.T) {
	src := writeLog(t, "h1,h2,h3,h4,h5\na,b\nx,y,Business,From,To\n")

	records, err := src.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if src.Stats().RowsDropped != 1 {
		t.Errorf("RowsDropped = %d, want 1", src.Stats().RowsDropped)
	}
}

// TestCSVSource_MissingFile verifies open failures surface as errors.
func TestCSVSource_MissingFile(t *testing.T) {
	src, err := NewCSVSource("/nonexistent/rides.csv", DefaultOptions())
	if err != nil {
		t.Fatalf("NewCSVSource failed: %v", err)
	}
	if _, err := src.Records(); err == nil {
		t.Error("Records on missing file returned nil error")
	}
}

// TestNewCSVSource_Validation rejects bad option combinations.
func TestNewCSVSource_Validation(t *testing.T) {
	if _, err := NewCSVSource("", DefaultOptions()); err == nil {
		t.Error("empty path accepted")
	}

	opts := DefaultOptions()
	opts.DestColumn = opts.OriginColumn
	if _, err := NewCSVSource("rides.csv", opts); err == nil {
		t.Error("identical origin/dest columns accepted")
	}

	opts = DefaultOptions()
	opts.CategoryColumn = -1
	if _, err := NewCSVSource("rides.csv", opts); err == nil {
		t.Error("negative column index accepted")
	}
}

// TestCSVSource_CustomDelimiter verifies the delimiter option.
func TestCSVSource_CustomDelimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Comma = ';'
	src := writeLogWithOptions(t, strings.ReplaceAll(sampleLog, ",", ";"), opts)

	records, err := src.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func writeLog(t *testing.T, content string) *CSVSource {
	t.Helper()
	return writeLogWithOptions(t, content, DefaultOptions())
}

func writeLogWithOptions(t *testing.T, content string, opts Options) *CSVSource {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rides.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	src, err := NewCSVSource(path, opts)
	if err != nil {
		t.Fatalf("NewCSVSource failed: %v", err)
	}
	return src
}
