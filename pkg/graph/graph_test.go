package graph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dd0wney/ridegraph/pkg/trip"
)

func sampleRecords() []trip.Record {
	return []trip.Record{
		{Origin: "A", Destination: "B", Category: trip.Personal},
		{Origin: "A", Destination: "B", Category: trip.Personal},
		{Origin: "B", Destination: "C", Category: trip.Business},
		{Origin: "C", Destination: "D", Category: trip.Business},
	}
}

// TestBuild_UniqueLocations verifies the location set is derived from both
// endpoints and sorted.
func TestBuild_UniqueLocations(t *testing.T) {
	g := Build(sampleRecords())

	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(g.Locations(), want) {
		t.Errorf("Locations() = %v, want %v", g.Locations(), want)
	}
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", g.NodeCount())
	}
}

// TestBuild_ParallelEdges verifies duplicate trips keep their multiplicity.
func TestBuild_ParallelEdges(t *testing.T) {
	g := Build(sampleRecords())

	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}

	a, ok := g.IndexOf("A")
	if !ok {
		t.Fatal("IndexOf(A) not found")
	}
	b, _ := g.IndexOf("B")

	neighbors, err := g.Neighbors(a)
	if err != nil {
		t.Fatalf("Neighbors failed: %v", err)
	}
	if !reflect.DeepEqual(neighbors, []int{b, b}) {
		t.Errorf("Neighbors(A) = %v, want two edges to %d", neighbors, b)
	}
}

// TestBuild_IndexIsSortedAndDense verifies indices follow lexicographic
// name order and cover [0, N).
func TestBuild_IndexIsSortedAndDense(t *testing.T) {
	g := Build(sampleRecords())

	for i, name := range g.Locations() {
		idx, ok := g.IndexOf(name)
		if !ok || idx != i {
			t.Errorf("IndexOf(%q) = (%d, %v), want (%d, true)", name, idx, ok, i)
		}
		got, err := g.NameOf(i)
		if err != nil || got != name {
			t.Errorf("NameOf(%d) = (%q, %v), want %q", i, got, err, name)
		}
	}
}

// TestBuild_Empty verifies an empty record slice yields an empty graph, not
// an error.
func TestBuild_Empty(t *testing.T) {
	g := Build(nil)

	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty build: nodes=%d edges=%d, want 0/0", g.NodeCount(), g.EdgeCount())
	}
	if len(g.Locations()) != 0 {
		t.Errorf("Locations() = %v, want empty", g.Locations())
	}
}

// TestBuild_Deterministic verifies two builds over the same input are
// identical (no hidden state, no map-order dependence).
func TestBuild_Deterministic(t *testing.T) {
	g1 := Build(sampleRecords())
	g2 := Build(sampleRecords())

	if !reflect.DeepEqual(g1.Locations(), g2.Locations()) {
		t.Errorf("locations differ between runs: %v vs %v", g1.Locations(), g2.Locations())
	}
	for i := 0; i < g1.NodeCount(); i++ {
		n1, _ := g1.Neighbors(i)
		n2, _ := g2.Neighbors(i)
		if !reflect.DeepEqual(n1, n2) {
			t.Errorf("adjacency row %d differs: %v vs %v", i, n1, n2)
		}
	}
}

// TestCheckIndex_OutOfRange verifies invalid indices are reported as errors.
func TestCheckIndex_OutOfRange(t *testing.T) {
	g := Build(sampleRecords())

	for _, idx := range []int{-1, g.NodeCount(), g.NodeCount() + 10} {
		if err := g.CheckIndex(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("CheckIndex(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
		if _, err := g.Neighbors(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Neighbors(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
		if _, err := g.NameOf(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("NameOf(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

// TestPathNames maps index paths back to names.
func TestPathNames(t *testing.T) {
	g := Build(sampleRecords())

	a, _ := g.IndexOf("A")
	b, _ := g.IndexOf("B")
	names, err := g.PathNames([]int{a, b})
	if err != nil {
		t.Fatalf("PathNames failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"A", "B"}) {
		t.Errorf("PathNames = %v, want [A B]", names)
	}

	if _, err := g.PathNames([]int{a, 99}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("PathNames with bad index = %v, want ErrIndexOutOfRange", err)
	}
}
