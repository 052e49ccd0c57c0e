package hypergraph

import (
	"math"
	"slices"
	"testing"
)

func TestFootprint(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		same bool
	}{
		{"same order", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"permuted", []int{3, 1, 2}, []int{2, 3, 1}, true},
		{"different set", []int{1, 2}, []int{1, 3}, false},
		{"multiplicity matters", []int{1, 1, 2}, []int{1, 2, 2}, false},
		{"subset", []int{1, 2}, []int{1, 2, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Footprint(tt.a) == Footprint(tt.b)
			if got != tt.same {
				t.Errorf("Footprint(%v) == Footprint(%v) is %v, want %v", tt.a, tt.b, got, tt.same)
			}
		})
	}
}

func TestFootprintDoesNotMutate(t *testing.T) {
	members := []int{3, 1, 2}
	Footprint(members)
	if !slices.Equal(members, []int{3, 1, 2}) {
		t.Errorf("Footprint reordered its input: %v", members)
	}
}

func TestDuplicateEdges(t *testing.T) {
	g := New(false, false)
	for id := 1; id <= 4; id++ {
		_ = g.AddNode(id, 0)
	}
	_ = g.AddEdge(9, []int{1, 2}, 0)
	_ = g.AddEdge(2, []int{2, 1}, 0)
	_ = g.AddEdge(5, []int{3, 4}, 0)
	_ = g.AddEdge(0, []int{4, 3}, 0)
	_ = g.AddEdge(7, []int{1, 2}, 0)
	_ = g.AddEdge(1, []int{1, 2, 3}, 0)

	got := g.DuplicateEdges()
	want := [][]int{{0, 5}, {2, 7, 9}}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Errorf("DuplicateEdges() = %v, want %v", got, want)
	}
}

func TestDuplicateEdgesExtremeIDs(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(math.MinInt, []int{1}, 0)
	_ = g.AddEdge(10, []int{1}, 0)
	_ = g.AddEdge(5, []int{2}, 0)
	_ = g.AddEdge(math.MaxInt, []int{2}, 0)

	got := g.DuplicateEdges()
	want := [][]int{{math.MinInt, 10}, {5, math.MaxInt}}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Errorf("DuplicateEdges() = %v, want %v", got, want)
	}
}

func TestDuplicateEdgesNone(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(0, []int{1}, 0)
	_ = g.AddEdge(1, []int{1, 2}, 0)

	if got := g.DuplicateEdges(); got != nil {
		t.Errorf("DuplicateEdges() = %v, want nil", got)
	}
}
