package hypergraph

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		nodes, edges bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{false, true},
	}
	for _, tt := range tests {
		g := New(tt.nodes, tt.edges)
		if g.WeightedNodes != tt.nodes {
			t.Errorf("WeightedNodes = %v, want %v", g.WeightedNodes, tt.nodes)
		}
		if g.WeightedEdges != tt.edges {
			t.Errorf("WeightedEdges = %v, want %v", g.WeightedEdges, tt.edges)
		}
		if g.NodeCount() != 0 || g.EdgeCount() != 0 {
			t.Errorf("new graph not empty: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
		}
	}
}

func TestAddNode(t *testing.T) {
	g := New(false, false)
	if err := g.AddNode(0, 0); err != nil {
		t.Fatalf("AddNode(0) error: %v", err)
	}
	if err := g.AddNode(1, 7); err != nil {
		t.Fatalf("AddNode(1) error: %v", err)
	}

	n, ok := g.Node(1)
	if !ok {
		t.Fatal("Node(1) not found")
	}
	if n.Weight != 7 {
		t.Errorf("Weight = %d, want 7", n.Weight)
	}
}

func TestAddNodeDuplicate(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(0, 1)

	err := g.AddNode(0, 2)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("AddNode duplicate error = %v, want ErrDuplicateID", err)
	}
	if n, _ := g.Node(0); n.Weight != 1 {
		t.Errorf("duplicate AddNode overwrote weight: got %d, want 1", n.Weight)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", g.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)

	members := []int{2, 1, 2}
	if err := g.AddEdge(0, members, 4); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}
	members[0] = 99

	e, ok := g.Edge(0)
	if !ok {
		t.Fatal("Edge(0) not found")
	}
	if !slices.Equal(e.Members, []int{2, 1, 2}) {
		t.Errorf("Members = %v, want [2 1 2]", e.Members)
	}
	if e.Weight != 4 {
		t.Errorf("Weight = %d, want 4", e.Weight)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		members []int
		want    error
		msg     string
	}{
		{"empty members", 5, nil, ErrEmptyMembers, "edge 5"},
		{"unknown node", 5, []int{1, 7, 8}, ErrUnknownNode, "unknown node 7"},
		{"duplicate id", 0, []int{1, 2}, ErrDuplicateID, "edge 0"},
		{"empty before duplicate", 0, []int{}, ErrEmptyMembers, "edge 0"},
		{"unknown before duplicate", 0, []int{3}, ErrUnknownNode, "unknown node 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(false, false)
			_ = g.AddNode(1, 0)
			_ = g.AddNode(2, 0)
			_ = g.AddEdge(0, []int{1, 2}, 1)

			err := g.AddEdge(tt.id, tt.members, 0)
			if !errors.Is(err, tt.want) {
				t.Fatalf("AddEdge error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err, tt.msg)
			}
			if g.EdgeCount() != 1 {
				t.Errorf("EdgeCount = %d, want 1 (no partial insert)", g.EdgeCount())
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() after failed AddEdge: %v", err)
			}
		})
	}
}

func TestAddEdgeAcceptsStructuralDuplicates(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)

	if err := g.AddEdge(0, []int{1, 2}, 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, []int{2, 1}, 0); err != nil {
		t.Fatalf("structurally identical edge rejected: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestRemoveNode(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(0, 0)
	if err := g.RemoveNode(0); err != nil {
		t.Fatalf("RemoveNode error: %v", err)
	}
	if _, ok := g.Node(0); ok {
		t.Error("node still present after RemoveNode")
	}

	if err := g.RemoveNode(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveNode missing error = %v, want ErrNotFound", err)
	}
}

func TestRemoveNodeInUse(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(4, []int{1, 2}, 1)
	_ = g.AddEdge(3, []int{1}, 1)

	err := g.RemoveNode(1)
	if !errors.Is(err, ErrEdgeInUse) {
		t.Fatalf("RemoveNode error = %v, want ErrEdgeInUse", err)
	}
	if !strings.Contains(err.Error(), "referenced by edge 3") {
		t.Errorf("error %q should name lowest referencing edge", err)
	}

	_ = g.RemoveEdge(3)
	if err := g.RemoveNode(1); !errors.Is(err, ErrEdgeInUse) {
		t.Fatalf("RemoveNode with one remaining edge = %v, want ErrEdgeInUse", err)
	}

	_ = g.RemoveEdge(4)
	if err := g.RemoveNode(1); err != nil {
		t.Errorf("RemoveNode after removing referencing edges: %v", err)
	}
	if err := g.RemoveNode(2); err != nil {
		t.Errorf("RemoveNode(2): %v", err)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(0, []int{1, 2}, 0)

	if err := g.RemoveEdge(0); err != nil {
		t.Fatalf("RemoveEdge error: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
	if err := g.RemoveEdge(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveEdge missing error = %v, want ErrNotFound", err)
	}
}

func TestOrderedQueries(t *testing.T) {
	g := New(false, false)
	for _, id := range []int{5, 3, 9, 1} {
		_ = g.AddNode(id, id*10)
	}
	_ = g.AddEdge(7, []int{9, 1}, 0)
	_ = g.AddEdge(2, []int{3}, 0)

	if got := g.NodeIDs(); !slices.Equal(got, []int{1, 3, 5, 9}) {
		t.Errorf("NodeIDs() = %v, want [1 3 5 9]", got)
	}
	if got := g.EdgeIDs(); !slices.Equal(got, []int{2, 7}) {
		t.Errorf("EdgeIDs() = %v, want [2 7]", got)
	}

	nodes := g.Nodes()
	if nodes[0].ID != 1 || nodes[3].Weight != 90 {
		t.Errorf("Nodes() = %v, want ascending by id", nodes)
	}

	edges := g.Edges()
	edges[1].Members[0] = 42
	if e, _ := g.Edge(7); e.Members[0] != 9 {
		t.Error("Edges() returned members aliased to graph storage")
	}
}

func TestIncidentEdges(t *testing.T) {
	g := New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(8, []int{1, 2}, 0)
	_ = g.AddEdge(3, []int{1, 1}, 0)

	if got := g.IncidentEdges(1); !slices.Equal(got, []int{3, 8}) {
		t.Errorf("IncidentEdges(1) = %v, want [3 8]", got)
	}
	if g.Degree(1) != 2 {
		t.Errorf("Degree(1) = %d, want 2", g.Degree(1))
	}
	if got := g.IncidentEdges(42); got != nil {
		t.Errorf("IncidentEdges(missing) = %v, want nil", got)
	}

	_ = g.RemoveEdge(3)
	if got := g.IncidentEdges(1); !slices.Equal(got, []int{8}) {
		t.Errorf("IncidentEdges(1) after remove = %v, want [8]", got)
	}
}

func TestWeightFlagsDoNotAffectValidation(t *testing.T) {
	g := New(true, true)
	_ = g.AddNode(1, 0)
	if err := g.AddEdge(0, []int{1}, 0); err != nil {
		t.Errorf("zero weights rejected with weighting enabled: %v", err)
	}
	g.WeightedNodes = false
	if err := g.AddEdge(0, []int{1}, 5); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("AddEdge after toggling flags = %v, want ErrDuplicateID", err)
	}
}

// TestRandomOperations drives random mutation sequences and checks every
// store invariant after each step.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	g := New(false, false)

	for step := 0; step < 5000; step++ {
		beforeEdges := g.EdgeCount()
		switch op := rng.IntN(4); op {
		case 0:
			_ = g.AddNode(rng.IntN(40), rng.IntN(10))
		case 1:
			members := make([]int, rng.IntN(4))
			for i := range members {
				members[i] = rng.IntN(45)
			}
			err := g.AddEdge(rng.IntN(40), members, rng.IntN(10))
			if errors.Is(err, ErrUnknownNode) && g.EdgeCount() != beforeEdges {
				t.Fatalf("step %d: failed AddEdge changed edge count", step)
			}
		case 2:
			id := rng.IntN(40)
			referenced := len(g.IncidentEdges(id)) > 0
			err := g.RemoveNode(id)
			if referenced && !errors.Is(err, ErrEdgeInUse) {
				t.Fatalf("step %d: RemoveNode(%d) of referenced node = %v", step, id, err)
			}
		case 3:
			_ = g.RemoveEdge(rng.IntN(40))
		}

		if err := g.Validate(); err != nil {
			t.Fatalf("step %d: Validate() = %v", step, err)
		}
		assertStrictlyAscending(t, g.NodeIDs())
		assertStrictlyAscending(t, g.EdgeIDs())
		if len(g.NodeIDs()) != g.NodeCount() {
			t.Fatalf("step %d: NodeIDs/NodeCount mismatch", step)
		}
	}
}

func assertStrictlyAscending(t *testing.T, ids []int) {
	t.Helper()
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("ids not strictly ascending (duplicate or unordered): %v", ids)
		}
	}
}
