package lca

import (
	"testing"

	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

func mustTree(t *testing.T, parents []int, numLeaves int) *tree.Tree {
	t.Helper()
	tr, err := tree.New(parents, numLeaves)
	if err != nil {
		t.Fatalf("tree.New() error = %v", err)
	}
	return tr
}

func TestQuery(t *testing.T) {
	// Leaves 0..4, internals 5..7, root 8.
	tr := mustTree(t, []int{5, 5, 6, 7, 7, 6, 8, 8, 8}, 5)
	idx := New(tr)

	tests := []struct {
		name string
		u, v int
		want int
	}{
		{"siblings", 0, 1, 5},
		{"leaf and its parent", 0, 5, 5},
		{"cousins", 0, 2, 6},
		{"across the root", 1, 3, 8},
		{"same node", 4, 4, 4},
		{"order independent", 3, 0, 8},
		{"internal pair", 5, 7, 8},
		{"root with leaf", 8, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Query(tt.u, tt.v)
			if err != nil {
				t.Fatalf("Query(%d, %d) error = %v", tt.u, tt.v, err)
			}
			if got != tt.want {
				t.Errorf("Query(%d, %d) = %d, want %d", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestQueryOutOfRange(t *testing.T) {
	tr := mustTree(t, []int{3, 3, 4, 4, 4}, 3)
	idx := New(tr)

	for _, pair := range [][2]int{{-1, 0}, {0, 5}, {9, 9}} {
		_, err := idx.Query(pair[0], pair[1])
		if !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
			t.Errorf("Query(%d, %d) error = %v, want code %s", pair[0], pair[1], err, errors.ErrCodeIndexOutOfRange)
		}
	}
}

func TestQuerySingleNodeTree(t *testing.T) {
	tr := mustTree(t, []int{0}, 1)
	idx := New(tr)

	got, err := idx.Query(0, 0)
	if err != nil {
		t.Fatalf("Query(0, 0) error = %v", err)
	}
	if got != 0 {
		t.Errorf("Query(0, 0) = %d, want 0", got)
	}
}

func TestQueryEdges(t *testing.T) {
	// 2x4 grid hierarchy used by the saliency tests.
	parents := []int{8, 8, 9, 9, 10, 10, 11, 11, 12, 13, 12, 14, 13, 14, 14}
	tr := mustTree(t, parents, 8)
	idx := New(tr)

	g, err := graph.New(8, []graph.Edge{
		{Source: 0, Target: 1}, {Source: 0, Target: 4}, {Source: 1, Target: 2},
		{Source: 1, Target: 5}, {Source: 2, Target: 3}, {Source: 2, Target: 6},
		{Source: 3, Target: 7}, {Source: 4, Target: 5}, {Source: 5, Target: 6},
		{Source: 6, Target: 7},
	})
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}

	got, err := idx.QueryEdges(g)
	if err != nil {
		t.Fatalf("QueryEdges() error = %v", err)
	}
	want := []int{8, 12, 13, 12, 9, 14, 14, 10, 14, 11}
	if len(got) != len(want) {
		t.Fatalf("QueryEdges() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("QueryEdges()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQueryEdgesSizeMismatch(t *testing.T) {
	tr := mustTree(t, []int{3, 3, 4, 4, 4}, 3)
	idx := New(tr)

	g, err := graph.New(5, []graph.Edge{{Source: 0, Target: 1}})
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	if _, err := idx.QueryEdges(g); !errors.Is(err, errors.ErrCodeSizeMismatch) {
		t.Errorf("QueryEdges() error = %v, want code %s", err, errors.ErrCodeSizeMismatch)
	}
}

func TestQueryAgainstNaiveWalk(t *testing.T) {
	parents := []int{6, 7, 9, 6, 8, 9, 7, 8, 10, 10, 10}
	tr := mustTree(t, parents, 6)
	idx := New(tr)

	naive := func(u, v int) int {
		seen := map[int]bool{}
		for n := u; ; {
			seen[n] = true
			p, ok := tr.Parent(n)
			if !ok || p == n {
				break
			}
			n = p
		}
		for n := v; ; {
			if seen[n] {
				return n
			}
			p, _ := tr.Parent(n)
			n = p
		}
	}

	for u := 0; u < tr.NumNodes(); u++ {
		for v := 0; v < tr.NumNodes(); v++ {
			got, err := idx.Query(u, v)
			if err != nil {
				t.Fatalf("Query(%d, %d) error = %v", u, v, err)
			}
			if want := naive(u, v); got != want {
				t.Errorf("Query(%d, %d) = %d, want %d", u, v, got, want)
			}
		}
	}
}
