package mddstack_test

import (
	"testing"

	"github.com/dominationlab/unidom/core"
	"github.com/dominationlab/unidom/degreepq"
	"github.com/dominationlab/unidom/mddstack"
	"github.com/dominationlab/unidom/vertexset"
)

// buildStar returns a 4-vertex star (0 is the center), every vertex
// undominated, candidate-neighbor sets equal to graph adjacency, and an
// uncovered-degree DPQ seeded from each vertex's degree. Every vertex also
// carries a self-loop, as the search engine always adds before running a
// search: without it, a vertex joining the dominating set would never mark
// itself dominated, and MinVerticesNeeded would systematically overcount.
func buildStar(t *testing.T) (*core.Graph, *vertexset.Set, []vertexset.Set, *degreepq.Light) {
	t.Helper()
	g, err := core.NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}} {
		if err := g.AddEdgeSimple(e[0], e[1]); err != nil {
			t.Fatalf("AddEdgeSimple: %v", err)
		}
	}
	for v := 0; v < 4; v++ {
		if err := g.AddSelfLoop(v); err != nil {
			t.Fatalf("AddSelfLoop: %v", err)
		}
	}
	undominated := vertexset.New(4)
	undominated.ResetFull(4)
	candidates := make([]vertexset.Set, 4)
	degrees := make([]int, 4)
	for v := 0; v < 4; v++ {
		nb, _ := g.Vertex(v)
		candidates[v] = *vertexset.New(4)
		for _, u := range nb.Neighbors() {
			_ = candidates[v].Add(u)
		}
		degrees[v] = nb.Degree()
	}
	dpq := degreepq.NewLight(4, degrees)
	return g, undominated, candidates, dpq
}

func TestNewComputesInitialMDD(t *testing.T) {
	g, undominated, candidates, dpq := buildStar(t)
	s := mddstack.New(g, candidates, undominated, dpq)
	// every vertex's candidate set includes the center (degree 4, via its
	// self-loop), so every MDD, including the center's own, is 4.
	if got := s.GetMDD(1); got != 4 {
		t.Fatalf("GetMDD(1) = %d, want 4", got)
	}
	if got := s.GetMDD(0); got != 4 {
		t.Fatalf("GetMDD(0) = %d, want 4", got)
	}
	if got := s.GetMaxMDD(); got != 4 {
		t.Fatalf("GetMaxMDD = %d, want 4", got)
	}
}

func TestAddDominatorThenRemoveRestoresState(t *testing.T) {
	g, undominated, candidates, dpq := buildStar(t)
	s := mddstack.New(g, candidates, undominated, dpq)
	before := s.GetMaxMDD()

	// simulate adding vertex 0 to the dominating set: mark its neighbors
	// (which, via the self-loop, includes itself) dominated first, then
	// tell the stack.
	nb0, _ := g.Vertex(0)
	for _, u := range nb0.Neighbors() {
		_ = undominated.Remove(u)
	}
	s.AddDominator(0)
	if got := s.GetMaxMDD(); got != 0 {
		t.Fatalf("GetMaxMDD after AddDominator(0) = %d, want 0 (all dominated)", got)
	}

	if err := s.RemoveDominator(0); err != nil {
		t.Fatalf("RemoveDominator: %v", err)
	}
	for _, u := range nb0.Neighbors() {
		_ = undominated.Add(u)
	}
	if got := s.GetMaxMDD(); got != before {
		t.Fatalf("GetMaxMDD after undo = %d, want %d", got, before)
	}
}

func TestMinVerticesNeededIsOneForStar(t *testing.T) {
	g, undominated, candidates, dpq := buildStar(t)
	s := mddstack.New(g, candidates, undominated, dpq)
	if got := s.MinVerticesNeeded(); got != 1 {
		t.Fatalf("MinVerticesNeeded = %d, want 1", got)
	}
}

func TestMinVerticesNeededIsUnreachableWhenIsolatedVertexUncoverable(t *testing.T) {
	g, err := core.NewGraph(2)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	// vertex 1 is isolated and excluded from its own candidate set (no
	// self-loop added here), so its MDD is 0: nothing can ever dominate it.
	undominated := vertexset.New(2)
	undominated.ResetFull(2)
	candidates := make([]vertexset.Set, 2)
	candidates[0] = *vertexset.New(2)
	candidates[1] = *vertexset.New(2)
	dpq := degreepq.NewLight(2, []int{0, 0})
	s := mddstack.New(g, candidates, undominated, dpq)
	if got := s.MinVerticesNeeded(); got != 3 {
		t.Fatalf("MinVerticesNeeded = %d, want n+1=3", got)
	}
}
