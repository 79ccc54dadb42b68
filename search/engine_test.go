package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dominationlab/unidom/core"
	"github.com/dominationlab/unidom/search"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoErrorf(t, err, "core.NewGraph(%d)", n)
	for _, e := range edges {
		require.NoErrorf(t, g.AddEdgeSimple(e[0], e[1]), "AddEdgeSimple%v", e)
	}
	return g
}

// captureProxy records every reported dominating set for later validation.
type captureProxy struct {
	sets [][]int
}

func (c *captureProxy) Initialize(*search.Instance) error { return nil }
func (c *captureProxy) ProcessSet(_ *search.Instance, set []int) error {
	c.sets = append(c.sets, append([]int(nil), set...))
	return nil
}
func (c *captureProxy) Finalize(*search.Instance) error { return nil }

// isDominatingSet checks set against the ORIGINAL (pre-self-loop) adjacency
// implied by edges, since Solve mutates its graph with self-loops in place.
func isDominatingSet(n int, edges [][2]int, set []int) bool {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	in := make(map[int]bool, len(set))
	for _, v := range set {
		in[v] = true
	}
	for v := 0; v < n; v++ {
		if in[v] {
			continue
		}
		covered := false
		for _, u := range adj[v] {
			if in[u] {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// EngineSuite exercises the branch-and-bound engine across its modes,
// pivot/rank rule combinations, and force-in/force-out constraints.
type EngineSuite struct {
	suite.Suite
}

func (s *EngineSuite) solveAllVariants(n int, edges [][2]int) map[string]int {
	t := s.T()
	results := make(map[string]int)
	variants := []struct {
		name string
		opts []search.Option
	}{
		{"DD/MinCD/Asc", []search.Option{search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMinCD), search.WithRankRule(search.RankAscending)}},
		{"DD/MinCD/Desc", []search.Option{search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMinCD), search.WithRankRule(search.RankDescending)}},
		{"MDD/MinCD/Desc", []search.Option{search.WithMode(search.ModeMDD), search.WithPivotRule(search.PivotMinCD), search.WithRankRule(search.RankDescending)}},
		{"MDD/MinMDD/Desc", []search.Option{search.WithMode(search.ModeMDD), search.WithPivotRule(search.PivotMinMDD), search.WithRankRule(search.RankDescending)}},
		{"MDD/MaxMDD/Desc", []search.Option{search.WithMode(search.ModeMDD), search.WithPivotRule(search.PivotMaxMDD), search.WithRankRule(search.RankDescending)}},
	}
	for _, v := range variants {
		g := buildGraph(t, n, edges)
		e := search.New(v.opts...)
		proxy := &captureProxy{}
		inst := &search.Instance{Graph: g}
		require.NoErrorf(t, e.Solve(inst, proxy), "%s: Solve", v.name)
		results[v.name] = e.BestSize()
		require.NotEmptyf(t, proxy.sets, "%s: no set reported", v.name)
		best := proxy.sets[len(proxy.sets)-1]
		require.Equalf(t, e.BestSize(), len(best), "%s: last reported set size mismatch", v.name)
		require.Truef(t, isDominatingSet(n, edges, best), "%s: reported set %v does not dominate the graph", v.name, best)
	}
	return results
}

func (s *EngineSuite) TestTriangleMinimumDominatingSetIsOne() {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	results := s.solveAllVariants(3, edges)
	for name, size := range results {
		s.Equalf(1, size, "%s: BestSize()", name)
	}
}

func (s *EngineSuite) TestStarMinimumDominatingSetIsOne() {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	results := s.solveAllVariants(5, edges)
	for name, size := range results {
		s.Equalf(1, size, "%s: BestSize()", name)
	}
}

func (s *EngineSuite) TestPathOfFiveMinimumDominatingSetIsTwo() {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	results := s.solveAllVariants(5, edges)
	for name, size := range results {
		s.Equalf(2, size, "%s: BestSize()", name)
	}
}

func (s *EngineSuite) TestIsolatedVertexMustBeInEverySolution() {
	// Vertex 3 has no edges at all; it can only ever dominate itself.
	t := s.T()
	edges := [][2]int{{0, 1}, {1, 2}}
	g := buildGraph(t, 4, edges)
	e := search.New(search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMinCD))
	proxy := &captureProxy{}
	inst := &search.Instance{Graph: g}
	require.NoError(t, e.Solve(inst, proxy))
	best := proxy.sets[len(proxy.sets)-1]
	found := false
	for _, v := range best {
		if v == 3 {
			found = true
		}
	}
	s.Truef(found, "isolated vertex 3 missing from reported set %v", best)
}

func (s *EngineSuite) TestForceInAndForceOutAreHonored() {
	t := s.T()
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	g := buildGraph(t, 5, edges)
	e := search.New(search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMinCD))
	proxy := &captureProxy{}
	inst := &search.Instance{Graph: g, ForceIn: []int{0}, ForceOut: []int{2}}
	require.NoError(t, e.Solve(inst, proxy))
	require.NotEmpty(t, proxy.sets)
	best := proxy.sets[len(proxy.sets)-1]
	hasZero, hasTwo := false, false
	for _, v := range best {
		if v == 0 {
			hasZero = true
		}
		if v == 2 {
			hasTwo = true
		}
	}
	s.Truef(hasZero, "forced-in vertex 0 missing from %v", best)
	s.Falsef(hasTwo, "forced-out vertex 2 present in %v", best)
	s.Truef(isDominatingSet(5, edges, best), "reported set %v does not dominate the graph", best)
}

func (s *EngineSuite) TestGenerateAllReportsEverySetInBounds() {
	t := s.T()
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	g := buildGraph(t, 3, edges)
	e := search.New(
		search.WithMode(search.ModeDD),
		search.WithPivotRule(search.PivotMinCD),
		search.WithGenerateAll(true),
		search.WithBounds(1, 1),
	)
	proxy := &captureProxy{}
	inst := &search.Instance{Graph: g}
	require.NoError(t, e.Solve(inst, proxy))
	require.Lenf(t, proxy.sets, 3, "expected all 3 singleton dominating sets in a triangle, got %v", proxy.sets)
	for _, set := range proxy.sets {
		s.Lenf(set, 1, "set %v", set)
		s.Truef(isDominatingSet(3, edges, set), "set %v does not dominate the graph", set)
	}
}

func (s *EngineSuite) TestDeterministicAcrossRepeatedSolves() {
	t := s.T()
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}}
	var firstBest []int
	for i := 0; i < 4; i++ {
		g := buildGraph(t, 5, edges)
		e := search.New(search.WithMode(search.ModeMDD), search.WithPivotRule(search.PivotMinMDD))
		proxy := &captureProxy{}
		inst := &search.Instance{Graph: g}
		require.NoErrorf(t, e.Solve(inst, proxy), "run %d", i)
		best := proxy.sets[len(proxy.sets)-1]
		if firstBest == nil {
			firstBest = best
			continue
		}
		require.Equalf(t, firstBest, best, "run %d: nondeterministic result", i)
	}
}

func (s *EngineSuite) TestFixedOrderModeAgreesWithDDAndMDDOnOptimalSize() {
	t := s.T()
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	g := buildGraph(t, 5, edges)
	e := search.New(search.WithMode(search.ModeFixed))
	proxy := &captureProxy{}
	inst := &search.Instance{Graph: g}
	require.NoError(t, e.Solve(inst, proxy))
	require.Equal(t, 2, e.BestSize())
	best := proxy.sets[len(proxy.sets)-1]
	s.Truef(isDominatingSet(5, edges, best), "reported set %v does not dominate the graph", best)
	for name, size := range s.solveAllVariants(5, edges) {
		s.Equalf(e.BestSize(), size, "%s: BestSize() differs from fixed order", name)
	}
}

func (s *EngineSuite) TestFixedOrderGenerateAllReportsEverySetInBounds() {
	t := s.T()
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	g := buildGraph(t, 3, edges)
	e := search.New(search.WithMode(search.ModeFixed), search.WithGenerateAll(true), search.WithBounds(1, 1))
	proxy := &captureProxy{}
	inst := &search.Instance{Graph: g}
	require.NoError(t, e.Solve(inst, proxy))
	s.Lenf(proxy.sets, 3, "expected all 3 singleton dominating sets in a triangle, got %v", proxy.sets)
}

// TestIsolatedSingleVertexReportsItself covers n=1, no edges: after Solve
// adds the self-loop, {0} is the only dominating set. This is the smallest
// instance whose domination number equals n, the class of input that
// stresses incumbent seeding.
func (s *EngineSuite) TestIsolatedSingleVertexReportsItself() {
	t := s.T()
	modes := []struct {
		name string
		opts []search.Option
	}{
		{"DD", []search.Option{search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMinCD)}},
		{"MDD", []search.Option{search.WithMode(search.ModeMDD), search.WithPivotRule(search.PivotMinMDD)}},
		{"Fixed", []search.Option{search.WithMode(search.ModeFixed)}},
	}
	for _, m := range modes {
		g := buildGraph(t, 1, nil)
		e := search.New(m.opts...)
		proxy := &captureProxy{}
		inst := &search.Instance{Graph: g}
		require.NoErrorf(t, e.Solve(inst, proxy), "%s: Solve", m.name)
		s.Equalf(1, e.BestSize(), "%s: BestSize()", m.name)
		require.NotEmptyf(t, proxy.sets, "%s: no set reported", m.name)
		best := proxy.sets[len(proxy.sets)-1]
		s.Equalf([]int{0}, best, "%s: reported set", m.name)
	}
}

// TestFullyEdgelessGraphNeedsEveryVertex covers a graph with no edges at
// all: every vertex can only dominate itself, so the unique dominating set
// is the whole vertex set (domination number equals n) across every mode.
func (s *EngineSuite) TestFullyEdgelessGraphNeedsEveryVertex() {
	t := s.T()
	const n = 3
	modes := []struct {
		name string
		opts []search.Option
	}{
		{"DD", []search.Option{search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMaxCD)}},
		{"MDD", []search.Option{search.WithMode(search.ModeMDD), search.WithPivotRule(search.PivotMaxMDD)}},
		{"Fixed", []search.Option{search.WithMode(search.ModeFixed)}},
	}
	for _, m := range modes {
		g := buildGraph(t, n, nil)
		e := search.New(m.opts...)
		proxy := &captureProxy{}
		inst := &search.Instance{Graph: g}
		require.NoErrorf(t, e.Solve(inst, proxy), "%s: Solve", m.name)
		s.Equalf(n, e.BestSize(), "%s: BestSize()", m.name)
		require.NotEmptyf(t, proxy.sets, "%s: no set reported", m.name)
		best := proxy.sets[len(proxy.sets)-1]
		s.Truef(isDominatingSet(n, nil, best) && len(best) == n, "%s: reported set %v, want all %d vertices", m.name, best, n)
	}
}

func (s *EngineSuite) TestNoOutputProxyDiscardsSetsButBestSizeStillWorks() {
	t := s.T()
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	g := buildGraph(t, 5, edges)
	e := search.New(search.WithMode(search.ModeDD), search.WithPivotRule(search.PivotMaxCD))
	inst := &search.Instance{Graph: g}
	require.NoError(t, e.Solve(inst, search.NoOutputProxy{}))
	s.Equal(1, e.BestSize())
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
