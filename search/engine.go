package search

import (
	"fmt"

	"github.com/dominationlab/unidom/core"
	"github.com/dominationlab/unidom/degreepq"
	"github.com/dominationlab/unidom/mddstack"
	"github.com/dominationlab/unidom/vertexset"
)

// invalidDepth means "no res/mod partitioning configured"; report_node
// then always takes the "keep checking" branch instead of ever pruning or
// locking in, which is equivalent to full, unpartitioned search.
const invalidDepth = -1

// Engine is the branch-and-bound driver described in the package doc.
// Fields are grouped as configuration/policy, graph data fixed for the
// duration of one Solve call, mutable search state, and the current best
// incumbent — the same grouping tsp.bbEngine uses for the travelling-
// salesman branch-and-bound driver this engine is modeled on.
type Engine struct {
	// Configuration / policy
	Mode                Mode
	Pivot               PivotRule
	Rank                RankRule
	ForceStopOnTrapped  bool
	RecheckBoundsInLoop bool
	GenerateAll         bool
	LowerBound          int
	UpperBound          int
	ResMod              uint
	ResRes              uint
	ResDepth            int
	Verbose             bool

	// Graph data, fixed once Solve begins
	g    *core.Graph
	n    int
	inst *Instance
	out  OutputProxy

	// Current search state
	d              *vertexset.Set
	covered        []int
	fixed          []int
	totalCovered   int
	totalFixed     int
	undominatedDPQ *degreepq.Light

	candidateDPQ *degreepq.Heavy // ModeDD only

	candidateNeighbours []vertexset.Set // ModeMDD only
	undominatedSet      *vertexset.Set  // ModeMDD only
	mddStack            *mddstack.Stack // ModeMDD only

	maxDeg int // ModeFixed only

	// Current best incumbent
	b *vertexset.Set

	depthLog []uint64
}

// Option configures an Engine before Solve; see With* functions.
type Option func(*Engine)

// New returns an Engine ready to configure with Options and then Solve.
func New(opts ...Option) *Engine {
	e := &Engine{
		UpperBound: core.MaxVerts,
		ResDepth:   invalidDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithMode(m Mode) Option               { return func(e *Engine) { e.Mode = m } }
func WithPivotRule(p PivotRule) Option      { return func(e *Engine) { e.Pivot = p } }
func WithRankRule(r RankRule) Option        { return func(e *Engine) { e.Rank = r } }
func WithForceStopOnTrapped(b bool) Option  { return func(e *Engine) { e.ForceStopOnTrapped = b } }
func WithRecheckBoundsInLoop(b bool) Option { return func(e *Engine) { e.RecheckBoundsInLoop = b } }
func WithGenerateAll(b bool) Option         { return func(e *Engine) { e.GenerateAll = b } }
func WithVerbose(b bool) Option             { return func(e *Engine) { e.Verbose = b } }

// WithBounds sets the [lower, upper] size range a reported set must fall
// within. In optimization mode only upper matters as a ceiling; lower
// trims short sets out of both modes' output.
func WithBounds(lower, upper int) Option {
	return func(e *Engine) { e.LowerBound = lower; e.UpperBound = upper }
}

// WithResMod restricts the search to the branches whose node index, at
// depth, satisfies (count-1) % mod == res — the combinatorial
// partitioning scheme external callers use to split one search across
// several independent processes. depth must be >= 0; pass no WithResMod
// option at all to search the whole tree in one process.
func WithResMod(res, mod uint, depth int) Option {
	return func(e *Engine) { e.ResRes = res; e.ResMod = mod; e.ResDepth = depth }
}

// BestSize returns the size of the best dominating set found so far (only
// meaningful in optimization mode, after Solve returns).
func (e *Engine) BestSize() int { return e.b.Size() }

// Solve runs the search over inst, reporting every dominating set worth
// reporting (per Engine's configuration) to out. It mutates inst.Graph:
// every vertex gains a self-loop, and every vertex's adjacency list is
// sorted into descending order — both are permanent preconditions for the
// bookkeeping below, not merely local artifacts of one Solve call.
func (e *Engine) Solve(inst *Instance, out OutputProxy) error {
	g := inst.Graph
	n := g.N()
	for v := 0; v < n; v++ {
		if err := g.AddSelfLoop(v); err != nil {
			return fmt.Errorf("search: Solve: %w", err)
		}
	}
	g.SortNeighboursDescending()

	e.g, e.n, e.inst, e.out = g, n, inst, out
	e.d = vertexset.New(n)
	e.b = vertexset.New(n)
	// The incumbent must start strictly larger than any set the search can
	// possibly report, or the very first solution found (which may already
	// be optimal) fails the strict d.Size() < b.Size() replace check used
	// throughout recursion.go and fixedorder.go. With an explicit ceiling
	// below n that bound is UpperBound+1, itself never exceeding n and so
	// representable directly. Without one, no set drawn from the graph's n
	// vertices can exceed size n, so the only universally safe seed is
	// n+1 — one past what ResetFullPrefix can represent, hence
	// ResetSentinel instead of the DD/MDD family's literal reset_full(n-1).
	if !e.GenerateAll {
		if e.UpperBound < n {
			e.b.ResetFullPrefix(n, e.UpperBound+1)
		} else if n > 0 {
			e.b.ResetSentinel(n)
		}
	}
	e.covered = make([]int, n)
	e.fixed = make([]int, n)
	e.depthLog = make([]uint64, n+1)

	if e.Mode == ModeFixed {
		for v := 0; v < n; v++ {
			vv, _ := g.Vertex(v)
			if d := vv.Degree(); d > e.maxDeg {
				e.maxDeg = d
			}
		}
		// The reference fixed-order solver does not fix force-in vertices
		// out of candidacy (there is no candidate bookkeeping to fix them
		// out of); it only adds them to D and marks their neighbors
		// covered.
		for _, v := range inst.ForceIn {
			if err := e.d.Add(v); err != nil {
				return fmt.Errorf("search: Solve: force-in %d: %w", v, err)
			}
			vv, _ := g.Vertex(v)
			for _, u := range vv.Neighbors() {
				if e.covered[u] == 0 {
					e.totalCovered++
				}
				e.covered[u]++
			}
		}
		for _, v := range inst.ForceOut {
			e.fixed[v] = 1
			e.totalFixed++
		}

		if err := out.Initialize(inst); err != nil {
			return err
		}
		e.findDominatingSet(true)
		return out.Finalize(inst)
	}

	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		vv, _ := g.Vertex(v)
		degrees[v] = vv.Degree()
	}
	e.undominatedDPQ = degreepq.NewLight(n, degrees)

	switch e.Mode {
	case ModeDD:
		e.candidateDPQ = degreepq.NewHeavy(n, degrees)
	case ModeMDD:
		e.undominatedSet = vertexset.New(n)
		e.undominatedSet.ResetFull(n)
		e.candidateNeighbours = make([]vertexset.Set, n)
		for v := 0; v < n; v++ {
			e.candidateNeighbours[v] = *vertexset.New(n)
			vv, _ := g.Vertex(v)
			for _, u := range vv.Neighbors() {
				_ = e.candidateNeighbours[v].Add(u)
			}
		}
		e.mddStack = mddstack.New(g, e.candidateNeighbours, e.undominatedSet, e.undominatedDPQ)
	}

	for _, v := range inst.ForceIn {
		e.removeCandidate(v)
		if err := e.d.Add(v); err != nil {
			return fmt.Errorf("search: Solve: force-in %d: %w", v, err)
		}
		vv, _ := g.Vertex(v)
		for _, u := range vv.Neighbors() {
			e.dominate(u)
		}
		if e.Mode == ModeMDD {
			e.mddStack.AddDominator(v)
		}
	}
	for _, v := range inst.ForceOut {
		e.removeCandidate(v)
		if e.Mode == ModeMDD {
			e.mddStack.ExcludeDominator(v)
		}
	}

	if err := out.Initialize(inst); err != nil {
		return err
	}
	e.findDominatingSet(true)
	return out.Finalize(inst)
}
