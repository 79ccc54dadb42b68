package search

import "github.com/dominationlab/unidom/core"

// Mode selects which candidate-bookkeeping strategy an Engine uses.
type Mode int

const (
	// ModeDD tracks candidate degree with a degree priority queue.
	ModeDD Mode = iota
	// ModeMDD additionally tracks the MDD lower bound.
	ModeMDD
	// ModeFixed omits both DPQs and MDDStack entirely: the pivot is always
	// the smallest-index uncovered vertex, threaded through the recursion
	// as an explicit argument rather than recomputed from search state, and
	// the bound uses a single precomputed max_deg rather than a live
	// degree distribution. PivotRule and RankRule are ignored in this mode.
	ModeFixed
)

// PivotRule selects which undominated/candidate vertex to branch on next.
type PivotRule int

const (
	// PivotMinCD branches on the undominated vertex with the fewest
	// remaining candidate neighbors. Valid in both modes.
	PivotMinCD PivotRule = iota
	// PivotMaxCD branches on the undominated vertex with the most
	// remaining candidate neighbors. Valid in both modes.
	PivotMaxCD
	// PivotMinMDD branches on the undominated vertex with the lowest MDD.
	// ModeMDD only.
	PivotMinMDD
	// PivotMaxMDD branches on the undominated vertex with the highest MDD.
	// ModeMDD only.
	PivotMaxMDD
)

// RankRule selects the order in which a pivot's candidate neighbors are
// tried.
type RankRule int

const (
	// RankAscending tries lowest uncovered-degree neighbors first.
	RankAscending RankRule = iota
	// RankDescending tries highest uncovered-degree neighbors first.
	RankDescending
)

// Instance is the input to a search: a graph plus the vertices a caller
// has already decided must (ForceIn) or must not (ForceOut) belong to the
// dominating set. ForceIn and ForceOut must be disjoint.
type Instance struct {
	Graph    *core.Graph
	ForceIn  []int
	ForceOut []int
}

// OutputProxy receives every dominating set the search considers worth
// reporting: in optimization mode, each new incumbent as it improves on
// the best found so far; in generation mode, every set within
// [LowerBound, UpperBound]. Set is a fresh copy of the engine's working
// set, so the proxy may retain it past the call.
type OutputProxy interface {
	Initialize(inst *Instance) error
	ProcessSet(inst *Instance, set []int) error
	Finalize(inst *Instance) error
}

// NoOutputProxy discards every reported set; useful for benchmarking or
// when only the final best-size answer (via Engine.BestSize) matters.
type NoOutputProxy struct{}

func (NoOutputProxy) Initialize(*Instance) error        { return nil }
func (NoOutputProxy) ProcessSet(*Instance, []int) error { return nil }
func (NoOutputProxy) Finalize(*Instance) error          { return nil }
