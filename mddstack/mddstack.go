package mddstack

import (
	"fmt"
	"math"

	"github.com/dominationlab/unidom/core"
	"github.com/dominationlab/unidom/degreepq"
	"github.com/dominationlab/unidom/vertexset"
)

// InvalidMDD marks a vertex that is not currently undominated (its MDD is
// not tracked) or, in GetMDD's return for such a vertex, that no value is
// defined.
const InvalidMDD = math.MaxInt32

// stackEntry records a single vertex's MDD value immediately before it was
// overwritten, so Stack can restore it on the matching pop.
type stackEntry struct {
	vertex int
	oldMDD int
}

// stackRow is everything pushed by one call to AddDominator or
// ExcludeDominator; RemoveDominator/UnexcludeDominator must pop it, in LIFO
// order, for the same vertex.
type stackRow struct {
	dominator int
	entries   []stackEntry
}

// Stack is the incremental MDD bound described in the package doc. It must
// be constructed after the undominated set and the uncovered-degree
// DegreePQ it reads from; all three are expected to be kept in lockstep by
// the caller (the search engine) as the recursion proceeds.
type Stack struct {
	g                  *core.Graph
	candidateNeighbors []vertexset.Set
	undominated        *vertexset.Set
	undominatedDPQ     *degreepq.Light

	n         int
	mddValues []int
	mddCounts []int
	maxMDD    int

	rows []stackRow
}

// New builds a Stack over a graph of n vertices. candidateNeighbors[v] must
// be the current set of v's neighbors that are still candidates (neither
// fixed in nor fixed out); undominated must be the current undominated
// set; undominatedDPQ must track uncovered degree (rank = number of
// undominated neighbors) for exactly the vertices in undominated. The
// caller owns all three and must keep mutating them the same way it
// mutates the Stack (see AddDominator).
func New(g *core.Graph, candidateNeighbors []vertexset.Set, undominated *vertexset.Set, undominatedDPQ *degreepq.Light) *Stack {
	n := g.N()
	s := &Stack{
		g:                  g,
		candidateNeighbors: candidateNeighbors,
		undominated:        undominated,
		undominatedDPQ:     undominatedDPQ,
		n:                  n,
		mddValues:          make([]int, n),
		mddCounts:          make([]int, n+1),
		rows:               make([]stackRow, 0, n),
	}
	for i := range s.mddValues {
		s.mddValues[i] = InvalidMDD
	}
	for _, v := range undominated.Elements() {
		mdd := s.recomputeMDD(v)
		s.mddValues[v] = mdd
		s.mddCounts[mdd]++
	}
	for i := 0; i <= n && i < len(s.mddCounts); i++ {
		if s.mddCounts[i] > 0 {
			s.maxMDD = i
		}
	}
	return s
}

func (s *Stack) recomputeMDD(v int) int {
	best := 0
	for _, u := range s.candidateNeighbors[v].Elements() {
		if d := s.undominatedDPQ.RankedDegree(u); d > best {
			best = d
		}
	}
	return best
}

// GetMDD returns v's current MDD value, or InvalidMDD if v is not
// undominated.
func (s *Stack) GetMDD(v int) int { return s.mddValues[v] }

// GetMaxMDD returns the highest MDD value held by any undominated vertex.
func (s *Stack) GetMaxMDD() int { return s.maxMDD }

// GetMaxMDDVertex returns an undominated vertex whose MDD equals GetMaxMDD.
func (s *Stack) GetMaxMDDVertex() int {
	for _, v := range s.undominated.Elements() {
		if s.mddValues[v] == s.maxMDD {
			return v
		}
	}
	return core.InvalidVertex
}

// GetMinMDDVertex returns an undominated vertex holding the lowest MDD
// value currently present.
func (s *Stack) GetMinMDDVertex() int {
	result := core.InvalidVertex
	min := s.n + 1
	for _, v := range s.undominated.Elements() {
		if s.mddValues[v] < min {
			min = s.mddValues[v]
			result = v
		}
	}
	return result
}

func (s *Stack) newRow(dominator int) *stackRow {
	s.rows = append(s.rows, stackRow{dominator: dominator})
	return &s.rows[len(s.rows)-1]
}

func (s *Stack) popRow(dominator int) (stackRow, error) {
	if len(s.rows) == 0 {
		return stackRow{}, fmt.Errorf("mddstack: pop on empty stack for dominator %d", dominator)
	}
	row := s.rows[len(s.rows)-1]
	s.rows = s.rows[:len(s.rows)-1]
	if row.dominator != dominator {
		return stackRow{}, fmt.Errorf("mddstack: pop dominator mismatch: got %d, want %d", row.dominator, dominator)
	}
	return row, nil
}

func (row *stackRow) record(vertex, oldMDD int) {
	row.entries = append(row.entries, stackEntry{vertex: vertex, oldMDD: oldMDD})
}

// AddDominator records v's addition to the dominating set. Call it after v
// has been added and all of v's neighbors have already been marked
// dominated in the undominated set and the uncovered-degree DPQ — this
// function only recomputes bounds, it does not itself cover anyone.
func (s *Stack) AddDominator(v int) {
	row := s.newRow(v)

	nbv, _ := s.g.Vertex(v)
	for _, u := range nbv.Neighbors() {
		old := s.mddValues[u]
		if old == InvalidMDD {
			continue
		}
		row.record(u, old)
		s.mddValues[u] = InvalidMDD
		s.mddCounts[old]--
	}

	for _, u := range s.undominated.Elements() {
		old := s.mddValues[u]
		nw := s.recomputeMDD(u)
		if nw == old {
			continue
		}
		row.record(u, old)
		s.mddValues[u] = nw
		s.mddCounts[old]--
		s.mddCounts[nw]++
	}

	for s.maxMDD > 0 && s.mddCounts[s.maxMDD] == 0 {
		s.maxMDD--
	}
}

// RemoveDominator undoes the most recent AddDominator(v) (LIFO — v must
// match the dominator of the innermost still-open row). Call it before any
// of v's neighbors are marked undominated again.
func (s *Stack) RemoveDominator(v int) error {
	row, err := s.popRow(v)
	if err != nil {
		return err
	}
	highest := 0
	for i := len(row.entries) - 1; i >= 0; i-- {
		e := row.entries[i]
		old := s.mddValues[e.vertex]
		if old != InvalidMDD {
			s.mddCounts[old]--
		}
		s.mddValues[e.vertex] = e.oldMDD
		s.mddCounts[e.oldMDD]++
		if e.oldMDD > highest {
			highest = e.oldMDD
		}
	}
	if highest > s.maxMDD {
		s.maxMDD = highest
	}
	return nil
}

// ExcludeDominator records that v (not in the dominating set) has just been
// fixed out of candidacy — call it immediately after v is removed as a
// candidate.
func (s *Stack) ExcludeDominator(v int) {
	row := s.newRow(v)

	nbv, _ := s.g.Vertex(v)
	for _, u := range nbv.Neighbors() {
		if !s.undominated.Contains(u) {
			continue
		}
		old := s.mddValues[u]
		nw := s.recomputeMDD(u)
		if nw != old {
			row.record(u, old)
			s.mddValues[u] = nw
			s.mddCounts[old]--
			s.mddCounts[nw]++
		}
	}

	for s.maxMDD > 0 && s.mddCounts[s.maxMDD] == 0 {
		s.maxMDD--
	}
}

// UnexcludeDominator undoes the most recent ExcludeDominator(v). Call it
// immediately before v is unfixed.
func (s *Stack) UnexcludeDominator(v int) error {
	row, err := s.popRow(v)
	if err != nil {
		return err
	}
	highest := 0
	for i := len(row.entries) - 1; i >= 0; i-- {
		e := row.entries[i]
		old := s.mddValues[e.vertex]
		s.mddValues[e.vertex] = e.oldMDD
		s.mddCounts[old]--
		s.mddCounts[e.oldMDD]++
		if e.oldMDD > highest {
			highest = e.oldMDD
		}
	}
	if highest > s.maxMDD {
		s.maxMDD = highest
	}
	return nil
}

// MinVerticesNeeded returns a lower bound on how many more dominators are
// required to cover every currently undominated vertex: greedily, the
// fewest picks whose per-pick MDD capacities could sum to the full
// undominated count. Returns n+1 (unreachable) if any undominated vertex
// has MDD 0 — no candidate neighbor can ever cover it.
func (s *Stack) MinVerticesNeeded() int {
	if s.mddCounts[0] > 0 {
		return s.n + 1
	}
	needed := 0
	c := 0
	for mdd := 1; mdd <= s.maxMDD; mdd++ {
		c += s.mddCounts[mdd]
		for c > 0 {
			c -= mdd
			needed++
		}
	}
	return needed
}
