package search

import "github.com/dominationlab/unidom/core"

// reportNode logs that the search has reached a node at depth and decides
// whether this branch belongs to the current res/mod partition. It
// returns 0 if the branch should be pruned outright, 1 if the branch
// should continue and never needs to check res/mod again, and -1 if it
// should continue but may still need to check res/mod at a deeper node.
func (e *Engine) reportNode(depth int, checkResDepth bool) int {
	e.depthLog[depth]++
	if !checkResDepth {
		return 1
	}
	if depth == e.ResDepth {
		if (e.depthLog[depth]-1)%uint64(e.ResMod) == uint64(e.ResRes) {
			return 1
		}
		return 0
	}
	return -1
}

func (e *Engine) unreportNode(depth int) { e.depthLog[depth]-- }

// findDominatingSet is the recursive search driver shared by every
// variant. It returns 1 in the common case, 0 when ModeMDD's bound
// evaluation hits a fatal (unrecoverable-until-unwind) violation, or -1
// when that evaluation prunes only this node; addVertexToSet treats only 0
// as a forced stop, and callers in ModeDD never need to inspect the
// return value.
func (e *Engine) findDominatingSet(checkResDepth bool) int {
	if e.Mode == ModeFixed {
		return e.findDominatingSetFixed(0, checkResDepth)
	}
	depth := e.d.Size()
	switch e.reportNode(depth, checkResDepth) {
	case 0:
		return 1
	case 1:
		if checkResDepth {
			e.unreportNode(depth)
			return e.findDominatingSet(false)
		}
	}

	if e.totalCovered == e.n {
		e.reportSolution()
		return 1
	}

	if e.Mode == ModeDD {
		if !e.RecheckBoundsInLoop && !e.boundsSatisfiedDD() {
			return 1
		}
	} else {
		if result := e.evaluateBoundsMDD(); result != 1 {
			return result
		}
	}

	i := e.chooseNextVertex()
	if i == core.InvalidVertex {
		if e.Mode == ModeMDD {
			panic("search: chooseNextVertex found no pivot with an undominated or candidate vertex remaining")
		}
		return 1
	}

	neighbourArray := e.rankNeighbours(i)
	fixedList := make([]int, 0, len(neighbourArray))

	for _, j := range neighbourArray {
		if e.Mode == ModeDD && e.RecheckBoundsInLoop && !e.boundsSatisfiedDD() {
			break
		}
		forceStop := e.addVertexToSet(j, &fixedList, checkResDepth)
		if e.ForceStopOnTrapped && forceStop {
			break
		}
		if e.Mode == ModeMDD && e.RecheckBoundsInLoop && e.evaluateBoundsMDD() != 1 {
			break
		}
	}

	if e.Mode == ModeDD {
		// Duplicates an odd quirk of the reference implementation: fixed
		// vertices are unstacked in the same order they were stacked, not
		// reversed.
		for _, v := range fixedList {
			e.addCandidateDD(v)
		}
	} else {
		for k := len(fixedList) - 1; k >= 0; k-- {
			v := fixedList[k]
			_ = e.mddStack.UnexcludeDominator(v)
			e.addCandidateMDD(v)
		}
	}
	return 1
}

func (e *Engine) reportSolution() {
	if e.GenerateAll {
		if e.d.Size() >= e.LowerBound && e.d.Size() <= e.UpperBound {
			_ = e.out.ProcessSet(e.inst, append([]int(nil), e.d.Elements()...))
		}
		return
	}
	if e.d.Size() >= e.LowerBound && e.d.Size() < e.b.Size() {
		e.b = e.d.Clone()
		_ = e.out.ProcessSet(e.inst, append([]int(nil), e.d.Elements()...))
	}
}

// addVertexToSet adds j to the working dominating set, recurses, then
// undoes every bit of bookkeeping on the way back out — the reversible-
// mutation pattern every search-tree edge in this engine follows.
func (e *Engine) addVertexToSet(j int, fixedList *[]int, checkResDepth bool) bool {
	forced := e.removeCandidate(j)
	*fixedList = append(*fixedList, j)
	_ = e.d.Add(j)

	vj, _ := e.g.Vertex(j)
	nbrs := vj.Neighbors()
	for _, k := range nbrs {
		e.dominate(k)
	}
	if e.Mode == ModeMDD {
		e.mddStack.AddDominator(j)
	}

	if e.findDominatingSet(checkResDepth) == 0 {
		forced = true
	}

	if e.Mode == ModeMDD {
		_ = e.mddStack.RemoveDominator(j)
	}
	for k := len(nbrs) - 1; k >= 0; k-- {
		e.undominate(nbrs[k])
	}
	_ = e.d.RemovePop(j)
	if e.Mode == ModeMDD {
		e.mddStack.ExcludeDominator(j)
	}
	return forced
}

// removeCandidate fixes v out of candidacy (v is being added to the
// dominating set, or permanently excluded) and reports whether some
// neighbor of v has, as a result, no remaining candidate dominator and is
// not yet covered — meaning v was the last hope for that neighbor.
func (e *Engine) removeCandidate(v int) bool {
	e.fixed[v] = 1
	e.totalFixed++
	e.undominatedDPQ.RemoveCandidate(v)

	vv, _ := e.g.Vertex(v)
	forced := false
	if e.Mode == ModeDD {
		e.candidateDPQ.RemoveCandidate(v)
		for _, u := range vv.Neighbors() {
			if e.candidateDPQ.Decrement(u) == 0 && e.covered[u] == 0 {
				forced = true
			}
		}
		return forced
	}
	for _, u := range vv.Neighbors() {
		_ = e.candidateNeighbours[u].Remove(v)
		if e.candidateNeighbours[u].Size() == 0 && e.covered[u] == 0 {
			forced = true
		}
	}
	return forced
}

func (e *Engine) addCandidateDD(v int) {
	e.fixed[v] = 0
	e.totalFixed--
	e.undominatedDPQ.AddCandidate(v)
	e.candidateDPQ.AddCandidate(v)
	vv, _ := e.g.Vertex(v)
	for _, u := range vv.Neighbors() {
		e.candidateDPQ.Increment(u)
	}
}

func (e *Engine) addCandidateMDD(v int) {
	e.fixed[v] = 0
	e.totalFixed--
	e.undominatedDPQ.AddCandidate(v)
	vv, _ := e.g.Vertex(v)
	for _, u := range vv.Neighbors() {
		_ = e.candidateNeighbours[u].Add(v)
	}
}

func (e *Engine) dominate(v int) {
	e.covered[v]++
	if e.covered[v] > 1 {
		return
	}
	e.totalCovered++
	e.undominatedDPQ.Dominate(v)
	if e.Mode == ModeDD {
		e.candidateDPQ.Dominate(v)
	} else {
		_ = e.undominatedSet.Remove(v)
	}
	vv, _ := e.g.Vertex(v)
	for _, u := range vv.Neighbors() {
		e.undominatedDPQ.Decrement(u)
	}
}

func (e *Engine) undominate(v int) {
	e.covered[v]--
	if e.covered[v] > 0 {
		return
	}
	e.totalCovered--
	e.undominatedDPQ.Undominate(v)
	if e.Mode == ModeDD {
		e.candidateDPQ.Undominate(v)
	} else {
		_ = e.undominatedSet.Add(v)
	}
	vv, _ := e.g.Vertex(v)
	for _, u := range vv.Neighbors() {
		e.undominatedDPQ.Increment(u)
	}
}

// boundsSatisfiedDD reports whether the current partial solution can still
// possibly beat the incumbent (optimization mode) or fall within
// [LowerBound, UpperBound] (generation mode).
func (e *Engine) boundsSatisfiedDD() bool {
	minNeeded := e.undominatedDPQ.CountMinimumToDominate(e.n - e.totalCovered)
	minTotal := e.d.Size() + minNeeded
	if e.GenerateAll {
		return minTotal <= e.UpperBound && e.n-e.totalFixed >= minNeeded
	}
	return minTotal < e.b.Size() && e.n-e.totalFixed >= minNeeded
}

// evaluateBoundsMDD is boundsSatisfiedDD's ModeMDD counterpart, returning
// a tri-state: 1 (continue), 0 (fatal — this branch cannot recover even
// after further additions, so the caller must force a stop), or -1
// (prune this node only, may not be fatal for the branch as a whole).
func (e *Engine) evaluateBoundsMDD() int {
	minNeeded := e.mddStack.MinVerticesNeeded()
	if minNeeded > e.n {
		return 0
	}
	minTotal := e.d.Size() + minNeeded
	if e.n-e.totalFixed+1 < minNeeded {
		return 0
	}
	if e.n-e.totalFixed+1 == minNeeded {
		return -1
	}
	if e.GenerateAll {
		if minTotal > e.UpperBound {
			return -1
		}
	} else {
		if minTotal >= e.b.Size() {
			return -1
		}
	}
	return 1
}

// chooseNextVertex picks the vertex to branch on next, per Pivot.
func (e *Engine) chooseNextVertex() int {
	switch e.Pivot {
	case PivotMinMDD:
		return e.mddStack.GetMinMDDVertex()
	case PivotMaxMDD:
		return e.mddStack.GetMaxMDDVertex()
	case PivotMinCD:
		if e.Mode == ModeDD {
			return e.candidateDPQ.GetMinUndominatedVertex()
		}
		return e.scanCandidateDegree(true)
	case PivotMaxCD:
		if e.Mode == ModeDD {
			return e.candidateDPQ.GetMaxUndominatedVertex()
		}
		return e.scanCandidateDegree(false)
	}
	return core.InvalidVertex
}

// scanCandidateDegree is ModeMDD's CHOOSE_VERTEX_MIN_CD/MAX_CD: it has no
// candidate-degree DegreePQ to answer this, so it scans the undominated set
// directly. ModeDD never calls this — CandidateDPQ (Heavy) answers the
// same question by walking its rank buckets.
func (e *Engine) scanCandidateDegree(wantMin bool) int {
	result := core.InvalidVertex
	best := 0
	for _, v := range e.undominatedSet.Elements() {
		sz := e.candidateNeighbours[v].Size()
		if result == core.InvalidVertex {
			result, best = v, sz
			continue
		}
		if wantMin && sz < best {
			result, best = v, sz
		} else if !wantMin && sz > best {
			result, best = v, sz
		}
	}
	return result
}

// rankNeighbours returns v's candidate neighbors ordered by uncovered
// degree per Rank, excluding any with uncovered degree 0 (nothing left for
// them to cover, so there's no reason to ever try them first or last).
func (e *Engine) rankNeighbours(v int) []int {
	var candidates []int
	if e.Mode == ModeDD {
		vv, _ := e.g.Vertex(v)
		for _, u := range vv.Neighbors() {
			if e.fixed[u] == 0 {
				candidates = append(candidates, u)
			}
		}
	} else {
		candidates = append(candidates, e.candidateNeighbours[v].Elements()...)
	}

	maxDeg := e.undominatedDPQ.GetMaxDegree()
	if maxDeg < 1 {
		return nil
	}
	buckets := make([][]int, maxDeg+1)
	for _, u := range candidates {
		d := e.undominatedDPQ.RankedDegree(u)
		buckets[d] = append(buckets[d], u)
	}

	out := make([]int, 0, len(candidates))
	if e.Rank == RankDescending {
		for d := maxDeg; d >= 1; d-- {
			out = append(out, buckets[d]...)
		}
	} else {
		for d := 1; d <= maxDeg; d++ {
			out = append(out, buckets[d]...)
		}
	}
	return out
}
