package search

// findDominatingSetFixed is ModeFixed's recursion: no DPQ, no MDDStack,
// just the covered/fixed arrays and a single precomputed max_deg. The
// pivot i is threaded explicitly through the recursion (the smallest-
// index uncovered vertex at or after i) rather than recomputed from
// search state the way the DD/MDD pivots are.
func (e *Engine) findDominatingSetFixed(i int, checkResDepth bool) int {
	depth := e.d.Size()
	switch e.reportNode(depth, checkResDepth) {
	case 0:
		return 1
	case 1:
		if checkResDepth {
			e.unreportNode(depth)
			return e.findDominatingSetFixed(i, false)
		}
	}

	if e.totalCovered == e.n {
		e.reportSolution()
		return 1
	}

	for i < e.n && e.covered[i] != 0 {
		i++
	}
	if i >= e.n {
		panic("search: findDominatingSetFixed: no uncovered vertex left but totalCovered < n")
	}

	minNeeded := (e.n - e.totalCovered + e.maxDeg) / (e.maxDeg + 1)
	minTotal := e.d.Size() + minNeeded
	if e.GenerateAll {
		if minTotal > e.UpperBound || e.n-e.totalFixed < minNeeded {
			return 1
		}
	} else {
		if minTotal >= e.b.Size() || e.n-e.totalFixed < minNeeded {
			return 1
		}
	}

	vi, _ := e.g.Vertex(i)
	nbrs := vi.Neighbors()
	neighbourArray := make([]int, 0, len(nbrs)+1)
	if e.fixed[i] == 0 {
		neighbourArray = append(neighbourArray, i)
	}
	for _, j := range nbrs {
		if e.fixed[j] == 0 && e.covered[j] == 0 && j != i {
			neighbourArray = append(neighbourArray, j)
		}
	}
	for _, j := range nbrs {
		if e.fixed[j] == 0 && e.covered[j] != 0 {
			neighbourArray = append(neighbourArray, j)
		}
	}

	fixedList := make([]int, 0, len(neighbourArray))
	for _, j := range neighbourArray {
		e.addVertexToSetFixed(i, j, &fixedList, checkResDepth)
	}

	for k := len(fixedList) - 1; k >= 0; k-- {
		e.fixed[fixedList[k]] = 0
		e.totalFixed--
	}
	return 1
}

func (e *Engine) addVertexToSetFixed(i, j int, fixedList *[]int, checkResDepth bool) {
	e.fixed[j] = 1
	e.totalFixed++
	*fixedList = append(*fixedList, j)
	_ = e.d.Add(j)

	vj, _ := e.g.Vertex(j)
	nbrs := vj.Neighbors()
	for _, k := range nbrs {
		if e.covered[k] == 0 {
			e.totalCovered++
		}
		e.covered[k]++
	}
	if e.covered[i] == 0 {
		panic("search: addVertexToSetFixed: pivot not covered after adding its own dominator")
	}

	e.findDominatingSetFixed(i+1, checkResDepth)

	for _, k := range nbrs {
		e.covered[k]--
		if e.covered[k] == 0 {
			e.totalCovered--
		}
	}
	_ = e.d.RemovePop(j)
}
