// Package mddstack maintains the Maximum-uncovered-Degree-among-Dominators
// (MDD) lower bound incrementally across the search tree.
//
// For an undominated vertex u, MDD(u) is the highest uncovered-degree rank,
// among u's still-candidate neighbors, that any of those neighbors holds in
// the uncovered-degree DegreePQ. Walking the MDD buckets from the lowest up
// and letting each pick cover MDD vertices of the running undominated count
// (MinVerticesNeeded) gives a lower bound on how many
// more dominators the current partial solution still needs: any single
// added dominator can cover at most MDD(u) undominated vertices from u's
// bucket, so no fewer than that many additions can finish the job.
//
// AddDominator recomputes the MDD of every still-undominated vertex, an
// O(n) rescan per call; ExcludeDominator recomputes only the undominated
// neighbors of the excluded vertex. Each records the values it changed on
// an internal stack so RemoveDominator/UnexcludeDominator can restore them
// in the same number of steps — mirroring the reversible-mutation pattern
// used throughout the search engine (push on the way down the recursion,
// pop on the way back up).
package mddstack
