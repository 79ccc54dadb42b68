package degreepq

// Heavy is Light plus a per-rank doubly linked list of undominated
// vertices, letting the search engine pick a min- or max-ranked
// undominated vertex to branch on by walking the rank buckets from the low
// or high end instead of scanning every vertex. The extra
// bookkeeping costs one Dominate/Undominate splice per rank change; use
// Light instead wherever that list is never queried.
type Heavy struct{ *base }

// NewHeavy builds a Heavy queue over n vertices, vertex v starting at rank
// degrees[v]. len(degrees) must equal n. Every vertex starts undominated.
func NewHeavy(n int, degrees []int) *Heavy {
	return &Heavy{newFromDegrees(n, true, degrees)}
}

// GetMinUndominatedVertex returns an undominated vertex at the lowest rank
// that has one, or NoVertex if every vertex is dominated.
func (h *Heavy) GetMinUndominatedVertex() int {
	for node := h.head; node != noRank; node = h.rNext[node] {
		if h.rUndom[node] > 0 {
			return h.rUndomHead[node]
		}
	}
	return NoVertex
}

// GetMaxUndominatedVertex returns an undominated vertex at the highest rank
// that has one, or NoVertex if every vertex is dominated.
func (h *Heavy) GetMaxUndominatedVertex() int {
	for node := h.tail; node != noRank; node = h.rPrev[node] {
		if h.rUndom[node] > 0 {
			return h.rUndomHead[node]
		}
	}
	return NoVertex
}
