package degreepq

// Light tracks, for each vertex, a rank that moves up and down as the
// search engine covers and uncovers vertices, exposing only the aggregate
// counts needed for GetMinDegree/GetMaxDegree/CountMinimumToDominate. It is
// the cheaper of the two variants: callers that never need to enumerate
// undominated vertices by rank (the uncovered-degree queue used for
// candidate selection) should prefer it over Heavy.
type Light struct{ *base }

// NewLight builds a Light queue over n vertices, vertex v starting at rank
// degrees[v]. len(degrees) must equal n.
func NewLight(n int, degrees []int) *Light {
	return &Light{newFromDegrees(n, false, degrees)}
}
