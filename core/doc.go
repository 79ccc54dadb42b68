// Package core defines the Graph and Vertex types used throughout unidom:
// a vertex-indexed adjacency-list graph over the dense range [0, n), plus
// duplicate-free edge insertion, descending neighbor sorting, self-loop
// augmentation, renumbering, and a round-trippable text format.
//
// Vertices are identified by small integers rather than strings (unlike
// lvlath's core.Graph) because the search engine indexes straight into
// fixed-size arrays on the hot path — see search.Engine. Each vertex also
// carries a RealIndex that survives Renumber, so solutions can always be
// reported in terms of the graph the caller originally supplied.
//
// Construction (AddEdgeSimple, AddSelfLoop, Reset) is guarded by a RWMutex so that
// an input source or preprocess filter can be built concurrently with
// other bookkeeping; the search engine itself never touches the lock; the
// spec requires it to be single-threaded and lock-free (see search.Engine).
package core
