// Package degreepq implements the degree priority queue used by the
// search engine to answer, by walking its rank buckets rather than every
// vertex, "which vertex has the
// fewest/most remaining candidate (or uncovered) neighbors" and "how many
// more vertices are needed to cover m of them".
//
// Internally it is a doubly linked list of rank buckets — one per integer
// rank value currently held by at least one vertex — each bucket carrying
// running counts (total members, unfixed members, undominated members).
// Per the design notes on intrusive structures, the linked list is
// arena-allocated: rank buckets and (in the heavy variant) per-rank lists
// of undominated vertices are addressed by plain integer index into fixed
// slices rather than by pointer, so every splice is bounds-checked
// indexing instead of pointer arithmetic.
//
// Two variants share the same underlying type:
//
//	Light — tracks counts only; used for uncovered-degree bookkeeping.
//	Heavy — additionally threads a per-rank list of undominated vertices,
//	        enabling GetMinUndominatedVertex/GetMaxUndominatedVertex;
//	        used for candidate-degree bookkeeping.
//
// All operations that move a vertex between ranks (Increment/Decrement)
// are paired and O(1): a search-tree edge that calls Increment on the way
// down must call Decrement on the way up (or vice versa) to keep the
// structure consistent with the caller's covered/fixed arrays.
package degreepq
