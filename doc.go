// Package unidom computes minimum dominating sets of undirected graphs.
//
// Given a graph G = (V, E) and two disjoint vertex subsets — a force-in set
// that must lie in the dominating set and a force-out set that must not —
// the core search engine finds a subset D ⊆ V such that every vertex is
// either in D or adjacent to a vertex in D, either minimizing |D|
// (optimization mode) or enumerating every such D within a size range
// (generation mode).
//
// The hard engineering lives in six subpackages:
//
//	vertexset/ — fixed-capacity O(1) integer set with stable iteration
//	core/      — vertex-indexed adjacency-list graph, renumbering, text I/O
//	degreepq/  — priority queue over vertices bucketed by integer rank
//	mddstack/  — incremental Maximum-Dominator-Degree lower bound
//	search/    — the recursive branch-and-bound driver
//	solver/    — registered search variants (pivot/rank/generate policies)
//
// Everything else — input sources, preprocess filters, output proxies, and
// the CLI in cmd/unidom — is an external collaborator that talks to the
// core only through the Configurable interfaces declared in this package.
//
//	go get github.com/dominationlab/unidom
package unidom
