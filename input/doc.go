// Package input registers the InputSource implementations named in the
// reference implementation: basic_input (adjacency lists from standard
// input) and the parametric generators — queen and bishop graphs (with
// their symmetry-restricted variants), covering-code graphs, Kneser
// graphs, and the triangular-board graphs (TG, hexrook).
package input
