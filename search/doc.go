// Package search implements the recursive branch-and-bound driver that
// finds minimum (or enumerates all) dominating sets of a graph.
//
// Engine is the one driver behind every search variant in package solver:
// which vertex to branch on next (PivotRule), which order to try its
// candidate neighbors in (RankRule), whether to stop trying a pivot's
// remaining candidates once adding one leaves some undominated vertex with
// no candidate dominator (ForceStopOnTrapped), whether to
// re-evaluate the lower bound after each child call instead of only once
// before the loop (RecheckBoundsInLoop), and whether to enumerate every
// dominating set in range rather than report only each new smallest set
// (GenerateAll) are all struct fields rather than five separate compiled
// variants — see DESIGN.md for why a field-configured engine was chosen
// over maintaining parallel DD/MDD implementations.
//
// Engine runs in three bookkeeping modes:
//
//	ModeDD  — tracks candidate degree with a degreepq.Heavy; cheaper per
//	          node, supports only the MinCD/MaxCD pivot rules.
//	ModeMDD — additionally tracks the MDD lower bound via mddstack.Stack;
//	          costs more per node but supports MinMDD/MaxMDD pivoting and
//	          a tighter bound, usually pruning more of the tree.
//	ModeFixed — no DPQ, no MDDStack: the pivot is always the smallest-
//	          index uncovered vertex, and the bound is a single
//	          precomputed max_deg rather than a live degree distribution.
//	          Pivot/Rank are ignored; this is the cheapest-per-node,
//	          weakest-pruning baseline.
//
// The search mutates its input graph in place (self-loops are added,
// adjacency lists are sorted) and is not safe to call concurrently on the
// same Engine or the same Graph.
package search
