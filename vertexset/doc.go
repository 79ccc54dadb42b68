// Package vertexset provides a fixed-capacity integer set with O(1)
// add/remove/contains and stable insertion-order iteration.
//
// Contract:
//   - Capacity is fixed at construction (Reset/ResetFull/New take it as n).
//   - Elements are vertex indices in [0, n).
//   - Remove uses swap-with-last, so iteration order can change after a
//     Remove call; RemovePop does not, but only works on the last-added
//     element (the search driver's LIFO stack never needs anything else).
//
// Determinism:
//   - Given the same sequence of Add/Remove/RemovePop calls, two Sets
//     reach the same internal layout.
//
// Complexity:
//   - Contains/Add/Remove/RemovePop: O(1).
//   - Iteration via Elements(): O(size).
package vertexset
