package core

import "errors"

// ErrTooManyVertices is returned by Reset when n is negative or not below
// MaxVerts.
var ErrTooManyVertices = errors.New("core: graph with too many vertices")

// ErrDegreeTooLarge is returned when a vertex's adjacency list would
// exceed MaxDegree.
var ErrDegreeTooLarge = errors.New("core: vertex degree too large")

// ErrVertexOutOfRange is returned when a vertex index falls outside
// [0, n) for the graph's current size.
var ErrVertexOutOfRange = errors.New("core: vertex index out of range")

// ErrMalformedInput is returned by ReadGraph when the text format is
// inconsistent (wrong token count, negative degree, etc).
var ErrMalformedInput = errors.New("core: malformed graph input")

// ErrPermutationInvalid is returned by Renumber when the supplied
// permutation is not a bijection on [0, n).
var ErrPermutationInvalid = errors.New("core: invalid renumbering permutation")
