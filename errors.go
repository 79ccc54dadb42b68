package unidom

import (
	"errors"

	"github.com/dominationlab/unidom/core"
)

// ErrUnknownComponent is returned when a CLI directive names a component
// that was never registered under that kind.
var ErrUnknownComponent = errors.New("unidom: unknown component")

// ErrDuplicateComponent is returned by the Register* functions when a name
// is already taken within its kind.
var ErrDuplicateComponent = errors.New("unidom: duplicate component name")

// ErrConfiguration wraps an error arising from a component's rejected CLI
// sub-argument (see ParseArguments). The CLI reports every argument-parsing
// error to the log stream and exits 0 without running the solver — it is
// never a panic. Errors raised later by an input source or preprocess
// filter (a missing required parameter, an out-of-range vertex reference)
// are not wrapped in it; the CLI logs those and exits 1.
var ErrConfiguration = errors.New("unidom: configuration error")

// ErrTooManyVertices and ErrDegreeTooLarge are the graph-construction
// failures that the CLI contract requires be surfaced as configuration
// errors; they alias core's sentinels so callers can errors.Is against
// either package without a second lookup.
var (
	ErrTooManyVertices = core.ErrTooManyVertices
	ErrDegreeTooLarge  = core.ErrDegreeTooLarge
)
