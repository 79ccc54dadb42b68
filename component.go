package unidom

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedArgument is returned by a Configurable's AcceptArgument
// when it does not recognize the token it was handed; ParseArguments turns
// this into a wrapped ErrConfiguration.
var ErrUnrecognizedArgument = errors.New("unidom: unrecognized argument")

// ArgumentTokenizer feeds a Configurable's sub-arguments one token at a
// time, starting immediately after the component's own `-I`/`-F`/`-S`/`-O`
// selector and ending at the next top-level directive.
type ArgumentTokenizer interface {
	NextString() (string, error)
	NextInt() (int, error)
	NextUint() (uint, error)
	NextFloat() (float64, error)
	HasNext() bool
}

// Configurable is the shared contract every registered component
// implements: a name and description for the registry and -h listing, and
// the ability to consume its own sub-arguments.
type Configurable interface {
	Name() string
	Description() string
	// AcceptArgument consumes one already-read token (and, via tok, any
	// further tokens that argument requires) or returns
	// ErrUnrecognizedArgument if it does not recognize argument.
	AcceptArgument(argument string, tok ArgumentTokenizer) error
}

// ParseArguments drains tok by repeatedly calling c.AcceptArgument, the
// default control flow every Configurable gets for free — only
// AcceptArgument itself needs to vary per component.
func ParseArguments(c Configurable, tok ArgumentTokenizer) error {
	for tok.HasNext() {
		arg, err := tok.NextString()
		if err != nil {
			return fmt.Errorf("unidom: %s: %w", c.Name(), err)
		}
		if err := c.AcceptArgument(arg, tok); err != nil {
			return fmt.Errorf("unidom: %s: %w: %q", c.Name(), ErrConfiguration, arg)
		}
	}
	return nil
}

// InputSource builds DominationInstances, one per ReadNext call, until it
// reports ok == false — input-source termination is not an error (§7).
type InputSource interface {
	Configurable
	ReadNext(inst *DominationInstance) (ok bool, err error)
}

// PreprocessFilter mutates an instance after input and before solving. It
// must preserve the instance invariants (§3) or return a configuration
// error before the solver ever runs.
type PreprocessFilter interface {
	Configurable
	Process(inst *DominationInstance) error
}

// OutputProxy receives every dominating set a solver considers worth
// reporting. Its three lifecycle methods are exactly search.OutputProxy's
// method set, so any OutputProxy can be passed directly to a
// search.Engine's Solve.
type OutputProxy interface {
	Configurable
	Initialize(inst *DominationInstance) error
	ProcessSet(inst *DominationInstance, set []int) error
	Finalize(inst *DominationInstance) error
}

// ErrTerminateOutput signals that an OutputProxy wants the solver to stop
// backtracking early and finalize cleanly, without treating this as a
// failure. ProcessSet returns it to request this.
var ErrTerminateOutput = errors.New("unidom: output proxy requested termination")

// Solver runs a search.Engine (or, for the fixed-order variants, the same
// engine in ModeFixed) over an instance, reporting to out.
type Solver interface {
	Configurable
	Solve(inst *DominationInstance, out OutputProxy) error
}
