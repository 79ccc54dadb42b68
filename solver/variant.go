package solver

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/search"
)

// variant describes one registered solver configuration: a fixed
// search.Engine policy (mode, pivot, rank) plus the solver-level knobs
// every registered variant accepts from its own CLI sub-arguments
// (§6: -res, -mod, -resmod_depth, -u/-max, -l/-min, -quiet, -verbose).
type variant struct {
	name        string
	description string
	mode        search.Mode
	pivot       search.PivotRule
	rank        search.RankRule
	recheck     bool
	generateAll bool

	res, mod    uint
	resmodDepth int
	hasResMod   bool
	lower       int
	upper       int
	hasUpper    bool
	verbose     bool
}

func newVariant(v variant) func() unidom.Solver {
	return func() unidom.Solver {
		cp := v
		cp.upper = -1 // sentinel: not yet set by -u/-max
		return &cp
	}
}

func (v *variant) Name() string        { return v.name }
func (v *variant) Description() string { return v.description }

func (v *variant) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	switch arg {
	case "-res":
		n, err := tok.NextUint()
		if err != nil {
			return err
		}
		v.res, v.hasResMod = n, true
	case "-mod":
		n, err := tok.NextUint()
		if err != nil {
			return err
		}
		v.mod, v.hasResMod = n, true
	case "-resmod_depth":
		n, err := tok.NextInt()
		if err != nil {
			return err
		}
		v.resmodDepth = n
	case "-u", "-max":
		n, err := tok.NextInt()
		if err != nil {
			return err
		}
		v.upper, v.hasUpper = n, true
	case "-l", "-min":
		n, err := tok.NextInt()
		if err != nil {
			return err
		}
		v.lower = n
	case "-quiet":
		v.verbose = false
		unidom.SetVerbose(false)
	case "-verbose":
		v.verbose = true
		unidom.SetVerbose(true)
	default:
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (v *variant) Solve(inst *unidom.DominationInstance, out unidom.OutputProxy) error {
	opts := []search.Option{
		search.WithMode(v.mode),
		search.WithPivotRule(v.pivot),
		search.WithRankRule(v.rank),
		search.WithRecheckBoundsInLoop(v.recheck),
		search.WithGenerateAll(v.generateAll),
		search.WithVerbose(v.verbose),
	}
	if v.hasResMod {
		opts = append(opts, search.WithResMod(v.res, v.mod, v.resmodDepth))
	}
	n := inst.Graph.N()
	upper := n
	if v.hasUpper {
		upper = v.upper
	}
	opts = append(opts, search.WithBounds(v.lower, upper))

	e := search.New(opts...)
	if err := e.Solve(inst, out); err != nil {
		return fmt.Errorf("solver: %s: %w", v.name, err)
	}
	return nil
}
