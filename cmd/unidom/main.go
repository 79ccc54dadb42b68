// Command unidom wires an input source, zero or more preprocess
// filters, a solver, and an output proxy together from the command
// line and runs the resulting pipeline to exhaustion.
//
// Usage: unidom [-seed N] [-h|-help] -I name [args...] [-F name [args...]]... -S name [args...] -O name [args...]
//
// Omitting -I/-S/-O falls back to basic_input/fixed_order/output_all
// respectively. -h/-help prints every registered component and exits.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dominationlab/unidom"
	_ "github.com/dominationlab/unidom/filters"
	_ "github.com/dominationlab/unidom/input"
	_ "github.com/dominationlab/unidom/output"
	_ "github.com/dominationlab/unidom/solver"
)

const (
	defaultInputSource = "basic_input"
	defaultSolver      = "fixed_order"
	defaultOutputProxy = "output_all"
)

func main() {
	if len(os.Args) == 1 {
		unidom.Log.Println("Use the -h flag for a list of components")
	}
	pipeline, err := parseArguments(os.Args[1:])
	if err != nil {
		if err == errHelpRequested {
			os.Exit(0)
		}
		unidom.Log.Println(err)
		os.Exit(0)
	}
	if err := run(pipeline); err != nil {
		unidom.Log.Println(err)
		os.Exit(1)
	}
}

type pipeline struct {
	inputSource unidom.InputSource
	filters     []unidom.PreprocessFilter
	solver      unidom.Solver
	output      unidom.OutputProxy
}

func run(p *pipeline) error {
	describePipeline(p)
	for {
		inst := &unidom.DominationInstance{}
		ok, err := p.inputSource.ReadNext(inst)
		if err != nil {
			return fmt.Errorf("unidom: reading input: %w", err)
		}
		if !ok {
			return nil
		}
		for _, f := range p.filters {
			if err := f.Process(inst); err != nil {
				return fmt.Errorf("unidom: filter %s: %w", f.Name(), err)
			}
		}
		start := time.Now()
		if err := p.solver.Solve(inst, p.output); err != nil {
			return fmt.Errorf("unidom: solving: %w", err)
		}
		unidom.Log.Printf("Total Solver Time: %s", time.Since(start))
	}
}

func describePipeline(p *pipeline) {
	unidom.Log.Printf("Input source: %s", p.inputSource.Name())
	if len(p.filters) > 0 {
		names := make([]string, len(p.filters))
		for i, f := range p.filters {
			names[i] = f.Name()
		}
		plural := "s"
		if len(p.filters) == 1 {
			plural = ""
		}
		unidom.Log.Printf("Filter%s: %v", plural, names)
	}
	unidom.Log.Printf("Solver: %s", p.solver.Name())
	unidom.Log.Printf("Output: %s", p.output.Name())
}

func describeComponents() {
	for _, c := range unidom.ListComponents() {
		fmt.Printf("%-16s %-24s %s\n", c.Kind, c.Name, c.Description)
	}
}

var errHelpRequested = fmt.Errorf("unidom: help requested")

func parseArguments(args []string) (*pipeline, error) {
	tok := &stackedTokenizer{args: args}
	p := &pipeline{}
	for tok.HasNext() {
		s, err := tok.NextString()
		if err != nil {
			return nil, err
		}
		prefix := s
		if len(s) >= 2 {
			prefix = s[:2]
		}
		switch {
		case s == "-seed":
			seed, err := tok.NextInt()
			if err != nil {
				return nil, fmt.Errorf("unidom: -seed: %w", err)
			}
			unidom.SeedGlobal(uint64(seed))
		case s == "-help" || s == "-h":
			describeComponents()
			return nil, errHelpRequested
		case prefix == "-I":
			if p.inputSource != nil {
				return nil, fmt.Errorf("unidom: duplicate input source directive %q", s)
			}
			name, err := tok.NextString()
			if err != nil {
				return nil, err
			}
			src, err := unidom.NewInputSource(name)
			if err != nil {
				return nil, fmt.Errorf("unidom: invalid input source %q: %w", name, err)
			}
			if err := stackArgumentParse(tok, src); err != nil {
				return nil, err
			}
			p.inputSource = src
		case prefix == "-S":
			if p.solver != nil {
				return nil, fmt.Errorf("unidom: duplicate solver directive %q", s)
			}
			name, err := tok.NextString()
			if err != nil {
				return nil, err
			}
			sv, err := unidom.NewSolver(name)
			if err != nil {
				return nil, fmt.Errorf("unidom: invalid solver %q: %w", name, err)
			}
			if err := stackArgumentParse(tok, sv); err != nil {
				return nil, err
			}
			p.solver = sv
		case prefix == "-F":
			name, err := tok.NextString()
			if err != nil {
				return nil, err
			}
			filter, err := unidom.NewPreprocessFilter(name)
			if err != nil {
				return nil, fmt.Errorf("unidom: invalid preprocess filter %q: %w", name, err)
			}
			if err := stackArgumentParse(tok, filter); err != nil {
				return nil, err
			}
			p.filters = append(p.filters, filter)
		case prefix == "-O":
			if p.output != nil {
				return nil, fmt.Errorf("unidom: duplicate output proxy directive %q", s)
			}
			name, err := tok.NextString()
			if err != nil {
				return nil, err
			}
			out, err := unidom.NewOutputProxy(name)
			if err != nil {
				return nil, fmt.Errorf("unidom: invalid output proxy %q: %w", name, err)
			}
			if err := stackArgumentParse(tok, out); err != nil {
				return nil, err
			}
			p.output = out
		default:
			return nil, fmt.Errorf("unidom: invalid argument %q", s)
		}
	}
	if p.inputSource == nil {
		src, err := unidom.NewInputSource(defaultInputSource)
		if err != nil {
			return nil, err
		}
		p.inputSource = src
	}
	if p.solver == nil {
		sv, err := unidom.NewSolver(defaultSolver)
		if err != nil {
			return nil, err
		}
		p.solver = sv
	}
	if p.output == nil {
		out, err := unidom.NewOutputProxy(defaultOutputProxy)
		if err != nil {
			return nil, err
		}
		p.output = out
	}
	return p, nil
}

// stackArgumentParse peels off every token up to (but excluding) the next
// root-level directive (-seed/-h/-help/-I*/-S*/-F*/-O*) and feeds them to
// component via unidom.ParseArguments.
func stackArgumentParse(tok *stackedTokenizer, component unidom.Configurable) error {
	var subArgs []string
	for tok.HasNext() && !isRootArgument(tok.peek()) {
		s, err := tok.NextString()
		if err != nil {
			return err
		}
		subArgs = append(subArgs, s)
	}
	sub := &stackedTokenizer{args: subArgs}
	if err := unidom.ParseArguments(component, sub); err != nil {
		return fmt.Errorf("unidom: %s: %w", component.Name(), err)
	}
	return nil
}

func isRootArgument(s string) bool {
	if s == "-seed" || s == "-h" || s == "-help" {
		return true
	}
	if len(s) < 2 {
		return false
	}
	switch s[:2] {
	case "-I", "-S", "-F", "-O":
		return true
	}
	return false
}

// stackedTokenizer implements unidom.ArgumentTokenizer over a plain
// []string slice with a cursor, the Go analogue of the reference
// implementation's StackedArgumentTokenizer.
type stackedTokenizer struct {
	args []string
	idx  int
}

func (t *stackedTokenizer) HasNext() bool { return t.idx < len(t.args) }

func (t *stackedTokenizer) peek() string {
	if !t.HasNext() {
		return ""
	}
	return t.args[t.idx]
}

func (t *stackedTokenizer) NextString() (string, error) {
	if !t.HasNext() {
		return "", fmt.Errorf("unidom: expected an argument, found none")
	}
	s := t.args[t.idx]
	t.idx++
	return s, nil
}

func (t *stackedTokenizer) NextInt() (int, error) {
	s, err := t.NextString()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unidom: expected an integer, not %q", s)
	}
	return n, nil
}

func (t *stackedTokenizer) NextUint() (uint, error) {
	s, err := t.NextString()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unidom: expected a positive integer, not %q", s)
	}
	return uint(n), nil
}

func (t *stackedTokenizer) NextFloat() (float64, error) {
	s, err := t.NextString()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unidom: expected a float, not %q", s)
	}
	return f, nil
}
