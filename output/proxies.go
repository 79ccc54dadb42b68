package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// outputAll prints every reported certificate on its own line (size
// followed by each member's RealIndex), terminated by a line containing
// only -1 once the search completes.
type outputAll struct {
	total      int
	printStats bool
}

func newOutputAll() unidom.OutputProxy { return &outputAll{printStats: true} }

func (o *outputAll) Name() string        { return "output_all" }
func (o *outputAll) Description() string { return "Output each certificate on its own line, followed by -1" }

func (o *outputAll) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	switch arg {
	case "-stats":
		o.printStats = true
	case "-nostats":
		o.printStats = false
	default:
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (o *outputAll) Initialize(inst *unidom.DominationInstance) error {
	o.total = 0
	return nil
}

func (o *outputAll) ProcessSet(inst *unidom.DominationInstance, set []int) error {
	o.total++
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "%d ", len(set))
	for _, i := range set {
		v, err := inst.Graph.Vertex(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d ", v.RealIndex())
	}
	fmt.Fprintln(w)
	return w.Flush()
}

func (o *outputAll) Finalize(inst *unidom.DominationInstance) error {
	fmt.Println(-1)
	if o.printStats {
		unidom.Log.Printf("Total Solutions Generated: %d", o.total)
	}
	return nil
}

// outputBest remembers only the most recently reported certificate (which,
// since the search only ever improves its incumbent, is also the best one
// found) and prints it once at Finalize, optionally preceded by the graph.
type outputBest struct {
	best       []int
	printGraph bool
	sizeOnly   bool
}

func newOutputBest() unidom.OutputProxy { return &outputBest{} }

func (o *outputBest) Name() string { return "output_best" }
func (o *outputBest) Description() string {
	return "Output the last certificate only. Use -graph flag to output the graph before the certificate."
}

func (o *outputBest) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	switch arg {
	case "-stats", "-nostats":
		// Accepted for command-line compatibility; output_best never
		// prints statistics in the original either.
	case "-gamma", "-size_only", "-size-only":
		o.sizeOnly = true
	case "-graph":
		o.printGraph = true
	default:
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (o *outputBest) Initialize(inst *unidom.DominationInstance) error {
	o.best = nil
	return nil
}

func (o *outputBest) ProcessSet(inst *unidom.DominationInstance, set []int) error {
	o.best = append(o.best[:0], set...)
	return nil
}

func (o *outputBest) Finalize(inst *unidom.DominationInstance) error {
	if o.printGraph {
		if err := core.WriteGraph(os.Stdout, inst.Graph); err != nil {
			return err
		}
	}
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "%d ", len(o.best))
	if !o.sizeOnly {
		for _, i := range o.best {
			v, err := inst.Graph.Vertex(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d ", v.RealIndex())
		}
	}
	fmt.Fprintln(w)
	return w.Flush()
}

// graphOnly ignores every reported set and prints only the graph.
type graphOnly struct{}

func newGraphOnly() unidom.OutputProxy { return graphOnly{} }

func (graphOnly) Name() string        { return "graph_only" }
func (graphOnly) Description() string { return "Output the graph only (ignore all dominating sets)." }
func (graphOnly) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	return unidom.ErrUnrecognizedArgument
}
func (graphOnly) Initialize(inst *unidom.DominationInstance) error { return nil }
func (graphOnly) ProcessSet(inst *unidom.DominationInstance, set []int) error {
	return nil
}
func (graphOnly) Finalize(inst *unidom.DominationInstance) error {
	return core.WriteGraph(os.Stdout, inst.Graph)
}

func init() {
	must(unidom.RegisterOutputProxy("output_all", "Output each certificate on its own line, followed by -1", newOutputAll))
	must(unidom.RegisterOutputProxy("output_best", "Output the last certificate only. Use -graph flag to output the graph before the certificate.", newOutputBest))
	must(unidom.RegisterOutputProxy("graph_only", "Output the graph only (ignore all dominating sets).", newGraphOnly))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
