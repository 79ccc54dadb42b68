package filters

import (
	"bytes"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// printGraphStderr writes the instance's current graph to the diagnostic
// log without otherwise touching the instance — useful for inspecting
// what an earlier filter (e.g. a renumber_* pass) actually produced.
type printGraphStderr struct{}

func (printGraphStderr) Name() string        { return "print_graph_stderr" }
func (printGraphStderr) Description() string { return "Print the graph to stderr." }
func (printGraphStderr) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	return unidom.ErrUnrecognizedArgument
}

func (printGraphStderr) Process(inst *unidom.DominationInstance) error {
	var buf bytes.Buffer
	if err := core.WriteGraph(&buf, inst.Graph); err != nil {
		return err
	}
	unidom.Log.Print(buf.String())
	return nil
}

func init() {
	must(unidom.RegisterPreprocessFilter("print_graph_stderr", "Print the graph to stderr.", func() unidom.PreprocessFilter {
		return printGraphStderr{}
	}))
}
