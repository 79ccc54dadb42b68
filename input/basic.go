package input

import (
	"os"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// basicInput reads one adjacency-list graph from standard input per
// ReadNext call, terminating the moment a read fails (EOF included) —
// there is no separator between successive graphs in this format, so a
// single process only ever reads one instance from stdin in practice.
type basicInput struct {
	done bool
}

func newBasicInput() unidom.InputSource { return &basicInput{} }

func (b *basicInput) Name() string        { return "basic_input" }
func (b *basicInput) Description() string { return "Read adjacency lists from standard input" }
func (b *basicInput) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	return unidom.ErrUnrecognizedArgument
}

func (b *basicInput) ReadNext(inst *unidom.DominationInstance) (bool, error) {
	if b.done {
		return false, nil
	}
	b.done = true
	g, err := core.ReadGraph(os.Stdin)
	if err != nil {
		return false, err
	}
	inst.Graph = g
	inst.ForceIn = nil
	inst.ForceOut = nil
	return true, nil
}

func init() {
	must(unidom.RegisterInputSource("basic_input", "Read adjacency lists from standard input", newBasicInput))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
