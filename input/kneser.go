package input

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// kneserInput generates the Kneser graph K(n,k): one vertex per n-bit
// integer with popcount k, two vertices adjacent iff their bitmasks are
// disjoint.
type kneserInput struct {
	n, k int
	kSet bool
	done bool
}

func newKneserInput() unidom.InputSource { return &kneserInput{} }

func (g *kneserInput) Name() string { return "kneser" }
func (g *kneserInput) Description() string {
	return "Generates a Kneser graph: -n sets dimension, -k sets subset size."
}

func (g *kneserInput) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	switch arg {
	case "-n":
		n, err := tok.NextUint()
		if err != nil {
			return err
		}
		g.n = int(n)
	case "-k":
		k, err := tok.NextUint()
		if err != nil {
			return err
		}
		g.k, g.kSet = int(k), true
	default:
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (g *kneserInput) ReadNext(inst *unidom.DominationInstance) (bool, error) {
	if g.done {
		return false, nil
	}
	g.done = true
	if g.n == 0 {
		return false, fmt.Errorf("input: kneser: parameter -n must be at least 1")
	}
	if g.n > 31 {
		return false, fmt.Errorf("input: kneser: parameter -n must be at most 31")
	}
	if !g.kSet {
		return false, fmt.Errorf("input: kneser: parameter -k is required")
	}
	var vertices []int
	generateByPopCount(g.n, g.k, 0, func(mask int) { vertices = append(vertices, mask) })

	graph, err := core.NewGraph(len(vertices))
	if err != nil {
		return false, err
	}
	for i := range vertices {
		for j := range vertices {
			if i != j && vertices[i]&vertices[j] == 0 {
				if err := graph.AddEdgeSimple(i, j); err != nil {
					return false, err
				}
			}
		}
	}
	inst.Graph = graph
	inst.ForceIn = nil
	inst.ForceOut = nil
	return true, nil
}

// generateByPopCount enumerates, via callback, every n-bit mask with
// exactly count bits set, built high-bit-first the way the reference
// recursion constructs prefix.
func generateByPopCount(n, count, prefix int, callback func(int)) {
	if count == 0 {
		callback(prefix << n)
		return
	}
	if n == 1 {
		callback((prefix << 1) | 1)
		return
	}
	if count < n {
		generateByPopCount(n-1, count, prefix<<1, callback)
	}
	generateByPopCount(n-1, count-1, (prefix<<1)|1, callback)
}

func init() {
	must(unidom.RegisterInputSource("kneser", "Generates a Kneser graph: -n sets dimension, -k sets subset size.", newKneserInput))
}
