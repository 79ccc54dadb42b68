package input

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// codeGraphInput generates a covering-code graph over base^n length-n
// strings over an alphabet of size base, connecting two strings whenever
// their Hamming distance is at most r. Produces exactly one graph.
type codeGraphInput struct {
	n, r, base int
	baseSet    bool
	done       bool
}

func newCodeGraphInput() unidom.InputSource { return &codeGraphInput{r: 1} }

func (c *codeGraphInput) Name() string { return "code_graph" }
func (c *codeGraphInput) Description() string {
	return "Generates a covering code graph: -n sets dimension, -base sets base, -r sets radius (default 1)."
}

func (c *codeGraphInput) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	switch arg {
	case "-n":
		n, err := tok.NextUint()
		if err != nil {
			return err
		}
		c.n = int(n)
	case "-r":
		r, err := tok.NextUint()
		if err != nil {
			return err
		}
		c.r = int(r)
	case "-base":
		b, err := tok.NextUint()
		if err != nil {
			return err
		}
		c.base, c.baseSet = int(b), true
	default:
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (c *codeGraphInput) ReadNext(inst *unidom.DominationInstance) (bool, error) {
	if c.done {
		return false, nil
	}
	c.done = true
	if c.n == 0 {
		return false, fmt.Errorf("input: code_graph: parameter -n must be at least 1")
	}
	if !c.baseSet {
		return false, fmt.Errorf("input: code_graph: parameter -base is required")
	}
	numVerts := intPow(c.base, c.n)
	dist := hammingDistances(numVerts, c.n, c.base)
	if c.r > 1 {
		for k := 0; k < numVerts; k++ {
			for i := 0; i < numVerts; i++ {
				for j := 0; j < numVerts; j++ {
					if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
						dist[i][j] = via
					}
				}
			}
		}
	}
	g, err := core.NewGraph(numVerts)
	if err != nil {
		return false, err
	}
	for i := 0; i < numVerts; i++ {
		for j := 0; j < numVerts; j++ {
			if i != j && dist[i][j] <= c.r {
				if err := g.AddEdgeSimple(i, j); err != nil {
					return false, err
				}
			}
		}
	}
	inst.Graph = g
	inst.ForceIn = nil
	inst.ForceOut = nil
	return true, nil
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func digits(index, n, base int) []int {
	result := make([]int, n)
	for j := n - 1; j >= 0; j-- {
		result[j] = index % base
		index /= base
	}
	return result
}

func digitsToIndex(ds []int, base int) int {
	k := 0
	for _, d := range ds {
		k = k*base + d
	}
	return k
}

// hammingDistances returns the num_verts x num_verts matrix of one-step
// (Hamming distance 1, capped at a large sentinel) transitions between
// base-ary strings of length n, mirroring the reference generator's
// initial adjacency matrix before any Floyd-Warshall widening.
func hammingDistances(numVerts, n, base int) [][]int {
	const unreachable = 1 << 29
	dist := make([][]int, numVerts)
	for i := range dist {
		dist[i] = make([]int, numVerts)
		for j := range dist[i] {
			dist[i][j] = unreachable
		}
		dist[i][i] = 0
	}
	for i := 0; i < numVerts; i++ {
		ds := digits(i, n, base)
		for j := 0; j < n; j++ {
			oldJ := ds[j]
			for k := 0; k < base; k++ {
				if k == oldJ {
					continue
				}
				ds[j] = k
				dist[i][digitsToIndex(ds, base)] = 1
			}
			ds[j] = oldJ
		}
	}
	return dist
}

func init() {
	must(unidom.RegisterInputSource("code_graph", "Generates a covering code graph: -n sets dimension, -base sets base, -r sets radius (default 1).", newCodeGraphInput))
}
