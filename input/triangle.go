package input

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// triangleIndex maps (row, col) in an n-row triangular board to a flat
// vertex index — row 0 has 1 cell, row r has r+1 cells, row r starts
// right after r*(r+1)/2 earlier cells. Shared by the triangular grid
// (TG) and hex rook (hexrook) generators.
func triangleIndex(row, col int) int { return row*(row+1)/2 + col }

type triangleGraphInput struct {
	n, numVerts int
	done        bool
	build       func(n int, g *core.Graph) error
	name, desc  string
}

func newTrigridInput() unidom.InputSource {
	return &triangleGraphInput{build: buildTrigrid, name: "TG", desc: "Generates a Triangular Grid Graph (use -n to set the order)."}
}

func newHexrookInput() unidom.InputSource {
	return &triangleGraphInput{build: buildHexrook, name: "hexrook", desc: "Generates a Hex Rook Graph (use -n to set the order)."}
}

func (t *triangleGraphInput) Name() string        { return t.name }
func (t *triangleGraphInput) Description() string { return t.desc }

func (t *triangleGraphInput) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	if arg == "-n" {
		n, err := tok.NextUint()
		if err != nil {
			return err
		}
		t.n = int(n)
		return nil
	}
	return unidom.ErrUnrecognizedArgument
}

func (t *triangleGraphInput) ReadNext(inst *unidom.DominationInstance) (bool, error) {
	if t.done {
		return false, nil
	}
	t.done = true
	if t.n == 0 {
		return false, fmt.Errorf("input: %s: parameter -n must be at least 1", t.name)
	}
	total := triangleIndex(t.n, 0)
	g, err := core.NewGraph(total)
	if err != nil {
		return false, err
	}
	if err := t.build(t.n, g); err != nil {
		return false, err
	}
	inst.Graph = g
	inst.ForceIn = nil
	inst.ForceOut = nil
	return true, nil
}

// lastGeneratedN exposes the board order of the generated graph. The
// triangle_board output proxy does not call it; it derives the order from
// the graph's vertex count.
func (t *triangleGraphInput) lastGeneratedN() int { return t.n }

func buildTrigrid(n int, g *core.Graph) error {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := triangleIndex(i, j)
			if i > 0 {
				if j > 0 {
					if err := g.AddEdgeSimple(v, triangleIndex(i-1, j-1)); err != nil {
						return err
					}
				}
				if j < i {
					if err := g.AddEdgeSimple(v, triangleIndex(i-1, j)); err != nil {
						return err
					}
				}
			}
			if j > 0 {
				if err := g.AddEdgeSimple(v, triangleIndex(i, j-1)); err != nil {
					return err
				}
			}
			if j < i {
				if err := g.AddEdgeSimple(v, triangleIndex(i, j+1)); err != nil {
					return err
				}
			}
			if i < n-1 {
				if err := g.AddEdgeSimple(v, triangleIndex(i+1, j)); err != nil {
					return err
				}
				if err := g.AddEdgeSimple(v, triangleIndex(i+1, j+1)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func buildHexrook(n int, g *core.Graph) error {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := triangleIndex(i, j)
			for k := 0; k <= i; k++ {
				if k != j {
					if err := g.AddEdgeSimple(v, triangleIndex(i, k)); err != nil {
						return err
					}
				}
			}
			for k := j; k < n; k++ {
				if k != i {
					if err := g.AddEdgeSimple(v, triangleIndex(k, j)); err != nil {
						return err
					}
				}
			}
			for k := -n; k < n; k++ {
				ni, nj := i+k, j+k
				if ni < 0 || ni >= n || nj < 0 || nj >= n {
					continue
				}
				if ni == i && nj == j {
					continue
				}
				if err := g.AddEdgeSimple(v, triangleIndex(ni, nj)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func init() {
	must(unidom.RegisterInputSource("TG", "Generates a Triangular Grid Graph (use -n to set the order).", newTrigridInput))
	must(unidom.RegisterInputSource("hexrook", "Generates a Hex Rook Graph (use -n to set the order).", newHexrookInput))
}
