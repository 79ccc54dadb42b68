package input

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// buildQueenGraph returns the n x n queen's-graph adjacency (cell (vi,
// vj) at index vi*n+vj, adjacent to every other cell sharing its row,
// column, or either diagonal).
func buildQueenGraph(n int) (*core.Graph, error) {
	g, err := core.NewGraph(n * n)
	if err != nil {
		return nil, err
	}
	for vi := 0; vi < n; vi++ {
		for vj := 0; vj < n; vj++ {
			v := vi*n + vj
			for uj := 0; uj < n; uj++ {
				if u := vi*n + uj; u != v {
					if err := g.AddEdgeSimple(v, u); err != nil {
						return nil, err
					}
				}
			}
			for ui := 0; ui < n; ui++ {
				if u := ui*n + vj; u != v {
					if err := g.AddEdgeSimple(v, u); err != nil {
						return nil, err
					}
				}
			}
			for k := -n; k < n; k++ {
				if ui, uj := vi+k, vj+k; ui >= 0 && ui < n && uj >= 0 && uj < n {
					if u := ui*n + uj; u != v {
						if err := g.AddEdgeSimple(v, u); err != nil {
							return nil, err
						}
					}
				}
				if ui, uj := vi+k, vj-k; ui >= 0 && ui < n && uj >= 0 && uj < n {
					if u := ui*n + uj; u != v {
						if err := g.AddEdgeSimple(v, u); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}
	for _, vert := range g.Vertices() {
		if vert.Degree() >= core.MaxDegree {
			return nil, fmt.Errorf("input: queen graph: degree of vertex %d exceeds MaxDegree", vert.Index())
		}
	}
	return g, nil
}

// queenRestriction narrows the candidate dominators to some subset of
// cells, force_out-ing everything else — the various "queen problem"
// variants studied in the domination literature.
type queenRestriction func(n int) []int

type queenGraphInput struct {
	rangeGenerator
	name, description string
	restrict           queenRestriction
}

func newQueenInput(name, description string, restrict queenRestriction) func() unidom.InputSource {
	return func() unidom.InputSource {
		return &queenGraphInput{rangeGenerator: newRangeGenerator(), name: name, description: description, restrict: restrict}
	}
}

func (q *queenGraphInput) Name() string        { return q.name }
func (q *queenGraphInput) Description() string { return q.description }

func (q *queenGraphInput) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	ok, err := q.acceptRangeArg(arg, tok)
	if err != nil {
		return err
	}
	if !ok {
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (q *queenGraphInput) ReadNext(inst *unidom.DominationInstance) (bool, error) {
	n, ok, err := q.next()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	g, err := buildQueenGraph(n)
	if err != nil {
		return false, err
	}
	inst.Graph = g
	inst.ForceIn = nil
	inst.ForceOut = nil
	if q.restrict != nil {
		inst.ForceOut = q.restrict(n)
	}
	return true, nil
}

func topLeftQuadrantOut(n int) []int {
	var out []int
	for vi := 0; vi < (n+1)/2; vi++ {
		for vj := (n + 1) / 2; vj < n; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	for vi := (n + 1) / 2; vi < n; vi++ {
		for vj := 0; vj < n; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func tlbrOut(n int) []int {
	var out []int
	for vi := 0; vi < (n+1)/2; vi++ {
		for vj := (n + 1) / 2; vj < n; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	for vi := (n + 1) / 2; vi < n; vi++ {
		for vj := 0; vj < (n+1)/2; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func upperTriangleOut(n int) []int {
	var out []int
	for vi := 0; vi < n; vi++ {
		for vj := 0; vj < vi; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func upperTriangleExclusiveOut(n int) []int {
	var out []int
	for vi := 0; vi < n; vi++ {
		for vj := 0; vj <= vi; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func borderOut(n int) []int {
	var out []int
	for vi := 1; vi < n-1; vi++ {
		for vj := 1; vj < n-1; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func leftBorderOut(n int) []int {
	var out []int
	for vi := 0; vi < n; vi++ {
		for vj := 1; vj < n; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func topLeftBorderOut(n int) []int {
	var out []int
	for vi := 1; vi < n; vi++ {
		for vj := 1; vj < n; vj++ {
			out = append(out, vi*n+vj)
		}
	}
	return out
}

func diagonalOut(n int) []int {
	var out []int
	for vi := 0; vi < n; vi++ {
		for vj := 0; vj < n; vj++ {
			if vi != vj {
				out = append(out, vi*n+vj)
			}
		}
	}
	return out
}

func xdiagonalOut(n int) []int {
	var out []int
	for vi := 0; vi < n; vi++ {
		for vj := 0; vj < n; vj++ {
			if vi != vj && vi != n-vj-1 {
				out = append(out, vi*n+vj)
			}
		}
	}
	return out
}

func init() {
	must(unidom.RegisterInputSource("queen", "Generates a queen graph (use -n to set board size)", newQueenInput("queen", "Generates a queen graph (use -n to set board size)", nil)))
	must(unidom.RegisterInputSource("queen_topleft", "Generates a queen graph (use -n to set board size) for the topleft-queen problem, with all cells outside the top left quadrant restricted.", newQueenInput("queen_topleft", "Queen graph restricted to the top-left quadrant", topLeftQuadrantOut)))
	must(unidom.RegisterInputSource("queen_tlbr", "Generates a queen graph (use -n to set board size) for the TLBR-queen problem, with all cells outside the top left and bottom right quadrants restricted.", newQueenInput("queen_tlbr", "Queen graph restricted to the top-left and bottom-right quadrants", tlbrOut)))
	must(unidom.RegisterInputSource("queen_ut", "Generates a queen graph (use -n to set board size) for the uppertriangle-queen problem, with all cells below the diagonal restricted.", newQueenInput("queen_ut", "Queen graph restricted to the upper triangle", upperTriangleOut)))
	must(unidom.RegisterInputSource("queen_utx", "Generates a queen graph (use -n to set board size) for the exclusive uppertriangle-queen problem, with all cells on or below the diagonal restricted.", newQueenInput("queen_utx", "Queen graph restricted to the upper triangle, diagonal excluded", upperTriangleExclusiveOut)))
	must(unidom.RegisterInputSource("border_queen", "Generates a queen graph (use -n to set board size) for the border queen problem, with internal cells restricted.", newQueenInput("border_queen", "Queen graph restricted to border cells", borderOut)))
	must(unidom.RegisterInputSource("border_queen_left", "Generates a queen graph (use -n to set board size) for the left-border queen problem, with cells in columns 1 - n-1 restricted.", newQueenInput("border_queen_left", "Queen graph restricted to column 0", leftBorderOut)))
	must(unidom.RegisterInputSource("border_queen_top_left", "Generates a queen graph (use -n to set board size) for the left-border queen problem, with cells not in row 0 or column 0 restricted.", newQueenInput("border_queen_top_left", "Queen graph restricted to row 0 or column 0", topLeftBorderOut)))
	must(unidom.RegisterInputSource("diagonal_queen", "Generates a queen graph (use -n to set board size) for the diagonal queen problem, with non-diagonal cells restricted.", newQueenInput("diagonal_queen", "Queen graph restricted to the main diagonal", diagonalOut)))
	must(unidom.RegisterInputSource("xdiagonal_queen", "Generates a queen graph (use -n to set board size) for the cross-diagonal queen problem, with non-diagonal cells restricted.", newQueenInput("xdiagonal_queen", "Queen graph restricted to both diagonals", xdiagonalOut)))
}
