package input

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// buildBishopGraph returns the n x n bishop's-graph adjacency: cell (vi,
// vj) is adjacent to every other cell sharing either diagonal.
func buildBishopGraph(n int) (*core.Graph, error) {
	g, err := core.NewGraph(n * n)
	if err != nil {
		return nil, err
	}
	for vi := 0; vi < n; vi++ {
		for vj := 0; vj < n; vj++ {
			v := vi*n + vj
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
			return nil, fmt.Errorf("input: bishop graph: degree of vertex %d exceeds MaxDegree", vert.Index())
		}
	}
	return g, nil
}

type bishopGraphInput struct {
	rangeGenerator
	name, description string
	restrict           queenRestriction
}

func newBishopInput(name, description string, restrict queenRestriction) func() unidom.InputSource {
	return func() unidom.InputSource {
		return &bishopGraphInput{rangeGenerator: newRangeGenerator(), name: name, description: description, restrict: restrict}
	}
}

func (b *bishopGraphInput) Name() string        { return b.name }
func (b *bishopGraphInput) Description() string { return b.description }

func (b *bishopGraphInput) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	ok, err := b.acceptRangeArg(arg, tok)
	if err != nil {
		return err
	}
	if !ok {
		return unidom.ErrUnrecognizedArgument
	}
	return nil
}

func (b *bishopGraphInput) ReadNext(inst *unidom.DominationInstance) (bool, error) {
	n, ok, err := b.next()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	g, err := buildBishopGraph(n)
	if err != nil {
		return false, err
	}
	inst.Graph = g
	inst.ForceIn = nil
	inst.ForceOut = nil
	if b.restrict != nil {
		inst.ForceOut = b.restrict(n)
	}
	return true, nil
}

func init() {
	must(unidom.RegisterInputSource("bishop", "Generates a bishop graph (use -n to set board size)", newBishopInput("bishop", "Generates a bishop graph (use -n to set board size)", nil)))
	must(unidom.RegisterInputSource("border_bishop", "Generates a bishop graph (use -n to set board size) for the border bishop problem, with internal cells restricted.", newBishopInput("border_bishop", "Bishop graph restricted to border cells", borderOut)))
}
