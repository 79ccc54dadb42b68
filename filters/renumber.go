package filters

import (
	"fmt"
	"sort"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/core"
)

// renumberFilter replaces an instance's graph with an isomorphic copy
// under a new vertex numbering, remapping ForceIn/ForceOut to match.
// ordering computes the new-numbering permutation (new position i holds
// old vertex ordering(inst)[i], the same convention core.Graph.Renumber
// expects) — each registered flavor supplies a different ordering.
type renumberFilter struct {
	name, description string
	ordering          func(inst *unidom.DominationInstance) ([]int, error)
}

func (f *renumberFilter) Name() string        { return f.name }
func (f *renumberFilter) Description() string { return f.description }

func (f *renumberFilter) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	return unidom.ErrUnrecognizedArgument
}

func (f *renumberFilter) Process(inst *unidom.DominationInstance) error {
	permutation, err := f.ordering(inst)
	if err != nil {
		return err
	}
	n := inst.Graph.N()
	inverse := make([]int, n)
	for i, old := range permutation {
		inverse[old] = i
	}

	newGraph, err := inst.Graph.Renumber(permutation)
	if err != nil {
		return fmt.Errorf("filters: %s: %w", f.name, err)
	}
	inst.Graph = newGraph

	remapped := make([]int, len(inst.ForceIn))
	for i, v := range inst.ForceIn {
		remapped[i] = inverse[v]
	}
	inst.ForceIn = remapped

	remapped = make([]int, len(inst.ForceOut))
	for i, v := range inst.ForceOut {
		remapped[i] = inverse[v]
	}
	inst.ForceOut = remapped
	return nil
}

func ascendingDegreeOrdering(inst *unidom.DominationInstance) ([]int, error) {
	return sortByDegree(inst.Graph, func(a, b int) bool { return a < b })
}

func descendingDegreeOrdering(inst *unidom.DominationInstance) ([]int, error) {
	return sortByDegree(inst.Graph, func(a, b int) bool { return a > b })
}

func sortByDegree(g *core.Graph, less func(a, b int) bool) ([]int, error) {
	vs := g.Vertices()
	result := make([]int, len(vs))
	for i := range result {
		result[i] = i
	}
	sort.SliceStable(result, func(i, j int) bool {
		return less(vs[result[i]].Degree(), vs[result[j]].Degree())
	})
	return result, nil
}

type bfsRenumberFilter struct {
	renumberFilter
	root int
}

func newRenumberBFS() unidom.PreprocessFilter {
	f := &bfsRenumberFilter{renumberFilter: renumberFilter{name: "renumber_bfs", description: "Renumber vertices in BFS ordering rooted at vertex 0"}}
	f.ordering = f.bfsOrdering
	return f
}

func (f *bfsRenumberFilter) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	if arg == "-root" {
		n, err := tok.NextInt()
		if err != nil {
			return err
		}
		f.root = n
		return nil
	}
	return unidom.ErrUnrecognizedArgument
}

func (f *bfsRenumberFilter) bfsOrdering(inst *unidom.DominationInstance) ([]int, error) {
	g := inst.Graph
	n := g.N()
	if f.root < 0 || f.root >= n {
		return nil, fmt.Errorf("filters: renumber_bfs: root %d out of range [0,%d)", f.root, n)
	}
	covered := make([]bool, n)
	result := make([]int, 0, n)
	result = append(result, f.root)
	covered[f.root] = true
	for start := 0; start < len(result); start++ {
		v := result[start]
		vert, err := g.Vertex(v)
		if err != nil {
			return nil, err
		}
		for _, u := range vert.Neighbors() {
			if covered[u] {
				continue
			}
			covered[u] = true
			result = append(result, u)
		}
	}
	if len(result) != n {
		return nil, fmt.Errorf("filters: renumber_bfs: graph is disconnected; reached %d of %d vertices", len(result), n)
	}
	return result, nil
}

type randomRenumberFilter struct {
	renumberFilter
	seeded bool
}

func newRenumberRandom() unidom.PreprocessFilter {
	f := &randomRenumberFilter{renumberFilter: renumberFilter{name: "renumber_random", description: "Randomly renumber the graph (use -seed to set seed)"}}
	f.ordering = f.randomOrdering
	return f
}

func (f *randomRenumberFilter) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	if arg == "-seed" {
		n, err := tok.NextInt()
		if err != nil {
			return err
		}
		unidom.SeedGlobal(uint64(n))
		f.seeded = true
		return nil
	}
	return unidom.ErrUnrecognizedArgument
}

func (f *randomRenumberFilter) randomOrdering(inst *unidom.DominationInstance) ([]int, error) {
	n := inst.Graph.N()
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	for i := 0; i < n; i++ {
		j := unidom.RandomInRange(i, n-1)
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

func init() {
	must(unidom.RegisterPreprocessFilter("renumber_mindeg", "Renumber vertices with low-degree vertices first", func() unidom.PreprocessFilter {
		return &renumberFilter{name: "renumber_mindeg", description: "Renumber vertices with low-degree vertices first", ordering: ascendingDegreeOrdering}
	}))
	must(unidom.RegisterPreprocessFilter("renumber_maxdeg", "Renumber vertices with high-degree vertices first", func() unidom.PreprocessFilter {
		return &renumberFilter{name: "renumber_maxdeg", description: "Renumber vertices with high-degree vertices first", ordering: descendingDegreeOrdering}
	}))
	must(unidom.RegisterPreprocessFilter("renumber_bfs", "Renumber vertices in BFS ordering rooted at vertex 0", newRenumberBFS))
	must(unidom.RegisterPreprocessFilter("renumber_random", "Randomly renumber the graph (use -seed to set seed)", newRenumberRandom))
}
