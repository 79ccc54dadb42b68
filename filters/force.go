package filters

import (
	"fmt"

	"github.com/dominationlab/unidom"
)

// forceFilter appends every vertex index given as a sub-argument to one of
// an instance's ForceIn/ForceOut lists, duplicate-checked against what's
// already there. into selects which list; name/description identify the
// two registered flavors (force_in, force_out).
type forceFilter struct {
	name, description string
	into              func(inst *unidom.DominationInstance) *[]int
	vertices          []int
}

func (f *forceFilter) Name() string        { return f.name }
func (f *forceFilter) Description() string { return f.description }

func (f *forceFilter) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	var v int
	if _, err := fmt.Sscanf(arg, "%d", &v); err != nil {
		return unidom.ErrUnrecognizedArgument
	}
	f.vertices = append(f.vertices, v)
	return nil
}

func (f *forceFilter) Process(inst *unidom.DominationInstance) error {
	n := inst.Graph.N()
	list := f.into(inst)
	for _, v := range f.vertices {
		if v < 0 || v >= n {
			return fmt.Errorf("filters: %s: vertex %d out of range [0,%d)", f.name, v, n)
		}
		if !contains(*list, v) {
			*list = append(*list, v)
		}
	}
	return nil
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func init() {
	must(unidom.RegisterPreprocessFilter("force_in", "Force some vertices to be included in the dominating set (specify vertex indices after '-F force_in')", func() unidom.PreprocessFilter {
		return &forceFilter{name: "force_in", description: "Force some vertices to be included in the dominating set", into: func(inst *unidom.DominationInstance) *[]int { return &inst.ForceIn }}
	}))
	must(unidom.RegisterPreprocessFilter("force_out", "Force some vertices to be excluded from the dominating set (specify vertex indices after '-F force_out')", func() unidom.PreprocessFilter {
		return &forceFilter{name: "force_out", description: "Force some vertices to be excluded from the dominating set", into: func(inst *unidom.DominationInstance) *[]int { return &inst.ForceOut }}
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
