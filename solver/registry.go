package solver

import (
	"fmt"

	"github.com/dominationlab/unidom"
	"github.com/dominationlab/unidom/search"
)

// register installs both the optimizing and generate-all flavor of v under
// name and name+"_all", mirroring the reference implementation's paired
// REGISTER_SOLVER calls for every <bool GENERATE_ALL> instantiation.
func register(name, description string, mode search.Mode, pivot search.PivotRule, rank search.RankRule, recheck bool) {
	base := variant{name: name, description: description, mode: mode, pivot: pivot, rank: rank, recheck: recheck}
	must(unidom.RegisterSolver(name, description, newVariant(base)))

	all := base
	all.name = name + "_all"
	all.description = description + " (exhaustive generation)"
	all.generateAll = true
	must(unidom.RegisterSolver(all.name, all.description, newVariant(all)))
}

// alias registers a second name resolving to the exact same configuration
// already registered under existing — the Go equivalent of
// REGISTER_SOLVER_ALIAS.
func alias(existing, name, description string) {
	solver, err := unidom.NewSolver(existing)
	must(err)
	v, ok := solver.(*variant)
	if !ok {
		panic(fmt.Sprintf("solver: alias %q: %q is not a variant solver", name, existing))
	}
	must(unidom.RegisterSolver(name, description, newVariant(*v)))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func init() {
	register("DD_minCD_asc", "DD solver, min candidate-degree pivot, ascending rank", search.ModeDD, search.PivotMinCD, search.RankAscending, false)
	register("DD_minCD_desc", "DD solver, min candidate-degree pivot, descending rank", search.ModeDD, search.PivotMinCD, search.RankDescending, false)
	register("MDD_minCD_asc", "MDD solver, min candidate-degree pivot, ascending rank", search.ModeMDD, search.PivotMinCD, search.RankAscending, true)
	register("MDD_minCD_desc", "MDD solver, min candidate-degree pivot, descending rank", search.ModeMDD, search.PivotMinCD, search.RankDescending, true)
	register("MDD_minMDD_desc", "MDD solver, min-MDD pivot, descending rank", search.ModeMDD, search.PivotMinMDD, search.RankDescending, true)
	register("MDD_maxMDD_desc", "MDD solver, max-MDD pivot, descending rank", search.ModeMDD, search.PivotMaxMDD, search.RankDescending, true)
	// fixed_order ignores pivot/rank/recheck entirely (ModeFixed's own bound
	// check in findDominatingSetFixed never consults RecheckBoundsInLoop);
	// they are supplied here only to satisfy register's signature.
	register("fixed_order", "Fixed order solver based on backtracking framework", search.ModeFixed, search.PivotMinCD, search.RankAscending, false)

	alias("DD_minCD_desc", "DD_basic", "DD solver, default policy (alias of DD_minCD_desc)")
	alias("DD_minCD_desc_all", "DD_basic_all", "DD solver, default policy, exhaustive generation")
	alias("MDD_minCD_desc", "MDD_basic", "MDD solver, default policy (alias of MDD_minCD_desc)")
	alias("MDD_minCD_desc_all", "MDD_basic_all", "MDD solver, default policy, exhaustive generation")
}
