// Package solver registers the fixed search.Engine configurations named
// in the reference implementation — DD/MDD pivot-and-rank combinations
// plus the fixed-order baseline, each in an optimizing and a
// generate-all flavor — against the root unidom component registry.
//
// Every registration happens in this package's init(), the Go analogue of
// the reference implementation's REGISTER_SOLVER macro: importing solver
// for its side effects (a blank import from cmd/unidom, typically) is
// enough to make every variant available by name.
package solver
