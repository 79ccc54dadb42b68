package unidom

import "github.com/dominationlab/unidom/search"

// DominationInstance is a graph paired with the force-in/force-out
// constraints a caller has already decided on. It is search.Instance by
// another name: the root package names the concept the spec names
// ("DominationInstance"), while search — which never depends on this
// package — owns the actual type, since it is the package that mutates
// and consumes it.
type DominationInstance = search.Instance
