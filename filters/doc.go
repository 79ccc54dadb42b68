// Package filters registers the preprocess filters named in the reference
// implementation: force_in/force_out (adding vertex indices to an
// instance's ForceIn/ForceOut lists) and the renumber_* family (replacing
// a graph with an isomorphic copy under a different vertex numbering,
// chosen to make the search's degree-ordered heuristics more effective
// on adversarial orderings).
//
// Every registration happens in this package's init(); a blank import is
// enough to make every filter available by name through the root
// unidom registry.
package filters
