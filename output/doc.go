// Package output registers the OutputProxy implementations named in the
// reference implementation: output_all (print every reported certificate,
// terminated by a -1 sentinel line), output_best (print only the last/
// smallest certificate seen, optionally preceded by the graph), and
// graph_only (print nothing but the graph, ignoring every reported set).
package output
