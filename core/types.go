package core

import (
	"fmt"
	"sync"
)

// InvalidVertex marks the absence of a vertex in query results such as
// mddstack.Stack.GetMinMDDVertex.
const InvalidVertex = -1

// MaxVerts bounds the size of any Graph. The source implementation hard-
// codes this as a compile-time constant (default 1024); we keep it as a
// package variable so callers working with larger instances can raise it
// before constructing any graph, while everything downstream (DegreePQ,
// MDDStack, search.Engine) still sizes its arrays from n rather than this
// ceiling — see design notes on fixed-capacity arrays.
var MaxVerts = 1024

// MaxDegree bounds the adjacency list length of any single vertex.
var MaxDegree = 1024

// Vertex holds one graph node: its neighbor list and the original index
// it had before any Renumber call.
type Vertex struct {
	neighbors []int
	realIndex int
	index     int
}

// Neighbors returns the vertex's adjacency list in its current order.
// The returned slice aliases internal storage and must not be retained
// across further mutation of the owning Graph.
func (v *Vertex) Neighbors() []int { return v.neighbors }

// Degree returns len(Neighbors()).
func (v *Vertex) Degree() int { return len(v.neighbors) }

// RealIndex returns the index this vertex had in the original,
// un-renumbered graph.
func (v *Vertex) RealIndex() int { return v.realIndex }

// Index returns this vertex's current index in its owning Graph.
func (v *Vertex) Index() int { return v.index }

// Graph is a vertex-indexed adjacency-list graph over [0, n). It is a
// simple graph (no parallel edges) except that the solver deliberately
// augments every vertex with a self-loop before searching (see
// search.Engine.Solve, which calls AddSelfLoop); AddEdgeSimple itself
// rejects v == v.
type Graph struct {
	mu       sync.RWMutex
	vertices []Vertex
}

// NewGraph returns an empty graph with n vertices, 0 ≤ n < MaxVerts.
func NewGraph(n int) (*Graph, error) {
	g := &Graph{}
	if err := g.Reset(n); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards all edges and resizes the graph to n vertices numbered
// 0 … n-1, each with RealIndex equal to its own index. Complexity: O(n).
func (g *Graph) Reset(n int) error {
	if n < 0 || n >= MaxVerts {
		return fmt.Errorf("core: Reset(%d): %w", n, ErrTooManyVertices)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make([]Vertex, n)
	for i := range g.vertices {
		g.vertices[i].index = i
		g.vertices[i].realIndex = i
	}
	return nil
}

// N returns the number of vertices.
func (g *Graph) N() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Vertex returns a pointer to vertex v. The pointer aliases internal
// storage and is invalidated by the next Reset or Renumber call.
func (g *Graph) Vertex(v int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.vertices) {
		return nil, fmt.Errorf("core: Vertex(%d): %w", v, ErrVertexOutOfRange)
	}
	return &g.vertices[v], nil
}

// Vertices returns every vertex in index order. The returned slice
// aliases internal storage.
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices
}

// AddEdgeSimple adds the undirected edge {i, j} in both directions,
// skipping the insertion on either side if the neighbor is already
// present (duplicate-free). Self-loops (i == j) are rejected; the solver
// adds them explicitly and uniformly via AddSelfLoop, never through this
// path. Complexity: O(deg(i) + deg(j)) for the duplicate scan.
func (g *Graph) AddEdgeSimple(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("core: AddEdgeSimple(%d,%d): %w", i, j, ErrVertexOutOfRange)
	}
	if j < 0 || j >= len(g.vertices) {
		return fmt.Errorf("core: AddEdgeSimple(%d,%d): %w", i, j, ErrVertexOutOfRange)
	}
	if i == j {
		return fmt.Errorf("core: AddEdgeSimple(%d,%d): self-loops must go through AddSelfLoop", i, j)
	}
	if err := g.addNeighbour(i, j); err != nil {
		return err
	}
	if err := g.addNeighbour(j, i); err != nil {
		return err
	}
	return nil
}

// AddSelfLoop adds v to its own neighbor list if not already present.
// Used by the solver to uniformly treat "v dominates v" as a neighbor
// relationship.
func (g *Graph) AddSelfLoop(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v < 0 || v >= len(g.vertices) {
		return fmt.Errorf("core: AddSelfLoop(%d): %w", v, ErrVertexOutOfRange)
	}
	return g.addNeighbour(v, v)
}

// addNeighbour appends j to i's adjacency list if not already present.
// Caller must hold g.mu.
func (g *Graph) addNeighbour(i, j int) error {
	vi := &g.vertices[i]
	for _, u := range vi.neighbors {
		if u == j {
			return nil
		}
	}
	if len(vi.neighbors) >= MaxDegree {
		return fmt.Errorf("core: vertex %d: %w", i, ErrDegreeTooLarge)
	}
	vi.neighbors = append(vi.neighbors, j)
	return nil
}
