package output_test

import (
	"io"
	"os"
	"testing"

	"github.com/dominationlab/unidom"
	_ "github.com/dominationlab/unidom/output"

	"github.com/dominationlab/unidom/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	if err != nil {
		t.Fatalf("core.NewGraph: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if err := g.AddEdgeSimple(e[0], e[1]); err != nil {
			t.Fatalf("AddEdgeSimple: %v", err)
		}
	}
	return g
}

func TestOutputAllLifecycle(t *testing.T) {
	proxy, err := unidom.NewOutputProxy("output_all")
	if err != nil {
		t.Fatalf("NewOutputProxy: %v", err)
	}
	inst := &unidom.DominationInstance{Graph: triangle(t)}
	if err := proxy.Initialize(inst); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := proxy.ProcessSet(inst, []int{0}); err != nil {
		t.Fatalf("ProcessSet: %v", err)
	}
	if err := proxy.Finalize(inst); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
}

func TestOutputBestRetainsLastSetIndependentOfAliasing(t *testing.T) {
	proxy, err := unidom.NewOutputProxy("output_best")
	if err != nil {
		t.Fatalf("NewOutputProxy: %v", err)
	}
	inst := &unidom.DominationInstance{Graph: triangle(t)}
	if err := proxy.Initialize(inst); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	shared := []int{0, 1}
	if err := proxy.ProcessSet(inst, shared); err != nil {
		t.Fatalf("ProcessSet: %v", err)
	}
	// mutate the slice handed to the first ProcessSet call; the certificate
	// printed at Finalize must be the last set reported, with neither the
	// first set nor this mutation showing through.
	shared[0] = 2
	shared[1] = 2
	if err := proxy.ProcessSet(inst, []int{1}); err != nil {
		t.Fatalf("ProcessSet: %v", err)
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	stdout := os.Stdout
	os.Stdout = w
	finalizeErr := proxy.Finalize(inst)
	os.Stdout = stdout
	w.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	if finalizeErr != nil {
		t.Fatalf("Finalize: %v", finalizeErr)
	}
	if string(got) != "1 1 \n" {
		t.Fatalf("expected certificate %q, got %q", "1 1 \n", got)
	}
}

func TestGraphOnlyIgnoresProcessedSets(t *testing.T) {
	proxy, err := unidom.NewOutputProxy("graph_only")
	if err != nil {
		t.Fatalf("NewOutputProxy: %v", err)
	}
	inst := &unidom.DominationInstance{Graph: triangle(t)}
	if err := proxy.Initialize(inst); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := proxy.ProcessSet(inst, []int{0, 1, 2}); err != nil {
		t.Fatalf("ProcessSet: %v", err)
	}
	if err := proxy.Finalize(inst); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
}

func TestQueenBoardRejectsNonSquareVertexCount(t *testing.T) {
	proxy, err := unidom.NewOutputProxy("queen_board")
	if err != nil {
		t.Fatalf("NewOutputProxy: %v", err)
	}
	g, err := core.NewGraph(7)
	if err != nil {
		t.Fatalf("core.NewGraph: %v", err)
	}
	inst := &unidom.DominationInstance{Graph: g}
	if err := proxy.Initialize(inst); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := proxy.ProcessSet(inst, []int{0}); err != nil {
		t.Fatalf("ProcessSet: %v", err)
	}
	if err := proxy.Finalize(inst); err == nil {
		t.Fatal("expected queen_board to reject a non-square vertex count")
	}
}

func TestTriangleBoardRejectsNonTriangularVertexCount(t *testing.T) {
	proxy, err := unidom.NewOutputProxy("triangle_board")
	if err != nil {
		t.Fatalf("NewOutputProxy: %v", err)
	}
	g, err := core.NewGraph(7)
	if err != nil {
		t.Fatalf("core.NewGraph: %v", err)
	}
	inst := &unidom.DominationInstance{Graph: g}
	if err := proxy.Initialize(inst); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := proxy.ProcessSet(inst, []int{0}); err != nil {
		t.Fatalf("ProcessSet: %v", err)
	}
	if err := proxy.Finalize(inst); err == nil {
		t.Fatal("expected triangle_board to reject a non-triangular vertex count")
	}
}
