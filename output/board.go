package output

import (
	"fmt"
	"math"

	"github.com/dominationlab/unidom"
)

// squareBoard prints the best certificate as an n x n chess board, for
// any input whose vertex count is a perfect square (queen and bishop
// graphs number cells (vi,vj) as vi*n+vj). occupied marks a cell "Q".
type squareBoard struct {
	name, description, noDomMsg string
	best                        []int
}

func newQueenBoard() unidom.OutputProxy {
	return &squareBoard{name: "queen_board", description: "Output the best certificate as an n x n chess board (only works with queen graph input sources)."}
}

func newBishopBoard() unidom.OutputProxy {
	return &squareBoard{name: "bishop_board", description: "Output the best certificate as an n x n chess board (only works with bishop graph input sources)."}
}

func (b *squareBoard) Name() string        { return b.name }
func (b *squareBoard) Description() string { return b.description }
func (b *squareBoard) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	return unidom.ErrUnrecognizedArgument
}

func (b *squareBoard) Initialize(inst *unidom.DominationInstance) error {
	b.best = nil
	return nil
}

func (b *squareBoard) ProcessSet(inst *unidom.DominationInstance, set []int) error {
	b.best = append(b.best[:0], set...)
	return nil
}

func (b *squareBoard) Finalize(inst *unidom.DominationInstance) error {
	total := inst.Graph.N()
	n := int(math.Round(math.Sqrt(float64(total))))
	if n*n != total {
		return fmt.Errorf("output: %s: input graph has %d vertices, not a perfect square", b.name, total)
	}
	if len(b.best) == total {
		unidom.Log.Print("No dominating set found")
		return nil
	}
	board := make([][]bool, n)
	for i := range board {
		board[i] = make([]bool, n)
	}
	for _, v := range b.best {
		board[v/n][v%n] = true
	}
	unidom.Log.Printf("Size: %d", len(b.best))
	for _, row := range board {
		for _, occupied := range row {
			if occupied {
				fmt.Print("Q ")
			} else {
				fmt.Print("_ ")
			}
		}
		fmt.Println()
	}
	fmt.Println()
	return nil
}

// triangleBoard prints the best certificate as a triangular board, for
// TG/hexrook input sources (row r has r+1 cells, total_verts = n(n+1)/2).
type triangleBoard struct {
	best      []int
	outputAll bool
}

func newTriangleBoard() unidom.OutputProxy { return &triangleBoard{} }

func (t *triangleBoard) Name() string { return "triangle_board" }
func (t *triangleBoard) Description() string {
	return "Output the best certificate as an n x n triangular board (only works with hexrook/trigrid input sources)."
}

func (t *triangleBoard) AcceptArgument(arg string, tok unidom.ArgumentTokenizer) error {
	if arg == "-all" {
		t.outputAll = true
		return nil
	}
	return unidom.ErrUnrecognizedArgument
}

func (t *triangleBoard) Initialize(inst *unidom.DominationInstance) error {
	t.best = nil
	return nil
}

func (t *triangleBoard) ProcessSet(inst *unidom.DominationInstance, set []int) error {
	if t.outputAll {
		return t.print(inst, set)
	}
	t.best = append(t.best[:0], set...)
	return nil
}

func (t *triangleBoard) Finalize(inst *unidom.DominationInstance) error {
	if t.outputAll {
		return nil
	}
	return t.print(inst, t.best)
}

func (t *triangleBoard) print(inst *unidom.DominationInstance, set []int) error {
	total := inst.Graph.N()
	n := triangleOrder(total)
	if n < 0 {
		return fmt.Errorf("output: triangle_board: input graph has %d vertices, not a triangular board size", total)
	}
	if len(set) == total {
		unidom.Log.Print("No dominating set found")
		return nil
	}
	occupied := make([]bool, total)
	for _, v := range set {
		occupied[v] = true
	}
	unidom.Log.Printf("Size: %d", len(set))
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if occupied[i*(i+1)/2+j] {
				fmt.Print("X ")
			} else {
				fmt.Print("_ ")
			}
		}
		fmt.Println()
	}
	fmt.Println()
	return nil
}

// triangleOrder returns n such that n(n+1)/2 == total, or -1 if total is
// not a triangular number.
func triangleOrder(total int) int {
	n := int(math.Round((math.Sqrt(8*float64(total)+1) - 1) / 2))
	if n*(n+1)/2 == total {
		return n
	}
	return -1
}

func init() {
	must(unidom.RegisterOutputProxy("queen_board", "Output the best certificate as an n x n chess board (only works with queen graph input sources).", newQueenBoard))
	must(unidom.RegisterOutputProxy("bishop_board", "Output the best certificate as an n x n chess board (only works with bishop graph input sources).", newBishopBoard))
	must(unidom.RegisterOutputProxy("triangle_board", "Output the best certificate as an n x n triangular board (only works with hexrook/trigrid input sources).", newTriangleBoard))
}
