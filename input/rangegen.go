package input

import (
	"errors"
	"fmt"

	"github.com/dominationlab/unidom"
)

// ErrMissingSizeParameter mirrors the reference generators' behavior of
// throwing a ConfigurableError when -n/-start/-end were never supplied.
var ErrMissingSizeParameter = errors.New("input: no size parameter (-n/-start/-end) specified")

// rangeGenerator is the shared -n/-start/-end argument handling and
// board-size iteration behind the queen and bishop generator families:
// "-n k" generates exactly one graph of size k; "-start a -end b"
// generates one graph per size in [a, b].
type rangeGenerator struct {
	nStart, nEnd, lastN int
}

func newRangeGenerator() rangeGenerator {
	return rangeGenerator{nStart: -1, nEnd: -1, lastN: -1}
}

// acceptRangeArg reports whether it recognized arg.
func (r *rangeGenerator) acceptRangeArg(arg string, tok unidom.ArgumentTokenizer) (bool, error) {
	switch arg {
	case "-n":
		n, err := tok.NextUint()
		if err != nil {
			return true, err
		}
		r.nStart, r.nEnd = int(n), int(n)
	case "-start":
		n, err := tok.NextUint()
		if err != nil {
			return true, err
		}
		r.nStart = int(n)
	case "-end":
		n, err := tok.NextUint()
		if err != nil {
			return true, err
		}
		r.nEnd = int(n)
	default:
		return false, nil
	}
	return true, nil
}

// next returns the next board size to generate, or ok == false once the
// range [nStart, nEnd] is exhausted.
func (r *rangeGenerator) next() (n int, ok bool, err error) {
	if r.nStart == -1 || r.nEnd == -1 {
		return 0, false, fmt.Errorf("input: %w", ErrMissingSizeParameter)
	}
	if r.nStart > r.nEnd {
		return 0, false, nil
	}
	n = r.nStart
	r.lastN = n
	r.nStart++
	return n, true, nil
}

// lastGeneratedN returns the board size used for the most recently
// produced graph. The board output proxies do not call it; they derive
// the board size from the graph's vertex count.
func (r *rangeGenerator) lastGeneratedN() int { return r.lastN }
