package unidom

import (
	"io"
	"log"
	"os"
)

// Log is the process-wide diagnostic logger every component writes
// progress and statistics to (component names, vertex counts, solution
// totals) — never the solution output itself, which goes through an
// OutputProxy instead. It mirrors unidom_common.hpp's unidom::log stream:
// writes to stderr by default, silenced by SetVerbose(false) (the CLI's
// -quiet flag).
var Log = log.New(os.Stderr, "", 0)

// SetVerbose toggles Log's output between stderr (true) and discarded
// (false).
func SetVerbose(verbose bool) {
	if verbose {
		Log.SetOutput(os.Stderr)
		return
	}
	Log.SetOutput(io.Discard)
}
