// Package debug is a minimal stderr logging helper, grounded in the
// teacher's debug/log.go: a package-level enabled flag gated by an
// environment variable, no third-party logging framework, since the
// teacher never reaches for one either.
package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("TOON_DEBUG") != ""

// Logf writes a formatted line to stderr when TOON_DEBUG is set in
// the environment. It is a no-op otherwise.
func Logf(format string, args ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "toon: "+format+"\n", args...)
}

// Enabled reports whether debug logging is currently active.
func Enabled() bool {
	return enabled
}
