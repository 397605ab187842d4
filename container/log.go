package container

import "log"

// Logf is the sink for recoverable container errors (bounds violations,
// failed resizes). It defaults to the standard logger; tests may swap it to
// capture or silence output.
var Logf = log.Printf

// Debug enables notify-level diagnostics: search and delete misses, and a
// missing release callback during recursive teardown. Errors go through
// Logf regardless.
var Debug = false

func notifyf(format string, args ...any) {
	if Debug {
		Logf(format, args...)
	}
}
