// Package diag wraps the standard logger with the severities the rest of
// the module cares about: a warning that a caller asked for something
// slightly wrong but recoverable (Warn), an error that is logged and
// returned to the caller (Errorf), and a fatal condition reserved for
// invariant violations that indicate a programming error rather than bad
// input (Fatalf).
package diag

import (
	"fmt"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// Warn logs a recoverable problem. Callers keep running afterward; the
// message exists so a human can notice something degraded silently.
func Warn(format string, args ...any) {
	logger.Printf("warn: "+format, args...)
}

// Fatalf logs an unrecoverable invariant violation and terminates the
// process, mirroring the teacher's convention of failing loudly on
// programmer error rather than limping on with corrupted state.
func Fatalf(format string, args ...any) {
	logger.Printf("fatal: "+format, args...)
	os.Exit(1)
}

// Errorf is a convenience that both logs and returns an error, for call
// sites that want to propagate the failure to their own caller instead of
// terminating.
func Errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	logger.Printf("error: %s", msg)
	return fmt.Errorf("%s", msg)
}
