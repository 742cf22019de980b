// internal/printer/errors.go
package printer

import (
	"errors"
	"fmt"
)

// ErrNotConfigured reports a missing printer identity. It is a fatal
// configuration fault, distinct from a printer being offline, and is
// never worth retrying.
var ErrNotConfigured = errors.New("printer not configured")

// OfflineError reports that the printer failed the availability probe.
// Nothing was written; the condition is temporary.
type OfflineError struct {
	Printer string
}

func (e *OfflineError) Error() string {
	return fmt.Sprintf("printer %q is offline or not reachable", e.Printer)
}

// WriteError wraps any failure after a print session has begun. The
// underlying cause is preserved; teardown has still been attempted.
type WriteError struct {
	Printer string
	Cause   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("print to %q failed: %v", e.Printer, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
