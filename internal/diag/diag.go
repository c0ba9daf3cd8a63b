// Package diag provides the structured syntax-error type for the front end.
package diag

import (
	"fmt"
	"strings"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a structured syntax error: the byte offset at which
// no grammar alternative matched, and the set of alternatives that were
// being attempted there. It implements error and is the only value a failed
// parse produces; there is no partial result alongside it.
type Diagnostic struct {
	Code     string   `json:"code"`               // stable error code, e.g. "E2001"
	Severity Severity `json:"severity"`           // error or warning
	Message  string   `json:"message"`            // human-readable description
	Offset   int      `json:"offset"`             // byte offset in the source unit
	Expected []string `json:"expected,omitempty"` // grammar alternatives attempted
}

// Error returns the human-readable form of the diagnostic.
func (d *Diagnostic) Error() string {
	msg := fmt.Sprintf("[%s] %s at offset %d: %s", d.Code, d.Severity, d.Offset, d.Message)
	if len(d.Expected) > 0 {
		msg += "; expected one of: " + strings.Join(d.Expected, ", ")
	}
	return msg
}

// SyntaxErrorf creates an error diagnostic at the given offset. expected
// lists the grammar alternatives that were attempted; it may be nil.
func SyntaxErrorf(code string, offset int, expected []string, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Offset:   offset,
		Expected: expected,
	}
}
