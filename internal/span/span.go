// Package span provides the byte-offset span type used across the front end.
//
// Spans are half-open ranges [Start, End) into the source buffer. The length
// is stored in 16 bits, so no single span may cover more than 65535 bytes.
// This is a documented constraint of the format, not an implementation
// accident: constructing an oversized span returns an error instead of
// truncating or panicking, because span construction can be driven by
// arbitrary (untrusted) input.
package span

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// MaxLen is the largest byte length a single span can cover.
const MaxLen = 65535

// ErrRange is reported when a span's length would not fit the 16-bit domain,
// or when end precedes start.
var ErrRange = errors.New("span out of range")

// RangeError carries the offending offsets of an invalid span.
type RangeError struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (e *RangeError) Error() string {
	if e.End < e.Start {
		return fmt.Sprintf("span %d..%d: end precedes start", e.Start, e.End)
	}
	return fmt.Sprintf("span %d..%d: length %d exceeds %d bytes", e.Start, e.End, e.End-e.Start, MaxLen)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// Span represents a half-open byte range [Start, End) in source text.
// The zero value is the empty span at offset 0. Spans are immutable values.
type Span struct {
	start  int
	length uint16
}

// New creates a span covering [start, end). It returns a *RangeError when
// start is negative, end precedes start, or the length exceeds MaxLen.
func New(start, end int) (Span, error) {
	if start < 0 || end < start {
		return Span{}, &RangeError{Start: start, End: end}
	}
	length, err := safecast.Conv[uint16](end - start)
	if err != nil {
		return Span{}, &RangeError{Start: start, End: end}
	}
	return Span{start: start, length: length}, nil
}

// Start returns the inclusive start offset.
func (s Span) Start() int { return s.start }

// End returns the exclusive end offset.
func (s Span) End() int { return s.start + int(s.length) }

// Len returns the byte length of the span.
func (s Span) Len() int { return int(s.length) }

// Text returns the substring of source the span denotes.
func (s Span) Text(source string) string {
	return source[s.start:s.End()]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start(), s.End())
}

// MarshalJSON encodes the span as {"start":..,"end":..}.
func (s Span) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"start":%d,"end":%d}`, s.Start(), s.End()), nil
}

// Merge returns the smallest span covering both a and b. It is commutative
// and idempotent. It returns a *RangeError when the combined length exceeds
// MaxLen.
func Merge(a, b Span) (Span, error) {
	start := a.Start()
	if b.Start() < start {
		start = b.Start()
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return New(start, end)
}
