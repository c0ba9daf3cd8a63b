// Package lexer implements the lexical forms of the lumen-lang grammar:
// prefix markers, identifiers, and string literals.
//
// Scanning is driven by the parser rather than producing a flat token
// stream, because the lexical forms are position dependent: a quote or comma
// only acts as a prefix marker at the start of an atom, while inside an
// identifier run the same byte is an ordinary character.
package lexer

import (
	"strings"

	"lumen-lang/internal/ast"
	"lumen-lang/internal/span"
	"lumen-lang/internal/token"
)

// Scanner reads lexical forms from a source buffer, addressed by byte
// offset. It holds no state besides its position, so independent scanners
// never interfere.
type Scanner struct {
	source string
	pos    int // current read position in source
}

// New creates a new Scanner for the given source text.
func New(source string) *Scanner {
	return &Scanner{source: source}
}

// ---- cursor helpers ----

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// EOF reports whether the scanner has consumed all input.
func (s *Scanner) EOF() bool { return s.pos >= len(s.source) }

// Peek returns the current byte without advancing, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.source[s.pos]
}

// Bump consumes the current byte and returns it, or 0 at end of input.
func (s *Scanner) Bump() byte {
	if s.EOF() {
		return 0
	}
	b := s.source[s.pos]
	s.pos++
	return b
}

// SkipWhitespace consumes spaces, tabs, carriage returns, and newlines.
func (s *Scanner) SkipWhitespace() {
	for !s.EOF() && token.IsSpace(s.source[s.pos]) {
		s.pos++
	}
}

// spanFrom returns a span from start to the current position.
func (s *Scanner) spanFrom(start int) (span.Span, error) {
	return span.New(start, s.pos)
}

// ---- lexical forms ----

// ScanPrefix consumes a prefix marker at the current position. It reports
// false when no marker matches. Markers are tried in the order of
// token.Markers, so ",@" wins over ",".
func (s *Scanner) ScanPrefix() (ast.PrefixKind, span.Span, bool) {
	start := s.pos
	for _, m := range token.Markers {
		if strings.HasPrefix(s.source[s.pos:], m.Text) {
			s.pos += len(m.Text)
			sp, err := s.spanFrom(start)
			if err != nil {
				// Unreachable: markers are at most two bytes long.
				s.pos = start
				return ast.PrefixNone, span.Span{}, false
			}
			return m.Kind, sp, true
		}
	}
	return ast.PrefixNone, span.Span{}, false
}

// ScanString consumes a double-quoted string literal. The content is the raw
// bytes between the quotes; a backslash is an ordinary character. The span
// covers both delimiting quotes. It reports false without consuming input
// when the current byte is not a quote or no closing quote follows, leaving
// the position untouched so the caller can try the next alternative.
func (s *Scanner) ScanString() (ast.Atom, bool, error) {
	start := s.pos
	if s.Peek() != token.DoubleQuote {
		return ast.Atom{}, false, nil
	}
	s.pos++ // opening "

	for !s.EOF() && s.source[s.pos] != token.DoubleQuote {
		s.pos++
	}
	if s.EOF() {
		// Unterminated: rewind so the quote lexes as an identifier byte.
		s.pos = start
		return ast.Atom{}, false, nil
	}
	s.pos++ // closing "

	sp, err := s.spanFrom(start)
	if err != nil {
		return ast.Atom{}, false, err
	}
	return ast.Atom{
		Kind: ast.String,
		Text: s.source[start+1 : s.pos-1],
		Span: sp,
	}, true, nil
}

// ScanIdent consumes a maximal run of identifier bytes: everything except
// whitespace and the six bracket bytes. It reports false when the run would
// be empty.
func (s *Scanner) ScanIdent() (ast.Atom, bool, error) {
	start := s.pos
	for !s.EOF() && token.IsIdentByte(s.source[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return ast.Atom{}, false, nil
	}

	sp, err := s.spanFrom(start)
	if err != nil {
		return ast.Atom{}, false, err
	}
	return ast.Atom{
		Kind: ast.Ident,
		Text: s.source[start:s.pos],
		Span: sp,
	}, true, nil
}
