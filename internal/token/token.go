// Package token defines the lexical vocabulary of the grammar: prefix
// markers, bracket pairs, whitespace, and the labels used in syntax errors.
package token

import "lumen-lang/internal/ast"

// DoubleQuote delimits string literals.
const DoubleQuote byte = '"'

// Marker is one literal prefix marker.
type Marker struct {
	Text string
	Kind ast.PrefixKind
}

// Markers lists the prefix markers in match order. The two-byte marker ",@"
// must come before "," so that it is never split into an unquote followed by
// a stray "@"; matching is longest-first by construction of this table.
var Markers = []Marker{
	{",@", ast.UnquoteSplicing},
	{"'", ast.Quote},
	{"`", ast.QuasiQuote},
	{",", ast.Unquote},
}

var openBrackets = map[byte]ast.BracketKind{
	'(': ast.Round,
	'{': ast.Curly,
	'[': ast.Square,
}

var closeBrackets = map[ast.BracketKind]byte{
	ast.Round:  ')',
	ast.Curly:  '}',
	ast.Square: ']',
}

// OpenBracket reports whether b opens a list, and which bracket kind.
func OpenBracket(b byte) (ast.BracketKind, bool) {
	kind, ok := openBrackets[b]
	return kind, ok
}

// CloseFor returns the closing byte for a bracket kind.
func CloseFor(kind ast.BracketKind) byte {
	return closeBrackets[kind]
}

// IsBracket reports whether b is one of the six bracket bytes.
func IsBracket(b byte) bool {
	switch b {
	case '(', ')', '{', '}', '[', ']':
		return true
	default:
		return false
	}
}

// IsSpace reports whether b is a whitespace byte (space, tab, CR, LF).
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// IsIdentByte reports whether b may appear in an identifier: any byte that
// is neither whitespace nor a bracket.
func IsIdentByte(b byte) bool {
	return !IsSpace(b) && !IsBracket(b)
}

// Grammar alternative labels reported in syntax errors.
const (
	LabelPrefix = "prefix"
	LabelList   = "list"
	LabelString = "string"
	LabelIdent  = "ident"
)
