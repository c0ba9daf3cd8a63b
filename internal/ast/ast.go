// Package ast defines the atom tree produced by the lumen-lang parser.
package ast

import (
	"fmt"
	"lumen-lang/internal/span"
)

// ============================================================
// Prefix markers
// ============================================================

// PrefixKind identifies the quoting marker attached to an atom, resolved by
// later semantic stages.
type PrefixKind int

const (
	PrefixNone      PrefixKind = iota // no marker
	Quote                             // '
	QuasiQuote                        // `
	Unquote                           // ,
	UnquoteSplicing                   // ,@
)

var prefixNames = map[PrefixKind]string{
	PrefixNone:      "none",
	Quote:           "quote",
	QuasiQuote:      "quasiquote",
	Unquote:         "unquote",
	UnquoteSplicing: "unquote-splicing",
}

// String returns the human-readable name for a prefix kind.
func (k PrefixKind) String() string {
	if name, ok := prefixNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PrefixKind(%d)", int(k))
}

// ============================================================
// Bracket kinds
// ============================================================

// BracketKind records which delimiter pair enclosed a list. It is purely a
// syntactic tag carried forward for later semantic interpretation; it never
// changes the list's structural shape.
type BracketKind int

const (
	Round  BracketKind = iota // ( )
	Curly                     // { }
	Square                    // [ ]
)

var bracketNames = map[BracketKind]string{
	Round:  "round",
	Curly:  "curly",
	Square: "square",
}

// String returns the human-readable name for a bracket kind.
func (k BracketKind) String() string {
	if name, ok := bracketNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BracketKind(%d)", int(k))
}

// ============================================================
// Atoms
// ============================================================

// AtomKind identifies which variant an Atom holds. The set is closed:
// identifiers, string literals, and bracketed lists.
type AtomKind int

const (
	Ident  AtomKind = iota // bare token
	String                 // double-quoted literal, no escape processing
	List                   // bracketed sequence of atoms
)

var atomNames = map[AtomKind]string{
	Ident:  "ident",
	String: "string",
	List:   "list",
}

// String returns the human-readable name for an atom kind.
func (k AtomKind) String() string {
	if name, ok := atomNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AtomKind(%d)", int(k))
}

// Atom is one parsed syntax node. Atoms are immutable once constructed;
// the parser builds them bottom-up and never rewrites a finished node.
type Atom struct {
	Prefix  PrefixKind  // PrefixNone if the atom carried no marker
	Kind    AtomKind    // which variant the atom holds
	Text    string      // ident text or string content; empty for lists
	List    []Atom      // children; only set for List atoms
	Bracket BracketKind // delimiter pair; only meaningful for List atoms
	Span    span.Span   // byte range in the source buffer
}

// Program is the ordered sequence of top-level atoms of one source unit.
type Program []Atom
