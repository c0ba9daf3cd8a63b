// Package parser implements the syntax analysis for lumen-lang: a
// recursive-descent rendition of the s-expression grammar.
//
//	s-expression := prefix-marker? (list-round | list-curly | list-square | string | ident)
//	program      := whitespace* (s-expression whitespace*)*
//
// Parsing is a pure function of the source bytes: identical input always
// yields an identical program or an identical error, no state survives a
// call, and concurrent parses of independent buffers need no locking. The
// surrounding incremental-computation layer relies on exactly this contract
// to memoize per-source-unit results.
package parser

import (
	"lumen-lang/internal/ast"
	"lumen-lang/internal/diag"
	"lumen-lang/internal/lexer"
	"lumen-lang/internal/span"
	"lumen-lang/internal/token"
)

// Diagnostic codes produced by the parser.
const (
	CodeUnexpected = "E2001" // no grammar alternative matched
	CodeTooDeep    = "E2002" // list nesting exceeded the configured limit
)

// DefaultMaxDepth bounds list nesting when Options does not set a limit.
// The grammar recurses per nesting level, so the bound keeps adversarial
// input from exhausting the call stack.
const DefaultMaxDepth = 1000

// Options configures a Parser.
type Options struct {
	MaxDepth int // maximum list nesting depth; DefaultMaxDepth if <= 0
}

// Parser performs syntax analysis on one source unit.
type Parser struct {
	sc    *lexer.Scanner
	opts  Options
	depth int
}

// New creates a parser for the given source text with default options.
func New(source string) *Parser {
	return NewWithOptions(source, Options{})
}

// NewWithOptions creates a parser with explicit options.
func NewWithOptions(source string, opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{sc: lexer.New(source), opts: opts}
}

// Parse parses one source unit and returns its top-level atoms. On failure
// it returns a *diag.Diagnostic describing the first offending offset and
// the grammar alternatives attempted there, or a *span.RangeError when an
// atom's byte range exceeds the 16-bit span domain. A failing parse produces
// no atoms at all.
func Parse(source string) (ast.Program, error) {
	return New(source).ParseProgram()
}

// ParseProgram parses the whole source unit.
func (p *Parser) ParseProgram() (ast.Program, error) {
	var prog ast.Program
	p.sc.SkipWhitespace()
	for !p.sc.EOF() {
		atom, err := p.parseSExpr()
		if err != nil {
			return nil, err
		}
		prog = append(prog, atom)
		p.sc.SkipWhitespace()
	}
	return prog, nil
}

// parseSExpr parses one s-expression: an optional prefix marker followed by
// a body atom. The resulting span runs from the marker (when present)
// through the body's end.
func (p *Parser) parseSExpr() (ast.Atom, error) {
	prefix, prefixSpan, hasPrefix := p.sc.ScanPrefix()
	if hasPrefix {
		// Whitespace between a marker and its atom is tolerated.
		p.sc.SkipWhitespace()
	}

	atom, err := p.parseBody(hasPrefix)
	if err != nil {
		return ast.Atom{}, err
	}

	if hasPrefix {
		merged, err := span.Merge(prefixSpan, atom.Span)
		if err != nil {
			return ast.Atom{}, err
		}
		atom.Prefix = prefix
		atom.Span = merged
	}
	return atom, nil
}

// parseBody parses the body alternatives in grammar order: list, string,
// ident. A quote that never closes is not a string; the quote byte then
// lexes as part of an identifier run, like any other non-bracket byte.
func (p *Parser) parseBody(afterPrefix bool) (ast.Atom, error) {
	if bracket, ok := token.OpenBracket(p.sc.Peek()); ok {
		return p.parseList(bracket)
	}

	if p.sc.Peek() == token.DoubleQuote {
		atom, ok, err := p.sc.ScanString()
		if err != nil {
			return ast.Atom{}, err
		}
		if ok {
			return atom, nil
		}
	}

	atom, ok, err := p.sc.ScanIdent()
	if err != nil {
		return ast.Atom{}, err
	}
	if ok {
		return atom, nil
	}

	expected := []string{token.LabelPrefix, token.LabelList, token.LabelString, token.LabelIdent}
	if afterPrefix {
		expected = expected[1:]
	}
	return ast.Atom{}, p.unexpected(expected)
}

// parseList parses a bracketed list. The list's span runs from its opening
// delimiter through its closing delimiter, covering the children and any
// padding between them.
func (p *Parser) parseList(bracket ast.BracketKind) (ast.Atom, error) {
	openStart := p.sc.Pos()
	if p.depth >= p.opts.MaxDepth {
		return ast.Atom{}, diag.SyntaxErrorf(CodeTooDeep, openStart, nil,
			"list nesting exceeds %d levels", p.opts.MaxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.sc.Bump()
	openSpan, err := span.New(openStart, p.sc.Pos())
	if err != nil {
		return ast.Atom{}, err
	}
	closing := token.CloseFor(bracket)

	var children []ast.Atom
	for {
		p.sc.SkipWhitespace()
		if p.sc.EOF() {
			return ast.Atom{}, p.unexpected(elementAlternatives(closing))
		}
		b := p.sc.Peek()
		if b == closing {
			break
		}
		if _, open := token.OpenBracket(b); token.IsBracket(b) && !open {
			// A closing bracket of the wrong kind cannot start an element.
			return ast.Atom{}, p.unexpected(elementAlternatives(closing))
		}

		child, err := p.parseSExpr()
		if err != nil {
			return ast.Atom{}, err
		}
		children = append(children, child)
	}

	closeStart := p.sc.Pos()
	p.sc.Bump()
	closeSpan, err := span.New(closeStart, p.sc.Pos())
	if err != nil {
		return ast.Atom{}, err
	}

	// The delimiter spans bound every child, so their merge covers the
	// whole bracketed text.
	sp, err := span.Merge(openSpan, closeSpan)
	if err != nil {
		return ast.Atom{}, err
	}

	return ast.Atom{
		Kind:    ast.List,
		List:    children,
		Bracket: bracket,
		Span:    sp,
	}, nil
}

// unexpected builds the syntax error for the current position.
func (p *Parser) unexpected(expected []string) *diag.Diagnostic {
	if p.sc.EOF() {
		return diag.SyntaxErrorf(CodeUnexpected, p.sc.Pos(), expected, "unexpected end of input")
	}
	return diag.SyntaxErrorf(CodeUnexpected, p.sc.Pos(), expected, "unexpected character %q", p.sc.Peek())
}

// elementAlternatives lists the grammar alternatives valid at an element
// position inside a list.
func elementAlternatives(closing byte) []string {
	return []string{token.LabelPrefix, token.LabelList, token.LabelString, token.LabelIdent, string(closing)}
}
