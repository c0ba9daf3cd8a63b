package ast

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"lumen-lang/internal/span"
)

func sp(t *testing.T, start, end int) span.Span {
	t.Helper()
	s, err := span.New(start, end)
	if err != nil {
		t.Fatalf("span.New(%d, %d): %v", start, end, err)
	}
	return s
}

func TestKindNames(t *testing.T) {
	if Quote.String() != "quote" || UnquoteSplicing.String() != "unquote-splicing" {
		t.Errorf("unexpected prefix names: %s, %s", Quote, UnquoteSplicing)
	}
	if Round.String() != "round" || Square.String() != "square" {
		t.Errorf("unexpected bracket names: %s, %s", Round, Square)
	}
	if Ident.String() != "ident" || List.String() != "list" {
		t.Errorf("unexpected atom kind names: %s, %s", Ident, List)
	}
}

func TestAtomToMap(t *testing.T) {
	atom := Atom{
		Prefix: Quote,
		Kind:   List,
		List: []Atom{
			{Kind: Ident, Text: "x", Span: sp(t, 2, 3)},
			{Kind: String, Text: "y", Span: sp(t, 4, 7)},
		},
		Bracket: Round,
		Span:    sp(t, 0, 8),
	}

	m := AtomToMap(atom)
	if m["kind"] != "list" || m["prefix"] != "quote" || m["bracket"] != "round" {
		t.Errorf("unexpected map: %v", m)
	}

	children, ok := m["atoms"].([]map[string]interface{})
	if !ok || len(children) != 2 {
		t.Fatalf("expected 2 child maps, got %v", m["atoms"])
	}
	want := map[string]interface{}{"kind": "ident", "text": "x", "span": sp(t, 2, 3)}
	if !reflect.DeepEqual(children[0], want) {
		t.Errorf("child[0]: expected %v, got %v", want, children[0])
	}
	if _, hasPrefix := children[0]["prefix"]; hasPrefix {
		t.Error("unprefixed atoms must omit the prefix field")
	}

	// The map form must serialize cleanly, spans included.
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(data, []byte(`"span":{"start":0,"end":8}`)) {
		t.Errorf("span missing from JSON: %s", data)
	}
}

func TestWriteTree(t *testing.T) {
	prog := Program{
		{
			Kind:    List,
			Bracket: Round,
			Span:    sp(t, 0, 7),
			List: []Atom{
				{Kind: Ident, Text: "+", Span: sp(t, 1, 2)},
				{Prefix: Quote, Kind: Ident, Text: "a", Span: sp(t, 3, 5)},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteTree(&buf, prog); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}

	want := "list round 0..7\n" +
		"  ident \"+\" 1..2\n" +
		"  quote ident \"a\" 3..5\n"
	if buf.String() != want {
		t.Errorf("WriteTree:\n got %q\nwant %q", buf.String(), want)
	}
}
