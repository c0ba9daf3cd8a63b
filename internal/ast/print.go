package ast

import (
	"fmt"
	"io"
)

// WriteTree writes a human-readable tree of the atoms to w, one node per
// line, children indented under their list.
func WriteTree(w io.Writer, atoms []Atom) error {
	for _, a := range atoms {
		if err := writeAtom(w, a, ""); err != nil {
			return err
		}
	}
	return nil
}

func writeAtom(w io.Writer, a Atom, indent string) error {
	prefix := ""
	if a.Prefix != PrefixNone {
		prefix = a.Prefix.String() + " "
	}

	switch a.Kind {
	case List:
		if _, err := fmt.Fprintf(w, "%s%slist %s %s\n", indent, prefix, a.Bracket, a.Span); err != nil {
			return err
		}
		for _, child := range a.List {
			if err := writeAtom(w, child, indent+"  "); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s%s%s %q %s\n", indent, prefix, a.Kind, a.Text, a.Span)
		return err
	}
}
