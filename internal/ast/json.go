package ast

// AtomToMap converts an atom to a map suitable for JSON serialization.
// This produces a tagged-union structure: every atom has a "kind" field.
func AtomToMap(a Atom) map[string]interface{} {
	m := map[string]interface{}{
		"kind": a.Kind.String(),
		"span": a.Span,
	}
	if a.Prefix != PrefixNone {
		m["prefix"] = a.Prefix.String()
	}

	switch a.Kind {
	case Ident, String:
		m["text"] = a.Text
	case List:
		m["bracket"] = a.Bracket.String()
		m["atoms"] = ProgramToMap(a.List)
	}
	return m
}

// ProgramToMap converts a sequence of atoms to JSON-ready maps.
func ProgramToMap(atoms []Atom) []map[string]interface{} {
	result := make([]map[string]interface{}, len(atoms))
	for i, a := range atoms {
		result[i] = AtomToMap(a)
	}
	return result
}
