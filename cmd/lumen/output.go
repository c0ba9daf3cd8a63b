package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"lumen-lang/internal/diag"
	"lumen-lang/internal/span"
)

// ---- output helpers ----

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

// errorToMap converts a parse error to a JSON-ready map.
func errorToMap(err error) map[string]interface{} {
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		result := map[string]interface{}{
			"code":    d.Code,
			"message": d.Message,
			"offset":  d.Offset,
		}
		if len(d.Expected) > 0 {
			result["expected"] = d.Expected
		}
		return result
	}

	var r *span.RangeError
	if errors.As(err, &r) {
		return map[string]interface{}{
			"message": r.Error(),
			"start":   r.Start,
			"end":     r.End,
		}
	}

	return map[string]interface{}{"message": err.Error()}
}
