// Command lumen is the CLI entry point for the lumen-lang front end.
//
// Usage:
//
//	lumen parse <file>            Print the atom tree
//	lumen parse <file> --json     Print the AST as JSON
//	lumen check <file>            Check syntax only
//	lumen repl                    Start interactive REPL
package main

import (
	"fmt"
	"os"

	"lumen-lang/internal/ast"
	"lumen-lang/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "parse":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: missing file argument")
			os.Exit(1)
		}
		source := readFile(os.Args[2])
		cmdParse(source, hasFlag("--json"))
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: missing file argument")
			os.Exit(1)
		}
		source := readFile(os.Args[2])
		cmdCheck(source, os.Args[2])
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  lumen parse <file> [--json]   Parse and print the AST")
	fmt.Fprintln(os.Stderr, "  lumen check <file>            Parse and report syntax errors")
	fmt.Fprintln(os.Stderr, "  lumen repl                    Start interactive REPL")
}

func readFile(filename string) string {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read file %s: %v\n", filename, err)
		os.Exit(1)
	}
	return string(source)
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[3:] {
		if arg == flag {
			return true
		}
	}
	return false
}

// ---- parse command ----

func cmdParse(source string, jsonMode bool) {
	prog, err := parser.Parse(source)

	if jsonMode {
		if err != nil {
			printJSON(map[string]interface{}{"error": errorToMap(err)})
			os.Exit(1)
		}
		printJSON(map[string]interface{}{"ast": ast.ProgramToMap(prog)})
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := ast.WriteTree(os.Stdout, prog); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// ---- check command ----

func cmdCheck(source, filename string) {
	prog, err := parser.Parse(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%d top-level atoms)\n", filename, len(prog))
}
