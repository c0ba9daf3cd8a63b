package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"lumen-lang/internal/ast"
	"lumen-lang/internal/parser"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// ---- repl command ----

func cmdRepl() {
	// Determine history file path (~/.lumen_history)
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".lumen_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorGreen + "lumen> " + colorReset,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s%slumen-lang REPL%s %s(type 'exit' or Ctrl+D to quit)%s\n\n",
		colorBold, colorCyan, colorReset, colorGray, colorReset)

	var accumulated strings.Builder
	bracketDepth := 0

	for {
		// Update prompt based on multi-line state
		if bracketDepth > 0 {
			rl.SetPrompt(colorGray + "...   " + colorReset)
		} else {
			rl.SetPrompt(colorGreen + "lumen> " + colorReset)
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if bracketDepth > 0 {
					// Cancel multi-line input
					accumulated.Reset()
					bracketDepth = 0
					continue
				}
				// Show hint instead of exiting
				fmt.Fprintf(rl.Stdout(), "\n%s(use 'exit' or Ctrl+D to quit)%s\n", colorGray, colorReset)
				continue
			}
			// EOF (Ctrl+D) or other error → exit
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		// Exit command
		if bracketDepth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		// Count brackets for multi-line input
		bracketDepth += countOpenBrackets(line)
		accumulated.WriteString(line)
		accumulated.WriteString("\n")

		// If brackets are unbalanced, keep reading
		if bracketDepth > 0 {
			continue
		}
		bracketDepth = 0

		source := accumulated.String()
		accumulated.Reset()

		// Skip empty input
		if strings.TrimSpace(source) == "" {
			continue
		}

		prog, err := parser.Parse(source)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "%s%s%s\n", colorRed, err, colorReset)
			continue
		}
		if err := ast.WriteTree(rl.Stdout(), prog); err != nil {
			fmt.Fprintf(rl.Stderr(), "%serror: %s%s\n", colorRed, err, colorReset)
		}
	}
}

// countOpenBrackets returns open minus close bracket counts for a line. It
// does not account for brackets inside string literals, which is good enough
// for deciding whether to keep reading.
func countOpenBrackets(line string) int {
	open := strings.Count(line, "(") + strings.Count(line, "{") + strings.Count(line, "[")
	closed := strings.Count(line, ")") + strings.Count(line, "}") + strings.Count(line, "]")
	return open - closed
}
