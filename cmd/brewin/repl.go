package main

import (
	"fmt"
	"strings"

	"github.com/peterh/liner"
)

// repl reads snippets until EOF. A snippet that declares no functions is
// wrapped as the body of main, so expressions and statements can be typed
// directly. Each snippet runs in a fresh interpreter.
func repl() {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		snippet, ok := read(cli)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(snippet) == "" {
			continue
		}
		cli.AppendHistory(strings.TrimRight(snippet, "\n"))
		run(wrap(snippet))
	}
}

// read collects lines until braces balance, prompting with a continuation
// marker for open blocks.
func read(cli *liner.State) (string, bool) {
	var b strings.Builder
	depth := 0
	for {
		prompt := "> "
		if b.Len() > 0 {
			prompt = ". "
		}
		line, err := cli.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			return "", true // Ctrl-C drops the pending snippet
		default:
			return "", false
		}
		b.WriteString(line)
		b.WriteString("\n")
		depth += braceDepth(line)
		if depth <= 0 {
			return b.String(), true
		}
	}
}

// braceDepth counts the net brace nesting of one line, skipping string
// literals.
func braceDepth(line string) int {
	depth := 0
	inString := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
		}
	}
	return depth
}

func wrap(snippet string) string {
	trimmed := strings.TrimSpace(snippet)
	if strings.HasPrefix(trimmed, "def ") || strings.HasPrefix(trimmed, "interface ") {
		return snippet
	}
	return "def main() {\n" + snippet + "}\n"
}
