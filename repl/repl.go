// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"solparse/ast"
	"solparse/parser"
)

const PROMPT = ">> "

type attempt struct {
	name  string
	parse func(string) (ast.Node, error)
}

// attempts run from the smallest construct to the largest; the first that
// consumes the whole line wins.
var attempts = []attempt{
	{"expression", func(s string) (ast.Node, error) { return parser.ParseExpression(s) }},
	{"statement", func(s string) (ast.Node, error) { return parser.ParseStatement(s) }},
	{"member", func(s string) (ast.Node, error) { return parser.ParseNode(s) }},
	{"source unit", func(s string) (ast.Node, error) { return parser.Parse(s) }},
}

// Start reads snippets line by line and prints their trees until in is
// exhausted.
func Start(in io.Reader, out io.Writer, opts ...ast.EncodeOption) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		node, err := Eval(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		data, err := ast.Marshal(node, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", data)
	}
}

// Eval parses a snippet as the first construct that accepts it. When none
// does, the error that got furthest into the input is returned.
func Eval(snippet string) (ast.Node, error) {
	var best *parser.ParseError
	var bestErr error
	for _, a := range attempts {
		node, err := a.parse(snippet)
		if err == nil {
			return node, nil
		}
		var pe *parser.ParseError
		if !errors.As(err, &pe) {
			return nil, err
		}
		if best == nil || pe.Position.Offset > best.Position.Offset {
			best, bestErr = pe, fmt.Errorf("%s: %w", a.name, err)
		}
	}
	return nil, bestErr
}
