// Package grammar publishes the Charj syntax as EBNF.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/ebnf"
)

// Start is the production a source file is parsed from.
const Start = "Program"

const filename = "charj.ebnf"

//go:embed charj.ebnf
var source []byte

// Source returns the grammar text.
func Source() string {
	return string(source)
}

// Load parses the published grammar.
func Load() (ebnf.Grammar, error) {
	return parse(filename, bytes.NewReader(source))
}

// Verify checks the published grammar.
func Verify() error {
	return Check(filename, bytes.NewReader(source))
}

// Check parses an EBNF grammar and verifies that every production it
// references is defined and every production is reachable from Start.
func Check(name string, r io.Reader) error {
	g, err := parse(name, r)
	if err != nil {
		return err
	}

	if err := ebnf.Verify(g, Start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}

	return nil
}

// Productions lists the production names of g in sorted order.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func parse(name string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return g, nil
}
