package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/charj-lang/charj/internal/charj/token"
)

// SyntaxError reports the first token that no production can accept. Token is
// nil when the input ended early; the error then matches io.ErrUnexpectedEOF.
type SyntaxError struct {
	Token    *token.Token
	Location token.Location
	Expected []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Location, e.Detail())
}

// Detail describes the error without its location.
func (e *SyntaxError) Detail() string {
	found := "end of input"
	if e.Token != nil {
		found = e.Token.String()
	}

	detail := "unexpected " + found
	if len(e.Expected) > 0 {
		detail += ", expected " + strings.Join(e.Expected, " or ")
	}

	return detail
}

func (e *SyntaxError) Unwrap() error {
	if e.Token == nil {
		return io.ErrUnexpectedEOF
	}

	return nil
}

// AtEOF reports whether the input ended before the program was complete.
func (e *SyntaxError) AtEOF() bool {
	return e.Token == nil
}

// LiteralError wraps a number literal whose digits could not be evaluated.
type LiteralError struct {
	Location token.Location
	Err      error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("literal error at %s: %s", e.Location, e.Err)
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}

// unexpected builds the error for the next token. A failed token source takes
// precedence, since the stream ended because of it.
func (p *Parser) unexpected(expected ...string) error {
	if p.cur.err != nil {
		return fmt.Errorf("read token: %w", p.cur.err)
	}

	tok := p.cur.peek()
	if tok == nil {
		end := p.cur.end()

		return &SyntaxError{
			Location: token.Location{Start: end, End: end},
			Expected: expected,
		}
	}

	return &SyntaxError{
		Token:    tok,
		Location: tok.Location,
		Expected: expected,
	}
}

// expect consumes a token of the given kind or fails with a SyntaxError.
func (p *Parser) expect(kind token.Kind) (*token.Token, error) {
	if tok := p.cur.accept(kind); tok != nil {
		return tok, nil
	}

	return nil, p.unexpected(describe(kind))
}

func describe(kind token.Kind) string {
	switch kind {
	case token.KindIdentifier:
		return "identifier"
	case token.KindString:
		return "string"
	case token.KindNumber:
		return "number"
	default:
		return fmt.Sprintf("'%s'", string(kind))
	}
}
