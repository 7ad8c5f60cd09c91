package parser

import (
	"io"

	"github.com/charj-lang/charj/internal/charj/token"
)

// cursor buffers tokens pulled from the source and tracks the parse position.
// Doc comments never enter the buffer. A source error other than io.EOF ends
// the stream and is kept in err.
type cursor struct {
	source TokenSource
	tokens []*token.Token
	pos    int
	done   bool
	err    error
}

func newCursor(source TokenSource) *cursor {
	return &cursor{
		source: source,
	}
}

// fill buffers tokens until index i is available or the stream ends.
func (c *cursor) fill(i int) bool {
	for len(c.tokens) <= i {
		if c.done {
			return false
		}

		tok, err := c.source.ReadToken()
		if err == io.EOF {
			c.done = true
			return false
		}
		if err != nil {
			c.done = true
			c.err = err
			return false
		}

		if tok.Kind == token.KindDocComment {
			continue
		}

		c.tokens = append(c.tokens, tok)
	}

	return true
}

// peekAt returns the token n positions ahead, or nil past the end of input.
func (c *cursor) peekAt(n int) *token.Token {
	if !c.fill(c.pos + n) {
		return nil
	}

	return c.tokens[c.pos+n]
}

func (c *cursor) peek() *token.Token {
	return c.peekAt(0)
}

func (c *cursor) peekIs(kind token.Kind) bool {
	tok := c.peek()
	return tok != nil && tok.Kind == kind
}

func (c *cursor) read() *token.Token {
	tok := c.peek()
	if tok != nil {
		c.pos++
	}

	return tok
}

// accept consumes the next token if it has the given kind.
func (c *cursor) accept(kind token.Kind) *token.Token {
	if !c.peekIs(kind) {
		return nil
	}

	return c.read()
}

// end is the offset just past the last consumed token.
func (c *cursor) end() int {
	if c.pos == 0 {
		return 0
	}

	return c.tokens[c.pos-1].Location.End
}

// start is the offset of the next token, or the end of input.
func (c *cursor) start() int {
	if tok := c.peek(); tok != nil {
		return tok.Location.Start
	}

	return c.end()
}

// span is the location from start to the end of the last consumed token.
func (c *cursor) span(start int) token.Location {
	return token.Location{Start: start, End: c.end()}
}
