package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charj-lang/charj/internal/charj/token"
)

var (
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrInvalidPunctuation  = errors.New("invalid punctuation")
	ErrRuneInvalid         = errors.New("decode rune: invalid rune")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
)

// Error is a lexical error at a byte offset of the input.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var commentEnd = []byte("*/")

// Widths of the bare "int" and "uint" type names.
const DefaultIntWidth = 256

type Lexer struct {
	input    []byte
	position int
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []byte(input),
	}
}

// ReadToken returns the next token, or io.EOF once the input is exhausted.
func (l *Lexer) ReadToken() (*token.Token, error) {
	if err := l.advanceTrivia(); err != nil {
		return nil, err
	}

	r, _, err := l.peek()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, l.errorf(err)
	}

	if isDigit(r) {
		return l.readNumber()
	}

	if isIdentifierOpeningCharacter(r) {
		return l.readIdentifier()
	}

	if r == '"' {
		return l.readString()
	}

	if r == '/' && (l.hasPrefix("///") || l.hasPrefix("/**")) && !l.hasPrefix("/**/") {
		return l.readDocComment()
	}

	if isPunctuationCharacter(r) {
		return l.readPunctuation()
	}

	return nil, l.errorf(ErrInvalidCharacter)
}

// advanceTrivia skips white space and plain comments. Doc comments are left
// in place because they are tokens of their own.
func (l *Lexer) advanceTrivia() error {
	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return l.errorf(err)
		}

		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			_, _ = l.read()

		case l.hasPrefix("///"), l.hasPrefix("/**") && !l.hasPrefix("/**/"):
			return nil

		case l.hasPrefix("//"):
			l.skipLine()

		case l.hasPrefix("/*"):
			start := l.position
			end := bytes.Index(l.input[start+2:], commentEnd)
			if end < 0 {
				return &Error{Offset: start, Err: ErrUnterminatedComment}
			}

			l.position = start + 2 + end + 2

		default:
			return nil
		}
	}
}

func (l *Lexer) skipLine() {
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.position++
	}
}

func (l *Lexer) readDocComment() (*token.Token, error) {
	startPos := l.position

	var text string
	if l.hasPrefix("///") {
		l.skipLine()
		text = strings.TrimSpace(string(l.input[startPos+3 : l.position]))
	} else {
		end := bytes.Index(l.input[startPos+3:], commentEnd)
		if end < 0 {
			return nil, &Error{Offset: startPos, Err: ErrUnterminatedComment}
		}

		l.position = startPos + 3 + end + 2
		text = strings.TrimSpace(string(l.input[startPos+3 : startPos+3+end]))
	}

	return l.newToken(token.KindDocComment, text, startPos), nil
}

func (l *Lexer) readIdentifier() (*token.Token, error) {
	startPos := l.position

	r, err := l.read()
	invariant(err != nil, "readIdentifier: unexpected read() error when consuming first character")
	invariant(!isIdentifierOpeningCharacter(r), "readIdentifier: first character is not valid")

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, l.errorf(err)
		}

		if !isIdentifierContinuationCharacter(r) {
			break
		}

		_, err = l.read()
		invariant(err != nil, "readIdentifier: unexpected read() error after peek()")
	}

	word := string(l.input[startPos:l.position])

	if kind, ok := token.Keyword(word); ok {
		return l.newToken(kind, word, startPos), nil
	}

	if kind, width, ok := sizedType(word); ok {
		tok := l.newToken(kind, word, startPos)
		tok.Width = width

		return tok, nil
	}

	return l.newToken(token.KindIdentifier, word, startPos), nil
}

func (l *Lexer) readNumber() (*token.Token, error) {
	startPos := l.position

	base := l.readDigits()

	exponent := ""
	if r, _, err := l.peek(); err == nil && (r == 'e' || r == 'E') {
		if next, ok := l.peekAt(l.position + 1); ok && isDigit(next) {
			_, _ = l.read()
			exponent = l.readDigits()
		}
	}

	tok := l.newToken(token.KindNumber, base, startPos)
	tok.Exponent = exponent

	return tok, nil
}

// readDigits consumes a run of digits and '_' separators. Separators are kept
// so the literal evaluator sees the raw spelling.
func (l *Lexer) readDigits() string {
	startPos := l.position

	for {
		r, _, err := l.peek()
		if err != nil || !(isDigit(r) || r == '_') {
			break
		}

		_, _ = l.read()
	}

	return string(l.input[startPos:l.position])
}

func (l *Lexer) readPunctuation() (*token.Token, error) {
	startPos := l.position

	for size := 3; size > 0; size-- {
		if startPos+size > len(l.input) {
			continue
		}

		value := string(l.input[startPos : startPos+size])
		if kind, ok := token.Punctuation(value); ok {
			l.position += size

			return l.newToken(kind, value, startPos), nil
		}
	}

	return nil, l.errorf(ErrInvalidPunctuation)
}

func (l *Lexer) readString() (*token.Token, error) {
	startPos := l.position

	// discard the opening quote
	r, err := l.read()
	invariant(err != nil, "readString: unexpected read() error when consuming first character")
	invariant(r != '"', "readString: first character is not valid")

	var value strings.Builder

	for {
		r, err := l.read()
		if err == io.EOF {
			return nil, &Error{Offset: startPos, Err: ErrUnterminatedString}
		}
		if err != nil {
			return nil, l.errorf(err)
		}

		if r == '"' {
			break
		}

		if r == '\n' {
			return nil, &Error{Offset: startPos, Err: ErrUnterminatedString}
		}

		if r == '\\' {
			escaped, err := l.read()
			if err != nil {
				return nil, &Error{Offset: startPos, Err: ErrUnterminatedString}
			}

			switch escaped {
			case 'n':
				value.WriteRune('\n')
			case 't':
				value.WriteRune('\t')
			case 'r':
				value.WriteRune('\r')
			case '0':
				value.WriteRune(0)
			case '\\', '"', '\'':
				value.WriteRune(escaped)
			default:
				return nil, &Error{Offset: l.position - 2, Err: ErrInvalidEscape}
			}

			continue
		}

		value.WriteRune(r)
	}

	return l.newToken(token.KindString, value.String(), startPos), nil
}

func (l *Lexer) newToken(kind token.Kind, value string, startPos int) *token.Token {
	return &token.Token{
		Kind:  kind,
		Value: value,
		Location: token.Location{
			Start: startPos,
			End:   l.position,
		},
	}
}

func (l *Lexer) errorf(err error) error {
	return &Error{Offset: l.position, Err: err}
}

func (l *Lexer) hasPrefix(prefix string) bool {
	rest := l.input[l.position:]

	return len(rest) >= len(prefix) && string(rest[:len(prefix)]) == prefix
}

func (l *Lexer) peek() (rune, int, error) {
	if l.position >= len(l.input) {
		return 0, 0, io.EOF
	}

	r, size := utf8.DecodeRune(l.input[l.position:])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrRuneInvalid
	}

	return r, size, nil
}

func (l *Lexer) peekAt(position int) (rune, bool) {
	if position >= len(l.input) {
		return 0, false
	}

	r, _ := utf8.DecodeRune(l.input[position:])

	return r, true
}

func (l *Lexer) read() (rune, error) {
	r, size, err := l.peek()
	if err != nil {
		return 0, err
	}

	l.position += size

	return r, nil
}

// sizedType recognises int<N>, uint<N>, bytes<N> and the bare int/uint names.
func sizedType(word string) (token.Kind, int, bool) {
	prefixes := []struct {
		prefix string
		kind   token.Kind
	}{
		{"uint", token.KindUint},
		{"int", token.KindInt},
		{"bytes", token.KindBytes},
	}

	for _, p := range prefixes {
		digits, found := strings.CutPrefix(word, p.prefix)
		if !found {
			continue
		}

		if digits == "" {
			if p.kind == token.KindBytes {
				return "", 0, false
			}

			return p.kind, DefaultIntWidth, true
		}

		width, err := strconv.Atoi(digits)
		if err != nil || width <= 0 || digits[0] == '0' {
			return "", 0, false
		}

		return p.kind, width, true
	}

	return "", 0, false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentifierContinuationCharacter(r rune) bool {
	return isIdentifierOpeningCharacter(r) || isDigit(r)
}

func isIdentifierOpeningCharacter(r rune) bool {
	return isLetter(r) || r == '_'
}

func isPunctuationCharacter(r rune) bool {
	return strings.ContainsRune(";{}()[],.$-=>:?!<&|~+*/%^", r)
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}
