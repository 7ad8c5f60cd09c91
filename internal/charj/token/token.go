package token

import "fmt"

type Kind string

const (
	KindIdentifier Kind = "IDENTIFIER"
	KindString     Kind = "STRING"
	KindNumber     Kind = "NUMBER"
	KindDocComment Kind = "DOC_COMMENT"

	// sized types, the width is carried by Token.Width
	KindInt   Kind = "INT"
	KindUint  Kind = "UINT"
	KindBytes Kind = "BYTES_N"
)

// Keywords
const (
	KindPackage  Kind = "package"
	KindImport   Kind = "import"
	KindAs       Kind = "as"
	KindStruct   Kind = "struct"
	KindObject   Kind = "object"
	KindFun      Kind = "fun"
	KindLet      Kind = "let"
	KindIf       Kind = "if"
	KindElse     Kind = "else"
	KindWhile    Kind = "while"
	KindFor      Kind = "for"
	KindIn       Kind = "in"
	KindBreak    Kind = "break"
	KindContinue Kind = "continue"
	KindReturn   Kind = "return"
	KindBool     Kind = "bool"
	KindTrue     Kind = "true"
	KindFalse    Kind = "false"
	KindStringT  Kind = "string"
	KindBytesT   Kind = "bytes"
	KindDefault  Kind = "default"
)

// Punctuation and operators
const (
	KindSemicolon    Kind = ";"
	KindLBrace       Kind = "{"
	KindRBrace       Kind = "}"
	KindLParen       Kind = "("
	KindRParen       Kind = ")"
	KindLBracket     Kind = "["
	KindRBracket     Kind = "]"
	KindComma        Kind = ","
	KindDot          Kind = "."
	KindDotDot       Kind = ".."
	KindDollar       Kind = "$"
	KindArrow        Kind = "->"
	KindFatArrow     Kind = "=>"
	KindColon        Kind = ":"
	KindQuestion     Kind = "?"
	KindAssign       Kind = "="
	KindEqual        Kind = "=="
	KindNotEqual     Kind = "!="
	KindLess         Kind = "<"
	KindLessEqual    Kind = "<="
	KindGreater      Kind = ">"
	KindGreaterEqual Kind = ">="
	KindAndAnd       Kind = "&&"
	KindOrOr         Kind = "||"
	KindNot          Kind = "!"
	KindTilde        Kind = "~"
	KindPlus         Kind = "+"
	KindMinus        Kind = "-"
	KindStar         Kind = "*"
	KindSlash        Kind = "/"
	KindPercent      Kind = "%"
	KindPower        Kind = "**"
	KindShiftLeft    Kind = "<<"
	KindShiftRight   Kind = ">>"
	KindIncrement    Kind = "++"
	KindDecrement    Kind = "--"
	KindAmpersand    Kind = "&"
	KindPipe         Kind = "|"
	KindCaret        Kind = "^"
	KindPlusAssign   Kind = "+="
	KindMinusAssign  Kind = "-="
	KindStarAssign   Kind = "*="
	KindSlashAssign  Kind = "/="
	KindModAssign    Kind = "%="
	KindAndAssign    Kind = "&="
	KindOrAssign     Kind = "|="
	KindXorAssign    Kind = "^="
	KindShlAssign    Kind = "<<="
	KindShrAssign    Kind = ">>="
)

var keywords = map[string]Kind{
	"package":  KindPackage,
	"pkg":      KindPackage,
	"import":   KindImport,
	"as":       KindAs,
	"struct":   KindStruct,
	"object":   KindObject,
	"fun":      KindFun,
	"let":      KindLet,
	"if":       KindIf,
	"else":     KindElse,
	"while":    KindWhile,
	"for":      KindFor,
	"in":       KindIn,
	"break":    KindBreak,
	"continue": KindContinue,
	"return":   KindReturn,
	"bool":     KindBool,
	"true":     KindTrue,
	"false":    KindFalse,
	"string":   KindStringT,
	"bytes":    KindBytesT,
	"default":  KindDefault,
}

var punctuation = map[string]Kind{
	";": KindSemicolon, "{": KindLBrace, "}": KindRBrace, "(": KindLParen, ")": KindRParen,
	"[": KindLBracket, "]": KindRBracket, ",": KindComma, ".": KindDot, "..": KindDotDot,
	"$": KindDollar, "->": KindArrow, "=>": KindFatArrow, ":": KindColon, "?": KindQuestion,
	"=": KindAssign, "==": KindEqual, "!=": KindNotEqual, "<": KindLess, "<=": KindLessEqual,
	">": KindGreater, ">=": KindGreaterEqual, "&&": KindAndAnd, "||": KindOrOr, "!": KindNot,
	"~": KindTilde, "+": KindPlus, "-": KindMinus, "*": KindStar, "/": KindSlash,
	"%": KindPercent, "**": KindPower, "<<": KindShiftLeft, ">>": KindShiftRight,
	"++": KindIncrement, "--": KindDecrement, "&": KindAmpersand, "|": KindPipe, "^": KindCaret,
	"+=": KindPlusAssign, "-=": KindMinusAssign, "*=": KindStarAssign, "/=": KindSlashAssign,
	"%=": KindModAssign, "&=": KindAndAssign, "|=": KindOrAssign, "^=": KindXorAssign,
	"<<=": KindShlAssign, ">>=": KindShrAssign,
}

// Keyword reports the keyword kind for an identifier-shaped word.
func Keyword(word string) (Kind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Punctuation reports the operator or punctuation kind spelled by value.
func Punctuation(value string) (Kind, bool) {
	kind, ok := punctuation[value]
	return kind, ok
}

// Location is a half-open byte range [Start, End) in the source.
type Location struct {
	Start int
	End   int
}

// Span returns the location running from the start of from to the end of to.
func Span(from, to Location) Location {
	return Location{Start: from.Start, End: to.End}
}

func (l Location) Contains(other Location) bool {
	return l.Start <= other.Start && other.End <= l.End
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Start, l.End)
}

type Token struct {
	Kind  Kind
	Value string

	// Exponent holds the digits after the exponent marker of a number literal.
	Exponent string

	// Width is the bit or byte width of a sized type token (int256, uint8, bytes32).
	Width int

	Location Location
}

func (t *Token) String() string {
	switch t.Kind {
	case KindIdentifier:
		return fmt.Sprintf("identifier %q", t.Value)
	case KindString:
		return fmt.Sprintf("string %q", t.Value)
	case KindNumber:
		if t.Exponent != "" {
			return fmt.Sprintf("number %se%s", t.Value, t.Exponent)
		}
		return fmt.Sprintf("number %s", t.Value)
	case KindDocComment:
		return "doc comment"
	case KindInt:
		return fmt.Sprintf("'int%d'", t.Width)
	case KindUint:
		return fmt.Sprintf("'uint%d'", t.Width)
	case KindBytes:
		return fmt.Sprintf("'bytes%d'", t.Width)
	default:
		return fmt.Sprintf("'%s'", string(t.Kind))
	}
}
