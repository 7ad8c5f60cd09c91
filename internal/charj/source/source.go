// Package source maps byte offsets of a source file to lines and columns.
package source

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/charj-lang/charj/internal/charj/token"
)

// Point is a 1-based line and byte column.
type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Position struct {
	Start Point
	End   Point
}

// File is a named source text with a line index.
type File struct {
	Name    string
	Content string

	// byte offset of the first character of every line
	lines []int
}

func NewFile(name, content string) *File {
	lines := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &File{
		Name:    name,
		Content: content,
		lines:   lines,
	}
}

// Point converts a byte offset. Offsets past the end clamp to the end.
func (f *File) Point(offset int) Point {
	offset = max(0, min(offset, len(f.Content)))

	// index of the last line starting at or before offset
	line := sort.Search(len(f.lines), func(i int) bool {
		return f.lines[i] > offset
	}) - 1

	return Point{
		Line:   line + 1,
		Column: offset - f.lines[line] + 1,
	}
}

func (f *File) Position(loc token.Location) Position {
	return Position{
		Start: f.Point(loc.Start),
		End:   f.Point(loc.End),
	}
}

// Line returns the text of a 1-based line without its line break.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}

	start := f.lines[n-1]
	end := len(f.Content)
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}

	return f.Content[start:end]
}

// UTF16Column converts the byte column of p to a 0-based column counted in
// UTF-16 code units, the unit editors speaking LSP expect.
func (f *File) UTF16Column(p Point) int {
	line := f.Line(p.Line)
	prefix := line[:min(p.Column-1, len(line))]

	units := 0
	for len(prefix) > 0 {
		r, size := utf8.DecodeRuneInString(prefix)
		prefix = prefix[size:]

		if n := utf16.RuneLen(r); n > 0 {
			units += n
		} else {
			units++
		}
	}

	return units
}

// Describe formats loc as name:line:column for diagnostics.
func (f *File) Describe(loc token.Location) string {
	return fmt.Sprintf("%s:%s", f.Name, f.Point(loc.Start))
}
