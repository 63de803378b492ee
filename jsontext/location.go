package jsontext

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (l LineCol) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// String renders l as "line:col-col" when First and Last share a line, or
// "line:col-line:col" when the range spans multiple lines.
func (l Location) String() string {
	if l.First.Line == l.Last.Line {
		return fmt.Sprintf("%d:%d-%d", l.First.Line, l.First.Column, l.Last.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", l.First.Line, l.First.Column, l.Last.Line, l.Last.Column)
}
