package jsontext

import "github.com/cursorlib/staj/visitor"

// scanContext adapts a Scanner's current Location to visitor.Context.
type scanContext struct {
	loc visitor.Location
}

func newContext(s *Scanner) scanContext {
	l := s.Location()
	return scanContext{loc: visitor.Location{
		Span:  visitor.Span{Pos: l.Span.Pos, End: l.Span.End},
		First: visitor.LineCol{Line: l.First.Line, Column: l.First.Column},
		Last:  visitor.LineCol{Line: l.Last.Line, Column: l.Last.Column},
	}}
}

func (c scanContext) Location() visitor.Location { return c.loc }
