// Package visitor defines the push-style event protocol that decoders
// drive and the pull-style cursor in package stajcursor bridges into a
// pull API. Every Visitor method returns a bool: true tells the driver to
// keep delivering events, false asks it to stop as soon as it safely can.
package visitor

import "fmt"

// Span is a half-open byte range [Pos, End) in the input.
type Span struct {
	Pos, End int
}

// LineCol is a line and column position: Line is 1-based, Column is a
// 0-based byte offset within the line.
type LineCol struct {
	Line, Column int
}

func (l LineCol) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Column) }

// Location reports the byte span and the line/column bounds of an event's
// origin in the source input.
type Location struct {
	Span
	First, Last LineCol
}

// Context is passed to every Visitor method, giving the location of the
// event currently being delivered. The Context is only valid for the
// duration of that call, matching the non-owning-view contract every
// payload in this module follows.
type Context interface {
	Location() Location
}

// StaticContext is a Context with a fixed Location, useful for
// constructing events programmatically (tests, synthetic replays) where no
// live source position exists.
type StaticContext Location

// Location implements Context.
func (c StaticContext) Location() Location { return Location(c) }
