// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package dom defines an in-memory tree for self-describing data values,
// and a Decoder that builds one by driving a visitor.Visitor walk.
package dom

import (
	"github.com/cursorlib/staj/bignum"
	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// A Value is an arbitrary decoded value.
type Value interface{ Span() visitor.Span }

// A Datum is a Value with a raw text representation, the way the source
// literal looked before it was interpreted.
type Datum interface {
	Value
	Text() string
}

func newSpan(pos, end int) visitor.Span { return visitor.Span{Pos: pos, End: end} }

// An Object is a collection of key-value members, in the order they were
// decoded.
type Object struct {
	pos, end int
	Members  []*Member
}

// Span satisfies the Value interface.
func (o *Object) Span() visitor.Span { return newSpan(o.pos, o.end) }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	pos, end int

	Key   string
	Value Value
}

// Span satisfies the Value interface.
func (m *Member) Span() visitor.Span { return newSpan(m.pos, m.end) }

// An Array is a sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() visitor.Span { return newSpan(a.pos, a.end) }

type datum struct {
	pos, end int
	text     string
	tag      token.Tag
}

// Span satisfies the Value interface.
func (d datum) Span() visitor.Span { return newSpan(d.pos, d.end) }

// Text satisfies the Datum interface.
func (d datum) Text() string { return d.text }

// Tag reports the semantic hint the source event carried, or
// token.TagNone if it carried none.
func (d datum) Tag() token.Tag { return d.tag }

// A String is a text string value, already unescaped.
type String struct{ datum }

// A ByteString is a binary string value.
type ByteString struct {
	datum
	Bytes []byte
}

// An Int64 is a signed integer value that fit in 64 bits.
type Int64 struct {
	datum
	Value int64
}

// A Uint64 is an unsigned integer value that fit in 64 bits but not in a
// signed one.
type Uint64 struct {
	datum
	Value uint64
}

// A BigInt is an integer value that overflowed both int64 and uint64.
type BigInt struct {
	datum
	Value *bignum.Int
}

// A Double is a floating-point value.
type Double struct {
	datum
	Value float64
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	Value bool
}

// Null represents the null constant.
type Null struct{ datum }
