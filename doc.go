// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package staj is the module root for a self-describing data toolkit built
// around a shared, wire-format-neutral event stream.
//
// # Layout
//
// The event vocabulary lives in bignum, token, and visitor:
//
//	bignum    arbitrary-precision sign-magnitude integers
//	token     the Kind/Tag/Event vocabulary a decoder speaks
//	visitor   the push-style Visitor a decoder drives
//
// stajcursor bridges push to pull: a Cursor lets a caller advance a
// visitor.Visitor's events one at a time instead of receiving them all in
// a single callback-driven pass, expanding bulk typed-array and
// multi-dimensional events into per-element events along the way.
//
// dom builds an in-memory tree (Value/Object/Array/...) from a Visitor
// walk, the way an ast package builds a parse tree from a token stream.
//
// jsontext implements the JSON wire format on top of visitor: its Decoder
// parses JSON text and drives any visitor.Visitor, such as a dom.Decoder,
// and a stajcursor.Cursor can pull events from it.
//
//	dec := jsontext.NewDecoder(r)
//	c := stajcursor.NewCursor(dec)
//	for c.Next() {
//	   log.Printf("event: %v", c.Current())
//	}
package staj
