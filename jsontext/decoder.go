// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsontext

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/cursorlib/staj/bignum"
	"github.com/cursorlib/staj/stajcursor"
	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// Decoder drives a visitor.Visitor from a stream of JSON tokens. It
// implements stajcursor.Decoder, so a stajcursor.Cursor can pull events
// from it one at a time, and it can also be pushed to directly for a
// non-buffered streaming walk.
//
// Decoder's grammar (parseElement/parseMembers/parseElements) and its
// panic/recover-based error unwind are ported unchanged from the source's
// Stream/Handler pair; only the destination interface changed, from
// Handler's per-call error return to Visitor's per-call bool.
type Decoder struct {
	s               *Scanner
	tcomma          bool // allow trailing commas in objects and arrays
	preserveDecimal bool // deliver non-integer numbers as tagged strings
}

// NewDecoder constructs a Decoder that consumes input from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{s: NewScanner(r)} }

// NewDecoderWithScanner constructs a Decoder that consumes input from s.
func NewDecoderWithScanner(s *Scanner) *Decoder { return &Decoder{s: s} }

// AllowComments configures the scanner associated with d to report (true)
// or reject (false) comment tokens.
func (d *Decoder) AllowComments(ok bool) { d.s.AllowComments(ok) }

// AllowTrailingCommas configures d to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (d *Decoder) AllowTrailingCommas(ok bool) { d.tcomma = ok }

// WithPreserveDecimal configures d to deliver a numeric literal that has a
// fraction or exponent as a String event tagged token.TagBigDecimal,
// carrying the literal's exact decimal text, instead of converting it to a
// float64 Double event. Integer literals are unaffected: they are always
// classified as Int64, Uint64, or (on overflow) a token.TagBigInteger
// string, regardless of this setting.
func (d *Decoder) WithPreserveDecimal(ok bool) { d.preserveDecimal = ok }

var _ stajcursor.Decoder = (*Decoder)(nil)

func (d *Decoder) recoverParseError(errp *error) {
	if r := recover(); r != nil {
		switch err := r.(type) {
		case *SyntaxError:
			*errp = err
		case stopSignal:
			// The Visitor asked to stop; that is not an error.
		default:
			panic(r)
		}
	}
}

// stopSignal unwinds the recursive-descent grammar the moment a Visitor
// method returns false, without treating early stop as a decode error.
type stopSignal struct{}

// PushOne parses one top-level value from the input and delivers its
// events to v. done reports that the input has no further top-level
// values; err carries a *SyntaxError on malformed input. If v stops the
// walk early (a method returns false), PushOne returns (false, nil): the
// scanner's position after an early stop is only well defined at a value
// boundary, so a Decoder that has been stopped mid-value should not be
// reused.
func (d *Decoder) PushOne(v visitor.Visitor) (done bool, err error) {
	defer d.recoverParseError(&err)

	if terr := d.nextToken(); terr == io.EOF {
		return true, nil
	} else if terr != nil {
		d.syntaxError(terr, "%v", terr)
	}
	d.parseElement(v)
	return false, nil
}

// parseElement consumes a single value of any type.
// Precondition: token != Invalid.
func (d *Decoder) parseElement(v visitor.Visitor) {
	switch tok := d.s.Token(); tok {
	case LBrace:
		d.checkStop(v.BeginObject(newContext(d.s)))
		d.parseMembers(v)
		d.require(RBrace)
		d.checkStop(v.EndObject(newContext(d.s)))
	case LSquare:
		d.checkStop(v.BeginArray(newContext(d.s)))
		d.parseElements(v)
		d.require(RSquare)
		d.checkStop(v.EndArray(newContext(d.s)))
	case Integer:
		d.pushInteger(v)
	case Number:
		d.pushNumber(v)
	case String:
		s, err := d.decodedString()
		if err != nil {
			d.syntaxError(err, "%v", err)
		}
		d.checkStop(v.String(newContext(d.s), s, token.TagNone))
	case True:
		d.checkStop(v.Bool(newContext(d.s), true))
	case False:
		d.checkStop(v.Bool(newContext(d.s), false))
	case Null:
		d.checkStop(v.Null(newContext(d.s)))
	case RBrace, RSquare, Comma, Colon:
		d.syntaxError(nil, "unexpected %v", tok)
	default:
		d.syntaxError(nil, "unknown token %v", tok)
	}
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (d *Decoder) parseMembers(v visitor.Visitor) {
	tok := d.advance(RBrace, String)
	if tok == RBrace {
		return // end of object
	}
	for {
		name, err := d.decodedString()
		if err != nil {
			d.syntaxError(err, "%v", err)
		}
		d.checkStop(v.Name(newContext(d.s), name))
		d.advance(Colon)
		d.advance()
		d.parseElement(v)

		// Check whether we have more members (",") or are done ("}").
		tok := d.advance(RBrace, Comma)
		if tok == RBrace {
			return // end of object
		} else if d.tcomma {
			next := d.advance(String, RBrace)
			if next == RBrace {
				return // end of object with trailing comma
			}
		} else {
			d.advance(String) // advance to next key
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (d *Decoder) parseElements(v visitor.Visitor) {
	if tok := d.advance(); tok == RSquare {
		return // end of array
	}
	d.parseElement(v)
	for {
		tok := d.advance(RSquare, Comma)
		if tok == RSquare {
			return // end of array
		}
		if next := d.advance(); d.tcomma && next == RSquare {
			return // end of array with trailing comma
		}
		d.parseElement(v)
	}
}

// pushInteger classifies an Integer token as Int64, Uint64, or (on
// overflow of both) a String event tagged token.TagBigInteger, verified
// via bignum.Parse so a malformed literal still surfaces as a syntax
// error rather than a silently wrong big-integer string.
func (d *Decoder) pushInteger(v visitor.Visitor) {
	text := string(d.s.Text())
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		d.checkStop(v.Int64(newContext(d.s), n))
		return
	}
	if n, err := strconv.ParseUint(text, 10, 64); err == nil {
		d.checkStop(v.Uint64(newContext(d.s), n))
		return
	}
	if _, err := bignum.Parse(text); err != nil {
		d.syntaxError(err, "invalid integer literal %q: %v", text, err)
	}
	d.checkStop(v.String(newContext(d.s), mem.S(text), token.TagBigInteger))
}

// pushNumber classifies a Number token (one with a fraction and/or
// exponent) as a Double, or, under WithPreserveDecimal, a String event
// tagged token.TagBigDecimal carrying the literal's exact text.
func (d *Decoder) pushNumber(v visitor.Visitor) {
	text := string(d.s.Text())
	if d.preserveDecimal {
		d.checkStop(v.String(newContext(d.s), mem.S(text), token.TagBigDecimal))
		return
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		d.syntaxError(err, "invalid number literal %q: %v", text, err)
	}
	d.checkStop(v.Double(newContext(d.s), f))
}

// decodedString unescapes the current String token's quoted text. Unquote
// always allocates a fresh buffer, so the result is stable independent of
// what the scanner does next.
func (d *Decoder) decodedString() (mem.RO, error) {
	b, err := Unquote(string(d.s.Text()))
	if err != nil {
		return mem.RO{}, err
	}
	return mem.B(b), nil
}

func (d *Decoder) nextToken() error {
	for {
		if err := d.s.Next(); err != nil {
			return err
		}
		if tok := d.s.Token(); tok == LineComment || tok == BlockComment {
			continue // comments carry no visitor event
		}
		return nil
	}
}

func (d *Decoder) advance(tokens ...Token) Token {
	if err := d.nextToken(); err != nil {
		d.syntaxError(err, "%v", tokLabel(tokens, err))
	}
	tok := d.s.Token()
	if len(tokens) != 0 && !tokOneOf(tok, tokens) {
		d.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	return tok
}

func (d *Decoder) require(tok Token) {
	if got := d.s.Token(); got != tok {
		d.syntaxError(nil, "expected %v, got %v", tok, got)
	}
}

func (d *Decoder) syntaxError(err error, msg string, args ...any) {
	panic(&SyntaxError{
		Location: d.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (d *Decoder) checkStop(keep bool) {
	if !keep {
		panic(stopSignal{})
	}
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

func tokOneOf(cur Token, tokens []Token) bool {
	return slices.Contains(tokens, cur)
}

// SyntaxError is the concrete type of errors reported by Decoder.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

func (s *SyntaxError) Unwrap() error { return s.err }
