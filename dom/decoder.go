// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package dom

import (
	"fmt"
	"strconv"

	"go4.org/mem"

	"github.com/cursorlib/staj/bignum"
	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// A Decoder implements visitor.Visitor, building a Value tree one event at
// a time. It uses the same stack-of-partial-values technique as the
// source's own JSON decoder: each open container pushes a frame, and each
// completed value (scalar or container) is reduced into whichever frame is
// now on top, exactly the way a shift-reduce parser folds a value into its
// enclosing structure.
//
// A single Decoder may be driven repeatedly (once per top-level value);
// Value and Err report the outcome of the most recently completed walk.
type Decoder struct {
	stack []*frame
	root  Value
	err   error
}

// NewDecoder returns a Decoder ready to build a Value tree.
func NewDecoder() *Decoder { return new(Decoder) }

// Value returns the value most recently completed by a full top-level
// walk, or nil if the walk has not yet completed (or failed).
func (d *Decoder) Value() Value { return d.root }

// Err reports the first error encountered while building the tree, if
// any. Once Err is non-nil, d has stopped accepting further events (every
// method returns false).
func (d *Decoder) Err() error { return d.err }

// Reset discards any completed value and error, readying d to build the
// next one.
func (d *Decoder) Reset() {
	d.stack = d.stack[:0]
	d.root = nil
	d.err = nil
}

type frame struct {
	obj *Object // non-nil for an object frame
	arr *Array  // non-nil for an array frame

	keyPos  int // start offset of the pending key, if haveKey
	key     string
	haveKey bool
}

func (d *Decoder) fail(err error) bool {
	if d.err == nil {
		d.err = err
	}
	return false
}

// top returns the innermost open frame, or nil at the top level.
func (d *Decoder) top() *frame {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// emit folds a completed value into the frame now on top of the stack, or
// sets it as the finished top-level result if the stack is empty.
func (d *Decoder) emit(v Value, end int) {
	top := d.top()
	if top == nil {
		d.root = v
		return
	}
	switch {
	case top.obj != nil:
		if !top.haveKey {
			d.fail(fmt.Errorf("dom: value with no preceding Name in object"))
			return
		}
		top.obj.Members = append(top.obj.Members, &Member{
			pos: top.keyPos, end: end,
			Key:   top.key,
			Value: v,
		})
		top.haveKey = false
	case top.arr != nil:
		top.arr.Values = append(top.arr.Values, v)
	}
}

func (d *Decoder) BeginObject(ctx visitor.Context) bool {
	if d.err != nil {
		return false
	}
	d.stack = append(d.stack, &frame{obj: &Object{pos: ctx.Location().Span.Pos}})
	return true
}

func (d *Decoder) EndObject(ctx visitor.Context) bool {
	if d.err != nil {
		return false
	}
	f := d.pop()
	if f == nil || f.obj == nil {
		return d.fail(fmt.Errorf("dom: EndObject without matching BeginObject"))
	}
	f.obj.end = ctx.Location().Span.End
	d.emit(f.obj, f.obj.end)
	return true
}

func (d *Decoder) BeginArray(ctx visitor.Context) bool {
	if d.err != nil {
		return false
	}
	d.stack = append(d.stack, &frame{arr: &Array{pos: ctx.Location().Span.Pos}})
	return true
}

func (d *Decoder) EndArray(ctx visitor.Context) bool {
	if d.err != nil {
		return false
	}
	f := d.pop()
	if f == nil || f.arr == nil {
		return d.fail(fmt.Errorf("dom: EndArray without matching BeginArray"))
	}
	f.arr.end = ctx.Location().Span.End
	d.emit(f.arr, f.arr.end)
	return true
}

func (d *Decoder) pop() *frame {
	if len(d.stack) == 0 {
		return nil
	}
	f := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return f
}

func (d *Decoder) Name(ctx visitor.Context, name mem.RO) bool {
	if d.err != nil {
		return false
	}
	top := d.top()
	if top == nil || top.obj == nil {
		return d.fail(fmt.Errorf("dom: Name outside an object"))
	}
	top.key = name.StringCopy()
	top.keyPos = ctx.Location().Span.Pos
	top.haveKey = true
	return true
}

func (d *Decoder) Null(ctx visitor.Context) bool {
	if d.err != nil {
		return false
	}
	d.emitScalar(&Null{datum: d.newDatum(ctx, "null", token.TagNone)})
	return true
}

func (d *Decoder) Bool(ctx visitor.Context, v bool) bool {
	if d.err != nil {
		return false
	}
	d.emitScalar(&Bool{datum: d.newDatum(ctx, strconv.FormatBool(v), token.TagNone), Value: v})
	return true
}

func (d *Decoder) Int64(ctx visitor.Context, v int64) bool {
	if d.err != nil {
		return false
	}
	d.emitScalar(&Int64{datum: d.newDatum(ctx, strconv.FormatInt(v, 10), token.TagNone), Value: v})
	return true
}

func (d *Decoder) Uint64(ctx visitor.Context, v uint64) bool {
	if d.err != nil {
		return false
	}
	d.emitScalar(&Uint64{datum: d.newDatum(ctx, strconv.FormatUint(v, 10), token.TagNone), Value: v})
	return true
}

func (d *Decoder) Half(ctx visitor.Context, bits uint16) bool {
	if d.err != nil {
		return false
	}
	// A half-precision float has no dedicated Value type; widen it to
	// Double the same way the wire formats that don't natively support
	// half floats would. token.Event already knows how to decode a
	// binary16 bit pattern, so reuse that instead of duplicating it.
	f, _ := token.HalfEvent(bits).AsFloat64()
	d.emitScalar(&Double{datum: d.newDatum(ctx, strconv.FormatFloat(f, 'g', -1, 64), token.TagNone), Value: f})
	return true
}

func (d *Decoder) Double(ctx visitor.Context, v float64) bool {
	if d.err != nil {
		return false
	}
	d.emitScalar(&Double{datum: d.newDatum(ctx, strconv.FormatFloat(v, 'g', -1, 64), token.TagNone), Value: v})
	return true
}

func (d *Decoder) String(ctx visitor.Context, s mem.RO, tag token.Tag) bool {
	if d.err != nil {
		return false
	}
	text := s.StringCopy()
	if tag == token.TagBigInteger {
		n, err := bignum.Parse(text)
		if err != nil {
			return d.fail(fmt.Errorf("dom: invalid big integer %q: %w", text, err))
		}
		d.emitScalar(&BigInt{datum: d.newDatum(ctx, text, tag), Value: n})
		return true
	}
	d.emitScalar(&String{datum: d.newDatum(ctx, text, tag)})
	return true
}

func (d *Decoder) ByteString(ctx visitor.Context, b mem.RO, tag token.Tag) bool {
	if d.err != nil {
		return false
	}
	raw := []byte(b.StringCopy())
	d.emitScalar(&ByteString{datum: d.newDatum(ctx, string(raw), tag), Bytes: raw})
	return true
}

// TypedArray and BeginMultiDim/EndMultiDim are bulk events a Decoder does
// not understand on its own: a caller that wants them in the tree should
// drive the walk through a stajcursor.Cursor first, which expands them
// into the BeginArray/scalar/EndArray sequence Decoder does understand.
func (d *Decoder) TypedArray(ctx visitor.Context, v token.TypedArrayView) bool {
	return d.fail(fmt.Errorf("dom: TypedArray not supported directly; drive through a stajcursor.Cursor"))
}

func (d *Decoder) BeginMultiDim(ctx visitor.Context, shape []uint64) bool {
	return d.fail(fmt.Errorf("dom: BeginMultiDim not supported directly; drive through a stajcursor.Cursor"))
}

func (d *Decoder) EndMultiDim(ctx visitor.Context) bool { return d.err == nil }

func (d *Decoder) Flush(ctx visitor.Context) bool { return d.err == nil }

func (d *Decoder) newDatum(ctx visitor.Context, text string, tag token.Tag) datum {
	sp := ctx.Location().Span
	return datum{pos: sp.Pos, end: sp.End, text: text, tag: tag}
}

func (d *Decoder) emitScalar(v Value) {
	d.emit(v, v.Span().End)
}

var _ visitor.Visitor = (*Decoder)(nil)
