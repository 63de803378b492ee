package stajcursor

import (
	"go4.org/mem"

	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// queued is one captured push event, paired with the Context it arrived
// with. Both the Event and the Context's underlying views are only valid
// until the CursorVisitor that produced them is reused for the next
// PushOne call.
type queued struct {
	ev  token.Event
	ctx visitor.Context
}

// expansionRun records that queue[start:end] is the per-element expansion
// of a single bulk TypedArray or BeginMultiDim event (raw). A consumer that
// wants the bulk event back (rather than replaying every synthesized
// element) can do so in one push instead of end-start.
type expansionRun struct {
	start, end int
	raw        token.Event
	rawCtx     visitor.Context
}

// CursorVisitor implements visitor.Visitor by capturing every event pushed
// to it into an ordered queue, expanding TypedArray and BeginMultiDim
// events into the BeginArray/scalar.../EndArray sequence a per-element
// consumer expects. It is the piece of stajcursor grounded on
// staj2_cursor.hpp's advance_typed_array/advance_multi_dim: the source
// re-enters its own event loop to synthesize those per-element events one
// at a time; here the whole run is synthesized eagerly into queue, since
// one CursorVisitor only ever buffers the events of a single top-level
// value pushed by one Decoder.PushOne call.
type CursorVisitor struct {
	queue []queued
	runs  []expansionRun
}

var _ visitor.Visitor = (*CursorVisitor)(nil)

func (c *CursorVisitor) reset() {
	c.queue = c.queue[:0]
	c.runs = c.runs[:0]
}

func (c *CursorVisitor) push(ev token.Event, ctx visitor.Context) bool {
	c.queue = append(c.queue, queued{ev: ev, ctx: ctx})
	return true
}

func (c *CursorVisitor) BeginObject(ctx visitor.Context) bool { return c.push(token.BeginObjectEvent(), ctx) }
func (c *CursorVisitor) EndObject(ctx visitor.Context) bool   { return c.push(token.EndObjectEvent(), ctx) }
func (c *CursorVisitor) BeginArray(ctx visitor.Context) bool  { return c.push(token.BeginArrayEvent(), ctx) }
func (c *CursorVisitor) EndArray(ctx visitor.Context) bool    { return c.push(token.EndArrayEvent(), ctx) }

func (c *CursorVisitor) Name(ctx visitor.Context, name mem.RO) bool {
	return c.push(token.NameEvent(name), ctx)
}

func (c *CursorVisitor) Null(ctx visitor.Context) bool { return c.push(token.NullEvent(), ctx) }
func (c *CursorVisitor) Bool(ctx visitor.Context, v bool) bool {
	return c.push(token.BoolEvent(v), ctx)
}
func (c *CursorVisitor) Int64(ctx visitor.Context, v int64) bool {
	return c.push(token.Int64Event(v), ctx)
}
func (c *CursorVisitor) Uint64(ctx visitor.Context, v uint64) bool {
	return c.push(token.Uint64Event(v), ctx)
}
func (c *CursorVisitor) Half(ctx visitor.Context, bits uint16) bool {
	return c.push(token.HalfEvent(bits), ctx)
}
func (c *CursorVisitor) Double(ctx visitor.Context, v float64) bool {
	return c.push(token.DoubleEvent(v), ctx)
}
func (c *CursorVisitor) String(ctx visitor.Context, s mem.RO, tag token.Tag) bool {
	return c.push(token.StringEvent(s, tag), ctx)
}
func (c *CursorVisitor) ByteString(ctx visitor.Context, b mem.RO, tag token.Tag) bool {
	return c.push(token.ByteStringEvent(b, tag), ctx)
}

// TypedArray expands v into begin_array, one scalar event per element, and
// end_array, and records the run so ReadTo can replay the original bulk
// event instead of len(v) individual scalar pushes when the sink can
// accept it directly.
func (c *CursorVisitor) TypedArray(ctx visitor.Context, v token.TypedArrayView) bool {
	raw := token.TypedArrayEvent(v)
	start := len(c.queue)
	c.push(token.BeginArrayEvent(), ctx)
	for i := 0; i < v.Count; i++ {
		c.push(elementEvent(v, i), ctx)
	}
	c.push(token.EndArrayEvent(), ctx)
	c.runs = append(c.runs, expansionRun{start: start, end: len(c.queue), raw: raw, rawCtx: ctx})
	return true
}

// elementEvent decodes the i'th element of v into the scalar token.Event
// kind that best represents it.
func elementEvent(v token.TypedArrayView, i int) token.Event {
	switch v.Elem {
	case token.ElemUint8:
		return token.Uint64Event(uint64(v.Uint8At(i)))
	case token.ElemInt8:
		return token.Int64Event(int64(v.Int8At(i)))
	case token.ElemUint16:
		return token.Uint64Event(uint64(v.Uint16At(i)))
	case token.ElemInt16:
		return token.Int64Event(int64(v.Int16At(i)))
	case token.ElemUint32:
		return token.Uint64Event(uint64(v.Uint32At(i)))
	case token.ElemInt32:
		return token.Int64Event(int64(v.Int32At(i)))
	case token.ElemUint64:
		return token.Uint64Event(v.Uint64At(i))
	case token.ElemInt64:
		return token.Int64Event(v.Int64At(i))
	case token.ElemHalf:
		return token.HalfEvent(v.HalfAt(i))
	case token.ElemFloat32:
		return token.DoubleEvent(float64(v.Float32At(i)))
	case token.ElemFloat64:
		return token.DoubleEvent(v.Float64At(i))
	default:
		panic("stajcursor: unknown typed array element kind")
	}
}

// BeginMultiDim expands the shape header into begin_array(len(shape)), one
// uint64 event per dimension extent, and end_array. The flattened element
// data that follows (typically a TypedArray event) is expanded
// independently by its own visitor callback.
func (c *CursorVisitor) BeginMultiDim(ctx visitor.Context, shape []uint64) bool {
	raw := token.BeginMultiDimEvent(shape)
	start := len(c.queue)
	c.push(token.BeginArrayEvent(), ctx)
	for _, dim := range shape {
		c.push(token.Uint64Event(dim), ctx)
	}
	c.push(token.EndArrayEvent(), ctx)
	c.runs = append(c.runs, expansionRun{start: start, end: len(c.queue), raw: raw, rawCtx: ctx})
	return true
}

// EndMultiDim is a no-op: BeginMultiDim already emitted a balanced
// begin_array/end_array pair for the shape header, so there is nothing
// left to close.
func (c *CursorVisitor) EndMultiDim(ctx visitor.Context) bool { return true }

func (c *CursorVisitor) Flush(ctx visitor.Context) bool { return c.push(token.FlushEvent(), ctx) }

// runAt returns the expansion run starting exactly at pos, if any.
func (c *CursorVisitor) runAt(pos int) (expansionRun, bool) {
	for _, r := range c.runs {
		if r.start == pos {
			return r, true
		}
	}
	return expansionRun{}, false
}
