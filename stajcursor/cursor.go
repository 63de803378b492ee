package stajcursor

import (
	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// PullCursor is the pull-style interface a caller advances one event at a
// time. Both Cursor and FilterView implement it, so filters compose:
// stajcursor.NewFilterView(stajcursor.NewFilterView(c, p1), p2).
type PullCursor interface {
	// Next advances to the next event, reporting whether one is available.
	// It returns false both on normal exhaustion and on error; callers must
	// check Err to distinguish the two.
	Next() bool

	// Current returns the event Next most recently produced. Its result is
	// undefined before the first Next call or after Next returns false.
	Current() token.Event

	// Context returns the source position of Current.
	Context() visitor.Context

	// Err returns the first decode error encountered, if any.
	Err() error
}

// Cursor adapts a push-style Decoder into a PullCursor. One Decoder.PushOne
// call fills an internal CursorVisitor with every event belonging to a
// single top-level value (already expanded: typed arrays and multi-dim
// headers arrive as per-element BeginArray/scalar/EndArray runs); Next then
// drains that buffer one event at a time before pulling the next top-level
// value.
//
// This trades the fully lazy, one-event-at-a-time suspension described for
// a coroutine-based cursor (which would need the underlying decoder's
// recursive descent to unwind and resume mid-value) for eagerly buffering
// one value's worth of events at a time. jsontext.Decoder does not suspend
// mid-value either: it uses panic/recover only to unwind out of its
// recursive-descent grammar on a syntax error or when a Visitor asks to
// stop, the same control-transfer
// idiom the source parser uses for early exit. Cursor needs only one
// PushOne call per top-level value, not one per event, to stay correct.
type Cursor struct {
	dec  Decoder
	cv   CursorVisitor
	pos  int
	done bool
	err  error
}

var _ PullCursor = (*Cursor)(nil)

// NewCursor returns a Cursor pulling from dec.
func NewCursor(dec Decoder) *Cursor {
	return &Cursor{dec: dec}
}

func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if c.pos >= len(c.cv.queue) {
		c.cv.reset()
		c.pos = 0
		exhausted, err := c.dec.PushOne(&c.cv)
		if err != nil {
			c.err = err
			c.done = true
			return false
		}
		if len(c.cv.queue) == 0 {
			c.done = true
			return false
		}
		// exhausted only tells us the decoder has nothing left to deliver
		// on the *next* PushOne call; the events just buffered above still
		// need draining before Cursor itself reports exhaustion.
		_ = exhausted
	}
	c.pos++
	return true
}

// Current returns the event most recently produced by Next.
func (c *Cursor) Current() token.Event {
	if c.pos == 0 || c.pos > len(c.cv.queue) {
		return token.Event{}
	}
	return c.cv.queue[c.pos-1].ev
}

// Context returns the source position of Current.
func (c *Cursor) Context() visitor.Context {
	if c.pos == 0 || c.pos > len(c.cv.queue) {
		return visitor.StaticContext{}
	}
	return c.cv.queue[c.pos-1].ctx
}

func (c *Cursor) Err() error { return c.err }

// ArrayExpected reports whether Current is positioned on a BeginArray event
// that opened the per-element expansion of a bulk TypedArray or
// BeginMultiDim event, rather than a literal JSON-style array.
func (c *Cursor) ArrayExpected() bool {
	_, ok := c.cv.runAt(c.pos - 1)
	return ok
}

// ReadTo pushes the value that starts at Current to v: if Current is a
// BeginObject or BeginArray, everything through its matching close;
// otherwise just Current itself. It is the pull
// side's analogue of Decoder.PushOne: a caller that decides a subtree is
// uninteresting can hand it to a NopVisitor-derived skip implementation, or
// pass it straight to a dom.Decoder to materialize it as a tree.
//
// When ReadTo's current position is exactly the start of a typed-array or
// multi-dim expansion run, it replays the original bulk event to v in one
// call instead of one call per synthesized element — the bulk-vs-per-
// element optimization the source's own dump() takes advantage of when
// the destination handler declares it can accept typed arrays directly.
func (c *Cursor) ReadTo(v visitor.Visitor) error {
	if c.pos == 0 {
		return nil
	}
	if run, ok := c.cv.runAt(c.pos - 1); ok {
		pushBulk(v, run)
		// Advance past the rest of the expanded run without re-delivering
		// its synthesized events individually.
		for c.pos < run.end {
			if !c.Next() {
				break
			}
		}
		return c.err
	}

	depth := 0
	ev := c.Current()
	switch ev.Kind {
	case token.BeginObject, token.BeginArray:
		depth = 1
	default:
		pushOne(v, ev, c.Context())
		return c.err
	}
	pushOne(v, ev, c.Context())
	for depth > 0 {
		if !c.Next() {
			return c.err
		}
		ev = c.Current()
		switch ev.Kind {
		case token.BeginObject, token.BeginArray:
			depth++
		case token.EndObject, token.EndArray:
			depth--
		}
		pushOne(v, ev, c.Context())
	}
	return c.err
}

func pushBulk(v visitor.Visitor, run expansionRun) {
	switch run.raw.Kind {
	case token.TypedArray:
		if arr, err := run.raw.AsTypedArray(); err == nil {
			v.TypedArray(run.rawCtx, arr)
		}
	case token.BeginMultiDim:
		if shape, err := run.raw.Shape(); err == nil {
			v.BeginMultiDim(run.rawCtx, shape)
			v.EndMultiDim(run.rawCtx)
		}
	}
}

// pushOne re-delivers a single already-captured Event to v as the
// corresponding Visitor call.
func pushOne(v visitor.Visitor, ev token.Event, ctx visitor.Context) {
	switch ev.Kind {
	case token.BeginObject:
		v.BeginObject(ctx)
	case token.EndObject:
		v.EndObject(ctx)
	case token.BeginArray:
		v.BeginArray(ctx)
	case token.EndArray:
		v.EndArray(ctx)
	case token.Name:
		s, _ := ev.AsString()
		v.Name(ctx, s)
	case token.Null:
		v.Null(ctx)
	case token.Bool:
		b, _ := ev.AsBool()
		v.Bool(ctx, b)
	case token.Int64:
		i, _ := ev.AsInt64()
		v.Int64(ctx, i)
	case token.Uint64:
		u, _ := ev.AsUint64()
		v.Uint64(ctx, u)
	case token.Half:
		bits, _ := ev.HalfBits()
		v.Half(ctx, bits)
	case token.Double:
		d, _ := ev.AsFloat64()
		v.Double(ctx, d)
	case token.String:
		s, _ := ev.AsString()
		v.String(ctx, s, ev.Tag)
	case token.ByteString:
		b, _ := ev.AsBytes()
		v.ByteString(ctx, b, ev.Tag)
	case token.TypedArray:
		arr, _ := ev.AsTypedArray()
		v.TypedArray(ctx, arr)
	case token.BeginMultiDim:
		shape, _ := ev.Shape()
		v.BeginMultiDim(ctx, shape)
	case token.EndMultiDim:
		v.EndMultiDim(ctx)
	case token.Flush:
		v.Flush(ctx)
	}
}
