package visitor

import (
	"go4.org/mem"

	"github.com/cursorlib/staj/token"
)

// Visitor receives push-style events describing a self-describing data
// value (an object, array, or scalar tree). Every method returns a bool:
// true means "keep pushing further events", false means "stop as soon as
// it is safe to do so" — the same short-circuit contract the source's
// content-handler interface uses to let a consumer abandon a parse early
// without an exception.
//
// Arguments that carry non-owning views (name, s, b, the TypedArrayView's
// Data) are valid only for the duration of the call; a Visitor that needs
// to retain them must copy.
type Visitor interface {
	BeginObject(ctx Context) bool
	EndObject(ctx Context) bool
	BeginArray(ctx Context) bool
	EndArray(ctx Context) bool

	// Name reports an object member key. It is always followed by exactly
	// one value-producing call (a scalar, BeginObject, BeginArray, or
	// TypedArray/BeginMultiDim) before the next Name or EndObject.
	Name(ctx Context, name mem.RO) bool

	Null(ctx Context) bool
	Bool(ctx Context, v bool) bool
	Int64(ctx Context, v int64) bool
	Uint64(ctx Context, v uint64) bool
	Half(ctx Context, bits uint16) bool
	Double(ctx Context, v float64) bool

	// String and ByteString deliver a text or binary scalar. tag is
	// token.TagNone unless the source format attached a semantic tag (for
	// example a big integer or decimal fraction encoded as a tagged
	// string).
	String(ctx Context, s mem.RO, tag token.Tag) bool
	ByteString(ctx Context, b mem.RO, tag token.Tag) bool

	// TypedArray delivers an entire homogeneous element run as a single
	// bulk event, rather than one event per element. A Visitor that only
	// understands per-element scalars can be wrapped in a cursor
	// (stajcursor.NewCursor), which expands typed arrays and multi-dim
	// headers into per-element BeginArray/scalar/EndArray sequences on the
	// Visitor's behalf.
	TypedArray(ctx Context, v token.TypedArrayView) bool

	// BeginMultiDim/EndMultiDim bracket a multi-dimensional array's shape
	// header followed by its flattened element data (itself typically
	// delivered as a single TypedArray event).
	BeginMultiDim(ctx Context, shape []uint64) bool
	EndMultiDim(ctx Context) bool

	// Flush reports a natural boundary in the input (for example, end of a
	// top-level value in a concatenated stream) with no structural meaning
	// of its own.
	Flush(ctx Context) bool
}

// NopVisitor is a Visitor whose every method returns true and otherwise
// does nothing. Embed it in a struct that overrides only the methods it
// cares about, the way a partial content handler is built up in the
// source's own visitor hierarchy.
type NopVisitor struct{}

func (NopVisitor) BeginObject(Context) bool                       { return true }
func (NopVisitor) EndObject(Context) bool                         { return true }
func (NopVisitor) BeginArray(Context) bool                        { return true }
func (NopVisitor) EndArray(Context) bool                          { return true }
func (NopVisitor) Name(Context, mem.RO) bool                      { return true }
func (NopVisitor) Null(Context) bool                              { return true }
func (NopVisitor) Bool(Context, bool) bool                        { return true }
func (NopVisitor) Int64(Context, int64) bool                      { return true }
func (NopVisitor) Uint64(Context, uint64) bool                    { return true }
func (NopVisitor) Half(Context, uint16) bool                      { return true }
func (NopVisitor) Double(Context, float64) bool                   { return true }
func (NopVisitor) String(Context, mem.RO, token.Tag) bool         { return true }
func (NopVisitor) ByteString(Context, mem.RO, token.Tag) bool     { return true }
func (NopVisitor) TypedArray(Context, token.TypedArrayView) bool  { return true }
func (NopVisitor) BeginMultiDim(Context, []uint64) bool           { return true }
func (NopVisitor) EndMultiDim(Context) bool                       { return true }
func (NopVisitor) Flush(Context) bool                             { return true }

var _ Visitor = NopVisitor{}
