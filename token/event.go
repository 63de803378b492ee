package token

import (
	"fmt"
	"math"

	"go4.org/mem"
)

// Event is a single element of the pull-style event stream: the payload
// produced by one visitor callback, captured so it can be inspected,
// buffered one step ahead, or replayed. Which fields are meaningful
// depends on Kind; callers must consult Kind (or use the typed As*
// accessors, which check it for them) before reading a payload field.
//
// Non-owning payloads (string and byte-string views, TypedArrayView.Data) are views into a
// caller-owned buffer and are valid only until the next pull from whatever
// produced the Event — the same contract the underlying scanner's token
// text carries.
type Event struct {
	Kind Kind
	Tag  Tag

	boolVal bool
	i64     int64
	u64     uint64
	f64     float64
	half    uint16
	str     mem.RO
	bytes   mem.RO
	arr     TypedArrayView
	shape   []uint64
}

// BeginObjectEvent, EndObjectEvent, BeginArrayEvent, EndArrayEvent,
// FlushEvent, and NullEvent return the corresponding Event; none of them
// carry a payload.
func BeginObjectEvent() Event { return Event{Kind: BeginObject} }
func EndObjectEvent() Event   { return Event{Kind: EndObject} }
func BeginArrayEvent() Event  { return Event{Kind: BeginArray} }
func EndArrayEvent() Event    { return Event{Kind: EndArray} }
func FlushEvent() Event       { return Event{Kind: Flush} }
func NullEvent() Event        { return Event{Kind: Null} }

// NameEvent returns a Name event carrying the given key text (jsontext
// delivers it with escapes already decoded).
func NameEvent(name mem.RO) Event { return Event{Kind: Name, str: name} }

// BoolEvent returns a Bool event.
func BoolEvent(v bool) Event { return Event{Kind: Bool, boolVal: v} }

// Int64Event returns an Int64 event.
func Int64Event(v int64) Event { return Event{Kind: Int64, i64: v} }

// Uint64Event returns a Uint64 event.
func Uint64Event(v uint64) Event { return Event{Kind: Uint64, u64: v} }

// HalfEvent returns a Half event carrying the IEEE 754-2008 binary16 bit
// pattern bits.
func HalfEvent(bits uint16) Event { return Event{Kind: Half, half: bits} }

// DoubleEvent returns a Double event.
func DoubleEvent(v float64) Event { return Event{Kind: Double, f64: v} }

// StringEvent returns a String event, optionally semantically tagged.
func StringEvent(s mem.RO, tag Tag) Event { return Event{Kind: String, str: s, Tag: tag} }

// ByteStringEvent returns a ByteString event, optionally semantically
// tagged (e.g. TagBigInteger for a big-endian magnitude).
func ByteStringEvent(b mem.RO, tag Tag) Event { return Event{Kind: ByteString, bytes: b, Tag: tag} }

// TypedArrayEvent returns a TypedArray event wrapping v.
func TypedArrayEvent(v TypedArrayView) Event { return Event{Kind: TypedArray, arr: v} }

// BeginMultiDimEvent returns a BeginMultiDim event carrying the shape (one
// extent per dimension).
func BeginMultiDimEvent(shape []uint64) Event { return Event{Kind: BeginMultiDim, shape: shape} }

// EndMultiDimEvent returns the matching EndMultiDim event.
func EndMultiDimEvent() Event { return Event{Kind: EndMultiDim} }

// ErrKindMismatch is returned by an As* accessor when Event.Kind does not
// match the type being requested.
type ErrKindMismatch struct {
	Want Kind
	Got  Kind
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("token: expected %s event, got %s", e.Want, e.Got)
}

// AsBool returns the event's boolean value.
func (e Event) AsBool() (bool, error) {
	if e.Kind != Bool {
		return false, &ErrKindMismatch{Want: Bool, Got: e.Kind}
	}
	return e.boolVal, nil
}

// AsInt64 returns the event's value as an int64. It accepts Int64 and
// Uint64 events (the latter truncated via two's-complement wraparound,
// matching bignum.Int's own truncating conversions), the way the source's
// get<T> overload set accepts either underlying integer representation.
func (e Event) AsInt64() (int64, error) {
	switch e.Kind {
	case Int64:
		return e.i64, nil
	case Uint64:
		return int64(e.u64), nil
	default:
		return 0, &ErrKindMismatch{Want: Int64, Got: e.Kind}
	}
}

// AsUint64 returns the event's value as a uint64, accepting Int64 (negative
// values wrap) and Uint64 events.
func (e Event) AsUint64() (uint64, error) {
	switch e.Kind {
	case Uint64:
		return e.u64, nil
	case Int64:
		return uint64(e.i64), nil
	default:
		return 0, &ErrKindMismatch{Want: Uint64, Got: e.Kind}
	}
}

// AsFloat64 returns the event's value as a float64, accepting Double, Half
// (decoded from its binary16 bit pattern), Int64, and Uint64 events.
func (e Event) AsFloat64() (float64, error) {
	switch e.Kind {
	case Double:
		return e.f64, nil
	case Half:
		return halfToFloat64(e.half), nil
	case Int64:
		return float64(e.i64), nil
	case Uint64:
		return float64(e.u64), nil
	default:
		return 0, &ErrKindMismatch{Want: Double, Got: e.Kind}
	}
}

// HalfBits returns the raw binary16 bit pattern of a Half event.
func (e Event) HalfBits() (uint16, error) {
	if e.Kind != Half {
		return 0, &ErrKindMismatch{Want: Half, Got: e.Kind}
	}
	return e.half, nil
}

// AsString returns the event's string payload as a non-owning view. It
// accepts String and Name events.
func (e Event) AsString() (mem.RO, error) {
	switch e.Kind {
	case String, Name:
		return e.str, nil
	default:
		return mem.RO{}, &ErrKindMismatch{Want: String, Got: e.Kind}
	}
}

// AsBytes returns the event's byte-string payload as a non-owning view.
func (e Event) AsBytes() (mem.RO, error) {
	if e.Kind != ByteString {
		return mem.RO{}, &ErrKindMismatch{Want: ByteString, Got: e.Kind}
	}
	return e.bytes, nil
}

// AsTypedArray returns the event's typed-array payload.
func (e Event) AsTypedArray() (TypedArrayView, error) {
	if e.Kind != TypedArray {
		return TypedArrayView{}, &ErrKindMismatch{Want: TypedArray, Got: e.Kind}
	}
	return e.arr, nil
}

// Shape returns the dimension extents of a BeginMultiDim event.
func (e Event) Shape() ([]uint64, error) {
	if e.Kind != BeginMultiDim {
		return nil, &ErrKindMismatch{Want: BeginMultiDim, Got: e.Kind}
	}
	return e.shape, nil
}

// halfToFloat64 decodes an IEEE 754-2008 binary16 bit pattern to float64.
func halfToFloat64(bits uint16) float64 {
	sign := uint64(bits>>15) & 1
	exp := uint64(bits>>10) & 0x1f
	frac := uint64(bits) & 0x3ff

	var f uint64
	switch {
	case exp == 0 && frac == 0:
		f = sign << 63
	case exp == 0x1f:
		f = sign<<63 | 0x7ff<<52 | frac<<42
	case exp == 0:
		// Subnormal half: normalize by hand.
		e := -14
		m := frac
		for m&0x400 == 0 {
			m <<= 1
			e--
		}
		m &= 0x3ff
		f = sign<<63 | uint64(e+1023)<<52 | m<<42
	default:
		f = sign<<63 | (exp-15+1023)<<52 | frac<<42
	}
	return math.Float64frombits(f)
}

// String renders a compact human-readable form of the event, for test
// failure messages and diagnostics.
func (e Event) String() string {
	switch e.Kind {
	case Bool:
		return fmt.Sprintf("bool(%v)", e.boolVal)
	case Int64:
		return fmt.Sprintf("int64(%d)", e.i64)
	case Uint64:
		return fmt.Sprintf("uint64(%d)", e.u64)
	case Double:
		return fmt.Sprintf("double(%v)", e.f64)
	case Half:
		return fmt.Sprintf("half(0x%04x)", e.half)
	case String, Name:
		return fmt.Sprintf("%s(%q)", e.Kind, e.str.StringCopy())
	case ByteString:
		return fmt.Sprintf("byte_string(%d bytes, tag=%d)", e.bytes.Len(), e.Tag)
	case TypedArray:
		return fmt.Sprintf("typed_array(%s x%d)", e.arr.Elem, e.arr.Count)
	case BeginMultiDim:
		return fmt.Sprintf("begin_multi_dim(%v)", e.shape)
	default:
		return e.Kind.String()
	}
}
