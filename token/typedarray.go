package token

import (
	"math"

	"go4.org/mem"
)

// ElemKind identifies the element type of a TypedArrayView.
type ElemKind uint8

const (
	ElemInvalid ElemKind = iota
	ElemUint8
	ElemInt8
	ElemUint16
	ElemInt16
	ElemUint32
	ElemInt32
	ElemUint64
	ElemInt64
	ElemHalf
	ElemFloat32
	ElemFloat64
)

// Size returns the width in bytes of one element of kind k, or 0 if k is
// not a recognized element kind.
func (k ElemKind) Size() int {
	switch k {
	case ElemUint8, ElemInt8:
		return 1
	case ElemUint16, ElemInt16, ElemHalf:
		return 2
	case ElemUint32, ElemInt32, ElemFloat32:
		return 4
	case ElemUint64, ElemInt64, ElemFloat64:
		return 8
	default:
		return 0
	}
}

func (k ElemKind) String() string {
	switch k {
	case ElemUint8:
		return "uint8"
	case ElemInt8:
		return "int8"
	case ElemUint16:
		return "uint16"
	case ElemInt16:
		return "int16"
	case ElemUint32:
		return "uint32"
	case ElemInt32:
		return "int32"
	case ElemUint64:
		return "uint64"
	case ElemInt64:
		return "int64"
	case ElemHalf:
		return "half"
	case ElemFloat32:
		return "float32"
	case ElemFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// TypedArrayView is a non-owning view onto a homogeneous run of fixed-width
// elements, such as a CBOR typed array. Data holds the raw little-endian
// element bytes; the view is valid only for as long as the caller-owned
// buffer it points into is valid, matching the non-owning-view contract
// every payload type in this module follows (see go4.org/mem.RO).
type TypedArrayView struct {
	Elem  ElemKind
	Data  mem.RO
	Count int
}

// Len reports the number of elements the view claims to hold.
func (v TypedArrayView) Len() int { return v.Count }

// Uint8At, Int8At, ... decode the element at index i out of Data. Each
// panics if Elem does not match the requested element kind or if i is out
// of range; callers that don't already know the element kind should switch
// on Elem first, the way stajcursor's expansion state machine does.

func (v TypedArrayView) Uint8At(i int) uint8 {
	v.checkKind(ElemUint8, i)
	return v.Data.At(i)
}

func (v TypedArrayView) Int8At(i int) int8 {
	v.checkKind(ElemInt8, i)
	return int8(v.Data.At(i))
}

func (v TypedArrayView) Uint16At(i int) uint16 {
	v.checkKind(ElemUint16, i)
	return leUint16(v.Data, i*2)
}

func (v TypedArrayView) Int16At(i int) int16 {
	v.checkKind(ElemInt16, i)
	return int16(leUint16(v.Data, i*2))
}

func (v TypedArrayView) Uint32At(i int) uint32 {
	v.checkKind(ElemUint32, i)
	return leUint32(v.Data, i*4)
}

func (v TypedArrayView) Int32At(i int) int32 {
	v.checkKind(ElemInt32, i)
	return int32(leUint32(v.Data, i*4))
}

func (v TypedArrayView) Uint64At(i int) uint64 {
	v.checkKind(ElemUint64, i)
	return leUint64(v.Data, i*8)
}

func (v TypedArrayView) Int64At(i int) int64 {
	v.checkKind(ElemInt64, i)
	return int64(leUint64(v.Data, i*8))
}

func (v TypedArrayView) HalfAt(i int) uint16 {
	v.checkKind(ElemHalf, i)
	return leUint16(v.Data, i*2)
}

func (v TypedArrayView) Float32At(i int) float32 {
	v.checkKind(ElemFloat32, i)
	return math.Float32frombits(leUint32(v.Data, i*4))
}

func (v TypedArrayView) Float64At(i int) float64 {
	v.checkKind(ElemFloat64, i)
	return math.Float64frombits(leUint64(v.Data, i*8))
}

func (v TypedArrayView) checkKind(want ElemKind, i int) {
	if v.Elem != want {
		panic("token: TypedArrayView element kind mismatch")
	}
	if i < 0 || i >= v.Count {
		panic("token: TypedArrayView index out of range")
	}
}

func leUint16(b mem.RO, off int) uint16 {
	return uint16(b.At(off)) | uint16(b.At(off+1))<<8
}

func leUint32(b mem.RO, off int) uint32 {
	var u uint32
	for i := 0; i < 4; i++ {
		u |= uint32(b.At(off+i)) << (8 * i)
	}
	return u
}

func leUint64(b mem.RO, off int) uint64 {
	var u uint64
	for i := 0; i < 8; i++ {
		u |= uint64(b.At(off+i)) << (8 * i)
	}
	return u
}
