package token_test

import (
	"math"
	"testing"

	"go4.org/mem"

	"github.com/cursorlib/staj/token"
)

func TestAsAccessors_KindMismatch(t *testing.T) {
	ev := token.BoolEvent(true)
	if _, err := ev.AsInt64(); err == nil {
		t.Error("AsInt64 on a Bool event succeeded, want error")
	}
	var mismatch *token.ErrKindMismatch
	if _, err := ev.AsString(); err == nil {
		t.Error("AsString on a Bool event succeeded, want error")
	} else if !as(err, &mismatch) {
		t.Errorf("error type = %T, want *ErrKindMismatch", err)
	}
}

func as(err error, target **token.ErrKindMismatch) bool {
	e, ok := err.(*token.ErrKindMismatch)
	if ok {
		*target = e
	}
	return ok
}

func TestAsInt64_AcceptsUint64(t *testing.T) {
	ev := token.Uint64Event(42)
	got, err := ev.AsInt64()
	if err != nil {
		t.Fatalf("AsInt64: %v", err)
	}
	if got != 42 {
		t.Errorf("AsInt64() = %d, want 42", got)
	}
}

func TestAsFloat64_AcceptsHalf(t *testing.T) {
	// 0x3C00 is binary16 for 1.0.
	ev := token.HalfEvent(0x3C00)
	got, err := ev.AsFloat64()
	if err != nil {
		t.Fatalf("AsFloat64: %v", err)
	}
	if got != 1.0 {
		t.Errorf("AsFloat64(half 1.0) = %v, want 1.0", got)
	}
}

func TestAsFloat64_HalfZeroAndNegative(t *testing.T) {
	tests := []struct {
		bits uint16
		want float64
	}{
		{0x0000, 0},
		{0x8000, 0}, // negative zero, compares equal to 0
		{0xC000, -2.0},
		{0x7C00, 0}, // +Inf, checked separately below
	}
	for _, tc := range tests[:3] {
		ev := token.HalfEvent(tc.bits)
		got, err := ev.AsFloat64()
		if err != nil {
			t.Fatalf("AsFloat64: %v", err)
		}
		if got != tc.want {
			t.Errorf("half(0x%04x) = %v, want %v", tc.bits, got, tc.want)
		}
	}
	if got, _ := token.HalfEvent(tests[3].bits).AsFloat64(); !math.IsInf(got, 1) {
		t.Errorf("half(0x%04x) = %v, want +Inf", tests[3].bits, got)
	}
}

func TestAsString(t *testing.T) {
	ev := token.StringEvent(mem.S("hello"), token.TagNone)
	got, err := ev.AsString()
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	if got.StringCopy() != "hello" {
		t.Errorf("AsString() = %q, want hello", got.StringCopy())
	}
}

func TestAsBytes_Tagged(t *testing.T) {
	ev := token.ByteStringEvent(mem.B([]byte{1, 2, 3}), token.TagBigInteger)
	if !ev.Tag.IsBignum() {
		t.Error("Tag.IsBignum() = false, want true")
	}
	got, err := ev.AsBytes()
	if err != nil {
		t.Fatalf("AsBytes: %v", err)
	}
	if got.Len() != 3 {
		t.Errorf("AsBytes().Len() = %d, want 3", got.Len())
	}
}

func TestTypedArrayView_Uint32(t *testing.T) {
	raw := []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}
	v := token.TypedArrayView{Elem: token.ElemUint32, Data: mem.B(raw), Count: 3}
	for i, want := range []uint32{1, 2, 3} {
		if got := v.Uint32At(i); got != want {
			t.Errorf("Uint32At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestTypedArrayView_KindMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int8At on a uint32 view did not panic")
		}
	}()
	v := token.TypedArrayView{Elem: token.ElemUint32, Data: mem.B(make([]byte, 4)), Count: 1}
	v.Int8At(0)
}

func TestBeginMultiDim_Shape(t *testing.T) {
	ev := token.BeginMultiDimEvent([]uint64{2, 3, 4})
	shape, err := ev.Shape()
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(shape) != 3 || shape[0] != 2 || shape[2] != 4 {
		t.Errorf("Shape() = %v, want [2 3 4]", shape)
	}
}

func TestKind_IsScalar(t *testing.T) {
	if !token.Bool.IsScalar() {
		t.Error("Bool.IsScalar() = false")
	}
	if token.BeginObject.IsScalar() {
		t.Error("BeginObject.IsScalar() = true")
	}
	if token.TypedArray.IsScalar() {
		t.Error("TypedArray.IsScalar() = true")
	}
}
