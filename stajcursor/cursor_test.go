package stajcursor_test

import (
	"testing"

	"go4.org/mem"

	"github.com/cursorlib/staj/stajcursor"
	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// fakeDecoder replays one canned event sequence per value, simulating a
// push-style decoder without depending on jsontext.
type fakeDecoder struct {
	values [][]func(visitor.Visitor) bool
	at     int
}

func (d *fakeDecoder) PushOne(v visitor.Visitor) (bool, error) {
	if d.at >= len(d.values) {
		return true, nil
	}
	for _, step := range d.values[d.at] {
		if !step(v) {
			break
		}
	}
	d.at++
	return d.at >= len(d.values), nil
}

func str(ctx visitor.Context, s string) func(visitor.Visitor) bool {
	return func(v visitor.Visitor) bool { return v.String(ctx, mem.S(s), token.TagNone) }
}

func i64(ctx visitor.Context, n int64) func(visitor.Visitor) bool {
	return func(v visitor.Visitor) bool { return v.Int64(ctx, n) }
}

func begin(kind byte, ctx visitor.Context) func(visitor.Visitor) bool {
	return func(v visitor.Visitor) bool {
		if kind == 'o' {
			return v.BeginObject(ctx)
		}
		return v.BeginArray(ctx)
	}
}

func end(kind byte, ctx visitor.Context) func(visitor.Visitor) bool {
	return func(v visitor.Visitor) bool {
		if kind == 'o' {
			return v.EndObject(ctx)
		}
		return v.EndArray(ctx)
	}
}

func name(ctx visitor.Context, s string) func(visitor.Visitor) bool {
	return func(v visitor.Visitor) bool { return v.Name(ctx, mem.S(s)) }
}

func TestCursor_FlatArray(t *testing.T) {
	ctx := visitor.StaticContext{}
	dec := &fakeDecoder{values: [][]func(visitor.Visitor) bool{{
		begin('a', ctx), i64(ctx, 1), i64(ctx, 2), i64(ctx, 3), end('a', ctx),
	}}}
	c := stajcursor.NewCursor(dec)

	var kinds []token.Kind
	for c.Next() {
		kinds = append(kinds, c.Current().Kind)
	}
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []token.Kind{token.BeginArray, token.Int64, token.Int64, token.Int64, token.EndArray}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], k)
		}
	}
}

func TestCursor_ObjectWithMembers(t *testing.T) {
	ctx := visitor.StaticContext{}
	dec := &fakeDecoder{values: [][]func(visitor.Visitor) bool{{
		begin('o', ctx), name(ctx, "a"), i64(ctx, 1), name(ctx, "b"), str(ctx, "x"), end('o', ctx),
	}}}
	c := stajcursor.NewCursor(dec)

	var names []string
	for c.Next() {
		if c.Current().Kind == token.Name {
			s, err := c.Current().AsString()
			if err != nil {
				t.Fatalf("AsString: %v", err)
			}
			names = append(names, s.StringCopy())
		}
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
}

func TestCursor_MultipleTopLevelValues(t *testing.T) {
	ctx := visitor.StaticContext{}
	dec := &fakeDecoder{values: [][]func(visitor.Visitor) bool{
		{i64(ctx, 1)},
		{i64(ctx, 2)},
	}}
	c := stajcursor.NewCursor(dec)

	var got []int64
	for c.Next() {
		n, err := c.Current().AsInt64()
		if err != nil {
			t.Fatalf("AsInt64: %v", err)
		}
		got = append(got, n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got = %v, want [1 2]", got)
	}
}

func TestCursor_TypedArrayExpansion(t *testing.T) {
	ctx := visitor.StaticContext{}
	raw := []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}
	view := token.TypedArrayView{Elem: token.ElemUint32, Data: mem.B(raw), Count: 3}
	dec := &fakeDecoder{values: [][]func(visitor.Visitor) bool{{
		func(v visitor.Visitor) bool { return v.TypedArray(ctx, view) },
	}}}
	c := stajcursor.NewCursor(dec)

	var kinds []token.Kind
	var nums []uint64
	for c.Next() {
		ev := c.Current()
		kinds = append(kinds, ev.Kind)
		if ev.Kind == token.Uint64 {
			n, _ := ev.AsUint64()
			nums = append(nums, n)
		}
	}
	wantKinds := []token.Kind{token.BeginArray, token.Uint64, token.Uint64, token.Uint64, token.EndArray}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("kinds = %v, want shape %v", kinds, wantKinds)
	}
	for i, k := range wantKinds {
		if kinds[i] != k {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], k)
		}
	}
	if len(nums) != 3 || nums[0] != 1 || nums[1] != 2 || nums[2] != 3 {
		t.Errorf("nums = %v, want [1 2 3]", nums)
	}
}

func TestCursor_ReadTo_BulkReplaysTypedArray(t *testing.T) {
	ctx := visitor.StaticContext{}
	raw := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	view := token.TypedArrayView{Elem: token.ElemUint32, Data: mem.B(raw), Count: 2}
	dec := &fakeDecoder{values: [][]func(visitor.Visitor) bool{{
		func(v visitor.Visitor) bool { return v.TypedArray(ctx, view) },
	}}}
	c := stajcursor.NewCursor(dec)
	if !c.Next() {
		t.Fatal("Next() = false on first event")
	}
	if !c.ArrayExpected() {
		t.Error("ArrayExpected() = false at start of a typed-array expansion")
	}

	var sink recordingVisitor
	if err := c.ReadTo(&sink); err != nil {
		t.Fatalf("ReadTo: %v", err)
	}
	if sink.typedArrayCalls != 1 {
		t.Errorf("typedArrayCalls = %d, want 1 (bulk replay)", sink.typedArrayCalls)
	}
	if c.Next() {
		t.Error("Next() = true after ReadTo consumed the only top-level value")
	}
	if c.Err() != nil {
		t.Fatalf("Err() = %v", c.Err())
	}
}

type recordingVisitor struct {
	visitor.NopVisitor
	typedArrayCalls int
}

func (r *recordingVisitor) TypedArray(ctx visitor.Context, v token.TypedArrayView) bool {
	r.typedArrayCalls++
	return true
}

func TestFilterView_ScalarsOnly(t *testing.T) {
	ctx := visitor.StaticContext{}
	dec := &fakeDecoder{values: [][]func(visitor.Visitor) bool{{
		begin('a', ctx), i64(ctx, 1), str(ctx, "x"), end('a', ctx),
	}}}
	c := stajcursor.NewCursor(dec)
	f := stajcursor.NewFilterView(c, stajcursor.Scalars())

	var kinds []token.Kind
	for f.Next() {
		kinds = append(kinds, f.Current().Kind)
	}
	if len(kinds) != 2 || kinds[0] != token.Int64 || kinds[1] != token.String {
		t.Errorf("kinds = %v, want [Int64 String]", kinds)
	}
}
