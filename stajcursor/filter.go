package stajcursor

import (
	"github.com/cursorlib/staj/token"
	"github.com/cursorlib/staj/visitor"
)

// Predicate reports whether an event, at the given source position, is one
// a FilterView should surface to its caller.
type Predicate func(ev token.Event, ctx visitor.Context) bool

// FilterView wraps a PullCursor, surfacing only the events Predicate
// accepts. Filters compose by wrapping: to select events matching both p1
// and p2, wrap twice, stajcursor.NewFilterView(stajcursor.NewFilterView(c,
// p1), p2) — Go has no operator overloading to spell p1 && p2 on
// predicates directly, so composing views is the idiomatic substitute the
// source's own predicate combinators would use function composition for.
type FilterView struct {
	src PullCursor
	pr  Predicate
}

var _ PullCursor = (*FilterView)(nil)

// NewFilterView returns a PullCursor over src that only stops on events pr
// accepts. Rejected events are still traversed (so container structure
// stays consistent) but never become Current.
func NewFilterView(src PullCursor, pr Predicate) *FilterView {
	return &FilterView{src: src, pr: pr}
}

func (f *FilterView) Next() bool {
	for f.src.Next() {
		if f.pr(f.src.Current(), f.src.Context()) {
			return true
		}
	}
	return false
}

func (f *FilterView) Current() token.Event      { return f.src.Current() }
func (f *FilterView) Context() visitor.Context  { return f.src.Context() }
func (f *FilterView) Err() error                { return f.src.Err() }

// KindIs returns a Predicate that accepts events of exactly one Kind, the
// most common filter (for example, "only scalar values", "only Name
// events").
func KindIs(k token.Kind) Predicate {
	return func(ev token.Event, _ visitor.Context) bool { return ev.Kind == k }
}

// Scalars returns a Predicate accepting only events whose Kind reports
// IsScalar, filtering out container/structural events.
func Scalars() Predicate {
	return func(ev token.Event, _ visitor.Context) bool { return ev.Kind.IsScalar() }
}
