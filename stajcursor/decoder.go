// Package stajcursor bridges the push-style visitor.Visitor protocol into a
// pull-style Cursor: something a caller can advance one event at a time
// with Next, inspecting Current between calls, the way a lexical scanner is
// advanced one token at a time.
package stajcursor

import "github.com/cursorlib/staj/visitor"

// Decoder is the abstraction a Cursor pulls from: anything that can push
// the events of one complete top-level value to v. done reports whether
// the underlying input has no further top-level values once this call
// returns; err reports a decode failure (in which case done is
// meaningless). Once a Decoder has reported done, every subsequent
// PushOne call must return (true, nil) without pushing any events.
// jsontext.Decoder implements this.
type Decoder interface {
	PushOne(v visitor.Visitor) (done bool, err error)
}
