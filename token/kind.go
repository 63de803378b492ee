// Package token defines the event vocabulary shared by the push-style
// visitor protocol and the pull-style cursor built on top of it: the set of
// event Kinds, semantic Tags, typed-array element kinds, and the Event
// record itself.
package token

// Kind identifies the shape of an Event.
type Kind uint8

const (
	Invalid Kind = iota
	BeginObject
	EndObject
	BeginArray
	EndArray
	Name
	Null
	Bool
	Int64
	Uint64
	Half
	Double
	String
	ByteString
	TypedArray
	BeginMultiDim
	EndMultiDim
	Flush
)

var kindNames = [...]string{
	Invalid:       "invalid",
	BeginObject:   "begin_object",
	EndObject:     "end_object",
	BeginArray:    "begin_array",
	EndArray:      "end_array",
	Name:          "name",
	Null:          "null",
	Bool:          "bool",
	Int64:         "int64",
	Uint64:        "uint64",
	Half:          "half",
	Double:        "double",
	String:        "string",
	ByteString:    "byte_string",
	TypedArray:    "typed_array",
	BeginMultiDim: "begin_multi_dim",
	EndMultiDim:   "end_multi_dim",
	Flush:         "flush",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "kind(?)"
}

// IsScalar reports whether k carries a single decoded value (as opposed to
// a structural marker like BeginObject or a bulk payload like TypedArray).
func (k Kind) IsScalar() bool {
	switch k {
	case Null, Bool, Int64, Uint64, Half, Double, String, ByteString:
		return true
	default:
		return false
	}
}
