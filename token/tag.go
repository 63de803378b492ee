package token

// Tag is a wire-format-neutral semantic tag attached to a value: a hint
// about what a String or ByteString payload actually represents beyond its
// raw bytes (a big integer, a date, base-N encoded binary, ...). A Tag of
// TagNone means "no semantic hint, take the payload at face value".
type Tag uint8

const (
	TagNone Tag = iota
	TagBigInteger
	TagBigDecimal
	TagDateTime
	TagEpochTime
	TagExt
	TagBase16
	TagBase64
	TagBase64URL
)

var tagNames = [...]string{
	TagNone:       "none",
	TagBigInteger: "big_integer",
	TagBigDecimal: "big_decimal",
	TagDateTime:   "date_time",
	TagEpochTime:  "epoch_time",
	TagExt:        "ext",
	TagBase16:     "base16",
	TagBase64:     "base64",
	TagBase64URL:  "base64url",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	return "tag(?)"
}

// IsBignum reports whether t marks a payload as a big integer's decimal or
// big-endian-magnitude representation (see bignum.Parse and
// bignum.FromSignedBytes, the two constructors that consume it).
func (t Tag) IsBignum() bool { return t == TagBigInteger }
