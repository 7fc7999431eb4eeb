package bencode

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindInteger
	KindByteString
	KindList
	KindDict
)

var kindNames = [...]string{
	KindAbsent:     "absent",
	KindInteger:    "integer",
	KindByteString: "byte string",
	KindList:       "list",
	KindDict:       "dictionary",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a decoded bencode value. The concrete types are Absent, Integer,
// ByteString, List and *Dict. No other type implements Value.
type Value interface {
	Kind() Kind
	String() string
	bencodeValue()
}

// Absent signals that nothing could be decoded. It never appears inside a
// well-formed tree and encodes to zero bytes.
type Absent struct{}

// Integer is a signed 64-bit bencode integer.
type Integer int64

// ByteString is an arbitrary sequence of bytes. It is not required to be valid
// UTF-8.
type ByteString []byte

// List is an ordered sequence of values.
type List []Value

func (Absent) Kind() Kind     { return KindAbsent }
func (Integer) Kind() Kind    { return KindInteger }
func (ByteString) Kind() Kind { return KindByteString }
func (List) Kind() Kind       { return KindList }

func (Absent) bencodeValue()     {}
func (Integer) bencodeValue()    {}
func (ByteString) bencodeValue() {}
func (List) bencodeValue()       {}

func (Absent) String() string { return "" }

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (b ByteString) String() string {
	return formatBytes(b)
}

func (l List) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(render(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// KindOf returns the kind of the given value. A nil value is reported as
// KindAbsent.
func KindOf(v Value) Kind {
	if v == nil {
		return KindAbsent
	}
	return v.Kind()
}

// IsAbsent returns true if v is nil or Absent.
func IsAbsent(v Value) bool {
	return KindOf(v) == KindAbsent
}

// Equal reports whether a and b are structurally equal. Byte strings are
// compared byte-wise, dictionaries by their ordered entries. nil and Absent are
// equal.
func Equal(a, b Value) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindAbsent:
		return true
	case KindInteger:
		return a.(Integer) == b.(Integer)
	case KindByteString:
		return bytes.Equal(a.(ByteString), b.(ByteString))
	case KindList:
		la, lb := a.(List), b.(List)
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !Equal(la[i], lb[i]) {
				return false
			}
		}
		return true
	case KindDict:
		return a.(*Dict).equal(b.(*Dict))
	}
	return false
}

func render(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// formatBytes renders raw bytes as s"text" if they are valid UTF-8, or as the
// list of byte values otherwise.
func formatBytes(b []byte) string {
	if utf8.Valid(b) {
		return `s"` + string(b) + `"`
	}
	sb := strings.Builder{}
	sb.WriteString("s[")
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteByte(']')
	return sb.String()
}
