package bencode

import (
	"io"
	"strconv"

	"github.com/eluv-io/errors-go"
)

// Encode returns the canonical encoding of v. Dictionary entries are written
// in ascending key order. Absent encodes to zero bytes.
func Encode(v Value) []byte {
	return Append(nil, v)
}

// Append appends the canonical encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v Value) []byte {
	switch x := v.(type) {
	case Integer:
		dst = append(dst, 'i')
		dst = strconv.AppendInt(dst, int64(x), 10)
		dst = append(dst, 'e')
	case ByteString:
		dst = appendByteString(dst, x)
	case List:
		dst = append(dst, 'l')
		for _, el := range x {
			dst = Append(dst, el)
		}
		dst = append(dst, 'e')
	case *Dict:
		dst = append(dst, 'd')
		x.Range(func(key Key, value Value) bool {
			dst = appendByteString(dst, []byte(key))
			dst = Append(dst, value)
			return true
		})
		dst = append(dst, 'e')
	}
	return dst
}

func appendByteString(dst []byte, b []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(b)), 10)
	dst = append(dst, ':')
	return append(dst, b...)
}

// Encoder writes canonical encodings to an io.Writer.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the canonical encoding of v.
func (e *Encoder) Encode(v Value) error {
	e.buf = Append(e.buf[:0], v)
	_, err := e.w.Write(e.buf)
	if err != nil {
		return errors.E("bencode.Encoder.Encode", errors.K.IO, err)
	}
	return nil
}
