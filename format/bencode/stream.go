package bencode

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/bencode-go/util/ioutil"
)

// DefaultMaxNumeralLength is the default limit for the number of bytes of a
// byte string length prefix or an integer. It is large enough for any int64 in
// decimal notation, including redundant leading zeros.
const DefaultMaxNumeralLength = 64

// StreamOption configures a StreamDecoder.
type StreamOption func(d *StreamDecoder)

// WithMaxNumeralLength limits the number of bytes accepted for a length prefix
// or an integer before the decoder gives up. Values <= 0 are ignored.
func WithMaxNumeralLength(n int) StreamOption {
	return func(d *StreamDecoder) {
		if n > 0 {
			d.maxNumeral = n
		}
	}
}

// StreamDecoder decodes bencoded values from a byte source that cannot be
// rewound. It reads one byte at a time and never reads past the end of the
// value being decoded, so consecutive values can be decoded from the same
// source.
//
// In contrast to Decode, every problem is reported as an error: a source
// failure (kind IO), a premature end of the source (ErrUnexpectedEndOfStream),
// a malformed numeral, an unexpected byte or a dictionary key that is not a
// byte string (ErrInvalidKey).
//
// A StreamDecoder is not safe for concurrent use.
type StreamDecoder struct {
	src        io.ByteReader
	offset     int64
	peeked     bool
	peek       byte
	maxNumeral int
}

// NewStreamDecoder creates a decoder reading from r. If r implements
// io.ByteReader it is used as is, otherwise bytes are pulled from r one at a
// time.
func NewStreamDecoder(r io.Reader, opts ...StreamOption) *StreamDecoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = ioutil.NewByteReader(r)
	}
	d := &StreamDecoder{
		src:        br,
		maxNumeral: DefaultMaxNumeralLength,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeStream decodes a single value from r.
func DecodeStream(r io.Reader) (Value, error) {
	return NewStreamDecoder(r).Decode()
}

// Offset returns the number of bytes consumed so far.
func (d *StreamDecoder) Offset() int64 {
	return d.offset
}

// Decode decodes the next value. If the source is exhausted before the first
// byte of the value, Decode returns Absent and no error.
func (d *StreamDecoder) Decode() (Value, error) {
	e := errors.Template("bencode.StreamDecoder.Decode")
	_, err := d.lookahead(e)
	if err != nil {
		if errors.Is(err, ErrUnexpectedEndOfStream) {
			return Absent{}, nil
		}
		return nil, err
	}
	return d.decodeValue(e)
}

func (d *StreamDecoder) decodeValue(e errors.TemplateFn) (Value, error) {
	c, err := d.lookahead(e)
	if err != nil {
		return nil, err
	}
	switch {
	case c >= '0' && c <= '9':
		return d.decodeByteString(e)
	case c == 'i':
		return d.decodeInteger(e)
	case c == 'l':
		return d.decodeList(e)
	case c == 'd':
		return d.decodeDict(e)
	}
	return nil, e(errors.K.Invalid, ErrUnexpectedByte,
		"offset", d.offset,
		"byte", strconv.QuoteRune(rune(c)))
}

func (d *StreamDecoder) decodeByteString(e errors.TemplateFn) (Value, error) {
	start := d.offset
	digits, err := d.readUntil(e, ':')
	if err != nil {
		return nil, err
	}
	length, err := d.parseUint(e, digits, start)
	if err != nil {
		return nil, err
	}
	bs := make(ByteString, 0, minInt(length, 64*1024))
	for i := 0; i < length; i++ {
		c, err := d.next(e)
		if err != nil {
			return nil, err
		}
		bs = append(bs, c)
	}
	return bs, nil
}

func (d *StreamDecoder) decodeInteger(e errors.TemplateFn) (Value, error) {
	start := d.offset
	if _, err := d.next(e); err != nil { // 'i'
		return nil, err
	}
	digits, err := d.readUntil(e, 'e')
	if err != nil {
		return nil, err
	}
	s, err := d.text(e, digits, start)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, e(errors.K.Invalid, err, "offset", start, "reason", "invalid integer")
	}
	return Integer(n), nil
}

func (d *StreamDecoder) decodeList(e errors.TemplateFn) (Value, error) {
	if _, err := d.next(e); err != nil { // 'l'
		return nil, err
	}
	list := List{}
	for {
		c, err := d.lookahead(e)
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			_, err = d.next(e)
			return list, err
		}
		v, err := d.decodeValue(e)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
}

func (d *StreamDecoder) decodeDict(e errors.TemplateFn) (Value, error) {
	if _, err := d.next(e); err != nil { // 'd'
		return nil, err
	}
	dict := NewDict()
	for {
		c, err := d.lookahead(e)
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			_, err = d.next(e)
			return dict, err
		}
		start := d.offset
		k, err := d.decodeValue(e)
		if err != nil {
			return nil, err
		}
		key, ok := k.(ByteString)
		if !ok {
			return nil, e(errors.K.Invalid, ErrInvalidKey,
				"offset", start,
				"key", render(k),
				"reason", "dictionary key was `"+render(k)+"`, expected a byte string")
		}
		v, err := d.decodeValue(e)
		if err != nil {
			return nil, err
		}
		dict.Set(Key(key), v)
	}
}

// readUntil consumes bytes up to and including the terminator and returns the
// bytes before it.
func (d *StreamDecoder) readUntil(e errors.TemplateFn, terminator byte) ([]byte, error) {
	start := d.offset
	var res []byte
	for {
		c, err := d.next(e)
		if err != nil {
			return nil, err
		}
		if c == terminator {
			return res, nil
		}
		if len(res) >= d.maxNumeral {
			return nil, e(errors.K.Invalid, ErrNumeralTooLong, "offset", start, "limit", d.maxNumeral)
		}
		res = append(res, c)
	}
}

func (d *StreamDecoder) text(e errors.TemplateFn, b []byte, offset int64) (string, error) {
	if !utf8.Valid(b) {
		return "", e(errors.K.Invalid, ErrInvalidUTF8, "offset", offset, "reason", "numeral is not valid utf-8 text")
	}
	return string(b), nil
}

func (d *StreamDecoder) parseUint(e errors.TemplateFn, b []byte, offset int64) (int, error) {
	s, err := d.text(e, b, offset)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, e(errors.K.Invalid, err, "offset", offset, "reason", "invalid byte string length")
	}
	return int(n), nil
}

// lookahead returns the next byte without consuming it.
func (d *StreamDecoder) lookahead(e errors.TemplateFn) (byte, error) {
	if d.peeked {
		return d.peek, nil
	}
	c, err := d.src.ReadByte()
	if err != nil {
		return 0, ioError(e, err, d.offset)
	}
	d.peek = c
	d.peeked = true
	return c, nil
}

// next consumes and returns the next byte.
func (d *StreamDecoder) next(e errors.TemplateFn) (byte, error) {
	c, err := d.lookahead(e)
	if err != nil {
		return 0, err
	}
	d.peeked = false
	d.offset++
	return c, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
