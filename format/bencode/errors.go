package bencode

import (
	"io"

	"github.com/eluv-io/errors-go"
)

// Causes attached to the errors returned by accessors and the stream decoder.
// Test for them with errors.Is.
var (
	// structural errors
	ErrNotADictionary = errors.Str("not a dictionary")
	ErrKeyMissing     = errors.Str("key missing")
	ErrWrongType      = errors.Str("wrong value type")

	// encoding errors
	ErrInvalidUTF8 = errors.Str("invalid utf-8")

	// stream errors
	ErrUnexpectedEndOfStream = errors.Str("unexpected end of stream")
	ErrInvalidKey            = errors.Str("dictionary key is not a byte string")
	ErrUnexpectedByte        = errors.Str("unexpected byte")
	ErrNumeralTooLong        = errors.Str("numeral too long")
)

// IsStructural returns true if err reports a dictionary shape violation: the
// value is not a dictionary, a key is missing or it maps to the wrong type.
func IsStructural(err error) bool {
	return errors.Is(err, ErrNotADictionary) ||
		errors.Is(err, ErrKeyMissing) ||
		errors.Is(err, ErrWrongType) ||
		errors.Is(err, ErrInvalidKey)
}

// IsEncoding returns true if err reports bytes that are not valid text where
// text was required.
func IsEncoding(err error) bool {
	return errors.Is(err, ErrInvalidUTF8)
}

// IsIO returns true if err wraps a failure of the underlying byte source.
func IsIO(err error) bool {
	return err != nil && errors.IsKind(errors.K.IO, err)
}

// IsTruncated returns true if the stream ended in the middle of a value.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrUnexpectedEndOfStream)
}

// ioError wraps a failure of the byte source. io.EOF is translated to an
// unexpected end of stream since a complete value was still being read.
func ioError(e errors.TemplateFn, err error, offset int64) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return e(errors.K.Invalid, ErrUnexpectedEndOfStream, "offset", offset)
	}
	return e(errors.K.IO, err, "offset", offset)
}
