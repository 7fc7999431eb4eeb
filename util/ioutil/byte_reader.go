package ioutil

import (
	"io"
)

var _ io.ByteReader = (*ByteReader)(nil)

// ByteReader adapts an io.Reader to io.ByteReader. Each call to ReadByte
// issues exactly one single-byte Read on the wrapped reader, so no data beyond
// the returned byte is ever taken from it.
type ByteReader struct {
	r   io.Reader
	buf [1]byte
}

// NewByteReader returns a ByteReader for r.
func NewByteReader(r io.Reader) *ByteReader {
	return &ByteReader{r: r}
}

// ReadByte reads and returns the next byte. Reads returning no data and no
// error are retried; io.EOF is returned once r is exhausted.
func (b *ByteReader) ReadByte() (byte, error) {
	for {
		n, err := b.r.Read(b.buf[:])
		if n == 1 {
			return b.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
