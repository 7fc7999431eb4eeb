package ioutil

import (
	"io"

	"github.com/eluv-io/errors-go"
)

var (
	_ io.Reader     = (*FailingReader)(nil)
	_ io.ByteReader = (*FailingReader)(nil)
)

// FailingReader is a test utility that delivers the bytes of the wrapped
// reader up to a given offset and fails afterwards. See NewFailingReader.
type FailingReader struct {
	r          io.Reader
	failAt     int64
	bytesCount int64
	err        error
}

// NewFailingReader wraps the given io.Reader and fails after having read the
// given bytes count. The returned failure can be provided via the optional
// error parameter; it defaults to an error of kind IO.
func NewFailingReader(r io.Reader, failAt int64, err ...error) *FailingReader {
	var e error
	if len(err) > 0 {
		e = err[0]
	}
	return &FailingReader{
		r:      r,
		failAt: failAt,
		err:    e,
	}
}

// BytesCount returns the number of bytes delivered so far.
func (r *FailingReader) BytesCount() int64 {
	return r.bytesCount
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if r.bytesCount >= r.failAt {
		return 0, r.failure()
	}
	if r.bytesCount+int64(len(p)) > r.failAt {
		p = p[:int(r.failAt-r.bytesCount)]
	}
	n, err := r.r.Read(p)
	r.bytesCount += int64(n)
	if err == nil && r.bytesCount >= r.failAt {
		err = r.failure()
	}
	return n, err
}

func (r *FailingReader) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (r *FailingReader) failure() error {
	if r.err != nil {
		return r.err
	}
	return errors.E("read", errors.K.IO, "reason", "failing reader", "fail_at", r.failAt)
}
