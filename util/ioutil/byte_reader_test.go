package ioutil_test

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/eluv-io/bencode-go/util/ioutil"
)

func TestByteReader(t *testing.T) {
	for name, r := range map[string]io.Reader{
		"plain":      strings.NewReader("abc"),
		"one byte":   iotest.OneByteReader(strings.NewReader("abc")),
		"data err":   iotest.DataErrReader(strings.NewReader("abc")),
		"half":       iotest.HalfReader(strings.NewReader("abc")),
		"empty read": &emptyReads{r: strings.NewReader("abc")},
	} {
		br := ioutil.NewByteReader(r)
		var res []byte
		for {
			c, err := br.ReadByte()
			if err != nil {
				require.Equal(t, io.EOF, err, name)
				break
			}
			res = append(res, c)
		}
		require.Equal(t, "abc", string(res), name)
	}
}

func TestByteReaderDoesNotReadAhead(t *testing.T) {
	src := strings.NewReader("abcdef")
	br := ioutil.NewByteReader(src)
	c, err := br.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)
	require.Equal(t, 5, src.Len())
}

// emptyReads returns (0, nil) on every other call.
type emptyReads struct {
	r     io.Reader
	calls int
}

func (e *emptyReads) Read(p []byte) (int, error) {
	e.calls++
	if e.calls%2 == 1 {
		return 0, nil
	}
	return e.r.Read(p)
}
