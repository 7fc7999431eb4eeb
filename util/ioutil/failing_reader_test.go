package ioutil

import (
	"bytes"
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/stretchr/testify/require"
)

func TestFailingReader(t *testing.T) {
	bb := []byte("abcdefghijklmnopqrstuvwxyz0123456789")

	type testCase struct {
		failAt  int64
		readLen int
		wantErr error
	}
	for i, tc := range []*testCase{
		{failAt: 0, readLen: 1},
		{failAt: 10, readLen: 1},
		{failAt: 10, readLen: 5},
		{failAt: 10, readLen: 10},
		{failAt: 10, readLen: 100},
		{failAt: 10, readLen: 5, wantErr: errors.Str("for test")},
	} {
		br := bytes.NewReader(bb)
		fr := NewFailingReader(br, tc.failAt, tc.wantErr)
		var res []byte
		var err error
		for {
			p := make([]byte, tc.readLen)
			n := 0
			n, err = fr.Read(p)
			res = append(res, p[:n]...)
			if err != nil {
				break
			}
		}
		if tc.wantErr != nil {
			require.Equal(t, tc.wantErr, err, "case: %d, err: %v", i, err)
		} else {
			require.True(t, errors.IsKind(errors.K.IO, err), "case: %d, err: %v", i, err)
		}
		require.Equal(t, string(bb[:tc.failAt]), string(res), "case: %d, err: %v", i, err)
		require.Equal(t, tc.failAt, fr.BytesCount(), "case: %d, err: %v", i, err)
		require.Equal(t, len(bb)-int(tc.failAt), br.Len(), "case: %d, err: %v", i, err)
	}
}

func TestFailingReaderReadByte(t *testing.T) {
	fr := NewFailingReader(bytes.NewReader([]byte("abc")), 2)

	c, err := fr.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)

	c, err = fr.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('b'), c)

	_, err = fr.ReadByte()
	require.True(t, errors.IsKind(errors.K.IO, err), err)
}
