package bencode_test

import (
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/bencode-go/format/bencode"
)

func infoDict() *bencode.Dict {
	return bencode.Decode([]byte("d6:lengthi1024e4:name5:a.txt12:piece lengthi512e6:pieces4:\x00\x01\x02\x037:privatei1e3:raw2:\xc3\x28e")).(*bencode.Dict)
}

func TestGetString(t *testing.T) {
	info := infoDict()

	name, err := bencode.GetString(info, "name")
	require.NoError(t, err)
	require.Equal(t, "a.txt", name)

	_, err = bencode.GetString(info, "missing")
	require.True(t, errors.Is(err, bencode.ErrKeyMissing), err)
	require.True(t, errors.IsKind(errors.K.NotExist, err))

	_, err = bencode.GetString(info, "length")
	require.True(t, errors.Is(err, bencode.ErrWrongType), err)
	require.True(t, bencode.IsStructural(err))

	_, err = bencode.GetString(info, "raw")
	require.True(t, errors.Is(err, bencode.ErrInvalidUTF8), err)
	require.True(t, bencode.IsEncoding(err))
	key, _ := errors.GetField(err, "key")
	require.Equal(t, "raw", key)

	_, err = bencode.GetString(bencode.List{}, "name")
	require.True(t, errors.Is(err, bencode.ErrNotADictionary), err)
}

func TestGetStringInvalidUTF8(t *testing.T) {
	v := bencode.Decode([]byte("2:\xc3\x28"))
	require.Equal(t, bencode.ByteString{0xc3, 0x28}, v)

	d := bencode.NewDict()
	d.Set("s", v)
	_, err := bencode.GetString(d, "s")
	require.True(t, errors.Is(err, bencode.ErrInvalidUTF8), err)
}

func TestGetNumber(t *testing.T) {
	info := infoDict()

	n, err := bencode.GetNumber(info, "piece length")
	require.NoError(t, err)
	require.EqualValues(t, 512, n)

	_, err = bencode.GetNumber(info, "name")
	require.True(t, errors.Is(err, bencode.ErrWrongType), err)
	expected, _ := errors.GetField(err, "expected")
	require.Equal(t, "integer", expected)
	actual, _ := errors.GetField(err, "actual")
	require.Equal(t, "byte string", actual)

	_, err = bencode.GetNumber(info, "nope")
	require.True(t, errors.Is(err, bencode.ErrKeyMissing), err)

	for _, v := range []bencode.Value{nil, bencode.Absent{}, bencode.Integer(1), bencode.ByteString("x"), (*bencode.Dict)(nil)} {
		_, err = bencode.GetNumber(v, "length")
		require.True(t, errors.Is(err, bencode.ErrNotADictionary), err)
	}
}

func TestGetBorrowed(t *testing.T) {
	v := bencode.Decode([]byte("d4:infod6:lengthi1ee5:filesl1:ae6:pieces2:abe"))

	info, err := bencode.GetDict(v, "info")
	require.NoError(t, err)
	require.Equal(t, 1, info.Len())

	files, err := bencode.GetList(v, "files")
	require.NoError(t, err)
	require.Equal(t, bencode.List{bs("a")}, files)

	pieces, err := bencode.GetByteString(v, "pieces")
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), pieces)

	val, err := bencode.Get(v, "info")
	require.NoError(t, err)
	require.Same(t, info, val)

	_, err = bencode.GetDict(v, "files")
	require.True(t, errors.Is(err, bencode.ErrWrongType), err)
	_, err = bencode.GetList(v, "info")
	require.True(t, errors.Is(err, bencode.ErrWrongType), err)

	// nothing was detached
	require.Equal(t, 3, v.(*bencode.Dict).Len())
}

func TestRemove(t *testing.T) {
	info := infoDict()
	before := info.Len()

	v, err := bencode.Remove(info, "length")
	require.NoError(t, err)
	require.Equal(t, bencode.Integer(1024), v)
	require.Equal(t, before-1, info.Len())

	_, err = bencode.Remove(info, "length")
	require.True(t, errors.Is(err, bencode.ErrKeyMissing), err)

	_, err = bencode.Remove(bencode.Integer(3), "length")
	require.True(t, errors.Is(err, bencode.ErrNotADictionary), err)

	// the rest of the dictionary is intact
	name, err := bencode.GetString(info, "name")
	require.NoError(t, err)
	require.Equal(t, "a.txt", name)
}

func TestRemoveByteString(t *testing.T) {
	info := infoDict()

	pieces, err := bencode.RemoveByteString(info, "pieces")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3}, pieces)
	_, ok := info.Get("pieces")
	require.False(t, ok)

	_, err = bencode.RemoveByteString(info, "pieces")
	require.True(t, errors.Is(err, bencode.ErrKeyMissing), err)
	key, _ := errors.GetField(err, "key")
	require.Equal(t, "pieces", key)

	d := bencode.NewDict()
	d.Set("pieces", bencode.Integer(7))
	_, err = bencode.RemoveByteString(d, "pieces")
	require.True(t, errors.Is(err, bencode.ErrWrongType), err)
	key, _ = errors.GetField(err, "key")
	require.Equal(t, "pieces", key)
	// wrong type leaves the entry in place
	require.Equal(t, 1, d.Len())
}
