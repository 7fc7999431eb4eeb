package bencode

import (
	"unicode/utf8"

	"github.com/eluv-io/errors-go"
)

// The accessors below only operate on dictionaries. Any other variant yields an
// error with cause ErrNotADictionary. Keys are given as text for convenience
// and compared as raw bytes.

// Get returns the value stored under key without detaching it.
func Get(v Value, key string) (Value, error) {
	e := errors.Template("bencode.Get", errors.K.Invalid, "key", key)
	_, val, err := lookup(v, key, e)
	return val, err
}

// GetString returns the byte string stored under key as text. The bytes must
// be valid UTF-8.
func GetString(v Value, key string) (string, error) {
	e := errors.Template("bencode.GetString", errors.K.Invalid, "key", key)
	_, val, err := lookup(v, key, e)
	if err != nil {
		return "", err
	}
	bs, ok := val.(ByteString)
	if !ok {
		return "", wrongType(e, val, KindByteString)
	}
	if !utf8.Valid(bs) {
		return "", e(ErrInvalidUTF8, "reason", "value is not valid utf-8 text")
	}
	return string(bs), nil
}

// GetByteString returns the byte string stored under key without detaching
// it. The returned slice aliases the tree.
func GetByteString(v Value, key string) ([]byte, error) {
	e := errors.Template("bencode.GetByteString", errors.K.Invalid, "key", key)
	_, val, err := lookup(v, key, e)
	if err != nil {
		return nil, err
	}
	bs, ok := val.(ByteString)
	if !ok {
		return nil, wrongType(e, val, KindByteString)
	}
	return bs, nil
}

// GetNumber returns the integer stored under key.
func GetNumber(v Value, key string) (int64, error) {
	e := errors.Template("bencode.GetNumber", errors.K.Invalid, "key", key)
	_, val, err := lookup(v, key, e)
	if err != nil {
		return 0, err
	}
	n, ok := val.(Integer)
	if !ok {
		return 0, wrongType(e, val, KindInteger)
	}
	return int64(n), nil
}

// GetList returns the list stored under key without detaching it.
func GetList(v Value, key string) (List, error) {
	e := errors.Template("bencode.GetList", errors.K.Invalid, "key", key)
	_, val, err := lookup(v, key, e)
	if err != nil {
		return nil, err
	}
	l, ok := val.(List)
	if !ok {
		return nil, wrongType(e, val, KindList)
	}
	return l, nil
}

// GetDict returns the dictionary stored under key without detaching it.
func GetDict(v Value, key string) (*Dict, error) {
	e := errors.Template("bencode.GetDict", errors.K.Invalid, "key", key)
	_, val, err := lookup(v, key, e)
	if err != nil {
		return nil, err
	}
	d, ok := val.(*Dict)
	if !ok || d == nil {
		return nil, wrongType(e, val, KindDict)
	}
	return d, nil
}

// Remove detaches the entry stored under key and returns its value, whatever
// the variant.
func Remove(v Value, key string) (Value, error) {
	e := errors.Template("bencode.Remove", errors.K.Invalid, "key", key)
	d, _, err := lookup(v, key, e)
	if err != nil {
		return nil, err
	}
	val, _ := d.Delete(Key(key))
	return val, nil
}

// RemoveByteString detaches the byte string stored under key and returns its
// bytes. If the entry is not a byte string, the dictionary is left unchanged.
func RemoveByteString(v Value, key string) ([]byte, error) {
	e := errors.Template("bencode.RemoveByteString", errors.K.Invalid, "key", key)
	d, val, err := lookup(v, key, e)
	if err != nil {
		return nil, err
	}
	bs, ok := val.(ByteString)
	if !ok {
		return nil, wrongType(e, val, KindByteString)
	}
	d.Delete(Key(key))
	return bs, nil
}

func lookup(v Value, key string, e errors.TemplateFn) (*Dict, Value, error) {
	d, ok := v.(*Dict)
	if !ok || d == nil {
		return nil, nil, e(ErrNotADictionary, "actual", KindOf(v).String())
	}
	val, ok := d.Get(Key(key))
	if !ok {
		return nil, nil, e(errors.K.NotExist, ErrKeyMissing)
	}
	return d, val, nil
}

func wrongType(e errors.TemplateFn, val Value, expected Kind) error {
	return e(ErrWrongType, "expected", expected.String(), "actual", KindOf(val).String())
}
