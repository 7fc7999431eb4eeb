package bencode

import (
	"math"

	"github.com/eluv-io/errors-go"
)

// FromNative builds a value tree from plain Go values: strings and byte slices
// become byte strings, all integer types become integers, []interface{} a list
// and map[string]interface{} a dictionary. Values implementing Value are used
// as is.
func FromNative(x interface{}) (Value, error) {
	e := errors.Template("bencode.FromNative", errors.K.Invalid)
	switch t := x.(type) {
	case nil:
		return Absent{}, nil
	case Value:
		return t, nil
	case string:
		return ByteString(t), nil
	case []byte:
		return ByteString(t), nil
	case int:
		return Integer(t), nil
	case int8:
		return Integer(t), nil
	case int16:
		return Integer(t), nil
	case int32:
		return Integer(t), nil
	case int64:
		return Integer(t), nil
	case uint8:
		return Integer(t), nil
	case uint16:
		return Integer(t), nil
	case uint32:
		return Integer(t), nil
	case uint:
		if uint64(t) > math.MaxInt64 {
			return nil, e("reason", "integer out of range", "value", t)
		}
		return Integer(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, e("reason", "integer out of range", "value", t)
		}
		return Integer(t), nil
	case bool:
		if t {
			return Integer(1), nil
		}
		return Integer(0), nil
	case []string:
		list := make(List, len(t))
		for i, s := range t {
			list[i] = ByteString(s)
		}
		return list, nil
	case []interface{}:
		list := make(List, len(t))
		for i, el := range t {
			v, err := FromNative(el)
			if err != nil {
				return nil, e(err, "index", i)
			}
			list[i] = v
		}
		return list, nil
	case map[string]interface{}:
		dict := NewDict()
		for k, el := range t {
			v, err := FromNative(el)
			if err != nil {
				return nil, e(err, "key", k)
			}
			dict.Set(Key(k), v)
		}
		return dict, nil
	}
	return nil, e("reason", "unsupported type", "type", errors.TypeOf(x))
}

// ToNative converts a value tree into plain Go values: int64, []byte,
// []interface{} and map[string]interface{}. Absent converts to nil.
func ToNative(v Value) interface{} {
	switch t := v.(type) {
	case Integer:
		return int64(t)
	case ByteString:
		return []byte(t)
	case List:
		res := make([]interface{}, len(t))
		for i, el := range t {
			res[i] = ToNative(el)
		}
		return res
	case *Dict:
		res := make(map[string]interface{}, t.Len())
		t.Range(func(key Key, value Value) bool {
			res[string(key)] = ToNative(value)
			return true
		})
		return res
	}
	return nil
}
