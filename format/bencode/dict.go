package bencode

import (
	"sort"
	"strings"
)

// Key is a dictionary key. It holds raw bytes (a Go string is used only as an
// immutable byte container) and is ordered by byte-wise comparison. No text
// interpretation is ever applied to it.
type Key string

// KeyOf returns the key for the given raw bytes.
func KeyOf(b []byte) Key {
	return Key(b)
}

// Bytes returns a copy of the raw key bytes.
func (k Key) Bytes() []byte {
	return []byte(k)
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to or
// after other.
func (k Key) Compare(other Key) int {
	return strings.Compare(string(k), string(other))
}

func (k Key) String() string {
	return formatBytes([]byte(k))
}

// Dict is a bencode dictionary. Entries are unique by key and iterated in
// ascending key order. The zero value is an empty dictionary ready to use.
type Dict struct {
	keys    []Key // sorted ascending
	entries map[Key]Value
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

func (*Dict) Kind() Kind    { return KindDict }
func (*Dict) bencodeValue() {}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Get returns the value stored under key.
func (d *Dict) Get(key Key) (Value, bool) {
	if d == nil || d.entries == nil {
		return nil, false
	}
	v, ok := d.entries[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (d *Dict) Set(key Key, value Value) {
	if d.entries == nil {
		d.entries = make(map[Key]Value)
	}
	if _, ok := d.entries[key]; !ok {
		idx := d.search(key)
		d.keys = append(d.keys, "")
		copy(d.keys[idx+1:], d.keys[idx:])
		d.keys[idx] = key
	}
	d.entries[key] = value
}

// Delete detaches the entry for key and returns its value. The rest of the
// dictionary is left untouched.
func (d *Dict) Delete(key Key) (Value, bool) {
	if d == nil || d.entries == nil {
		return nil, false
	}
	v, ok := d.entries[key]
	if !ok {
		return nil, false
	}
	delete(d.entries, key)
	idx := d.search(key)
	d.keys = append(d.keys[:idx], d.keys[idx+1:]...)
	return v, true
}

// Keys returns the keys in ascending order.
func (d *Dict) Keys() []Key {
	if d == nil {
		return nil
	}
	res := make([]Key, len(d.keys))
	copy(res, d.keys)
	return res
}

// Range calls fn for each entry in ascending key order until fn returns false.
func (d *Dict) Range(fn func(key Key, value Value) bool) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		if !fn(k, d.entries[k]) {
			return
		}
	}
}

func (d *Dict) String() string {
	sb := strings.Builder{}
	sb.WriteByte('{')
	first := true
	d.Range(func(key Key, value Value) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(key.String())
		sb.WriteString(": ")
		sb.WriteString(render(value))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func (d *Dict) search(key Key) int {
	return sort.Search(len(d.keys), func(i int) bool {
		return d.keys[i] >= key
	})
}

func (d *Dict) equal(o *Dict) bool {
	if d.Len() != o.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	for i, k := range d.keys {
		if o.keys[i] != k || !Equal(d.entries[k], o.entries[k]) {
			return false
		}
	}
	return true
}
