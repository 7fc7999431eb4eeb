package bencode

import (
	"strconv"

	elog "github.com/eluv-io/log-go"
)

var log = elog.Get("/eluvio/format/bencode")

// Decode decodes the value at the start of buf. It never fails: malformed or
// truncated input yields a partial tree, or Absent if not even the first value
// could be decoded. See DecodeAt for the exact rules.
//
// Decode is meant for complete, trusted input such as a local file read into
// memory. Use StreamDecoder for untrusted input.
func Decode(buf []byte) Value {
	v, _ := DecodeAt(buf, 0)
	return v
}

// DecodeAt decodes the value starting at buf[off] and returns it together with
// the offset right after the last byte that was consumed.
//
// The decoder is lenient:
//   - a byte string length larger than the remaining input is clamped to the
//     remaining input
//   - a list or dictionary ending without 'e' is returned with the elements
//     decoded so far
//   - a list element that cannot be decoded ends the list
//   - a dictionary entry whose key is not a byte string ends the dictionary;
//     that entry and everything after it are dropped
//   - an integer that is not a valid int64 or lacks its 'e' terminator, an
//     unknown leading byte, or off beyond the input yield Absent and the
//     unchanged offset
func DecodeAt(buf []byte, off int) (Value, int) {
	if off < 0 || off >= len(buf) {
		return Absent{}, off
	}
	switch c := buf[off]; {
	case c >= '0' && c <= '9':
		return decodeByteString(buf, off)
	case c == 'i':
		return decodeInteger(buf, off)
	case c == 'l':
		return decodeList(buf, off)
	case c == 'd':
		return decodeDict(buf, off)
	}
	return Absent{}, off
}

func decodeByteString(buf []byte, off int) (Value, int) {
	colon := off
	for colon < len(buf) && buf[colon] >= '0' && buf[colon] <= '9' {
		colon++
	}
	if colon >= len(buf) || buf[colon] != ':' {
		return Absent{}, off
	}
	length, err := strconv.ParseUint(string(buf[off:colon]), 10, 63)
	if err != nil {
		return Absent{}, off
	}
	start := colon + 1
	remaining := uint64(len(buf) - start)
	if length > remaining {
		log.Debug("clamping byte string length", "offset", off, "declared", length, "available", remaining)
		length = remaining
	}
	end := start + int(length)
	bs := make(ByteString, length)
	copy(bs, buf[start:end])
	return bs, end
}

func decodeInteger(buf []byte, off int) (Value, int) {
	end := off + 1
	for end < len(buf) && buf[end] != 'e' {
		end++
	}
	if end >= len(buf) {
		return Absent{}, off
	}
	n, err := strconv.ParseInt(string(buf[off+1:end]), 10, 64)
	if err != nil {
		return Absent{}, off
	}
	return Integer(n), end + 1
}

func decodeList(buf []byte, off int) (Value, int) {
	list := List{}
	pos := off + 1
	for {
		if pos >= len(buf) {
			log.Debug("list truncated", "offset", off, "elements", len(list))
			return list, pos
		}
		if buf[pos] == 'e' {
			return list, pos + 1
		}
		v, next := DecodeAt(buf, pos)
		if IsAbsent(v) {
			log.Debug("list ends at malformed element", "offset", pos, "elements", len(list))
			return list, pos
		}
		list = append(list, v)
		pos = next
	}
}

func decodeDict(buf []byte, off int) (Value, int) {
	dict := NewDict()
	pos := off + 1
	for {
		if pos >= len(buf) {
			log.Debug("dictionary truncated", "offset", off, "entries", dict.Len())
			return dict, pos
		}
		if buf[pos] == 'e' {
			return dict, pos + 1
		}
		k, next := DecodeAt(buf, pos)
		key, ok := k.(ByteString)
		if !ok {
			// the entry and the rest of the dictionary are dropped silently
			log.Debug("dropping dictionary entry with invalid key", "offset", pos, "key", render(k))
			return dict, pos
		}
		v, end := DecodeAt(buf, next)
		if IsAbsent(v) {
			log.Debug("dropping dictionary entry without value", "offset", pos, "key", key.String())
			return dict, pos
		}
		dict.Set(Key(key), v)
		pos = end
	}
}
