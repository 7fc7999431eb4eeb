// Package infohash computes the identifier of a torrent: the SHA-1 digest of the
// canonical bencoding of its metainfo "info" dictionary.
package infohash

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/bencode-go/format/bencode"
)

// Size is the size of an info hash in bytes.
const Size = sha1.Size

// Hash is the SHA-1 digest of the canonical encoding of a metainfo "info"
// dictionary. It identifies a torrent towards trackers and peers.
type Hash [Size]byte

// Of computes the info hash of the given info dictionary.
func Of(info bencode.Value) Hash {
	return sha1.Sum(bencode.Encode(info))
}

// FromMetainfo computes the info hash of the "info" dictionary of the given
// metainfo document. The document is not modified.
func FromMetainfo(meta bencode.Value) (Hash, error) {
	info, err := bencode.GetDict(meta, "info")
	if err != nil {
		return Hash{}, errors.E("infohash.FromMetainfo", err)
	}
	return Of(info), nil
}

// Parse parses the hex representation of an info hash.
func Parse(s string) (Hash, error) {
	e := errors.Template("infohash.Parse", errors.K.Invalid, "hash", s)
	var h Hash
	if len(s) != 2*Size {
		return h, e("reason", "invalid length")
	}
	_, err := hex.Decode(h[:], []byte(s))
	if err != nil {
		return h, e(err)
	}
	return h, nil
}

// String returns the lowercase hex representation.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// URLEncoded returns the hash in the form used in tracker query strings: every
// byte except the unreserved characters (ASCII letters, digits and "-._~") is
// percent-encoded.
func (h Hash) URLEncoded() string {
	const upperhex = "0123456789ABCDEF"
	res := make([]byte, 0, 3*Size)
	for _, c := range h {
		if isUnreserved(c) {
			res = append(res, c)
			continue
		}
		res = append(res, '%', upperhex[c>>4], upperhex[c&0x0f])
	}
	return string(res)
}

// IsNil returns true if all bytes of the hash are zero.
func (h Hash) IsNil() bool {
	return h == Hash{}
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
