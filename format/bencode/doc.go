/*
Package bencode implements the bencoding format used by peer-to-peer metainfo
files and tracker responses.

A decoded document is a tree of Value. There are exactly five variants:

	Absent      nothing was decoded (best-effort failure signal only)
	Integer     signed 64-bit integer       i-42e
	ByteString  arbitrary bytes             4:spam
	List        ordered values              l4:spami42ee
	*Dict       byte string keys -> values  d3:cow3:mooe

Dictionary keys are raw bytes and are always kept in ascending byte order, so
that Encode(Decode(b)) reproduces b byte for byte whenever the dictionaries in
b were already sorted. The canonical encoding of a metainfo "info" dictionary
is hashed into the torrent identifier, see package infohash.

Two decoders are provided on purpose:

  - Decode / DecodeAt work on a complete in-memory buffer and never fail:
    truncated or malformed input results in a partial tree or Absent. Use it
    for input that is already trusted to be complete.
  - StreamDecoder reads one byte at a time from an io.Reader and reports every
    problem as an error. Use it for untrusted input, e.g. network responses.

Typed fields are extracted with the accessor functions GetString, GetNumber,
Remove, RemoveByteString and friends, which only operate on dictionaries.
*/
package bencode
