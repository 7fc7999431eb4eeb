package codecs

import (
	"io"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/bencode-go/format/bencode"
)

// Codec pairs an Encoder and a Decoder for one serialization format.
type Codec interface {
	// Decoder returns a Decoder reading encoded values from r.
	Decoder(r io.Reader) Decoder
	// Encoder returns an Encoder writing encoded values to w.
	Encoder(w io.Writer) Encoder
}

// Encoder writes the encoding of obj to its underlying io.Writer.
type Encoder interface {
	Encode(obj interface{}) error
}

// Decoder reads the next encoded value from its underlying io.Reader into obj.
type Decoder interface {
	Decode(obj interface{}) error
}

type CreateEncoderFn func(w io.Writer) Encoder
type CreateDecoderFn func(r io.Reader) Decoder

// NewCodec creates a Codec from an encoder and a decoder creation function.
func NewCodec(enc CreateEncoderFn, dec CreateDecoderFn) Codec {
	return &funcCodec{enc: enc, dec: dec}
}

type funcCodec struct {
	enc CreateEncoderFn
	dec CreateDecoderFn
}

func (c *funcCodec) Decoder(r io.Reader) Decoder { return c.dec(r) }
func (c *funcCodec) Encoder(w io.Writer) Encoder { return c.enc(w) }

////////////////////////////////////////////////////////////////////////////////

var (
	BencodeCodec = makeBencodeCodec()

	BencodeMultiCodecPath = "/bencode"

	// BencodeMultiCodec is the bencode codec prefixing the stream with a "/bencode" multicodec header.
	BencodeMultiCodec = NewMultiCodec(BencodeCodec, BencodeMultiCodecPath)
)

// NewBencodeCodec returns the plain bencode Codec. Decoding uses the strict stream decoder.
func NewBencodeCodec() Codec {
	return BencodeCodec
}

// BencodeEncode encodes the given value as bencode and writes it to the writer without MultiCodec header.
func BencodeEncode(w io.Writer, v interface{}) error {
	return BencodeCodec.Encoder(w).Encode(v)
}

// BencodeDecode decodes a bencoded value from the provided reader into the given target, which must be a
// *bencode.Value or an *interface{}.
func BencodeDecode(r io.Reader, v interface{}) error {
	return BencodeCodec.Decoder(r).Decode(v)
}

func makeBencodeCodec() Codec {
	return NewCodec(
		func(w io.Writer) Encoder {
			return &bencodeEncoder{enc: bencode.NewEncoder(w)}
		},
		func(r io.Reader) Decoder {
			return &bencodeDecoder{dec: bencode.NewStreamDecoder(r)}
		},
	)
}

type bencodeEncoder struct {
	enc *bencode.Encoder
}

// Encode encodes a bencode.Value or any plain Go value accepted by bencode.FromNative.
func (e *bencodeEncoder) Encode(obj interface{}) error {
	v, err := bencode.FromNative(obj)
	if err != nil {
		return errors.E("bencodeEncoder.Encode", errors.K.Invalid, err)
	}
	return e.enc.Encode(v)
}

type bencodeDecoder struct {
	dec *bencode.StreamDecoder
}

func (d *bencodeDecoder) Decode(obj interface{}) error {
	e := errors.Template("bencodeDecoder.Decode", errors.K.Invalid)
	switch target := obj.(type) {
	case *bencode.Value:
		v, err := d.dec.Decode()
		if err != nil {
			return err
		}
		*target = v
	case *interface{}:
		v, err := d.dec.Decode()
		if err != nil {
			return err
		}
		*target = bencode.ToNative(v)
	default:
		return e("reason", "unsupported target", "type", errors.TypeOf(obj))
	}
	return nil
}
