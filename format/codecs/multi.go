package codecs

import (
	"bytes"
	"io"

	"github.com/eluv-io/errors-go"
	elog "github.com/eluv-io/log-go"
	"github.com/multiformats/go-multicodec"
)

var log = elog.Get("/eluvio/format/codecs")

////////////////////////////////////////////////////////////////////////////////

// MultiCodec is the interface for a Codec that produces and consumes self-describing encodings. During encoding, it
// writes a multicodec header as a prefix to the encoded data stream. On decoding, it reads the header and ensures
// that it matches.
type MultiCodec interface {
	Header() []byte
	Path() string
	Encoder(w io.Writer) Encoder
	Decoder(r io.Reader) Decoder
}

// NewMultiCodec wraps the given codec with the multicodec header for path, e.g. "/bencode".
func NewMultiCodec(codec Codec, path string) MultiCodec {
	return &multiCodec{
		codec:  codec,
		header: multicodec.Header([]byte(path)),
		path:   path,
	}
}

type multiCodec struct {
	codec  Codec
	header []byte
	path   string
}

func (m *multiCodec) Header() []byte {
	return m.header
}

func (m *multiCodec) Path() string {
	return m.path
}

func (m *multiCodec) Encoder(w io.Writer) Encoder {
	return &multiEncoder{
		writer:  w,
		encoder: m.codec.Encoder(w),
		header:  m.header,
	}
}

func (m *multiCodec) Decoder(r io.Reader) Decoder {
	return &multiDecoder{
		reader:  r,
		decoder: m.codec.Decoder(r),
		header:  m.header,
	}
}

////////////////////////////////////////////////////////////////////////////////

type multiEncoder struct {
	writer        io.Writer
	encoder       Encoder
	header        []byte
	headerWritten bool
}

func (e *multiEncoder) writeHeader() error {
	if !e.headerWritten {
		_, err := e.writer.Write(e.header)
		if err != nil {
			return errors.E("multiEncoder.writeHeader", errors.K.IO, err)
		}
		e.headerWritten = true
	}
	return nil
}

func (e *multiEncoder) Encode(obj interface{}) error {
	err := e.writeHeader()
	if err == nil {
		err = e.encoder.Encode(obj)
	}
	return err
}

////////////////////////////////////////////////////////////////////////////////

type multiDecoder struct {
	reader     io.Reader
	decoder    Decoder
	header     []byte
	headerRead bool
}

func (d *multiDecoder) readHeader() error {
	if !d.headerRead {
		hdr, err := multicodec.ReadHeader(d.reader)
		if err != nil {
			return errors.E("multiDecoder.readHeader", errors.K.Invalid, err,
				"reason", "invalid header")
		}
		if !bytes.Equal(hdr, d.header) {
			log.Debug("multicodec header mismatch",
				"expected", string(multicodec.HeaderPath(d.header)),
				"actual", string(multicodec.HeaderPath(hdr)))
			return errors.E("multiDecoder.readHeader", errors.K.Invalid,
				"reason", "invalid header",
				"expected", string(multicodec.HeaderPath(d.header)),
				"actual", string(multicodec.HeaderPath(hdr)))
		}
		d.headerRead = true
	}
	return nil
}

func (d *multiDecoder) Decode(obj interface{}) error {
	err := d.readHeader()
	if err == nil {
		err = d.decoder.Decode(obj)
	}
	return err
}
