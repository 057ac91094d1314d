package panbiom

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/zstd"
	"github.com/krolaw/zipstream"
	"github.com/pierrec/lz4/v4"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
	DataTypeZstd
	DataTypeLZ4
)

func (dt DataType) String() string {
	switch dt {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	case DataTypeZstd:
		return "zstd"
	case DataTypeLZ4:
		return "lz4"
	}

	return "invalid"
}

// Byte code signatures from https://stackoverflow.com/a/19127748/199475 plus
// the zstd and lz4 frame magic numbers.
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
	DataTypeZstd:  {0x28, 0xb5, 0x2f, 0xfd},
	DataTypeLZ4:   {0x04, 0x22, 0x4d, 0x18},
}

// DetectDataType reports the compression of a stream whose first bytes are
// head. Heads shorter than a signature simply do not match it.
func DetectDataType(head []byte) DataType {
	for dt, sig := range byteCodeSigs {
		if bytes.HasPrefix(head, sig) {
			return dt
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompressReadCloser peeks at the start of rc and, if it carries a
// known compression signature, returns a reader over the decompressed data.
// Closing the returned reader closes rc.
func MaybeDecompressReadCloser(rc io.ReadCloser) (io.ReadCloser, DataType, error) {
	br := bufio.NewReader(rc)
	head, peekErr := br.Peek(6)
	if peekErr != nil && peekErr != io.EOF && peekErr != bufio.ErrBufferFull {
		return nil, DataTypeInvalid, pfx.Err(peekErr)
	}

	dt := DetectDataType(head)

	var (
		r   io.Reader
		err error
	)
	switch dt {
	case DataTypeGzip:
		r, err = gzip.NewReader(br)
	case DataTypeZip:
		zr := zipstream.NewReader(br)
		if _, err = zr.Next(); err == nil {
			r = zr
		}
	case DataTypeBZip2:
		r = bzip2.NewReader(br)
	case DataTypeXZ:
		r, err = xz.NewReader(br, 0)
	case DataTypeZ:
		r, err = zlib.NewReader(br)
	case DataTypeZstd:
		var dec *zstd.Decoder
		if dec, err = zstd.NewReader(br); err == nil {
			return &layeredReadCloser{Reader: dec, closers: []func() error{nopErr(dec.Close), rc.Close}}, dt, nil
		}
	case DataTypeLZ4:
		r = lz4.NewReader(br)
	default:
		r = br
	}
	if err != nil {
		return nil, DataTypeInvalid, pfx.Err(fmt.Errorf("opening %s stream: %w", dt, err))
	}

	return &layeredReadCloser{Reader: r, closers: []func() error{rc.Close}}, dt, nil
}

// layeredReadCloser reads from the outermost decoder and closes every layer
// beneath it, innermost last.
type layeredReadCloser struct {
	io.Reader
	closers []func() error
}

func (c *layeredReadCloser) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func nopErr(f func()) func() error {
	return func() error {
		f()
		return nil
	}
}
