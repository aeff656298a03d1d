package utils

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic prefixes every gzip stream
var gzipMagic = []byte{0x1F, 0x8B}

// GzipCompress compresses data using gzip at the best compression level
func GzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GzipDecompress decompresses gzip data
func GzipDecompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// MaybeGzipDecompress decompresses data if it is gzip, otherwise returns it as is
func MaybeGzipDecompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	return GzipDecompress(data)
}
