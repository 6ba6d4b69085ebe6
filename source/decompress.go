package source

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of a document.
type Compression uint8

const (
	// CompressionNone marks plain documents.
	CompressionNone Compression = iota
	// CompressionZSTD marks zstd frames (".zst").
	CompressionZSTD
	// CompressionLZ4 marks lz4 frames (".lz4").
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionFor derives the compression from the name's extension.
func CompressionFor(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
}

// Decompress decodes data according to the extension of name. Plain
// documents are returned unchanged.
func Decompress(name string, data []byte) ([]byte, error) {
	switch CompressionFor(name) {
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("source: zstd %s: %w", name, err)
		}
		return out, nil
	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("source: lz4 %s: %w", name, err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// decompressDocument replaces doc by its decoded contents. The compressed
// document is closed once decoded.
func decompressDocument(name string, doc Document) (Document, error) {
	if CompressionFor(name) == CompressionNone {
		return doc, nil
	}
	defer doc.Close()

	out, err := Decompress(name, doc.Bytes())
	if err != nil {
		return nil, err
	}
	return NewDocument(out), nil
}
