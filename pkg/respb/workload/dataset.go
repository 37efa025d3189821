package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// Codec selects which compressor a dataset file was (or should be) written
// with. Captured workload files are compressed on disk — an ambient
// test-infrastructure concern distinct from the wire protocol itself,
// which never compresses (spec.md Non-goals).
type Codec uint8

const (
	CodecZstd Codec = iota
	CodecBrotli
)

// magic bytes prefixed to every dataset file so LoadDataset can pick the
// right decompressor without the caller naming one.
var (
	magicZstd   = []byte{'R', 'B', 'Z', '1'}
	magicBrotli = []byte{'R', 'B', 'B', '1'}
)

// SaveDataset compresses frames with the requested codec and writes the
// result to path, prefixed by a 4-byte magic header identifying the codec.
func SaveDataset(path string, frames [][]byte, codec Codec) error {
	var payload bytes.Buffer
	for _, f := range frames {
		payload.Write(f)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("workload: create dataset file: %w", err)
	}
	defer f.Close()

	switch codec {
	case CodecZstd:
		if _, err := f.Write(magicZstd); err != nil {
			return err
		}
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("workload: zstd writer: %w", err)
		}
		if _, err := enc.Write(payload.Bytes()); err != nil {
			enc.Close()
			return fmt.Errorf("workload: zstd write: %w", err)
		}
		return enc.Close()

	case CodecBrotli:
		if _, err := f.Write(magicBrotli); err != nil {
			return err
		}
		enc := brotli.NewWriter(f)
		if _, err := enc.Write(payload.Bytes()); err != nil {
			enc.Close()
			return fmt.Errorf("workload: brotli write: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("workload: unknown codec %d", codec)
	}
}

// LoadDataset reads path, determines its codec from the 4-byte magic
// header, and returns the decompressed concatenated frame bytes.
func LoadDataset(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("workload: open dataset file: %w", err)
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, fmt.Errorf("workload: read dataset magic: %w", err)
	}

	switch {
	case bytes.Equal(magic, magicZstd):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("workload: zstd reader: %w", err)
		}
		defer dec.Close()
		return io.ReadAll(dec)

	case bytes.Equal(magic, magicBrotli):
		dec := brotli.NewReader(f)
		return io.ReadAll(dec)

	default:
		return nil, fmt.Errorf("workload: unrecognized dataset magic %x", magic)
	}
}
