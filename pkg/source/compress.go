package source

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/DataDog/zstd"
)

// Open opens a file for reading, transparently decompressing gzip and zstd
// archives based on the file extension. Rotated logs are commonly kept as
// .gz or .zst and should parse the same as their plain-text originals.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressReader{reader: gz, file: f}, nil
	case ".zst":
		return &decompressReader{reader: zstd.NewReader(f), file: f}, nil
	default:
		return f, nil
	}
}

// decompressReader pairs a decompressor with its underlying file so both are
// released on Close.
type decompressReader struct {
	reader io.ReadCloser
	file   *os.File
}

func (r *decompressReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *decompressReader) Close() error {
	err := r.reader.Close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}
