package source

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Open opens a document file for reduction. Files with a .gz extension
// are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(filepath.Ext(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &gzipFile{zr: zr, f: f}, nil
}

type gzipFile struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipFile) Close() error {
	if err := g.zr.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
