package svf

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// openInput opens a plain SVF file, or an SVF file stored inside a zip
// archive. An archive name ends in ".zip" and must contain exactly one entry
// whose name ends in ".svf"; both suffix checks are case-insensitive.
func openInput(fname string) (io.ReadCloser, error) {
	if !strings.EqualFold(filepath.Ext(fname), ".zip") {
		return os.Open(fname)
	}
	zr, err := zip.OpenReader(fname)
	if err != nil {
		return nil, err
	}
	var entry *zip.File
	count := 0
	for _, f := range zr.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".svf") {
			entry = f
			count++
		}
	}
	if count != 1 {
		zr.Close()
		return nil, fmt.Errorf("svf: expected single .svf file in archive %s; got %d", fname, count)
	}
	rc, err := entry.Open()
	if err != nil {
		zr.Close()
		return nil, err
	}
	return &zipEntryReader{rc: rc, zr: zr}, nil
}

// zipEntryReader closes both the entry and the archive behind one handle.
type zipEntryReader struct {
	rc io.ReadCloser
	zr *zip.ReadCloser
}

func (z *zipEntryReader) Read(p []byte) (int, error) {
	return z.rc.Read(p)
}

func (z *zipEntryReader) Close() error {
	err := z.rc.Close()
	if cerr := z.zr.Close(); err == nil {
		err = cerr
	}
	return err
}
