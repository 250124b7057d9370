// 17 Oct 2026
// Package zwrap opens residue files which may or may not be gzipped.
// Closing the returned reader closes the decompressor and then the
// underlying file.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
)

// Reader is what we hand back. zrdr is nil for plain input.
type Reader struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
	brdr *bufio.Reader
}

// Close closes the decompressor, then the backing ReadCloser.
func (r *Reader) Close() error {
	var errs []error
	if r.zrdr != nil {
		errs = append(errs, r.zrdr.Close())
	}
	errs = append(errs, r.fp.Close())
	return errors.Join(errs...)
}

// Read reads from the decompressor if there is one.
func (r *Reader) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.brdr.Read(p)
}

// Compressed says if we are decompressing.
func (r *Reader) Compressed() bool { return r.zrdr != nil }

// gzip streams start with these two bytes
var gzMagic = []byte{0x1f, 0x8b}

// Wrap looks at the first bytes of rc and puts a decompressor in front
// of it if they look like gzip. Nothing is lost by peeking, so rc need
// not be able to seek.
func Wrap(rc io.ReadCloser) (*Reader, error) {
	r := &Reader{fp: rc, brdr: bufio.NewReader(rc)}
	head, err := r.brdr.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) == len(gzMagic) && head[0] == gzMagic[0] && head[1] == gzMagic[1] {
		if r.zrdr, err = gzip.NewReader(r.brdr); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Open opens a file by name and wraps it.
func Open(fname string) (*Reader, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	r, err := Wrap(fp)
	if err != nil {
		fp.Close()
		return nil, errors.New("reading " + fname + ": " + err.Error())
	}
	return r, nil
}

// IsGzip says if a file starts like a gzip stream.
func IsGzip(fname string) (bool, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer fp.Close()
	var head [2]byte
	n, err := io.ReadFull(fp, head[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return n == 2 && head[0] == gzMagic[0] && head[1] == gzMagic[1], nil
}
