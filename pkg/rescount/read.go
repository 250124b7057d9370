// 17 Oct 2026

package rescount

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/restype/pkg/zwrap"
)

// errorName sticks a problem causing filename on an error message
func errorName(fname string, e error) error {
	return fmt.Errorf("working on %q: %w", fname, e)
}

// ReadFile counts the codes in a file. A gzipped file is decompressed
// as it is read. A plain file is mapped into memory.
func (c *Census) ReadFile(fname string, lg *log.Logger) error {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	gz, err := zwrap.IsGzip(fname)
	if err != nil {
		return errorName(fname, err)
	}
	if gz {
		lg.Println(fname, "is compressed")
		return c.byGzip(fname)
	}
	lg.Println(fname, "mapping")
	return c.byMmap(fname)
}

func (c *Census) byGzip(fname string) error {
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return errorName(fname, err)
	}
	defer rdr.Close()
	if _, err := c.ReadFrom(rdr); err != nil {
		return errorName(fname, err)
	}
	return nil
}

// byMmap maps the file read-only and reads from the mapping.
// Zero length files cannot be mapped, but there is nothing in them anyway.
func (c *Census) byMmap(fname string) error {
	fp, err := os.Open(fname)
	if err != nil {
		return errorName(fname, err)
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return errorName(fname, err)
	}
	if fi.Size() == 0 {
		return nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return errorName(fname, err)
	}
	defer mm.Unmap()
	if _, err := c.ReadFrom(bytes.NewReader(mm)); err != nil {
		return errorName(fname, err)
	}
	return nil
}
