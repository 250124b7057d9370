// 17 Oct 2026

package rescount

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/restype/pkg/common"
	"github.com/andrew-torda/restype/pkg/restype"
)

// CmdFlag holds what comes from the command line.
type CmdFlag struct {
	Category string // only report types in this category
	LogDest  string // "", "stdout", "stderr" or a file name
	Pairs    bool   // also write the generalisation of every pair
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// Mymain reads infile, or standard input if infile is "", and writes
// the census to outfile, or standard output if outfile is "" or "-".
func Mymain(flags *CmdFlag, infile, outfile string) error {
	var only *restype.Category
	if flags.Category != "" {
		c, ok := restype.ParseCategory(flags.Category)
		if !ok {
			return fmt.Errorf("unknown category %q", flags.Category)
		}
		only = &c
	}
	lg, closeLog, err := common.LogWhere(flags.LogDest)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := restype.NewRegistry(lg)
	census := NewCensus(reg)
	if infile == "" {
		if _, err := census.ReadFrom(os.Stdin); err != nil {
			return err
		}
	} else if err := census.ReadFile(infile, lg); err != nil {
		return err
	}
	lg.Println("read", census.NTotal(), "codes,", census.NUnknown(), "unknown")

	var fp io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		warnExists(outfile)
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer f.Close()
		fp = f
	}
	return census.Write(fp, only, flags.Pairs)
}

// Write puts out the types, then the categories and optionally the
// pairs, with a blank line between tables.
func (c *Census) Write(w io.Writer, only *restype.Category, pairs bool) error {
	if err := c.WriteTypes(w, only); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := c.WriteCats(w); err != nil {
		return err
	}
	if g := c.Generalize(); g != nil {
		fmt.Fprintf(w, "\n\"common\",%q\n", g.Code())
	}
	if !pairs {
		return nil
	}
	fmt.Fprintln(w)
	return c.WritePairs(w)
}
