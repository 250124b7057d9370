// 17 Oct 2026
// Print what the registry knows about some residue codes.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	. "github.com/andrew-torda/restype/pkg/common"
	"github.com/andrew-torda/restype/pkg/restype"
)

type cmdFlag struct {
	gen     bool
	cat     string
	logDest string
}

// describe writes one line for a type.
func describe(w io.Writer, s string, t *restype.Type) {
	cats := t.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	what := strings.Join(names, " ")
	switch {
	case t.IsNull():
		what = "null type"
	case t.IsUnknown():
		what = "unknown"
	}
	fmt.Fprintf(w, "%-8s %-10s %-10s %-10s %s\n", s, t.Code(), t.LongCode(), t.PDBCode(), what)
}

func mymain(args []string, w io.Writer) int {
	var flags cmdFlag
	fs := flag.NewFlagSet(path.Base(os.Args[0]), flag.ContinueOnError)
	fs.BoolVar(&flags.gen, "g", false, "print common category of neighbouring codes")
	fs.StringVar(&flags.cat, "c", "", "say if each code is in this category")
	fs.StringVar(&flags.logDest, "l", "", "log to stdout, stderr or a file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage:", fs.Name(), "[flags] code...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return ExitUsageError
	}
	var cat restype.Category
	if flags.cat != "" {
		var ok bool
		if cat, ok = restype.ParseCategory(flags.cat); !ok {
			fmt.Fprintln(os.Stderr, "unknown category", flags.cat)
			return ExitUsageError
		}
	}
	lg, closeLog, err := LogWhere(flags.logDest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	defer closeLog()

	reg := restype.NewRegistry(lg)
	types := make([]*restype.Type, fs.NArg())
	fmt.Fprintf(w, "%-8s %-10s %-10s %-10s %s\n", "input", "code", "long", "pdb", "categories")
	for i, s := range fs.Args() {
		types[i] = reg.Parse(s)
		describe(w, s, types[i])
		if flags.cat != "" {
			fmt.Fprintf(w, "%-8s in %v: %v\n", "", cat, types[i].Has(cat))
		}
	}
	if flags.gen {
		for i := 1; i < len(types); i++ {
			g := reg.Generalize(types[i-1], types[i])
			s := "nothing in common"
			if g != nil {
				s = g.Code()
			}
			fmt.Fprintln(w, types[i-1], "+", types[i], "->", s)
		}
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain(os.Args[1:], os.Stdout))
}
