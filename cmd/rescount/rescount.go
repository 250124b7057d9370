// 17 Oct 2026
// Count residue types and categories in a file of residue codes.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/restype/pkg/common"
	"github.com/andrew-torda/restype/pkg/rescount"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[infile [outfile]]")
	long := `Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags rescount.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Category, "c", "", "only list types in this category, like RPurine")
	flag.StringVar(&flags.LogDest, "l", "", "log to stdout, stderr or a file")
	flag.BoolVar(&flags.Pairs, "p", false, "write the common category of every pair of types")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := rescount.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
