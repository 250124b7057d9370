// 17 Oct 2026

package rescount

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/restype/pkg/restype"
)

// WriteTypes writes one csv line per type seen. If only is not nil,
// types outside that category are skipped.
func (c *Census) WriteTypes(w io.Writer, only *restype.Category) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `"code","pdb code","n","unknown","categories"`)
	for _, t := range c.Types() {
		if only != nil && !t.Has(*only) {
			continue
		}
		cats := t.Categories()
		names := make([]string, len(cats))
		for i, cat := range cats {
			names[i] = cat.String()
		}
		fmt.Fprintf(bw, "%q,%q,%d,%v,%q\n", t.Code(), t.PDBCode(), c.count[t],
			t.IsUnknown(), strings.Join(names, " "))
	}
	return bw.Flush()
}

// WriteCats writes the count for every category that has anything in it.
func (c *Census) WriteCats(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `"category","n"`)
	for i, n := range c.CatTotals() {
		if n == 0 {
			continue
		}
		fmt.Fprintf(bw, "%q,%d\n", restype.Category(i).String(), n)
	}
	return bw.Flush()
}

// WritePairs writes the common category of every pair of types seen.
// An empty third column means nothing in common.
func (c *Census) WritePairs(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `"code1","code2","common"`)
	for _, p := range c.Pairs() {
		g := ""
		if p.G != nil {
			g = p.G.Code()
		}
		fmt.Fprintf(bw, "%q,%q,%q\n", p.T1.Code(), p.T2.Code(), g)
	}
	return bw.Flush()
}
