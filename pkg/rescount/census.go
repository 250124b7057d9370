// 17 Oct 2026
// Package rescount reads residue codes, like the names in a PDB SEQRES
// record, and counts how often each type and each category turns up.

package rescount

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/restype/pkg/restype"
)

const cmmtChar byte = '#' // lines starting with this are ignored

// Census holds the counts. All types come from the one registry.
type Census struct {
	reg    *restype.Registry
	count  map[*restype.Type]int
	nTot   int
	nUnk   int
	sorted []*restype.Type // nil when it has to be rebuilt
}

// NewCensus makes an empty census. reg nil means the default registry.
func NewCensus(reg *restype.Registry) *Census {
	if reg == nil {
		reg = restype.Default()
	}
	return &Census{reg: reg, count: make(map[*restype.Type]int)}
}

// Registry is where the census gets its types from.
func (c *Census) Registry() *restype.Registry { return c.reg }

// Add parses one code and counts it.
func (c *Census) Add(code string) *restype.Type { return c.AddN(code, 1) }

// AddN counts code n times, as if Add had been called n times.
func (c *Census) AddN(code string, n int) *restype.Type {
	t := c.reg.Parse(code)
	if n <= 0 {
		return t
	}
	if _, ok := c.count[t]; !ok {
		c.sorted = nil
	}
	c.count[t] += n
	c.nTot += n
	if t.IsUnknown() {
		c.nUnk += n
	}
	return t
}

// AddLine counts every white space separated code on a line.
func (c *Census) AddLine(line []byte) {
	if len(line) > 0 && line[0] == cmmtChar {
		return
	}
	for _, f := range bytes.Fields(line) {
		c.Add(string(f))
	}
}

// maxCode is the longest single code ReadFrom will take.
const maxCode = 64 * 1024

// ReadFrom counts every code in r. Codes are separated by white space
// and there is no limit on the length of a line, only on a single code.
// A line starting with the comment character is skipped, however long.
// It satisfies io.ReaderFrom, so the number returned is bytes read.
func (c *Census) ReadFrom(r io.Reader) (int64, error) {
	cs := codeSplit{lineStart: true}
	scnr := bufio.NewScanner(r)
	scnr.Buffer(make([]byte, 0, 4096), maxCode)
	scnr.Split(cs.split)
	for scnr.Scan() {
		c.Add(scnr.Text())
	}
	if err := scnr.Err(); err != nil {
		return cs.n, fmt.Errorf("counting residues: %w", err)
	}
	return cs.n, nil
}

// codeSplit breaks input into codes for a bufio.Scanner. Each call
// either moves forward or asks for more data without changing state.
type codeSplit struct {
	n         int64 // bytes consumed
	lineStart bool  // next byte starts a line
	inComment bool
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (cs *codeSplit) split(data []byte, atEOF bool) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	adv, tok := cs.step(data, atEOF)
	cs.n += int64(adv)
	return adv, tok, nil
}

func (cs *codeSplit) step(data []byte, atEOF bool) (int, []byte) {
	if cs.inComment {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			return len(data), nil
		}
		cs.inComment, cs.lineStart = false, true
		return i + 1, nil
	}
	switch {
	case data[0] == '\n':
		cs.lineStart = true
		return 1, nil
	case isSpace(data[0]):
		cs.lineStart = false
		i := 1
		for i < len(data) && data[i] != '\n' && isSpace(data[i]) {
			i++
		}
		return i, nil
	case cs.lineStart && data[0] == cmmtChar:
		cs.inComment, cs.lineStart = true, false
		return 1, nil
	}
	i := 1
	for i < len(data) && !isSpace(data[i]) {
		i++
	}
	if i == len(data) && !atEOF {
		return 0, nil // code may go on in the next chunk
	}
	cs.lineStart = false
	return i, data[:i]
}

// N is how often t was seen.
func (c *Census) N(t *restype.Type) int { return c.count[t] }

// NTotal is the number of codes read.
func (c *Census) NTotal() int { return c.nTot }

// NUnknown is how many of them were not recognised.
func (c *Census) NUnknown() int { return c.nUnk }

// Types returns the distinct types seen, sorted by code.
func (c *Census) Types() []*restype.Type {
	if c.sorted == nil {
		c.sorted = make([]*restype.Type, 0, len(c.count))
		for t := range c.count {
			c.sorted = append(c.sorted, t)
		}
		sort.Sort(restype.ByCode(c.sorted))
	}
	return c.sorted
}

// CatMatrix has a row for each type, in the order of Types(), and
// a column for each category. An element holds the type's count if it
// is in the category and zero otherwise.
func (c *Census) CatMatrix() *matrix.FMatrix2d {
	types := c.Types()
	mat := matrix.NewFMatrix2d(len(types), restype.NCategory)
	for i, t := range types {
		n := float32(c.count[t])
		for _, cat := range t.Categories() {
			mat.Mat[i][cat] = n
		}
	}
	return mat
}

// CatTotals is the number of residues seen in each category. It is
// summed as integers from the counts, not from CatMatrix, whose float32
// elements are only exact up to 2^24.
func (c *Census) CatTotals() []int {
	totals := make([]int, restype.NCategory)
	for t, n := range c.count {
		for _, cat := range t.Categories() {
			totals[cat] += n
		}
	}
	return totals
}

// Pair is the common category of two types seen. G is nil if there is none.
type Pair struct {
	T1, T2, G *restype.Type
}

// Pairs generalises every pair of distinct types seen.
func (c *Census) Pairs() []Pair {
	types := c.Types()
	var ret []Pair
	for i := 0; i < len(types); i++ {
		for j := i + 1; j < len(types); j++ {
			ret = append(ret, Pair{types[i], types[j], c.reg.Generalize(types[i], types[j])})
		}
	}
	return ret
}

// Generalize folds Generalize over every type seen. It gives the one
// category covering the whole lot, or nil.
func (c *Census) Generalize() *restype.Type {
	types := c.Types()
	if len(types) == 0 {
		return nil
	}
	g := types[0]
	for _, t := range types[1:] {
		if g = c.reg.Generalize(g, t); g == nil {
			return nil
		}
	}
	return g
}
