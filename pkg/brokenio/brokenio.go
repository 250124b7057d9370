// 17 Oct 2026
// Package brokenio wraps a reader so that reading fails. It is for
// testing code which reads residue files. One can fail after a fixed
// number of bytes, or at random with a given probability per call.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is the error we make up.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// Reader passes reads through to the wrapped reader until it decides
// to fail.
type Reader struct {
	rdrOrig   io.Reader
	failAfter int     // fail once this many bytes have gone by, < 0 never
	probFail  float32 // chance of failing on each call
	rnd       *rand.Rand
	nCalled   int
	nByte     int
}

// NewReader returns a reader that does not fail until told to.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter makes the reader fail once n bytes have been read.
// Reads never return more than n bytes in total.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetProbFail sets the probability of a failure on each call, from
// 0 to 1. seed makes it repeatable.
func (r *Reader) SetProbFail(prob float32, seed int64) {
	r.probFail = prob
	r.rnd = rand.New(rand.NewSource(seed))
}

// NByte is the number of bytes that have been passed on.
func (r *Reader) NByte() int { return r.nByte }

// NCalled is the number of calls to Read.
func (r *Reader) NCalled() int { return r.nCalled }

// Read wraps the original reader.
func (r *Reader) Read(p []byte) (int, error) {
	r.nCalled++
	if r.rnd != nil && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the wrapped reader if it can be closed.
func (r *Reader) Close() error {
	if c, ok := r.rdrOrig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
