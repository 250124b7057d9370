package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/restype/pkg/brokenio"
)

const text = "ADE GUA CYT URA ADE GUA CYT URA"

func TestNeverFails(t *testing.T) {
	r := brokenio.NewReader(strings.NewReader(text))
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != text || r.NByte() != len(text) {
		t.Errorf("got %q, %d bytes", b, r.NByte())
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
}

func TestFailAfter(t *testing.T) {
	for _, n := range []int{0, 1, 7, len(text) - 1} {
		r := brokenio.NewReader(strings.NewReader(text))
		r.SetFailAfter(n)
		b, err := io.ReadAll(r)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Errorf("n = %d: wanted ErrBroken, got %v", n, err)
		}
		if len(b) != n {
			t.Errorf("n = %d: read %d bytes", n, len(b))
		}
	}
}

func TestProbFail(t *testing.T) {
	r := brokenio.NewReader(strings.NewReader(text))
	r.SetProbFail(1, 1)
	if _, err := r.Read(make([]byte, 4)); !errors.Is(err, brokenio.ErrBroken) {
		t.Error("probability 1 should always fail, got", err)
	}

	r = brokenio.NewReader(strings.NewReader(text))
	r.SetProbFail(0, 1)
	if _, err := io.ReadAll(r); err != nil {
		t.Error("probability 0 should never fail, got", err)
	}
	if r.NCalled() < 2 {
		t.Error("expected at least two calls, got", r.NCalled())
	}
}
