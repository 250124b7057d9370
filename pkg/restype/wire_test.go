package restype_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/restype/pkg/restype"
)

// TestEncodeDecode writes a handful of types and reads them back into
// a second registry.
func TestEncodeDecode(t *testing.T) {
	reg1, reg2 := NewRegistry(nil), NewRegistry(nil)
	codes := []string{"A", "DT", "(R:R)", "ALA", "Phosphate", "something"}
	var buf bytes.Buffer
	for _, s := range codes {
		require.NoError(t, Encode(&buf, reg1.Parse(s)))
	}
	for _, s := range codes {
		got, err := Decode(&buf, reg2)
		require.NoError(t, err)
		require.Same(t, reg2.Parse(s), got)
	}
	_, err := Decode(&buf, reg2)
	require.ErrorIs(t, err, io.EOF)
}

func TestEncodeNull(t *testing.T) {
	reg := NewRegistry(nil)
	var buf bytes.Buffer
	err := Encode(&buf, reg.Null())
	require.ErrorIs(t, err, ErrNullType)
	require.Zero(t, buf.Len(), "nothing should be written")
	require.ErrorIs(t, Encode(&buf, nil), ErrNullType)

	_, err = reg.Null().MarshalText()
	require.ErrorIs(t, err, ErrNullType)
	var nilType *Type
	_, err = nilType.MarshalText()
	require.ErrorIs(t, err, ErrNullType)
	b, err := reg.Parse("ade").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "A", string(b))
}

func TestDecodeBroken(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := Decode(bytes.NewReader([]byte{5, 'A', 'B'}), reg)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Decode(bytes.NewReader([]byte{0}), reg)
	require.ErrorIs(t, err, ErrNullType)
}

func TestEncodeLong(t *testing.T) {
	reg := NewRegistry(nil)
	long := reg.Parse(strings.Repeat("x", 256))
	err := Encode(io.Discard, long)
	require.ErrorIs(t, err, ErrCodeTooLong)
	require.NoError(t, Encode(io.Discard, reg.Parse(strings.Repeat("x", 255))))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWriteFail(t *testing.T) {
	reg := NewRegistry(nil)
	err := Encode(failWriter{}, reg.Parse("G"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
