// 17 Oct 2026
// Writing and reading types. The only thing that goes over the wire is
// the code. On reading, it goes back through a registry.

package restype

import (
	"errors"
	"fmt"
	"io"
)

// ErrNullType is returned if one tries to write the Null type.
var ErrNullType = errors.New("restype: cannot write the null residue type")

// ErrCodeTooLong is returned when a code will not fit in the length byte.
var ErrCodeTooLong = errors.New("restype: residue code too long")

const maxCodeLen = 255

// MarshalText gives the code. Neither the Null type nor a nil one can
// be written.
func (t *Type) MarshalText() ([]byte, error) {
	if t == nil || t.IsNull() {
		return nil, ErrNullType
	}
	return []byte(t.code), nil
}

// Encode writes one type as a length byte followed by its code.
func Encode(w io.Writer, t *Type) error {
	if t == nil || t.IsNull() {
		return ErrNullType
	}
	if len(t.code) > maxCodeLen {
		return fmt.Errorf("%w: %d bytes in %.20q", ErrCodeTooLong, len(t.code), t.code)
	}
	buf := make([]byte, 0, len(t.code)+1)
	buf = append(buf, byte(len(t.code)))
	buf = append(buf, t.code...)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing residue type %s: %w", t.code, err)
	}
	return nil
}

// Decode reads a type written by Encode and looks it up in reg.
// At the end of input it returns io.EOF. A partial record gives
// io.ErrUnexpectedEOF.
func Decode(r io.Reader, reg *Registry) (*Type, error) {
	var lenbuf [1]byte
	if _, err := io.ReadFull(r, lenbuf[:]); err != nil {
		return nil, err
	}
	n := int(lenbuf[0])
	if n == 0 { // Only the null type has no code, and it is never written
		return nil, fmt.Errorf("reading residue type: %w", ErrNullType)
	}
	code := make([]byte, n)
	if _, err := io.ReadFull(r, code); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("reading residue type: %w", err)
	}
	return reg.Parse(string(code)), nil
}
