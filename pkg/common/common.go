// 17 Oct 2026
// Bits shared by the commands and the tests.

package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// LogWhere decides where logged output goes. "" throws it away,
// "stdout" and "stderr" mean what they say and anything else is
// a file we append to. The returned close function is always safe
// to call.
func LogWhere(dest string) (*log.Logger, func() error, error) {
	var w io.Writer
	closer := func() error { return nil }
	switch dest {
	case "":
		w = io.Discard
	case "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		fp, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, closer, fmt.Errorf("log file: %w", err)
		}
		w = fp
		closer = fp.Close
	}
	return log.New(w, "", log.Lshortfile), closer, nil
}
