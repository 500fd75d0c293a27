package coerce

import (
	"fmt"
	"os"
)

// File returns a coercer that takes a filesystem path and opens it with the
// given flags (as for os.OpenFile), e.g. os.O_RDONLY.
//
// The file is opened eagerly during the parse and ownership of the handle
// passes to the caller: the engine never closes it.
func File(flag int) func(string) (*os.File, error) {
	return func(text string) (*os.File, error) {
		f, err := os.OpenFile(text, flag, 0o666)
		if err != nil {
			return nil, fmt.Errorf("could not open file %s: %w", text, err)
		}
		return f, nil
	}
}
