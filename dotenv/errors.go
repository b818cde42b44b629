package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrEmptyFilename is returned when a named load is given no file name.
var ErrEmptyFilename = errors.New("empty file name")

// LoadError reports a file that could not be read or parsed.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s file: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsNotExist reports whether err was caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// MissingKeysError lists variables that were required but not defined.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("environment variable %s not defined", e.Keys[0])
	}
	return fmt.Sprintf("environment variables not defined: %s", strings.Join(e.Keys, ", "))
}
