package prefs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirectory is matched by *InvalidDirectoryError.
	ErrInvalidDirectory = errors.New("not a directory")
	// ErrUnknownPathMode is returned by AbsolutePath for a mode other than
	// AbsPathOutput or AbsPathImage.
	ErrUnknownPathMode = errors.New("unknown abspath mode")
	// ErrListenerNotFound is returned when removing a subscription that is
	// not registered.
	ErrListenerNotFound = errors.New("listener not found")
	// ErrUnknownKey is returned by Get and Set for a key outside the key table.
	ErrUnknownKey = errors.New("unknown setting")
)

// InvalidDirectoryError reports a directory setting pointed at something
// that is not an existing directory.
type InvalidDirectoryError struct {
	Setting string // Human-readable setting name, e.g. "Default Output Folder"
	Path    string // Rejected path
	Err     error  // Underlying stat error, if any
}

// Error implements the error interface
func (e *InvalidDirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s, %q, is not a directory (caused by: %v)", e.Setting, e.Path, e.Err)
	}
	return fmt.Sprintf("%s, %q, is not a directory", e.Setting, e.Path)
}

// Unwrap returns the underlying error for error chain inspection
func (e *InvalidDirectoryError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidDirectory) hold.
func (e *InvalidDirectoryError) Is(target error) bool {
	return target == ErrInvalidDirectory
}
