package stripper

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDecoding         = errors.New("content is not valid UTF-8")
)

// PathError records a failed operation on one target file. Kind is one of the
// sentinel errors above, or nil when the failure has no specific class.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

func newPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Kind: classify(err), Err: err}
}

func classify(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return ErrFileNotFound
	case errors.Is(err, os.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, ErrDecoding):
		return ErrDecoding
	}
	return nil
}

// KindName returns a short label for the class of err, suitable for metrics.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return "not_found"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrDecoding):
		return "decoding"
	}
	return "other"
}
