package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch marks any failure to retrieve a catalog resource
	ErrFetch = errors.New("catalog fetch failed")
	// ErrDecode marks a resource that was retrieved but is not a valid catalog
	ErrDecode = errors.New("catalog decode failed")
)

// FetchError describes a failed retrieval. StatusCode is zero for
// transport and file errors.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as ErrFetch for errors.Is callers
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// IsFailure reports whether err should be shown as a failed load
func IsFailure(err error) bool {
	return errors.Is(err, ErrFetch) || errors.Is(err, ErrDecode)
}
