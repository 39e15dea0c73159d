package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is returned before any network call when the input is
	// not an absolute http or https URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrFetch is matched by every *FetchError.
	ErrFetch = errors.New("could not retrieve page")
)

// FetchError describes a failed page retrieval: a network error, a non-2xx
// response, a timeout or a cancelled request.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetch as a match so callers need not know the concrete type.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
