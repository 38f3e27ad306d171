package extractor

import "fmt"

// ErrInvalidInput indicates the product URL could not be parsed. It is
// returned before any browser or network activity.
type ErrInvalidInput struct {
	Err error
}

func (e ErrInvalidInput) Error() string {
	return fmt.Errorf("invalid input: %w", e.Err).Error()
}

func (e ErrInvalidInput) Unwrap() error {
	return e.Err
}

// ErrFetchFailed indicates the browser launch, navigation, or page capture
// failed. The extraction yields no result; retrying is the caller's call.
type ErrFetchFailed struct {
	Err error
}

func (e ErrFetchFailed) Error() string {
	return fmt.Errorf("fetch failed: %w", e.Err).Error()
}

func (e ErrFetchFailed) Unwrap() error {
	return e.Err
}
