package domain

import (
	"fmt"
)

// FetchError reports that the dataset could not be retrieved.
// StatusCode is zero when no HTTP response was received.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch dataset %s: unexpected status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetch dataset %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a CSV row (or the header, Line 1) that does not match
// the expected column shape.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
