package internal

import "errors"

var (
	// ErrInvalidInput is returned for a missing or blank prompt
	ErrInvalidInput = errors.New("invalid input")
	// ErrGenerationUnavailable wraps every failure of the text model
	ErrGenerationUnavailable = errors.New("generation unavailable")
	// ErrEmptyResponse is reported when the model answers with no text
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrEntryNotFound is returned by the shelf for an unknown id
	ErrEntryNotFound = errors.New("entry not found")
)
