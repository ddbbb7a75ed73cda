package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrompt   = errors.New("invalid prompt")
	ErrNotConfigured   = errors.New("provider credential not configured")
	ErrProviderFailure = errors.New("provider failure")
)

// ProviderError reports a response from an external provider that was not a
// usable result. Body holds the provider's response text verbatim.
type ProviderError struct {
	Provider    string
	StatusCode  int
	ContentType string
	Body        string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s status %d (%s): %s", e.Provider, e.StatusCode, e.ContentType, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderFailure
}

// TransportError wraps a failure to reach a provider or read its response.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
