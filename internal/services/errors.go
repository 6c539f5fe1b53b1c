package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned before any network call when the
	// provider API key is not configured.
	ErrMissingCredential = errors.New("missing credential")
	// ErrMalformedOutput means the model reply could not be parsed as JSON.
	ErrMalformedOutput = errors.New("malformed model output")
	// ErrSchemaViolation means the reply parsed but does not match the expected shape.
	ErrSchemaViolation = errors.New("model output violates schema")
	// ErrEmptyDocument means no text could be extracted from the upload.
	ErrEmptyDocument = errors.New("no text content found in document")
)

type ErrorKind string

const (
	KindMissingCredential ErrorKind = "missing_credential"
	KindInvalidCredential ErrorKind = "invalid_credential"
	KindQuotaExhausted    ErrorKind = "quota_exhausted"
	KindRateLimited       ErrorKind = "rate_limited"
	KindUnknown           ErrorKind = "unknown"
)

// Code is the short operator-facing identifier reported by the connectivity probe.
func (k ErrorKind) Code() string {
	switch k {
	case KindMissingCredential:
		return "api_key_not_set"
	case KindInvalidCredential:
		return "invalid_api_key"
	case KindQuotaExhausted:
		return "insufficient_quota"
	case KindRateLimited:
		return "rate_limit_exceeded"
	default:
		return "unknown"
	}
}

// ProviderError wraps a failed model call. Error() keeps the provider's own
// message so handlers can surface it untranslated.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// KindOf reports the taxonomy class of err, KindUnknown when err is not a provider error.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, ErrMissingCredential) {
		return KindMissingCredential
	}
	return KindUnknown
}
