package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a generation failure. Every error leaving a provider
// adapter carries exactly one kind; the dispatch layer and HTTP handlers
// never have to inspect provider-specific payloads.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindCredential  Kind = "credential"
	KindProvider    Kind = "provider"
	KindParse       Kind = "parse"
	KindTimeout     Kind = "timeout"
	KindUnsupported Kind = "unsupported"
)

// maxRawSnippet bounds how much of an offending upstream payload is kept
// for diagnostics.
const maxRawSnippet = 500

// Error is the classified failure returned by provider adapters and the
// dispatch layer.
type Error struct {
	Kind        Kind
	Message     string
	StatusCode  int    // upstream HTTP status when known
	RateLimited bool   // provider signalled 429
	Raw         string // truncated upstream payload, parse failures only
	cause       error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidation reports malformed or out-of-range caller input.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewCredential reports that no usable credential exists for a provider.
func NewCredential(provider string) *Error {
	return &Error{
		Kind:    KindCredential,
		Message: fmt.Sprintf("no usable %s credential: supply an API key or switch to another provider", provider),
	}
}

// NewProvider reports an upstream HTTP failure or explicit error payload.
func NewProvider(provider string, status int, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:        KindProvider,
		Message:     fmt.Sprintf("%s: %s", provider, fmt.Sprintf(format, args...)),
		StatusCode:  status,
		RateLimited: status == http.StatusTooManyRequests,
		cause:       cause,
	}
}

// NewParse reports a 2xx upstream response whose body could not be used.
// The raw payload is retained (truncated) for diagnosis.
func NewParse(provider, raw string, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    KindParse,
		Message: fmt.Sprintf("%s returned malformed data: %s", provider, fmt.Sprintf(format, args...)),
		Raw:     TruncateRaw(raw),
		cause:   cause,
	}
}

// NewTimeout reports an exhausted polling loop. The caller may resubmit.
func NewTimeout(format string, args ...any) *Error {
	return &Error{Kind: KindTimeout, Message: fmt.Sprintf(format, args...)}
}

// NewCanceled classifies an abandoned or deadline-exceeded request. It
// shares the timeout kind and keeps the context error as the cause so
// errors.Is(err, context.Canceled) still holds.
func NewCanceled(cause error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "generation canceled: " + cause.Error(),
		cause:   cause,
	}
}

// NewUnsupported reports a capability gap for a provider/operation pair,
// steering the caller toward alternatives when any exist.
func NewUnsupported(provider, operation string, alternatives ...string) *Error {
	msg := fmt.Sprintf("%s does not support %s", provider, operation)
	if len(alternatives) > 0 {
		msg += ": try " + strings.Join(alternatives, " or ") + " instead"
	}
	return &Error{Kind: KindUnsupported, Message: msg}
}

// KindOf extracts the classification from err, or KindProvider when err is
// not a classified error (adapters should never let that happen).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProvider
}

// IsRateLimited reports whether err is an upstream 429.
func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.RateLimited
}

// HTTPStatus maps a classified error onto the status code the API surfaces.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindCredential:
		return http.StatusUnauthorized
	case KindTimeout:
		return http.StatusRequestTimeout
	case KindUnsupported:
		return http.StatusNotImplemented
	case KindParse:
		return http.StatusInternalServerError
	case KindProvider:
		if e.RateLimited {
			return http.StatusTooManyRequests
		}
		if e.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// TruncateRaw trims an upstream payload for inclusion in logs and errors.
func TruncateRaw(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= maxRawSnippet {
		return raw
	}
	return raw[:maxRawSnippet] + "..."
}
