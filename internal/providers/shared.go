// Package providers holds helpers shared by the text and image adapters:
// OpenAI-compatible client construction, header injection, and the mapping
// from upstream HTTP failures onto classified errors.
package providers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"enhancer/internal/domain"
)

// DefaultTimeout bounds a single upstream request for the synchronous
// providers. Replicate polling manages its own deadline.
const DefaultTimeout = 60 * time.Second

// OpenAIClient builds a go-openai client bound to the given key. baseURL
// overrides the default endpoint for OpenAI-compatible providers; blank
// keeps api.openai.com.
func OpenAIClient(apiKey, baseURL string, httpClient *http.Client) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(cfg)
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	clone := r.Clone(r.Context())
	for k, v := range t.headers {
		clone.Header.Set(k, v)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// WithHeaders returns a client that sets the given headers on every request.
// OpenRouter wants HTTP-Referer and X-Title for attribution.
func WithHeaders(base *http.Client, headers map[string]string) *http.Client {
	if len(headers) == 0 {
		return base
	}
	c := &http.Client{Timeout: DefaultTimeout}
	var baseTransport http.RoundTripper
	if base != nil {
		c.Timeout = base.Timeout
		baseTransport = base.Transport
	}
	c.Transport = &headerTransport{base: baseTransport, headers: headers}
	return c
}

// ClassifyOpenAIError maps a go-openai call failure onto a classified error.
// 401/403 mean the key was rejected; a 2xx body the SDK could not decode is
// malformed upstream data; everything else is a provider failure carrying
// the upstream status.
func ClassifyOpenAIError(provider string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden {
			return domain.NewCredential(provider)
		}
		return domain.NewProvider(provider, apiErr.HTTPStatusCode, err, "%s", apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusUnauthorized || reqErr.HTTPStatusCode == http.StatusForbidden {
			return domain.NewCredential(provider)
		}
		return domain.NewProvider(provider, reqErr.HTTPStatusCode, err, "request rejected")
	}
	if isDecodeFailure(err) {
		return domain.NewParse(provider, "", err, "response envelope is not valid JSON")
	}
	return domain.NewProvider(provider, 0, err, "request failed")
}

// isDecodeFailure reports whether err is the SDK choking on a successful
// response whose body is not the JSON it expected.
func isDecodeFailure(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF)
}

// ClassifyHTTPResponse maps a non-2xx upstream response onto a classified
// error for the hand-rolled adapters. body is the raw response payload.
func ClassifyHTTPResponse(provider string, status int, body []byte) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return domain.NewCredential(provider)
	}
	snippet := domain.TruncateRaw(string(body))
	return domain.NewProvider(provider, status, nil, "upstream returned %d: %s", status, snippet)
}
