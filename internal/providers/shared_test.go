package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"enhancer/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHeadersInjects(t *testing.T) {
	var seen http.Header
	base := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Clone()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{}")),
			Header:     make(http.Header),
		}, nil
	})}

	client := WithHeaders(base, map[string]string{
		"HTTP-Referer": "https://example.test",
		"X-Title":      "Product Enhancer",
	})
	req, _ := http.NewRequest(http.MethodGet, "http://upstream.test/", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()

	if seen.Get("HTTP-Referer") != "https://example.test" {
		t.Fatalf("HTTP-Referer not injected, headers: %v", seen)
	}
	if seen.Get("X-Title") != "Product Enhancer" {
		t.Fatalf("X-Title not injected, headers: %v", seen)
	}
}

func TestWithHeadersNoHeadersReturnsBase(t *testing.T) {
	base := &http.Client{}
	if got := WithHeaders(base, nil); got != base {
		t.Fatal("expected base client back when no headers given")
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind domain.Kind
		rateHit  bool
	}{
		{
			name:     "unauthorized api error",
			err:      &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "invalid key"},
			wantKind: domain.KindCredential,
		},
		{
			name:     "rate limited",
			err:      &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"},
			wantKind: domain.KindProvider,
			rateHit:  true,
		},
		{
			name:     "server error",
			err:      &openai.APIError{HTTPStatusCode: http.StatusInternalServerError, Message: "boom"},
			wantKind: domain.KindProvider,
		},
		{
			name:     "request error unauthorized",
			err:      &openai.RequestError{HTTPStatusCode: http.StatusUnauthorized, Err: errors.New("401")},
			wantKind: domain.KindCredential,
		},
		{
			name:     "network failure",
			err:      errors.New("connection refused"),
			wantKind: domain.KindProvider,
		},
		{
			name:     "envelope decode failure",
			err:      fmt.Errorf("decode response: %w", &json.SyntaxError{Offset: 1}),
			wantKind: domain.KindParse,
		},
		{
			name:     "truncated envelope",
			err:      fmt.Errorf("decode response: %w", io.ErrUnexpectedEOF),
			wantKind: domain.KindParse,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyOpenAIError("openai", tc.err)
			if domain.KindOf(got) != tc.wantKind {
				t.Fatalf("KindOf = %q, want %q", domain.KindOf(got), tc.wantKind)
			}
			if domain.IsRateLimited(got) != tc.rateHit {
				t.Fatalf("IsRateLimited = %t, want %t", domain.IsRateLimited(got), tc.rateHit)
			}
		})
	}
}

func TestClassifyHTTPResponse(t *testing.T) {
	if kind := domain.KindOf(ClassifyHTTPResponse("stability", http.StatusUnauthorized, nil)); kind != domain.KindCredential {
		t.Fatalf("401 kind = %q, want credential", kind)
	}
	err := ClassifyHTTPResponse("stability", http.StatusBadGateway, []byte("gateway blew up"))
	if domain.KindOf(err) != domain.KindProvider {
		t.Fatalf("502 kind = %q, want provider", domain.KindOf(err))
	}
	if !strings.Contains(err.Error(), "gateway blew up") {
		t.Fatalf("error %q missing upstream body", err)
	}
}
