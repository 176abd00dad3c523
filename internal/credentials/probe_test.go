package credentials

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enhancer/internal/catalog"
)

func TestProbeClientHasCredential(t *testing.T) {
	var gotProvider string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Provider string `json:"provider"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode probe body: %v", err)
		}
		gotProvider = body.Provider
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hasCredential":true}`))
	}))
	defer srv.Close()

	c, err := NewProbeClient(ProbeOptions{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewProbeClient: %v", err)
	}
	if !c.HasCredential(context.Background(), catalog.ProviderOpenAI) {
		t.Fatal("expected credential reported available")
	}
	if gotProvider != "openai" {
		t.Fatalf("probe sent provider %q, want %q", gotProvider, "openai")
	}
}

func TestProbeClientDegradesToFalse(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"explicit false", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"hasCredential":false}`))
		}},
		{"missing field", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}},
		{"non boolean", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"hasCredential":"yes"}`))
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>nope</html>`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c, err := NewProbeClient(ProbeOptions{Endpoint: srv.URL})
			if err != nil {
				t.Fatalf("NewProbeClient: %v", err)
			}
			if c.HasCredential(context.Background(), catalog.ProviderGroq) {
				t.Fatal("expected no credential")
			}
		})
	}
}

func TestProbeClientUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := NewProbeClient(ProbeOptions{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewProbeClient: %v", err)
	}
	if c.HasCredential(context.Background(), catalog.ProviderXAI) {
		t.Fatal("expected no credential from closed server")
	}
}

func TestProbeClientIsIdempotent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"hasCredential":true}`))
	}))
	defer srv.Close()

	c, err := NewProbeClient(ProbeOptions{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewProbeClient: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !c.HasCredential(context.Background(), catalog.ProviderStability) {
			t.Fatalf("call %d: expected credential available", i)
		}
	}
	if calls != 3 {
		t.Fatalf("server saw %d calls, want 3", calls)
	}
}

func TestNewProbeClientRequiresEndpoint(t *testing.T) {
	if _, err := NewProbeClient(ProbeOptions{}); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}
