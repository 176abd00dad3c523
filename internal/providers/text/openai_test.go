package text

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"enhancer/internal/domain"
)

func chatCompletionReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	b, _ := json.Marshal(reply)
	return string(b)
}

func TestOpenAICompatibleEnhance(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionReply("```json\n{\"enhanced_description\":\"Punchier copy.\",\"generation_context\":\"Led with benefits.\"}\n```")))
	}))
	defer srv.Close()

	a := NewGroq(Options{BaseURL: srv.URL})
	res, err := a.Enhance(context.Background(), Request{
		ModelID:      "llama-3.1-70b-versatile",
		OriginalText: "Plain kettle description.",
		SubjectName:  "Rapid Kettle",
		APIKey:       "gsk-test",
	})
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if res.EnhancedText != "Punchier copy." || res.Rationale != "Led with benefits." {
		t.Fatalf("unexpected result %+v", res)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer gsk-test" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "llama-3.1-70b-versatile" {
		t.Fatalf("model = %v", gotBody["model"])
	}
	if gotBody["temperature"] != 0.6 {
		t.Fatalf("temperature = %v, want 0.6", gotBody["temperature"])
	}
	if gotBody["max_tokens"] != float64(1024) {
		t.Fatalf("max_tokens = %v, want 1024", gotBody["max_tokens"])
	}
	format, _ := gotBody["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("response_format = %v", gotBody["response_format"])
	}
}

func TestOpenAICompatibleRejectedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	a := NewOpenAI(Options{BaseURL: srv.URL})
	_, err := a.Enhance(context.Background(), Request{ModelID: "gpt-4o", OriginalText: "x", SubjectName: "y", APIKey: "sk-bad"})
	if domain.KindOf(err) != domain.KindCredential {
		t.Fatalf("kind = %q, want credential; err = %v", domain.KindOf(err), err)
	}
}

func TestOpenAICompatibleRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	a := NewXAI(Options{BaseURL: srv.URL})
	_, err := a.Enhance(context.Background(), Request{ModelID: "grok-beta", OriginalText: "x", SubjectName: "y", APIKey: "xai-test"})
	if !domain.IsRateLimited(err) {
		t.Fatalf("expected rate-limited error, got %v", err)
	}
}

func TestOpenAICompatibleUnparseableReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionReply("not json")))
	}))
	defer srv.Close()

	a := NewOpenAI(Options{BaseURL: srv.URL})
	_, err := a.Enhance(context.Background(), Request{ModelID: "gpt-4o", OriginalText: "x", SubjectName: "y", APIKey: "sk-test"})
	var dErr *domain.Error
	if !errors.As(err, &dErr) || dErr.Kind != domain.KindParse {
		t.Fatalf("error = %v, want parse kind", err)
	}
	if dErr.Raw == "" {
		t.Fatal("parse error lost the raw payload")
	}
}

func TestOpenAICompatibleNonJSONEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := NewOpenAI(Options{BaseURL: srv.URL})
	_, err := a.Enhance(context.Background(), Request{ModelID: "gpt-4o", OriginalText: "x", SubjectName: "y", APIKey: "sk-test"})
	if domain.KindOf(err) != domain.KindParse {
		t.Fatalf("kind = %q, want parse; err = %v", domain.KindOf(err), err)
	}
}

func TestOpenRouterSendsAttributionHeaders(t *testing.T) {
	var gotReferer, gotTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionReply(`{"enhanced_description":"Copy.","generation_context":"Context."}`)))
	}))
	defer srv.Close()

	a := NewOpenRouter(Options{BaseURL: srv.URL})
	if _, err := a.Enhance(context.Background(), Request{ModelID: "anthropic/claude-3-opus", OriginalText: "x", SubjectName: "y", APIKey: "sk-or-test"}); err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if gotReferer == "" || gotTitle == "" {
		t.Fatalf("attribution headers missing: referer=%q title=%q", gotReferer, gotTitle)
	}
}

func TestAnalyzeProductImage(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionReply("  A sleek aluminum bottle with a matte finish.  ")))
	}))
	defer srv.Close()

	a := NewOpenAI(Options{BaseURL: srv.URL})
	analysis, err := a.AnalyzeProductImage(context.Background(), "", "sk-test", "aGVsbG8=")
	if err != nil {
		t.Fatalf("AnalyzeProductImage: %v", err)
	}
	if analysis != "A sleek aluminum bottle with a matte finish." {
		t.Fatalf("analysis = %q, want trimmed text", analysis)
	}
	if gotBody["model"] != "gpt-4o" {
		t.Fatalf("model = %v, want default gpt-4o", gotBody["model"])
	}
	messages, _ := gotBody["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(messages))
	}
}
