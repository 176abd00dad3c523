package image

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enhancer/internal/domain"
)

func TestStabilityTextToImage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artifacts":[{"base64":"a1"},{"base64":"a2"}]}`))
	}))
	defer srv.Close()

	s := NewStability(Options{BaseURL: srv.URL})
	images, err := s.Generate(context.Background(), Request{
		ModelID: "stable-diffusion-xl-1024-v1-0",
		Prompt:  "A leather wallet.",
		Count:   2,
		APIKey:  "sk-stab",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(images) != 2 || images[0] != "a1" || images[1] != "a2" {
		t.Fatalf("images = %v", images)
	}
	if gotPath != "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["cfg_scale"] != float64(7) || gotBody["steps"] != float64(30) {
		t.Fatalf("tuning params wrong: %v", gotBody)
	}
	if gotBody["samples"] != float64(2) {
		t.Fatalf("samples = %v, want 2", gotBody["samples"])
	}
	if gotBody["width"] != float64(1024) || gotBody["height"] != float64(1024) {
		t.Fatalf("dimensions wrong: %v", gotBody)
	}
	prompts, _ := gotBody["text_prompts"].([]any)
	if len(prompts) != 1 {
		t.Fatalf("text_prompts = %v", gotBody["text_prompts"])
	}
	first, _ := prompts[0].(map[string]any)
	text, _ := first["text"].(string)
	if !strings.Contains(text, "Product Context") {
		t.Fatal("text-to-image prompt missing scene instruction")
	}
}

func TestStabilitySourceImageSwitchesMode(t *testing.T) {
	var gotPath, gotMode, gotStrength, gotSamples, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}
		gotMode = r.FormValue("init_image_mode")
		gotStrength = r.FormValue("image_strength")
		gotSamples = r.FormValue("samples")
		gotPrompt = r.FormValue("text_prompts[0][text]")
		if _, _, err := r.FormFile("init_image"); err != nil {
			t.Errorf("init_image missing: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artifacts":[{"base64":"v1"}]}`))
	}))
	defer srv.Close()

	s := NewStability(Options{BaseURL: srv.URL})
	images, err := s.Generate(context.Background(), Request{
		ModelID:        "stable-diffusion-v1-6",
		Prompt:         "A leather wallet.",
		Count:          1,
		SourceImage:    "aGVsbG8=",
		SourceStrength: 0.35,
		APIKey:         "sk-stab",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("images = %v", images)
	}
	if gotPath != "/v1/generation/stable-diffusion-v1-6/image-to-image" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotMode != "IMAGE_STRENGTH" {
		t.Fatalf("init_image_mode = %q", gotMode)
	}
	if gotStrength != "0.35" {
		t.Fatalf("image_strength = %q", gotStrength)
	}
	if gotSamples != "1" {
		t.Fatalf("samples = %q, want 1 for image-to-image", gotSamples)
	}
	if gotPrompt != "A leather wallet." {
		t.Fatalf("image-to-image prompt = %q, want raw product context", gotPrompt)
	}
}

func TestStabilityRejectedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	s := NewStability(Options{BaseURL: srv.URL})
	_, err := s.Generate(context.Background(), Request{ModelID: "stable-diffusion-xl-1024-v1-0", Prompt: "x", Count: 1, APIKey: "bad"})
	if domain.KindOf(err) != domain.KindCredential {
		t.Fatalf("err = %v, want credential error", err)
	}
}

func TestStabilityEmptyArtifactsIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artifacts":[]}`))
	}))
	defer srv.Close()

	s := NewStability(Options{BaseURL: srv.URL})
	_, err := s.Generate(context.Background(), Request{ModelID: "stable-diffusion-xl-1024-v1-0", Prompt: "x", Count: 1, APIKey: "k"})
	if domain.KindOf(err) != domain.KindProvider {
		t.Fatalf("err = %v, want provider error for empty artifacts", err)
	}
}
