package image

import (
	"strings"
	"testing"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
)

func TestValidateRequestCountBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		provider catalog.Provider
		count    int
		wantErr  bool
	}{
		{"zero", catalog.ProviderOpenAI, 0, true},
		{"min", catalog.ProviderOpenAI, 1, false},
		{"max", catalog.ProviderOpenAI, 4, false},
		{"over max", catalog.ProviderOpenAI, 5, true},
		{"stability max", catalog.ProviderStability, 10, false},
		{"stability over", catalog.ProviderStability, 11, true},
		{"openrouter max", catalog.ProviderOpenRouter, 1, false},
		{"openrouter over", catalog.ProviderOpenRouter, 2, true},
		{"negative", catalog.ProviderReplicate, -1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.provider, Request{Prompt: "a red mug", Count: tc.count})
			if tc.wantErr {
				if domain.KindOf(err) != domain.KindValidation {
					t.Fatalf("err = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRequestUnsupportedProvider(t *testing.T) {
	for _, p := range []catalog.Provider{catalog.ProviderGemini, catalog.ProviderGroq, catalog.ProviderXAI} {
		err := ValidateRequest(p, Request{Prompt: "a red mug", Count: 1})
		if domain.KindOf(err) != domain.KindUnsupported {
			t.Fatalf("%s: err = %v, want unsupported", p, err)
		}
		if !strings.Contains(err.Error(), "stability") {
			t.Fatalf("%s: error %q does not name an alternative", p, err)
		}
	}
}

func TestValidateRequestPromptRequired(t *testing.T) {
	err := ValidateRequest(catalog.ProviderOpenAI, Request{Count: 1, Prompt: "   "})
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("err = %v, want validation error", err)
	}

	// A source image alone is enough for variation-capable providers.
	if err := ValidateRequest(catalog.ProviderOpenAI, Request{Count: 1, SourceImage: "aGVsbG8=", SourceStrength: 0.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRequestSourceStrengthRange(t *testing.T) {
	for _, strength := range []float64{-0.1, 1.1} {
		err := ValidateRequest(catalog.ProviderStability, Request{Prompt: "x", Count: 1, SourceImage: "aGVsbG8=", SourceStrength: strength})
		if domain.KindOf(err) != domain.KindValidation {
			t.Fatalf("strength %v: err = %v, want validation error", strength, err)
		}
	}
	if err := ValidateRequest(catalog.ProviderStability, Request{Prompt: "x", Count: 1, SourceImage: "aGVsbG8=", SourceStrength: 1}); err != nil {
		t.Fatalf("unexpected error at boundary: %v", err)
	}
}

func TestBuildProductScenePromptKeepsFidelityRule(t *testing.T) {
	prompt := BuildProductScenePrompt("A ceramic mug with a blue glaze.")
	for _, want := range []string{
		"**VERY IMPORTANT: Read all instructions carefully.**",
		"A ceramic mug with a blue glaze.",
		"**Product to Depict (Primary Focus):**",
		"**Key Rule: Do not change the product's described features. Only change the scene, background, and styling around the product.**",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}
