// Package image adapts the image providers behind a single Generator
// interface. Requests are validated against the provider's advertised
// capabilities before any network call happens.
package image

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
)

// Request carries one image-generation job. SourceImage switches providers
// that support it into their image-to-image mode; SourceStrength is only
// read when SourceImage is set.
type Request struct {
	ModelID        string
	Prompt         string
	Count          int
	SourceImage    string
	SourceStrength float64
	APIKey         string
}

// Generator produces base64-encoded images from one upstream provider. The
// result preserves sub-request order and is never empty on success.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]string, error)
}

// Options configures an image adapter. Zero values keep the provider's
// public endpoint and a default-timeout client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Unsupported builds the capability-gap error for a provider that cannot
// generate images, steering the caller toward providers that can.
func Unsupported(p catalog.Provider) error {
	alternatives := make([]string, 0, 4)
	for _, alt := range catalog.RecommendedImageProviders() {
		alternatives = append(alternatives, string(alt))
	}
	return domain.NewUnsupported(string(p), "image generation", alternatives...)
}

// ValidateRequest checks a request against the provider's capabilities.
// It performs no I/O, so a rejected request costs zero network calls.
func ValidateRequest(p catalog.Provider, req Request) error {
	caps := catalog.ImageCapabilitiesFor(p)
	if !caps.SupportsGeneration {
		return Unsupported(p)
	}
	if req.Count < 1 || req.Count > caps.MaxImages {
		return domain.NewValidation("count must be between 1 and %d for %s", caps.MaxImages, p)
	}
	if strings.TrimSpace(req.Prompt) == "" && req.SourceImage == "" {
		return domain.NewValidation("prompt or sourceImage is required")
	}
	if req.SourceImage != "" && (req.SourceStrength < 0 || req.SourceStrength > 1) {
		return domain.NewValidation("sourceStrength must be between 0 and 1")
	}
	return nil
}
