package image

import (
	"context"

	"enhancer/internal/catalog"
)

// Gemini has no image generation path through the public API. The adapter
// exists so dispatch can route to it uniformly; every call fails with a
// capability-gap error naming providers that do generate images.
type Gemini struct{}

// NewGemini builds the always-unsupported Gemini image adapter.
func NewGemini() *Gemini {
	return &Gemini{}
}

var _ Generator = (*Gemini)(nil)

func (g *Gemini) Generate(_ context.Context, _ Request) ([]string, error) {
	return nil, Unsupported(catalog.ProviderGemini)
}
