// Package dispatch routes normalized generation requests to the provider
// adapter that owns the requested model, after validation and credential
// resolution. Nothing below this layer sees a request with missing fields
// or an absent key.
package dispatch

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
	"enhancer/internal/credentials"
	"enhancer/internal/domain"
	"enhancer/internal/providers/image"
	"enhancer/internal/providers/text"
)

// Service owns the adapter maps and the credential resolver.
type Service struct {
	texts    map[catalog.Provider]text.Enhancer
	images   map[catalog.Provider]image.Generator
	resolver *credentials.Resolver
	log      zerolog.Logger
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	TextEnhancers   map[catalog.Provider]text.Enhancer
	ImageGenerators map[catalog.Provider]image.Generator
	// Resolver supplies credentials for providers. Required.
	Resolver *credentials.Resolver
	Logger   zerolog.Logger
}

// NewService validates options and builds the dispatcher.
func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Resolver == nil {
		return nil, errors.New("dispatch: credential resolver is required")
	}
	return &Service{
		texts:    opts.TextEnhancers,
		images:   opts.ImageGenerators,
		resolver: opts.Resolver,
		log:      opts.Logger,
	}, nil
}

// GenerateEnhancedDescription validates the request, resolves a credential
// for the model's provider, and delegates to the matching text adapter.
func (s *Service) GenerateEnhancedDescription(ctx context.Context, req text.Request) (*text.Result, error) {
	model, err := s.lookupModel(req.ModelID, catalog.ModalityText)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.OriginalText) == "" {
		return nil, domain.NewValidation("originalText is required")
	}
	if strings.TrimSpace(req.SubjectName) == "" {
		return nil, domain.NewValidation("subjectName is required")
	}

	enhancer, ok := s.texts[model.Provider]
	if !ok {
		return nil, domain.NewUnsupported(string(model.Provider), "text generation")
	}

	key, err := s.resolver.Resolve(ctx, model.Provider, req.APIKey)
	if err != nil {
		return nil, err
	}
	req.APIKey = key

	s.log.Info().
		Str("provider", string(model.Provider)).
		Str("model", model.ID).
		Msg("dispatching text generation")
	return enhancer.Enhance(ctx, req)
}

// GenerateProductImages validates the request against the provider's
// capabilities before any credential or network work, then delegates to the
// matching image adapter. An empty result from an adapter is a failure.
func (s *Service) GenerateProductImages(ctx context.Context, req image.Request) ([]string, error) {
	model, err := s.lookupModel(req.ModelID, catalog.ModalityImage)
	if err != nil {
		return nil, err
	}
	if err := image.ValidateRequest(model.Provider, req); err != nil {
		return nil, err
	}

	generator, ok := s.images[model.Provider]
	if !ok {
		return nil, image.Unsupported(model.Provider)
	}

	key, err := s.resolver.Resolve(ctx, model.Provider, req.APIKey)
	if err != nil {
		return nil, err
	}
	req.APIKey = key

	s.log.Info().
		Str("provider", string(model.Provider)).
		Str("model", model.ID).
		Int("count", req.Count).
		Msg("dispatching image generation")
	images, err := generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, domain.NewProvider(string(model.Provider), 0, nil, "generation produced no images")
	}
	return images, nil
}

// lookupModel resolves a model id against the registry. An image request on
// a text-only provider surfaces the capability gap rather than a bare
// lookup failure.
func (s *Service) lookupModel(id string, modality catalog.Modality) (catalog.Model, error) {
	if strings.TrimSpace(id) == "" {
		return catalog.Model{}, domain.NewValidation("modelId is required")
	}
	model, ok := catalog.FindModel(id)
	if !ok {
		return catalog.Model{}, domain.NewValidation("unknown model %q", id)
	}
	if model.Modality != modality {
		if modality == catalog.ModalityImage {
			return catalog.Model{}, image.Unsupported(model.Provider)
		}
		return catalog.Model{}, domain.NewValidation("model %q does not generate text", id)
	}
	return model, nil
}
