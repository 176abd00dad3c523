package image

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
	"enhancer/internal/providers"
)

const openRouterDefaultBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter routes image generation through its OpenAI-compatible images
// endpoint. The catalog caps it at a single image per request.
type OpenRouter struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewOpenRouter builds the OpenRouter image adapter.
func NewOpenRouter(opts Options) *OpenRouter {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = openRouterDefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: providers.DefaultTimeout}
	}
	headers := map[string]string{
		"HTTP-Referer": "https://product-enhancer.local",
		"X-Title":      "Product Description Enhancer",
	}
	return &OpenRouter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  providers.WithHeaders(client, headers),
		log:     opts.Logger,
	}
}

var _ Generator = (*OpenRouter)(nil)

func (o *OpenRouter) Generate(ctx context.Context, req Request) ([]string, error) {
	providerName := string(catalog.ProviderOpenRouter)
	if req.SourceImage != "" {
		return nil, domain.NewValidation("sourceImage is not supported by %s", providerName)
	}

	client := providers.OpenAIClient(req.APIKey, o.baseURL, o.client)
	resp, err := client.CreateImage(ctx, openai.ImageRequest{
		Model:          req.ModelID,
		Prompt:         BuildProductScenePrompt(req.Prompt),
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, providers.ClassifyOpenAIError(providerName, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, domain.NewProvider(providerName, 0, nil, "image generation returned no payload")
	}
	o.log.Debug().Str("model", req.ModelID).Msg("openrouter image generated")
	return []string{resp.Data[0].B64JSON}, nil
}
