package text

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
	"enhancer/internal/providers"
)

const (
	defaultTemperature = 0.6
	defaultMaxTokens   = 1024
)

// OpenAICompatible talks to any provider exposing the OpenAI chat
// completions API: OpenAI itself plus Groq, xAI, and OpenRouter via a base
// URL override. The client is rebuilt per call because the key may come from
// a per-request override.
type OpenAICompatible struct {
	provider catalog.Provider
	baseURL  string
	client   *http.Client
	log      zerolog.Logger
}

// Options configures an OpenAI-compatible adapter. Zero values keep the
// provider's public endpoint and a default-timeout client.
type Options struct {
	// BaseURL overrides the upstream endpoint, mostly for tests.
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

func newCompatible(p catalog.Provider, defaultBaseURL string, headers map[string]string, opts Options) *OpenAICompatible {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: providers.DefaultTimeout}
	}
	return &OpenAICompatible{
		provider: p,
		baseURL:  baseURL,
		client:   providers.WithHeaders(client, headers),
		log:      opts.Logger,
	}
}

// NewOpenAI builds the adapter for api.openai.com.
func NewOpenAI(opts Options) *OpenAICompatible {
	return newCompatible(catalog.ProviderOpenAI, "", nil, opts)
}

// NewGroq builds the adapter for Groq's OpenAI-compatible endpoint.
func NewGroq(opts Options) *OpenAICompatible {
	return newCompatible(catalog.ProviderGroq, "https://api.groq.com/openai/v1", nil, opts)
}

// NewXAI builds the adapter for xAI's OpenAI-compatible endpoint.
func NewXAI(opts Options) *OpenAICompatible {
	return newCompatible(catalog.ProviderXAI, "https://api.x.ai/v1", nil, opts)
}

// NewOpenRouter builds the adapter for OpenRouter, which wants attribution
// headers on every call.
func NewOpenRouter(opts Options) *OpenAICompatible {
	headers := map[string]string{
		"HTTP-Referer": "https://product-enhancer.local",
		"X-Title":      "Product Description Enhancer",
	}
	return newCompatible(catalog.ProviderOpenRouter, "https://openrouter.ai/api/v1", headers, opts)
}

var _ Enhancer = (*OpenAICompatible)(nil)

// Enhance runs one chat completion and parses the two-field JSON reply.
func (a *OpenAICompatible) Enhance(ctx context.Context, req Request) (*Result, error) {
	client := providers.OpenAIClient(req.APIKey, a.baseURL, a.client)

	start := time.Now()
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.ModelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildCopywriterPrompt(req)},
		},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, providers.ClassifyOpenAIError(string(a.provider), err)
	}
	a.log.Debug().
		Str("provider", string(a.provider)).
		Str("model", req.ModelID).
		Dur("elapsed", time.Since(start)).
		Msg("chat completion finished")

	if len(resp.Choices) == 0 {
		return nil, domain.NewParse(string(a.provider), "", nil, "chat completion returned no choices")
	}
	return ParseEnhancePayload(string(a.provider), resp.Choices[0].Message.Content)
}

const analyzeSystemPrompt = `You are an expert product photographer and e-commerce specialist.
Your task is to analyze product images and provide detailed, marketing-friendly descriptions.
Focus on:
1. Visual characteristics (color, shape, design, materials)
2. Key features visible in the image
3. Potential benefits and use cases
4. Quality indicators
5. Unique selling points

Format your response as a cohesive, well-structured product description that could be used directly in an Amazon listing.
Keep your description factual based on what you can see - don't make up specifications that aren't visible.
Use professional, persuasive language that highlights the product's strengths.
Do not include placeholder text or mention that you're analyzing an image.`

// AnalyzeProductImage sends a base64 product photo through the vision model
// and returns the generated marketing description.
func (a *OpenAICompatible) AnalyzeProductImage(ctx context.Context, modelID, apiKey, imageB64 string) (string, error) {
	if modelID == "" {
		modelID = openai.GPT4o
	}
	client := providers.OpenAIClient(apiKey, a.baseURL, a.client)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     modelID,
		MaxTokens: 1000,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analyzeSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Analyze this product image and provide a detailed, marketing-friendly description.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:image/jpeg;base64,%s", imageB64),
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", providers.ClassifyOpenAIError(string(a.provider), err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewParse(string(a.provider), "", nil, "vision model returned no choices")
	}
	analysis := strings.TrimSpace(resp.Choices[0].Message.Content)
	if analysis == "" {
		return "", domain.NewParse(string(a.provider), "", nil, "vision model returned an empty analysis")
	}
	return analysis, nil
}
