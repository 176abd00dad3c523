package text

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
	"enhancer/internal/providers"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"

// Gemini calls the generateContent API directly. Gemini is not
// OpenAI-compatible, so the request and response shapes are hand-built.
type Gemini struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewGemini builds the Gemini text adapter.
func NewGemini(opts Options) *Gemini {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: providers.DefaultTimeout}
	}
	return &Gemini{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     opts.Logger,
	}
}

var _ Enhancer = (*Gemini)(nil)

type geminiGenerateRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Enhance runs one generateContent call and parses the two-field JSON reply.
func (g *Gemini) Enhance(ctx context.Context, req Request) (*Result, error) {
	providerName := string(catalog.ProviderGemini)

	payload := geminiGenerateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: BuildCopywriterPrompt(req)}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      defaultTemperature,
			MaxOutputTokens:  defaultMaxTokens,
			ResponseMimeType: "application/json",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "encode request")
	}

	url := g.baseURL + "/v1beta/models/" + req.ModelID + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", req.APIKey)

	g.log.Debug().Str("model", req.ModelID).Msg("gemini generateContent")
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewProvider(providerName, resp.StatusCode, err, "read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, providers.ClassifyHTTPResponse(providerName, resp.StatusCode, raw)
	}

	var decoded geminiGenerateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domain.NewParse(providerName, string(raw), err, "response is not valid JSON")
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, domain.NewParse(providerName, string(raw), nil, "response has no candidates")
	}
	return ParseEnhancePayload(providerName, decoded.Candidates[0].Content.Parts[0].Text)
}
