package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
	"enhancer/internal/providers"
)

const stabilityDefaultBaseURL = "https://api.stability.ai"

const (
	stabilityCfgScale   = 7
	stabilitySteps      = 30
	stabilityDimensions = 1024
)

// Stability drives the v1 generation API. A source image switches the call
// to the multipart image-to-image endpoint, which renders a single sample;
// plain text-to-image honors the requested sample count in one call.
type Stability struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewStability builds the Stability AI adapter.
func NewStability(opts Options) *Stability {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = stabilityDefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: providers.DefaultTimeout}
	}
	return &Stability{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     opts.Logger,
	}
}

var _ Generator = (*Stability)(nil)

type stabilityTextRequest struct {
	TextPrompts []stabilityPrompt `json:"text_prompts"`
	CfgScale    int               `json:"cfg_scale"`
	Height      int               `json:"height"`
	Width       int               `json:"width"`
	Samples     int               `json:"samples"`
	Steps       int               `json:"steps"`
}

type stabilityPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

func (s *Stability) Generate(ctx context.Context, req Request) ([]string, error) {
	if req.SourceImage != "" {
		s.log.Debug().Str("engine", req.ModelID).Msg("stability image-to-image")
		return s.imageToImage(ctx, req)
	}
	s.log.Debug().Str("engine", req.ModelID).Int("samples", req.Count).Msg("stability text-to-image")
	return s.textToImage(ctx, req)
}

func (s *Stability) textToImage(ctx context.Context, req Request) ([]string, error) {
	providerName := string(catalog.ProviderStability)

	payload := stabilityTextRequest{
		TextPrompts: []stabilityPrompt{{Text: BuildProductScenePrompt(req.Prompt), Weight: 1}},
		CfgScale:    stabilityCfgScale,
		Height:      stabilityDimensions,
		Width:       stabilityDimensions,
		Samples:     req.Count,
		Steps:       stabilitySteps,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "encode request")
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", s.baseURL, req.ModelID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	return s.send(httpReq)
}

// imageToImage keeps the raw product context as the prompt: the source
// image already fixes the subject, so the scene instruction is unnecessary.
func (s *Stability) imageToImage(ctx context.Context, req Request) ([]string, error) {
	providerName := string(catalog.ProviderStability)

	source, err := base64.StdEncoding.DecodeString(req.SourceImage)
	if err != nil {
		return nil, domain.NewValidation("sourceImage is not valid base64")
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("init_image", "init_image.png")
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build form")
	}
	if _, err := part.Write(source); err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build form")
	}
	_ = form.WriteField("image_strength", fmt.Sprintf("%g", req.SourceStrength))
	_ = form.WriteField("init_image_mode", "IMAGE_STRENGTH")
	_ = form.WriteField("text_prompts[0][text]", req.Prompt)
	_ = form.WriteField("text_prompts[0][weight]", "1")
	_ = form.WriteField("cfg_scale", fmt.Sprintf("%d", stabilityCfgScale))
	_ = form.WriteField("samples", "1")
	_ = form.WriteField("steps", fmt.Sprintf("%d", stabilitySteps))
	if err := form.Close(); err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build form")
	}

	url := fmt.Sprintf("%s/v1/generation/%s/image-to-image", s.baseURL, req.ModelID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build request")
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	return s.send(httpReq)
}

func (s *Stability) send(httpReq *http.Request) ([]string, error) {
	providerName := string(catalog.ProviderStability)

	resp, err := s.client.Do(httpReq)
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

	var decoded stabilityResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domain.NewParse(providerName, string(raw), err, "response is not valid JSON")
	}

	images := make([]string, 0, len(decoded.Artifacts))
	for _, artifact := range decoded.Artifacts {
		if artifact.Base64 != "" {
			images = append(images, artifact.Base64)
		}
	}
	if len(images) == 0 {
		return nil, domain.NewProvider(providerName, 0, nil, "generation returned no artifacts")
	}
	return images, nil
}
