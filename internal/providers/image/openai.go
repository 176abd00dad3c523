package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
	"enhancer/internal/providers"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// DallE serves both OpenAI image paths: text-to-image generations and, when
// a source image is supplied, the DALL-E 2 variations endpoint. DALL-E 3
// caps n at 1, so multi-image requests fan out into concurrent sub-requests
// whose results keep the caller's order.
type DallE struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewDallE builds the OpenAI image adapter.
func NewDallE(opts Options) *DallE {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: providers.DefaultTimeout}
	}
	return &DallE{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     opts.Logger,
	}
}

var _ Generator = (*DallE)(nil)

func (d *DallE) Generate(ctx context.Context, req Request) ([]string, error) {
	if req.SourceImage != "" {
		d.log.Debug().Int("count", req.Count).Msg("dall-e variations")
		return d.variations(ctx, req)
	}
	d.log.Debug().Str("model", req.ModelID).Int("count", req.Count).Msg("dall-e text-to-image")
	return d.textToImage(ctx, req)
}

func (d *DallE) textToImage(ctx context.Context, req Request) ([]string, error) {
	providerName := string(catalog.ProviderOpenAI)
	client := providers.OpenAIClient(req.APIKey, d.baseURL, d.client)
	prompt := BuildProductScenePrompt(req.Prompt)

	results := make([]string, req.Count)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < req.Count; i++ {
		g.Go(func() error {
			resp, err := client.CreateImage(gctx, openai.ImageRequest{
				Model:          req.ModelID,
				Prompt:         prompt,
				N:              1,
				Size:           openai.CreateImageSize1024x1024,
				Quality:        openai.CreateImageQualityStandard,
				Style:          openai.CreateImageStyleNatural,
				ResponseFormat: openai.CreateImageResponseFormatB64JSON,
			})
			if err != nil {
				return providers.ClassifyOpenAIError(providerName, err)
			}
			if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
				return domain.NewProvider(providerName, 0, nil, "image generation returned no payload")
			}
			results[i] = resp.Data[0].B64JSON
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// variations calls the DALL-E 2 variations endpoint directly; it is
// multipart-only, which the SDK exposes only via file handles.
func (d *DallE) variations(ctx context.Context, req Request) ([]string, error) {
	providerName := string(catalog.ProviderOpenAI)

	source, err := base64.StdEncoding.DecodeString(req.SourceImage)
	if err != nil {
		return nil, domain.NewValidation("sourceImage is not valid base64")
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("image", "image.png")
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build variations form")
	}
	if _, err := part.Write(source); err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build variations form")
	}
	_ = form.WriteField("n", strconv.Itoa(req.Count))
	_ = form.WriteField("size", "1024x1024")
	_ = form.WriteField("response_format", "b64_json")
	if err := form.Close(); err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build variations form")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/images/variations", body)
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "build request")
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	resp, err := d.client.Do(httpReq)
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

	var decoded struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domain.NewParse(providerName, string(raw), err, "variations response is not valid JSON")
	}

	images := make([]string, 0, len(decoded.Data))
	for _, item := range decoded.Data {
		if item.B64JSON != "" {
			images = append(images, item.B64JSON)
		}
	}
	if len(images) == 0 {
		return nil, domain.NewProvider(providerName, 0, nil, "variations returned no images")
	}
	return images, nil
}
