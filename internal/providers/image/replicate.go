package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
	"enhancer/internal/providers"
)

const replicateDefaultBaseURL = "https://api.replicate.com"

const (
	replicatePollInterval = time.Second
	replicatePollAttempts = 60
)

// Replicate runs the job-based flow: submit a prediction per requested
// image, poll it to completion on a fixed cadence, then fetch the resulting
// image URL and encode it. The secondary fetch goes through a retrying
// client because the delivery CDN fails independently of the prediction.
type Replicate struct {
	baseURL      string
	client       *http.Client
	fetcher      *http.Client
	pollInterval time.Duration
	pollAttempts int
	log          zerolog.Logger
}

// ReplicateOptions configures the Replicate adapter. Poll settings exist
// for tests; zero values keep the 1s x 60 production cadence.
type ReplicateOptions struct {
	BaseURL      string
	HTTPClient   *http.Client
	Fetcher      *http.Client
	PollInterval time.Duration
	PollAttempts int
	Logger       zerolog.Logger
}

// NewReplicate builds the Replicate adapter.
func NewReplicate(opts ReplicateOptions) *Replicate {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = replicateDefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: providers.DefaultTimeout}
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = 3
		retryClient.RetryWaitMax = 5 * time.Second
		retryClient.Logger = nil
		fetcher = retryClient.StandardClient()
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = replicatePollInterval
	}
	attempts := opts.PollAttempts
	if attempts <= 0 {
		attempts = replicatePollAttempts
	}
	return &Replicate{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       client,
		fetcher:      fetcher,
		pollInterval: interval,
		pollAttempts: attempts,
		log:          opts.Logger,
	}
}

var _ Generator = (*Replicate)(nil)

type replicatePredictionRequest struct {
	Version string              `json:"version"`
	Input   replicateModelInput `json:"input"`
}

type replicateModelInput struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type replicatePrediction struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output"`
	Error  string   `json:"error"`
}

func (r *Replicate) Generate(ctx context.Context, req Request) ([]string, error) {
	// Model ids are pinned as owner/name:version; the API wants the bare
	// version hash.
	version := req.ModelID
	if idx := strings.LastIndex(version, ":"); idx >= 0 {
		version = version[idx+1:]
	}

	ids := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		id, err := r.submit(ctx, version, req)
		if err != nil {
			return nil, err
		}
		r.log.Debug().Str("prediction", id).Str("version", version).Msg("replicate prediction submitted")
		ids = append(ids, id)
	}

	images := make([]string, 0, len(ids))
	for _, id := range ids {
		img, err := r.await(ctx, id, req.APIKey)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func (r *Replicate) submit(ctx context.Context, version string, req Request) (string, error) {
	providerName := string(catalog.ProviderReplicate)

	payload := replicatePredictionRequest{
		Version: version,
		Input: replicateModelInput{
			Prompt:         BuildProductScenePrompt(req.Prompt),
			NegativePrompt: DefaultNegativePrompt,
			Width:          1024,
			Height:         1024,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.NewProvider(providerName, 0, err, "encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/predictions", bytes.NewReader(body))
	if err != nil {
		return "", domain.NewProvider(providerName, 0, err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Token "+req.APIKey)

	prediction, err := r.decodePrediction(httpReq)
	if err != nil {
		return "", err
	}
	if prediction.ID == "" {
		return "", domain.NewParse(providerName, "", nil, "prediction submission returned no id")
	}
	return prediction.ID, nil
}

// await polls one prediction to a terminal state, then fetches and encodes
// its first output image.
func (r *Replicate) await(ctx context.Context, id, apiKey string) (string, error) {
	providerName := string(catalog.ProviderReplicate)

	var final replicatePrediction
	err := Poll(ctx, r.pollInterval, r.pollAttempts, func(ctx context.Context) (bool, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/predictions/"+id, nil)
		if err != nil {
			return false, domain.NewProvider(providerName, 0, err, "build poll request")
		}
		httpReq.Header.Set("Authorization", "Token "+apiKey)

		prediction, err := r.decodePrediction(httpReq)
		if err != nil {
			return false, err
		}
		switch prediction.Status {
		case "succeeded":
			final = *prediction
			return true, nil
		case "failed", "canceled":
			msg := prediction.Error
			if msg == "" {
				msg = "prediction " + prediction.Status
			}
			return false, domain.NewProvider(providerName, 0, nil, "%s", msg)
		default:
			return false, nil
		}
	})
	if err != nil {
		return "", err
	}

	if len(final.Output) == 0 || final.Output[0] == "" {
		return "", domain.NewProvider(providerName, 0, nil, "prediction succeeded without output URLs")
	}
	return r.fetchImage(ctx, final.Output[0])
}

func (r *Replicate) decodePrediction(httpReq *http.Request) (*replicatePrediction, error) {
	providerName := string(catalog.ProviderReplicate)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, domain.NewProvider(providerName, 0, err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewProvider(providerName, resp.StatusCode, err, "read response")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, providers.ClassifyHTTPResponse(providerName, resp.StatusCode, raw)
	}

	var prediction replicatePrediction
	if err := json.Unmarshal(raw, &prediction); err != nil {
		return nil, domain.NewParse(providerName, string(raw), err, "prediction response is not valid JSON")
	}
	return &prediction, nil
}

// fetchImage downloads a delivered image and re-encodes it as base64, the
// uniform payload the rest of the pipeline expects.
func (r *Replicate) fetchImage(ctx context.Context, url string) (string, error) {
	providerName := string(catalog.ProviderReplicate)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", domain.NewProvider(providerName, 0, err, "build image fetch")
	}
	resp, err := r.fetcher.Do(httpReq)
	if err != nil {
		return "", domain.NewProvider(providerName, 0, err, "fetch generated image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewProvider(providerName, resp.StatusCode, nil, "image fetch returned %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewProvider(providerName, resp.StatusCode, err, "read generated image")
	}
	if len(data) == 0 {
		return "", domain.NewProvider(providerName, resp.StatusCode, nil, "image fetch returned an empty body")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
