package credentials

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
)

// ProbeClient asks a remote key-management endpoint whether it holds a
// credential for a provider. Any transport or decode failure degrades to
// "no credential" rather than surfacing as an error: the probe is an
// availability hint, not a gate.
type ProbeClient struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// ProbeOptions configures a ProbeClient.
type ProbeOptions struct {
	// Endpoint is the full URL of the check endpoint. Required.
	Endpoint string
	// HTTPClient is optional; a 5s-timeout client is used when nil.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// NewProbeClient validates options and builds a client.
func NewProbeClient(opts ProbeOptions) (*ProbeClient, error) {
	if opts.Endpoint == "" {
		return nil, errors.New("credentials: probe endpoint is required")
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &ProbeClient{
		endpoint: opts.Endpoint,
		client:   client,
		log:      opts.Logger,
	}, nil
}

type probeRequest struct {
	Provider string `json:"provider"`
}

type probeResponse struct {
	// Pointer so a payload that omits the field, or carries a non-boolean,
	// is distinguishable from an explicit false.
	HasCredential *bool `json:"hasCredential"`
}

// HasCredential reports whether the remote endpoint claims a credential for
// the provider. False on any failure.
func (c *ProbeClient) HasCredential(ctx context.Context, p catalog.Provider) bool {
	body, err := json.Marshal(probeRequest{Provider: string(p)})
	if err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.log.Debug().Err(err).Str("provider", string(p)).Msg("credential probe request build failed")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("provider", string(p)).Msg("credential probe failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Str("provider", string(p)).Msg("credential probe non-200")
		return false
	}

	var out probeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Debug().Err(err).Str("provider", string(p)).Msg("credential probe decode failed")
		return false
	}
	return out.HasCredential != nil && *out.HasCredential
}
