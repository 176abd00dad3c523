// Package handlers exposes the service over JSON endpoints. Every handler
// hangs off App, which carries the dispatcher, credential resolver, and
// logger; the json/error helpers keep response shapes uniform.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"enhancer/internal/credentials"
	"enhancer/internal/dispatch"
	"enhancer/internal/domain"
	"enhancer/internal/middleware"
	"enhancer/internal/providers/text"
)

// Analyzer is the vision path behind the analyze endpoint. The OpenAI text
// adapter implements it.
type Analyzer interface {
	AnalyzeProductImage(ctx context.Context, modelID, apiKey, imageB64 string) (string, error)
}

var _ Analyzer = (*text.OpenAICompatible)(nil)

// App is the handler container.
type App struct {
	Dispatcher *dispatch.Service
	Resolver   *credentials.Resolver
	Analyzer   Analyzer
	Log        zerolog.Logger
}

// NewApp wires the handler container.
func NewApp(dispatcher *dispatch.Service, resolver *credentials.Resolver, analyzer Analyzer, log zerolog.Logger) *App {
	return &App{
		Dispatcher: dispatcher,
		Resolver:   resolver,
		Analyzer:   analyzer,
		Log:        log,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error renders a failure with the status its kind maps to. The raw
// upstream payload stays in the logs, never in the response.
func (a *App) error(w http.ResponseWriter, r *http.Request, err error) {
	status := domain.HTTPStatus(err)
	evt := a.Log.Error()
	if status < http.StatusInternalServerError {
		evt = a.Log.Warn()
	}
	evt.Err(err).
		Int("status", status).
		Str("kind", string(domain.KindOf(err))).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("request failed")
	a.json(w, status, map[string]string{"error": err.Error()})
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, r, domain.NewValidation("invalid JSON in request body"))
		return false
	}
	return true
}
