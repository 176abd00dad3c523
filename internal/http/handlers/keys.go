package handlers

import (
	"net/http"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
)

type checkKeyRequest struct {
	Provider string `json:"provider"`
}

// CheckAPIKey reports whether a credential is configured for a provider.
// Only the boolean leaves the server; the key itself never does.
func (a *App) CheckAPIKey(w http.ResponseWriter, r *http.Request) {
	var req checkKeyRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Provider == "" {
		a.error(w, r, domain.NewValidation("provider is required"))
		return
	}
	provider, ok := catalog.ParseProvider(req.Provider)
	if !ok {
		a.error(w, r, domain.NewValidation("unknown provider %q", req.Provider))
		return
	}

	a.json(w, http.StatusOK, map[string]bool{
		"hasCredential": a.Resolver.CheckAvailability(r.Context(), provider),
	})
}
