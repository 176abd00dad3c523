package handlers

import (
	"net/http"

	"enhancer/internal/catalog"
	"enhancer/internal/credentials"
	"enhancer/internal/selector"
)

type modelPayload struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	Modality     string   `json:"modality"`
	Description  string   `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Default      bool     `json:"default"`
}

type providerPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DocsURL        string `json:"docsUrl"`
	KeyPlaceholder string `json:"keyPlaceholder"`
	HasCredential  bool   `json:"hasCredential"`
}

type modelsResponse struct {
	TextModels  []modelPayload    `json:"textModels"`
	ImageModels []modelPayload    `json:"imageModels"`
	Providers   []providerPayload `json:"providers"`
	Selected    map[string]string `json:"selected"`
}

// Models lists the catalog with live credential availability and the
// auto-selected default for each modality.
func (a *App) Models(w http.ResponseWriter, r *http.Request) {
	avail := a.Resolver.CheckAllAvailability(r.Context())

	resp := modelsResponse{
		TextModels:  modelPayloads(catalog.ModalityText),
		ImageModels: modelPayloads(catalog.ModalityImage),
		Providers:   providerPayloads(avail),
		Selected:    map[string]string{},
	}
	if id, ok := selector.EnsureSelection("", catalog.ModalityText, avail, a.Log); ok {
		resp.Selected["text"] = id
	}
	if id, ok := selector.EnsureSelection("", catalog.ModalityImage, avail, a.Log); ok {
		resp.Selected["image"] = id
	}

	a.json(w, http.StatusOK, resp)
}

func modelPayloads(m catalog.Modality) []modelPayload {
	models := catalog.ListModels(m)
	out := make([]modelPayload, 0, len(models))
	for _, model := range models {
		out = append(out, modelPayload{
			ID:           model.ID,
			Name:         model.DisplayName,
			Provider:     string(model.Provider),
			Modality:     string(model.Modality),
			Description:  model.Description,
			Capabilities: model.Capabilities,
			Default:      model.Default,
		})
	}
	return out
}

func providerPayloads(avail credentials.Availability) []providerPayload {
	providers := catalog.Providers()
	out := make([]providerPayload, 0, len(providers))
	for _, p := range providers {
		cfg := catalog.ConfigFor(p)
		out = append(out, providerPayload{
			ID:             string(p),
			Name:           cfg.Name,
			DocsURL:        cfg.DocsURL,
			KeyPlaceholder: cfg.KeyPlaceholder,
			HasCredential:  avail[p],
		})
	}
	return out
}
