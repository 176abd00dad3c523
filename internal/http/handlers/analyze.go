package handlers

import (
	"net/http"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
)

type analyzeImageRequest struct {
	Image   string `json:"image"`
	ModelID string `json:"modelId,omitempty"`
	APIKey  string `json:"apiKey,omitempty"`
}

type analyzeImageResponse struct {
	Analysis string `json:"analysis"`
}

// AnalyzeImage describes a product photo with a vision model so the
// description can be taken straight into the enhance flow.
func (a *App) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	var req analyzeImageRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Image == "" {
		a.error(w, r, domain.NewValidation("image is required"))
		return
	}

	key, err := a.Resolver.Resolve(r.Context(), catalog.ProviderOpenAI, req.APIKey)
	if err != nil {
		a.error(w, r, err)
		return
	}

	analysis, err := a.Analyzer.AnalyzeProductImage(r.Context(), req.ModelID, key, req.Image)
	if err != nil {
		a.error(w, r, err)
		return
	}

	a.json(w, http.StatusOK, analyzeImageResponse{Analysis: analysis})
}
