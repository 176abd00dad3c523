package handlers

import (
	"net/http"

	"enhancer/internal/providers/image"
)

type generateImagesRequest struct {
	ModelID        string  `json:"modelId"`
	Prompt         string  `json:"prompt"`
	Count          int     `json:"count"`
	SourceImage    string  `json:"sourceImage,omitempty"`
	SourceStrength float64 `json:"sourceStrength,omitempty"`
	APIKey         string  `json:"apiKey,omitempty"`
}

type generateImagesResponse struct {
	Images []string `json:"images"`
}

// GenerateImages produces product images through the model the caller
// picked. Images come back as plain base64, no data-URI prefix.
func (a *App) GenerateImages(w http.ResponseWriter, r *http.Request) {
	var req generateImagesRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	images, err := a.Dispatcher.GenerateProductImages(r.Context(), image.Request{
		ModelID:        req.ModelID,
		Prompt:         req.Prompt,
		Count:          req.Count,
		SourceImage:    req.SourceImage,
		SourceStrength: req.SourceStrength,
		APIKey:         req.APIKey,
	})
	if err != nil {
		a.error(w, r, err)
		return
	}

	a.json(w, http.StatusOK, generateImagesResponse{Images: images})
}
