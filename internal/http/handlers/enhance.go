package handlers

import (
	"net/http"

	"enhancer/internal/providers/text"
)

type enhanceRequest struct {
	ModelID      string `json:"modelId"`
	OriginalText string `json:"originalText"`
	SubjectName  string `json:"subjectName"`
	Tone         string `json:"tone,omitempty"`
	Style        string `json:"style,omitempty"`
	APIKey       string `json:"apiKey,omitempty"`
}

type enhanceResponse struct {
	EnhancedText string `json:"enhancedText"`
	Rationale    string `json:"rationale"`
}

// EnhanceDescription rewrites a product description through the model the
// caller picked.
func (a *App) EnhanceDescription(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if !a.decode(w, r, &req) {
		return
	}

	res, err := a.Dispatcher.GenerateEnhancedDescription(r.Context(), text.Request{
		ModelID:      req.ModelID,
		OriginalText: req.OriginalText,
		SubjectName:  req.SubjectName,
		Tone:         req.Tone,
		Style:        req.Style,
		APIKey:       req.APIKey,
	})
	if err != nil {
		a.error(w, r, err)
		return
	}

	a.json(w, http.StatusOK, enhanceResponse{
		EnhancedText: res.EnhancedText,
		Rationale:    res.Rationale,
	})
}
