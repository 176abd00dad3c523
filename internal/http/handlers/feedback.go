package handlers

import (
	"net/http"

	"enhancer/internal/domain"
)

type feedbackRequest struct {
	ContentType      string `json:"contentType"`
	ContentReference string `json:"contentReference"`
	ModelID          string `json:"modelId"`
	Rating           string `json:"rating"`
	Comment          string `json:"comment,omitempty"`
	Timestamp        string `json:"timestamp"`
}

type feedbackResponse struct {
	Message string `json:"message"`
}

// SubmitFeedback records a quality rating for a generated description or
// image. Feedback is logged, not persisted; log aggregation picks it up.
func (a *App) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if !a.decode(w, r, &req) {
		return
	}

	switch {
	case req.ContentType == "" || req.ContentReference == "" || req.ModelID == "" || req.Rating == "" || req.Timestamp == "":
		a.error(w, r, domain.NewValidation("contentType, contentReference, modelId, rating and timestamp are required"))
		return
	case req.ContentType != "description" && req.ContentType != "image":
		a.error(w, r, domain.NewValidation("contentType must be either %q or %q", "description", "image"))
		return
	case req.Rating != "good" && req.Rating != "bad":
		a.error(w, r, domain.NewValidation("rating must be either %q or %q", "good", "bad"))
		return
	}

	a.Log.Info().
		Str("content_type", req.ContentType).
		Str("content_reference", req.ContentReference).
		Str("model_id", req.ModelID).
		Str("rating", req.Rating).
		Str("comment", req.Comment).
		Str("timestamp", req.Timestamp).
		Msg("feedback received")

	a.json(w, http.StatusOK, feedbackResponse{Message: "Feedback received successfully"})
}
