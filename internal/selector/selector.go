// Package selector picks the best usable model for a modality given which
// providers currently have credentials.
package selector

import (
	"github.com/rs/zerolog"

	"enhancer/internal/catalog"
	"enhancer/internal/credentials"
)

// Preference lists are ordered by output quality. The registry default is
// the final fallback when no preferred provider has a credential.
var (
	textPriorities = []string{
		"gpt-4o",
		"llama-3.1-70b-versatile",
		"gemini-1.5-pro",
	}
	imagePriorities = []string{
		"dall-e-3",
		"stable-diffusion-xl-1024-v1-0",
		"stability-ai/sdxl",
	}
)

// SelectBestModel returns the highest-priority model of the given modality
// whose provider has an available credential. ok is false when no model is
// usable at all.
func SelectBestModel(m catalog.Modality, avail credentials.Availability) (catalog.Model, bool) {
	priorities := textPriorities
	if m == catalog.ModalityImage {
		priorities = imagePriorities
	}

	for _, id := range priorities {
		model, found := catalog.FindModel(id)
		if !found || model.Modality != m {
			continue
		}
		if avail[model.Provider] {
			return model, true
		}
	}

	// No preferred provider is keyed; fall back to the registry default if
	// its own provider is available, then to any available model at all.
	if def, found := catalog.DefaultModel(m); found && avail[def.Provider] {
		return def, true
	}
	for _, model := range catalog.ListModels(m) {
		if avail[model.Provider] {
			return model, true
		}
	}
	return catalog.Model{}, false
}

// EnsureSelection keeps a non-empty current selection as-is, otherwise picks
// the best available model. The second return reports whether a usable model
// exists; current selections are trusted without re-checking availability so
// an explicit user choice is never silently overridden.
func EnsureSelection(current string, m catalog.Modality, avail credentials.Availability, log zerolog.Logger) (string, bool) {
	if current != "" {
		return current, true
	}
	model, ok := SelectBestModel(m, avail)
	if !ok {
		log.Warn().Str("modality", string(m)).Msg("no provider with credentials for auto-selection")
		return "", false
	}
	log.Info().
		Str("modality", string(m)).
		Str("model", model.ID).
		Str("provider", string(model.Provider)).
		Msg("auto-selected model")
	return model.ID, true
}
