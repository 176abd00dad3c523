package catalog

import "strings"

// Provider identifies one upstream AI vendor.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderGemini     Provider = "gemini"
	ProviderStability  Provider = "stability"
	ProviderReplicate  Provider = "replicate"
	ProviderOpenRouter Provider = "openrouter"
	ProviderGroq       Provider = "groq"
	ProviderXAI        Provider = "xai"
)

// Modality is the kind of generation a model performs.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
)

// Model is an immutable descriptor for one AI model. The catalog is
// assembled at process start and never mutated afterwards.
type Model struct {
	ID                 string
	DisplayName        string
	Provider           Provider
	Modality           Modality
	Description        string
	Capabilities       []string
	Enabled            bool
	RequiresCredential bool
	Default            bool
}

// Providers lists every known provider in catalog order.
func Providers() []Provider {
	return []Provider{
		ProviderOpenAI,
		ProviderGemini,
		ProviderStability,
		ProviderReplicate,
		ProviderOpenRouter,
		ProviderGroq,
		ProviderXAI,
	}
}

// ParseProvider maps free-form input onto a known provider.
func ParseProvider(s string) (Provider, bool) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProviderOpenAI, ProviderGemini, ProviderStability, ProviderReplicate,
		ProviderOpenRouter, ProviderGroq, ProviderXAI:
		return p, true
	}
	return "", false
}

// ParseModality maps free-form input onto a modality.
func ParseModality(s string) (Modality, bool) {
	switch Modality(strings.ToLower(strings.TrimSpace(s))) {
	case ModalityText:
		return ModalityText, true
	case ModalityImage:
		return ModalityImage, true
	}
	return "", false
}

// ListModels returns the enabled models of the given modality, in catalog
// order.
func ListModels(m Modality) []Model {
	var out []Model
	for _, model := range models {
		if model.Modality == m && model.Enabled {
			out = append(out, model)
		}
	}
	return out
}

// ModelsByProvider returns the enabled models belonging to one provider.
func ModelsByProvider(p Provider) []Model {
	var out []Model
	for _, model := range models {
		if model.Provider == p && model.Enabled {
			out = append(out, model)
		}
	}
	return out
}

// FindModel looks a model up by id.
func FindModel(id string) (Model, bool) {
	for _, model := range models {
		if model.ID == id {
			return model, true
		}
	}
	return Model{}, false
}

// DefaultModel returns the single model flagged as the default for the
// given modality.
func DefaultModel(m Modality) (Model, bool) {
	for _, model := range models {
		if model.Modality == m && model.Default && model.Enabled {
			return model, true
		}
	}
	return Model{}, false
}
