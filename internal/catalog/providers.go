package catalog

// ProviderConfig carries the presentational details for one provider. It
// is consumed by the models endpoint only and is not part of the
// generation contract.
type ProviderConfig struct {
	ID             Provider `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DocsURL        string   `json:"docsUrl"`
	KeyName        string   `json:"apiKeyName"`
	KeyPlaceholder string   `json:"apiKeyPlaceholder"`
}

var providerConfigs = map[Provider]ProviderConfig{
	ProviderOpenAI: {
		ID:             ProviderOpenAI,
		Name:           "OpenAI",
		Description:    "Powerful AI models for text and image generation",
		DocsURL:        "https://platform.openai.com/docs/api-reference",
		KeyName:        "OpenAI API Key",
		KeyPlaceholder: "sk-...",
	},
	ProviderGemini: {
		ID:             ProviderGemini,
		Name:           "Google Gemini",
		Description:    "Google's advanced AI models for text generation",
		DocsURL:        "https://ai.google.dev/",
		KeyName:        "Gemini API Key",
		KeyPlaceholder: "AIza...",
	},
	ProviderStability: {
		ID:             ProviderStability,
		Name:           "Stability AI",
		Description:    "Specialized in high-quality image generation",
		DocsURL:        "https://platform.stability.ai/docs/api-reference",
		KeyName:        "Stability AI API Key",
		KeyPlaceholder: "sk-...",
	},
	ProviderReplicate: {
		ID:             ProviderReplicate,
		Name:           "Replicate",
		Description:    "Run open-source models with a simple API",
		DocsURL:        "https://replicate.com/docs",
		KeyName:        "Replicate API Key",
		KeyPlaceholder: "r8_...",
	},
	ProviderOpenRouter: {
		ID:             ProviderOpenRouter,
		Name:           "OpenRouter",
		Description:    "Access to multiple AI models through a unified API",
		DocsURL:        "https://openrouter.ai/docs",
		KeyName:        "OpenRouter API Key",
		KeyPlaceholder: "sk-or-v1-...",
	},
	ProviderGroq: {
		ID:             ProviderGroq,
		Name:           "Groq",
		Description:    "Ultra-fast AI inference with open-source models",
		DocsURL:        "https://console.groq.com/docs",
		KeyName:        "Groq API Key",
		KeyPlaceholder: "gsk_...",
	},
	ProviderXAI: {
		ID:             ProviderXAI,
		Name:           "Grok (xAI)",
		Description:    "xAI's Grok models for text generation",
		DocsURL:        "https://docs.x.ai/",
		KeyName:        "xAI API Key",
		KeyPlaceholder: "xai-...",
	},
}

// ConfigFor returns the presentation config for a provider.
func ConfigFor(p Provider) ProviderConfig {
	return providerConfigs[p]
}

// ImageCapabilities describes what one provider can do for image
// generation. MaxImages is the per-request cap enforced before any
// network call.
type ImageCapabilities struct {
	SupportsGeneration bool `json:"supportsGeneration"`
	MaxImages          int  `json:"maxImages"`
}

var imageCapabilities = map[Provider]ImageCapabilities{
	ProviderOpenAI:     {SupportsGeneration: true, MaxImages: 4},
	ProviderStability:  {SupportsGeneration: true, MaxImages: 10},
	ProviderReplicate:  {SupportsGeneration: true, MaxImages: 4},
	ProviderOpenRouter: {SupportsGeneration: true, MaxImages: 1},
	ProviderGemini:     {SupportsGeneration: false},
	ProviderGroq:       {SupportsGeneration: false},
	ProviderXAI:        {SupportsGeneration: false},
}

// ImageCapabilitiesFor returns the image capability set for a provider.
func ImageCapabilitiesFor(p Provider) ImageCapabilities {
	return imageCapabilities[p]
}

// RecommendedImageProviders lists providers with native image generation,
// best capacity first. Used when composing capability-gap errors.
func RecommendedImageProviders() []Provider {
	var out []Provider
	for _, p := range Providers() {
		if imageCapabilities[p].SupportsGeneration {
			out = append(out, p)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if imageCapabilities[out[j]].MaxImages > imageCapabilities[out[i]].MaxImages {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}
