package catalog

// models is the static catalog. Exactly one model per modality carries the
// Default flag.
var models = []Model{
	// Text models - OpenAI
	{
		ID:                 "gpt-4o",
		DisplayName:        "GPT-4o",
		Provider:           ProviderOpenAI,
		Modality:           ModalityText,
		Description:        "OpenAI's most advanced model, optimized for both quality and speed",
		Capabilities:       []string{"High-quality text generation", "Nuanced understanding", "Creative writing", "vision"},
		Enabled:            true,
		RequiresCredential: true,
		Default:            true,
	},
	{
		ID:                 "gpt-4-turbo",
		DisplayName:        "GPT-4 Turbo",
		Provider:           ProviderOpenAI,
		Modality:           ModalityText,
		Description:        "Powerful model with a good balance of quality and cost",
		Capabilities:       []string{"High-quality text generation", "Detailed responses", "Good context handling"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "gpt-3.5-turbo",
		DisplayName:        "GPT-3.5 Turbo",
		Provider:           ProviderOpenAI,
		Modality:           ModalityText,
		Description:        "Fast and cost-effective model for most text generation tasks",
		Capabilities:       []string{"Fast responses", "Cost-effective", "Good for most tasks"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Text models - Gemini
	{
		ID:                 "gemini-1.5-pro",
		DisplayName:        "Gemini 1.5 Pro",
		Provider:           ProviderGemini,
		Modality:           ModalityText,
		Description:        "Google's advanced model with strong reasoning capabilities",
		Capabilities:       []string{"High-quality text generation", "Long context window", "Multimodal understanding"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "gemini-1.5-flash",
		DisplayName:        "Gemini 1.5 Flash",
		Provider:           ProviderGemini,
		Modality:           ModalityText,
		Description:        "Faster version of Gemini optimized for efficiency",
		Capabilities:       []string{"Fast responses", "Cost-effective", "Good quality outputs"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Image models - OpenAI
	{
		ID:                 "dall-e-3",
		DisplayName:        "DALL-E 3",
		Provider:           ProviderOpenAI,
		Modality:           ModalityImage,
		Description:        "OpenAI's advanced image generation model",
		Capabilities:       []string{"High-quality images", "Detailed prompt following", "Creative compositions"},
		Enabled:            true,
		RequiresCredential: true,
		Default:            true,
	},
	{
		ID:                 "dall-e-2",
		DisplayName:        "DALL-E 2",
		Provider:           ProviderOpenAI,
		Modality:           ModalityImage,
		Description:        "OpenAI's previous generation image model, the only one supporting variations",
		Capabilities:       []string{"Good quality images", "Image variations", "Lower cost"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Image models - Gemini. Listed for parity with the provider's catalog;
	// the adapter reports the capability gap and points at alternatives.
	{
		ID:                 "imagen-3.0-generate-002",
		DisplayName:        "Imagen 3",
		Provider:           ProviderGemini,
		Modality:           ModalityImage,
		Description:        "Google's latest image generation model with enhanced quality and style control",
		Capabilities:       []string{"High-quality images", "Advanced style control", "Multiple aspect ratios"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "gemini-2.0-flash-preview-image-generation",
		DisplayName:        "Gemini 2.0 Flash Image Generation",
		Provider:           ProviderGemini,
		Modality:           ModalityImage,
		Description:        "Conversational image generation and editing with Gemini 2.0 Flash",
		Capabilities:       []string{"Conversational image generation", "Image editing", "Contextual understanding"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "imagen-2",
		DisplayName:        "Imagen 2",
		Provider:           ProviderGemini,
		Modality:           ModalityImage,
		Description:        "Google's previous generation image model",
		Capabilities:       []string{"Good quality images", "Reliable generation", "Fast processing"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Image models - Stability AI
	{
		ID:                 "stable-diffusion-xl-1024-v1-0",
		DisplayName:        "Stable Diffusion XL 1024",
		Provider:           ProviderStability,
		Modality:           ModalityImage,
		Description:        "Stability AI's flagship SDXL engine for high-quality 1024x1024 images",
		Capabilities:       []string{"High-quality images", "1024x1024 resolution", "Image-to-image"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "stable-diffusion-v1-6",
		DisplayName:        "Stable Diffusion v1.6",
		Provider:           ProviderStability,
		Modality:           ModalityImage,
		Description:        "Classic Stable Diffusion engine for reliable image generation",
		Capabilities:       []string{"Reliable generation", "Good quality", "Fast processing"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "stable-diffusion-512-v2-1",
		DisplayName:        "Stable Diffusion 512 v2.1",
		Provider:           ProviderStability,
		Modality:           ModalityImage,
		Description:        "Stable Diffusion v2.1 optimized for 512x512 images",
		Capabilities:       []string{"512x512 resolution", "Good quality", "Efficient processing"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Image models - Replicate (model identifiers are pinned versions)
	{
		ID:                 "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b",
		DisplayName:        "Stable Diffusion XL (via Replicate)",
		Provider:           ProviderReplicate,
		Modality:           ModalityImage,
		Description:        "Stability AI's SDXL model accessed through Replicate",
		Capabilities:       []string{"High-quality images", "Artistic styles", "Detailed control"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "lucataco/sdxl-lightning:652d4b24c87aba0c45f021c9b6b1b8a16d157e2d2d8e3f9a8c0c0e19c5ce0698",
		DisplayName:        "SDXL Lightning (via Replicate)",
		Provider:           ProviderReplicate,
		Modality:           ModalityImage,
		Description:        "Fast version of SDXL, accessed through Replicate",
		Capabilities:       []string{"Fast generation", "Good quality", "Efficient processing"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "cjwbw/realistic-vision-v5:9e6701a09bd8a0f4a3d13f4fedafef8a2259b812af0f5eb0918c38e9c7fc4c75",
		DisplayName:        "Realistic Vision V5 (via Replicate)",
		Provider:           ProviderReplicate,
		Modality:           ModalityImage,
		Description:        "Highly realistic image generation model",
		Capabilities:       []string{"Photorealistic images", "Detailed textures", "Lifelike lighting"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Text models - OpenRouter
	{
		ID:                 "openai/gpt-4-turbo",
		DisplayName:        "GPT-4 Turbo (via OpenRouter)",
		Provider:           ProviderOpenRouter,
		Modality:           ModalityText,
		Description:        "OpenAI's GPT-4 Turbo accessed through OpenRouter",
		Capabilities:       []string{"High-quality text generation", "Detailed responses", "Good context handling"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "anthropic/claude-3-opus",
		DisplayName:        "Claude 3 Opus (via OpenRouter)",
		Provider:           ProviderOpenRouter,
		Modality:           ModalityText,
		Description:        "Anthropic's most capable model, accessed through OpenRouter",
		Capabilities:       []string{"High-quality text generation", "Nuanced understanding", "Thoughtful responses"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "anthropic/claude-3-sonnet",
		DisplayName:        "Claude 3 Sonnet (via OpenRouter)",
		Provider:           ProviderOpenRouter,
		Modality:           ModalityText,
		Description:        "Anthropic's balanced model for quality and speed, accessed through OpenRouter",
		Capabilities:       []string{"High-quality text generation", "Fast responses", "Good reasoning"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "meta-llama/llama-3-70b-instruct",
		DisplayName:        "Llama 3 70B (via OpenRouter)",
		Provider:           ProviderOpenRouter,
		Modality:           ModalityText,
		Description:        "Meta's Llama 3 70B model, accessed through OpenRouter",
		Capabilities:       []string{"High-quality text generation", "Open-source foundation", "Instruction following"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Image models - OpenRouter
	{
		ID:                 "stability-ai/sdxl",
		DisplayName:        "SDXL (via OpenRouter)",
		Provider:           ProviderOpenRouter,
		Modality:           ModalityImage,
		Description:        "SDXL image generation through OpenRouter's unified API",
		Capabilities:       []string{"Good quality images", "Unified billing"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Text models - Groq
	{
		ID:                 "llama-3.1-70b-versatile",
		DisplayName:        "Llama 3.1 70B Versatile",
		Provider:           ProviderGroq,
		Modality:           ModalityText,
		Description:        "Meta's Llama 3.1 70B model optimized for speed on Groq",
		Capabilities:       []string{"Ultra-fast inference", "High-quality text generation", "Versatile applications"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "llama-3.1-8b-instant",
		DisplayName:        "Llama 3.1 8B Instant",
		Provider:           ProviderGroq,
		Modality:           ModalityText,
		Description:        "Lightweight Llama model for instant responses",
		Capabilities:       []string{"Instant responses", "Cost-effective", "Good for simple tasks"},
		Enabled:            true,
		RequiresCredential: true,
	},
	{
		ID:                 "mixtral-8x7b-32768",
		DisplayName:        "Mixtral 8x7B",
		Provider:           ProviderGroq,
		Modality:           ModalityText,
		Description:        "Mistral's mixture of experts model on Groq",
		Capabilities:       []string{"Fast inference", "High-quality outputs", "Large context window"},
		Enabled:            true,
		RequiresCredential: true,
	},

	// Text models - xAI
	{
		ID:                 "grok-beta",
		DisplayName:        "Grok Beta",
		Provider:           ProviderXAI,
		Modality:           ModalityText,
		Description:        "xAI's Grok model with real-time knowledge and wit",
		Capabilities:       []string{"Real-time information", "Witty responses", "Current events awareness"},
		Enabled:            true,
		RequiresCredential: true,
	},
}
