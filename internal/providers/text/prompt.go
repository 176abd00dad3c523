package text

import (
	"encoding/json"
	"fmt"
	"strings"

	"enhancer/internal/domain"
)

// BuildCopywriterPrompt renders the rewrite instruction for a request. The
// original length is quoted back so the model keeps the rewrite in the same
// range, and the reply schema is pinned to exactly two JSON fields.
func BuildCopywriterPrompt(req Request) string {
	charCount := len(req.OriginalText)
	wordCount := len(strings.Fields(req.OriginalText))

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are an expert Amazon listing copywriter.\n")
	fmt.Fprintf(sb, "Your task is to rewrite the provided product description for %q and provide context for your changes.\n\n", req.SubjectName)
	fmt.Fprintf(sb, "Original Product Name: %q\n", req.SubjectName)
	fmt.Fprintf(sb, "Original Description:\n---\n%s\n---\n\n", req.OriginalText)
	fmt.Fprintf(sb, "Original Description Length:\n- Characters: %d\n- Words: %d\n\n", charCount, wordCount)
	sb.WriteString("Instructions:\n")
	sb.WriteString("1. Rewrite the \"Original Description\" to be highly compelling, benefit-driven, and optimized for Amazon.\n")
	sb.WriteString("2. The \"enhanced_description\" MUST be plain text only, without any markdown formatting (e.g., no ```, *, #).\n")
	sb.WriteString("3. The length (character and word count) of your \"enhanced_description\" should be in a similar range to the \"Original Description Length\" provided above. Aim for approximately the same number of words.\n")
	sb.WriteString("4. Focus on:\n")
	sb.WriteString("    - Clear and concise language.\n")
	sb.WriteString("    - Highlighting key benefits and unique selling points from the original.\n")
	sb.WriteString("    - Engaging tone that encourages purchase.\n")
	sb.WriteString("    - Persuasive and professional language.\n")
	sb.WriteString("5. Provide a brief \"generation_context\" (around 20-50 words) explaining your approach, key changes made, or focus areas during the rewrite.\n")
	if tone := strings.TrimSpace(req.Tone); tone != "" {
		fmt.Fprintf(sb, "6. Match this desired tone: %s.\n", tone)
	}
	if style := strings.TrimSpace(req.Style); style != "" {
		fmt.Fprintf(sb, "7. Follow this writing style: %s.\n", style)
	}
	sb.WriteString("\nOutput ONLY a valid JSON object with the following exact schema:\n")
	sb.WriteString("{\n  \"enhanced_description\": \"string\",\n  \"generation_context\": \"string\"\n}\n\n")
	sb.WriteString("Do NOT include any other text, explanations, or markdown formatting outside of this JSON object. Just the JSON.")
	return sb.String()
}

type enhancePayload struct {
	EnhancedDescription string `json:"enhanced_description"`
	GenerationContext   string `json:"generation_context"`
}

// ParseEnhancePayload decodes a model reply into a Result. Code fences and
// surrounding chatter are stripped first; a reply missing either field is a
// parse failure that keeps the raw payload for diagnosis.
func ParseEnhancePayload(provider, raw string) (*Result, error) {
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		return nil, domain.NewParse(provider, raw, nil, "model returned an empty payload")
	}
	var payload enhancePayload
	if err := json.Unmarshal([]byte(fragment), &payload); err != nil {
		return nil, domain.NewParse(provider, raw, err, "model payload is not valid JSON")
	}
	enhanced := strings.TrimSpace(payload.EnhancedDescription)
	rationale := strings.TrimSpace(payload.GenerationContext)
	if enhanced == "" || rationale == "" {
		return nil, domain.NewParse(provider, raw, nil, "model payload is missing required fields")
	}
	return &Result{EnhancedText: enhanced, Rationale: rationale}, nil
}

func extractJSONFragment(raw string) string {
	text := trimCodeFence(strings.TrimSpace(raw))
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
