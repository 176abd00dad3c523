// Package text adapts the text providers behind a single Enhancer interface.
// Every adapter takes the full request, builds the shared copywriter prompt,
// and parses the model's JSON reply into a Result.
package text

import "context"

// Request carries one description-rewrite job. APIKey is the per-request
// override; blank means the caller already resolved a server-side key and
// placed it here.
type Request struct {
	ModelID      string
	OriginalText string
	SubjectName  string
	Tone         string
	Style        string
	APIKey       string
}

// Result is the parsed model output: the rewritten description plus a short
// rationale describing the approach the model took.
type Result struct {
	EnhancedText string
	Rationale    string
}

// Enhancer rewrites a product description using one upstream provider.
type Enhancer interface {
	Enhance(ctx context.Context, req Request) (*Result, error)
}
