package image

import (
	"fmt"
	"strings"
)

// DefaultNegativePrompt is sent to diffusion providers that accept one.
const DefaultNegativePrompt = "low quality, blurry, distorted, deformed, disfigured, bad anatomy, watermark, signature, text"

// BuildProductScenePrompt wraps the product context in the two-part
// instruction every image adapter shares: render the described product
// exactly as given, and restage only the scene around it. The fixed-subject
// rule is a content-fidelity constraint; do not soften or reword it.
func BuildProductScenePrompt(productContext string) string {
	sb := &strings.Builder{}
	sb.WriteString("**VERY IMPORTANT: Read all instructions carefully.**\n")
	sb.WriteString("You are an AI image generator tasked with creating a product image for an Amazon listing.\n\n")
	sb.WriteString("**Product to Depict (Primary Focus):**\n")
	sb.WriteString("The core task is to accurately render the product described in the \"Product Context\" below. The product's appearance, features, and details as described MUST be depicted as faithfully and identically as possible. Do NOT alter the product itself from how it is described.\n\n")
	sb.WriteString("**Product Context (This describes the product you must render accurately):**\n")
	fmt.Fprintf(sb, "---\n%s\n---\n\n", productContext)
	sb.WriteString("**Image Style and Scene (Secondary - This is what you change around the product):**\n")
	sb.WriteString("While the product depiction MUST remain true to the \"Product Context\", the surrounding scene and environment SHOULD be changed to be:\n")
	sb.WriteString("- Highly appealing and fashionable.\n")
	sb.WriteString("- Professional and commercial quality, suitable for a premium Amazon listing.\n")
	sb.WriteString("- Well-lit, clear, and high-resolution.\n")
	sb.WriteString("- The goal is to present the *exact same product* (as per \"Product Context\") in a *new, enhanced, stylish setting* that makes it look highly desirable.\n\n")
	sb.WriteString("**Key Rule: Do not change the product's described features. Only change the scene, background, and styling around the product.**\n")
	sb.WriteString("Generate an image that makes this specific product look highly desirable in its new fashionable environment.")
	return sb.String()
}
