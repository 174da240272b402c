package studio

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// guidelinesExcerptLimit caps how much of the uploaded document is spliced
// into the system instruction.
const guidelinesExcerptLimit = 10000

const fallbackGuidelines = "General professional tone."

const strategistTemplate = `You are a Senior Brand Strategist.
Strictly adhere to the tone and guidelines below.

--- BRAND GUIDELINES ---
%s
------------------------

Task: Write creative marketing copy.`

// BuildSystemInstruction splices a truncated guidelines excerpt into the
// strategist template.
func BuildSystemInstruction(guidelines string) string {
	if strings.TrimSpace(guidelines) == "" {
		guidelines = fallbackGuidelines
	}
	// Counted in characters, not bytes, so multibyte text keeps the full
	// excerpt and the cut never splits a rune.
	excerpt := guidelines
	if utf8.RuneCountInString(excerpt) > guidelinesExcerptLimit {
		excerpt = string([]rune(excerpt)[:guidelinesExcerptLimit])
	}
	return fmt.Sprintf(strategistTemplate, excerpt)
}

// BuildImagePrompt concatenates the campaign brief with the style
// description.
func BuildImagePrompt(brief, style string) string {
	return brief + ", " + style
}
