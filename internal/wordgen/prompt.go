package wordgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a vocabulary coach selecting English words for an adult learner.

Rules:
- Generate exactly the requested number of diverse vocabulary words.
- Each definition must be clear, comprehensive, and self-contained.
- Each example sentence must use the word naturally in context.
- Provide 2-3 synonyms and 2-3 antonyms where they exist; empty lists are fine for words without good ones.
- Assign a difficulty level (beginner, intermediate, or advanced) honestly.
- Assign the category (general, academic, business, science, or literature) the word is most used in.
- Include a brief, genuinely interesting etymology or word origin.
- Do not repeat any word from the "already in the collection" list.
- Vary difficulty and category across the batch.`

// buildUserMessage constructs the user message for one batch request.
func buildUserMessage(input GenerateInput, cfg Config) string {
	count := input.Count
	if count <= 0 {
		count = cfg.Count
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d vocabulary words.\n", count)

	b.WriteString("\nAlready in the collection:\n")
	b.WriteString(buildRecent(input.RecentWords, cfg.MaxRecentWords))

	return b.String()
}

// buildRecent formats the dedup list for the prompt, respecting the max limit.
func buildRecent(words []string, max int) string {
	if len(words) == 0 {
		return "None"
	}

	// Keep only the most recent N words.
	if max > 0 && len(words) > max {
		words = words[:max]
	}

	return strings.Join(words, ", ")
}
