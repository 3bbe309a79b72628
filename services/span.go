package services

import (
	"strings"

	"academyqa/models"
)

const extractionInstructions = "You are an extractive question answering model for a training institute. " +
	"Answer the question using only the passage. Reply with the shortest span copied exactly from the passage " +
	"that answers the question, with no quotes, no explanation and no extra words."

func extractionPrompt(question, passage string) string {
	var b strings.Builder
	b.WriteString("Passage:\n")
	b.WriteString(passage)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer span:")
	return b.String()
}

// spanAnswer locates a generated answer inside passage. An exact match scores
// 1, a case-insensitive match 0.9; text that is not in the passage is returned
// as is with offsets -1 and score 0.
func spanAnswer(generated, passage string) *models.ModelAnswer {
	text := strings.TrimSpace(generated)
	text = strings.Trim(text, "\"'`")
	text = strings.TrimSpace(text)

	if text == "" {
		return &models.ModelAnswer{Start: -1, End: -1}
	}

	if i := strings.Index(passage, text); i >= 0 {
		return &models.ModelAnswer{Text: text, Score: 1, Start: i, End: i + len(text)}
	}

	lowerPassage := strings.ToLower(passage)
	lowerText := strings.ToLower(text)
	if len(lowerPassage) == len(passage) && len(lowerText) == len(text) {
		if i := strings.Index(lowerPassage, lowerText); i >= 0 {
			return &models.ModelAnswer{Text: passage[i : i+len(text)], Score: 0.9, Start: i, End: i + len(text)}
		}
	}

	trimmed := strings.TrimRight(text, ".")
	if trimmed != text && trimmed != "" {
		if i := strings.Index(passage, trimmed); i >= 0 {
			return &models.ModelAnswer{Text: trimmed, Score: 1, Start: i, End: i + len(trimmed)}
		}
	}

	return &models.ModelAnswer{Text: text, Start: -1, End: -1}
}
