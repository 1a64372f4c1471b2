package usecase

import (
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

const emptyDeckSentinel = "No content generated."

// buildSlideDeck maps content sections onto slides. A deck is never empty:
// zero sections yield exactly one sentinel slide.
func buildSlideDeck(sections []string, templateKey, languageCode string) domain.SlideDeck {
	slides := make([]domain.SlideBlock, 0, len(sections))
	for idx, section := range sections {
		slides = append(slides, domain.SlideBlock{
			PlaceholderID: fmt.Sprintf("section_%d", idx+1),
			Text:          section,
		})
	}
	if len(slides) == 0 {
		slides = []domain.SlideBlock{{PlaceholderID: "section_1", Text: emptyDeckSentinel}}
	}
	return domain.SlideDeck{
		TemplateKey:  templateKey,
		LanguageCode: languageCode,
		Slides:       slides,
	}
}

// contextLines picks the first limit non-empty chunk texts, each prefixed
// with "- ", for inclusion in a user prompt.
func contextLines(chunks []domain.SemanticChunk, limit int) []string {
	var lines []string
	for _, chunk := range chunks {
		if chunk.Text == "" {
			continue
		}
		lines = append(lines, "- "+strings.TrimSpace(chunk.Text))
		if len(lines) >= limit {
			break
		}
	}
	return lines
}
