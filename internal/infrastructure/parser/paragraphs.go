package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/infrastructure/chunking"
)

const summaryMaxRunes = 240

// ParagraphParser structures prose extractions: one chunk per paragraph
// (oversized paragraphs windowed by the splitter), naive entity capture,
// and the first paragraph as summary.
type ParagraphParser struct {
	splitter *chunking.Splitter
}

func NewParagraphParser(splitter *chunking.Splitter) *ParagraphParser {
	if splitter == nil {
		splitter = chunking.NewSplitter(0, 0)
	}
	return &ParagraphParser{splitter: splitter}
}

func (p *ParagraphParser) Supports(extraction domain.OCRExtraction) bool {
	return extraction.Metadata["format"] == "prose"
}

func (p *ParagraphParser) Parse(extraction domain.OCRExtraction) domain.ParserResult {
	pieces := p.splitter.Split(extraction.Text)

	chunks := make([]domain.SemanticChunk, 0, len(pieces))
	for idx, piece := range pieces {
		chunks = append(chunks, domain.SemanticChunk{
			ID:       fmt.Sprintf("%s:chunk-%d", extraction.Attachment.ID, idx+1),
			Text:     piece,
			SourceID: extraction.Attachment.ID,
			Metadata: extraction.Metadata,
		})
	}

	var summary string
	if len(pieces) > 0 {
		summary = truncate(pieces[0], summaryMaxRunes)
	}

	return domain.ParserResult{
		Chunks:   chunks,
		Entities: scanEntities(extraction.Text),
		Summary:  summary,
	}
}

var (
	emailPattern      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlPattern        = regexp.MustCompile(`https?://[^\s)>\]]+`)
	properNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)
)

// scanEntities captures surface-level entities only: addresses, links,
// and multi-word capitalized names. Anything deeper belongs to a real
// parser adapter registered ahead of this one.
func scanEntities(text string) []domain.Entity {
	var entities []domain.Entity
	seen := make(map[string]struct{})

	add := func(name, entityType string) {
		key := entityType + ":" + name
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		entities = append(entities, domain.Entity{Name: name, Type: entityType})
	}

	for _, match := range emailPattern.FindAllString(text, -1) {
		add(match, "EMAIL")
	}
	for _, match := range urlPattern.FindAllString(text, -1) {
		add(match, "URL")
	}
	for _, match := range properNamePattern.FindAllString(text, -1) {
		add(match, "NAME")
	}
	return entities
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max]))
}
