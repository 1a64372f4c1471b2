package parser

import (
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

// TabularParser structures spreadsheet extractions: one chunk per sheet
// section, with the first data row's cells captured as FIELD entities.
type TabularParser struct{}

func NewTabularParser() *TabularParser {
	return &TabularParser{}
}

func (p *TabularParser) Supports(extraction domain.OCRExtraction) bool {
	return extraction.Metadata["format"] == "tabular"
}

func (p *TabularParser) Parse(extraction domain.OCRExtraction) domain.ParserResult {
	sections := splitSheets(extraction.Text)

	var chunks []domain.SemanticChunk
	var entities []domain.Entity
	for idx, section := range sections {
		chunks = append(chunks, domain.SemanticChunk{
			ID:       fmt.Sprintf("%s:chunk-%d", extraction.Attachment.ID, idx+1),
			Text:     section.text,
			SourceID: extraction.Attachment.ID,
			Metadata: extraction.Metadata,
		})
		for _, field := range section.headerCells {
			entities = append(entities, domain.Entity{Name: field, Type: "FIELD"})
		}
	}

	var summary string
	if len(sections) > 0 {
		summary = fmt.Sprintf("Tabular attachment with %d sheet(s).", len(sections))
	}

	return domain.ParserResult{
		Chunks:   chunks,
		Entities: entities,
		Summary:  summary,
	}
}

type sheetSection struct {
	text        string
	headerCells []string
}

// splitSheets groups lines under their "Sheet: name" headers as emitted
// by the spreadsheet OCR adapter. Input without headers becomes a single
// section.
func splitSheets(text string) []sheetSection {
	var sections []sheetSection
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		section := sheetSection{text: strings.Join(current, "\n")}
		for _, line := range current {
			if strings.HasPrefix(line, "Sheet: ") {
				continue
			}
			for _, cell := range strings.Split(line, " | ") {
				if cell = strings.TrimSpace(cell); cell != "" {
					section.headerCells = append(section.headerCells, cell)
				}
			}
			break
		}
		sections = append(sections, section)
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Sheet: ") {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return sections
}
