package usecase

import (
	"context"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// Skip reasons reported to the observer when an attachment contributes
// nothing to the job.
const (
	SkipNoOCRAdapter   = "no_ocr_adapter"
	SkipOCRError       = "ocr_error"
	SkipEmptyOCROutput = "empty_ocr_output"
)

// DocIntelPipeline coordinates OCR adapters and parser adapters to build
// DocInsights. Adapters are registered in priority order; selection is a
// linear scan and the first accepting adapter wins. Attachments that no
// adapter accepts, or whose extraction is empty, are skipped so that one
// bad attachment never aborts a multi-attachment job.
type DocIntelPipeline struct {
	ocrAdapters []ports.OCRAdapter
	parsers     []ports.ParserAdapter
	onSkip      func(attachmentID, reason string)
}

func NewDocIntelPipeline(ocrAdapters []ports.OCRAdapter, parsers []ports.ParserAdapter, onSkip func(attachmentID, reason string)) *DocIntelPipeline {
	if onSkip == nil {
		onSkip = func(string, string) {}
	}
	return &DocIntelPipeline{
		ocrAdapters: ocrAdapters,
		parsers:     parsers,
		onSkip:      onSkip,
	}
}

func (p *DocIntelPipeline) Run(ctx context.Context, job domain.StructuredJobRequest) *domain.DocInsights {
	insights := domain.NewDocInsights()

	if job.TextInput != "" {
		insights.SemanticChunks = append(insights.SemanticChunks, domain.SemanticChunk{
			ID:       "payload:text",
			Text:     job.TextInput,
			SourceID: "payload",
			Metadata: map[string]string{"source": "text_input"},
		})
	}

	for _, attachment := range job.Attachments {
		extraction := p.runOCR(ctx, attachment)
		if extraction == nil {
			continue
		}

		result := p.parse(*extraction)
		insights.SemanticChunks = append(insights.SemanticChunks, result.Chunks...)
		insights.Entities.Merge(result.Entities)
		if result.Summary != "" {
			insights.Summaries = append(insights.Summaries, result.Summary)
		}
	}

	return insights
}

func (p *DocIntelPipeline) runOCR(ctx context.Context, attachment domain.AttachmentDescriptor) *domain.OCRExtraction {
	adapter := p.selectOCRAdapter(attachment)
	if adapter == nil {
		p.onSkip(attachment.ID, SkipNoOCRAdapter)
		return nil
	}

	extraction, err := adapter.Extract(ctx, attachment)
	if err != nil {
		p.onSkip(attachment.ID, SkipOCRError)
		return nil
	}
	if extraction == nil || strings.TrimSpace(extraction.Text) == "" {
		p.onSkip(attachment.ID, SkipEmptyOCROutput)
		return nil
	}
	return extraction
}

func (p *DocIntelPipeline) selectOCRAdapter(attachment domain.AttachmentDescriptor) ports.OCRAdapter {
	for _, adapter := range p.ocrAdapters {
		if adapter.CanProcess(attachment) {
			return adapter
		}
	}
	return nil
}

func (p *DocIntelPipeline) parse(extraction domain.OCRExtraction) domain.ParserResult {
	for _, parser := range p.parsers {
		if parser.Supports(extraction) {
			return parser.Parse(extraction)
		}
	}
	return defaultParse(extraction)
}

// defaultParse wraps the raw extracted text into a single chunk when no
// parser claims the extraction.
func defaultParse(extraction domain.OCRExtraction) domain.ParserResult {
	return domain.ParserResult{
		Chunks: []domain.SemanticChunk{{
			ID:       extraction.Attachment.ID + ":chunk-1",
			Text:     extraction.Text,
			SourceID: extraction.Attachment.ID,
			Metadata: extraction.Metadata,
		}},
	}
}
