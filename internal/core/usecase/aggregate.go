package usecase

import (
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

const defaultTextJoiner = "\n\n"

// Aggregator merges an IntakePayload and its LanguageMetadata into one
// StructuredJobRequest. It is a deterministic, total function of its
// inputs; no validation failure is possible here.
type Aggregator struct {
	textJoiner string
}

func NewAggregator(textJoiner string) *Aggregator {
	if textJoiner == "" {
		textJoiner = defaultTextJoiner
	}
	return &Aggregator{textJoiner: textJoiner}
}

func (a *Aggregator) Aggregate(payload domain.IntakePayload, language domain.LanguageMetadata) domain.StructuredJobRequest {
	return domain.StructuredJobRequest{
		TextInput:     a.joinSegments(collectTextSegments(payload, language)),
		URLList:       append([]string(nil), payload.URLs...),
		Attachments:   describeAttachments(payload.Attachments),
		FocusKeywords: append([]string(nil), payload.PromptKeywords...),
	}
}

// collectTextSegments gathers non-empty text in fixed order: prompt,
// notes, space-joined keywords, detection preview.
func collectTextSegments(payload domain.IntakePayload, language domain.LanguageMetadata) []string {
	var segments []string
	if trimmed := strings.TrimSpace(payload.TextPrompt); trimmed != "" {
		segments = append(segments, trimmed)
	}
	if trimmed := strings.TrimSpace(payload.Notes); trimmed != "" {
		segments = append(segments, trimmed)
	}
	if len(payload.PromptKeywords) > 0 {
		segments = append(segments, strings.Join(payload.PromptKeywords, " "))
	}
	if trimmed := strings.TrimSpace(language.SourceTextPreview); trimmed != "" {
		segments = append(segments, trimmed)
	}
	return segments
}

// describeAttachments assigns sequential ids in input order. Media type
// and metadata stay unset here; document intelligence fills them in later
// when determinable.
func describeAttachments(attachments []string) []domain.AttachmentDescriptor {
	if len(attachments) == 0 {
		return nil
	}
	descriptors := make([]domain.AttachmentDescriptor, 0, len(attachments))
	for idx, uri := range attachments {
		descriptors = append(descriptors, domain.AttachmentDescriptor{
			ID:  fmt.Sprintf("attachment-%d", idx+1),
			URI: uri,
		})
	}
	return descriptors
}

// joinSegments returns "" (never a blank string) when no segment survives.
func (a *Aggregator) joinSegments(segments []string) string {
	kept := segments[:0]
	for _, segment := range segments {
		if segment != "" {
			kept = append(kept, segment)
		}
	}
	return strings.Join(kept, a.textJoiner)
}
