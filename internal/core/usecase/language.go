package usecase

import (
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

const (
	defaultLanguageCode = "en"
	previewMaxLength    = 200
)

// LanguageService aggregates the payload's text fields and runs the
// configured detection strategy over them. Runs once per request; the
// resulting metadata is immutable afterwards.
type LanguageService struct {
	detector        ports.LanguageDetector
	defaultLanguage string
}

func NewLanguageService(detector ports.LanguageDetector, defaultLanguage string) *LanguageService {
	if defaultLanguage == "" {
		defaultLanguage = defaultLanguageCode
	}
	return &LanguageService{detector: detector, defaultLanguage: defaultLanguage}
}

func (s *LanguageService) Detect(payload domain.IntakePayload) domain.LanguageMetadata {
	text := aggregateDetectionText(payload)
	if strings.TrimSpace(text) == "" {
		return domain.LanguageMetadata{LanguageCode: s.defaultLanguage}
	}

	code, confidence := s.detector.Detect(text)
	if code == "" {
		code = s.defaultLanguage
	}
	return domain.LanguageMetadata{
		LanguageCode:      code,
		Confidence:        clamp01(confidence),
		SourceTextPreview: preview(text, previewMaxLength),
	}
}

func aggregateDetectionText(payload domain.IntakePayload) string {
	var segments []string
	if payload.TextPrompt != "" {
		segments = append(segments, payload.TextPrompt)
	}
	if payload.Notes != "" {
		segments = append(segments, payload.Notes)
	}
	if len(payload.PromptKeywords) > 0 {
		segments = append(segments, strings.Join(payload.PromptKeywords, " "))
	}
	if len(payload.URLs) > 0 {
		segments = append(segments, strings.Join(payload.URLs, " "))
	}
	return strings.Join(segments, " \n ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
