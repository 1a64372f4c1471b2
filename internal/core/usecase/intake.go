package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

// IntakeNormalizer turns raw job fields into a validated IntakePayload.
// Keywords may arrive comma-joined or as a list; URLs that do not parse as
// absolute http(s) URLs are dropped rather than failing the job.
type IntakeNormalizer struct {
	defaultMode domain.Mode
}

func NewIntakeNormalizer(defaultMode domain.Mode) *IntakeNormalizer {
	if defaultMode == "" {
		defaultMode = domain.ModeCurious
	}
	return &IntakeNormalizer{defaultMode: defaultMode}
}

func (n *IntakeNormalizer) Normalize(raw domain.IntakePayload) (domain.IntakePayload, error) {
	if raw.SlideCount < 0 {
		return domain.IntakePayload{}, domain.WrapError(
			domain.ErrInvalidInput,
			"normalize intake",
			fmt.Errorf("slide count must be positive, got %d", raw.SlideCount),
		)
	}

	payload := raw
	payload.TextPrompt = strings.TrimSpace(raw.TextPrompt)
	payload.Notes = strings.TrimSpace(raw.Notes)
	payload.URLs = normalizeURLs(raw.URLs)
	payload.Attachments = dropBlank(raw.Attachments)
	payload.PromptKeywords = dedupeKeywords(splitKeywordValues(raw.PromptKeywords))
	payload.Mode = strings.ToLower(strings.TrimSpace(raw.Mode))
	if payload.Mode == "" {
		payload.Mode = string(n.defaultMode)
	}
	payload.Category = strings.TrimSpace(raw.Category)
	return payload, nil
}

// splitKeywordValues expands comma-joined entries so "a, b" and ["a","b"]
// normalize identically.
func splitKeywordValues(values []string) []string {
	var out []string
	for _, value := range values {
		for _, piece := range strings.Split(value, ",") {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		out = append(out, keyword)
	}
	return out
}

func normalizeURLs(candidates []string) []string {
	var out []string
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		parsed, err := url.Parse(candidate)
		if err != nil {
			continue
		}
		if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			continue
		}
		out = append(out, parsed.String())
	}
	return out
}

func dropBlank(values []string) []string {
	var out []string
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}

var errEmptyPayload = errors.New("payload carries no content")

// HasContent reports whether the payload can contribute anything to a job.
func HasContent(payload domain.IntakePayload) error {
	if payload.TextPrompt != "" || payload.Notes != "" ||
		len(payload.URLs) > 0 || len(payload.Attachments) > 0 || len(payload.PromptKeywords) > 0 {
		return nil
	}
	return domain.WrapError(domain.ErrInvalidInput, "validate intake", errEmptyPayload)
}
