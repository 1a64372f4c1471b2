package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

const (
	curiousDefaultTemplateKey = "curious_default"
	curiousContextLimit       = 3
	curiousEmptySection       = "No explainable narrative generated."
	noteExcerptLength         = 120
)

// CuriousModelClient produces explainability-heavy narratives.
type CuriousModelClient struct {
	model       ports.LanguageModel
	templateKey string
}

func NewCuriousModelClient(model ports.LanguageModel, templateKey string) *CuriousModelClient {
	if templateKey == "" {
		templateKey = curiousDefaultTemplateKey
	}
	return &CuriousModelClient{model: model, templateKey: templateKey}
}

func (c *CuriousModelClient) NarrativeMode() domain.Mode {
	return domain.ModeCurious
}

func (c *CuriousModelClient) Generate(ctx context.Context, prompt domain.RenderedPrompt, insights *domain.DocInsights) (domain.NarrativeResponse, error) {
	userPrompt := c.composeUserPrompt(prompt.User, insights)

	raw, err := c.model.Complete(ctx, prompt.System, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("complete curious narrative: %w", err)
	}

	sections := splitSections(raw)
	deck := buildSlideDeck(sections, c.templateKey, prompt.Metadata["language"])

	return domain.CuriousNarrative{
		Mode:                domain.ModeCurious,
		SlideDeck:           deck,
		RawOutput:           raw,
		ExplainabilityNotes: explainabilityNotes(insights, sections),
		ReasoningTrace:      strings.Join(sections, "\n"),
	}, nil
}

func (c *CuriousModelClient) composeUserPrompt(base string, insights *domain.DocInsights) string {
	segments := []string{base}
	if context := contextLines(insights.SemanticChunks, curiousContextLimit); len(context) > 0 {
		segments = append(segments, "Contextual Highlights:\n"+strings.Join(context, "\n"))
	}
	if names := entityNames(insights.Entities); len(names) > 0 {
		segments = append(segments, "Key Entities: "+strings.Join(names, ", "))
	}
	return strings.Join(segments, "\n\n")
}

// splitSections cuts the raw completion on blank-line boundaries into
// non-empty trimmed sections.
func splitSections(raw string) []string {
	var sections []string
	for _, section := range strings.Split(raw, "\n\n") {
		section = strings.TrimSpace(section)
		if section != "" {
			sections = append(sections, section)
		}
	}
	if len(sections) == 0 {
		sections = []string{curiousEmptySection}
	}
	return sections
}

// explainabilityNotes pairs narrative section i with insight chunk i.
// The pairing is positional, not semantic: a section may not derive from
// the correspondingly indexed chunk at all.
func explainabilityNotes(insights *domain.DocInsights, sections []string) []string {
	notes := make([]string, 0, len(sections))
	for idx, section := range sections {
		var source string
		if idx < len(insights.SemanticChunks) {
			source = insights.SemanticChunks[idx].Text
		}
		notes = append(notes, fmt.Sprintf(
			"Section %d: %s (Source excerpt: %s)",
			idx+1,
			truncateRunes(section, noteExcerptLength),
			truncateRunes(source, noteExcerptLength),
		))
	}
	return notes
}

// entityNames flattens and de-duplicates entity names across all types.
func entityNames(entities *domain.EntityMap) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, entity := range entities.All() {
		if _, ok := seen[entity.Name]; ok {
			continue
		}
		seen[entity.Name] = struct{}{}
		names = append(names, entity.Name)
	}
	return names
}
