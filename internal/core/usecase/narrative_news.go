package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

const (
	newsDefaultTemplateKey = "news_default"
	newsContextLimit       = 2
	newsEmptyHeadline      = "Breaking Update Unavailable"
)

// NewsModelClient produces concise headline/bulletin narratives.
type NewsModelClient struct {
	model       ports.LanguageModel
	templateKey string
}

func NewNewsModelClient(model ports.LanguageModel, templateKey string) *NewsModelClient {
	if templateKey == "" {
		templateKey = newsDefaultTemplateKey
	}
	return &NewsModelClient{model: model, templateKey: templateKey}
}

func (c *NewsModelClient) NarrativeMode() domain.Mode {
	return domain.ModeNews
}

func (c *NewsModelClient) Generate(ctx context.Context, prompt domain.RenderedPrompt, insights *domain.DocInsights) (domain.NarrativeResponse, error) {
	userPrompt := c.composeUserPrompt(prompt.User, insights)

	raw, err := c.model.Complete(ctx, prompt.System, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("complete news narrative: %w", err)
	}

	headlines, bullets := extractNewsSections(raw)
	deck := buildSlideDeck(append(append([]string(nil), headlines...), bullets...), c.templateKey, prompt.Metadata["language"])

	return domain.NewsNarrative{
		Mode:         domain.ModeNews,
		SlideDeck:    deck,
		RawOutput:    raw,
		Headlines:    headlines,
		BulletPoints: bullets,
	}, nil
}

// composeUserPrompt mirrors the curious composition but lists entity type
// keys rather than names.
func (c *NewsModelClient) composeUserPrompt(base string, insights *domain.DocInsights) string {
	segments := []string{base}
	if context := contextLines(insights.SemanticChunks, newsContextLimit); len(context) > 0 {
		segments = append(segments, "Context:\n"+strings.Join(context, "\n"))
	}
	if types := insights.Entities.Types(); len(types) > 0 {
		segments = append(segments, "Entities: "+strings.Join(types, ", "))
	}
	return strings.Join(segments, "\n\n")
}

// extractNewsSections splits the completion into non-empty lines with
// leading list markers stripped. The first line is the sole headline; the
// rest become bullet points.
func extractNewsSections(raw string) (headlines, bullets []string) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "-• "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return []string{newsEmptyHeadline}, nil
	}
	return lines[:1], lines[1:]
}
