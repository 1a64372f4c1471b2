package usecase

import (
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

const defaultRecommendationTemplate = "Explore the relationship between {entity} and {keyword}."

// PromptRecommendationAnalyzer pairs the leading entities with the leading
// keywords to suggest follow-up prompts. It contributes no clusters or
// summary of its own.
type PromptRecommendationAnalyzer struct {
	template string
}

// NewPromptRecommendationAnalyzer accepts a template with {entity} and
// {keyword} placeholders; empty means the default template.
func NewPromptRecommendationAnalyzer(template string) *PromptRecommendationAnalyzer {
	if template == "" {
		template = defaultRecommendationTemplate
	}
	return &PromptRecommendationAnalyzer{template: template}
}

func (a *PromptRecommendationAnalyzer) Analyze(insights *domain.DocInsights) domain.AnalysisReport {
	keywords := extractKeywords(flattenChunks(insights), 5)
	entities := insights.Entities.All()

	var prompts []string
	if len(entities) > 0 {
		for _, entity := range head(entities, 3) {
			for _, keyword := range headStrings(keywords, 3) {
				prompts = append(prompts, a.renderPrompt(entity.Name, keyword))
			}
		}
	} else {
		for _, keyword := range headStrings(keywords, 3) {
			prompts = append(prompts, fmt.Sprintf("Explore deeper insights about %s.", keyword))
		}
	}

	return domain.AnalysisReport{RecommendedPrompts: prompts}
}

func (a *PromptRecommendationAnalyzer) renderPrompt(entity, keyword string) string {
	return strings.NewReplacer(
		"{entity}", entity,
		"{keyword}", keyword,
	).Replace(a.template)
}

func head(entities []domain.Entity, n int) []domain.Entity {
	if len(entities) > n {
		return entities[:n]
	}
	return entities
}

func headStrings(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
