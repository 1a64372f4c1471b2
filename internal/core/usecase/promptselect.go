package usecase

import (
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

type promptService interface {
	GetPrompt(mode, category, language, analysis string, keywords []string) (domain.RenderedPrompt, error)
}

// PromptSelectionController flattens an AnalysisReport into the analysis
// text the template expects and renders the prompt for the requested
// mode. Render-time failures (unknown mode, rejected category) surface as
// a single ErrPromptSelection condition.
type PromptSelectionController struct {
	service promptService
}

func NewPromptSelectionController(service promptService) *PromptSelectionController {
	return &PromptSelectionController{service: service}
}

func (c *PromptSelectionController) Select(mode, category, language string, analysis domain.AnalysisReport, keywords []string) (domain.RenderedPrompt, error) {
	rendered, err := c.service.GetPrompt(mode, category, language, buildAnalysisText(analysis), keywords)
	if err != nil {
		return domain.RenderedPrompt{}, domain.WrapError(domain.ErrPromptSelection, "select prompt", err)
	}
	return rendered, nil
}

// buildAnalysisText lays the report out one segment per line: the summary
// first, then one line per topic cluster.
func buildAnalysisText(report domain.AnalysisReport) string {
	var segments []string
	if report.NarrativeSummary != "" {
		segments = append(segments, "Summary: "+report.NarrativeSummary)
	}
	for _, cluster := range report.TopicClusters {
		parts := []string{fmt.Sprintf("Cluster: %s", cluster.Title)}
		if len(cluster.Keywords) > 0 {
			parts = append(parts, "Keywords: "+strings.Join(cluster.Keywords, ", "))
		}
		if cluster.Summary != "" {
			parts = append(parts, "Details: "+cluster.Summary)
		}
		segments = append(segments, strings.Join(parts, " | "))
	}
	if len(segments) == 0 {
		segments = append(segments, "No analysis available.")
	}
	return strings.Join(segments, "\n")
}
