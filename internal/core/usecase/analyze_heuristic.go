package usecase

import (
	"github.com/storyweave/narrative-backend/internal/core/domain"
)

const (
	heuristicKeywordPool  = 10
	heuristicClusterTitle = "Key Themes"
	insufficientContent   = "Insufficient content detected; request more detailed inputs."
)

// HeuristicAnalyzer derives a single keyword-frequency topic cluster and
// content gaps without calling any external model.
type HeuristicAnalyzer struct{}

func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

func (a *HeuristicAnalyzer) Analyze(insights *domain.DocInsights) domain.AnalysisReport {
	keywords := extractKeywords(flattenChunks(insights), heuristicKeywordPool)

	var summary string
	if len(insights.Summaries) > 0 {
		summary = insights.Summaries[0]
	}

	var clusters []domain.TopicCluster
	if len(keywords) > 0 {
		top := keywords
		if len(top) > 5 {
			top = top[:5]
		}
		clusters = []domain.TopicCluster{{
			Title:    heuristicClusterTitle,
			Keywords: top,
			Summary:  summary,
		}}
	}

	return domain.AnalysisReport{
		NarrativeSummary: summary,
		TopicClusters:    clusters,
		Gaps:             a.gaps(insights, keywords),
	}
}

// gaps passes explicit gaps through; otherwise a single synthesized gap
// flags the case where no keywords were extractable at all.
func (a *HeuristicAnalyzer) gaps(insights *domain.DocInsights, keywords []string) []string {
	if len(insights.Gaps) > 0 {
		return insights.Gaps
	}
	if len(keywords) == 0 {
		return []string{insufficientContent}
	}
	return nil
}
