package usecase

import (
	"errors"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// CompositeAnalysisFacade folds an ordered list of analyzer strategies
// over the insight set, merging each partial report into the running
// result. The merge is not commutative (summary and metadata precedence
// depend on strategy order) but is associative for a fixed order, so any
// number of strategies can be folded safely.
type CompositeAnalysisFacade struct {
	strategies []ports.AnalyzerStrategy
}

func NewCompositeAnalysisFacade(strategies ...ports.AnalyzerStrategy) (*CompositeAnalysisFacade, error) {
	if len(strategies) == 0 {
		return nil, errors.New("analysis facade requires at least one strategy")
	}
	return &CompositeAnalysisFacade{strategies: strategies}, nil
}

func (f *CompositeAnalysisFacade) Analyze(insights *domain.DocInsights) domain.AnalysisReport {
	var merged domain.AnalysisReport
	for _, strategy := range f.strategies {
		merged = mergeReports(merged, strategy.Analyze(insights))
	}
	return merged
}

// mergeReports is an explicit per-field reducer. Precedence rules differ
// per field, so a generic deep-merge cannot serve here:
//   - narrative summary: first non-empty wins (base before addition)
//   - topic clusters: merged by title, colliding keyword lists unioned
//   - prompts and gaps: concatenated, first-seen de-duplicated
//   - metadata: later keys override earlier ones
func mergeReports(base, addition domain.AnalysisReport) domain.AnalysisReport {
	summary := base.NarrativeSummary
	if summary == "" {
		summary = addition.NarrativeSummary
	}

	return domain.AnalysisReport{
		NarrativeSummary:   summary,
		TopicClusters:      mergeClusters(base.TopicClusters, addition.TopicClusters),
		RecommendedPrompts: appendUnique(base.RecommendedPrompts, addition.RecommendedPrompts),
		Gaps:               appendUnique(base.Gaps, addition.Gaps),
		Metadata:           overlayMetadata(base.Metadata, addition.Metadata),
	}
}

// mergeClusters keys on cluster title. Colliding titles union their
// keyword lists order-preservingly and take the later non-empty summary;
// new titles are appended after existing ones.
func mergeClusters(existing, incoming []domain.TopicCluster) []domain.TopicCluster {
	if len(existing) == 0 {
		return incoming
	}

	merged := make([]domain.TopicCluster, len(existing))
	copy(merged, existing)
	byTitle := make(map[string]int, len(merged))
	for idx, cluster := range merged {
		byTitle[cluster.Title] = idx
	}

	for _, cluster := range incoming {
		idx, ok := byTitle[cluster.Title]
		if !ok {
			byTitle[cluster.Title] = len(merged)
			merged = append(merged, cluster)
			continue
		}
		merged[idx].Keywords = appendUnique(merged[idx].Keywords, cluster.Keywords)
		if cluster.Summary != "" {
			merged[idx].Summary = cluster.Summary
		}
	}
	return merged
}

func appendUnique(base, addition []string) []string {
	if len(base) == 0 && len(addition) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(base)+len(addition))
	out := make([]string, 0, len(base)+len(addition))
	for _, value := range base {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	for _, value := range addition {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func overlayMetadata(base, addition map[string]string) map[string]string {
	if len(base) == 0 && len(addition) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(addition))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range addition {
		out[key] = value
	}
	return out
}
