package ports

import (
	"context"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

// LanguageService produces language metadata for one payload. It runs
// once per request; the metadata is immutable afterwards.
type LanguageService interface {
	Detect(payload domain.IntakePayload) domain.LanguageMetadata
}

// IngestionAggregator merges a normalized payload and language metadata
// into one pipeline-ready job request. Deterministic and total.
type IngestionAggregator interface {
	Aggregate(payload domain.IntakePayload, language domain.LanguageMetadata) domain.StructuredJobRequest
}

// DocumentIntelligence runs OCR and parser adapter chains over a job
// request and accumulates the resulting insights.
type DocumentIntelligence interface {
	Run(ctx context.Context, job domain.StructuredJobRequest) *domain.DocInsights
}

// AnalysisFacade folds analyzer strategies over the insight set.
type AnalysisFacade interface {
	Analyze(insights *domain.DocInsights) domain.AnalysisReport
}

// AnalyzerStrategy produces a partial report that the facade merges.
type AnalyzerStrategy interface {
	Analyze(insights *domain.DocInsights) domain.AnalysisReport
}

// PromptSelector turns an analysis report into a rendered prompt for the
// requested mode, category and language.
type PromptSelector interface {
	Select(mode, category, language string, analysis domain.AnalysisReport, keywords []string) (domain.RenderedPrompt, error)
}

// ModelClient turns a rendered prompt and the insight set into a
// mode-specific narrative.
type ModelClient interface {
	NarrativeMode() domain.Mode
	Generate(ctx context.Context, prompt domain.RenderedPrompt, insights *domain.DocInsights) (domain.NarrativeResponse, error)
}

// ModelRouter resolves the model client for a mode. The mode may be the
// enumerated value or a case-insensitive string.
type ModelRouter interface {
	Route(mode string) (ModelClient, error)
}

// StoryGenerator is the inbound contract for running the whole pipeline.
type StoryGenerator interface {
	GenerateStory(ctx context.Context, payload domain.IntakePayload) (*domain.StoryRecord, error)
}
