package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// StoryGenerationUseCase runs the whole content pipeline for one payload:
// language detection, aggregation, document intelligence, analysis,
// prompt selection, routing, narrative generation, persistence, and the
// story-generated event. Each stage consumes only the previous stage's
// output; no stage reaches backward.
type StoryGenerationUseCase struct {
	language   ports.LanguageService
	aggregator ports.IngestionAggregator
	docintel   ports.DocumentIntelligence
	analysis   ports.AnalysisFacade
	selector   ports.PromptSelector
	router     ports.ModelRouter
	repo       ports.StoryRepository
	queue      ports.MessageQueue
}

func NewStoryGenerationUseCase(
	language ports.LanguageService,
	aggregator ports.IngestionAggregator,
	docintel ports.DocumentIntelligence,
	analysis ports.AnalysisFacade,
	selector ports.PromptSelector,
	router ports.ModelRouter,
	repo ports.StoryRepository,
	queue ports.MessageQueue,
) *StoryGenerationUseCase {
	return &StoryGenerationUseCase{
		language:   language,
		aggregator: aggregator,
		docintel:   docintel,
		analysis:   analysis,
		selector:   selector,
		router:     router,
		repo:       repo,
		queue:      queue,
	}
}

func (uc *StoryGenerationUseCase) GenerateStory(ctx context.Context, payload domain.IntakePayload) (*domain.StoryRecord, error) {
	languageMeta := uc.language.Detect(payload)
	job := uc.aggregator.Aggregate(payload, languageMeta)

	// Document intelligence and analysis degrade to best-effort results
	// rather than failing the request.
	insights := uc.docintel.Run(ctx, job)
	report := uc.analysis.Analyze(insights)

	rendered, err := uc.selector.Select(payload.Mode, payload.Category, languageMeta.LanguageCode, report, job.FocusKeywords)
	if err != nil {
		return nil, fmt.Errorf("select prompt: %w", err)
	}

	client, err := uc.router.Route(payload.Mode)
	if err != nil {
		return nil, fmt.Errorf("route model client: %w", err)
	}

	narrative, err := client.Generate(ctx, rendered, insights)
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	record := buildStoryRecord(narrative, payload.Category)
	if err := uc.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save story: %w", err)
	}
	if err := uc.queue.PublishStoryGenerated(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("publish story event: %w", err)
	}
	return record, nil
}

func buildStoryRecord(narrative domain.NarrativeResponse, category string) *domain.StoryRecord {
	deck := narrative.Deck()
	now := time.Now().UTC()

	record := &domain.StoryRecord{
		ID:           uuid.NewString(),
		Mode:         narrative.NarrativeMode(),
		TemplateKey:  deck.TemplateKey,
		LanguageCode: deck.LanguageCode,
		Category:     category,
		Slides:       deck.Slides,
		RawOutput:    narrative.Raw(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if news, ok := narrative.(domain.NewsNarrative); ok {
		record.Headlines = news.Headlines
	}
	return record
}
