package bootstrap

import (
	"context"
	"fmt"

	"github.com/storyweave/narrative-backend/internal/config"
	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
	"github.com/storyweave/narrative-backend/internal/core/usecase"
	"github.com/storyweave/narrative-backend/internal/infrastructure/chunking"
	"github.com/storyweave/narrative-backend/internal/infrastructure/langdetect"
	"github.com/storyweave/narrative-backend/internal/infrastructure/llm/ollama"
	"github.com/storyweave/narrative-backend/internal/infrastructure/ocr/htmltext"
	"github.com/storyweave/narrative-backend/internal/infrastructure/ocr/pdftext"
	"github.com/storyweave/narrative-backend/internal/infrastructure/ocr/plaintext"
	"github.com/storyweave/narrative-backend/internal/infrastructure/ocr/spreadsheet"
	"github.com/storyweave/narrative-backend/internal/infrastructure/parser"
	"github.com/storyweave/narrative-backend/internal/infrastructure/queue/nats"
	"github.com/storyweave/narrative-backend/internal/infrastructure/repository/postgres"
	"github.com/storyweave/narrative-backend/internal/infrastructure/resilience"
	"github.com/storyweave/narrative-backend/internal/infrastructure/storage/localfs"
	"github.com/storyweave/narrative-backend/internal/observability/metrics"
	"github.com/storyweave/narrative-backend/internal/prompts"
)

const serviceName = "story-worker"

// App wires the full pipeline for the worker process.
type App struct {
	Config config.Config

	Queue      ports.MessageQueue
	Normalizer *usecase.IntakeNormalizer
	Generator  ports.StoryGenerator
	Metrics    *metrics.PipelineMetrics

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewStoryRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	queueExecutor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSJobsSubject, cfg.NATSEventsSubject, nats.Options{
		ResilienceExecutor: queueExecutor,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	llmExecutor := resilience.NewExecutor(resilience.DefaultConfig())
	curiousModel := ollama.NewWithOptions(cfg.OllamaURL, cfg.OllamaCuriousModel, ollama.Options{
		RequestsPerSecond:  cfg.OllamaRatePerSec,
		ResilienceExecutor: llmExecutor,
	})
	newsModel := ollama.NewWithOptions(cfg.OllamaURL, cfg.OllamaNewsModel, ollama.Options{
		RequestsPerSecond:  cfg.OllamaRatePerSec,
		ResilienceExecutor: llmExecutor,
	})

	router, err := usecase.NewModelRouter(map[domain.Mode]ports.ModelClient{
		domain.ModeCurious: usecase.NewCuriousModelClient(curiousModel, ""),
		domain.ModeNews:    usecase.NewNewsModelClient(newsModel, ""),
	})
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("init model router: %w", err)
	}

	analysis, err := usecase.NewCompositeAnalysisFacade(
		usecase.NewHeuristicAnalyzer(),
		usecase.NewPromptRecommendationAnalyzer(""),
	)
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("init analysis facade: %w", err)
	}

	pipelineMetrics := metrics.NewPipelineMetrics(serviceName)

	chunker := chunking.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	// Registration order is adapter priority: first match wins.
	ocrAdapters := []ports.OCRAdapter{
		plaintext.New(storage),
		pdftext.New(storage),
		spreadsheet.New(storage),
		htmltext.New(storage),
	}
	parsers := []ports.ParserAdapter{
		parser.NewParagraphParser(chunker),
		parser.NewTabularParser(),
	}
	docintel := usecase.NewDocIntelPipeline(ocrAdapters, parsers, func(_, reason string) {
		pipelineMetrics.AttachmentSkipped(serviceName, reason)
	})

	generator := usecase.NewStoryGenerationUseCase(
		usecase.NewLanguageService(langdetect.New(), cfg.DefaultLanguage),
		usecase.NewAggregator(""),
		docintel,
		analysis,
		usecase.NewPromptSelectionController(prompts.DefaultRegistry()),
		router,
		repo,
		queue,
	)

	return &App{
		Config: cfg,

		Queue:      queue,
		Normalizer: usecase.NewIntakeNormalizer(domain.Mode(cfg.DefaultMode)),
		Generator:  generator,
		Metrics:    pipelineMetrics,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
