package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storyweave/narrative-backend/internal/bootstrap"
	"github.com/storyweave/narrative-backend/internal/config"
	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/observability/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger("story-worker", cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	go serveMetrics(ctx, logger, cfg.WorkerMetricsPort, app.Metrics.Handler())

	jobTimeout := time.Duration(cfg.JobTimeoutSeconds) * time.Second
	if jobTimeout <= 0 {
		jobTimeout = 5 * time.Minute
	}

	logger.Info("worker_started", "jobs_subject", cfg.NATSJobsSubject, "events_subject", cfg.NATSEventsSubject)
	err = app.Queue.SubscribeStoryJobs(ctx, func(handlerCtx context.Context, data []byte) error {
		jobCtx, cancel := context.WithTimeout(handlerCtx, jobTimeout)
		defer cancel()
		return handleJob(jobCtx, app, logger, data)
	})
	if err != nil {
		logger.Error("worker_subscribe_failed", "error", err)
		os.Exit(1)
	}
}

func handleJob(ctx context.Context, app *bootstrap.App, logger *slog.Logger, data []byte) error {
	var raw domain.IntakePayload
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Error("job_decode_failed", "error", err)
		// Malformed jobs are not retryable; drop them.
		return nil
	}

	payload, err := app.Normalizer.Normalize(raw)
	if err != nil {
		logger.Error("job_rejected", "error", err)
		return nil
	}

	app.Metrics.StartStory()
	started := time.Now()

	record, err := app.Generator.GenerateStory(ctx, payload)

	app.Metrics.FinishStory("story-worker", payload.Mode, time.Since(started), err)
	if err != nil {
		logger.Error("story_generation_failed", "mode", payload.Mode, "error", err)
		return err
	}

	logger.Info("story_generated",
		"story_id", record.ID,
		"mode", string(record.Mode),
		"language", record.LanguageCode,
		"slides", len(record.Slides),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

func serveMetrics(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics_listening", "port", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics_server_failed", "error", err)
	}
}
