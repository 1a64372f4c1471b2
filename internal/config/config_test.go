package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NATSJobsSubject != "stories.jobs" || cfg.NATSEventsSubject != "stories.generated" {
		t.Fatalf("unexpected subjects: %+v", cfg)
	}
	if cfg.ChunkSize != 900 || cfg.ChunkOverlap != 150 {
		t.Fatalf("unexpected chunking defaults: %+v", cfg)
	}
	if cfg.DefaultMode != "curious" || cfg.DefaultLanguage != "en" {
		t.Fatalf("unexpected mode defaults: %+v", cfg)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("NATS_JOBS_SUBJECT", "stories.jobs.test")
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("OLLAMA_RATE_PER_SEC", "2.5")
	t.Setenv("JOB_TIMEOUT_SECONDS", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NATSJobsSubject != "stories.jobs.test" {
		t.Fatalf("env string not applied: %q", cfg.NATSJobsSubject)
	}
	if cfg.ChunkSize != 500 || cfg.JobTimeoutSeconds != 45 {
		t.Fatalf("env ints not applied: %+v", cfg)
	}
	if cfg.OllamaRatePerSec != 2.5 {
		t.Fatalf("env float not applied: %f", cfg.OllamaRatePerSec)
	}
}

func TestLoadInvalidNumbersKeepPriorValue(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "not-a-number")
	t.Setenv("OLLAMA_RATE_PER_SEC", "fast")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 900 || cfg.OllamaRatePerSec != 0 {
		t.Fatalf("invalid values must not override: %+v", cfg)
	}
}

func TestLoadSettingsFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte("log_level: debug\nchunk_size: 300\nnats_url: nats://file:4222\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("SETTINGS_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.ChunkSize != 300 || cfg.NATSURL != "nats://file:4222" {
		t.Fatalf("file overlay not applied: %+v", cfg)
	}
	// Untouched keys keep defaults.
	if cfg.DefaultMode != "curious" {
		t.Fatalf("unexpected default mode: %q", cfg.DefaultMode)
	}
}

func TestLoadEnvWinsOverSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("chunk_size: 300\n"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("SETTINGS_FILE", path)
	t.Setenv("CHUNK_SIZE", "700")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 700 {
		t.Fatalf("env must win over file, got %d", cfg.ChunkSize)
	}
}

func TestLoadBrokenSettingsFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n\t broken"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("SETTINGS_FILE", path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}

	t.Setenv("SETTINGS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected read error")
	}
}
