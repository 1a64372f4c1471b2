package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

type StoryRepository struct {
	db *sql.DB
}

func NewStoryRepository(db *sql.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *StoryRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across concurrent worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS stories (
	id TEXT PRIMARY KEY,
	mode TEXT NOT NULL,
	template_key TEXT NOT NULL,
	language_code TEXT,
	category TEXT,
	slides JSONB NOT NULL DEFAULT '[]'::jsonb,
	headlines JSONB NOT NULL DEFAULT '[]'::jsonb,
	raw_output TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stories_mode ON stories(mode);
CREATE INDEX IF NOT EXISTS idx_stories_created_at ON stories(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *StoryRepository) Save(ctx context.Context, record *domain.StoryRecord) error {
	slidesJSON, err := json.Marshal(record.Slides)
	if err != nil {
		return fmt.Errorf("marshal slides: %w", err)
	}
	headlines := record.Headlines
	if headlines == nil {
		headlines = []string{}
	}
	headlinesJSON, err := json.Marshal(headlines)
	if err != nil {
		return fmt.Errorf("marshal headlines: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO stories (
	id, mode, template_key, language_code, category, slides, headlines, raw_output, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
`,
		record.ID, string(record.Mode), record.TemplateKey, record.LanguageCode, record.Category,
		slidesJSON, headlinesJSON, record.RawOutput, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert story: %w", err)
	}
	return nil
}

func (r *StoryRepository) Get(ctx context.Context, id string) (*domain.StoryRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, mode, template_key, language_code, category, slides, headlines, raw_output, created_at, updated_at
FROM stories
WHERE id = $1
`, id)

	var record domain.StoryRecord
	var mode string
	var slidesRaw, headlinesRaw []byte

	err := row.Scan(
		&record.ID, &mode, &record.TemplateKey, &record.LanguageCode, &record.Category,
		&slidesRaw, &headlinesRaw, &record.RawOutput, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrStoryNotFound, "get story", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("select story: %w", err)
	}

	record.Mode = domain.Mode(mode)
	if err := json.Unmarshal(slidesRaw, &record.Slides); err != nil {
		return nil, fmt.Errorf("unmarshal slides: %w", err)
	}
	if err := json.Unmarshal(headlinesRaw, &record.Headlines); err != nil {
		return nil, fmt.Errorf("unmarshal headlines: %w", err)
	}
	return &record, nil
}
