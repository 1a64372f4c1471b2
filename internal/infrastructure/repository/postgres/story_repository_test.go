package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*StoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &StoryRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestSaveInsertsSerializedRecord(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	record := &domain.StoryRecord{
		ID:           "story-1",
		Mode:         domain.ModeNews,
		TemplateKey:  "news_default",
		LanguageCode: "en",
		Category:     "News",
		Slides:       []domain.SlideBlock{{PlaceholderID: "section_1", Text: "Headline"}},
		Headlines:    []string{"Headline"},
		RawOutput:    "Headline",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO stories").
		WithArgs(
			"story-1", "news", "news_default", "en", "News",
			[]byte(`[{"placeholder_id":"section_1","text":"Headline"}]`),
			[]byte(`["Headline"]`),
			"Headline", now, now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveNilHeadlinesSerializeAsEmptyArray(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO stories").
		WithArgs(
			"story-2", "curious", "curious_default", "en", "",
			sqlmock.AnyArg(), []byte(`[]`), "", now, now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &domain.StoryRecord{
		ID:           "story-2",
		Mode:         domain.ModeCurious,
		TemplateKey:  "curious_default",
		LanguageCode: "en",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetReturnsDeserializedRecord(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "mode", "template_key", "language_code", "category",
		"slides", "headlines", "raw_output", "created_at", "updated_at",
	}).AddRow(
		"story-1", "news", "news_default", "en", "News",
		[]byte(`[{"placeholder_id":"section_1","text":"Headline"}]`),
		[]byte(`["Headline"]`),
		"Headline", now, now,
	)

	mock.ExpectQuery("SELECT id, mode, template_key").
		WithArgs("story-1").
		WillReturnRows(rows)

	record, err := repo.Get(context.Background(), "story-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record.Mode != domain.ModeNews || record.TemplateKey != "news_default" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if len(record.Slides) != 1 || record.Slides[0].Text != "Headline" {
		t.Fatalf("slides not deserialized: %+v", record.Slides)
	}
	if len(record.Headlines) != 1 {
		t.Fatalf("headlines not deserialized: %+v", record.Headlines)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, mode, template_key").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
