package ports

import (
	"context"
	"io"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

// LanguageDetector identifies the primary language of aggregated text.
// Implementations must clamp confidence to [0,1].
type LanguageDetector interface {
	Detect(text string) (languageCode string, confidence float64)
}

// OCRAdapter converts one attachment into text. CanProcess is the
// selection predicate; adapters are registered in priority order and the
// first accepting adapter wins. A nil extraction means "no contribution".
type OCRAdapter interface {
	CanProcess(attachment domain.AttachmentDescriptor) bool
	Extract(ctx context.Context, attachment domain.AttachmentDescriptor) (*domain.OCRExtraction, error)
}

// ParserAdapter turns an OCR extraction into structured artifacts.
// Supports is the selection predicate, first match wins.
type ParserAdapter interface {
	Supports(extraction domain.OCRExtraction) bool
	Parse(extraction domain.OCRExtraction) domain.ParserResult
}

// LanguageModel is the minimal completion contract consumed by model
// clients. The returned text carries no structural guarantees.
type LanguageModel interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// StoryRepository persists and reads generated stories.
type StoryRepository interface {
	Save(ctx context.Context, record *domain.StoryRecord) error
	Get(ctx context.Context, id string) (*domain.StoryRecord, error)
}

// ObjectStorage reads attachment content by storage key.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue carries story jobs in and story-generated events out.
type MessageQueue interface {
	PublishStoryGenerated(ctx context.Context, storyID string) error
	SubscribeStoryJobs(ctx context.Context, handler func(context.Context, []byte) error) error
}
