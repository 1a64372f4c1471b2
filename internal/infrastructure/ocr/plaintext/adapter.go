package plaintext

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// Adapter extracts text from plain-text and markdown attachments.
type Adapter struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Adapter {
	return &Adapter{storage: storage}
}

func (a *Adapter) CanProcess(attachment domain.AttachmentDescriptor) bool {
	if strings.HasPrefix(attachment.MediaType, "text/") {
		return true
	}
	switch strings.ToLower(path.Ext(attachment.URI)) {
	case ".txt", ".text", ".md", ".markdown":
		return true
	}
	return false
}

func (a *Adapter) Extract(ctx context.Context, attachment domain.AttachmentDescriptor) (*domain.OCRExtraction, error) {
	reader, err := a.storage.Open(ctx, attachment.URI)
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("attachment %s is not valid utf-8 text", attachment.ID)
	}

	described := attachment
	described.MediaType = "text/plain"

	return &domain.OCRExtraction{
		Attachment: described,
		Text:       strings.TrimSpace(string(raw)),
		Metadata:   map[string]string{"adapter": "plaintext", "format": "prose"},
	}, nil
}
