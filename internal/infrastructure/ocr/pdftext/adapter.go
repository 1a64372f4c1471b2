package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// Adapter extracts embedded text from PDF attachments. Scanned PDFs
// without a text layer yield empty output and are skipped upstream.
type Adapter struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Adapter {
	return &Adapter{storage: storage}
}

func (a *Adapter) CanProcess(attachment domain.AttachmentDescriptor) bool {
	return attachment.MediaType == "application/pdf" ||
		strings.ToLower(path.Ext(attachment.URI)) == ".pdf"
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

	document, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	textReader, err := document.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	var builder strings.Builder
	if _, err := io.Copy(&builder, textReader); err != nil {
		return nil, fmt.Errorf("collect pdf text: %w", err)
	}

	described := attachment
	described.MediaType = "application/pdf"

	return &domain.OCRExtraction{
		Attachment: described,
		Text:       strings.TrimSpace(builder.String()),
		Metadata: map[string]string{
			"adapter": "pdftext",
			"format":  "prose",
			"pages":   fmt.Sprintf("%d", document.NumPage()),
		},
	}, nil
}
