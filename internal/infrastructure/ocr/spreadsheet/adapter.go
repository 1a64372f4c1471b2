package spreadsheet

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// Adapter extracts cell text from xlsx workbooks. Rows are rendered one
// per line with cells joined by " | "; each sheet opens with a
// "Sheet: name" header line the tabular parser keys on.
type Adapter struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Adapter {
	return &Adapter{storage: storage}
}

func (a *Adapter) CanProcess(attachment domain.AttachmentDescriptor) bool {
	if attachment.MediaType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		return true
	}
	switch strings.ToLower(path.Ext(attachment.URI)) {
	case ".xlsx", ".xlsm":
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

	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	var lines []string
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		sheetLines := renderRows(rows)
		if len(sheetLines) == 0 {
			continue
		}
		lines = append(lines, "Sheet: "+sheet)
		lines = append(lines, sheetLines...)
	}

	described := attachment
	described.MediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	return &domain.OCRExtraction{
		Attachment: described,
		Text:       strings.Join(lines, "\n"),
		Metadata:   map[string]string{"adapter": "spreadsheet", "format": "tabular"},
	}, nil
}

func renderRows(rows [][]string) []string {
	var lines []string
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if trimmed := strings.TrimSpace(cell); trimmed != "" {
				cells = append(cells, trimmed)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " | "))
		}
	}
	return lines
}
