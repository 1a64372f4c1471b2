package htmltext

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// Adapter extracts visible text from HTML attachments, skipping script
// and style subtrees.
type Adapter struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Adapter {
	return &Adapter{storage: storage}
}

func (a *Adapter) CanProcess(attachment domain.AttachmentDescriptor) bool {
	if attachment.MediaType == "text/html" {
		return true
	}
	switch strings.ToLower(path.Ext(attachment.URI)) {
	case ".html", ".htm", ".xhtml":
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

	root, err := html.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	described := attachment
	described.MediaType = "text/html"

	return &domain.OCRExtraction{
		Attachment: described,
		Text:       collectText(root),
		Metadata:   map[string]string{"adapter": "htmltext", "format": "prose"},
	}, nil
}

func collectText(root *html.Node) string {
	var blocks []string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if node.Type == html.TextNode {
			if text := strings.Join(strings.Fields(node.Data), " "); text != "" {
				blocks = append(blocks, text)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return strings.Join(blocks, "\n")
}
