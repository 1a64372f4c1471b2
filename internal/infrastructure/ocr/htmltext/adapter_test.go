package htmltext

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

type storageFake struct {
	content string
}

func (f *storageFake) Save(context.Context, string, io.Reader) error { return nil }

func (f *storageFake) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func TestCanProcessMatchesMediaTypeAndExtension(t *testing.T) {
	a := New(&storageFake{})

	cases := []struct {
		attachment domain.AttachmentDescriptor
		want       bool
	}{
		{domain.AttachmentDescriptor{MediaType: "text/html"}, true},
		{domain.AttachmentDescriptor{URI: "page.HTML"}, true},
		{domain.AttachmentDescriptor{URI: "page.htm"}, true},
		{domain.AttachmentDescriptor{URI: "doc.pdf"}, false},
		{domain.AttachmentDescriptor{MediaType: "text/plain", URI: "note.txt"}, false},
	}
	for _, tc := range cases {
		if got := a.CanProcess(tc.attachment); got != tc.want {
			t.Fatalf("CanProcess(%+v) = %v, want %v", tc.attachment, got, tc.want)
		}
	}
}

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	page := `<html><head><style>body{color:red}</style><script>var x=1;</script></head>` +
		`<body><h1>Launch   Report</h1><p>All systems nominal.</p><noscript>enable js</noscript></body></html>`
	a := New(&storageFake{content: page})

	extraction, err := a.Extract(context.Background(), domain.AttachmentDescriptor{ID: "attachment-1", URI: "report.html"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if extraction.Metadata["format"] != "prose" || extraction.Metadata["adapter"] != "htmltext" {
		t.Fatalf("unexpected metadata: %v", extraction.Metadata)
	}
	if !strings.Contains(extraction.Text, "Launch Report") {
		t.Fatalf("whitespace not collapsed: %q", extraction.Text)
	}
	if !strings.Contains(extraction.Text, "All systems nominal.") {
		t.Fatalf("body text missing: %q", extraction.Text)
	}
	for _, hidden := range []string{"color:red", "var x=1", "enable js"} {
		if strings.Contains(extraction.Text, hidden) {
			t.Fatalf("hidden subtree leaked: %q", extraction.Text)
		}
	}
	if extraction.Attachment.MediaType != "text/html" {
		t.Fatalf("media type not normalized: %q", extraction.Attachment.MediaType)
	}
}
