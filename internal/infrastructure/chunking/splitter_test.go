package chunking

import (
	"reflect"
	"strings"
	"testing"
)

func TestParagraphsSplitsOnBlankLines(t *testing.T) {
	got := Paragraphs("first block\n\n  second block \n\n\n\nthird")
	want := []string{"first block", "second block", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected paragraphs: %v", got)
	}
}

func TestParagraphsEmptyInput(t *testing.T) {
	if got := Paragraphs("  \n\n \n"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestSplitKeepsShortParagraphsWhole(t *testing.T) {
	s := NewSplitter(100, 10)
	got := s.Split("short one\n\nshort two")
	want := []string{"short one", "short two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected chunks: %v", got)
	}
}

func TestSplitWindowsOversizedParagraph(t *testing.T) {
	s := NewSplitter(10, 2)
	text := strings.Repeat("abcde", 5) // 25 runes, one paragraph

	got := s.Split(text)
	if len(got) < 3 {
		t.Fatalf("expected windowed chunks, got %v", got)
	}
	for _, chunk := range got {
		if len([]rune(chunk)) > 10 {
			t.Fatalf("chunk exceeds size: %q", chunk)
		}
	}
	// Overlap: the second window starts 8 runes in, repeating the last 2.
	if !strings.HasPrefix(got[1], text[8:10]) {
		t.Fatalf("expected overlap continuation, got %q", got[1])
	}
}

func TestNewSplitterNormalizesArguments(t *testing.T) {
	s := NewSplitter(0, -5)
	if s.ChunkSize != 900 || s.Overlap != 0 {
		t.Fatalf("unexpected defaults: %+v", s)
	}

	s = NewSplitter(100, 200)
	if s.Overlap != 25 {
		t.Fatalf("oversized overlap must clamp to quarter, got %d", s.Overlap)
	}
}
