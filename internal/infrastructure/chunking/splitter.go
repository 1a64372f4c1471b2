package chunking

import "strings"

// Splitter cuts text into chunks, preferring paragraph boundaries and
// falling back to overlapping rune windows for oversized paragraphs.
type Splitter struct {
	ChunkSize int
	Overlap   int
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 900
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Splitter{ChunkSize: chunkSize, Overlap: overlap}
}

func (s *Splitter) Split(text string) []string {
	var out []string
	for _, paragraph := range Paragraphs(text) {
		if len([]rune(paragraph)) <= s.ChunkSize {
			out = append(out, paragraph)
			continue
		}
		out = append(out, s.window(paragraph)...)
	}
	return out
}

// Paragraphs splits on blank-line boundaries into trimmed non-empty
// blocks, preserving order.
func Paragraphs(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

func (s *Splitter) window(paragraph string) []string {
	runes := []rune(paragraph)
	step := s.ChunkSize - s.Overlap
	if step <= 0 {
		step = s.ChunkSize
	}

	out := make([]string, 0, len(runes)/step+1)
	for start := 0; start < len(runes); start += step {
		end := start + s.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			out = append(out, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return out
}
