package domain

import "time"

// RenderedPrompt is a concrete system/user prompt pair produced by the
// prompt template service. Metadata carries at least mode, category and
// language.
type RenderedPrompt struct {
	System   string
	User     string
	Metadata map[string]string
}

// SlideBlock is one placeholder/text pair in the final narrative output.
type SlideBlock struct {
	PlaceholderID string `json:"placeholder_id"`
	Text          string `json:"text"`
}

// SlideDeck is the ordered slide content of one story. It is never empty:
// a deck with no content carries one placeholder slide.
type SlideDeck struct {
	TemplateKey  string       `json:"template_key"`
	LanguageCode string       `json:"language_code,omitempty"`
	Slides       []SlideBlock `json:"slides"`
}

// NarrativeResponse is the polymorphic result of a model client. The
// concrete variants are CuriousNarrative and NewsNarrative.
type NarrativeResponse interface {
	NarrativeMode() Mode
	Deck() SlideDeck
	Raw() string
}

// CuriousNarrative is the explainability-heavy variant.
type CuriousNarrative struct {
	Mode                Mode
	SlideDeck           SlideDeck
	RawOutput           string
	ExplainabilityNotes []string
	ReasoningTrace      string
}

func (n CuriousNarrative) NarrativeMode() Mode { return n.Mode }
func (n CuriousNarrative) Deck() SlideDeck     { return n.SlideDeck }
func (n CuriousNarrative) Raw() string         { return n.RawOutput }

// NewsNarrative is the terse headline/bulletin variant.
type NewsNarrative struct {
	Mode         Mode
	SlideDeck    SlideDeck
	RawOutput    string
	Headlines    []string
	BulletPoints []string
}

func (n NewsNarrative) NarrativeMode() Mode { return n.Mode }
func (n NewsNarrative) Deck() SlideDeck     { return n.SlideDeck }
func (n NewsNarrative) Raw() string         { return n.RawOutput }

// StoryRecord is the persisted form of one generated narrative.
type StoryRecord struct {
	ID           string       `json:"id"`
	Mode         Mode         `json:"mode"`
	TemplateKey  string       `json:"template_key"`
	LanguageCode string       `json:"language_code,omitempty"`
	Category     string       `json:"category,omitempty"`
	Slides       []SlideBlock `json:"slides"`
	Headlines    []string     `json:"headlines,omitempty"`
	RawOutput    string       `json:"raw_output,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
