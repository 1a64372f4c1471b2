package domain

// Mode selects the narrative style and, through it, the prompt template
// and model client used for a story.
type Mode string

const (
	ModeCurious Mode = "curious"
	ModeNews    Mode = "news"
)

// IntakePayload is the normalized user request. It is built once by the
// intake normalizer and never mutated afterwards.
type IntakePayload struct {
	TextPrompt     string   `json:"text_prompt,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	URLs           []string `json:"urls,omitempty"`
	Attachments    []string `json:"attachments,omitempty"`
	PromptKeywords []string `json:"prompt_keywords,omitempty"`
	Mode           string   `json:"mode,omitempty"`
	TemplateKey    string   `json:"template_key,omitempty"`
	SlideCount     int      `json:"slide_count,omitempty"`
	Category       string   `json:"category,omitempty"`
	ImageSource    string   `json:"image_source,omitempty"`
	VoiceEngine    string   `json:"voice_engine,omitempty"`
}

// LanguageMetadata is produced once per request by language detection.
type LanguageMetadata struct {
	LanguageCode      string  `json:"language_code"`
	Confidence        float64 `json:"confidence"`
	SourceTextPreview string  `json:"source_text_preview,omitempty"`
}

// AttachmentDescriptor identifies one attachment within a job. IDs are
// sequential ("attachment-1", "attachment-2", ...) and stable per request.
type AttachmentDescriptor struct {
	ID        string            `json:"id"`
	URI       string            `json:"uri"`
	MediaType string            `json:"media_type,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// StructuredJobRequest is the aggregated, pipeline-ready request built
// exactly once from an IntakePayload and its LanguageMetadata.
type StructuredJobRequest struct {
	TextInput     string                 `json:"text_input,omitempty"`
	URLList       []string               `json:"url_list,omitempty"`
	Attachments   []AttachmentDescriptor `json:"attachments,omitempty"`
	FocusKeywords []string               `json:"focus_keywords,omitempty"`
}
