package domain

// OCRExtraction is the transient result of running one OCR adapter over
// one attachment. It is consumed immediately by parser selection.
type OCRExtraction struct {
	Attachment AttachmentDescriptor
	Text       string
	Language   string
	Metadata   map[string]string
}

// SemanticChunk is a unit of extracted text with provenance. Chunk order
// is significant: it drives "most relevant N" sampling downstream.
type SemanticChunk struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	SourceID string            `json:"source_id,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Entity is a named entity attributed to a chunk of source content.
type Entity struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence,omitempty"`
}

// ParserResult is a parser adapter's structured view of one extraction.
type ParserResult struct {
	Chunks   []SemanticChunk
	Entities []Entity
	Summary  string
}

// EntityMap groups entities by type. Types and entities within a type keep
// first-seen order; Add and Merge append rather than overwrite.
type EntityMap struct {
	types  []string
	byType map[string][]Entity
}

func NewEntityMap() *EntityMap {
	return &EntityMap{byType: make(map[string][]Entity)}
}

func (m *EntityMap) Add(entity Entity) {
	if m.byType == nil {
		m.byType = make(map[string][]Entity)
	}
	if _, ok := m.byType[entity.Type]; !ok {
		m.types = append(m.types, entity.Type)
	}
	m.byType[entity.Type] = append(m.byType[entity.Type], entity)
}

func (m *EntityMap) Merge(entities []Entity) {
	for _, entity := range entities {
		m.Add(entity)
	}
}

// Types returns entity type keys in first-seen order.
func (m *EntityMap) Types() []string {
	return m.types
}

func (m *EntityMap) Get(entityType string) []Entity {
	if m.byType == nil {
		return nil
	}
	return m.byType[entityType]
}

// All flattens the map in type order, then per-type insertion order.
func (m *EntityMap) All() []Entity {
	var out []Entity
	for _, entityType := range m.types {
		out = append(out, m.byType[entityType]...)
	}
	return out
}

func (m *EntityMap) IsEmpty() bool {
	return len(m.types) == 0
}

// DocInsights accumulates everything document intelligence extracted from
// one job. It is written by a single pipeline run and read-only afterwards.
type DocInsights struct {
	SemanticChunks []SemanticChunk
	Entities       *EntityMap
	Summaries      []string
	Gaps           []string
}

func NewDocInsights() *DocInsights {
	return &DocInsights{Entities: NewEntityMap()}
}
