package domain

// TopicCluster is a named grouping of keywords representing one theme.
// The title is the merge key and must be unique within a report.
type TopicCluster struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

// AnalysisReport is the merged output of all analyzer strategies.
type AnalysisReport struct {
	NarrativeSummary   string            `json:"narrative_summary,omitempty"`
	TopicClusters      []TopicCluster    `json:"topic_clusters,omitempty"`
	RecommendedPrompts []string          `json:"recommended_prompts,omitempty"`
	Gaps               []string          `json:"gaps,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}
