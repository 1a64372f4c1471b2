package usecase

import (
	"reflect"
	"testing"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

func insightsWithText(text string) *domain.DocInsights {
	insights := domain.NewDocInsights()
	insights.SemanticChunks = []domain.SemanticChunk{{ID: "payload:text", Text: text}}
	return insights
}

func TestHeuristicAnalyzerBuildsKeyThemesCluster(t *testing.T) {
	insights := insightsWithText("rocket rocket orbit orbit launch landing telemetry")
	insights.Summaries = []string{"mission recap", "later summary"}

	report := NewHeuristicAnalyzer().Analyze(insights)

	if report.NarrativeSummary != "mission recap" {
		t.Fatalf("expected first summary, got %q", report.NarrativeSummary)
	}
	if len(report.TopicClusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(report.TopicClusters))
	}
	cluster := report.TopicClusters[0]
	if cluster.Title != "Key Themes" {
		t.Fatalf("unexpected cluster title: %q", cluster.Title)
	}
	if len(cluster.Keywords) > 5 {
		t.Fatalf("cluster keywords must be capped at 5, got %d", len(cluster.Keywords))
	}
	if cluster.Keywords[0] != "rocket" {
		t.Fatalf("expected most frequent keyword first, got %v", cluster.Keywords)
	}
	if report.Gaps != nil {
		t.Fatalf("expected no gaps when keywords exist, got %v", report.Gaps)
	}
}

func TestHeuristicAnalyzerFlagsInsufficientContent(t *testing.T) {
	report := NewHeuristicAnalyzer().Analyze(insightsWithText("a of 12"))

	if len(report.TopicClusters) != 0 {
		t.Fatalf("expected no clusters without keywords, got %v", report.TopicClusters)
	}
	want := []string{"Insufficient content detected; request more detailed inputs."}
	if !reflect.DeepEqual(report.Gaps, want) {
		t.Fatalf("unexpected gaps: %v", report.Gaps)
	}
}

func TestHeuristicAnalyzerPassesExplicitGapsThrough(t *testing.T) {
	insights := insightsWithText("")
	insights.Gaps = []string{"missing timeline"}

	report := NewHeuristicAnalyzer().Analyze(insights)
	if !reflect.DeepEqual(report.Gaps, []string{"missing timeline"}) {
		t.Fatalf("unexpected gaps: %v", report.Gaps)
	}
}
