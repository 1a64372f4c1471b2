package usecase

import (
	"reflect"
	"testing"
)

func TestExtractKeywordsRanksByFrequency(t *testing.T) {
	text := "rocket rocket rocket orbit orbit launch"
	got := extractKeywords(text, 10)
	want := []string{"rocket", "orbit", "launch"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected ranking: %v, want %v", got, want)
	}
}

func TestExtractKeywordsTiesBreakByFirstSeen(t *testing.T) {
	text := "alpha beta alpha beta gamma"
	got := extractKeywords(text, 10)
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tiebreak order: %v, want %v", got, want)
	}
}

func TestExtractKeywordsStripsPunctuationAndLowercases(t *testing.T) {
	text := "Rocket! (rocket) \"ROCKET\" orbit."
	got := extractKeywords(text, 10)
	want := []string{"rocket", "orbit"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %v, want %v", got, want)
	}
}

func TestExtractKeywordsFiltersShortAndNonAlphabetic(t *testing.T) {
	text := "the and car go2market 1234 atlas"
	got := extractKeywords(text, 10)
	want := []string{"atlas"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %v, want %v", got, want)
	}
}

func TestExtractKeywordsHonorsLimit(t *testing.T) {
	text := "alpha alpha beta beta gamma delta"
	got := extractKeywords(text, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
}

func TestTruncateRunesKeepsShortText(t *testing.T) {
	if got := truncateRunes("short", 120); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	long := make([]rune, 0, 130)
	for i := 0; i < 130; i++ {
		long = append(long, 'ф')
	}
	got := truncateRunes(string(long), 120)
	if len([]rune(got)) != 120 {
		t.Fatalf("expected 120 runes, got %d", len([]rune(got)))
	}
}
