package usecase

import (
	"sort"
	"strings"
	"unicode"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

const tokenPunctuation = ".,!?()[]{}\"'"

func flattenChunks(insights *domain.DocInsights) string {
	var lines []string
	for _, chunk := range insights.SemanticChunks {
		if chunk.Text != "" {
			lines = append(lines, chunk.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// extractKeywords tokenizes on whitespace, strips surrounding punctuation,
// lower-cases, keeps alphabetic tokens longer than three characters, and
// ranks by frequency with ties broken by first-seen order.
func extractKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int

	for _, token := range strings.Fields(text) {
		token = strings.ToLower(strings.Trim(token, tokenPunctuation))
		if !isKeywordToken(token) {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}

	ranked := make([]string, 0, len(counts))
	for token := range counts {
		ranked = append(ranked, token)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func isKeywordToken(token string) bool {
	runes := []rune(token)
	if len(runes) <= 3 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func truncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
