package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

// Template is a static prompt definition for one narrative mode. The user
// template carries {category}, {language}, {analysis} and {keywords}
// placeholders. An empty allow-list means any category is accepted.
type Template struct {
	System            string
	UserTemplate      string
	AllowedCategories []string
	Description       string
}

// TemplateInfo is the catalogue descriptor exposed for one mode.
type TemplateInfo struct {
	Mode              string
	Description       string
	AllowedCategories []string
	UserTemplate      string
}

func (t Template) allowsCategory(category string) bool {
	if len(t.AllowedCategories) == 0 {
		return true
	}
	for _, allowed := range t.AllowedCategories {
		if allowed == category {
			return true
		}
	}
	return false
}

func (t Template) render(mode, category, language, analysis string, keywords []string) (domain.RenderedPrompt, error) {
	if !t.allowsCategory(category) {
		return domain.RenderedPrompt{}, domain.WrapError(
			domain.ErrInvalidCategory,
			"render prompt",
			fmt.Errorf("category %q is not allowed for mode %q (allowed: %s)",
				category, mode, strings.Join(t.AllowedCategories, ", ")),
		)
	}

	user := strings.NewReplacer(
		"{category}", category,
		"{language}", language,
		"{analysis}", strings.TrimSpace(analysis),
		"{keywords}", joinKeywords(keywords),
	).Replace(t.UserTemplate)

	return domain.RenderedPrompt{
		System: t.System,
		User:   user,
		Metadata: map[string]string{
			"mode":     mode,
			"category": category,
			"language": language,
		},
	}, nil
}

// joinKeywords drops blank keywords and joins the rest with ", ". The
// literal "None" stands in when nothing survives trimming.
func joinKeywords(keywords []string) string {
	kept := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		trimmed := strings.TrimSpace(keyword)
		if trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	if len(kept) == 0 {
		return "None"
	}
	return strings.Join(kept, ", ")
}

func validateTemplate(t Template) error {
	if strings.TrimSpace(t.System) == "" {
		return errors.New("template system text is empty")
	}
	if strings.TrimSpace(t.UserTemplate) == "" {
		return errors.New("template user text is empty")
	}
	return nil
}
