package prompts

import (
	"fmt"

	"github.com/storyweave/narrative-backend/internal/core/domain"
)

// Registry maps a mode name to its prompt template. Registration happens
// during construction; the registry is read-only afterwards and safe for
// concurrent use across pipeline invocations.
type Registry struct {
	modes     []string
	templates map[string]Template
}

func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// DefaultRegistry returns a registry with the two built-in modes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(string(domain.ModeCurious), CuriousTemplate)
	r.MustRegister(string(domain.ModeNews), NewsTemplate)
	return r
}

func (r *Registry) Register(mode string, template Template) error {
	if mode == "" {
		return fmt.Errorf("register template: empty mode")
	}
	if err := validateTemplate(template); err != nil {
		return fmt.Errorf("register template for mode %q: %w", mode, err)
	}
	if _, exists := r.templates[mode]; !exists {
		r.modes = append(r.modes, mode)
	}
	r.templates[mode] = template
	return nil
}

func (r *Registry) MustRegister(mode string, template Template) {
	if err := r.Register(mode, template); err != nil {
		panic(err)
	}
}

// Modes returns registered mode names in registration order.
func (r *Registry) Modes() []string {
	out := make([]string, len(r.modes))
	copy(out, r.modes)
	return out
}

// List returns catalogue descriptors for every registered mode.
func (r *Registry) List() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(r.modes))
	for _, mode := range r.modes {
		template := r.templates[mode]
		out = append(out, TemplateInfo{
			Mode:              mode,
			Description:       template.Description,
			AllowedCategories: append([]string(nil), template.AllowedCategories...),
			UserTemplate:      template.UserTemplate,
		})
	}
	return out
}

// GetPrompt renders the template for the given mode. It fails with
// ErrPromptNotFound for unregistered modes and ErrInvalidCategory when the
// template's allow-list rejects the category.
func (r *Registry) GetPrompt(mode, category, language, analysis string, keywords []string) (domain.RenderedPrompt, error) {
	template, ok := r.templates[mode]
	if !ok {
		return domain.RenderedPrompt{}, domain.WrapError(
			domain.ErrPromptNotFound,
			"get prompt",
			fmt.Errorf("no prompt registered for mode %q", mode),
		)
	}
	return template.render(mode, category, language, analysis, keywords)
}
