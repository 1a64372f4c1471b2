package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPromptNotFound: no template registered for the requested mode.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrInvalidCategory: the template's allow-list rejects the category.
	// Distinct from ErrPromptNotFound so callers can suggest categories.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrPromptSelection: the selection controller's single failure
	// condition covering both render-time failures above.
	ErrPromptSelection = errors.New("prompt selection failed")
	// ErrModelRouting: unknown mode string or no client registered for it.
	ErrModelRouting  = errors.New("model routing failed")
	ErrStoryNotFound = errors.New("story not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrTemporary     = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
