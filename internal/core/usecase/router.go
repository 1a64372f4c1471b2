package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

// ModelRouterImpl resolves narrative model clients by mode. The mode set
// is a closed enumeration at the routing boundary, but the client map is
// open to registration so new modes do not touch the router internals.
type ModelRouterImpl struct {
	clients map[domain.Mode]ports.ModelClient
}

func NewModelRouter(clients map[domain.Mode]ports.ModelClient) (*ModelRouterImpl, error) {
	if len(clients) == 0 {
		return nil, errors.New("model router requires at least one client")
	}
	registered := make(map[domain.Mode]ports.ModelClient, len(clients))
	for mode, client := range clients {
		registered[mode] = client
	}
	return &ModelRouterImpl{clients: registered}, nil
}

// Route accepts the enumerated mode value or any case-insensitive string
// form of it.
func (r *ModelRouterImpl) Route(mode string) (ports.ModelClient, error) {
	resolved, err := r.resolveMode(mode)
	if err != nil {
		return nil, err
	}

	client, ok := r.clients[resolved]
	if !ok {
		return nil, domain.WrapError(
			domain.ErrModelRouting,
			"route mode",
			fmt.Errorf("no model client registered for mode %q", resolved),
		)
	}
	return client, nil
}

func (r *ModelRouterImpl) resolveMode(mode string) (domain.Mode, error) {
	normalized := domain.Mode(strings.ToLower(strings.TrimSpace(mode)))
	switch normalized {
	case domain.ModeCurious, domain.ModeNews:
		return normalized, nil
	}
	// Registered non-built-in modes route too.
	if _, ok := r.clients[normalized]; ok {
		return normalized, nil
	}
	return "", domain.WrapError(
		domain.ErrModelRouting,
		"resolve mode",
		fmt.Errorf("unsupported mode %q", mode),
	)
}
