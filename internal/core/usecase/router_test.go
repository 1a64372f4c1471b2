package usecase

import (
	"context"
	"testing"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/core/ports"
)

type modelClientFake struct {
	mode domain.Mode
}

func (f *modelClientFake) NarrativeMode() domain.Mode { return f.mode }

func (f *modelClientFake) Generate(context.Context, domain.RenderedPrompt, *domain.DocInsights) (domain.NarrativeResponse, error) {
	return domain.CuriousNarrative{Mode: f.mode}, nil
}

func TestNewModelRouterRequiresClients(t *testing.T) {
	if _, err := NewModelRouter(nil); err == nil {
		t.Fatalf("expected error for empty client map")
	}
}

func TestRouteResolvesCaseInsensitiveMode(t *testing.T) {
	router, err := NewModelRouter(map[domain.Mode]ports.ModelClient{
		domain.ModeCurious: &modelClientFake{mode: domain.ModeCurious},
		domain.ModeNews:    &modelClientFake{mode: domain.ModeNews},
	})
	if err != nil {
		t.Fatalf("NewModelRouter() error = %v", err)
	}

	for _, input := range []string{"curious", "CURIOUS", "  Curious "} {
		client, err := router.Route(input)
		if err != nil {
			t.Fatalf("Route(%q) error = %v", input, err)
		}
		if client.NarrativeMode() != domain.ModeCurious {
			t.Fatalf("Route(%q) resolved wrong client: %s", input, client.NarrativeMode())
		}
	}
}

func TestRouteRejectsUnknownMode(t *testing.T) {
	router, err := NewModelRouter(map[domain.Mode]ports.ModelClient{
		domain.ModeCurious: &modelClientFake{mode: domain.ModeCurious},
	})
	if err != nil {
		t.Fatalf("NewModelRouter() error = %v", err)
	}

	_, err = router.Route("poetry")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrModelRouting) {
		t.Fatalf("expected ErrModelRouting, got %v", err)
	}
}

func TestRouteFailsForBuiltInModeWithoutClient(t *testing.T) {
	router, err := NewModelRouter(map[domain.Mode]ports.ModelClient{
		domain.ModeCurious: &modelClientFake{mode: domain.ModeCurious},
	})
	if err != nil {
		t.Fatalf("NewModelRouter() error = %v", err)
	}

	_, err = router.Route("news")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrModelRouting) {
		t.Fatalf("expected ErrModelRouting, got %v", err)
	}
}

func TestRouteAllowsRegisteredCustomMode(t *testing.T) {
	custom := domain.Mode("recap")
	router, err := NewModelRouter(map[domain.Mode]ports.ModelClient{
		custom: &modelClientFake{mode: custom},
	})
	if err != nil {
		t.Fatalf("NewModelRouter() error = %v", err)
	}

	client, err := router.Route("Recap")
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if client.NarrativeMode() != custom {
		t.Fatalf("unexpected client mode: %s", client.NarrativeMode())
	}
}
