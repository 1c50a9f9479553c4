package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/cardexdev/cardex/internal/browse"
	"github.com/cardexdev/cardex/internal/config"
	"github.com/cardexdev/cardex/internal/prefs"
	"github.com/cardexdev/cardex/internal/state"
	"github.com/cardexdev/cardex/internal/tcgdex"
	"github.com/cardexdev/cardex/internal/ui"
)

// Options configure the Cardex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cardex/prefs.toml
	CardID     string // overrides the configured startup card
}

// Run boots the Cardex TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := tcgdex.NewClient(cfg.BaseURL, cfg.Language)
	if err != nil {
		return fmt.Errorf("init card client: %w", err)
	}

	store := state.NewStore()

	controller, err := browse.New(ctx, browse.Options{
		Store:         store,
		Client:        client,
		DefaultCardID: startupCardID(cfg, opts.CardID),
	})
	if err != nil {
		return fmt.Errorf("init browse controller: %w", err)
	}

	// Kick off the default-card load before the UI starts; the slot shows
	// its own loading state until the response lands.
	controller.LoadDefaultCard()

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Controller: controller,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}

// startupCardID picks the card shown before any selection: the command-line
// override when present, otherwise the configured default.
func startupCardID(cfg config.Config, override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	return cfg.DefaultCard
}
