package app

import (
	"context"
	"fmt"

	"github.com/rvail/orrery/internal/config"
	"github.com/rvail/orrery/internal/horizons"
	"github.com/rvail/orrery/internal/prefs"
	"github.com/rvail/orrery/internal/state"
	"github.com/rvail/orrery/internal/ui"
)

// Options configure the orrery application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses default ~/.config/orrery/prefs.toml
	RefreshSeconds int    // seconds between ephemeris cycles; zero uses config/default
	Symbols        bool   // force the astronomical-symbol marker set
}

// Run boots the orrery TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.RefreshSeconds > 0 {
		cfg.RefreshSeconds = opts.RefreshSeconds
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := horizons.NewClient(cfg.HorizonsURL)
	if err != nil {
		return fmt.Errorf("init horizons client: %w", err)
	}

	store := state.NewStore(opts.Symbols || cfg.Symbols || userPrefs.Symbols)

	StartUpdater(ctx, store, client, cfg.RefreshInterval(), cfg.BodyDelay())

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
