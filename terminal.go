package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/sound"
	"github.com/pthm-cable/werm/tui"
)

// runTerminal plays the game in the terminal until Esc.
func runTerminal(ctx context.Context, cfg *config.Config, f runFlags, logger *slog.Logger) error {
	g, err := game.NewGame(cfg, gameOptions(cfg, f, logger))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	player := sound.NewPlayer(cfg.Audio, logger)
	player.Init()
	defer player.Close()

	err = tui.New(screen, g, player, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
