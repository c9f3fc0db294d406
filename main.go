package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tile-snake/config"
	"tile-snake/game/types"
	"tile-snake/ui/raylibui"
	"tile-snake/ui/tcellui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("opening log")
	}
	defer closeLog()

	logger.Info().
		Str("host", cfg.Host).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("tick", cfg.TickInterval).
		Msg("starting tile snake")

	if err := run(cfg, &logger); err != nil {
		logger.Error().Err(err).Msg("game exited")
		closeLog()
		os.Exit(1)
	}
}

// run starts the raylib or terminal host. raylib-go and ebiten each link
// their own GLFW, so the ebiten host lives in cmd/tile-snake-ebiten.
func run(cfg config.Config, logger *zerolog.Logger) error {
	settings := cfg.Settings()
	palette := types.DefaultPalette

	switch cfg.Host {
	case config.HostTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tcellui.Run(ctx, settings, tcellui.Options{FPS: cfg.FPS, Palette: palette, Logger: logger})
	case config.HostEbiten:
		return fmt.Errorf("host %q is built separately: go run ./cmd/tile-snake-ebiten", cfg.Host)
	default:
		return raylibui.Run(settings, raylibui.Options{FPS: cfg.FPS, Palette: palette, Logger: logger})
	}
}
