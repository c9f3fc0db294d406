// Command tile-snake-ebiten plays the game in an ebiten window. It takes
// the same flags and environment as tile-snake, -host is ignored.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"tile-snake/config"
	"tile-snake/game/types"
	"tile-snake/ui/ebitenui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	cfg.Host = config.HostEbiten

	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("opening log")
	}
	defer closeLog()

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("tick", cfg.TickInterval).
		Msg("starting tile snake on ebiten")

	opts := ebitenui.Options{FPS: cfg.FPS, Palette: types.DefaultPalette, Logger: &logger}
	if err := ebitenui.Run(cfg.Settings(), opts); err != nil {
		logger.Error().Err(err).Msg("game exited")
		closeLog()
		os.Exit(1)
	}
}
