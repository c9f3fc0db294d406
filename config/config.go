// Package config reads the game settings from .env, the environment and
// the command line, in that order of precedence (flags win).
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"tile-snake/game"
	"tile-snake/game/entity"
	"tile-snake/game/types"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Usage receives the flag defaults when -h is passed
var Usage io.Writer = os.Stderr

// Hosts that can run the game
const (
	HostRaylib   = "raylib"
	HostTerminal = "terminal"
	HostEbiten   = "ebiten"
)

type Config struct {
	Host             string
	Width            int
	Height           int
	TileSize         int
	TickInterval     time.Duration
	MaxFruitInterval time.Duration
	FPS              int
	Seed             uint64
	Growth           string
	LogLevel         string
	LogFile          string
}

// Default matches game.DefaultSettings
func Default() Config {
	s := game.DefaultSettings()
	return Config{
		Host:             HostRaylib,
		Width:            s.Grid.Width,
		Height:           s.Grid.Height,
		TileSize:         s.TileSize,
		TickInterval:     s.TickInterval,
		MaxFruitInterval: s.MaxFruitInterval,
		FPS:              60,
		Growth:           entity.GrowthCoalesce.String(),
		LogLevel:         "info",
	}
}

// Load builds the config. envFiles are loaded with godotenv when present,
// a missing file is not an error. -h prints the flags to Usage and returns
// flag.ErrHelp unwrapped.
func Load(args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return Config{}, fmt.Errorf("loading %s: %w", f, err)
			}
		}
	}

	cfg := Default()
	if err := cfg.fromEnv(); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("tile-snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "where to play: raylib, terminal or ebiten")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in pixels")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "tile size in pixels")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "time between snake moves")
	fs.DurationVar(&cfg.MaxFruitInterval, "fruit-max", cfg.MaxFruitInterval, "longest wait before a fruit appears")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&cfg.Growth, "growth", cfg.Growth, "coalesce or stack growth requests within a tick")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(Usage)
			fs.PrintDefaults()
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
		*dst = n
		return nil
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
		*dst = d
		return nil
	}

	str("SNAKE_HOST", &c.Host)
	str("SNAKE_GROWTH", &c.Growth)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FILE", &c.LogFile)

	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.Seed = seed
	}

	return errors.Join(
		num("SNAKE_WIDTH", &c.Width),
		num("SNAKE_HEIGHT", &c.Height),
		num("SNAKE_TILE", &c.TileSize),
		num("SNAKE_FPS", &c.FPS),
		dur("SNAKE_TICK", &c.TickInterval),
		dur("SNAKE_FRUIT_MAX", &c.MaxFruitInterval),
	)
}

// Validate checks the grid is a whole number of tiles and names are known
func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalid, c.TileSize)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.Width%c.TileSize != 0 || c.Height%c.TileSize != 0:
		return fmt.Errorf("%w: grid %dx%d is not a multiple of tile %d", ErrInvalid, c.Width, c.Height, c.TileSize)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalid, c.TickInterval)
	case c.MaxFruitInterval < 0:
		return fmt.Errorf("%w: fruit interval %v must not be negative", ErrInvalid, c.MaxFruitInterval)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.FPS)
	}

	switch c.Host {
	case HostRaylib, HostTerminal, HostEbiten:
	default:
		return fmt.Errorf("%w: unknown host %q", ErrInvalid, c.Host)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalid, c.LogLevel, err)
	}

	if _, err := c.GrowthPolicy(); err != nil {
		return err
	}
	return nil
}

func (c Config) GrowthPolicy() (entity.GrowthPolicy, error) {
	switch c.Growth {
	case "", entity.GrowthCoalesce.String():
		return entity.GrowthCoalesce, nil
	case entity.GrowthStack.String():
		return entity.GrowthStack, nil
	default:
		return 0, fmt.Errorf("%w: unknown growth policy %q", ErrInvalid, c.Growth)
	}
}

// Settings converts the config into what a game session needs
func (c Config) Settings() game.Settings {
	growth, _ := c.GrowthPolicy()
	return game.Settings{
		Grid:             types.Grid{Width: c.Width, Height: c.Height},
		TileSize:         c.TileSize,
		TickInterval:     c.TickInterval,
		MaxFruitInterval: c.MaxFruitInterval,
		Growth:           growth,
		Seed:             c.Seed,
	}
}
