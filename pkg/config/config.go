// Package config loads mazewalk settings from a TOML file.
//
// Every field has a default, so a missing file or an empty one is valid.
// Command-line flags are applied on top of the loaded values by the CLI.
//
//	[maze]
//	width = 40
//	height = 25
//	horizontal_bias = 1.0
//	vertical_bias = 1.5
//	seed = 100
//
//	[play]
//	tick = "15ms"
//	steps_per_tick = 2
//	cell_width = 2
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "mazewalk.toml"

// Config is the full set of settings.
type Config struct {
	Maze   Maze   `toml:"maze"`
	Play   Play   `toml:"play"`
	Server Server `toml:"server"`
}

// Maze holds the construction parameters of a session.
type Maze struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	HorizontalBias float64 `toml:"horizontal_bias"`
	VerticalBias   float64 `toml:"vertical_bias"`
	Seed           *int64  `toml:"seed"` // nil picks a random seed
}

// Play tunes the interactive terminal host.
type Play struct {
	Tick         time.Duration `toml:"tick"`
	StepsPerTick int           `toml:"steps_per_tick"`
	CellWidth    int           `toml:"cell_width"`
}

// Server configures the HTTP host.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Maze: Maze{
			Width:          30,
			Height:         20,
			HorizontalBias: 1,
			VerticalBias:   1,
		},
		Play: Play{
			Tick:         15 * time.Millisecond,
			StepsPerTick: 1,
			CellWidth:    2,
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(string(data), cfg)
}

// LoadDefault loads DefaultFile when it exists in the working directory and
// returns the defaults otherwise.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultFile); err != nil {
		return Defaults(), nil
	}
	return Load(DefaultFile)
}

// Parse decodes TOML text over base and validates the result.
// Unknown keys are rejected.
func Parse(text string, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Maze.Validate(); err != nil {
		return err
	}
	if c.Play.Tick <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "play.tick must be positive")
	}
	if c.Play.StepsPerTick < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "play.steps_per_tick must be at least 1")
	}
	if c.Play.CellWidth < 1 || c.Play.CellWidth > 4 {
		return errors.New(errors.ErrCodeInvalidConfig, "play.cell_width must be between 1 and 4")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}

// Validate checks the maze construction parameters.
func (m Maze) Validate() error {
	if err := errors.ValidateDimensions(m.Width, m.Height, maze.MaxWidth, maze.MaxHeight); err != nil {
		return err
	}
	if err := errors.ValidateBias("horizontal_bias", m.HorizontalBias); err != nil {
		return err
	}
	return errors.ValidateBias("vertical_bias", m.VerticalBias)
}
