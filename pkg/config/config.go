// Package config loads the YAML settings and probe files used by the
// sketchgeom command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/chazu/sketchgeom/pkg/brush"
	"github.com/chazu/sketchgeom/pkg/engine"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the command's settings.
type Config struct {
	LogLevel     string        `json:"log_level" yaml:"log_level"`
	EvalTimeout  time.Duration `json:"eval_timeout" yaml:"eval_timeout"`
	BrushPadding float64       `json:"brush_padding" yaml:"brush_padding"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:     "info",
		EvalTimeout:  engine.EvalTimeout,
		BrushPadding: brush.DefaultPadding,
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// Keys absent from r keep their default value.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	if c.EvalTimeout <= 0 {
		return fmt.Errorf("config: eval_timeout must be positive, got %s: %w", c.EvalTimeout, ErrInvalid)
	}
	if c.BrushPadding < 0 {
		return fmt.Errorf("config: brush_padding must not be negative, got %g: %w", c.BrushPadding, ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level, or info when LogLevel is invalid.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// NewLogger builds a JSON production logger on stderr at the configured
// level.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(c.Level()),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: logger: %w", err)
	}
	return l, nil
}

// EngineOptions returns the engine settings this config implies.
func (c Config) EngineOptions(l *zap.Logger) []engine.Option {
	return []engine.Option{engine.WithTimeout(c.EvalTimeout), engine.WithLogger(l)}
}

// BrushOptions returns the brush index settings this config implies.
func (c Config) BrushOptions() []brush.Option {
	return []brush.Option{brush.WithPadding(c.BrushPadding)}
}
