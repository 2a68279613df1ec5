package infinitescroll

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the [infinite_scroll] table of a TOML config file.
type Config struct {
	Direction       Direction      `toml:"direction"`
	IndicatorStyle  IndicatorStyle `toml:"indicator_style"`
	IndicatorMargin float32        `toml:"indicator_margin"`
	TriggerOffset   float32        `toml:"trigger_offset"`
	// Durations are in milliseconds
	AnimationMS    int `toml:"animation_ms"`
	HandlerDelayMS int `toml:"handler_delay_ms"`
}

type configFile struct {
	InfiniteScroll Config `toml:"infinite_scroll"`
}

// DefaultConfig returns the configuration matching DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Direction:       Vertical,
		IndicatorStyle:  StyleWhite,
		IndicatorMargin: DefaultIndicatorMargin,
		AnimationMS:     int(DefaultAnimationDuration / time.Millisecond),
		HandlerDelayMS:  int(DefaultHandlerDelay / time.Millisecond),
	}
}

// LoadConfig reads the [infinite_scroll] table from path over the defaults.
// A missing file yields the defaults. Other tables are ignored.
func LoadConfig(path string) (Config, error) {
	file := configFile{InfiniteScroll: DefaultConfig()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return file.InfiniteScroll, nil
	}
	if err != nil {
		return file.InfiniteScroll, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := file.InfiniteScroll
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as the [infinite_scroll] table of path.
func SaveConfig(path string, cfg Config) error {
	data, err := toml.Marshal(configFile{InfiniteScroll: cfg})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Validate rejects negative sizes and durations.
func (c Config) Validate() error {
	switch {
	case c.IndicatorMargin < 0:
		return fmt.Errorf("indicator_margin must not be negative, got %v", c.IndicatorMargin)
	case c.AnimationMS < 0:
		return fmt.Errorf("animation_ms must not be negative, got %d", c.AnimationMS)
	case c.HandlerDelayMS < 0:
		return fmt.Errorf("handler_delay_ms must not be negative, got %d", c.HandlerDelayMS)
	}
	return nil
}

// Options converts the config to Attach options.
func (c Config) Options() []Option {
	return []Option{
		WithDirection(c.Direction),
		WithIndicatorStyle(c.IndicatorStyle),
		WithIndicatorMargin(c.IndicatorMargin),
		WithTriggerOffset(c.TriggerOffset),
		WithAnimationDuration(time.Duration(c.AnimationMS) * time.Millisecond),
		WithHandlerDelay(time.Duration(c.HandlerDelayMS) * time.Millisecond),
	}
}
