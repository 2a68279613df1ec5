package demo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the [demo] table of the scrolldemo config file.
type Config struct {
	// Rows fetched per load
	PageSize int `toml:"page_size"`
	// Simulated fetch latency in milliseconds
	LatencyMS int `toml:"latency_ms"`
	// The feed is exhausted after this many rows (0 means never)
	MaxRows int `toml:"max_rows"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		PageSize:  20,
		LatencyMS: 600,
		MaxRows:   200,
	}
}

// LoadConfig loads the [demo] table from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	file := struct {
		Demo Config `toml:"demo"`
	}{Demo: DefaultConfig()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return file.Demo, nil
	}
	if err != nil {
		return file.Demo, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if file.Demo.PageSize <= 0 {
		file.Demo.PageSize = DefaultConfig().PageSize
	}
	if file.Demo.LatencyMS < 0 {
		file.Demo.LatencyMS = 0
	}

	return file.Demo, nil
}
