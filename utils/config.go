package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	Randomize      bool          `json:"randomize"`
	MaxGenerations int           `json:"max_generations"` // 0 means unbounded
	Seed           uint64        `json:"seed"`            // 0 means seed from the runtime
	Workers        int           `json:"workers"`
	FrameRate      time.Duration `json:"frame_rate"`
	HistoryDepth   int           `json:"history_depth"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:         30,
		Cols:         60,
		Randomize:    true,
		Workers:      1,
		FrameRate:    150 * time.Millisecond,
		HistoryDepth: 5,
	}
}

// LoadConfig loads configuration from JSON file, starting from the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %s", c.FrameRate)
	}
	return nil
}
