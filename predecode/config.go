package predecode

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the geometry of a decoded-instruction cache.
type Config struct {
	// Sets is the number of cache sets. Default: 64.
	Sets int `json:"sets"`

	// Ways is the associativity of each set. Default: 4.
	Ways int `json:"ways"`

	// LineWords is the number of instruction words decoded and cached
	// together on a miss. Default: 8 (one 32-byte line).
	LineWords int `json:"line_words"`
}

// DefaultConfig returns a Config sized for 2K cached instructions.
func DefaultConfig() *Config {
	return &Config{
		Sets:      64,
		Ways:      4,
		LineWords: 8,
	}
}

// LineBytes returns the size of a cache line in bytes.
func (c *Config) LineBytes() int {
	return c.LineWords * 4
}

// Capacity returns the number of instructions the cache can hold.
func (c *Config) Capacity() int {
	return c.Sets * c.Ways * c.LineWords
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read predecode config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse predecode config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize predecode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write predecode config file: %w", err)
	}

	return nil
}

// Validate checks that the geometry is usable.
func (c *Config) Validate() error {
	if c.Sets <= 0 {
		return fmt.Errorf("sets must be > 0")
	}
	if c.Ways <= 0 {
		return fmt.Errorf("ways must be > 0")
	}
	if c.LineWords <= 0 {
		return fmt.Errorf("line_words must be > 0")
	}
	if c.LineWords&(c.LineWords-1) != 0 {
		return fmt.Errorf("line_words must be a power of two, got %d", c.LineWords)
	}
	return nil
}
