// Package config holds the settings of a disk usage analysis.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

var (
	ErrThresholdNegative       = fmt.Errorf("threshold must not be negative")
	ErrCapacityUnset           = fmt.Errorf("capacity must be greater than zero")
	ErrRequiredFreeUnset       = fmt.Errorf("required free space must be greater than zero")
	ErrRequiredExceedsCapacity = fmt.Errorf("required free space exceeds capacity")
)

// Defaults of the reference scenario.
const (
	DefaultThreshold    = 100000
	DefaultCapacity     = 70000000
	DefaultRequiredFree = 30000000
)

type Config struct {
	// Threshold is the maximum size of directories summed up by the total query.
	Threshold int64 `json:"threshold"`
	// Capacity of the disk the transcript was recorded on.
	Capacity int64 `json:"capacity"`
	// RequiredFree is the amount of unused space needed, e.g. for an update.
	RequiredFree int64  `json:"required_free"`
	LogLevel     string `json:"log_level"`
	LogFormat    string `json:"log_format"`
	// OutputDir receives rendered reports.
	OutputDir string `json:"output_dir"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Threshold:    DefaultThreshold,
		Capacity:     DefaultCapacity,
		RequiredFree: DefaultRequiredFree,
		LogLevel:     "info",
		LogFormat:    "console",
		OutputDir:    "report",
	}
}

// ParseConfigFile reads a JSON config file.  Settings missing from the file keep their defaults.
func ParseConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (config *Config, err error) {
	config = Default()
	err = json.Unmarshal(data, config)
	return
}

// Validate checks that the queries can be answered with this configuration.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return ErrThresholdNegative
	}
	if c.Capacity <= 0 {
		return ErrCapacityUnset
	}
	if c.RequiredFree <= 0 {
		return ErrRequiredFreeUnset
	}
	if c.RequiredFree > c.Capacity {
		return fmt.Errorf("%d > %d: %w", c.RequiredFree, c.Capacity, ErrRequiredExceedsCapacity)
	}

	return nil
}
