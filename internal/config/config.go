// Package config provides configuration for the rules engine and its front ends.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Grouped settings
	Output *OutputConfig
	Game   *GameConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Output:     NewOutputConfig(),
		Game:       NewGameConfig(),
	}
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
