// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"lwtk.org/gesture"
	"lwtk.org/unit"
	"lwtk.org/widget/material"
)

// Config is the configuration of an application, usually read from a
// TOML file:
//
//	[input]
//	long_click_delay = "1s"
//	double_click_delay = "400ms"
//
//	[theme]
//	scale = 2.0
//	text_size = 14.0
//	accent = "steelblue"
//	dark = false
type Config struct {
	Input InputConfig `toml:"input"`
	Theme ThemeConfig `toml:"theme"`
}

// InputConfig holds the click disambiguation delays.
type InputConfig struct {
	LongClickDelay   Duration `toml:"long_click_delay"`
	DoubleClickDelay Duration `toml:"double_click_delay"`
}

// ThemeConfig configures the default theme.
type ThemeConfig struct {
	Scale    float32 `toml:"scale"`
	TextSize float32 `toml:"text_size"`
	Accent   string  `toml:"accent"`
	Dark     bool    `toml:"dark"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %v", v)
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			LongClickDelay:   Duration(gesture.DefaultLongClickDelay),
			DoubleClickDelay: Duration(gesture.DefaultDoubleClickDelay),
		},
		Theme: ThemeConfig{
			Scale:    1,
			TextSize: 14,
			Accent:   "steelblue",
		},
	}
}

// ParseConfig parses TOML data over the default configuration.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("app: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("app: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Delays returns the click delays of the configuration.
func (c Config) Delays() gesture.Delays {
	return gesture.Delays{
		LongClick:   time.Duration(c.Input.LongClickDelay),
		DoubleClick: time.Duration(c.Input.DoubleClickDelay),
	}
}

// ThemeOptions returns the options of the default theme.
func (c Config) ThemeOptions() material.Options {
	return material.Options{
		Scale:    c.Theme.Scale,
		TextSize: unit.Sp(c.Theme.TextSize),
		Accent:   c.Theme.Accent,
		Dark:     c.Theme.Dark,
	}
}
