// SPDX-License-Identifier: Unlicense OR MIT

// Package config defines the tunables of the scroll container and
// loads them from flags, HSCROLL_* environment variables and an
// optional YAML file, in decreasing order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/touchkit/hscroll/gesture"
	"github.com/touchkit/hscroll/unit"
	"github.com/touchkit/hscroll/widget"
)

// Config holds the container tunables.
type Config struct {
	// FlingThreshold is the release speed in px/s from which the
	// settle animation carries the content further.
	FlingThreshold float32 `mapstructure:"fling-threshold"`
	// SettleDuration is the length of the settle animation.
	SettleDuration time.Duration `mapstructure:"settle-duration"`
	// Deadzone is the horizontal move in dp a gesture must exceed
	// before it is claimed from the children.
	Deadzone float32 `mapstructure:"deadzone"`
	// PxPerDp is the display density.
	PxPerDp  float32 `mapstructure:"px-per-dp"`
	LogLevel string  `mapstructure:"log-level"`
}

const envPrefix = "HSCROLL"

// Default returns the stock tunables: a 50 px/s fling threshold, a
// 500ms settle and no deadzone.
func Default() Config {
	return Config{
		FlingThreshold: gesture.DefaultFlingThreshold,
		SettleDuration: gesture.DefaultSettleDuration,
		Deadzone:       0,
		PxPerDp:        1,
		LogLevel:       "info",
	}
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Float32("fling-threshold", d.FlingThreshold, "Minimum release speed in px/s that extends the settle animation")
	fs.Duration("settle-duration", d.SettleDuration, "Duration of the settle animation")
	fs.Float32("deadzone", d.Deadzone, "Horizontal move in dp before a drag is taken from the children")
	fs.Float32("px-per-dp", d.PxPerDp, "Display density in pixels per dp")
	fs.String("log-level", d.LogLevel, "Log level: debug, info, warn, or error")
	fs.String("config", "", "Path to a YAML configuration file")
}

// Load resolves the configuration from fs, the environment and the
// file named by the config flag, if any. Fs may be nil.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	d := Default()
	v.SetDefault("fling-threshold", d.FlingThreshold)
	v.SetDefault("settle-duration", d.SettleDuration)
	v.SetDefault("deadzone", d.Deadzone)
	v.SetDefault("px-per-dp", d.PxPerDp)
	v.SetDefault("log-level", d.LogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, errors.Wrap(err, "bind flags")
		}
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.FlingThreshold < 0:
		return errors.Errorf("fling-threshold: must not be negative, got %v", c.FlingThreshold)
	case c.SettleDuration <= 0:
		return errors.Errorf("settle-duration: must be positive, got %v", c.SettleDuration)
	case c.Deadzone < 0:
		return errors.Errorf("deadzone: must not be negative, got %v", c.Deadzone)
	case c.PxPerDp <= 0:
		return errors.Errorf("px-per-dp: must be positive, got %v", c.PxPerDp)
	}
	return nil
}

// Apply copies the tunables to h.
func (c Config) Apply(h *widget.HScroll) {
	h.FlingThreshold = c.FlingThreshold
	h.SettleDuration = c.SettleDuration
	h.Deadzone = unit.Dp(c.Deadzone)
	h.Metric = unit.Metric{PxPerDp: c.PxPerDp}
}
