package view

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// Config holds the settings of a document view. Lengths are in points.
type Config struct {
	Width, Height float64 // viewport size
	X, Y          float64 // viewport offset
	DPI           float64 // resolution of the default render device
	FontSize      float64 // medium font size of the default render device
}

// Configuration keys and their defaults.
var configKeys = []struct {
	key  string
	dflt float64
	set  func(*Config, float64)
}{
	{"viewport.width", 595, func(c *Config, x float64) { c.Width = x }},
	{"viewport.height", 842, func(c *Config, x float64) { c.Height = x }},
	{"viewport.x", 0, func(c *Config, x float64) { c.X = x }},
	{"viewport.y", 0, func(c *Config, x float64) { c.Y = x }},
	{"device.dpi", 72, func(c *Config, x float64) { c.DPI = x }},
	{"device.fontsize", 12, func(c *Config, x float64) { c.FontSize = x }},
}

// ConfigFrom reads the view settings from a configuration. Keys not set
// get a default value (A4 portrait viewport, 72 dpi, 12 pt). conf may be
// nil.
func ConfigFrom(conf schuko.Configuration) Config {
	var c Config
	for _, k := range configKeys {
		x := k.dflt
		if conf != nil && conf.IsSet(k.key) {
			x = number(conf, k.key)
		}
		k.set(&c, x)
	}
	if c.DPI <= 0 {
		tracer().Errorf("invalid device resolution %.0f dpi, using 72", c.DPI)
		c.DPI = 72
	}
	return c
}

// number reads a configuration value as a float. Configuration stores may
// hold numbers as ints, floats or strings.
func number(conf schuko.Configuration, key string) float64 {
	s := strings.TrimSpace(conf.GetString(key))
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x
	}
	return float64(conf.GetInt(key))
}
