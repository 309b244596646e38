// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads SlidingPane configurations and saved states
// from TOML files.
//
// A configuration file holds a single [pane] table:
//
//	[pane]
//	fade_color = "#cccccccc"
//	covered_fade_color = "black"
//	parallax_distance = 40
//	overhang = 32
//	preferred_fixed_width = "0.4"
//	max_settle_duration = "400ms"
//
// Colors are color names or #RRGGBB and #RRGGBBAA values. Extents are
// given in dp ("320dp"), pixels ("280px") or as a fraction of the
// container width ("0.4").
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"github.com/slidepane/slidepane/layout"
	"github.com/slidepane/slidepane/unit"
	"github.com/slidepane/slidepane/widget"
)

// File is the layout of a configuration file.
type File struct {
	Pane Pane `toml:"pane"`
}

// Pane is the [pane] table. Sizes are in dp unless noted.
type Pane struct {
	FadeColor             string  `toml:"fade_color"`
	CoveredFadeColor      string  `toml:"covered_fade_color"`
	ParallaxDistance      *int    `toml:"parallax_distance"`
	Overhang              float32 `toml:"overhang"`
	DragArea              float32 `toml:"drag_area"`
	EdgeSize              float32 `toml:"edge_size"`
	TouchSlop             float32 `toml:"touch_slop"`
	MinFlingVelocity      float32 `toml:"min_fling_velocity"`
	MaxSettleDuration     string  `toml:"max_settle_duration"`
	ResizeOff             bool    `toml:"resize_off"`
	SinglePanel           bool    `toml:"single_panel"`
	DefaultOpen           bool    `toml:"default_open"`
	PreferredFixedWidth   string  `toml:"preferred_fixed_width"`
	PreferredContentWidth string  `toml:"preferred_content_width"`
	FixedMarginTop        float32 `toml:"fixed_margin_top"`
	FixedMarginBottom     float32 `toml:"fixed_margin_bottom"`
	// ResizeTolerance is in pixels.
	ResizeTolerance int `toml:"resize_tolerance"`
}

var (
	ErrUnknownKey = errors.New("config: unknown key")
	ErrColor      = errors.New("config: invalid color")
	ErrExtent     = errors.New("config: invalid extent")
)

// Load reads the configuration file at path. Extents in dp are
// converted to pixels with m.
func Load(path string, m unit.Metric) (widget.Config, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return widget.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := undecoded(md); err != nil {
		return widget.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return f.Pane.Config(m)
}

// Parse decodes a configuration from TOML text.
func Parse(data string, m unit.Metric) (widget.Config, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return widget.Config{}, fmt.Errorf("config: %w", err)
	}
	if err := undecoded(md); err != nil {
		return widget.Config{}, err
	}
	return f.Pane.Config(m)
}

func undecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	return nil
}

// Config converts the table to a widget configuration. Unset
// values take the defaults of widget.DefaultConfig.
func (p Pane) Config(m unit.Metric) (widget.Config, error) {
	cfg := widget.DefaultConfig()
	var err error
	if p.FadeColor != "" {
		if cfg.FadeColor, err = ParseColor(p.FadeColor); err != nil {
			return cfg, err
		}
		cfg.FadeColorSet = true
	}
	if p.CoveredFadeColor != "" {
		if cfg.CoveredFadeColor, err = ParseColor(p.CoveredFadeColor); err != nil {
			return cfg, err
		}
	}
	if p.PreferredFixedWidth != "" {
		if cfg.PreferredFixedWidth, err = ParseExtent(p.PreferredFixedWidth, m); err != nil {
			return cfg, err
		}
	}
	if p.PreferredContentWidth != "" {
		if cfg.PreferredContentWidth, err = ParseExtent(p.PreferredContentWidth, m); err != nil {
			return cfg, err
		}
	}
	if p.MaxSettleDuration != "" {
		d, err := time.ParseDuration(p.MaxSettleDuration)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("config: invalid max_settle_duration %q", p.MaxSettleDuration)
		}
		cfg.MaxSettleDuration = d
	}
	if p.ParallaxDistance != nil {
		cfg.ParallaxDistance = *p.ParallaxDistance
	}
	setDp(&cfg.Overhang, p.Overhang)
	setDp(&cfg.DragArea, p.DragArea)
	setDp(&cfg.EdgeSize, p.EdgeSize)
	setDp(&cfg.TouchSlop, p.TouchSlop)
	setDp(&cfg.MinFlingVelocity, p.MinFlingVelocity)
	setDp(&cfg.FixedMarginTop, p.FixedMarginTop)
	setDp(&cfg.FixedMarginBottom, p.FixedMarginBottom)
	cfg.ResizeOff = p.ResizeOff
	cfg.SinglePanel = p.SinglePanel
	cfg.DefaultOpen = p.DefaultOpen
	cfg.ResizeTolerance = p.ResizeTolerance
	return cfg, nil
}

func setDp(dst *unit.Dp, v float32) {
	if v != 0 {
		*dst = unit.Dp(v)
	}
}

// ParseColor parses a color name, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: unknown name %q", ErrColor, s)
		}
		return color.NRGBAModel.Convert(c).(color.NRGBA), nil
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParseExtent parses a length in dp, pixels or as a fraction.
func ParseExtent(s string, m unit.Metric) (layout.Extent, error) {
	s = strings.TrimSpace(s)
	var num string
	var conv func(v float64) (layout.Extent, bool)
	switch {
	case strings.HasSuffix(s, "dp"):
		num = strings.TrimSuffix(s, "dp")
		conv = func(v float64) (layout.Extent, bool) {
			return layout.Extent{Px: m.Dp(unit.Dp(v))}, v > 0
		}
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
		conv = func(v float64) (layout.Extent, bool) {
			return layout.Extent{Px: int(v)}, v >= 1 && v == float64(int(v))
		}
	default:
		num = s
		conv = func(v float64) (layout.Extent, bool) {
			return layout.Extent{Fraction: float32(v)}, v > 0 && v <= 1
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return layout.Extent{}, fmt.Errorf("%w: %q", ErrExtent, s)
	}
	e, ok := conv(v)
	if !ok {
		return layout.Extent{}, fmt.Errorf("%w: %q out of range", ErrExtent, s)
	}
	return e, nil
}

// LoadState reads a saved state. A missing file is the zero state.
func LoadState(path string) (widget.SavedState, error) {
	var st widget.SavedState
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if _, err := toml.DecodeFile(path, &st); err != nil {
		return st, fmt.Errorf("config: %s: %w", path, err)
	}
	return st, nil
}

// SaveState writes st to path.
func SaveState(path string, st widget.SavedState) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("config: encoding state: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
