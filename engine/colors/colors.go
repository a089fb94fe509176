package colors

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Color is a normalized RGBA color. Channels are not clamped.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.1, 0.1, 0.1, 1}
)

// MissingTexture is drawn in place of a texture that failed to load.
var MissingTexture = Magenta

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// PackRGBA8 packs the color into 4 bytes (R,G,B,A), clamping to [0,1].
func (c Color) PackRGBA8() [4]byte {
	var out [4]byte
	for i, v := range c {
		switch {
		case v <= 0:
			out[i] = 0
		case v >= 1:
			out[i] = 255
		default:
			out[i] = byte(v*255 + 0.5)
		}
	}
	return out
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (the '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, errors.Errorf("colors: invalid hex color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "colors: invalid hex color %q", s)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// UnmarshalYAML accepts either a hex string or a list of 3 or 4 floats.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := ParseHex(n.Value)
		if err != nil {
			return err
		}
		*c = v
		return nil
	case yaml.SequenceNode:
		var vals []float32
		if err := n.Decode(&vals); err != nil {
			return errors.Wrap(err, "colors: decode channels")
		}
		if len(vals) != 3 && len(vals) != 4 {
			return errors.Errorf("colors: want 3 or 4 channels, got %d", len(vals))
		}
		out := Color{0, 0, 0, 1}
		copy(out[:], vals)
		*c = out
		return nil
	}
	return errors.Errorf("colors: line %d: unsupported color value", n.Line)
}
