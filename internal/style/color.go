// Package style provides toolkit-agnostic color and text-style carriers.
// Theme mapping produces these values; adapters translate them to whatever
// the rendering surface understands.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/phrozen/blend"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates the surface's default color.
	Default bool
}

// ColorDefault represents the surface's default color.
var ColorDefault = Color{Default: true}

// RGB creates a true color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Palette creates an indexed palette color.
func Palette(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// FromHex creates a color from a "#rgb" or "#rrggbb" hex string.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return c.Hex()
}

// Hex returns the "#RRGGBB" form of a true color.
func (c Color) Hex() string {
	if c.Indexed || c.Default {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. Indexed and default colors report
// opaque black; callers that care resolve them against a palette first.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.Indexed || c.Default {
		return color.RGBA{A: 255}.RGBA()
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// fromStdColor converts an image/color value back to a true color.
func fromStdColor(sc color.Color) Color {
	rgba := color.RGBAModel.Convert(sc).(color.RGBA)
	return Color{R: rgba.R, G: rgba.G, B: rgba.B}
}

// colorfulValue converts to the colorful representation for perceptual math.
func (c Color) colorfulValue() colorful.Color {
	v, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return v
}

// Lighten returns the color moved toward white by amount in [0, 1].
// Indexed and default colors pass through unchanged.
func (c Color) Lighten(amount float64) Color {
	if c.Indexed || c.Default {
		return c
	}
	white, _ := colorful.MakeColor(color.White)
	return fromStdColor(c.colorfulValue().BlendLab(white, amount).Clamped())
}

// Darken returns the color moved toward black by amount in [0, 1].
// Indexed and default colors pass through unchanged.
func (c Color) Darken(amount float64) Color {
	if c.Indexed || c.Default {
		return c
	}
	black, _ := colorful.MakeColor(color.Black)
	return fromStdColor(c.colorfulValue().BlendLab(black, amount).Clamped())
}

// Blend interpolates between two colors in Lab space, with amount 0
// producing c and amount 1 producing other. Indexed colors fall back to
// picking the nearer operand.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Indexed || other.Indexed || c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromStdColor(c.colorfulValue().BlendLab(other.colorfulValue(), amount).Clamped())
}

// BlendMode selects the compositing function used by Mix.
type BlendMode int

// Supported blend modes for emphasis overlays.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendSoftLight
	BlendDifference
)

// Mix composites the overlay color onto the base color with the given
// blend mode. Indexed and default operands pass the base through.
func Mix(mode BlendMode, base, overlay Color) Color {
	if base.Indexed || base.Default || overlay.Indexed || overlay.Default {
		return base
	}

	var out color.Color
	switch mode {
	case BlendMultiply:
		out = blend.Multiply(base, overlay)
	case BlendScreen:
		out = blend.Screen(base, overlay)
	case BlendOverlay:
		out = blend.Overlay(base, overlay)
	case BlendDarken:
		out = blend.Darken(base, overlay)
	case BlendLighten:
		out = blend.Lighten(base, overlay)
	case BlendSoftLight:
		out = blend.SoftLight(base, overlay)
	case BlendDifference:
		out = blend.Difference(base, overlay)
	default:
		return overlay
	}
	return fromStdColor(out)
}
