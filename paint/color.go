// Package paint holds the colour types shared by scene nodes and layout
// containers, plus the conversions games usually need around them.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedHex is returned by ParseHex for strings that are not one of the
// accepted fixed-width formats.
var ErrMalformedHex = errors.New("malformed color string")

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBA is an 8-bit colour with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

var (
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
	Black = RGB{}
)

// Colorable is implemented by anything whose tint and opacity can be set.
type Colorable interface {
	SetColor(c RGB)
	Color() RGB
	SetOpacity(o uint8)
	Opacity() uint8
	SetOpacityModifyRGB(v bool)
	IsOpacityModifyRGB() bool
}

// Apply sets both colour and opacity of obj from c.
func Apply(obj Colorable, c RGBA) {
	obj.SetColor(c.RGB())
	obj.SetOpacity(c.A)
}

// RGBA returns c with full opacity.
func (c RGB) RGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// NRGBA converts c for use with image/color based APIs.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as rrggbbaa.
func (c RGBA) Hex() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBFromFloat converts channels in [0, 1] to bytes, truncating.
func RGBFromFloat(r, g, b float64) RGB {
	return RGB{R: uint8(255 * r), G: uint8(255 * g), B: uint8(255 * b)}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// LerpRGB blends from c0 towards c1 by t in RGB space.
func LerpRGB(c0, c1 RGB, t float64) RGB {
	r, g, b := c0.colorful().BlendRgb(c1.colorful(), t).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// LerpRGBA blends all four channels, alpha included.
func LerpRGBA(c0, c1 RGBA, t float64) RGBA {
	rgb := LerpRGB(c0.RGB(), c1.RGB(), t)
	a := float64(c0.A) + t*(float64(c1.A)-float64(c0.A))
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: uint8(a + 0.5)}
}

// ParseHex reads a colour written as rrggbb or rrggbbaa, optionally
// prefixed with 0x. Six digit forms are fully opaque.
func ParseHex(s string) (RGBA, error) {
	digits := strings.TrimPrefix(s, "0x")
	if len(digits) != 6 && len(digits) != 8 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedHex, s)
	}

	rgb, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrMalformedHex, s, err)
	}
	r, g, b := rgb.RGB255()
	c := RGBA{R: r, G: g, B: b, A: 0xff}

	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrMalformedHex, s, err)
		}
		c.A = uint8(a)
	}
	return c, nil
}

// MustParseHex is ParseHex for literals; it panics on malformed input.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic("paint: " + err.Error())
	}
	return c
}
