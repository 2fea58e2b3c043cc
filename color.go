// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package colorutil converts integers, hex strings, and CSS/HTML color names
// into RGB colors.
//
// A color can be given as a packed integer (0xRRGGBB), as a hex literal
// ("#RRGGBB"), or by name ("CornflowerBlue", matched without regard to case):
//
//	red := colorutil.FromInt(0xFF0000)
//	green, err := colorutil.Parse("#00ff00")
//	gray := colorutil.MustParse("Gray")
//
// Callers whose input type is not known statically, for example values
// decoded from configuration, can use [ToColor].
package colorutil

import (
	"fmt"
	"image/color"
)

// A Color is an opaque RGB color, with channels ordered red, green, blue.
// Colors are comparable with ==.
//
// A Color encodes as text (and hence JSON) as its color name if it has one,
// otherwise as "#rrggbb". It decodes from any string accepted by [Parse].
type Color [3]uint8

func (c Color) R() uint8 { return c[0] }
func (c Color) G() uint8 { return c[1] }
func (c Color) B() uint8 { return c[2] }

// Int returns c packed as 0xRRGGBB. It is the inverse of [FromInt].
func (c Color) Int() int { return int(c[0])<<16 | int(c[1])<<8 | int(c[2]) }

// Hex returns c in lower-case "#rrggbb" format.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]) }

func (c Color) String() string { return c.Hex() }

// Name returns the lower-cased name of c, if c has one. When several names
// denote the same color, the first one in the name table is reported (for
// example "aqua" rather than "cyan"). Names containing spaces, such as
// "indianred ", are never reported.
func (c Color) Name() (string, bool) {
	n, ok := c2n[c]
	return n, ok
}

// RGBA implements the [color.Color] interface. The result is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}.RGBA()
}

// MarshalText encodes c as its name (see [Color.Name]) if it has one, otherwise
// as "#rrggbb". The result is always accepted by [Parse].
func (c Color) MarshalText() ([]byte, error) {
	// Check for a name mapping.
	if n, ok := c2n[c]; ok {
		return []byte(n), nil
	}
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
