// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package colorutil

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidFormat is reported for text that is neither a recognized color
	// name nor a hex literal of the form "#RRGGBB".
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrUnsupportedType is reported by ToColor for input that is not a string,
	// an integer, or a Color.
	ErrUnsupportedType = errors.New("unsupported color type")
)

// FromInt returns the color packed into rgb as 0xRRGGBB. Bits above the low
// 24 are ignored.
//
//	red   := FromInt(0xFF0000)
//	green := FromInt(0x00FF00)
//	blue  := FromInt(0x0000FF)
func FromInt(rgb int) Color {
	return Color{byte(rgb >> 16), byte(rgb >> 8), byte(rgb)}
}

// Parse returns the color denoted by s, which must be either a color name such
// as "AliceBlue" or a hex literal "#RRGGBB". Both are matched without regard to
// case. Leading and trailing whitespace is not removed, and the short "#RGB"
// and alpha "#RRGGBBAA" forms are not accepted.
//
// If s is not valid, the error wraps ErrInvalidFormat.
func Parse(s string) (Color, error) {
	// Check for a name mapping.
	if hex, ok := Lookup(s); ok {
		s = hex
	}
	if c, ok := parseHex(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q (want \"#RRGGBB\" or an HTML color name like \"AliceBlue\")",
		ErrInvalidFormat, s)
}

// ParseOptional is like Parse, but accepts a possibly-nil string. If s == nil
// it returns nil, nil; absent input is not an error.
func ParseOptional(s *string) (*Color, error) {
	if s == nil {
		return nil, nil
	}
	c, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MustParse is like Parse, but panics if s does not denote a valid color.
// It is intended for use in variable initializations.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic("invalid color: " + err.Error())
	}
	return c
}

// parseHex parses s as "#" followed by exactly six hex digits.
func parseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, false
	}
	return FromInt(int(v)), true
}
