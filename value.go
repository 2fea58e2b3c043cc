// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package colorutil

import "fmt"

// A Value is a color specification. The concrete type of a Value is one of
// Int, Text, or Color, or a pointer to one of them.
type Value interface {
	toColor() (Color, error)
}

// Int is a Value holding a color packed as 0xRRGGBB.
type Int int

// Text is a Value holding a color name or a "#RRGGBB" hex literal.
type Text string

func (v Int) toColor() (Color, error) { return FromInt(int(v)), nil }
func (v Text) toColor() (Color, error) { return Parse(string(v)) }
func (c Color) toColor() (Color, error) { return c, nil }

// Of returns the color specified by v. If v is nil, or a nil pointer, it
// returns nil, nil. The only possible error is from parsing a Text value
// (see [Parse]).
func Of(v Value) (*Color, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *Int:
		if t == nil {
			return nil, nil
		}
		v = *t
	case *Text:
		if t == nil {
			return nil, nil
		}
		v = *t
	case *Color:
		return t, nil
	}
	c, err := v.toColor()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ToColor converts v to a color. It accepts a string or *string (see [Parse]),
// any integer type (see [FromInt]), a Color or *Color (returned unchanged), or
// a Value (see [Of]). A nil v, or a nil pointer of an accepted type, yields
// nil, nil.
//
//	red, err  := ToColor("#FF0000")
//	blue, err := ToColor(0x0000FF)
//	gray, err := ToColor("gray")
//
// For any other type, ToColor reports an error wrapping ErrUnsupportedType.
func ToColor(v any) (*Color, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return Of(Text(t))
	case *string:
		return ParseOptional(t)
	case Color:
		return &t, nil
	case *Color:
		return t, nil
	case Int, Text, *Int, *Text:
		return Of(t.(Value))
	case int:
		return Of(Int(t))
	case int8:
		return Of(Int(t))
	case int16:
		return Of(Int(t))
	case int32:
		return Of(Int(t))
	case int64:
		return Of(Int(t))
	case uint:
		return Of(Int(t))
	case uint8:
		return Of(Int(t))
	case uint16:
		return Of(Int(t))
	case uint32:
		return Of(Int(t))
	case uint64:
		return Of(Int(t))
	case uintptr:
		return Of(Int(t))
	}
	return nil, fmt.Errorf("%w: %T (want string, integer, or Color)", ErrUnsupportedType, v)
}
