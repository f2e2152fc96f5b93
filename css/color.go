package css

import (
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

// ParseColor converts a value into a color value. Accepted are color
// values, named colors (SVG 1.1 / CSS3 color keywords) and "transparent".
// The identifier "currentcolor" is not a color by itself, it is resolved
// during the cascade.
func ParseColor(v Value) (Value, bool) {
	switch v.kind {
	case ColorKind:
		return v, true
	case IdentKind:
		if v.str == "transparent" {
			return Transparent, true
		}
		if c, ok := colornames.Map[v.str]; ok {
			return fromRGBA(c), true
		}
	}
	return Value{}, false
}

func fromRGBA(c color.RGBA) Value {
	if c.A == 0 {
		return Transparent
	}
	a := float64(c.A) / 255
	return RGBA(float64(c.R)/255/a, float64(c.G)/255/a, float64(c.B)/255/a, a)
}

// ToRGBA returns an alpha-premultiplied color for drawing.
// If v is not a color, ok is false.
func (v Value) ToRGBA() (c color.RGBA, ok bool) {
	if v.kind != ColorKind {
		return color.RGBA{}, false
	}
	r, g, b, a := v.Components()
	return color.RGBA{
		R: uint8(r*a*255 + 0.5),
		G: uint8(g*a*255 + 0.5),
		B: uint8(b*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}, true
}

// parseHexColor parses #rgb, #rgba, #rrggbb and #rrggbbaa (without '#').
func parseHexColor(hex string) (Value, bool) {
	var digits []float64
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Value{}, false
			}
			digits = append(digits, float64(n*17)/255)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			n, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return Value{}, false
			}
			digits = append(digits, float64(n)/255)
		}
	default:
		return Value{}, false
	}
	if len(digits) == 3 {
		digits = append(digits, 1)
	}
	return RGBA(digits[0], digits[1], digits[2], digits[3]), true
}

// colorFromFunction builds a color from the arguments of rgb()/rgba().
// Channels are numbers 0…255 or percentages, alpha is a number 0…1 or
// a percentage.
func colorFromFunction(args []Value) (Value, bool) {
	if len(args) != 3 && len(args) != 4 {
		return Value{}, false
	}
	var ch [4]float64
	ch[3] = 1
	for i, a := range args {
		switch a.kind {
		case NumberKind:
			if i == 3 {
				ch[i] = a.num
			} else {
				ch[i] = a.num / 255
			}
		case PercentageKind:
			ch[i] = a.num
		default:
			return Value{}, false
		}
	}
	return RGBA(ch[0], ch[1], ch[2], ch[3]), true
}
