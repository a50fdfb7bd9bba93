package intrographics

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorLookup resolves a host color name such as "light blue".
type ColorLookup func(name string) (RGB, bool)

// ResolveColor converts a user-supplied color into RGB. Accepted forms:
//
//   - an RGB value, or any color.Color (alpha is ignored)
//   - a [3]int, [3]uint8, []int or []any triple with channels in [0, 255]
//   - a "#rgb" or "#rrggbb" hex string
//   - a color name understood by lookup
func ResolveColor(op string, v any, lookup ColorLookup) (RGB, error) {
	switch c := v.(type) {
	case nil:
		return RGB{}, missingArgument(op, "color")
	case RGB:
		return c, nil
	case *RGB:
		if c == nil {
			return RGB{}, missingArgument(op, "color")
		}
		return *c, nil
	case [3]uint8:
		return RGB{R: c[0], G: c[1], B: c[2]}, nil
	case [3]int:
		return channels(op, v, c[:])
	case []int:
		return channels(op, v, c)
	case []any:
		ints := make([]int, len(c))
		for i, ch := range c {
			n, err := coerceInt(op, "color", ch)
			if err != nil {
				return RGB{}, newError(op, KindInvalidColor, "color %v has a non-integer channel", v)
			}
			ints[i] = n
		}
		return channels(op, v, ints)
	case string:
		return resolveName(op, c, lookup)
	case color.Color:
		r, g, b, _ := c.RGBA()
		return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, nil
	}
	return RGB{}, newError(op, KindInvalidColor, "%v (%T) is not a color", v, v)
}

func channels(op string, v any, ch []int) (RGB, error) {
	if len(ch) != 3 {
		return RGB{}, newError(op, KindInvalidColor, "color %v must have 3 channels, got %d", v, len(ch))
	}
	for _, n := range ch {
		if n < 0 || n > 255 {
			return RGB{}, newError(op, KindInvalidColor, "color %v has a channel outside 0..255", v)
		}
	}
	return RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, nil
}

func resolveName(op, s string, lookup ColorLookup) (RGB, error) {
	name := strings.TrimSpace(s)
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return RGB{}, &Error{Op: op, Kind: KindInvalidColor, Msg: "bad hex color " + s, Err: err}
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}
	if name != "" && lookup != nil {
		if c, ok := lookup(name); ok {
			return c, nil
		}
	}
	return RGB{}, newError(op, KindInvalidColor, "unknown color %q", s)
}

// LookupColorName resolves a color name against the X11/SVG color table in
// golang.org/x/image/colornames. Case and spaces are ignored, and "grey" is
// accepted for "gray". Platforms use it as their host color table.
func LookupColorName(name string) (RGB, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	key = strings.ReplaceAll(key, "grey", "gray")
	c, ok := colornames.Map[key]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}
