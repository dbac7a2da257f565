// Package colorconv implements the color-folding half of §4.8's
// convertColors: parsing a CSS color value (hex, rgb()/rgba(),
// hsl()/hsla(), named color, or currentColor) and re-rendering it in
// whichever of its forms serializes shortest.
//
// Color function arguments are split by a small hand-rolled tokenizer (see
// tokens); the color-table and hue/rgb math follow pgavlin-svg2/types.go's
// parseColor/parseColorFunction/parseHexColor and util.go's hueToRGB.
package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color with separate opacity.
type RGB struct {
	R, G, B uint8
	A       float64 // 1 == opaque
}

// ErrInvalid is returned for a value that isn't a recognizable color.
type ErrInvalid struct{ Value string }

func (e *ErrInvalid) Error() string { return fmt.Sprintf("colorconv: invalid color %q", e.Value) }

// Parse decodes a CSS color value. "none", "currentColor", "inherit",
// "transparent", and url()/gradient references are left untouched by the
// caller — Parse only handles value shapes it can re-encode.
func Parse(s string) (RGB, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return RGB{}, &ErrInvalid{s}
	}
	if v[0] == '#' {
		return parseHex(v)
	}
	if name, ok := fromNamed(v); ok {
		return name, nil
	}
	lower := strings.ToLower(v)
	switch {
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseRGBFunc(v)
	case strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla("):
		return parseHSLFunc(v)
	}
	return RGB{}, &ErrInvalid{s}
}

// IsColorLike reports whether s looks like a color Parse might succeed on,
// without the allocation/error cost of parsing it — used by plugins to
// skip currentColor/url()/none/inherit quickly. "transparent" is in the
// named table, so it reports true.
func IsColorLike(s string) bool {
	v := strings.TrimSpace(s)
	if v == "" {
		return false
	}
	if v[0] == '#' {
		return true
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "rgb") || strings.HasPrefix(lower, "hsl") {
		return true
	}
	_, ok := fromNamed(v)
	return ok
}

func parseHex(v string) (RGB, error) {
	h := v[1:]
	expand := func(c byte) (byte, byte) { return c, c }
	var r, g, b byte
	var a float64 = 1
	hexByte := func(hi, lo byte) (byte, bool) {
		hv, ok1 := hexDigit(hi)
		lv, ok2 := hexDigit(lo)
		if !ok1 || !ok2 {
			return 0, false
		}
		return hv<<4 | lv, true
	}
	switch len(h) {
	case 3, 4:
		var ok bool
		r, ok = expandPair(h[0])
		if !ok {
			return RGB{}, &ErrInvalid{v}
		}
		g, ok = expandPair(h[1])
		if !ok {
			return RGB{}, &ErrInvalid{v}
		}
		b, ok = expandPair(h[2])
		if !ok {
			return RGB{}, &ErrInvalid{v}
		}
		if len(h) == 4 {
			av, ok := expandPair(h[3])
			if !ok {
				return RGB{}, &ErrInvalid{v}
			}
			a = float64(av) / 255
		}
	case 6, 8:
		var ok bool
		r, ok = hexByte(h[0], h[1])
		if !ok {
			return RGB{}, &ErrInvalid{v}
		}
		g, ok = hexByte(h[2], h[3])
		if !ok {
			return RGB{}, &ErrInvalid{v}
		}
		b, ok = hexByte(h[4], h[5])
		if !ok {
			return RGB{}, &ErrInvalid{v}
		}
		if len(h) == 8 {
			av, ok := hexByte(h[6], h[7])
			if !ok {
				return RGB{}, &ErrInvalid{v}
			}
			a = float64(av) / 255
		}
	default:
		return RGB{}, &ErrInvalid{v}
	}
	_ = expand
	return RGB{R: r, G: g, B: b, A: a}, nil
}

func expandPair(c byte) (byte, bool) {
	v, ok := hexDigit(c)
	if !ok {
		return 0, false
	}
	return v<<4 | v, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// tokens splits a CSS function's argument list into comma/slash/whitespace-
// separated component strings. Colors never nest functions or strings
// inside rgb()/hsl(), so a hand-rolled split is exact here; the
// tdewolff/parse/v2/css lexer is reserved for cssengine's full
// declaration-value tokenizing, where nested functions and quoted strings
// actually occur.
func tokens(src string) []string {
	open := strings.IndexByte(src, '(')
	close := strings.LastIndexByte(src, ')')
	if open < 0 || close < 0 || close <= open {
		return nil
	}
	inner := src[open+1 : close]
	var out []string
	for _, field := range strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	}) {
		if field != "" {
			out = append(out, field)
		}
	}
	return out
}

func parseRGBFunc(v string) (RGB, error) {
	args := tokens(v)
	if len(args) != 3 && len(args) != 4 {
		return RGB{}, &ErrInvalid{v}
	}
	ch := func(s string) (uint8, error) {
		if strings.HasSuffix(s, "%") {
			f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			if err != nil {
				return 0, err
			}
			return clamp8(f / 100 * 255), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return clamp8(f), nil
	}
	r, err := ch(args[0])
	if err != nil {
		return RGB{}, &ErrInvalid{v}
	}
	g, err := ch(args[1])
	if err != nil {
		return RGB{}, &ErrInvalid{v}
	}
	b, err := ch(args[2])
	if err != nil {
		return RGB{}, &ErrInvalid{v}
	}
	a := 1.0
	if len(args) == 4 {
		a, err = parseAlpha(args[3])
		if err != nil {
			return RGB{}, &ErrInvalid{v}
		}
	}
	return RGB{R: r, G: g, B: b, A: a}, nil
}

func parseAlpha(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		return f / 100, err
	}
	return strconv.ParseFloat(s, 64)
}

func clamp8(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(math.Round(f))
}

func parseHSLFunc(v string) (RGB, error) {
	args := tokens(v)
	if len(args) != 3 && len(args) != 4 {
		return RGB{}, &ErrInvalid{v}
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return RGB{}, &ErrInvalid{v}
	}
	s, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil {
		return RGB{}, &ErrInvalid{v}
	}
	l, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return RGB{}, &ErrInvalid{v}
	}
	r, g, b := hslToRGB(h, s/100, l/100)
	a := 1.0
	if len(args) == 4 {
		a, err = parseAlpha(args[3])
		if err != nil {
			return RGB{}, &ErrInvalid{v}
		}
	}
	return RGB{R: r, G: g, B: b, A: a}, nil
}

// hslToRGB converts HSL (h in degrees, s/l in [0,1]) to 8-bit RGB, following
// pgavlin-svg2/util.go's hueToRGB construction.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if s == 0 {
		v := clamp8(l * 255)
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	r := hueToRGB(p, q, hk+1.0/3)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3)
	return clamp8(r * 255), clamp8(g * 255), clamp8(b * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Format renders c in whichever of its equivalent textual forms is
// shortest: 3-digit hex, 4-digit hex (with alpha), 6-digit hex, 8-digit
// hex, or a known color name, with hex preferred on a length tie (a name is
// used only when strictly shorter than the hex form). Alpha-bearing colors
// never consider a name.
func Format(c RGB) string {
	if c.A < 1 {
		return formatHexAlpha(c)
	}
	if name, ok := toNamed(c); ok {
		hex := formatHex(c)
		if len(name) < len(hex) {
			return name
		}
		return hex
	}
	return formatHex(c)
}

func formatHex(c RGB) string {
	if canShorten(c.R) && canShorten(c.G) && canShorten(c.B) {
		return fmt.Sprintf("#%x%x%x", c.R>>4, c.G>>4, c.B>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func formatHexAlpha(c RGB) string {
	a := clamp8(c.A * 255)
	if canShorten(c.R) && canShorten(c.G) && canShorten(c.B) && canShorten(a) {
		return fmt.Sprintf("#%x%x%x%x", c.R>>4, c.G>>4, c.B>>4, a>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, a)
}

func canShorten(v uint8) bool { return v&0x0F == v>>4 }
