package colorconv

// named holds a subset of the CSS named colors. The same table serves
// parsing (fromNamed accepts only these names) and, through byRGB, the
// names toNamed offers back; Format uses an offered name only when it is
// shorter than the hex form.
var named = map[string]RGB{
	"black":                {0x00, 0x00, 0x00, 1},
	"silver":               {0xc0, 0xc0, 0xc0, 1},
	"gray":                 {0x80, 0x80, 0x80, 1},
	"grey":                 {0x80, 0x80, 0x80, 1},
	"white":                {0xff, 0xff, 0xff, 1},
	"maroon":               {0x80, 0x00, 0x00, 1},
	"red":                  {0xff, 0x00, 0x00, 1},
	"purple":               {0x80, 0x00, 0x80, 1},
	"fuchsia":              {0xff, 0x00, 0xff, 1},
	"magenta":              {0xff, 0x00, 0xff, 1},
	"green":                {0x00, 0x80, 0x00, 1},
	"lime":                 {0x00, 0xff, 0x00, 1},
	"olive":                {0x80, 0x80, 0x00, 1},
	"yellow":               {0xff, 0xff, 0x00, 1},
	"navy":                 {0x00, 0x00, 0x80, 1},
	"blue":                 {0x00, 0x00, 0xff, 1},
	"teal":                 {0x00, 0x80, 0x80, 1},
	"aqua":                 {0x00, 0xff, 0xff, 1},
	"cyan":                 {0x00, 0xff, 0xff, 1},
	"orange":               {0xff, 0xa5, 0x00, 1},
	"pink":                 {0xff, 0xc0, 0xcb, 1},
	"gold":                 {0xff, 0xd7, 0x00, 1},
	"brown":                {0xa5, 0x2a, 0x2a, 1},
	"indigo":               {0x4b, 0x00, 0x82, 1},
	"ivory":                {0xff, 0xff, 0xf0, 1},
	"khaki":                {0xf0, 0xe6, 0x8c, 1},
	"lavender":             {0xe6, 0xe6, 0xfa, 1},
	"plum":                 {0xdd, 0xa0, 0xdd, 1},
	"salmon":               {0xfa, 0x80, 0x72, 1},
	"sienna":               {0xa0, 0x52, 0x2d, 1},
	"tan":                  {0xd2, 0xb4, 0x8c, 1},
	"tomato":               {0xff, 0x63, 0x47, 1},
	"violet":               {0xee, 0x82, 0xee, 1},
	"wheat":                {0xf5, 0xde, 0xb3, 1},
	"chocolate":            {0xd2, 0x69, 0x1e, 1},
	"coral":                {0xff, 0x7f, 0x50, 1},
	"crimson":              {0xdc, 0x14, 0x3c, 1},
	"darkblue":             {0x00, 0x00, 0x8b, 1},
	"darkcyan":             {0x00, 0x8b, 0x8b, 1},
	"darkgray":             {0xa9, 0xa9, 0xa9, 1},
	"darkgreen":            {0x00, 0x64, 0x00, 1},
	"darkgrey":             {0xa9, 0xa9, 0xa9, 1},
	"darkorange":           {0xff, 0x8c, 0x00, 1},
	"darkred":              {0x8b, 0x00, 0x00, 1},
	"deeppink":             {0xff, 0x14, 0x93, 1},
	"hotpink":              {0xff, 0x69, 0xb4, 1},
	"lightblue":            {0xad, 0xd8, 0xe6, 1},
	"lightgray":            {0xd3, 0xd3, 0xd3, 1},
	"lightgreen":           {0x90, 0xee, 0x90, 1},
	"lightgrey":            {0xd3, 0xd3, 0xd3, 1},
	"lightpink":            {0xff, 0xb6, 0xc1, 1},
	"lightyellow":          {0xff, 0xff, 0xe0, 1},
	"orchid":               {0xda, 0x70, 0xd6, 1},
	"skyblue":              {0x87, 0xce, 0xeb, 1},
	"transparent":          {0x00, 0x00, 0x00, 0},
}

// byRGB is the deterministic reverse index of named: when several names
// share a color (gray/grey, cyan/aqua, ...) the shortest, then
// lexicographically first, name wins — built once so Format's choice never
// depends on map iteration order.
var byRGB = buildReverseIndex()

func buildReverseIndex() map[RGB]string {
	out := make(map[RGB]string, len(named))
	for name, c := range named {
		cur, ok := out[c]
		if !ok || len(name) < len(cur) || (len(name) == len(cur) && name < cur) {
			out[c] = name
		}
	}
	return out
}

func fromNamed(s string) (RGB, bool) {
	c, ok := named[lowerASCII(s)]
	return c, ok
}

// toNamed offers back a name for c only when one of the curated short
// names matches exactly — Format compares its length against the hex form
// and only uses it when it is no longer.
func toNamed(c RGB) (string, bool) {
	if c.A != 1 {
		return "", false
	}
	name, ok := byRGB[c]
	return name, ok
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
