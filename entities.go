package vexysvgo

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// unescapeEntities decodes the five predefined XML entities and numeric
// character references in an attribute value or text run. It returns the
// input unchanged (same underlying bytes, no allocation) and false when no
// "&" is present.
func unescapeEntities(s string) (string, bool) {
	if !strings.ContainsRune(s, '&') {
		return s, false
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(s[i:], ';')
		if end < 0 {
			// Unterminated reference: copy verbatim and stop looking for more.
			b.WriteString(s[i:])
			break
		}
		end += i

		ref := s[i+1 : end]
		if r, ok := decodeEntity(ref); ok {
			b.WriteRune(r)
		} else {
			// Unknown entity: preserve verbatim (parser treats this as
			// fatal only in attribute position without a recovery policy;
			// the caller decides whether to surface a diagnostic).
			b.WriteString(s[i : end+1])
		}
		i = end + 1
	}

	return b.String(), true
}

func decodeEntity(ref string) (rune, bool) {
	switch ref {
	case "amp":
		return '&', true
	case "lt":
		return '<', true
	case "gt":
		return '>', true
	case "quot":
		return '"', true
	case "apos":
		return '\'', true
	}

	if len(ref) > 1 && ref[0] == '#' {
		var (
			n   int64
			err error
		)
		if len(ref) > 2 && (ref[1] == 'x' || ref[1] == 'X') {
			n, err = strconv.ParseInt(ref[2:], 16, 32)
		} else {
			n, err = strconv.ParseInt(ref[1:], 10, 32)
		}
		if err == nil && n >= 0 && n <= utf8.MaxRune && utf8.ValidRune(rune(n)) {
			return rune(n), true
		}
	}

	return 0, false
}

// escapeAttrValue escapes a string for use inside a double-quoted XML
// attribute value.
func escapeAttrValue(s string) string {
	if !strings.ContainsAny(s, "&<>\"") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeText escapes a string for use as element text content.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
