// Package cssengine implements the style/selector half of §4.6:
// `<style>` declaration parsing (for mergeStyles/inlineStyles/
// minifyStyles/convertStyleToAttrs) and a minimal selector-matching
// engine restricted to the combinators the spec names (type, universal,
// id, class, attribute, descendant, child, :not()).
//
// Declaration-value tokenizing follows pgavlin-svg2/util.go's cssTokens
// helper, which wraps tdewolff/parse/v2/css.NewLexer over a single
// property value; the selector grammar lexer is new; pgavlin-svg2's own
// internal/cssvalue package matches CSS *value* grammars (lengths,
// percentages, angles) rather than selectors, so it is grounded on only
// for its rune-scanning style, not reused directly.
package cssengine

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one `property: value` pair from a style block or a style
// attribute, with !important tracked separately for cascade resolution.
type Declaration struct {
	Property   string
	Value      string
	Important  bool
}

// ParseDeclarations splits a `<style>` element body or `style="..."`
// attribute value into individual declarations, on top-level semicolons and
// each statement's first colon; values are kept as trimmed text (use Tokens
// to tokenize one).
func ParseDeclarations(body string) []Declaration {
	var out []Declaration
	for _, stmt := range splitTopLevel(body, ';') {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		colon := strings.IndexByte(stmt, ':')
		if colon < 0 {
			continue
		}
		prop := strings.TrimSpace(stmt[:colon])
		val := strings.TrimSpace(stmt[colon+1:])
		important := false
		if idx := strings.LastIndex(strings.ToLower(val), "!important"); idx >= 0 {
			val = strings.TrimSpace(val[:idx])
			important = true
		}
		out = append(out, Declaration{Property: prop, Value: val, Important: important})
	}
	return out
}

// splitTopLevel splits s on sep, respecting (...) and "..."/'...' nesting
// so a value like "url(data:...;base64,...)" isn't split on an internal
// semicolon.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// Tokens tokenizes a single declaration value into its component tokens
// (idents, numbers, functions, strings, ...) using tdewolff/parse/v2/css.
// colorconv and transformconv deliberately do not share this helper: both
// only ever see a flat numeric function argument list, while style values
// can carry nested functions, strings, and URLs that need a real CSS
// tokenizer to split correctly.
func Tokens(value string) []string {
	l := css.NewLexer(parse.NewInputString(value))
	var out []string
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.WhitespaceToken {
			continue
		}
		out = append(out, string(data))
	}
	return out
}
