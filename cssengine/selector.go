package cssengine

import (
	"strings"
)

// Elem is the minimal view of a document element a Selector needs to
// match against — callers adapt their own node type to this interface
// rather than cssengine importing the document package (avoiding an
// import cycle back into the root package).
type Elem interface {
	TagName() string
	AttrValue(name string) (string, bool)
	ParentElem() (Elem, bool)
}

// simple is one compound selector component: a type/universal name plus
// any id/class/attribute/`:not()` qualifiers.
type simple struct {
	tag      string // "" means no type constraint, "*" means universal
	id       string
	classes  []string
	attrs    []attrTest
	nots     []simple
}

type attrTest struct {
	name, op, value string // op is "", "=", "~=", "|=", "^=", "$=", "*="
}

type combinatorStep struct {
	combinator byte // 0 (first), ' ' (descendant), '>' (child)
	sel        simple
}

// Selector is a parsed selector list item (no comma support here — split
// comma-separated selectors before calling ParseSelector, same as the spec's
// §4.6 scope for removeAttributesBySelector).
type Selector struct {
	steps []combinatorStep
}

// Specificity returns the (ids, classes+attrs, types) specificity triple
// used by the cascade (§4.6).
func (s Selector) Specificity() (ids, classesAttrs, types int) {
	for _, step := range s.steps {
		if step.sel.id != "" {
			ids++
		}
		classesAttrs += len(step.sel.classes) + len(step.sel.attrs)
		if step.sel.tag != "" && step.sel.tag != "*" {
			types++
		}
		for _, n := range step.sel.nots {
			if n.id != "" {
				ids++
			}
			classesAttrs += len(n.classes) + len(n.attrs)
			if n.tag != "" && n.tag != "*" {
				types++
			}
		}
	}
	return
}

// ParseSelector parses a single (comma-free) selector string.
func ParseSelector(s string) (Selector, error) {
	fields := splitCombinators(s)
	var sel Selector
	for _, f := range fields {
		sel.steps = append(sel.steps, f)
	}
	return sel, nil
}

func splitCombinators(s string) []combinatorStep {
	s = strings.TrimSpace(s)
	var steps []combinatorStep
	i := 0
	comb := byte(0)
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i < len(s) && s[i] == '>' {
			comb = '>'
			i++
			for i < len(s) && isSpace(s[i]) {
				i++
			}
			continue
		}
		start := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '>' {
			i++
		}
		if i > start {
			steps = append(steps, combinatorStep{combinator: comb, sel: parseSimple(s[start:i])})
			comb = ' '
		}
	}
	return steps
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }

func parseSimple(s string) simple {
	var sm simple
	i := 0
	for i < len(s) {
		switch s[i] {
		case '#':
			j := i + 1
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			sm.id = s[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			sm.classes = append(sm.classes, s[i+1:j])
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				i = len(s)
				break
			}
			sm.attrs = append(sm.attrs, parseAttrTest(s[i+1:i+j]))
			i += j + 1
		case ':':
			if strings.HasPrefix(s[i:], ":not(") {
				close := strings.IndexByte(s[i:], ')')
				if close < 0 {
					i = len(s)
					break
				}
				inner := s[i+5 : i+close]
				sm.nots = append(sm.nots, parseSimple(inner))
				i += close + 1
			} else {
				j := i + 1
				for j < len(s) && isIdentChar(s[j]) {
					j++
				}
				i = j // unsupported pseudo-class: ignored
			}
		default:
			j := i
			for j < len(s) && isIdentChar(s[j]) || (j == i && s[j] == '*') {
				j++
			}
			if j == i {
				i++
				break
			}
			sm.tag = s[i:j]
			i = j
		}
	}
	return sm
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func parseAttrTest(s string) attrTest {
	ops := []string{"~=", "|=", "^=", "$=", "*=", "="}
	for _, op := range ops {
		if idx := strings.Index(s, op); idx >= 0 {
			val := strings.TrimSpace(s[idx+len(op):])
			val = strings.Trim(val, `"'`)
			return attrTest{name: strings.TrimSpace(s[:idx]), op: opCanonical(op), value: val}
		}
	}
	return attrTest{name: strings.TrimSpace(s)}
}

func opCanonical(op string) string {
	if op == "=" {
		return "="
	}
	return op
}

// Match reports whether el satisfies sel, walking ancestors for
// descendant/child combinators.
func (sel Selector) Match(el Elem) bool {
	if len(sel.steps) == 0 {
		return false
	}
	return matchFrom(el, sel.steps, len(sel.steps)-1)
}

func matchFrom(el Elem, steps []combinatorStep, idx int) bool {
	step := steps[idx]
	if !matchSimple(el, step.sel) {
		return false
	}
	if idx == 0 {
		return true
	}
	parent, ok := el.ParentElem()
	if step.combinator == '>' {
		if !ok {
			return false
		}
		return matchFrom(parent, steps, idx-1)
	}
	// descendant: try every ancestor.
	for ok {
		if matchFrom(parent, steps, idx-1) {
			return true
		}
		parent, ok = parent.ParentElem()
	}
	return false
}

func matchSimple(el Elem, sm simple) bool {
	if sm.tag != "" && sm.tag != "*" && !strings.EqualFold(sm.tag, el.TagName()) {
		return false
	}
	if sm.id != "" {
		v, ok := el.AttrValue("id")
		if !ok || v != sm.id {
			return false
		}
	}
	for _, c := range sm.classes {
		v, ok := el.AttrValue("class")
		if !ok || !hasClass(v, c) {
			return false
		}
	}
	for _, at := range sm.attrs {
		v, ok := el.AttrValue(at.name)
		if !ok {
			return false
		}
		if !matchAttrOp(at.op, v, at.value) {
			return false
		}
	}
	for _, n := range sm.nots {
		if matchSimple(el, n) {
			return false
		}
	}
	return true
}

func matchAttrOp(op, v, want string) bool {
	switch op {
	case "":
		return true
	case "=":
		return v == want
	case "~=":
		for _, f := range strings.Fields(v) {
			if f == want {
				return true
			}
		}
		return false
	case "|=":
		return v == want || strings.HasPrefix(v, want+"-")
	case "^=":
		return strings.HasPrefix(v, want)
	case "$=":
		return strings.HasSuffix(v, want)
	case "*=":
		return strings.Contains(v, want)
	}
	return false
}

func hasClass(v, want string) bool {
	for _, f := range strings.Fields(v) {
		if f == want {
			return true
		}
	}
	return false
}

