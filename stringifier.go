package vexysvgo

import (
	"fmt"
	"strings"
)

// Stringify serializes doc back to SVG text per the stringifier contract in
// §2.6 and §6: UTF-8, preserves or omits the declared prologue, respects
// UseShortTags for empty elements, and honors pretty-printing, attribute
// quoting, and line-ending configuration.
func Stringify(doc *Document, cfg JS2SVG) (string, error) {
	if doc.Root == nil {
		return "", fmt.Errorf("%w: document has no root element", ErrStringify)
	}

	s := &stringifier{cfg: cfg, nl: string(cfg.EOL)}
	if s.nl != "\r\n" {
		s.nl = "\n"
	}
	if cfg.EOL == EOLCRLF {
		s.nl = "\r\n"
	}

	if doc.Prologue.Present {
		s.writeProlog(doc.Prologue)
	}
	if doc.Doctype != nil {
		s.b.WriteString(doc.Doctype.DoctypeDecl.String())
		s.b.WriteString(s.nl)
	}
	for _, n := range doc.Preamble {
		s.writeNode(n, 0)
		s.b.WriteString(s.nl)
	}

	s.writeNode(doc.Root, 0)

	for _, n := range doc.Trailer {
		s.b.WriteString(s.nl)
		s.writeNode(n, 0)
	}

	if cfg.FinalNewline {
		s.b.WriteString(s.nl)
	}

	return s.b.String(), nil
}

type stringifier struct {
	b   strings.Builder
	cfg JS2SVG
	nl  string
}

func (s *stringifier) writeProlog(p Prologue) {
	s.b.WriteString(`<?xml version="`)
	if p.Version == "" {
		s.b.WriteString("1.0")
	} else {
		s.b.WriteString(p.Version)
	}
	s.b.WriteByte('"')
	if p.Encoding != "" {
		s.b.WriteString(` encoding="`)
		s.b.WriteString(p.Encoding)
		s.b.WriteByte('"')
	}
	if p.Standalone != "" {
		s.b.WriteString(` standalone="`)
		s.b.WriteString(p.Standalone)
		s.b.WriteByte('"')
	}
	s.b.WriteString("?>")
	s.b.WriteString(s.nl)
}

func (s *stringifier) indent(depth int) {
	if !s.cfg.Pretty {
		return
	}
	s.b.WriteString(strings.Repeat(" ", depth*s.cfg.Indent))
}

func (s *stringifier) writeNode(n *Node, depth int) {
	switch n.Kind {
	case KindElement:
		s.writeElement(n, depth)
	case KindText:
		s.indent(depth)
		s.b.WriteString(escapeText(n.Content.String()))
	case KindCData:
		s.indent(depth)
		s.b.WriteString("<![CDATA[")
		s.b.WriteString(n.Content.String())
		s.b.WriteString("]]>")
	case KindComment:
		s.indent(depth)
		s.b.WriteString("<!--")
		s.b.WriteString(n.Content.String())
		s.b.WriteString("-->")
	case KindPI:
		s.indent(depth)
		s.b.WriteString("<?")
		s.b.WriteString(n.PITarget)
		if d := n.PIData.String(); d != "" {
			s.b.WriteByte(' ')
			s.b.WriteString(d)
		}
		s.b.WriteString("?>")
	}
}

func (s *stringifier) writeElement(n *Node, depth int) {
	s.indent(depth)
	s.b.WriteByte('<')
	s.b.WriteString(n.Name())

	for _, a := range n.Attrs.All() {
		s.b.WriteByte(' ')
		s.b.WriteString(a.Name)
		s.b.WriteByte('=')
		s.b.WriteString(s.cfg.AttrStart)
		s.b.WriteString(escapeAttrValue(a.Value.String()))
		s.b.WriteString(s.cfg.AttrEnd)
	}

	if len(n.Children) == 0 && s.cfg.UseShortTags {
		s.b.WriteString("/>")
		return
	}

	s.b.WriteByte('>')

	if len(n.Children) == 0 {
		s.b.WriteString("</")
		s.b.WriteString(n.Name())
		s.b.WriteByte('>')
		return
	}

	onlyInlineText := s.cfg.Pretty && allInlineText(n.Children)
	if s.cfg.Pretty && !onlyInlineText {
		s.b.WriteString(s.nl)
	}
	for _, c := range n.Children {
		childDepth := depth + 1
		s.writeNode(c, boolDepth(s.cfg.Pretty && !onlyInlineText, childDepth))
		if s.cfg.Pretty && !onlyInlineText {
			s.b.WriteString(s.nl)
		}
	}
	if s.cfg.Pretty && !onlyInlineText {
		s.indent(depth)
	}

	s.b.WriteString("</")
	s.b.WriteString(n.Name())
	s.b.WriteByte('>')
}

func boolDepth(pretty bool, depth int) int {
	if pretty {
		return depth
	}
	return 0
}

// allInlineText reports whether children are a single text/cdata run, in
// which case pretty-printing should not insert newlines/indentation around
// it (so e.g. <title>Foo</title> stays on one line).
func allInlineText(children []*Node) bool {
	if len(children) != 1 {
		return false
	}
	return children[0].Kind == KindText || children[0].Kind == KindCData
}
