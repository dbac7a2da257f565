package vexysvgo

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Parse consumes a UTF-8 SVG text buffer and produces a Document, per §4.1.
// Attribute values are XML-unescaped as they are read. Names, text and
// attribute bytes are copied out of the lexer into per-node slices held as
// Borrowed values; a value becomes owned when it had to be unescaped or
// when a later plugin writes to it.
func Parse(buf []byte) (*Document, error) {
	p := &parser{
		lexer: xml.NewLexer(parse.NewInput(strings.NewReader(string(buf)))),
		doc:   &Document{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	if p.doc.Root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return p.doc, nil
}

// ParseString is a convenience wrapper around Parse for callers holding an
// already-decoded Go string.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

type parser struct {
	lexer *xml.Lexer
	doc   *Document

	stack      []*Node // open element stack; stack[0] is the synthetic container
	sawRoot    bool
	pendingPI  bool
	pendingTag *Node // element currently accumulating attributes
}

func (p *parser) run() error {
	root := &Node{Kind: KindElement, Local: ""} // synthetic container, discarded
	p.stack = []*Node{root}

	for {
		tt, data := p.lexer.Next()
		switch tt {
		case xml.ErrorToken:
			if err := p.lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("%w: %v", ErrParse, err)
			}
			return p.finish(root)

		case xml.CommentToken:
			p.appendSibling(&Node{Kind: KindComment, Content: Borrowed(trimComment(data))})

		case xml.DOCTYPEToken:
			p.doc.Doctype = &Node{Kind: KindDoctype, DoctypeDecl: Borrowed(append([]byte(nil), data...))}

		case xml.StartTagPIToken:
			target := string(data)
			if strings.EqualFold(strings.TrimPrefix(target, "<?"), "xml") {
				p.pendingPI = true
				p.pendingTag = &Node{Kind: KindPI, PITarget: "xml"}
			} else {
				p.pendingTag = &Node{Kind: KindPI, PITarget: strings.TrimPrefix(target, "<?")}
			}

		case xml.StartTagToken:
			name := string(data)
			prefix, local, _ := splitQName(name)
			p.pendingTag = &Node{Kind: KindElement, Prefix: prefix, Local: local}

		case xml.AttributeToken:
			if p.pendingTag == nil {
				continue
			}
			name := string(data)
			val := p.lexer.AttrVal()
			val = unquote(val)
			unescaped, changed := unescapeEntities(string(val))
			if p.pendingTag.Kind == KindPI {
				if p.pendingPI {
					switch name {
					case "version":
						p.doc.Prologue.Present = true
						p.doc.Prologue.Version = unescaped
					case "encoding":
						p.doc.Prologue.Encoding = unescaped
					case "standalone":
						p.doc.Prologue.Standalone = unescaped
					}
				}
				continue
			}
			if p.pendingTag.Attrs.Has(name) {
				// Duplicate attribute: first wins (recoverable, §4.1).
				p.doc.Diagnostics = append(p.doc.Diagnostics, Diagnostic{
					Severity: SeverityWarn, Source: "parser",
					Message: fmt.Sprintf("duplicate attribute %q on <%s>: keeping first value", name, p.pendingTag.Name()),
				})
				continue
			}
			if changed {
				p.pendingTag.Attrs.Set(name, unescaped)
			} else {
				p.pendingTag.Attrs.SetBorrowed(name, append([]byte(nil), val...))
			}

		case xml.StartTagCloseToken:
			p.openTag(false)

		case xml.StartTagCloseVoidToken:
			p.openTag(true)

		case xml.StartTagClosePIToken:
			if p.pendingTag != nil && p.pendingTag.Kind == KindPI && !p.pendingPI {
				p.appendSibling(p.pendingTag)
			}
			p.pendingTag = nil
			p.pendingPI = false

		case xml.CDATAToken:
			p.appendSibling(&Node{Kind: KindCData, Content: Borrowed(trimCDATA(data))})

		case xml.TextToken:
			p.appendSibling(&Node{Kind: KindText, Content: Borrowed(append([]byte(nil), data...))})

		case xml.EndTagToken:
			name := string(data)
			if err := p.closeTag(name); err != nil {
				return err
			}
		}
	}
}

func (p *parser) openTag(void bool) {
	tag := p.pendingTag
	p.pendingTag = nil
	if tag == nil {
		return
	}
	tag.Void = void
	p.appendSibling(tag)
	if !void {
		p.stack = append(p.stack, tag)
	}
}

func (p *parser) closeTag(name string) error {
	if len(p.stack) <= 1 {
		p.doc.Diagnostics = append(p.doc.Diagnostics, Diagnostic{
			Severity: SeverityWarn, Source: "parser",
			Message: fmt.Sprintf("unexpected closing tag %q with no open element", name),
		})
		return nil
	}
	top := p.stack[len(p.stack)-1]
	if top.Name() != name {
		return fmt.Errorf("%w: unbalanced tags: expected </%s>, found </%s>", ErrParse, top.Name(), name)
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) appendSibling(n *Node) {
	parent := p.stack[len(p.stack)-1]
	if parent.Local == "" && parent.Kind == KindElement && len(p.stack) == 1 {
		// Top level: route into Preamble/Root/Trailer.
		if n.Kind == KindElement {
			if p.doc.Root == nil {
				p.doc.Root = n
				p.sawRoot = true
			} else {
				p.doc.Diagnostics = append(p.doc.Diagnostics, Diagnostic{
					Severity: SeverityWarn, Source: "parser",
					Message: "ignoring unexpected content after root close",
				})
			}
			return
		}
		if n.Kind == KindText && n.IsWhitespace() {
			return
		}
		if p.sawRoot {
			p.doc.Trailer = append(p.doc.Trailer, n)
		} else {
			p.doc.Preamble = append(p.doc.Preamble, n)
		}
		return
	}
	parent.AppendChild(n)
}

func (p *parser) finish(root *Node) error {
	_ = root
	return nil
}

func unquote(v []byte) []byte {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

func trimComment(data []byte) []byte {
	s := data
	s = bytesTrimPrefix(s, []byte("<!--"))
	s = bytesTrimSuffix(s, []byte("-->"))
	return append([]byte(nil), s...)
}

func trimCDATA(data []byte) []byte {
	s := data
	s = bytesTrimPrefix(s, []byte("<![CDATA["))
	s = bytesTrimSuffix(s, []byte("]]>"))
	return append([]byte(nil), s...)
}

func bytesTrimPrefix(s, prefix []byte) []byte {
	if len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix) {
		return s[len(prefix):]
	}
	return s
}

func bytesTrimSuffix(s, suffix []byte) []byte {
	if len(s) >= len(suffix) && string(s[len(s)-len(suffix):]) == string(suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}
