package xast

import (
	"bytes"
	"html"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"github.com/tdewolff/svgo/table"
)

type builder struct {
	doc   *Document
	stack []*Element
	el    *Element  // element whose start tag is being read
	pi    *ProcInst // processing instruction whose attributes are being read
	text  int       // number of open text elements
}

func (b *builder) append(n Node) {
	if len(b.stack) == 0 {
		b.doc.Children = append(b.doc.Children, n)
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, n)
	}
}

func (b *builder) push(el *Element) {
	b.stack = append(b.stack, el)
	if table.TextElems[el.Tag] {
		b.text++
	}
}

// pop closes the innermost open element with the given tag and everything opened after it.
func (b *builder) pop(tag string) {
	for i := len(b.stack) - 1; 0 <= i; i-- {
		if b.stack[i].Tag == tag {
			for _, el := range b.stack[i:] {
				if table.TextElems[el.Tag] {
					b.text--
				}
			}
			b.stack = b.stack[:i]
			return
		}
	}
}

// Parse builds a document from SVG markup. Whitespace-only text is dropped and other text is trimmed, except inside
// text content elements where whitespace is significant.
func Parse(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// the lexer replaces tabs and newlines in attribute values by spaces, values are read from src instead
	input := parse.NewInputBytes(bytes.Clone(src))
	b := &builder{doc: &Document{}}
	l := xml.NewLexer(input)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			return b.doc, nil
		case xml.StartTagToken:
			b.el = &Element{Tag: string(l.Text())}
			b.append(b.el)
		case xml.StartTagPIToken:
			b.pi = &ProcInst{Target: string(l.Text())}
			b.append(b.pi)
		case xml.AttributeToken:
			if b.pi != nil {
				b.pi.Data += string(data)
			} else if b.el != nil {
				val := l.AttrVal()
				end := input.Offset()
				b.el.Attrs = append(b.el.Attrs, attr(l.Text(), src[end-len(val):end]))
			}
		case xml.StartTagCloseToken:
			if b.el != nil {
				b.push(b.el)
				b.el = nil
			}
		case xml.StartTagCloseVoidToken:
			b.el = nil
		case xml.StartTagClosePIToken:
			if b.pi != nil {
				b.pi.Data = strings.TrimSpace(b.pi.Data)
				b.pi = nil
			}
		case xml.EndTagToken:
			b.pop(string(l.Text()))
		case xml.TextToken:
			text := l.Text()
			if b.text == 0 {
				if parse.IsAllWhitespace(text) {
					continue
				}
				text = parse.TrimWhitespace(text)
			}
			b.append(&Text{Data: html.UnescapeString(string(text))})
		case xml.CommentToken:
			b.append(&Comment{Data: string(parse.TrimWhitespace(l.Text()))})
		case xml.CDATAToken:
			b.append(&CData{Data: string(l.Text())})
		case xml.DOCTYPEToken:
			b.append(&Doctype{Data: string(parse.TrimWhitespace(l.Text()))})
		}
	}
}

// ParseString builds a document from SVG markup in s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func attr(name, val []byte) Attr {
	if len(val) == 0 {
		return Attr{Name: string(name), Bare: true}
	}
	if 1 < len(val) && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		val = val[1 : len(val)-1]
	}
	return Attr{Name: string(name), Value: html.UnescapeString(string(val))}
}
