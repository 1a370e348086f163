// Package stringify writes a document tree back to SVG markup, either compact or pretty printed.
package stringify // import "github.com/tdewolff/svgo/stringify"

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/svgo/table"
	"github.com/tdewolff/svgo/xast"
)

// EOL is the line terminator used in pretty mode and for the final newline.
type EOL int

// EOL values.
const (
	LF EOL = iota
	CRLF
)

func (eol EOL) String() string {
	if eol == CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseEOL parses "lf" or "crlf", case-insensitive.
func ParseEOL(s string) (EOL, error) {
	switch strings.ToLower(s) {
	case "", "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	}
	return LF, fmt.Errorf("unknown end of line: %s", s)
}

// Options are the serializer options. Empty delimiters are replaced by their default, see DefaultOptions.
type Options struct {
	DoctypeStart  string
	DoctypeEnd    string
	ProcInstStart string
	ProcInstEnd   string
	TagOpenStart  string
	TagOpenEnd    string
	TagCloseStart string
	TagCloseEnd   string
	TagShortStart string
	TagShortEnd   string
	AttrStart     string
	AttrEnd       string
	CommentStart  string
	CommentEnd    string
	CDataStart    string
	CDataEnd      string
	TextStart     string
	TextEnd       string

	Indent       int // number of spaces per level, negative for a tab
	Pretty       bool
	UseShortTags bool
	EOL          EOL
	FinalNewline bool

	// EncodeEntity returns the replacement for a character of text and attribute values, nil writes values as is.
	EncodeEntity func(rune) string
}

// DefaultOptions returns compact output with short tags.
func DefaultOptions() Options {
	return Options{
		DoctypeStart:  "<!DOCTYPE",
		DoctypeEnd:    ">",
		ProcInstStart: "<?",
		ProcInstEnd:   "?>",
		TagOpenStart:  "<",
		TagOpenEnd:    ">",
		TagCloseStart: "</",
		TagCloseEnd:   ">",
		TagShortStart: "<",
		TagShortEnd:   "/>",
		AttrStart:     `="`,
		AttrEnd:       `"`,
		CommentStart:  "<!--",
		CommentEnd:    "-->",
		CDataStart:    "<![CDATA[",
		CDataEnd:      "]]>",
		Indent:        4,
		UseShortTags:  true,
		EncodeEntity:  EncodeEntity,
	}
}

// EncodeEntity encodes the XML special characters & ' " < >.
func EncodeEntity(c rune) string {
	switch c {
	case '&':
		return "&amp;"
	case '\'':
		return "&apos;"
	case '"':
		return "&quot;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	}
	return string(c)
}

func setDefault(s *string, def string) {
	if *s == "" {
		*s = def
	}
}

////////////////////////////////////////////////////////////////

type stringifier struct {
	w        *bytes.Buffer
	o        Options // delimiters with the line terminator appended in pretty mode
	plain    Options // delimiters without line terminators

	indent  string
	level   int
	textCtx *xast.Element // text content element that suspended pretty printing
}

func newStringifier(w *bytes.Buffer, o Options) *stringifier {
	defaults := DefaultOptions()
	setDefault(&o.DoctypeStart, defaults.DoctypeStart)
	setDefault(&o.DoctypeEnd, defaults.DoctypeEnd)
	setDefault(&o.ProcInstStart, defaults.ProcInstStart)
	setDefault(&o.ProcInstEnd, defaults.ProcInstEnd)
	setDefault(&o.TagOpenStart, defaults.TagOpenStart)
	setDefault(&o.TagOpenEnd, defaults.TagOpenEnd)
	setDefault(&o.TagCloseStart, defaults.TagCloseStart)
	setDefault(&o.TagCloseEnd, defaults.TagCloseEnd)
	setDefault(&o.TagShortStart, defaults.TagShortStart)
	setDefault(&o.TagShortEnd, defaults.TagShortEnd)
	setDefault(&o.AttrStart, defaults.AttrStart)
	setDefault(&o.AttrEnd, defaults.AttrEnd)
	setDefault(&o.CommentStart, defaults.CommentStart)
	setDefault(&o.CommentEnd, defaults.CommentEnd)
	setDefault(&o.CDataStart, defaults.CDataStart)
	setDefault(&o.CDataEnd, defaults.CDataEnd)

	s := &stringifier{w: w, plain: o}
	if o.Pretty {
		eol := o.EOL.String()
		o.DoctypeEnd += eol
		o.ProcInstEnd += eol
		o.CommentEnd += eol
		o.CDataEnd += eol
		o.TagShortEnd += eol
		o.TagOpenEnd += eol
		o.TagCloseEnd += eol
		o.TextEnd += eol
		if o.Indent < 0 {
			s.indent = "\t"
		} else {
			s.indent = strings.Repeat(" ", o.Indent)
		}
	}
	s.o = o
	return s
}

// delims returns the delimiters in effect, which are the ones without line terminators inside a text content element.
func (s *stringifier) delims() *Options {
	if s.textCtx != nil {
		return &s.plain
	}
	return &s.o
}

func (s *stringifier) writeIndent() {
	if s.o.Pretty && s.textCtx == nil && 1 < s.level {
		for i := 1; i < s.level; i++ {
			s.w.WriteString(s.indent)
		}
	}
}

func (s *stringifier) writeEncoded(val string) {
	if s.o.EncodeEntity == nil {
		s.w.WriteString(val)
		return
	}
	for _, c := range val {
		s.w.WriteString(s.o.EncodeEntity(c))
	}
}

func (s *stringifier) writeDocument(doc *xast.Document) {
	for _, n := range doc.Children {
		s.writeNode(n)
	}
	if s.o.FinalNewline && 0 < s.w.Len() && s.w.Bytes()[s.w.Len()-1] != '\n' {
		s.w.WriteString(s.o.EOL.String())
	}
}

func (s *stringifier) writeNode(n xast.Node) {
	s.level++
	switch n := n.(type) {
	case *xast.Element:
		s.writeElement(n)
	case *xast.Text:
		d := s.delims()
		s.writeIndent()
		s.w.WriteString(d.TextStart)
		s.writeEncoded(n.Data)
		s.w.WriteString(d.TextEnd)
	case *xast.Comment:
		d := s.delims()
		s.writeIndent()
		s.w.WriteString(d.CommentStart)
		s.w.WriteString(n.Data)
		s.w.WriteString(d.CommentEnd)
	case *xast.CData:
		d := s.delims()
		s.writeIndent()
		s.w.WriteString(d.CDataStart)
		s.w.WriteString(n.Data)
		s.w.WriteString(d.CDataEnd)
	case *xast.ProcInst:
		d := s.delims()
		s.writeIndent()
		s.w.WriteString(d.ProcInstStart)
		s.w.WriteString(n.Target)
		if n.Data != "" {
			s.w.WriteByte(' ')
			s.w.WriteString(n.Data)
		}
		s.w.WriteString(d.ProcInstEnd)
	case *xast.Doctype:
		d := s.delims()
		s.writeIndent()
		s.w.WriteString(d.DoctypeStart)
		if n.Data != "" {
			s.w.WriteByte(' ')
			s.w.WriteString(n.Data)
		}
		s.w.WriteString(d.DoctypeEnd)
	}
	s.level--
}

func (s *stringifier) writeAttrs(el *xast.Element) {
	d := s.delims()
	for _, attr := range el.Attrs {
		s.w.WriteByte(' ')
		s.w.WriteString(attr.Name)
		if !attr.Bare {
			s.w.WriteString(d.AttrStart)
			s.writeEncoded(attr.Value)
			s.w.WriteString(d.AttrEnd)
		}
	}
}

func (s *stringifier) writeElement(el *xast.Element) {
	d := s.delims()
	if len(el.Children) == 0 {
		s.writeIndent()
		if s.o.UseShortTags {
			s.w.WriteString(d.TagShortStart)
			s.w.WriteString(el.Tag)
			s.writeAttrs(el)
			s.w.WriteString(d.TagShortEnd)
		} else {
			s.w.WriteString(d.TagOpenStart)
			s.w.WriteString(el.Tag)
			s.writeAttrs(el)
			s.w.WriteString(s.plain.TagOpenEnd)
			s.w.WriteString(s.plain.TagCloseStart)
			s.w.WriteString(el.Tag)
			s.w.WriteString(d.TagCloseEnd)
		}
		return
	}

	openEnd, closeStart := d.TagOpenEnd, d.TagCloseStart
	indentClose := true
	if s.textCtx == nil && table.TextElems[el.Tag] {
		openEnd, closeStart = s.plain.TagOpenEnd, s.plain.TagCloseStart
		indentClose = false
	}

	s.writeIndent()
	s.w.WriteString(d.TagOpenStart)
	s.w.WriteString(el.Tag)
	s.writeAttrs(el)
	s.w.WriteString(openEnd)

	if !indentClose {
		s.textCtx = el
	}
	for _, child := range el.Children {
		s.writeNode(child)
	}
	if s.textCtx == el {
		s.textCtx = nil
	}

	if indentClose {
		s.writeIndent()
	}
	s.w.WriteString(closeStart)
	s.w.WriteString(el.Tag)
	s.w.WriteString(s.delims().TagCloseEnd)
}

////////////////////////////////////////////////////////////////

// String returns the markup of doc.
func String(doc *xast.Document, o Options) string {
	buf := &bytes.Buffer{}
	newStringifier(buf, o).writeDocument(doc)
	return buf.String()
}

// Bytes returns the markup of doc.
func Bytes(doc *xast.Document, o Options) []byte {
	buf := &bytes.Buffer{}
	newStringifier(buf, o).writeDocument(doc)
	return buf.Bytes()
}

// Write writes the markup of doc to w.
func Write(w io.Writer, doc *xast.Document, o Options) error {
	buf := &bytes.Buffer{}
	newStringifier(buf, o).writeDocument(doc)
	_, err := w.Write(buf.Bytes())
	return err
}
