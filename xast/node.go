// Package xast holds the document tree that every optimization pass reads and rewrites.
package xast // import "github.com/tdewolff/svgo/xast"

// Node is one of *Element, *Text, *Comment, *ProcInst, *CData or *Doctype.
type Node interface {
	node()
}

// Document is the top-level list of nodes: doctype, processing instructions, comments, the root element and stray text.
type Document struct {
	Children []Node
}

// Root returns the first top-level element or nil.
func (d *Document) Root() *Element {
	for _, child := range d.Children {
		if el, ok := child.(*Element); ok {
			return el
		}
	}
	return nil
}

// Attr is an attribute. Bare attributes have no value and are written without '='.
type Attr struct {
	Name  string
	Value string
	Bare  bool
}

// Element is a tag with ordered attributes and ordered children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Text is character data, entities decoded.
type Text struct {
	Data string
}

// Comment is the content between <!-- and -->.
type Comment struct {
	Data string
}

// ProcInst is a processing instruction such as <?xml version="1.0"?>.
type ProcInst struct {
	Target string
	Data   string
}

// CData is the content of a <![CDATA[...]]> section.
type CData struct {
	Data string
}

// Doctype is the body of a <!DOCTYPE ...> declaration.
type Doctype struct {
	Data string
}

func (*Element) node()  {}
func (*Text) node()     {}
func (*Comment) node()  {}
func (*ProcInst) node() {}
func (*CData) node()    {}
func (*Doctype) node()  {}

////////////////////////////////////////////////////////////////

// NewElement returns an element with the given tag and valued attributes given as name/value pairs.
func NewElement(tag string, attrs ...string) *Element {
	el := &Element{Tag: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.Attrs = append(el.Attrs, Attr{Name: attrs[i], Value: attrs[i+1]})
	}
	return el
}

// AttrIndex returns the index of the first attribute with the given name, or -1.
func (el *Element) AttrIndex(name string) int {
	for i := range el.Attrs {
		if el.Attrs[i].Name == name {
			return i
		}
	}
	return -1
}

// Attr returns the first attribute with the given name, or nil.
func (el *Element) Attr(name string) *Attr {
	if i := el.AttrIndex(name); i != -1 {
		return &el.Attrs[i]
	}
	return nil
}

// AttrVal returns the value of the first attribute with the given name. Bare attributes are reported as absent.
func (el *Element) AttrVal(name string) (string, bool) {
	if attr := el.Attr(name); attr != nil && !attr.Bare {
		return attr.Value, true
	}
	return "", false
}

// HasAttr returns true when an attribute with the given name exists, valued or not.
func (el *Element) HasAttr(name string) bool {
	return el.AttrIndex(name) != -1
}

// SetAttr overwrites the value of the first attribute with the given name, or appends a new one.
func (el *Element) SetAttr(name, val string) {
	if attr := el.Attr(name); attr != nil {
		attr.Value = val
		attr.Bare = false
		return
	}
	el.Attrs = append(el.Attrs, Attr{Name: name, Value: val})
}

// RemoveAttr removes the first attribute with the given name and reports whether it existed.
func (el *Element) RemoveAttr(name string) bool {
	i := el.AttrIndex(name)
	if i == -1 {
		return false
	}
	el.RemoveAttrAt(i)
	return true
}

// RemoveAttrAt removes the attribute at index i, keeping the order of the others.
func (el *Element) RemoveAttrAt(i int) {
	el.Attrs = append(el.Attrs[:i], el.Attrs[i+1:]...)
}

// ChildElements returns the element children in order.
func (el *Element) ChildElements() []*Element {
	var els []*Element
	for _, child := range el.Children {
		if c, ok := child.(*Element); ok {
			els = append(els, c)
		}
	}
	return els
}
