package xast

// Decision tells Walk how to continue after an enter callback.
type Decision int

// Decisions.
const (
	Continue     Decision = iota
	SkipChildren          // don't descend, but do call Leave
	Abort                 // stop the whole walk
)

// Visitor holds enter callbacks per node type and an optional leave callback for elements. Nil callbacks are skipped.
// An Element callback may rewrite the element, including its children, before Walk descends into them.
type Visitor struct {
	Element  func(*Element) Decision
	Text     func(*Text) Decision
	Comment  func(*Comment) Decision
	ProcInst func(*ProcInst) Decision
	CData    func(*CData) Decision
	Doctype  func(*Doctype) Decision

	Leave func(*Element)
}

// Walk visits all nodes of the document depth-first. It returns false when a callback aborted.
func Walk(doc *Document, v Visitor) bool {
	return walkNodes(doc.Children, &v)
}

// WalkElement visits el and its descendants depth-first. It returns false when a callback aborted.
func WalkElement(el *Element, v Visitor) bool {
	return walkNode(el, &v)
}

func walkNodes(nodes []Node, v *Visitor) bool {
	for i := 0; i < len(nodes); i++ {
		if !walkNode(nodes[i], v) {
			return false
		}
	}
	return true
}

func walkNode(n Node, v *Visitor) bool {
	d := Continue
	switch n := n.(type) {
	case *Element:
		if v.Element != nil {
			d = v.Element(n)
		}
		if d == Abort {
			return false
		} else if d == Continue && !walkNodes(n.Children, v) {
			return false
		}
		if v.Leave != nil {
			v.Leave(n)
		}
		return true
	case *Text:
		if v.Text != nil {
			d = v.Text(n)
		}
	case *Comment:
		if v.Comment != nil {
			d = v.Comment(n)
		}
	case *ProcInst:
		if v.ProcInst != nil {
			d = v.ProcInst(n)
		}
	case *CData:
		if v.CData != nil {
			d = v.CData(n)
		}
	case *Doctype:
		if v.Doctype != nil {
			d = v.Doctype(n)
		}
	}
	return d != Abort
}

////////////////////////////////////////////////////////////////

// Arena is a flat table of elements addressed by a stable index, so that cross references between elements can be
// stored as indices instead of pointers into the tree.
type Arena struct {
	els []*Element
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{els: make([]*Element, 0, 64)}
}

// Add appends el and returns its index.
func (a *Arena) Add(el *Element) int {
	a.els = append(a.els, el)
	return len(a.els) - 1
}

// Get returns the element at index i.
func (a *Arena) Get(i int) *Element {
	return a.els[i]
}

// Len returns the number of elements.
func (a *Arena) Len() int {
	return len(a.els)
}
