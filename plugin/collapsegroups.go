package plugin

import (
	"github.com/tdewolff/svgo/table"
	"github.com/tdewolff/svgo/xast"
)

// CollapseGroups moves the attributes of a group onto its only child when that is safe, and replaces groups without
// attributes by their children.
//
//	<g><g fill="red"><path d="..."/></g></g>  =>  <path fill="red" d="..."/>
//
// Children of a switch element are left alone, since switch evaluates its direct children.
type CollapseGroups struct{}

// NewCollapseGroups returns the plugin.
func NewCollapseGroups() *CollapseGroups {
	return &CollapseGroups{}
}

// Name returns "collapseGroups".
func (p *CollapseGroups) Name() string {
	return "collapseGroups"
}

// Optimize moves attributes of groups with a single child down and removes groups without attributes.
func (p *CollapseGroups) Optimize(doc *xast.Document) {
	xast.Walk(doc, xast.Visitor{
		Leave: func(parent *xast.Element) {
			if parent.Tag == "switch" {
				return
			}
			for _, child := range parent.Children {
				if g, ok := child.(*xast.Element); ok && g.Tag == "g" && len(g.Children) != 0 {
					hoistAttrs(g)
				}
			}

			children := make([]xast.Node, 0, len(parent.Children))
			for _, child := range parent.Children {
				if g, ok := child.(*xast.Element); ok && g.Tag == "g" && len(g.Children) != 0 && len(g.Attrs) == 0 && !hasAnimationChild(g) {
					children = append(children, g.Children...)
				} else {
					children = append(children, child)
				}
			}
			parent.Children = children
		},
	})
}

// hoistAttrs moves the valued attributes of group g to its only child element. Nothing changes when any of the
// attributes cannot be moved.
func hoistAttrs(g *xast.Element) {
	if len(g.Attrs) == 0 || len(g.Children) != 1 {
		return
	}
	child, ok := g.Children[0].(*xast.Element)
	if !ok {
		return
	} else if child.HasAttr("id") || g.HasAttr("filter") || g.HasAttr("class") && child.HasAttr("class") {
		return
	} else if (g.HasAttr("clip-path") || g.HasAttr("mask")) && (child.Tag != "g" || g.HasAttr("transform") || child.HasAttr("transform")) {
		return
	}

	attrs := append(make([]xast.Attr, 0, len(child.Attrs)+len(g.Attrs)), child.Attrs...)
	var keep []xast.Attr
	for _, attr := range g.Attrs {
		if attr.Bare {
			keep = append(keep, attr)
			continue
		} else if hasAnimatedAttr(child, attr.Name) {
			return
		}

		i := attrIndex(attrs, attr.Name)
		if i == -1 {
			attrs = append(attrs, attr)
			continue
		}
		c := &attrs[i]
		if attr.Name == "transform" {
			if !c.Bare && c.Value != "" {
				c.Value = attr.Value + " " + c.Value
			} else {
				c.Value = attr.Value
			}
			c.Bare = false
		} else if !c.Bare && c.Value == "inherit" {
			c.Value = attr.Value
		} else if !table.Inheritable[attr.Name] && (c.Bare || c.Value != attr.Value) {
			return
		}
	}
	child.Attrs = attrs
	g.Attrs = keep
}

func attrIndex(attrs []xast.Attr, name string) int {
	for i := range attrs {
		if attrs[i].Name == name {
			return i
		}
	}
	return -1
}

// hasAnimatedAttr returns true when el or a descendant is an animation element of the given attribute.
func hasAnimatedAttr(el *xast.Element, name string) bool {
	return !xast.WalkElement(el, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			if table.Animation[el.Tag] {
				if val, ok := el.AttrVal("attributeName"); ok && val == name {
					return xast.Abort
				}
			}
			return xast.Continue
		},
	})
}

func hasAnimationChild(el *xast.Element) bool {
	for _, child := range el.ChildElements() {
		if table.Animation[child.Tag] {
			return true
		}
	}
	return false
}
