package plugin

import (
	"github.com/tdewolff/svgo/xast"
)

// ConvertEllipseToCircle converts ellipses with equal radii to circles.
type ConvertEllipseToCircle struct{}

// NewConvertEllipseToCircle returns the plugin.
func NewConvertEllipseToCircle() *ConvertEllipseToCircle {
	return &ConvertEllipseToCircle{}
}

// Name returns "convertEllipseToCircle".
func (p *ConvertEllipseToCircle) Name() string {
	return "convertEllipseToCircle"
}

// Optimize replaces ellipses with equal radii by circles.
func (p *ConvertEllipseToCircle) Optimize(doc *xast.Document) {
	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			if el.Tag != "ellipse" {
				return xast.Continue
			}

			rx, ry := "0", "0"
			if val, ok := el.AttrVal("rx"); ok {
				rx = val
			}
			if val, ok := el.AttrVal("ry"); ok {
				ry = val
			}
			if rx != ry && rx != "auto" && ry != "auto" {
				return xast.Continue
			}

			r := rx
			if rx == "auto" {
				r = ry
			}
			el.Tag = "circle"
			attrs := el.Attrs[:0]
			for _, attr := range el.Attrs {
				if attr.Name != "rx" && attr.Name != "ry" {
					attrs = append(attrs, attr)
				}
			}
			el.Attrs = append(attrs, xast.Attr{Name: "r", Value: r})
			return xast.Continue
		},
	})
}
