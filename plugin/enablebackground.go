package plugin

import (
	"regexp"

	"github.com/tdewolff/svgo/xast"
)

var enableBackgroundRe = regexp.MustCompile(`^new\s0\s0\s([-+]?\d*\.?\d+([eE][-+]?\d+)?)\s([-+]?\d*\.?\d+([eE][-+]?\d+)?)$`)

// CleanupEnableBackground removes the enable-background attribute when there are no filters, or when it equals the
// default region of an svg, mask or pattern element.
// See https://www.w3.org/TR/SVG11/filters.html#EnableBackgroundProperty.
type CleanupEnableBackground struct{}

// NewCleanupEnableBackground returns the plugin.
func NewCleanupEnableBackground() *CleanupEnableBackground {
	return &CleanupEnableBackground{}
}

// Name returns "cleanupEnableBackground".
func (p *CleanupEnableBackground) Name() string {
	return "cleanupEnableBackground"
}

// Optimize removes redundant enable-background attributes.
func (p *CleanupEnableBackground) Optimize(doc *xast.Document) {
	hasFilter := !xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			if el.Tag == "filter" {
				return xast.Abort
			}
			return xast.Continue
		},
	})

	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			i := el.AttrIndex("enable-background")
			if i == -1 {
				return xast.Continue
			} else if !hasFilter {
				el.RemoveAttrAt(i)
				return xast.Continue
			} else if el.Tag != "svg" && el.Tag != "mask" && el.Tag != "pattern" {
				return xast.Continue
			}

			width, hasWidth := el.AttrVal("width")
			height, hasHeight := el.AttrVal("height")
			if !hasWidth || !hasHeight || el.Attrs[i].Bare {
				return xast.Continue
			}
			if m := enableBackgroundRe.FindStringSubmatch(el.Attrs[i].Value); m != nil && m[1] == width && m[3] == height {
				if el.Tag == "svg" {
					el.RemoveAttrAt(i)
				} else {
					el.Attrs[i].Value = "new"
				}
			}
			return xast.Continue
		},
	})
}
