package plugin

import (
	"regexp"
	"strings"

	"github.com/tdewolff/svgo/xast"
)

var (
	newlineBetweenRe = regexp.MustCompile(`(\S)\r?\n(\S)`)
	newlineRe        = regexp.MustCompile(`\r?\n`)
	spacesRe         = regexp.MustCompile(`\s{2,}`)
)

// CleanupAttrs removes newlines, surrounding whitespace and repeated whitespace from attribute values.
type CleanupAttrs struct {
	Newlines bool `yaml:"newlines"`
	Trim     bool `yaml:"trim"`
	Spaces   bool `yaml:"spaces"`
}

// NewCleanupAttrs returns the plugin with all cleanups enabled.
func NewCleanupAttrs() *CleanupAttrs {
	return &CleanupAttrs{
		Newlines: true,
		Trim:     true,
		Spaces:   true,
	}
}

// Name returns "cleanupAttrs".
func (p *CleanupAttrs) Name() string {
	return "cleanupAttrs"
}

// Optimize collapses whitespace in attribute values of every element.
func (p *CleanupAttrs) Optimize(doc *xast.Document) {
	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			for i := range el.Attrs {
				if !el.Attrs[i].Bare {
					el.Attrs[i].Value = p.cleanup(el.Attrs[i].Value)
				}
			}
			return xast.Continue
		},
	})
}

func (p *CleanupAttrs) cleanup(val string) string {
	if p.Newlines {
		// a newline between two words becomes a space
		val = newlineBetweenRe.ReplaceAllString(val, "$1 $2")
		val = newlineRe.ReplaceAllString(val, "")
	}
	if p.Trim {
		val = strings.TrimSpace(val)
	}
	if p.Spaces {
		val = spacesRe.ReplaceAllString(val, " ")
	}
	return val
}
