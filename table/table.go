// Package table contains the static SVG classification data shared by the parser, the optimization passes and the
// serializer. See https://www.w3.org/TR/SVG11/intro.html#Definitions.
package table // import "github.com/tdewolff/svgo/table"

// Element groups.
var (
	Animation = map[string]bool{
		"animate":          true,
		"animateColor":     true,
		"animateMotion":    true,
		"animateTransform": true,
		"set":              true,
	}
	Descriptive = map[string]bool{
		"desc":     true,
		"metadata": true,
		"title":    true,
	}
	Shape = map[string]bool{
		"circle":   true,
		"ellipse":  true,
		"line":     true,
		"path":     true,
		"polygon":  true,
		"polyline": true,
		"rect":     true,
	}
	Structural = map[string]bool{
		"defs":   true,
		"g":      true,
		"svg":    true,
		"symbol": true,
		"use":    true,
	}
	PaintServer = map[string]bool{
		"solidColor":     true,
		"linearGradient": true,
		"radialGradient": true,
		"meshGradient":   true,
		"pattern":        true,
		"hatch":          true,
	}
	NonRendering = map[string]bool{
		"linearGradient": true,
		"radialGradient": true,
		"pattern":        true,
		"clipPath":       true,
		"mask":           true,
		"marker":         true,
		"symbol":         true,
		"filter":         true,
		"solidColor":     true,
	}
	Container = map[string]bool{
		"a":             true,
		"defs":          true,
		"g":             true,
		"marker":        true,
		"mask":          true,
		"missing-glyph": true,
		"pattern":       true,
		"svg":           true,
		"switch":        true,
		"symbol":        true,
		"foreignObject": true,
	}
	TextContent = map[string]bool{
		"altGlyph":     true,
		"altGlyphDef":  true,
		"altGlyphItem": true,
		"glyph":        true,
		"glyphRef":     true,
		"textPath":     true,
		"text":         true,
		"tref":         true,
		"tspan":        true,
	}
	TextContentChild = map[string]bool{
		"altGlyph": true,
		"textPath": true,
		"tref":     true,
		"tspan":    true,
	}
	LightSource = map[string]bool{
		"feDiffuseLighting":  true,
		"feSpecularLighting": true,
		"feDistantLight":     true,
		"fePointLight":       true,
		"feSpotLight":        true,
	}
	FilterPrimitive = map[string]bool{
		"feBlend":             true,
		"feColorMatrix":       true,
		"feComponentTransfer": true,
		"feComposite":         true,
		"feConvolveMatrix":    true,
		"feDiffuseLighting":   true,
		"feDisplacementMap":   true,
		"feDropShadow":        true,
		"feFlood":             true,
		"feFuncA":             true,
		"feFuncB":             true,
		"feFuncG":             true,
		"feFuncR":             true,
		"feGaussianBlur":      true,
		"feImage":             true,
		"feMerge":             true,
		"feMergeNode":         true,
		"feMorphology":        true,
		"feOffset":            true,
		"feSpecularLighting":  true,
		"feTile":              true,
		"feTurbulence":        true,
	}
)

// TextElems are the elements whose content whitespace is rendering-significant: the text content elements and title.
var TextElems = map[string]bool{
	"title": true,
}

// Inheritable are the presentation attributes that inherit from ancestor to descendant.
// See https://www.w3.org/TR/SVG11/propidx.html.
var Inheritable = map[string]bool{
	"clip-rule":                    true,
	"color":                        true,
	"color-interpolation":          true,
	"color-interpolation-filters":  true,
	"color-profile":                true,
	"color-rendering":              true,
	"cursor":                       true,
	"direction":                    true,
	"dominant-baseline":            true,
	"fill":                         true,
	"fill-opacity":                 true,
	"fill-rule":                    true,
	"font":                         true,
	"font-family":                  true,
	"font-size":                    true,
	"font-size-adjust":             true,
	"font-stretch":                 true,
	"font-style":                   true,
	"font-variant":                 true,
	"font-weight":                  true,
	"glyph-orientation-horizontal": true,
	"glyph-orientation-vertical":   true,
	"image-rendering":              true,
	"letter-spacing":               true,
	"marker":                       true,
	"marker-end":                   true,
	"marker-mid":                   true,
	"marker-start":                 true,
	"paint-order":                  true,
	"pointer-events":               true,
	"shape-rendering":              true,
	"stroke":                       true,
	"stroke-dasharray":             true,
	"stroke-dashoffset":            true,
	"stroke-linecap":               true,
	"stroke-linejoin":              true,
	"stroke-miterlimit":            true,
	"stroke-opacity":               true,
	"stroke-width":                 true,
	"text-anchor":                  true,
	"text-rendering":               true,
	"transform":                    true,
	"visibility":                   true,
	"word-spacing":                 true,
	"writing-mode":                 true,
}

// ReferenceProps are the properties whose value may hold a url(#id) reference.
// See https://www.w3.org/TR/SVG11/linking.html#processingIRI.
var ReferenceProps = map[string]bool{
	"clip-path":     true,
	"color-profile": true,
	"fill":          true,
	"filter":        true,
	"marker-start":  true,
	"marker-mid":    true,
	"marker-end":    true,
	"mask":          true,
	"stroke":        true,
	"style":         true,
}

// ColorProps are the properties that take a color value.
// See https://www.w3.org/TR/SVG11/single-page.html#types-DataTypeColor.
var ColorProps = map[string]bool{
	"color":          true,
	"fill":           true,
	"stroke":         true,
	"stop-color":     true,
	"flood-color":    true,
	"lighting-color": true,
}

func init() {
	for tag := range TextContent {
		TextElems[tag] = true
	}
}
