// Package svgo optimizes SVG documents by running a pipeline of plugins over the document tree and serializing the
// result.
package svgo // import "github.com/tdewolff/svgo"

import (
	"bytes"
	"io"

	"github.com/tdewolff/svgo/plugin"
	"github.com/tdewolff/svgo/stringify"
	"github.com/tdewolff/svgo/xast"
)

// Plugin is an optimization pass over a whole document.
type Plugin = plugin.Plugin

// ErrUnknownPlugin is returned when no plugin exists for the given name.
var ErrUnknownPlugin = plugin.ErrUnknownPlugin

// DefaultPreset returns all plugins with default parameters, in order: cleanupAttrs, cleanupEnableBackground,
// cleanupIds, cleanupNumericValues, convertColors, collapseGroups, convertEllipseToCircle.
func DefaultPreset() []Plugin {
	return []Plugin{
		plugin.NewCleanupAttrs(),
		plugin.NewCleanupEnableBackground(),
		plugin.NewCleanupIDs(),
		plugin.NewCleanupNumericValues(),
		plugin.NewConvertColors(),
		plugin.NewCollapseGroups(),
		plugin.NewConvertEllipseToCircle(),
	}
}

// CorePreset returns the cleanup plugins only: cleanupAttrs, cleanupEnableBackground, cleanupIds and
// cleanupNumericValues.
func CorePreset() []Plugin {
	return DefaultPreset()[:4]
}

// Preset returns the plugins of a preset by name, either "default" or "core".
func Preset(name string) ([]Plugin, bool) {
	switch name {
	case "", "default":
		return DefaultPreset(), true
	case "core":
		return CorePreset(), true
	}
	return nil, false
}

////////////////////////////////////////////////////////////////

// Optimizer runs its plugins in order over a document and serializes the result.
type Optimizer struct {
	Plugins   []Plugin
	Stringify stringify.Options
}

// New returns an optimizer with compact output. Without plugins it only reformats documents.
func New(plugins ...Plugin) *Optimizer {
	return &Optimizer{
		Plugins:   plugins,
		Stringify: stringify.DefaultOptions(),
	}
}

// Run applies all plugins to doc.
func (o *Optimizer) Run(doc *xast.Document) {
	for _, p := range o.Plugins {
		p.Optimize(doc)
	}
}

// Optimize applies all plugins to doc and returns its markup.
func (o *Optimizer) Optimize(doc *xast.Document) string {
	o.Run(doc)
	return stringify.String(doc, o.Stringify)
}

// Minify parses a document from r, optimizes it and writes it to w. Parse errors are returned as is.
func (o *Optimizer) Minify(w io.Writer, r io.Reader) error {
	doc, err := xast.Parse(r)
	if err != nil {
		return err
	}
	o.Run(doc)
	return stringify.Write(w, doc, o.Stringify)
}

// Bytes optimizes the document in v.
func (o *Optimizer) Bytes(v []byte) ([]byte, error) {
	doc, err := xast.Parse(bytes.NewReader(v))
	if err != nil {
		return v, err
	}
	o.Run(doc)
	return stringify.Bytes(doc, o.Stringify), nil
}

// String optimizes the document in v.
func (o *Optimizer) String(v string) (string, error) {
	doc, err := xast.ParseString(v)
	if err != nil {
		return v, err
	}
	return o.Optimize(doc), nil
}
