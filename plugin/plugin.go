// Package plugin contains the optimization passes. Each pass rewrites a document tree in place and is configured by the
// exported fields of its type, which carry yaml tags so that a pipeline can be loaded from a configuration file.
package plugin // import "github.com/tdewolff/svgo/plugin"

import (
	"errors"
	"fmt"

	"github.com/tdewolff/svgo/xast"
)

// ErrUnknownPlugin is returned by Lookup when no plugin has the given name.
var ErrUnknownPlugin = errors.New("unknown plugin")

// Plugin is an optimization pass over a whole document.
type Plugin interface {
	Name() string
	Optimize(*xast.Document)
}

var plugins = map[string]func() Plugin{
	"cleanupAttrs":            func() Plugin { return NewCleanupAttrs() },
	"cleanupEnableBackground": func() Plugin { return NewCleanupEnableBackground() },
	"cleanupIds":              func() Plugin { return NewCleanupIDs() },
	"cleanupNumericValues":    func() Plugin { return NewCleanupNumericValues() },
	"convertColors":           func() Plugin { return NewConvertColors() },
	"collapseGroups":          func() Plugin { return NewCollapseGroups() },
	"convertEllipseToCircle":  func() Plugin { return NewConvertEllipseToCircle() },
}

// Names lists all plugins in the order of the default pipeline.
var Names = []string{
	"cleanupAttrs",
	"cleanupEnableBackground",
	"cleanupIds",
	"cleanupNumericValues",
	"convertColors",
	"collapseGroups",
	"convertEllipseToCircle",
}

// Lookup returns a new plugin with default parameters. The result is a pointer to the plugin's type, so that its
// parameters can be changed or decoded into.
func Lookup(name string) (Plugin, error) {
	if f, ok := plugins[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlugin, name)
}
