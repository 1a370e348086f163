package plugin

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tdewolff/svgo/table"
	"github.com/tdewolff/svgo/xast"
)

var (
	urlRefRe   = regexp.MustCompile(`\burl\((["'])?#(.+?)(["'])?\)`)
	hrefRefRe  = regexp.MustCompile(`^#(.+?)$`)
	beginRefRe = regexp.MustCompile(`([^\d.]+)\.`)
)

// CleanupIDs removes unreferenced ids and renames referenced ids to the shortest available names. It does nothing
// when the document has a style or script element with content, since those may refer to ids textually.
type CleanupIDs struct {
	Remove           bool     `yaml:"remove"`
	Minify           bool     `yaml:"minify"`
	Preserve         []string `yaml:"preserve"`
	PreservePrefixes []string `yaml:"preservePrefixes"`
	Force            bool     `yaml:"force"`
}

// IDsReport describes what a CleanupIDs run did.
type IDsReport struct {
	Deoptimized bool              // a style or script element was found, the document is unchanged
	Renamed     map[string]string // old to new id
	Removed     []string          // unreferenced ids, in document order
}

// NewCleanupIDs returns the plugin that removes unused IDs and minifies the remaining ones.
func NewCleanupIDs() *CleanupIDs {
	return &CleanupIDs{
		Remove: true,
		Minify: true,
	}
}

// Name returns "cleanupIds".
func (p *CleanupIDs) Name() string {
	return "cleanupIds"
}

// Optimize removes unreferenced IDs and renames referenced ones, unless the document has a script or style.
func (p *CleanupIDs) Optimize(doc *xast.Document) {
	p.Run(doc)
}

// attrRef addresses an attribute of an element in the arena.
type attrRef struct {
	el   int
	attr int
}

type idRef struct {
	attrRef
	raw string // attribute value when it was recorded
}

type idGraph struct {
	arena       *xast.Arena
	ids         []string // in order of first occurrence
	defs        map[string]attrRef
	refs        map[string][]idRef
	dups        []attrRef
	reserved    map[string]struct{} // ids in subtrees that are left alone
	deoptimized bool
}

// Run optimizes the ids of doc and reports what it did.
func (p *CleanupIDs) Run(doc *xast.Document) IDsReport {
	g := p.collect(doc)
	if g.deoptimized {
		return IDsReport{Deoptimized: true}
	}
	return p.rewrite(g)
}

func (p *CleanupIDs) preserved(id string) bool {
	for _, preserve := range p.Preserve {
		if id == preserve {
			return true
		}
	}
	for _, prefix := range p.PreservePrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// collect builds the id and reference graph without changing the document.
func (p *CleanupIDs) collect(doc *xast.Document) *idGraph {
	g := &idGraph{
		arena:    xast.NewArena(),
		defs:     map[string]attrRef{},
		refs:     map[string][]idRef{},
		reserved: map[string]struct{}{},
	}
	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			isStyle := el.Tag == "style" || el.Tag == "script"
			if !p.Force {
				if isStyle && 0 < len(el.Children) {
					g.deoptimized = true
					return xast.Abort
				} else if el.Tag == "svg" && hasDefsOnly(el) {
					// ids of a library of definitions are meant to be referenced from outside
					g.reserve(el)
					return xast.SkipChildren
				}
			}

			i := g.arena.Add(el)
			for j, attr := range el.Attrs {
				if attr.Bare {
					continue
				}
				if attr.Name == "id" {
					if _, ok := g.defs[attr.Value]; ok {
						g.dups = append(g.dups, attrRef{i, j})
					} else {
						g.ids = append(g.ids, attr.Value)
						g.defs[attr.Value] = attrRef{i, j}
					}
				} else if id := referencedID(attr); id != "" {
					g.refs[id] = append(g.refs[id], idRef{attrRef{i, j}, attr.Value})
				}
			}
			if isStyle {
				return xast.SkipChildren
			}
			return xast.Continue
		},
	})
	return g
}

func (g *idGraph) reserve(el *xast.Element) {
	xast.WalkElement(el, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			if id, ok := el.AttrVal("id"); ok {
				g.reserved[id] = struct{}{}
			}
			return xast.Continue
		},
	})
}

// hasDefsOnly returns true when the children of el are defs elements or whitespace.
func hasDefsOnly(el *xast.Element) bool {
	for _, child := range el.Children {
		switch child := child.(type) {
		case *xast.Element:
			if child.Tag != "defs" {
				return false
			}
		case *xast.Text:
			if strings.TrimSpace(child.Data) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// referencedID returns the id that an attribute value refers to, if any.
func referencedID(attr xast.Attr) string {
	var m []string
	if table.ReferenceProps[attr.Name] {
		if m = urlRefRe.FindStringSubmatch(attr.Value); m != nil {
			return m[2]
		}
	} else if attr.Name == "href" || strings.HasSuffix(attr.Name, ":href") {
		if m = hrefRefRe.FindStringSubmatch(attr.Value); m != nil {
			return m[1]
		}
	} else if attr.Name == "begin" {
		if m = beginRefRe.FindStringSubmatch(attr.Value); m != nil {
			return m[1]
		}
	}
	return ""
}

// rewrite renames and removes ids. All writes go through the arena.
func (p *CleanupIDs) rewrite(g *idGraph) IDsReport {
	report := IDsReport{Renamed: map[string]string{}}

	// ids that keep their value must not be generated
	taken := g.reserved
	for _, id := range g.ids {
		if p.preserved(id) {
			taken[id] = struct{}{}
		} else if _, ok := g.refs[id]; (ok && !p.Minify) || (!ok && !p.Remove) {
			taken[id] = struct{}{}
		}
	}

	remove := g.dups
	gen := &idGenerator{}
	for _, id := range g.ids {
		def := g.defs[id]
		refs, referenced := g.refs[id]
		if p.preserved(id) {
			continue
		} else if !referenced {
			if p.Remove {
				remove = append(remove, def)
				report.Removed = append(report.Removed, id)
			}
			continue
		} else if !p.Minify {
			continue
		}

		name := gen.next()
		for {
			if _, ok := taken[name]; !ok && !p.preserved(name) {
				break
			}
			name = gen.next()
		}
		report.Renamed[id] = name

		g.arena.Get(def.el).Attrs[def.attr].Value = name
		for _, ref := range refs {
			attr := &g.arena.Get(ref.el).Attrs[ref.attr]
			if strings.Contains(ref.raw, "#") {
				attr.Value = strings.ReplaceAll(attr.Value, "#"+id, "#"+name)
			} else {
				attr.Value = strings.ReplaceAll(attr.Value, id+".", name+".")
			}
		}
	}

	// remove back to front so that attribute indices stay valid
	sort.Slice(remove, func(i, j int) bool {
		if remove[i].el != remove[j].el {
			return remove[i].el < remove[j].el
		}
		return remove[j].attr < remove[i].attr
	})
	for _, ref := range remove {
		g.arena.Get(ref.el).RemoveAttrAt(ref.attr)
	}
	return report
}

////////////////////////////////////////////////////////////////

const idChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// idGenerator generates a, b, ..., Z, aa, ab, ... by counting in base 52, where an overflow of the most significant
// digit prepends a new digit.
type idGenerator struct {
	digits []int
}

func (g *idGenerator) next() string {
	if len(g.digits) == 0 {
		g.digits = append(g.digits, 0)
	} else {
		g.digits[len(g.digits)-1]++
		for i := len(g.digits) - 1; 0 < i; i-- {
			if len(idChars) <= g.digits[i] {
				g.digits[i] = 0
				g.digits[i-1]++
			}
		}
		if len(idChars) <= g.digits[0] {
			g.digits[0] = 0
			g.digits = append([]int{0}, g.digits...)
		}
	}

	name := make([]byte, len(g.digits))
	for i, d := range g.digits {
		name[i] = idChars[d]
	}
	return string(name)
}
