package plugin

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/svgo/xast"
	"github.com/tdewolff/test"
)

func TestIDGenerator(t *testing.T) {
	g := &idGenerator{}
	var names []string
	for i := 0; i < 52; i++ {
		names = append(names, g.next())
	}
	test.String(t, strings.Join(names, ""), idChars)
	test.String(t, g.next(), "aa")
	test.String(t, g.next(), "ab")

	for i := 54; i < 103; i++ {
		g.next()
	}
	test.String(t, g.next(), "aZ")
	test.String(t, g.next(), "ba")

	for i := 105; i < 2755; i++ {
		g.next()
	}
	test.String(t, g.next(), "ZZ")
	test.String(t, g.next(), "aaa")
}

func TestCleanupIDs(t *testing.T) {
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg><defs><linearGradient id="gradient"/></defs><rect fill="url(#gradient)" id="unused"/></svg>`, `<svg><defs><linearGradient id="a"/></defs><rect fill="url(#a)"/></svg>`},
		{`<svg><path id="p"/><use href="#p"/><use xlink:href="#p"/></svg>`, `<svg><path id="a"/><use href="#a"/><use xlink:href="#a"/></svg>`},
		{`<svg><rect id="block"><animate begin="block.click" attributeName="x"/></rect></svg>`, `<svg><rect id="a"><animate begin="a.click" attributeName="x"/></rect></svg>`},
		{`<svg><rect id="g"/><rect fill="url('#g')"/><rect stroke='url("#g")'/></svg>`, `<svg><rect id="a"/><rect fill="url(&apos;#a&apos;)"/><rect stroke="url(&quot;#a&quot;)"/></svg>`},
		{`<svg><rect id="x" style="fill:url(#x)"/><rect id="y" mask="url(#y) "/></svg>`, `<svg><rect id="a" style="fill:url(#a)"/><rect id="b" mask="url(#b) "/></svg>`},
		{`<svg><rect id="x"/><rect id="x"/><use href="#x"/></svg>`, `<svg><rect id="a"/><rect/><use href="#a"/></svg>`},
		{`<svg><rect id="x" id="x"/></svg>`, `<svg><rect/></svg>`},
		{`<svg><rect id="a"/><rect id="b"/><use href="#b"/><use href="#missing"/></svg>`, `<svg><rect/><rect id="a"/><use href="#a"/><use href="#missing"/></svg>`},
		{`<svg><rect id="x"/><use href="x"/><use href="#x "/></svg>`, `<svg><rect/><use href="x"/><use href="#x "/></svg>`},

		// deoptimized
		{`<svg><style>.a{}</style><rect id="x"/><rect id="x"/></svg>`, `<svg><style>.a{}</style><rect id="x"/><rect id="x"/></svg>`},
		{`<svg><rect id="x"/><script>alert(1)</script></svg>`, `<svg><rect id="x"/><script>alert(1)</script></svg>`},
		{`<svg><style/><rect id="x"/></svg>`, `<svg><style/><rect/></svg>`},

		// definitions only
		{`<svg><defs><g id="icon"/></defs></svg>`, `<svg><defs><g id="icon"/></defs></svg>`},
		{`<svg> <defs><g id="icon"/></defs> <defs/></svg>`, `<svg><defs><g id="icon"/></defs><defs/></svg>`},
		{`<svg><!--c--><defs><g id="icon"/></defs></svg>`, `<svg><!--c--><defs><g/></defs></svg>`},
		{`<svg><rect id="r" fill="url(#a)"/><svg><defs><g id="a"/></defs></svg></svg>`, `<svg><rect fill="url(#a)"/><svg><defs><g id="a"/></defs></svg></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			test.String(t, optimize(t, NewCleanupIDs(), tt.svg), tt.expected)
		})
	}
}

func TestCleanupIDsParams(t *testing.T) {
	var tests = []struct {
		p        *CleanupIDs
		svg      string
		expected string
	}{
		{&CleanupIDs{Remove: true, Minify: true, Preserve: []string{"b"}}, `<svg><rect id="x" fill="url(#b)"/><rect id="b"/><rect fill="url(#x)"/></svg>`, `<svg><rect id="a" fill="url(#b)"/><rect id="b"/><rect fill="url(#a)"/></svg>`},
		{&CleanupIDs{Remove: true, Minify: true, Preserve: []string{"a"}}, `<svg><rect id="a"/><rect id="x"/><use href="#x"/></svg>`, `<svg><rect id="a"/><rect id="b"/><use href="#b"/></svg>`},
		{&CleanupIDs{Remove: true, Minify: true, PreservePrefixes: []string{"icon-"}}, `<svg><rect id="icon-1"/><rect id="other"/></svg>`, `<svg><rect id="icon-1"/><rect/></svg>`},
		{&CleanupIDs{Remove: true, Minify: true, PreservePrefixes: []string{"a", "b"}}, `<svg><rect id="x"/><use href="#x"/></svg>`, `<svg><rect id="c"/><use href="#c"/></svg>`},
		{&CleanupIDs{Minify: true}, `<svg><rect id="a"/><rect id="x"/><use href="#x"/></svg>`, `<svg><rect id="a"/><rect id="b"/><use href="#b"/></svg>`},
		{&CleanupIDs{Remove: true}, `<svg><rect id="x"/><use href="#x"/><rect id="y"/></svg>`, `<svg><rect id="x"/><use href="#x"/><rect/></svg>`},
		{&CleanupIDs{Remove: true, Minify: true, Force: true}, `<svg><style>.a{}</style><rect id="x"/></svg>`, `<svg><style>.a{}</style><rect/></svg>`},
		{&CleanupIDs{Remove: true, Minify: true, Force: true}, `<svg><defs><g id="icon"/></defs></svg>`, `<svg><defs><g/></defs></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			test.String(t, optimize(t, tt.p, tt.svg), tt.expected)
		})
	}
}

func TestCleanupIDsReport(t *testing.T) {
	doc, err := xast.ParseString(`<svg><style>rect{}</style><rect id="x"/></svg>`)
	test.Error(t, err)
	report := NewCleanupIDs().Run(doc)
	test.That(t, report.Deoptimized, "must be deoptimized")

	doc, err = xast.ParseString(`<svg><rect id="x"/><rect id="y"/><use href="#y"/><rect id="z"/></svg>`)
	test.Error(t, err)
	report = NewCleanupIDs().Run(doc)
	test.That(t, !report.Deoptimized)
	test.T(t, report.Renamed, map[string]string{"y": "a"})
	test.T(t, report.Removed, []string{"x", "z"})
}

func TestCleanupIDsUnique(t *testing.T) {
	// many referenced ids next to kept ids that look like generated ones
	sb := strings.Builder{}
	sb.WriteString(`<svg><rect id="a"/><rect id="c"/>`)
	for i := 0; i < 120; i++ {
		fmt.Fprintf(&sb, `<rect id="id%d"/><use href="#id%d"/><rect fill="url(#id%d)"/>`, i, i, i)
	}
	sb.WriteString(`</svg>`)

	doc, err := xast.ParseString(sb.String())
	test.Error(t, err)
	p := NewCleanupIDs()
	p.Remove = false
	report := p.Run(doc)
	test.T(t, len(report.Renamed), 120)

	ids := map[string]int{}
	var hrefs []string
	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			if id, ok := el.AttrVal("id"); ok {
				ids[id]++
			}
			if href, ok := el.AttrVal("href"); ok {
				hrefs = append(hrefs, strings.TrimPrefix(href, "#"))
			}
			if fill, ok := el.AttrVal("fill"); ok {
				hrefs = append(hrefs, strings.TrimSuffix(strings.TrimPrefix(fill, "url(#"), ")"))
			}
			return xast.Continue
		},
	})
	test.T(t, len(ids), 122)
	for id, n := range ids {
		test.T(t, n, 1, "id", id, "must be unique")
	}
	test.T(t, ids["a"], 1)
	test.T(t, ids["c"], 1)
	test.T(t, len(hrefs), 240)
	for _, ref := range hrefs {
		test.T(t, ids[ref], 1, "reference", ref, "must resolve")
	}
}
