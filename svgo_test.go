package svgo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/tdewolff/svgo/plugin"
	"github.com/tdewolff/svgo/xast"
	"github.com/tdewolff/test"
)

func TestOptimize(t *testing.T) {
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg width="100.5" height=".5" enable-background="new 0 0 100.5 .5"><rect id="a" fill="rgb(0,0,0)"/><rect fill="url(#a)"/></svg>`, `<svg width="100.5" height=".5"><rect id="a" fill="#000"/><rect fill="url(#a)"/></svg>`},
		{`<svg><g transform="translate(1,1)"><path transform="translate(2,2)" d="M0,0"/></g></svg>`, `<svg><path transform="translate(1,1) translate(2,2)" d="M0,0"/></svg>`},
		{`<svg><g fill="#FF0000"><ellipse rx="5" ry="5"/></g></svg>`, `<svg><circle fill="red" r="5"/></svg>`},
		{`<svg width="100" height="100"><defs><linearGradient id="gradient"><stop stop-color="rgb(255, 0, 0)" offset="0.50"/></linearGradient></defs><g fill="url(#gradient)"><ellipse rx="5" ry="5"/></g></svg>`, `<svg width="100" height="100"><defs><linearGradient id="a"><stop stop-color="red" offset=".5"/></linearGradient></defs><circle fill="url(#a)" r="5"/></svg>`},
		{"<svg class=\"a\n  b\"  x=\" 1.00 \"/>", `<svg class="a b" x="1"/>`},
		{`<?xml version="1.0"?><!DOCTYPE svg><!--icon--><svg/>`, `<?xml version="1.0"?><!DOCTYPE svg><!--icon--><svg/>`},
		{``, ``},
	}

	o := New(DefaultPreset()...)
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			s, err := o.String(tt.svg)
			test.Error(t, err)
			test.String(t, s, tt.expected)
		})
	}
}

func TestIdempotence(t *testing.T) {
	var tests = []string{
		`<svg width="100.5" height=".5" enable-background="new 0 0 100.5 .5"><rect id="a" fill="rgb(0,0,0)"/><rect fill="url(#a)"/></svg>`,
		`<svg width="100" height="100"><defs><linearGradient id="gradient"><stop stop-color="rgb(255, 0, 0)" offset="0.50"/></linearGradient></defs><g fill="url(#gradient)"><ellipse rx="5" ry="5"/></g></svg>`,
		`<svg><g><g opacity=".5"><path opacity="0.70"/></g></g><text x="1.0"> a <tspan> b </tspan></text></svg>`,
		`<svg><rect id="b"/><rect id="a"/><use href="#b"/><use href="#a"/></svg>`,
	}

	o := New(DefaultPreset()...)
	for _, svg := range tests {
		t.Run(svg, func(t *testing.T) {
			first, err := o.String(svg)
			test.Error(t, err)
			second, err := o.String(first)
			test.Error(t, err)
			test.String(t, second, first)
		})
	}
}

func TestPresets(t *testing.T) {
	test.T(t, len(DefaultPreset()), len(plugin.Names))
	for i, p := range DefaultPreset() {
		test.String(t, p.Name(), plugin.Names[i])
	}
	test.T(t, len(CorePreset()), 4)
	test.String(t, CorePreset()[3].Name(), "cleanupNumericValues")

	plugins, ok := Preset("core")
	test.That(t, ok)
	test.T(t, len(plugins), 4)
	plugins, ok = Preset("")
	test.That(t, ok)
	test.T(t, len(plugins), 7)
	_, ok = Preset("none")
	test.That(t, !ok, "must not find preset")

	svg := `<svg><g fill="rgb(0,0,0)"><ellipse rx="1" ry="1"/></g></svg>`
	s, err := New(CorePreset()...).String(svg)
	test.Error(t, err)
	test.String(t, s, svg)
}

func TestNoPlugins(t *testing.T) {
	s, err := New().String(`<svg> <g  fill="red" > <path d="M0 0"/> </g> </svg>`)
	test.Error(t, err)
	test.String(t, s, `<svg><g fill="red"><path d="M0 0"/></g></svg>`)
}

func TestAttrNewlines(t *testing.T) {
	s, err := New(plugin.NewCleanupAttrs()).String("<svg a=\"a\n\nb\" b=\"x\r\ny\" c='\t z\t\tw'/>")
	test.Error(t, err)
	test.String(t, s, `<svg a="ab" b="x y" c="z w"/>`)

	s, err = New(&plugin.CleanupAttrs{Trim: true}).String("<svg a=\"c\nd\"/>")
	test.Error(t, err)
	test.String(t, s, "<svg a=\"c\nd\"/>")

	s, err = New().String("<svg a=\"c\r\nd\"/>")
	test.Error(t, err)
	test.String(t, s, "<svg a=\"c\r\nd\"/>")
}

func TestOptimizer(t *testing.T) {
	o := New(DefaultPreset()...)
	b, err := o.Bytes([]byte(`<svg><ellipse rx="1" ry="1"/></svg>`))
	test.Error(t, err)
	test.String(t, string(b), `<svg><circle r="1"/></svg>`)

	w := &bytes.Buffer{}
	test.Error(t, o.Minify(w, strings.NewReader(`<svg fill="black"/>`)))
	test.String(t, w.String(), `<svg fill="#000"/>`)

	doc, err := xast.ParseString(`<svg fill="#ff0000"/>`)
	test.Error(t, err)
	test.String(t, o.Optimize(doc), `<svg fill="red"/>`)

	o.Stringify.Pretty = true
	o.Stringify.Indent = 1
	s, err := o.String(`<svg><g><rect/></g></svg>`)
	test.Error(t, err)
	test.String(t, s, "<svg>\n <rect/>\n</svg>\n")
}

func TestOptimizerErrors(t *testing.T) {
	o := New(DefaultPreset()...)
	test.T(t, o.Minify(&bytes.Buffer{}, test.NewErrorReader(0)), test.ErrPlain)
	test.T(t, o.Minify(test.NewErrorWriter(0), strings.NewReader(`<svg/>`)), test.ErrPlain)

	_, err := plugin.Lookup("removeTitle")
	test.That(t, errors.Is(err, ErrUnknownPlugin), "must return ErrUnknownPlugin")
}

func FuzzOptimize(f *testing.F) {
	f.Add(`<svg width="100.5" height=".5" enable-background="new 0 0 100.5 .5"><rect id="a" fill="rgb(0,0,0)"/><rect fill="url(#a)"/></svg>`)
	f.Add(`<svg><g transform="translate(1,1)"><path transform="translate(2,2)" d="M0,0"/></g></svg>`)
	f.Add(`<svg><style>.a{}</style><text> a </text><!--c--><![CDATA[x]]></svg>`)
	f.Add(`<svg><switch><g><g fill="red"><ellipse rx="auto" ry="2"/></g></g></switch></svg>`)
	o := New(DefaultPreset()...)
	f.Fuzz(func(t *testing.T, svg string) {
		_, _ = o.String(svg)
	})
}

func ExampleOptimizer_Minify() {
	o := New(DefaultPreset()...)
	o.Stringify.Pretty = true
	o.Stringify.Indent = 2

	svg := `<svg xmlns="http://www.w3.org/2000/svg"><g fill="#FF0000"><ellipse rx="5" ry="5"/></g></svg>`
	if err := o.Minify(os.Stdout, strings.NewReader(svg)); err != nil {
		fmt.Println("svgo.Minify:", err)
	}
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg">
	//   <circle fill="red" r="5"/>
	// </svg>
}
