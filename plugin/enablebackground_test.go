package plugin

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCleanupEnableBackground(t *testing.T) {
	filter := `<defs><filter id="f"><feOffset dx="0" dy="75"/></filter></defs>`
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg width="100.5" height=".5" enable-background="new 0 0 100.5 .5">` + filter + `</svg>`, `<svg width="100.5" height=".5">` + filter + `</svg>`},
		{`<svg width="50" height="50" enable-background="new 0 0 100 50">` + filter + `</svg>`, `<svg width="50" height="50" enable-background="new 0 0 100 50">` + filter + `</svg>`},
		{`<svg>` + filter + `<mask width="100" height="50" enable-background="new 0 0 100 50">test</mask></svg>`, `<svg>` + filter + `<mask width="100" height="50" enable-background="new">test</mask></svg>`},
		{`<svg>` + filter + `<pattern width="1e2" height="-5" enable-background="new 0 0 1e2 -5"/></svg>`, `<svg>` + filter + `<pattern width="1e2" height="-5" enable-background="new"/></svg>`},
		{`<svg>` + filter + `<g width="100" height="50" enable-background="new 0 0 100 50"/></svg>`, `<svg>` + filter + `<g width="100" height="50" enable-background="new 0 0 100 50"/></svg>`},
		{`<svg>` + filter + `<mask width="100" enable-background="new 0 0 100 50"/></svg>`, `<svg>` + filter + `<mask width="100" enable-background="new 0 0 100 50"/></svg>`},
		{`<svg width="100" height="50" enable-background="new 0 0 100 50 1">` + filter + `</svg>`, `<svg width="100" height="50" enable-background="new 0 0 100 50 1">` + filter + `</svg>`},
		{`<svg><mask width="100" height="50" enable-background="new 0 0 100 50">test</mask></svg>`, `<svg><mask width="100" height="50">test</mask></svg>`},
		{`<svg enable-background="accumulate"><g enable-background="new"/></svg>`, `<svg><g/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			test.String(t, optimize(t, NewCleanupEnableBackground(), tt.svg), tt.expected)
		})
	}
}
