package table

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// ColorNames maps the SVG 1.1 color keywords to their lowercase #rrggbb form.
var ColorNames = make(map[string]string, len(colornames.Map))

// ColorShortNames maps lowercase hex colors to a keyword that is shorter.
var ColorShortNames = map[string]string{
	"#f0ffff": "azure",
	"#f5f5dc": "beige",
	"#ffe4c4": "bisque",
	"#a52a2a": "brown",
	"#ff7f50": "coral",
	"#ffd700": "gold",
	"#808080": "gray",
	"#008000": "green",
	"#4b0082": "indigo",
	"#fffff0": "ivory",
	"#f0e68c": "khaki",
	"#faf0e6": "linen",
	"#800000": "maroon",
	"#000080": "navy",
	"#808000": "olive",
	"#ffa500": "orange",
	"#da70d6": "orchid",
	"#cd853f": "peru",
	"#ffc0cb": "pink",
	"#dda0dd": "plum",
	"#800080": "purple",
	"#f00":    "red",
	"#ff0000": "red",
	"#fa8072": "salmon",
	"#a0522d": "sienna",
	"#c0c0c0": "silver",
	"#fffafa": "snow",
	"#d2b48c": "tan",
	"#008080": "teal",
	"#ff6347": "tomato",
	"#ee82ee": "violet",
	"#f5deb3": "wheat",
}

func init() {
	for name, c := range colornames.Map {
		ColorNames[name] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
}
