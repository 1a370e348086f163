package plugin

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/svgo/table"
	"github.com/tdewolff/svgo/xast"
	"gopkg.in/yaml.v3"
)

const rgbNumber = `([+-]?(?:\d*\.\d+|\d+\.?)%?)`

var rgbRe = regexp.MustCompile(`^rgb\(\s*` + rgbNumber + `\s*,\s*` + rgbNumber + `\s*,\s*` + rgbNumber)

// ConvertColors converts color values to their shortest form: rgb() and names to hex, long hex to short hex and hex
// to a shorter name.
//
// CurrentColor selects the colors that are replaced by currentColor.
type ConvertColors struct {
	CurrentColor CurrentColor `yaml:"currentColor"`
	Names2Hex    bool         `yaml:"names2hex"`
	RGB2Hex      bool         `yaml:"rgb2hex"`
	ShortHex     bool         `yaml:"shorthex"`
	ShortName    bool         `yaml:"shortname"`
}

// CurrentColor selects colors to replace by currentColor. CurrentColorAll replaces every value but none, a value
// between slashes such as /^#f00$/ is a regular expression to match, any other non-empty value must match exactly. An
// invalid regular expression matches nothing.
type CurrentColor string

const CurrentColorAll CurrentColor = "all"

// UnmarshalYAML accepts a boolean, where true selects all colors and false none, or a string.
func (cc *CurrentColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!bool" {
		var all bool
		if err := value.Decode(&all); err != nil {
			return err
		}
		*cc = ""
		if all {
			*cc = CurrentColorAll
		}
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*cc = CurrentColor(s)
	return nil
}

// NewConvertColors returns the plugin with all conversions enabled and without currentColor replacement.
func NewConvertColors() *ConvertColors {
	return &ConvertColors{
		Names2Hex: true,
		RGB2Hex:   true,
		ShortHex:  true,
		ShortName: true,
	}
}

// Name returns "convertColors".
func (p *ConvertColors) Name() string {
	return "convertColors"
}

// Optimize converts the color properties of every element.
func (p *ConvertColors) Optimize(doc *xast.Document) {
	isCurrentColor := p.currentColorMatcher()
	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			for i := range el.Attrs {
				if attr := &el.Attrs[i]; !attr.Bare && table.ColorProps[attr.Name] {
					attr.Value = p.convert(attr.Value, isCurrentColor)
				}
			}
			return xast.Continue
		},
	})
}

func (p *ConvertColors) currentColorMatcher() func(string) bool {
	cc := string(p.CurrentColor)
	if cc == "" {
		return func(string) bool { return false }
	} else if p.CurrentColor == CurrentColorAll {
		return func(val string) bool { return val != "none" }
	} else if 2 < len(cc) && cc[0] == '/' && cc[len(cc)-1] == '/' {
		re, err := regexp.Compile(cc[1 : len(cc)-1])
		if err != nil {
			return func(string) bool { return false }
		}
		return re.MatchString
	}
	return func(val string) bool { return val == cc }
}

func (p *ConvertColors) convert(val string, isCurrentColor func(string) bool) string {
	if isCurrentColor(val) {
		val = "currentColor"
	}
	if p.Names2Hex {
		if hex, ok := table.ColorNames[strings.ToLower(val)]; ok {
			val = hex
		}
	}
	if p.RGB2Hex {
		if m := rgbRe.FindStringSubmatch(val); m != nil {
			val = fmt.Sprintf("#%02X%02X%02X", rgbChannel(m[1]), rgbChannel(m[2]), rgbChannel(m[3]))
		}
	}
	if p.ShortHex {
		val = shortHex(val)
	}
	if p.ShortName {
		if name, ok := table.ColorShortNames[strings.ToLower(val)]; ok {
			val = name
		}
	}
	return val
}

// rgbChannel parses a number or percentage and clamps it to a byte.
func rgbChannel(s string) uint8 {
	var n float64
	if strings.HasSuffix(s, "%") {
		n, _ = strconv.ParseFloat(s[:len(s)-1], 64)
		n = math.Round(n * 2.55)
	} else {
		n, _ = strconv.ParseFloat(s, 64)
	}
	return uint8(math.Max(0.0, math.Min(n, 255.0)))
}

// shortHex converts #aabbcc to #abc.
func shortHex(val string) string {
	hex := strings.ToLower(val)
	if len(hex) != 7 || hex[0] != '#' {
		return val
	}
	for i := 1; i < 7; i++ {
		if !isHexDigit(hex[i]) {
			return val
		}
	}
	if hex[1] != hex[2] || hex[3] != hex[4] || hex[5] != hex[6] {
		return val
	}
	return string([]byte{'#', hex[1], hex[3], hex[5]})
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f'
}
