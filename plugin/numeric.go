package plugin

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/tdewolff/svgo/xast"
)

var numericRe = regexp.MustCompile(`^([-+]?\d*\.?\d+([eE][-+]?\d+)?)(px|pt|pc|mm|cm|m|in|ft|em|ex|%)?$`)

// pixels per absolute unit
var absoluteLengths = map[string]float64{
	"cm": 96.0 / 2.54,
	"mm": 96.0 / 25.4,
	"in": 96.0,
	"pt": 4.0 / 3.0,
	"pc": 16.0,
	"px": 1.0,
}

// CleanupNumericValues rounds numeric attribute values to a fixed precision, converts absolute units to pixels when
// that is shorter and removes the default px unit.
type CleanupNumericValues struct {
	FloatPrecision int  `yaml:"floatPrecision"`
	LeadingZero    bool `yaml:"leadingZero"`
	DefaultPx      bool `yaml:"defaultPx"`
	ConvertToPx    bool `yaml:"convertToPx"`
}

// NewCleanupNumericValues returns the plugin with a precision of three decimals.
func NewCleanupNumericValues() *CleanupNumericValues {
	return &CleanupNumericValues{
		FloatPrecision: 3,
		LeadingZero:    true,
		DefaultPx:      true,
		ConvertToPx:    true,
	}
}

// Name returns "cleanupNumericValues".
func (p *CleanupNumericValues) Name() string {
	return "cleanupNumericValues"
}

// Optimize rounds and shortens numeric attribute values.
func (p *CleanupNumericValues) Optimize(doc *xast.Document) {
	xast.Walk(doc, xast.Visitor{
		Element: func(el *xast.Element) xast.Decision {
			if attr := el.Attr("viewBox"); attr != nil && !attr.Bare {
				attr.Value = p.viewBox(attr.Value)
			}
			for i := range el.Attrs {
				attr := &el.Attrs[i]
				if attr.Bare || attr.Name == "version" {
					continue
				}
				attr.Value = p.value(attr.Value)
			}
			return xast.Continue
		},
	})
}

func (p *CleanupNumericValues) viewBox(val string) string {
	fields := strings.FieldsFunc(val, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for i, field := range fields {
		num, _ := strconv.ParseFloat(field, 64) // malformed numbers become zero
		if math.IsNaN(num) || math.IsInf(num, 0) {
			continue
		}
		fields[i] = formatNumber(Round(num, p.FloatPrecision))
	}
	return strings.Join(fields, " ")
}

func (p *CleanupNumericValues) value(val string) string {
	m := numericRe.FindStringSubmatch(val)
	if m == nil {
		return val
	}
	orig, _ := strconv.ParseFloat(m[1], 64)
	if math.IsInf(orig, 0) {
		return val
	}
	num := Round(orig, p.FloatPrecision)
	unit := m[3]

	if ratio, ok := absoluteLengths[unit]; ok && p.ConvertToPx {
		px := Round(ratio*orig, p.FloatPrecision)
		if len(formatNumber(px)) < len(val) {
			num = px
			unit = "px"
		}
	}

	s := formatNumber(num)
	if p.LeadingZero {
		s = RemoveLeadingZero(num)
	}
	if p.DefaultPx && unit == "px" {
		unit = ""
	}
	return s + unit
}

// Round rounds num to the given number of decimals, halfway away from zero.
func Round(num float64, precision int) float64 {
	scale := math.Pow(10.0, float64(precision))
	return math.Round(num*scale) / scale
}

// RemoveLeadingZero formats num and drops the zero before the decimal point of numbers between -1 and 1, such as
// 0.5 to .5 and -0.5 to -.5.
func RemoveLeadingZero(num float64) string {
	s := formatNumber(num)
	if 0.0 < num && num < 1.0 && s[0] == '0' {
		return s[1:]
	} else if -1.0 < num && num < 0.0 && s[1] == '0' {
		return "-" + s[2:]
	}
	return s
}

// formatNumber formats in the shortest decimal form that parses back to num, without exponent.
func formatNumber(num float64) string {
	if num == 0.0 {
		num = 0.0 // no negative zero
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}
