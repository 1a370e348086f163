package plugin

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestRound(t *testing.T) {
	test.T(t, Round(1.23456, 3), 1.235)
	test.T(t, Round(1.5, 0), 2.0)
	test.T(t, Round(-1.5, 0), -2.0)
}

func TestRemoveLeadingZero(t *testing.T) {
	var tests = []struct {
		num      float64
		expected string
	}{
		{0.5, ".5"},
		{-0.5, "-.5"},
		{0.0, "0"},
		{1.5, "1.5"},
		{-1.5, "-1.5"},
		{0.001, ".001"},
		{10.0, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, RemoveLeadingZero(tt.num), tt.expected)
		})
	}
}

func TestCleanupNumericValues(t *testing.T) {
	var tests = []struct {
		val      string
		expected string
	}{
		{"1.23456", "1.235"},
		{"0.5", ".5"},
		{".5", ".5"},
		{"-0.5", "-.5"},
		{"+5", "5"},
		{"1e2", "100"},
		{"0.0001", "0"},
		{"-0.0001", "0"},
		{"10px", "10"},
		{"1in", "96"},
		{"12pt", "16"},
		{"1pc", "16"},
		{"1cm", "1cm"},
		{"10mm", "10mm"},
		{"100.0004mm", "377.954"},
		{"10%", "10%"},
		{"1.5em", "1.5em"},
		{"0.50000ex", ".5ex"},
		{"1 2", "1 2"},
		{"abc", "abc"},
		{"10PX", "10PX"},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			test.String(t, optimize(t, NewCleanupNumericValues(), `<svg x="`+tt.val+`"/>`), `<svg x="`+tt.expected+`"/>`)
		})
	}
}

func TestCleanupNumericValuesAttrs(t *testing.T) {
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg version="1.10" width="100.0000"/>`, `<svg version="1.10" width="100"/>`},
		{`<svg viewBox="0, 0, 20.123456, 20"/>`, `<svg viewBox="0 0 20.123 20"/>`},
		{`<svg viewBox=" 0  0 a 0.5 "/>`, `<svg viewBox="0 0 0 0.5"/>`},
		{`<svg viewBox="20"/>`, `<svg viewBox="20"/>`},
		{`<svg hidden><rect width="1.00001"/></svg>`, `<svg hidden><rect width="1"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			test.String(t, optimize(t, NewCleanupNumericValues(), tt.svg), tt.expected)
		})
	}
}

func TestCleanupNumericValuesParams(t *testing.T) {
	var tests = []struct {
		p        *CleanupNumericValues
		val      string
		expected string
	}{
		{&CleanupNumericValues{FloatPrecision: 3, DefaultPx: true, ConvertToPx: true}, ".5", "0.5"},
		{&CleanupNumericValues{FloatPrecision: 3, DefaultPx: true, ConvertToPx: true}, "-0.25px", "-0.25"},
		{&CleanupNumericValues{FloatPrecision: 3, LeadingZero: true, ConvertToPx: true}, "10px", "10px"},
		{&CleanupNumericValues{FloatPrecision: 3, LeadingZero: true, ConvertToPx: true}, "1in", "96px"},
		{&CleanupNumericValues{FloatPrecision: 3, LeadingZero: true, DefaultPx: true}, "1in", "1in"},
		{&CleanupNumericValues{FloatPrecision: 1, LeadingZero: true, DefaultPx: true, ConvertToPx: true}, "1.26", "1.3"},
		{&CleanupNumericValues{FloatPrecision: 0, LeadingZero: true, DefaultPx: true, ConvertToPx: true}, "0.4", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			test.String(t, optimize(t, tt.p, `<svg x="`+tt.val+`"/>`), `<svg x="`+tt.expected+`"/>`)
		})
	}
}
