package main

import (
	"math"
	"strconv"
	"strings"
)

// ResultFormatter renders numbers the way results are already stored:
// integers as is, floats always with a fraction or exponent (15.0, 0.1, 1e+16, 1.5e-05)
type ResultFormatter struct{}

func NewResultFormatter() *ResultFormatter {
	return &ResultFormatter{}
}

func (f *ResultFormatter) FormatNumber(number Number) string {
	if number.IsInteger() {
		return number.integer.String()
	}

	return f.FormatFloat(number.float)
}

func (f *ResultFormatter) FormatFloat(value float64) string {
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}

	scientific := strconv.FormatFloat(value, 'e', -1, 64)
	exponent, _ := strconv.Atoi(scientific[strings.IndexByte(scientific, 'e')+1:])
	if exponent < -4 || exponent >= 16 {
		return scientific
	}

	fixed := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}
