package helpers

import (
	"math"
	"strconv"
	"strings"
)

// FormatDecimalString formats a value with a fixed number of decimals.
// Non-finite values render as inf, -inf and nan.
func FormatDecimalString(value float64, decimals int) string {
	if s, ok := formatNonFinite(value); ok {
		return s
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// FormatGasPrice renders a gas price using the shortest representation that
// round-trips. Integral values keep a trailing ".0" and magnitudes outside
// [1e-4, 1e16) switch to exponent form, e.g. 15.0, 0.1, 1e-05, 1e+16.
func FormatGasPrice(value float64) string {
	if s, ok := formatNonFinite(value); ok {
		return s
	}

	sci := strconv.FormatFloat(value, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatNonFinite(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		return "nan", true
	case math.IsInf(value, 1):
		return "inf", true
	case math.IsInf(value, -1):
		return "-inf", true
	}
	return "", false
}
