package helpers

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseGasUsed coerces a textual gas amount to an integer.
// Only base-10 integers are accepted; surrounding whitespace is ignored.
func ParseGasUsed(value string) (int64, error) {
	gasUsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid gas used %q", value)
	}
	return gasUsed, nil
}

// ParseGasUsedList coerces every element with ParseGasUsed, stopping at the first failure.
func ParseGasUsedList(values []string) ([]int64, error) {
	gasUsed := make([]int64, 0, len(values))
	for i, v := range values {
		g, err := ParseGasUsed(v)
		if err != nil {
			return nil, errors.Wrapf(err, "gas used list position %d", i+1)
		}
		gasUsed = append(gasUsed, g)
	}
	return gasUsed, nil
}

// ParseGasPrice coerces a textual Gwei price to a float. No bounds are enforced.
func ParseGasPrice(value string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid gas price %q", value)
	}
	return price, nil
}

// ParseExchangeRate coerces an optional exchange rate. An empty value reports ok=false.
func ParseExchangeRate(value string) (float64, bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false, nil
	}
	rate, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, errors.Wrapf(err, "invalid exchange rate %q", value)
	}
	return rate, true, nil
}
