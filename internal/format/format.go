// Package format renders calculator results for display.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Round2 rounds v to two decimal places the way Decimal2 prints it: the
// exact binary value is rounded, so 0.625 becomes 0.62.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Decimal2 formats v with exactly two decimals.
func Decimal2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Currency formats v with thousands separators and two decimals, prefixed by
// symbol when one is given, e.g. "Rp 250,000.00".
func Currency(symbol string, v float64) string {
	amount := humanize.FormatFloat("#,###.##", Round2(v))
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return amount
	}
	return symbol + " " + amount
}
