// Package money formats currency amounts for display.
package money

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Format renders amount with thousands separators and two decimals, e.g.
// "$1,234.50" or "-$80.00".
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$—"
	}
	// Round first so -0.004 does not print as "-$0.00".
	amount = math.Round(amount*100) / 100
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatWhole renders amount rounded to whole units, e.g. "$1,235".
func FormatWhole(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$—"
	}
	amount = math.Round(amount)
	if amount < 0 {
		return "-$" + humanize.Comma(int64(-amount))
	}
	return "$" + humanize.Comma(int64(amount))
}
