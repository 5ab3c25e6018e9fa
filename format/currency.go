// Package format renders rupee amounts the way Indian banks print them:
// lakh/crore digit grouping and short "~1.5 Cr" style approximations.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

var (
	thousand = decimal.NewFromInt(1_000)
	lakh     = decimal.NewFromInt(100_000)
	crore    = decimal.NewFromInt(10_000_000)
	ten      = decimal.NewFromInt(10)
)

// Indian formats amount as ₹12,34,567 with the given number of decimals.
// With zero decimals the fraction is truncated, not rounded.
func Indian(amount float64, decimals int) string {
	d := decimal.NewFromFloat(amount)
	if d.IsNegative() {
		return "-" + Indian(-amount, decimals)
	}

	var s string
	if decimals > 0 {
		s = d.StringFixed(int32(decimals))
	} else {
		s = d.Truncate(0).String()
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := groupIndian(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	return rupee + out
}

// groupIndian puts a comma before the last three digits and then after
// every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// Approximation returns a short hint such as "~1.5 Cr", "~15 L" or "~5.0 K".
// Amounts under a thousand are printed in full. The sign is dropped.
func Approximation(amount float64) string {
	abs := decimal.NewFromFloat(amount).Abs()
	if unit, ok := shortUnit(abs); ok {
		return "~" + unit
	}
	return rupee + abs.StringFixed(0)
}

// WithApproximation appends the approximation to the full figure for
// amounts of a lakh or more: "₹15,00,823 (~15 L)".
func WithApproximation(amount float64, decimals int) string {
	full := Indian(amount, decimals)
	if decimal.NewFromFloat(amount).Abs().LessThan(lakh) {
		return full
	}
	return full + " (" + Approximation(amount) + ")"
}

// Compact is the approximation alone, signed and with the rupee symbol:
// "₹1.5 Cr", "-₹15 L", "₹950".
func Compact(amount float64) string {
	d := decimal.NewFromFloat(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	abs := d.Abs()
	if unit, ok := shortUnit(abs); ok {
		return sign + rupee + unit
	}
	return sign + rupee + abs.StringFixed(0)
}

func shortUnit(abs decimal.Decimal) (string, bool) {
	switch {
	case abs.GreaterThanOrEqual(crore):
		return scaled(abs.Div(crore)) + " Cr", true
	case abs.GreaterThanOrEqual(lakh):
		return scaled(abs.Div(lakh)) + " L", true
	case abs.GreaterThanOrEqual(thousand):
		return scaled(abs.Div(thousand)) + " K", true
	default:
		return "", false
	}
}

// scaled keeps one decimal below ten units and none above.
func scaled(v decimal.Decimal) string {
	if v.GreaterThanOrEqual(ten) {
		return v.StringFixed(0)
	}
	return v.StringFixed(1)
}
