package pie

import (
	"math"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"payments-charts/layout"
)

// Ellipsis is appended to names cut to their breakpoint budget.
const Ellipsis = "..."

// groupedLocale is the locale used for thousands separators.
var groupedLocale = language.BritishEnglish

// FormatValue abbreviates a segment value for a label using the label policy
// of bp. See FormatAbbreviated.
func FormatValue(v float64, bp layout.Breakpoint) string {
	return FormatAbbreviated(v, layout.PolicyFor(bp))
}

// FormatAbbreviated abbreviates v under policy: millions with one decimal
// and an "M" suffix, thousands with policy.ThousandsDecimals decimals and a
// "K" suffix, anything smaller as a whole number. Halves round away from
// zero, so 1,250,000 is "1.3M". The magnitude is chosen after rounding, so
// a value that rounds up to 1000 of a unit moves to the next suffix.
func FormatAbbreviated(v float64, policy layout.LabelPolicy) string {
	switch {
	case v >= 1e6 || roundTo(v/1e3, policy.ThousandsDecimals) >= 1e3:
		return formatFixed(v/1e6, 1) + "M"
	case math.Round(v) >= 1e3:
		return formatFixed(v/1e3, policy.ThousandsDecimals) + "K"
	default:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
}

// FormatGrouped writes v with locale thousands separators and at most three
// decimals, e.g. "1,250,000".
func FormatGrouped(v float64) string {
	p := message.NewPrinter(groupedLocale)
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return p.Sprintf("%d", int64(v))
	}
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// ValueFormatter returns the label formatter for a profile. Tablet and
// desktop hosts with room for full numbers may ask for grouped output; the
// narrow bands always abbreviate.
func ValueFormatter(p layout.LayoutProfile, grouped bool) func(float64) string {
	if grouped && !p.Breakpoint.IsNarrow() {
		return FormatGrouped
	}
	return func(v float64) string { return FormatAbbreviated(v, p.Labels) }
}

// TruncateName cuts name to the breakpoint's display-width budget and
// appends an ellipsis when anything was removed.
func TruncateName(name string, bp layout.Breakpoint) string {
	return truncateTo(name, layout.PolicyFor(bp).NameBudget)
}

func truncateTo(name string, budget int) string {
	if budget <= 0 || runewidth.StringWidth(name) <= budget {
		return name
	}
	return runewidth.Truncate(name, budget, "") + Ellipsis
}

func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(roundTo(v, decimals), 'f', decimals, 64)
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
