package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// JoinList renders a name list as a comma-separated cell, or "-" when empty.
func JoinList(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

// FmtDollars renders a decimal amount as a dollar figure with two places.
func FmtDollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// YesNo returns "Yes" for true and "No" for false.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// LeaderMark returns "*" for the team leader slot and "" otherwise.
func LeaderMark(v bool) string {
	if v {
		return "*"
	}
	return ""
}
