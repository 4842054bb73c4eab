package game

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IsNumber reports whether s parses as a decimal number.
func IsNumber(s string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}

// SumOfNumericStrings adds every entry that parses as a number. Entries that
// do not parse are skipped, not treated as errors.
func SumOfNumericStrings(values []string) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}
	return sum
}

// ProductOfNumericStrings multiplies every entry that parses as a number.
// Entries that do not parse are skipped.
func ProductOfNumericStrings(values []string) decimal.Decimal {
	product := decimal.NewFromInt(1)
	for _, v := range values {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		product = product.Mul(d)
	}
	return product
}

// Triangular returns the number of unordered pairs among n items.
func Triangular(n int) int {
	return n * (n - 1) / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDecimal(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

func clampDecimalMin(v, lo decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	return v
}
