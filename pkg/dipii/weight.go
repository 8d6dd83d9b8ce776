package dipii

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	weightPattern   = regexp.MustCompile(`^\d{1,3}\.\d{2}$`)
	quantityPattern = regexp.MustCompile(`^\d{1,6}\.\d{2}$`)
)

// IsWeight reports whether s is a weight written with one to three integer
// digits and exactly two decimals, e.g. "5.00" or "011.50".
func IsWeight(s string) bool {
	return weightPattern.MatchString(s)
}

// ParseWeight validates s with IsWeight and returns its numeric value.
func ParseWeight(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !IsWeight(s) {
		return decimal.Zero, ErrInvalidWeight
	}

	return decimal.NewFromString(s)
}

// IsQuantity is IsWeight for intake quantities, which allow up to six
// integer digits.
func IsQuantity(s string) bool {
	return quantityPattern.MatchString(s)
}

func ParseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !IsQuantity(s) {
		return decimal.Zero, ErrInvalidWeight
	}

	return decimal.NewFromString(s)
}

// FormatWeight renders a weight in canonical two-decimal form.
func FormatWeight(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// TotalKilograms is count × weight rounded to three decimals.
func TotalKilograms(count int, weight decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(count)).Mul(weight).Round(3)
}
