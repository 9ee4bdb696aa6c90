package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LenientDecimal parses a number, returning zero for empty or malformed input.
func LenientDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LenientInt parses an integer, truncating fractions and returning zero for malformed input.
func LenientInt(s string) int {
	return int(LenientDecimal(s).IntPart())
}

// LenientBool parses a flag, returning false for anything unrecognized.
func LenientBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
