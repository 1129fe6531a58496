package tally

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ParseAmount parses an amount in the smallest currency unit, such as
// "1500" or "1,500". Fractional amounts are rejected.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return amountFromDecimal(d)
}

// amountFromDecimal converts d into an integer amount.
func amountFromDecimal(d decimal.Decimal) (int64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %s has a fractional part", ErrInvalidAmount, d)
	}
	if d.Abs().GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, d)
	}
	return d.IntPart(), nil
}
