package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses canonical decimal text (e.g. "10.5") into an
// exact value. Fails with ErrInvalidQuantity if the text is not a
// well-formed decimal.
func ParseDecimal(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid decimal", ErrInvalidQuantity, text)
	}
	return d, nil
}

// ParseQuantity parses a quantity value, which must be strictly positive.
func ParseQuantity(text string) (decimal.Decimal, error) {
	d, err := ParseDecimal(text)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidQuantity, d)
	}
	return d, nil
}

// ParseCost parses a cost value, which must be non-negative.
func ParseCost(text string) (decimal.Decimal, error) {
	d, err := ParseDecimal(text)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: cost must be non-negative, got %s", ErrInvalidQuantity, d)
	}
	return d, nil
}
