package amount

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DropsPerXRP is the fixed number of drops in one XRP.
const DropsPerXRP = 1_000_000

// dropsShift is the decimal exponent between drops and XRP.
const dropsShift = 6

// ErrInvalidAmount is returned when a value cannot be interpreted as a
// valid amount in the requested unit.
var ErrInvalidAmount = errors.New("invalid amount")

// plainDecimal matches a plain decimal numeral: optional leading minus,
// digits, optional single decimal point followed by digits. Exponent
// notation is deliberately rejected.
var plainDecimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// IsPlainDecimal reports whether s is a plain decimal numeral.
func IsPlainDecimal(s string) bool {
	return plainDecimal.MatchString(s)
}

// ScaleValue computes value*multiplier+extra using exact decimal
// arithmetic and returns the result as a decimal string.
func ScaleValue(value string, multiplier int64, extra int64) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a decimal value", ErrInvalidAmount, value)
	}
	return format(d.Mul(decimal.NewFromInt(multiplier)).Add(decimal.NewFromInt(extra))), nil
}

// DropsToXRP converts a drops value to its XRP decimal representation.
// The input must be a plain decimal numeral with no fractional part;
// drops are the indivisible unit.
func DropsToXRP(drops string) (string, error) {
	if !IsPlainDecimal(drops) {
		return "", fmt.Errorf("%w: %s is an invalid drops value", ErrInvalidAmount, drops)
	}
	d, err := decimal.NewFromString(drops)
	if err != nil {
		return "", fmt.Errorf("%w: %s is an invalid drops value", ErrInvalidAmount, drops)
	}
	if !d.IsInteger() {
		return "", fmt.Errorf("%w: drops value %s must be a whole number", ErrInvalidAmount, drops)
	}
	return format(d.Shift(-dropsShift)), nil
}

// XRPToDrops converts an XRP decimal value to drops. The value may carry
// at most six decimal places; anything finer has no drops representation.
func XRPToDrops(xrp string) (string, error) {
	if !IsPlainDecimal(xrp) {
		return "", fmt.Errorf("%w: %s is an invalid XRP value", ErrInvalidAmount, xrp)
	}
	d, err := decimal.NewFromString(xrp)
	if err != nil {
		return "", fmt.Errorf("%w: %s is an invalid XRP value", ErrInvalidAmount, xrp)
	}
	shifted := d.Shift(dropsShift)
	if !shifted.IsInteger() {
		return "", fmt.Errorf("%w: XRP value %s has more than 6 decimal places", ErrInvalidAmount, xrp)
	}
	return format(shifted), nil
}

// Compare compares two decimal values a and b, returning -1, 0 or 1.
func Compare(a, b string) (int, error) {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal value", ErrInvalidAmount, a)
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal value", ErrInvalidAmount, b)
	}
	return da.Cmp(db), nil
}

// format renders a decimal in exponent-free notation with insignificant
// trailing zeros removed. shopspring preserves the source exponent in
// String, so "2000000" shifted by -6 would otherwise print as "2.000000".
func format(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
