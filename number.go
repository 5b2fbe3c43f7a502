package num2text

import (
	"fmt"
	"math/big"
	"strings"
)

// Special tags non-finite values.
type Special int

const (
	SpecialNone Special = iota
	SpecialPositiveInfinity
	SpecialNegativeInfinity
	SpecialNaN
)

func (s Special) String() string {
	switch s {
	case SpecialPositiveInfinity:
		return "+Inf"
	case SpecialNegativeInfinity:
		return "-Inf"
	case SpecialNaN:
		return "NaN"
	default:
		return "none"
	}
}

// CanonicalNumber is the normalized form of one input value. Integer holds
// decimal digits without leading zeros ("0" for zero); Fraction holds the
// fractional digits and is empty for whole values. Zero is never negative.
type CanonicalNumber struct {
	Negative bool
	Integer  string
	Fraction string
	Special  Special
}

// IsSpecial reports whether n is NaN or an infinity.
func (n CanonicalNumber) IsSpecial() bool {
	return n.Special != SpecialNone
}

// IsWhole reports whether n has no fractional digits.
func (n CanonicalNumber) IsWhole() bool {
	return n.Special == SpecialNone && n.Fraction == ""
}

// IsZero reports whether n is exactly zero.
func (n CanonicalNumber) IsZero() bool {
	return n.Special == SpecialNone && n.Integer == "0" && n.Fraction == ""
}

// IntegerValue returns the absolute integer part.
func (n CanonicalNumber) IntegerValue() *big.Int {
	v, ok := new(big.Int).SetString(n.Integer, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

func (n CanonicalNumber) String() string {
	if n.Special != SpecialNone {
		return n.Special.String()
	}
	var b strings.Builder
	if n.Negative {
		b.WriteByte('-')
	}
	b.WriteString(n.Integer)
	if n.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(n.Fraction)
	}
	return b.String()
}

// MaxDigits bounds the integer digits and the fraction digits of a
// canonical number. Wider values are rejected with ErrOutOfRange before any
// digits are expanded.
const MaxDigits = 4096

// canonicalFromCoefficient builds a number from |coefficient| * 10^exponent.
func canonicalFromCoefficient(value any, negative bool, coefficient *big.Int, exponent int) (CanonicalNumber, error) {
	if coefficient.Sign() == 0 {
		return canonicalFromDigits(false, "0", ""), nil
	}
	// wider than MaxDigits at any exponent
	if bits := coefficient.BitLen(); bits > 4*(2*MaxDigits+1) {
		return CanonicalNumber{}, outOfRange(value, fmt.Errorf("%d-bit coefficient", bits))
	}
	digits := new(big.Int).Abs(coefficient).String()

	var integer, fraction string
	switch {
	case exponent >= 0:
		if width := len(digits) + exponent; width > MaxDigits || width < len(digits) {
			return CanonicalNumber{}, outOfRange(value, fmt.Errorf("%d integer digits", width))
		}
		integer = digits + strings.Repeat("0", exponent)
	default:
		scale := -exponent
		if scale > MaxDigits || scale < 0 {
			return CanonicalNumber{}, outOfRange(value, fmt.Errorf("%d fraction digits", scale))
		}
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		integer = digits[:len(digits)-scale]
		fraction = digits[len(digits)-scale:]
		if width := len(strings.TrimLeft(integer, "0")); width > MaxDigits {
			return CanonicalNumber{}, outOfRange(value, fmt.Errorf("%d integer digits", width))
		}
	}

	return canonicalFromDigits(negative, integer, fraction), nil
}

func canonicalFromDigits(negative bool, integer, fraction string) CanonicalNumber {
	integer = strings.TrimLeft(integer, "0")
	if integer == "" {
		integer = "0"
	}
	if strings.Trim(fraction, "0") == "" {
		fraction = ""
	}
	n := CanonicalNumber{Negative: negative, Integer: integer, Fraction: fraction}
	if n.Integer == "0" && n.Fraction == "" {
		n.Negative = false
	}
	return n
}
