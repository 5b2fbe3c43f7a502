package num2text

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// decomposer is the decimal interchange contract used by database/sql
// drivers (cockroach apd, vitess decimal, ...).
type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
}

// textDecimal matches arbitrary precision floats that print themselves,
// such as *big.Float and *github.com/db47h/decimal.Decimal.
type textDecimal interface {
	Text(format byte, prec int) string
	IsInf() bool
	Sign() int
}

// maxTextExponent bounds the exponent read from numeral text. Anything
// wider is out of range for MaxDigits whatever the mantissa.
const maxTextExponent = 1 << 30

var (
	errEmptyText    = errors.New("empty numeral text")
	errExponentSize = errors.New("exponent out of range")
)

// Normalize converts value into a CanonicalNumber.
func Normalize(value any) (CanonicalNumber, error) {
	switch v := value.(type) {
	case nil:
		return CanonicalNumber{}, notNumeric(value, nil)
	case int:
		return fromInt64(int64(v)), nil
	case int8:
		return fromInt64(int64(v)), nil
	case int16:
		return fromInt64(int64(v)), nil
	case int32:
		return fromInt64(int64(v)), nil
	case int64:
		return fromInt64(v), nil
	case uint:
		return fromUint64(uint64(v)), nil
	case uint8:
		return fromUint64(uint64(v)), nil
	case uint16:
		return fromUint64(uint64(v)), nil
	case uint32:
		return fromUint64(uint64(v)), nil
	case uint64:
		return fromUint64(v), nil
	case uintptr:
		return fromUint64(uint64(v)), nil
	case *big.Int:
		if v == nil {
			return CanonicalNumber{}, notNumeric(value, nil)
		}
		return canonicalFromCoefficient(value, v.Sign() < 0, v, 0)
	case big.Int:
		return canonicalFromCoefficient(value, v.Sign() < 0, &v, 0)
	case float32:
		return fromFloat(float64(v), 32), nil
	case float64:
		return fromFloat(v, 64), nil
	case decimal.Decimal:
		return fromDecimal(value, v)
	case *decimal.Decimal:
		if v == nil {
			return CanonicalNumber{}, notNumeric(value, nil)
		}
		return fromDecimal(value, *v)
	case decimal.NullDecimal:
		if !v.Valid {
			return CanonicalNumber{}, notNumeric(value, nil)
		}
		return fromDecimal(value, v.Decimal)
	case json.Number:
		return parseNumeral(value, string(v))
	case string:
		return parseNumeral(value, v)
	case []byte:
		return parseNumeral(value, string(v))
	case decomposer:
		return fromDecomposer(value, v)
	case textDecimal:
		return fromTextDecimal(value, v)
	default:
		return CanonicalNumber{}, notNumeric(value, fmt.Errorf("unsupported type %T", value))
	}
}

func fromInt64(v int64) CanonicalNumber {
	n, _ := canonicalFromCoefficient(v, v < 0, big.NewInt(v), 0)
	return n
}

func fromUint64(v uint64) CanonicalNumber {
	n, _ := canonicalFromCoefficient(v, false, new(big.Int).SetUint64(v), 0)
	return n
}

func fromFloat(v float64, bits int) CanonicalNumber {
	switch {
	case math.IsNaN(v):
		return CanonicalNumber{Special: SpecialNaN}
	case math.IsInf(v, 1):
		return CanonicalNumber{Special: SpecialPositiveInfinity}
	case math.IsInf(v, -1):
		return CanonicalNumber{Special: SpecialNegativeInfinity}
	}
	text := strconv.FormatFloat(v, 'f', -1, bits)
	return splitPlainDecimal(text)
}

func fromDecimal(value any, d decimal.Decimal) (CanonicalNumber, error) {
	coefficient := d.Coefficient()
	return canonicalFromCoefficient(value, coefficient.Sign() < 0, coefficient, int(d.Exponent()))
}

func fromDecomposer(value any, d decomposer) (CanonicalNumber, error) {
	form, negative, coefficient, exponent := d.Decompose(nil)
	switch form {
	case 0:
		c := new(big.Int).SetBytes(coefficient)
		return canonicalFromCoefficient(value, negative, c, int(exponent))
	case 1:
		if negative {
			return CanonicalNumber{Special: SpecialNegativeInfinity}, nil
		}
		return CanonicalNumber{Special: SpecialPositiveInfinity}, nil
	case 2:
		return CanonicalNumber{Special: SpecialNaN}, nil
	default:
		return CanonicalNumber{}, notNumeric(value, fmt.Errorf("unknown decimal form %d", form))
	}
}

func fromTextDecimal(value any, d textDecimal) (CanonicalNumber, error) {
	if isNilPointer(d) {
		return CanonicalNumber{}, notNumeric(value, nil)
	}
	if d.IsInf() {
		if d.Sign() < 0 {
			return CanonicalNumber{Special: SpecialNegativeInfinity}, nil
		}
		return CanonicalNumber{Special: SpecialPositiveInfinity}, nil
	}
	// exponent form keeps huge magnitudes compact until the digit guard
	return parseNumeral(value, d.Text('e', -1))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// parseNumeral accepts decimal text with an optional sign and exponent, and
// the special spellings NaN, Inf and Infinity.
func parseNumeral(value any, text string) (CanonicalNumber, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CanonicalNumber{}, notNumeric(value, errEmptyText)
	}

	switch strings.ToLower(text) {
	case "nan", "+nan", "-nan":
		return CanonicalNumber{Special: SpecialNaN}, nil
	case "inf", "+inf", "infinity", "+infinity":
		return CanonicalNumber{Special: SpecialPositiveInfinity}, nil
	case "-inf", "-infinity":
		return CanonicalNumber{Special: SpecialNegativeInfinity}, nil
	}

	if !looksNumeric(text) {
		return CanonicalNumber{}, notNumeric(value, fmt.Errorf("invalid numeral %q", text))
	}

	if i := strings.IndexAny(text, "eE"); i >= 0 {
		e, err := strconv.ParseInt(text[i+1:], 10, 64)
		if errors.Is(err, strconv.ErrRange) || e > maxTextExponent || e < -maxTextExponent {
			return CanonicalNumber{}, outOfRange(value, errExponentSize)
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return CanonicalNumber{}, notNumeric(value, err)
	}
	return fromDecimal(value, d)
}

// looksNumeric rejects forms the decimal parser would otherwise tolerate.
func looksNumeric(text string) bool {
	digits := 0
	for i, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-':
			if i != 0 {
				prev := text[i-1]
				if prev != 'e' && prev != 'E' {
					return false
				}
			}
		case r == '.' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return digits > 0
}

func splitPlainDecimal(text string) CanonicalNumber {
	negative := strings.HasPrefix(text, "-")
	text = strings.TrimLeft(text, "+-")
	integer, fraction, _ := strings.Cut(text, ".")
	return canonicalFromDigits(negative, integer, fraction)
}
