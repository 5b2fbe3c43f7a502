package num2text

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// sqlDecimal implements the database/sql decimal decomposition contract.
type sqlDecimal struct {
	form        byte
	negative    bool
	coefficient []byte
	exponent    int32
}

func (d sqlDecimal) Decompose(buf []byte) (byte, bool, []byte, int32) {
	return d.form, d.negative, d.coefficient, d.exponent
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	huge, _ := new(big.Int).SetString("1000000000000000000000000000000000000000", 10)
	widest := CanonicalNumber{Integer: "1" + strings.Repeat("0", MaxDigits-1)}
	finest := CanonicalNumber{Integer: "0", Fraction: strings.Repeat("0", MaxDigits-1) + "1"}
	tests := []struct {
		name  string
		value any
		want  CanonicalNumber
	}{
		{name: "int", value: 42, want: CanonicalNumber{Integer: "42"}},
		{name: "negative int8", value: int8(-7), want: CanonicalNumber{Negative: true, Integer: "7"}},
		{name: "min int64", value: int64(math.MinInt64), want: CanonicalNumber{Negative: true, Integer: "9223372036854775808"}},
		{name: "max uint64", value: uint64(math.MaxUint64), want: CanonicalNumber{Integer: "18446744073709551615"}},
		{name: "big int", value: huge, want: CanonicalNumber{Integer: huge.String()}},
		{name: "big int value", value: *big.NewInt(-3), want: CanonicalNumber{Negative: true, Integer: "3"}},
		{name: "float", value: 3.14, want: CanonicalNumber{Integer: "3", Fraction: "14"}},
		{name: "float32 shortest", value: float32(0.1), want: CanonicalNumber{Integer: "0", Fraction: "1"}},
		{name: "whole float", value: 123.0, want: CanonicalNumber{Integer: "123"}},
		{name: "large float", value: 1e21, want: CanonicalNumber{Integer: "1000000000000000000000"}},
		{name: "negative zero float", value: math.Copysign(0, -1), want: CanonicalNumber{Integer: "0"}},
		{name: "decimal keeps significant zeros", value: decimal.RequireFromString("123.4500"), want: CanonicalNumber{Integer: "123", Fraction: "4500"}},
		{name: "decimal pointer", value: func() *decimal.Decimal { d := decimal.New(-15, -1); return &d }(), want: CanonicalNumber{Negative: true, Integer: "1", Fraction: "5"}},
		{name: "null decimal", value: decimal.NewNullDecimal(decimal.New(5, 2)), want: CanonicalNumber{Integer: "500"}},
		{name: "string zero fraction", value: "123.000", want: CanonicalNumber{Integer: "123"}},
		{name: "string negative zero", value: "-0.0", want: CanonicalNumber{Integer: "0"}},
		{name: "string exponent", value: "1.5e-3", want: CanonicalNumber{Integer: "0", Fraction: "0015"}},
		{name: "string positive exponent", value: "2E3", want: CanonicalNumber{Integer: "2000"}},
		{name: "string padded", value: "  0012 ", want: CanonicalNumber{Integer: "12"}},
		{name: "string plus", value: "+8", want: CanonicalNumber{Integer: "8"}},
		{name: "json number", value: json.Number("12.5"), want: CanonicalNumber{Integer: "12", Fraction: "5"}},
		{name: "bytes", value: []byte("7"), want: CanonicalNumber{Integer: "7"}},
		{name: "big float", value: big.NewFloat(2.5), want: CanonicalNumber{Integer: "2", Fraction: "5"}},
		{name: "sql decimal", value: sqlDecimal{negative: true, coefficient: []byte{0x04, 0xd2}, exponent: -2}, want: CanonicalNumber{Negative: true, Integer: "12", Fraction: "34"}},
		{name: "nan float", value: math.NaN(), want: CanonicalNumber{Special: SpecialNaN}},
		{name: "inf float", value: math.Inf(1), want: CanonicalNumber{Special: SpecialPositiveInfinity}},
		{name: "negative inf float", value: math.Inf(-1), want: CanonicalNumber{Special: SpecialNegativeInfinity}},
		{name: "nan string", value: "NaN", want: CanonicalNumber{Special: SpecialNaN}},
		{name: "infinity string", value: "-Infinity", want: CanonicalNumber{Special: SpecialNegativeInfinity}},
		{name: "big float inf", value: new(big.Float).SetInf(true), want: CanonicalNumber{Special: SpecialNegativeInfinity}},
		{name: "sql infinity", value: sqlDecimal{form: 1}, want: CanonicalNumber{Special: SpecialPositiveInfinity}},
		{name: "sql nan", value: sqlDecimal{form: 2}, want: CanonicalNumber{Special: SpecialNaN}},
		{name: "widest string", value: "1e4095", want: widest},
		{name: "widest json number", value: json.Number("1E+4095"), want: widest},
		{name: "widest decimal", value: decimal.New(1, MaxDigits-1), want: widest},
		{name: "widest sql decimal", value: sqlDecimal{coefficient: []byte{1}, exponent: MaxDigits - 1}, want: widest},
		{name: "widest big float", value: bigFloat("1e4095"), want: widest},
		{name: "widest big int", value: new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxDigits-1), nil), want: widest},
		{name: "finest string", value: "1e-4096", want: finest},
		{name: "finest decimal", value: decimal.New(1, -MaxDigits), want: finest},
		{name: "finest sql decimal", value: sqlDecimal{coefficient: []byte{1}, exponent: -MaxDigits}, want: finest},
		{name: "zero with huge exponent", value: decimal.New(0, 60000), want: CanonicalNumber{Integer: "0"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalize(tt.value)
			if err != nil {
				t.Fatalf("Normalize(%v): %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%v) = %+v; want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	t.Parallel()

	var nilBig *big.Int
	var nilFloat *big.Float
	var nilDecimal *decimal.Decimal
	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "nil big int", value: nilBig},
		{name: "nil big float", value: nilFloat},
		{name: "nil decimal", value: nilDecimal},
		{name: "invalid null decimal", value: decimal.NullDecimal{}},
		{name: "empty string", value: ""},
		{name: "blank string", value: "   "},
		{name: "word", value: "twelve"},
		{name: "two points", value: "1.2.3"},
		{name: "double sign", value: "--1"},
		{name: "sign inside", value: "1-2"},
		{name: "thousands separator", value: "1,000"},
		{name: "struct", value: struct{}{}},
		{name: "bool", value: true},
		{name: "sql unknown form", value: sqlDecimal{form: 9}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Normalize(tt.value)
			if !errors.Is(err, ErrNotNumeric) {
				t.Fatalf("Normalize(%#v) error = %v; want ErrNotNumeric", tt.value, err)
			}
			var normErr *NormalizationError
			if !errors.As(err, &normErr) || normErr.Kind != NotNumeric {
				t.Fatalf("Normalize(%#v) error = %v; want *NormalizationError of kind NotNumeric", tt.value, err)
			}
		})
	}
}

func TestNormalizeOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "1e4096"},
		{name: "string fraction", value: "1e-4097"},
		{name: "string huge exponent", value: "1e99999999999"},
		{name: "string exponent past int32", value: "-2.5e3000000000"},
		{name: "json number", value: json.Number("1e5000")},
		{name: "bytes", value: []byte("7e4096")},
		{name: "decimal", value: decimal.New(1, MaxDigits)},
		{name: "decimal far", value: decimal.New(1, 60000)},
		{name: "decimal fraction", value: decimal.New(1, -MaxDigits-1)},
		{name: "null decimal", value: decimal.NewNullDecimal(decimal.New(-3, 5000))},
		{name: "sql decimal", value: sqlDecimal{coefficient: []byte{1}, exponent: MaxDigits}},
		{name: "sql decimal max exponent", value: sqlDecimal{coefficient: []byte{1}, exponent: math.MaxInt32}},
		{name: "sql decimal min exponent", value: sqlDecimal{coefficient: []byte{1}, exponent: math.MinInt32}},
		{name: "big float", value: bigFloat("1e4096")},
		{name: "big float far", value: bigFloat("-1e1000000")},
		{name: "big int", value: new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxDigits), nil)},
		{name: "big int wide", value: new(big.Int).Lsh(big.NewInt(1), 1<<20)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Normalize(tt.value)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Normalize(%s) error = %v; want ErrOutOfRange", tt.name, err)
			}
			if errors.Is(err, ErrNotNumeric) {
				t.Fatalf("Normalize(%s) error = %v; must not be ErrNotNumeric", tt.name, err)
			}
			var normErr *NormalizationError
			if !errors.As(err, &normErr) || normErr.Kind != OutOfRange {
				t.Fatalf("Normalize(%s) error = %v; want *NormalizationError of kind OutOfRange", tt.name, err)
			}
		})
	}
}

func bigFloat(s string) *big.Float {
	f, ok := new(big.Float).SetString(s)
	if !ok {
		panic("bad float literal " + s)
	}
	return f
}

func TestCanonicalNumberString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{in: -12, want: "-12"},
		{in: "0.050", want: "0.050"},
		{in: math.Inf(1), want: "+Inf"},
		{in: "-0", want: "0"},
	}
	for _, tt := range tests {
		n, err := Normalize(tt.in)
		if err != nil {
			t.Fatalf("Normalize(%v): %v", tt.in, err)
		}
		if got := n.String(); got != tt.want {
			t.Errorf("Normalize(%v).String() = %q; want %q", tt.in, got, tt.want)
		}
	}
}
