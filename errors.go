package num2text

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumeric indicates the input is not a number.
	ErrNotNumeric = errors.New("num2text: value is not numeric")
	// ErrNotInteger indicates a mode that needs a whole number got a fraction.
	ErrNotInteger = errors.New("num2text: value is not an integer")
	// ErrOutOfRange indicates a number with more digits than MaxDigits.
	ErrOutOfRange = errors.New("num2text: value has too many digits")
	// ErrUnsupportedMagnitude indicates a magnitude with no scale word.
	ErrUnsupportedMagnitude = errors.New("num2text: unsupported magnitude")
	// ErrLookupMiss indicates a defect in locale tables.
	ErrLookupMiss = errors.New("num2text: locale table lookup miss")
	// ErrUnknownLocale indicates no locale is bound for a code or its fallbacks.
	ErrUnknownLocale = errors.New("num2text: unknown locale")
	// ErrUnsupportedMode indicates the locale cannot render the requested mode.
	ErrUnsupportedMode = errors.New("num2text: mode not supported by locale")
)

// NormalizationKind classifies a rejected input.
type NormalizationKind int

const (
	NotNumeric NormalizationKind = iota
	NotInteger
	OutOfRange
)

func (k NormalizationKind) String() string {
	switch k {
	case NotInteger:
		return "not-integer"
	case OutOfRange:
		return "out-of-range"
	default:
		return "not-numeric"
	}
}

// NormalizationError reports an input the normalizer could not accept.
type NormalizationError struct {
	Kind  NormalizationKind
	Value any
	Err   error
}

func (e *NormalizationError) Error() string {
	msg := fmt.Sprintf("num2text: cannot normalize %T (%s)", e.Value, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NormalizationError) Unwrap() []error {
	sentinel := ErrNotNumeric
	switch e.Kind {
	case NotInteger:
		sentinel = ErrNotInteger
	case OutOfRange:
		sentinel = ErrOutOfRange
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

func notNumeric(value any, err error) error {
	return &NormalizationError{Kind: NotNumeric, Value: value, Err: err}
}

func notInteger(value any) error {
	return &NormalizationError{Kind: NotInteger, Value: value}
}

func outOfRange(value any, err error) error {
	return &NormalizationError{Kind: OutOfRange, Value: value, Err: err}
}

// LookupError reports a missing entry in a locale table.
type LookupError struct {
	Locale string
	Table  string
	Key    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("num2text: %s: no %s entry for %q", e.Locale, e.Table, e.Key)
}

func (e *LookupError) Unwrap() error {
	return ErrLookupMiss
}

func lookupMiss(locale, table, key string) error {
	return &LookupError{Locale: locale, Table: table, Key: key}
}
