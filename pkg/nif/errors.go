package nif

import (
	"errors"
	"fmt"
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrBadLength          = errors.New("bad identifier length")
	ErrBadPrefix          = errors.New("bad NIE prefix")
	ErrExpectedNumeric    = errors.New("non-numeric character in identifier body")
	ErrInvalidCheckNumber = errors.New("check digit mismatch")
	ErrOutOfRange         = errors.New("identifier body out of range")
	ErrUnknownType        = errors.New("unknown identifier type")
)

// Kind discriminates validation failures.
type Kind uint8

const (
	KindBadLength Kind = iota + 1
	KindBadPrefix
	KindExpectedNumeric
	KindInvalidCheckNumber
)

// String returns a stable snake_case name, used in translation keys and logs.
func (k Kind) String() string {
	switch k {
	case KindBadLength:
		return "bad_length"
	case KindBadPrefix:
		return "bad_prefix"
	case KindExpectedNumeric:
		return "expected_numeric"
	case KindInvalidCheckNumber:
		return "invalid_check_number"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindBadLength:
		return ErrBadLength
	case KindBadPrefix:
		return ErrBadPrefix
	case KindExpectedNumeric:
		return ErrExpectedNumeric
	case KindInvalidCheckNumber:
		return ErrInvalidCheckNumber
	default:
		return nil
	}
}

// Error describes the first rule an identifier violated.
// Only the fields relevant to Kind are set:
//
//	KindBadLength          Length
//	KindBadPrefix          Char
//	KindExpectedNumeric    Char, Position (1-based)
//	KindInvalidCheckNumber Expected, Actual (uppercased)
type Error struct {
	Kind     Kind
	Length   int
	Char     rune
	Position int
	Expected rune
	Actual   rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadLength:
		return fmt.Sprintf("length must be %d, got %d", Length, e.Length)
	case KindBadPrefix:
		return fmt.Sprintf("first character must be X/Y/Z, got %c", e.Char)
	case KindExpectedNumeric:
		return fmt.Sprintf("character %c at position %d is not numeric", e.Char, e.Position)
	case KindInvalidCheckNumber:
		return fmt.Sprintf("expected check digit %c, got %c", e.Expected, e.Actual)
	default:
		return "invalid identifier"
	}
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Values returns the structured fields of e keyed by name.
// Characters are rendered as one-character strings.
func (e *Error) Values() map[string]any {
	switch e.Kind {
	case KindBadLength:
		return map[string]any{"expected_length": Length, "length": e.Length}
	case KindBadPrefix:
		return map[string]any{"char": string(e.Char)}
	case KindExpectedNumeric:
		return map[string]any{"char": string(e.Char), "position": e.Position}
	case KindInvalidCheckNumber:
		return map[string]any{"expected": string(e.Expected), "actual": string(e.Actual)}
	default:
		return map[string]any{}
	}
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var nerr *Error
	if errors.As(err, &nerr) {
		return nerr, true
	}
	return nil, false
}
