package nif

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type is the kind of identity document.
type Type uint8

const (
	// TypeAuto picks NIE or NIF from the first character.
	TypeAuto Type = iota
	TypeNIF
	TypeNIE
)

func (t Type) String() string {
	switch t {
	case TypeAuto:
		return "auto"
	case TypeNIF:
		return "nif"
	case TypeNIE:
		return "nie"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType parses "nif", "nie" or "auto" (case-insensitive). An empty string is TypeAuto.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return TypeAuto, nil
	case "nif", "dni":
		return TypeNIF, nil
	case "nie":
		return TypeNIE, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Detect reports TypeNIE when s starts with X, Y or Z (any case) and TypeNIF otherwise.
func Detect(s string) Type {
	for _, c := range s {
		if _, ok := niePrefixDigit(c); ok {
			return TypeNIE
		}
		break
	}
	return TypeNIF
}

// Validate validates s as the type returned by Detect.
func Validate(s string) error {
	return ValidateType(TypeAuto, s)
}

// ValidateType validates s as an identifier of type t.
func ValidateType(t Type, s string) error {
	if t == TypeAuto {
		t = Detect(s)
	}
	switch t {
	case TypeNIF:
		return ValidateNIF(s)
	case TypeNIE:
		return ValidateNIE(s)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// Normalize strips whitespace, hyphens and dots and uppercases the rest.
// It does not validate.
//
//	Normalize(" 2459-1177 z ") == "24591177Z"
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '.' {
			return -1
		}
		return r
	}, s)
	// A Caser keeps state, so one per call.
	return cases.Upper(language.Spanish).String(s)
}

// Equal compares the normalized forms of a and b.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

const invalidMask = "***INVALID***"

// Mask hides the leading digits of a valid identifier so it can be shown in
// logs and UIs:
//
//	12345678Z -> *****678Z
//	X1234567L -> X****67L
//
// Invalid input yields "***INVALID***".
func Mask(s string) string {
	if Validate(s) != nil {
		return invalidMask
	}
	// Valid identifiers are pure ASCII.
	s = strings.ToUpper(s)
	if Detect(s) == TypeNIE {
		return s[:1] + "****" + s[6:]
	}
	return "*****" + s[5:]
}

const (
	maxNIFBody = 99_999_999
	maxNIEBody = 29_999_999
	nieSpan    = 10_000_000
)

// Generate builds a valid identifier from a body number.
// For TypeNIF n is the 8-digit body (0..99999999). For TypeNIE n is the value
// of the synthetic NIF body (0..29999999): the leading digit selects the
// prefix X, Y or Z and the remaining 7 digits form the body.
func Generate(t Type, n uint32) (string, error) {
	switch t {
	case TypeNIF:
		if n > maxNIFBody {
			return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		return fmt.Sprintf("%08d%c", n, CheckDigit(n)), nil
	case TypeNIE:
		if n > maxNIEBody {
			return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		prefix := "XYZ"[n/nieSpan]
		return fmt.Sprintf("%c%07d%c", prefix, n%nieSpan, CheckDigit(n)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}
