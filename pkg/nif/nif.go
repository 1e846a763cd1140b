package nif

// Length is the number of characters in both NIF and NIE.
const Length = 9

// ValidateNIF checks an NIF: 8 ASCII digits followed by a check letter.
// The check letter is compared case-insensitively within ASCII; any other
// rune is reported as given. Only ASCII digits are accepted in the body.
func ValidateNIF(s string) error {
	r := []rune(s)
	if len(r) != Length {
		return &Error{Kind: KindBadLength, Length: len(r)}
	}

	actual := r[Length-1]
	if actual >= 'a' && actual <= 'z' {
		actual -= 'a' - 'A'
	}

	var n uint32
	for i, c := range r[:Length-1] {
		if c < '0' || c > '9' {
			return &Error{Kind: KindExpectedNumeric, Char: c, Position: i + 1}
		}
		n = n*10 + uint32(c-'0')
	}

	if expected := CheckDigit(n); expected != actual {
		return &Error{Kind: KindInvalidCheckNumber, Expected: expected, Actual: actual}
	}
	return nil
}
