package nif

// niePrefixDigit maps an NIE prefix to the digit it stands for (INT/2058/2008).
func niePrefixDigit(c rune) (rune, bool) {
	switch c {
	case 'X', 'x':
		return '0', true
	case 'Y', 'y':
		return '1', true
	case 'Z', 'z':
		return '2', true
	default:
		return 0, false
	}
}

// ValidateNIE checks an NIE: a prefix X, Y or Z (any case), 7 ASCII digits and
// a check letter. The prefix is replaced by its digit and the result is
// validated as an NIF, so body and check letter failures are reported exactly
// as ValidateNIF reports them. Positions keep referring to the original input.
func ValidateNIE(s string) error {
	r := []rune(s)
	if len(r) != Length {
		return &Error{Kind: KindBadLength, Length: len(r)}
	}

	d, ok := niePrefixDigit(r[0])
	if !ok {
		return &Error{Kind: KindBadPrefix, Char: r[0]}
	}
	r[0] = d

	return ValidateNIF(string(r))
}
