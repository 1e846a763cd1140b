package nif

// checkLetters is indexed by the body value modulo 23.
const checkLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// CheckDigit returns the check letter for the numeric body n.
func CheckDigit(n uint32) rune {
	return rune(checkLetters[n%uint32(len(checkLetters))])
}
