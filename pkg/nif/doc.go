// Package nif validates Spanish national identity numbers (NIF) and foreigner
// identity numbers (NIE).
//
// Both identifiers end with a check letter derived from the numeric body by a
// modulo-23 lookup into a fixed table. An NIF is 8 ASCII digits followed by the
// letter; an NIE replaces the first digit with one of the prefixes X, Y or Z,
// which map to 0, 1 and 2 under the INT/2058/2008 regulation. Older NIE
// mappings are not supported.
//
// # Usage
//
//	if err := nif.ValidateNIF("24591177Z"); err != nil {
//		var nerr *nif.Error
//		if errors.As(err, &nerr) {
//			// nerr.Kind, nerr.Position, nerr.Expected ...
//		}
//	}
//
//	err := nif.ValidateNIE("X9675401Z")
//
// # Error Handling
//
// Every failure is returned as *Error carrying a Kind and the data needed to
// render a message in any language. Each Kind has a matching sentinel
// (ErrBadLength, ErrBadPrefix, ErrExpectedNumeric, ErrInvalidCheckNumber) so
// callers can use errors.Is without inspecting fields. Validation stops at the
// first violated rule.
//
// # Helpers
//
// Normalize, Mask, Equal, Detect and Generate cover the usual chores around
// identifiers: cleaning user input, hiding identifiers in logs, deduplication
// and building fixtures. Validation functions never normalize their input.
//
// All functions are pure and safe for concurrent use.
package nif
