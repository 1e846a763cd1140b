// Package validator provides declarative validation rules for Spanish identity
// documents on top of a small, composable rule engine.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error, keeps every failure's field, message, translation key and
// values, and unwraps to the underlying causes so errors.Is works against the
// sentinels of package nif.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("document", doc),
//	    validator.ValidSpanishID("document", doc),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.TranslationKey, e.TranslationValues
//	    }
//	}
//
//	if errors.Is(err, nif.ErrInvalidCheckNumber) {
//	    // wrong check letter
//	}
//
// # Translation keys
//
//	validation.required
//	validation.nif.bad_length            length, expected_length
//	validation.nif.bad_prefix            char
//	validation.nif.expected_numeric      char, position
//	validation.nif.invalid_check_number  expected, actual
//	validation.nif.invalid               (non-structured failures)
//
// Every document rule also sets "field", "type" and, for structured failures,
// "kind" in TranslationValues.
//
// The package keeps no state and is safe for concurrent use.
package validator
