package validator

import (
	"errors"
	"maps"
	"strings"

	"github.com/dmitrymomot/esid/pkg/nif"
)

// Translation keys used by document rules. Failures of the identifier checks
// get "validation.nif." followed by the nif.Kind name.
const (
	KeyRequired        = "validation.required"
	KeyDocumentPrefix  = "validation.nif."
	KeyDocumentInvalid = KeyDocumentPrefix + "invalid"
)

// Required validates that a string is not blank.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
			Cause: ErrFieldRequired,
		},
	}
}

// ValidNIF validates a Spanish NIF (8 digits and a check letter).
func ValidNIF(field, value string) Rule {
	return ValidDocument(field, value, nif.TypeNIF)
}

// ValidNIE validates a Spanish NIE (X/Y/Z, 7 digits and a check letter).
func ValidNIE(field, value string) Rule {
	return ValidDocument(field, value, nif.TypeNIE)
}

// ValidSpanishID accepts either an NIF or an NIE, picking the format from the
// first character.
func ValidSpanishID(field, value string) Rule {
	return ValidDocument(field, value, nif.TypeAuto)
}

// ValidDocument validates value as an identifier of type t. The value is
// checked once, when the rule is built; the error describes the first rule
// the value broke and carries the structured failure in TranslationValues.
func ValidDocument(field, value string, t nif.Type) Rule {
	err := nif.ValidateType(t, value)
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: documentError(field, t, err),
	}
}

func documentError(field string, t nif.Type, err error) ValidationError {
	values := map[string]any{
		"field": field,
		"type":  t.String(),
	}

	nerr, ok := nif.AsError(err)
	if !ok {
		msg := "must be a valid identity document"
		if err != nil {
			msg = err.Error()
		}
		return ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    KeyDocumentInvalid,
			TranslationValues: values,
			Cause:             errors.Join(ErrValidationFailed, err),
		}
	}

	maps.Copy(values, nerr.Values())
	values["kind"] = nerr.Kind.String()

	return ValidationError{
		Field:             field,
		Message:           nerr.Error(),
		TranslationKey:    KeyDocumentPrefix + nerr.Kind.String(),
		TranslationValues: values,
		Cause:             nerr,
	}
}
