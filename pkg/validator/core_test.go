package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/esid/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "document",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: document: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "nif", Message: "length must be 9, got 3"})
		errs.Add(validator.ValidationError{Field: "nie", Message: "first character must be X/Y/Z, got A"})

		assert.Equal(t,
			"validation failed: nif: length must be 9, got 3; nie: first character must be X/Y/Z, got A",
			errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "nif", Message: "a", TranslationKey: "k1"},
		{Field: "nie", Message: "b", TranslationKey: "k2"},
		{Field: "nif", Message: "c", TranslationKey: "k3"},
	}

	assert.True(t, errs.Has("nif"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"a", "c"}, errs.Get("nif"))
	assert.Nil(t, errs.Get("email"))
	assert.Len(t, errs.GetErrors("nif"), 2)
	assert.Equal(t, []string{"nif", "nie"}, errs.Fields())
	assert.False(t, errs.IsEmpty())

	first, ok := errs.First()
	require.True(t, ok)
	assert.Equal(t, "k1", first.TranslationKey)

	_, ok = validator.ValidationErrors{}.First()
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "failed"},
		}
	}

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "a", verrs[0].Field)
		assert.Equal(t, "b", verrs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	err := validator.Apply(validator.Required("document", ""))
	wrapped := fmt.Errorf("signup: %w", err)

	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "document", verrs[0].Field)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestValidationErrors_Unwrap(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Required("document", "  "))
	assert.ErrorIs(t, err, validator.ErrFieldRequired)

	var single validator.ValidationError
	require.ErrorAs(t, err, &single)
	assert.Equal(t, "document", single.Field)
}
