package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/esid/pkg/nif"
	"github.com/dmitrymomot/esid/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Required("document", "24591177Z")))

	for _, value := range []string{"", " ", "\t\n"} {
		err := validator.Apply(validator.Required("document", value))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.KeyRequired, verrs[0].TranslationKey)
		assert.Equal(t, "document", verrs[0].TranslationValues["field"])
	}
}

func TestValidNIF(t *testing.T) {
	t.Parallel()

	t.Run("valid NIFs", func(t *testing.T) {
		for _, id := range []string{"24591177Z", "24591177z", "84731432F", "65553805X"} {
			assert.NoError(t, validator.Apply(validator.ValidNIF("nif", id)), id)
		}
	})

	t.Run("invalid NIFs", func(t *testing.T) {
		testCases := []struct {
			id     string
			key    string
			values map[string]any
		}{
			{
				id:     "1234",
				key:    "validation.nif.bad_length",
				values: map[string]any{"length": 4, "expected_length": 9},
			},
			{
				id:     "6 420582W",
				key:    "validation.nif.expected_numeric",
				values: map[string]any{"char": " ", "position": 2},
			},
			{
				id:     "53493710G",
				key:    "validation.nif.invalid_check_number",
				values: map[string]any{"expected": "B", "actual": "G"},
			},
		}

		for _, tc := range testCases {
			err := validator.Apply(validator.ValidNIF("nif", tc.id))
			require.Error(t, err, tc.id)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.key, verrs[0].TranslationKey, tc.id)
			assert.Equal(t, "nif", verrs[0].Field)
			assert.Equal(t, "nif", verrs[0].TranslationValues["field"])
			assert.Equal(t, "nif", verrs[0].TranslationValues["type"])
			for k, v := range tc.values {
				assert.Equal(t, v, verrs[0].TranslationValues[k], "%s: %s", tc.id, k)
			}
		}
	})

	t.Run("message is the default rendering", func(t *testing.T) {
		err := validator.Apply(validator.ValidNIF("nif", "53493710G"))
		assert.EqualError(t, err, "validation failed: nif: expected check digit B, got G")
	})

	t.Run("sentinels are reachable", func(t *testing.T) {
		err := validator.Apply(validator.ValidNIF("nif", "53493710G"))
		assert.ErrorIs(t, err, nif.ErrInvalidCheckNumber)

		nerr, ok := nif.AsError(err)
		require.True(t, ok)
		assert.Equal(t, 'B', nerr.Expected)
	})
}

func TestValidNIE(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"X9675401Z", "Y5937943R", "Z4132550F", "x9675401Z"} {
		assert.NoError(t, validator.Apply(validator.ValidNIE("nie", id)), id)
	}

	err := validator.Apply(validator.ValidNIE("nie", "A9675401Z"))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.nif.bad_prefix", verrs[0].TranslationKey)
	assert.Equal(t, "A", verrs[0].TranslationValues["char"])
	assert.Equal(t, "nie", verrs[0].TranslationValues["type"])
	assert.Equal(t, "bad_prefix", verrs[0].TranslationValues["kind"])
	assert.ErrorIs(t, err, nif.ErrBadPrefix)
}

func TestValidSpanishID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"24591177Z", "X9675401Z", "z4132550f"} {
		assert.NoError(t, validator.Apply(validator.ValidSpanishID("document", id)), id)
	}

	err := validator.Apply(validator.ValidSpanishID("document", "Y5937943A"))
	assert.ErrorIs(t, err, nif.ErrInvalidCheckNumber)
}

func TestValidDocument_UnknownType(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.ValidDocument("document", "24591177Z", nif.Type(9)))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, validator.KeyDocumentInvalid, verrs[0].TranslationKey)
	assert.ErrorIs(t, err, nif.ErrUnknownType)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
}

func TestApply_MultipleDocuments(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("holder", "24591177Z"),
		validator.ValidNIF("holder", "24591177Z"),
		validator.ValidNIE("spouse", "X96754"),
		validator.ValidNIF("child", "6 420582W"),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.Equal(t, []string{"spouse", "child"}, verrs.Fields())
	assert.ErrorIs(t, err, nif.ErrBadLength)
	assert.ErrorIs(t, err, nif.ErrExpectedNumeric)
}
