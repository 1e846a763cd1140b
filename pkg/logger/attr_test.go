package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/esid/pkg/logger"
	"github.com/dmitrymomot/esid/pkg/nif"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	t.Parallel()

	attr := logger.Component("checker")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "checker", attr.Value.String())
}

func TestDocument(t *testing.T) {
	t.Parallel()

	attr := logger.Document("24591177Z")
	assert.Equal(t, "document", attr.Key)
	assert.Equal(t, "*****177Z", attr.Value.String())

	assert.Equal(t, "***INVALID***", logger.Document("53493710G").Value.String())
}

func TestDocumentType(t *testing.T) {
	t.Parallel()

	attr := logger.DocumentType(nif.TypeNIE)
	assert.Equal(t, "document_type", attr.Key)
	assert.Equal(t, "nie", attr.Value.String())
}

func TestFailureKind(t *testing.T) {
	t.Parallel()

	attr := logger.FailureKind(nif.ValidateNIE("A9675401Z"))
	assert.Equal(t, "failure_kind", attr.Key)
	assert.Equal(t, "bad_prefix", attr.Value.String())

	assert.True(t, logger.FailureKind(errors.New("x")).Equal(slog.Attr{}))
	assert.True(t, logger.FailureKind(nil).Equal(slog.Attr{}))
}
