package logger

import (
	"log/slog"

	"github.com/dmitrymomot/esid/pkg/nif"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// DocumentType records the identifier type under the key "document_type".
func DocumentType(t nif.Type) slog.Attr {
	return slog.String("document_type", t.String())
}

// Document records the masked identifier under the key "document".
func Document(value string) slog.Attr {
	return slog.String("document", nif.Mask(value))
}

// FailureKind records the kind of a validation failure under "failure_kind".
// Errors that are not *nif.Error yield an empty Attr.
func FailureKind(err error) slog.Attr {
	nerr, ok := nif.AsError(err)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("failure_kind", nerr.Kind.String())
}
