// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers that keep key names consistent.
//
// Identity documents are personal data: Document always logs the masked form
// produced by nif.Mask, never the raw value.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "signup"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("document rejected",
//		logger.DocumentType(nif.TypeNIE),
//		logger.Document(value),
//		logger.Error(err),
//	)
//
// Discard returns a logger that drops everything; libraries use it as their
// default so they stay silent unless a logger is injected.
package logger
