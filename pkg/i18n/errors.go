package i18n

import "errors"

var (
	ErrEmptyCatalog         = errors.New("catalog has no translations")
	ErrInvalidLanguage      = errors.New("invalid language code")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToReadCatalog  = errors.New("failed to read translation catalog")
)
