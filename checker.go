package esid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/esid/pkg/i18n"
	"github.com/dmitrymomot/esid/pkg/logger"
	"github.com/dmitrymomot/esid/pkg/nif"
	"github.com/dmitrymomot/esid/pkg/validator"
)

// ErrInvalidConfig is returned when Config holds values that cannot be used.
var ErrInvalidConfig = errors.New("invalid esid configuration")

// Checker validates identity documents according to a Config, logs the
// outcome with masked identifiers and renders failures in the caller's
// language. It is safe for concurrent use.
type Checker struct {
	cfg        Config
	logger     *slog.Logger
	translator *i18n.Translator
}

// Option configures a Checker.
type Option func(*Checker)

func WithConfig(cfg Config) Option {
	return func(c *Checker) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger. Nil is ignored; the default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTranslator replaces the embedded English/Spanish translator.
func WithTranslator(t *i18n.Translator) Option {
	return func(c *Checker) {
		if t != nil {
			c.translator = t
		}
	}
}

// New creates a Checker with DefaultConfig unless WithConfig is given.
func New(ctx context.Context, opts ...Option) (*Checker, error) {
	c := &Checker{
		cfg:    DefaultConfig(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.translator == nil {
		tr, err := i18n.New(ctx,
			i18n.WithDefaultLanguage(c.cfg.DefaultLanguage),
			i18n.WithLogger(c.logger),
		)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		c.translator = tr
	}

	c.logger = c.logger.With(logger.Component("esid"))
	return c, nil
}

// NewFromEnv loads Config from the environment, builds its logger and
// creates a Checker. Options are applied after the loaded ones.
func NewFromEnv(ctx context.Context, opts ...Option) (*Checker, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	l, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	return New(ctx, append([]Option{WithConfig(cfg), WithLogger(l)}, opts...)...)
}

// Config returns the configuration in use.
func (c *Checker) Config() Config {
	return c.cfg
}

// Translator returns the translator used by Message.
func (c *Checker) Translator() *i18n.Translator {
	return c.translator
}

func (c *Checker) prepare(value string) string {
	if c.cfg.NormalizeInput {
		return nif.Normalize(value)
	}
	return value
}

// Check validates value as type t (nif.TypeAuto detects it). Failures are
// returned as *nif.Error except for an unknown type.
func (c *Checker) Check(ctx context.Context, t nif.Type, value string) error {
	value = c.prepare(value)
	if t == nif.TypeAuto {
		t = nif.Detect(value)
	}

	err := nif.ValidateType(t, value)
	switch {
	case err == nil:
		c.logger.DebugContext(ctx, "document accepted",
			logger.DocumentType(t),
			logger.Document(value),
		)
	case errors.Is(err, nif.ErrUnknownType):
		c.logger.WarnContext(ctx, "unknown document type", logger.Error(err))
	default:
		// The failure data may contain parts of the document, so only the kind is logged.
		c.logger.DebugContext(ctx, "document rejected",
			logger.DocumentType(t),
			logger.FailureKind(err),
		)
	}
	return err
}

// CheckNIF validates an NIF.
func (c *Checker) CheckNIF(ctx context.Context, value string) error {
	return c.Check(ctx, nif.TypeNIF, value)
}

// CheckNIE validates an NIE.
func (c *Checker) CheckNIE(ctx context.Context, value string) error {
	return c.Check(ctx, nif.TypeNIE, value)
}

// Rule returns a validator rule for value honouring the normalization setting.
func (c *Checker) Rule(field, value string, t nif.Type) validator.Rule {
	return validator.ValidDocument(field, c.prepare(value), t)
}

// Message renders err in lang. It understands validator.ValidationErrors
// (first failure) and *nif.Error; any other error yields err.Error().
func (c *Checker) Message(lang string, err error) string {
	if err == nil {
		return ""
	}
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return c.translator.Localize(lang, verrs[0])
	}
	if nerr, ok := nif.AsError(err); ok {
		return c.translator.Localize(lang, validator.ValidationError{
			Message:           nerr.Error(),
			TranslationKey:    validator.KeyDocumentPrefix + nerr.Kind.String(),
			TranslationValues: nerr.Values(),
		})
	}
	return err.Error()
}

// Messages renders every failure in err in lang.
func (c *Checker) Messages(lang string, err error) []string {
	if err == nil {
		return nil
	}
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return c.translator.LocalizeAll(lang, verrs)
	}
	return []string{c.Message(lang, err)}
}
