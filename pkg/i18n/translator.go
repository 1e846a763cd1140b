package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/esid/pkg/validator"
)

// DefaultLanguage is used when no preference matches a catalog.
const DefaultLanguage = "en"

// Translator looks up templates in a Catalog and fills their placeholders.
type Translator struct {
	catalog        Catalog
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no
// translation for a key or no preference matches.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key itself when nothing is found.
// Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. A discard logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs lookups that found nothing at WARN level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

// New builds a Translator over the embedded catalogs.
func New(ctx context.Context, opts ...Option) (*Translator, error) {
	catalog, err := DefaultCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return NewTranslator(catalog, opts...)
}

// NewTranslator builds a Translator over catalog. Every language code in the
// catalog, and the default language, must be a valid BCP 47 tag.
func NewTranslator(catalog Catalog, opts ...Option) (*Translator, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	t := &Translator{
		catalog:       catalog,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if _, err := language.Parse(t.defaultLang); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, t.defaultLang)
	}

	// The default language goes first so the matcher falls back to it.
	langs := []string{t.defaultLang}
	for lang := range catalog {
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs[1:])

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		tags = append(tags, tag)
	}

	t.langs = langs
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// SupportedLanguages lists the catalog languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang has its own template for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.catalog[lang][key]
	return ok
}

// Match returns the supported language closest to the given preferences,
// in order of preference. Unparsable entries are skipped.
func (t *Translator) Match(prefs ...string) string {
	tags := make([]language.Tag, 0, len(prefs))
	for _, p := range prefs {
		if tag, err := language.Parse(p); err == nil {
			tags = append(tags, tag)
		}
	}
	return t.match(tags)
}

// MatchAcceptLanguage resolves an HTTP Accept-Language header value.
func (t *Translator) MatchAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return t.defaultLang
	}
	return t.match(tags)
}

func (t *Translator) match(tags []language.Tag) string {
	if len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T renders key in lang, falling back to the default language. If neither has
// the key, it returns the key when fallback to key is enabled, or "".
//
//	tr.T("es", "validation.nif.bad_length", map[string]any{"expected_length": 9, "length": 5})
//	// "la longitud debe ser 9, se recibió 5"
func (t *Translator) T(lang, key string, values map[string]any) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.fallbackToKey {
			return key
		}
		return ""
	}
	return render(tmpl, values)
}

// Localize renders a validation failure in lang. When no template exists for
// its key the error's own message is returned.
func (t *Translator) Localize(lang string, e validator.ValidationError) string {
	if e.TranslationKey == "" {
		return e.Message
	}
	tmpl, ok := t.lookup(lang, e.TranslationKey)
	if !ok {
		return e.Message
	}
	return render(tmpl, e.TranslationValues)
}

// LocalizeAll renders every failure in lang, in order.
func (t *Translator) LocalizeAll(lang string, errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, t.Localize(lang, e))
	}
	return out
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if tmpl, ok := t.catalog[lang][key]; ok {
		return tmpl, true
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.catalog[t.defaultLang][key]; ok {
			return tmpl, true
		}
	}
	if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render replaces %{name} with values[name]; unknown placeholders stay as they are.
func render(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
