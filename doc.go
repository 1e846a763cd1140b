// Package esid validates Spanish identity documents: the NIF (Número de
// Identificación Fiscal) and the NIE (Número de Identidad de Extranjero).
//
// The validation core lives in pkg/nif and has no dependencies beyond the
// standard library and golang.org/x/text. This package wires it together with
// the supporting packages:
//
//   - pkg/validator – declarative rules with translation keys
//   - pkg/i18n      – English and Spanish failure messages
//   - pkg/config    – environment based configuration
//   - pkg/logger    – slog factory and masked document attributes
//
// # Usage
//
//	checker, err := esid.NewFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//
//	if err := checker.Check(ctx, nif.TypeAuto, input); err != nil {
//		lang := checker.Translator().MatchAcceptLanguage(r.Header.Get("Accept-Language"))
//		return errors.New(checker.Message(lang, err))
//	}
//
// With rules:
//
//	err := validator.Apply(
//		validator.Required("document", input),
//		checker.Rule("document", input, nif.TypeAuto),
//	)
//
// # Configuration
//
//	ESID_NORMALIZE_INPUT   normalize before validating (default false)
//	ESID_DEFAULT_LANGUAGE  fallback message language (default en)
//	ESID_LOG_LEVEL         debug, info, warn, error (default info)
//	ESID_LOG_FORMAT        json or text (default json)
//	ESID_ENV               development, staging, production (default development)
package esid
