// Package i18n renders validation failures in the user's language.
//
// Translations live in YAML catalogs keyed by language code at the top level,
// with nested maps flattened into dot-separated keys:
//
//	es:
//	  validation:
//	    nif:
//	      bad_prefix: "el primer carácter debe ser X/Y/Z, se recibió %{char}"
//
// Templates use named placeholders (%{name}) filled from the values of a
// validator.ValidationError. English and Spanish catalogs are embedded and
// loaded by New; LoadFS reads catalogs from any fs.FS.
//
// Language negotiation relies on golang.org/x/text/language, so regional
// variants ("es-MX", "en-GB") resolve to the closest supported catalog.
//
// # Usage
//
//	tr, err := i18n.New(ctx)
//	if err != nil {
//		return err
//	}
//	lang := tr.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
//	for _, e := range validator.ExtractValidationErrors(err) {
//		fmt.Println(tr.Localize(lang, e))
//	}
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
