package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yaml
var embedded embed.FS

// Catalog maps a language code to its flattened translations.
type Catalog map[string]map[string]string

// Merge copies every translation of other into c, overriding existing keys.
func (c Catalog) Merge(other Catalog) {
	for lang, entries := range other {
		if c[lang] == nil {
			c[lang] = make(map[string]string, len(entries))
		}
		maps.Copy(c[lang], entries)
	}
}

// ParseYAML parses a YAML document whose top-level keys are language codes.
func ParseYAML(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	catalog := make(Catalog, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParseYAML, lang, val)
		}
		flat := make(map[string]string)
		flatten("", entries, flat)
		catalog[lang] = flat
	}

	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return catalog, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// LoadFS reads every .yaml and .yml file in dir of fsys into one catalog.
// Later files override earlier ones (lexical order) for duplicate keys.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) (Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	catalog := make(Catalog)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadCatalog, err)
		}
		parsed, err := ParseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		catalog.Merge(parsed)
	}

	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return catalog, nil
}

// DefaultCatalog returns the embedded English and Spanish translations.
func DefaultCatalog(ctx context.Context) (Catalog, error) {
	return LoadFS(ctx, embedded, "translations")
}
