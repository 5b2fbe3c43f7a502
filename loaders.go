package num2text

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed data/lexicons/*.yaml
var builtinLexicons embed.FS

// Loader retrieves the lexicons used to seed a LexiconStore.
type Loader interface {
	Load() (Lexicons, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func() (Lexicons, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Lexicons, error) {
	return fn()
}

// EmbeddedLoader loads the lexicons shipped with the package.
type EmbeddedLoader struct{}

// Load implements Loader.
func (EmbeddedLoader) Load() (Lexicons, error) {
	entries, err := fs.ReadDir(builtinLexicons, "data/lexicons")
	if err != nil {
		return nil, fmt.Errorf("num2text: read embedded lexicons: %w", err)
	}

	out := make(Lexicons, len(entries))
	for _, entry := range entries {
		name := path.Join("data/lexicons", entry.Name())
		data, err := builtinLexicons.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("num2text: read %s: %w", name, err)
		}
		lex, err := decodeLexiconFile(name, data)
		if err != nil {
			return nil, fmt.Errorf("num2text: decode %s: %w", name, err)
		}
		mergeInto(out, lex)
	}
	return out, nil
}

// FileLoader reads lexicon files from disk. The format is picked by
// extension: .yaml/.yml, .json or .toml. Files for the same locale are
// merged in order.
type FileLoader struct {
	paths  []string
	locale string
}

// NewFileLoader returns a loader over paths.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// ForLocale makes files without a code apply to locale.
func (l *FileLoader) ForLocale(locale string) *FileLoader {
	if l == nil {
		return l
	}
	l.locale = cleanLocale(locale)
	return l
}

// Load implements Loader.
func (l *FileLoader) Load() (Lexicons, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("num2text: no lexicon paths configured")
	}

	out := make(Lexicons, len(l.paths))
	for _, p := range l.paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("num2text: read %s: %w", p, err)
		}

		lex, err := decodeLexiconFile(p, data)
		if err != nil {
			return nil, fmt.Errorf("num2text: decode %s: %w", p, err)
		}
		if l.locale != "" {
			if lex.Code != "" && lex.Code != l.locale {
				return nil, fmt.Errorf("num2text: %s declares locale %q, expected %q", p, lex.Code, l.locale)
			}
			lex.Code = l.locale
		}
		if lex.Code == "" {
			return nil, fmt.Errorf("num2text: %s: lexicon has no code", p)
		}
		mergeInto(out, lex)
	}
	return out, nil
}

// MultiLoader merges the output of several loaders; later loaders win.
type MultiLoader []Loader

// Load implements Loader.
func (m MultiLoader) Load() (Lexicons, error) {
	out := make(Lexicons)
	for _, loader := range m {
		if loader == nil {
			continue
		}
		lexicons, err := loader.Load()
		if err != nil {
			return nil, err
		}
		codes := make([]string, 0, len(lexicons))
		for code := range lexicons {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			mergeInto(out, lexicons[code])
		}
	}
	return out, nil
}

func mergeInto(dst Lexicons, lex *Lexicon) {
	if lex == nil {
		return
	}
	if existing, ok := dst[lex.Code]; ok {
		existing.merge(lex)
		return
	}
	dst[lex.Code] = lex.Clone()
}

func decodeLexiconFile(name string, data []byte) (*Lexicon, error) {
	var lex Lexicon

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&lex); err != nil {
			return nil, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&lex); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &lex)
		if err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if err := lex.normalize(); err != nil {
		return nil, err
	}
	return &lex, nil
}

func parsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}
