package num2text

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var builtinPacks = map[string]LanguagePack{
	"ar":    newArabic,
	"az":    newAzerbaijani,
	"de":    newGerman,
	"en":    newEnglish,
	"en-IN": newIndianEnglish,
	"es":    newSpanish,
	"ja":    newJapanese,
	"ru":    newRussian,
}

// Registry holds the converters of every bound locale. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	converters    map[string]*Converter
	codes         []string
	defaultLocale string
	resolver      FallbackResolver
	culture       CultureService
	fallbackText  *string
	catalog       *LocaleCatalog
	logger        *zap.Logger
}

var _ Speller = (*Registry)(nil)

// NewRegistry builds and validates a registry.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildRegistry()
}

// BuildRegistry binds every configured locale. Locale tables are validated
// here; a defective table fails the build.
func (cfg *Config) BuildRegistry() (*Registry, error) {
	culture, err := cfg.CultureService()
	if err != nil {
		return nil, err
	}

	packs := cfg.languagePacks()
	codes := cfg.Locales
	if len(codes) == 0 {
		codes = make([]string, 0, len(packs))
		for code := range packs {
			codes = append(codes, code)
		}
		sort.Strings(codes)
	}

	hooks := filterHooks(cfg.Hooks)
	converters := make(map[string]*Converter, len(codes))
	for _, code := range codes {
		pack, ok := packs[code]
		if !ok {
			return nil, fmt.Errorf("%w: no language pack for %q", ErrUnknownLocale, code)
		}

		lex, err := cfg.Store.Resolve(code)
		if err != nil {
			return nil, err
		}
		loc, err := pack(lex)
		if err != nil {
			return nil, fmt.Errorf("num2text: build %s: %w", code, err)
		}
		if err := validateLocale(loc, culture); err != nil {
			return nil, err
		}

		converters[code] = newConverter(loc, culture, cfg.fallbackText, hooks, cfg.Logger)
		cfg.Logger.Debug("num2text: locale bound",
			zap.String("locale", code),
			zap.Int("group_size", loc.Magnitude.GroupSize),
			zap.Int("levels", loc.Magnitude.Levels()))
	}

	if _, ok := converters[cfg.DefaultLocale]; !ok {
		return nil, fmt.Errorf("%w: default locale %q is not bound", ErrUnknownLocale, cfg.DefaultLocale)
	}

	r := &Registry{
		converters:    converters,
		codes:         codes,
		defaultLocale: cfg.DefaultLocale,
		resolver:      cfg.Resolver,
		culture:       culture,
		fallbackText:  cfg.fallbackText,
		logger:        cfg.Logger,
	}
	r.catalog = newLocaleCatalog(r)
	return r, nil
}

// Bind returns the converter for code, following explicit fallbacks and
// then parent locales (en-US binds en). An empty code binds the default
// locale.
func (r *Registry) Bind(code string) (*Converter, error) {
	code = canonicalLocale(code)
	if code == "" {
		code = r.defaultLocale
	}
	for _, candidate := range r.candidates(code) {
		if conv, ok := r.converters[candidate]; ok {
			return conv, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
}

func (r *Registry) candidates(code string) []string {
	seen := make(map[string]struct{}, 4)
	var out []string
	add := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	add(code)
	if r.resolver != nil {
		for _, fallback := range r.resolver.Resolve(code) {
			add(fallback)
		}
	}
	for _, parent := range parentLocales(code) {
		add(parent)
	}
	return out
}

// Spell implements Speller.
func (r *Registry) Spell(locale string, value any, opts Options) (string, error) {
	conv, err := r.Bind(locale)
	if err != nil {
		return "", err
	}
	return conv.Render(value, opts)
}

// Convert is Spell with the fallback policy of Converter.Convert. Unknown
// locales yield the fallback text, or "" when none is configured.
func (r *Registry) Convert(locale string, value any, opts Options) string {
	conv, err := r.Bind(locale)
	if err != nil {
		r.logger.Debug("num2text: unknown locale", zap.String("locale", locale), zap.Error(err))
		if r.fallbackText != nil {
			return *r.fallbackText
		}
		return ""
	}
	return conv.Convert(value, opts)
}

// Locales returns the bound locale codes, sorted.
func (r *Registry) Locales() []string {
	out := append([]string(nil), r.codes...)
	sort.Strings(out)
	return out
}

// DefaultLocale returns the locale bound for an empty code.
func (r *Registry) DefaultLocale() string {
	return r.defaultLocale
}

// Culture returns the culture service used for currency defaults.
func (r *Registry) Culture() CultureService {
	return r.culture
}

// Catalog returns the metadata snapshot of the bound locales.
func (r *Registry) Catalog() *LocaleCatalog {
	return r.catalog
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a registry over the built-in locales. It panics if the
// built-in tables fail validation.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(fmt.Sprintf("num2text: built-in locales: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Spell renders value with the default registry.
func Spell(locale string, value any, opts Options) (string, error) {
	return Default().Spell(locale, value, opts)
}
