package num2text

import (
	"sort"

	"go.uber.org/zap"
)

// Config captures registry setup.
type Config struct {
	DefaultLocale string
	Locales       []string
	Loader        Loader
	Store         Store
	Resolver      FallbackResolver
	Hooks         []ConversionHook
	Logger        *zap.Logger

	fallbackText     *string
	lexiconFiles     []string
	lexiconOverrides map[string][]string
	packs            map[string]LanguagePack

	cultureDataPath  string
	cultureOverrides map[string]string
	cultureService   CultureService
	cultureData      *CultureData
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = uniqueLocales(cfg.Locales)
	cfg.DefaultLocale = canonicalLocale(cfg.DefaultLocale)

	if cfg.Store == nil {
		store, err := NewStaticStoreFromLoader(cfg.lexiconLoader())
		if err != nil {
			return nil, err
		}
		cfg.Store = store
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.DefaultLocale == "" {
		if len(cfg.Locales) > 0 {
			cfg.DefaultLocale = cfg.Locales[0]
		} else {
			cfg.DefaultLocale = "en"
		}
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when Bind gets an empty code.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales restricts the locales bound by the registry.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithLoader adds a lexicon loader applied over the built-in lexicons.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithStore replaces the lexicon store entirely.
func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithFallbackText sets the text Convert returns for rejected input.
func WithFallbackText(text string) Option {
	return func(c *Config) error {
		c.fallbackText = &text
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithHooks(hooks ...ConversionHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// WithLexiconFiles merges lexicon files (YAML, JSON or TOML) over the
// built-in lexicons. Each file names its locale in its code field.
func WithLexiconFiles(paths ...string) Option {
	return func(c *Config) error {
		c.lexiconFiles = append(c.lexiconFiles, paths...)
		return nil
	}
}

// WithLexiconOverride merges lexicon files over one locale.
func WithLexiconOverride(locale string, paths ...string) Option {
	return func(c *Config) error {
		if locale == "" || len(paths) == 0 {
			return nil
		}
		if c.lexiconOverrides == nil {
			c.lexiconOverrides = make(map[string][]string)
		}
		locale = canonicalLocale(locale)
		c.lexiconOverrides[locale] = append(c.lexiconOverrides[locale], paths...)
		return nil
	}
}

// WithLanguagePack registers or replaces the pack building a locale.
func WithLanguagePack(locale string, pack LanguagePack) Option {
	return func(c *Config) error {
		if locale == "" || pack == nil {
			return nil
		}
		if c.packs == nil {
			c.packs = make(map[string]LanguagePack)
		}
		c.packs[canonicalLocale(locale)] = pack
		return nil
	}
}

// WithCultureData configures culture data loading
func WithCultureData(path string) Option {
	return func(c *Config) error {
		c.cultureDataPath = path
		c.cultureService = nil
		c.cultureData = nil
		return nil
	}
}

// WithCultureOverride adds locale-specific culture data override
func WithCultureOverride(locale, path string) Option {
	return func(c *Config) error {
		if c.cultureOverrides == nil {
			c.cultureOverrides = make(map[string]string)
		}
		c.cultureOverrides[locale] = path
		c.cultureService = nil
		c.cultureData = nil
		return nil
	}
}

func (cfg *Config) lexiconLoader() Loader {
	loaders := MultiLoader{EmbeddedLoader{}}
	if cfg.Loader != nil {
		loaders = append(loaders, cfg.Loader)
	}
	if len(cfg.lexiconFiles) > 0 {
		loaders = append(loaders, NewFileLoader(cfg.lexiconFiles...))
	}

	locales := make([]string, 0, len(cfg.lexiconOverrides))
	for locale := range cfg.lexiconOverrides {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	for _, locale := range locales {
		loaders = append(loaders, NewFileLoader(cfg.lexiconOverrides[locale]...).ForLocale(locale))
	}
	return loaders
}

// CultureService returns the culture service, loading culture data on first
// use.
func (cfg *Config) CultureService() (CultureService, error) {
	if cfg == nil {
		return NewCultureService(nil, nil), nil
	}
	if cfg.cultureService != nil {
		return cfg.cultureService, nil
	}

	data, err := cfg.loadCultureData()
	if err != nil {
		return nil, err
	}
	cfg.cultureService = NewCultureService(data, cfg.Resolver)
	return cfg.cultureService, nil
}

func (cfg *Config) loadCultureData() (*CultureData, error) {
	if cfg.cultureData != nil {
		return cfg.cultureData, nil
	}

	loader := NewCultureDataLoader(cfg.cultureDataPath)
	for locale, path := range cfg.cultureOverrides {
		loader.AddOverride(locale, path)
	}
	data, err := loader.Load()
	if err != nil {
		return nil, err
	}
	cfg.cultureData = data
	return data, nil
}

// languagePacks merges built-in and configured packs.
func (cfg *Config) languagePacks() map[string]LanguagePack {
	packs := make(map[string]LanguagePack, len(builtinPacks)+len(cfg.packs))
	for code, pack := range builtinPacks {
		packs[code] = pack
	}
	for code, pack := range cfg.packs {
		packs[code] = pack
	}
	return packs
}
