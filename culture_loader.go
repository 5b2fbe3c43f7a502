package num2text

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/culture.json
var defaultCultureJSON []byte

// CultureDataLoader loads culture data from various sources
type CultureDataLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewCultureDataLoader creates a loader
func NewCultureDataLoader(defaultPath string) *CultureDataLoader {
	return &CultureDataLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// Load reads the embedded defaults, then the configured file, then the
// per-locale overrides.
func (l *CultureDataLoader) Load() (*CultureData, error) {
	var cultureData CultureData
	if err := json.Unmarshal(defaultCultureJSON, &cultureData); err != nil {
		return nil, fmt.Errorf("parse default culture data: %w", err)
	}

	if l.defaultPath != "" {
		userData, err := readCultureFile(l.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("load culture data: %w", err)
		}
		mergeCultureData(&cultureData, userData)
	}

	for locale, path := range l.overrides {
		override, err := readCultureFile(path)
		if err != nil {
			return nil, fmt.Errorf("load culture override for %q: %w", locale, err)
		}
		// An override file may give the bare code for its own locale.
		if code, ok := override.CurrencyCodes[""]; ok {
			delete(override.CurrencyCodes, "")
			override.CurrencyCodes[cleanLocale(locale)] = code
		}
		mergeCultureData(&cultureData, override)
	}

	return &cultureData, nil
}

// AddOverride adds a locale-specific override file
func (l *CultureDataLoader) AddOverride(locale, path string) {
	l.overrides[locale] = path
}

func readCultureFile(path string) (*CultureData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out CultureData
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &out, nil
}

// mergeCultureData merges source into dest (source takes precedence)
func mergeCultureData(dest, source *CultureData) {
	if source.CurrencyCodes != nil {
		if dest.CurrencyCodes == nil {
			dest.CurrencyCodes = make(map[string]string)
		}
		for k, v := range source.CurrencyCodes {
			dest.CurrencyCodes[cleanLocale(k)] = v
		}
	}

	if source.Currencies != nil {
		if dest.Currencies == nil {
			dest.Currencies = make(map[string]CurrencyMeta)
		}
		for k, v := range source.Currencies {
			dest.Currencies[k] = v
		}
	}
}
