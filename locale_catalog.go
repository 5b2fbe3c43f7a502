package num2text

import "sort"

// LocaleCatalog is an immutable snapshot of the bound locales.
type LocaleCatalog struct {
	defaultLocale string
	locales       map[string]LocaleMetadata
	allCodes      []string
}

// LocaleMetadata describes one bound locale.
type LocaleMetadata struct {
	Code         string
	DisplayName  string
	Parent       string
	Currency     string
	GroupSize    int
	Scales       []string
	Capabilities Capabilities
	Fallbacks    []string
}

func newLocaleCatalog(r *Registry) *LocaleCatalog {
	locales := make(map[string]LocaleMetadata, len(r.converters))
	for code, conv := range r.converters {
		loc := conv.Locale()
		meta := LocaleMetadata{
			Code:         code,
			DisplayName:  loc.Lexicon.Name,
			Parent:       loc.Lexicon.Parent,
			GroupSize:    loc.Magnitude.GroupSize,
			Scales:       append([]string(nil), loc.Magnitude.Scales...),
			Capabilities: loc.Capabilities(),
		}
		if r.culture != nil {
			if currency, err := r.culture.GetCurrencyCode(code); err == nil {
				meta.Currency = currency
			}
		}
		if r.resolver != nil {
			meta.Fallbacks = sanitizeFallbacks(code, r.resolver.Resolve(code))
		}
		locales[code] = meta
	}

	allCodes := make([]string, 0, len(locales))
	for code := range locales {
		allCodes = append(allCodes, code)
	}
	sort.Strings(allCodes)

	return &LocaleCatalog{
		defaultLocale: r.defaultLocale,
		locales:       locales,
		allCodes:      allCodes,
	}
}

// DefaultLocale returns the configured default locale.
func (c *LocaleCatalog) DefaultLocale() string {
	if c == nil {
		return ""
	}
	return c.defaultLocale
}

// AllLocaleCodes returns every locale in the catalog, sorted alphabetically.
func (c *LocaleCatalog) AllLocaleCodes() []string {
	if c == nil || len(c.allCodes) == 0 {
		return nil
	}
	out := make([]string, len(c.allCodes))
	copy(out, c.allCodes)
	return out
}

// DisplayName returns the human-friendly name for the requested locale.
func (c *LocaleCatalog) DisplayName(locale string) string {
	meta, _ := c.Locale(locale)
	return meta.DisplayName
}

// Has reports whether the locale exists in the catalog.
func (c *LocaleCatalog) Has(locale string) bool {
	_, ok := c.Locale(locale)
	return ok
}

// Locale returns the full metadata payload for a locale.
func (c *LocaleCatalog) Locale(locale string) (LocaleMetadata, bool) {
	if c == nil {
		return LocaleMetadata{}, false
	}
	meta, ok := c.locales[canonicalLocale(locale)]
	if !ok {
		return LocaleMetadata{}, false
	}
	meta.Scales = append([]string(nil), meta.Scales...)
	meta.Fallbacks = append([]string(nil), meta.Fallbacks...)
	return meta, true
}

func sanitizeFallbacks(locale string, fallbacks []string) []string {
	if len(fallbacks) == 0 {
		return nil
	}

	seen := map[string]struct{}{
		canonicalLocale(locale): {},
	}

	result := make([]string, 0, len(fallbacks))
	for _, candidate := range fallbacks {
		normalized := canonicalLocale(candidate)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
