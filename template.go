package num2text

// HelperConfig configures template helper exports
type HelperConfig struct {
	LocaleKey string
	// OnError renders a failed conversion. The default returns "".
	OnError func(locale string, value any, err error) string
}

// TemplateHelpers exposes spelling helpers for html/template and
// text/template. Each helper takes the template data (or a locale string)
// first and reads the locale from cfg.LocaleKey.
func TemplateHelpers(s Speller, cfg HelperConfig) map[string]any {
	spell := func(data, value any, opts Options) string {
		locale := extractLocale(data, cfg.LocaleKey)
		if s == nil {
			return ""
		}
		out, err := s.Spell(locale, value, opts)
		if err != nil {
			if cfg.OnError != nil {
				return cfg.OnError(locale, value, err)
			}
			return ""
		}
		return out
	}

	return map[string]any{
		"spell": func(data, value any) string {
			return spell(data, value, Options{})
		},
		"spell_currency": func(data, value any, code string) string {
			return spell(data, value, Options{Mode: ModeCurrency, CurrencyCode: code})
		},
		"spell_year": func(data, value any) string {
			return spell(data, value, Options{Mode: ModeYear})
		},
		"spell_ordinal": func(data, value any) string {
			return spell(data, value, Options{Mode: ModeOrdinal})
		},
		"current_locale": func(data any) string {
			return extractLocale(data, cfg.LocaleKey)
		},
	}
}
