package num2text

import (
	"reflect"
)

// CultureHelpers returns template helper functions for culture data
func CultureHelpers(service CultureService, localeKey string) map[string]any {
	return map[string]any{
		"currency_code": func(data any) (string, error) {
			locale := extractLocale(data, localeKey)
			return service.GetCurrencyCode(locale)
		},

		"currency_symbol": func(data any, code string) (string, error) {
			locale := extractLocale(data, localeKey)
			if code == "" {
				var err error
				if code, err = service.GetCurrencyCode(locale); err != nil {
					return "", err
				}
			}
			info, err := service.GetCurrency(locale, code)
			if err != nil {
				return "", err
			}
			return info.Symbol, nil
		},
	}
}

// extractLocale extracts the locale from template data using the configured key.
// It handles strings, maps and struct types. Unknown shapes yield "", which
// binds the registry default.
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
