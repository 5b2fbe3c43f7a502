package num2text

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CultureData contains locale-specific currency information.
type CultureData struct {
	CurrencyCodes map[string]string       `json:"currency_codes"`
	Currencies    map[string]CurrencyMeta `json:"currencies"`
}

// CurrencyMeta overrides currency metadata, or defines currencies unknown to
// ISO 4217.
type CurrencyMeta struct {
	Symbol      string `json:"symbol,omitempty"`
	MinorDigits *int   `json:"minor_digits,omitempty"`
}

// CurrencyInfo is the resolved metadata of one currency.
type CurrencyInfo struct {
	Code        string
	Symbol      string
	MinorDigits int
}

// CultureService provides access to cultural data.
type CultureService interface {
	// GetCurrencyCode returns the default currency code for a locale.
	GetCurrencyCode(locale string) (string, error)

	// GetCurrency returns metadata for a currency as seen from locale.
	GetCurrency(locale, code string) (CurrencyInfo, error)
}

// cultureService implements CultureService
type cultureService struct {
	data     *CultureData
	resolver FallbackResolver
}

// NewCultureService creates a culture service from data.
func NewCultureService(data *CultureData, resolver FallbackResolver) CultureService {
	if data == nil {
		data = &CultureData{}
	}
	return &cultureService{
		data:     data,
		resolver: resolver,
	}
}

// GetCurrencyCode returns the currency code for a locale.
func (s *cultureService) GetCurrencyCode(locale string) (string, error) {
	candidates := s.resolveCandidates(locale)

	for _, candidate := range candidates {
		if code, ok := s.data.CurrencyCodes[candidate]; ok {
			return code, nil
		}
	}

	return "", fmt.Errorf("no currency code for locale %q", locale)
}

// GetCurrency combines ISO 4217 data with configured overrides.
func (s *cultureService) GetCurrency(locale, code string) (CurrencyInfo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	info := CurrencyInfo{Code: code}
	known := false

	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ := currency.Standard.Rounding(unit)
		info.MinorDigits = scale
		info.Symbol = currencySymbol(locale, unit)
		known = true
	}

	if meta, ok := s.data.Currencies[code]; ok {
		if meta.Symbol != "" {
			info.Symbol = meta.Symbol
		}
		if meta.MinorDigits != nil {
			info.MinorDigits = *meta.MinorDigits
		}
		known = true
	}

	if !known {
		return CurrencyInfo{}, fmt.Errorf("%w: unknown currency %q", ErrLookupMiss, code)
	}
	if info.Symbol == "" {
		info.Symbol = code
	}
	return info, nil
}

func currencySymbol(locale string, unit currency.Unit) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit))
}

// resolveCandidates returns the list of locale candidates to try
func (s *cultureService) resolveCandidates(locale string) []string {
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)

	for _, parent := range parentLocales(locale) {
		appendLocale(parent)
	}

	if s.resolver != nil {
		for _, fallback := range s.resolver.Resolve(locale) {
			appendLocale(fallback)
			for _, parent := range parentLocales(fallback) {
				appendLocale(parent)
			}
		}
	}

	return candidates
}
