package num2text

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// cleanLocale trims locale and turns "_" into "-" without touching case.
func cleanLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// canonicalLocale returns the BCP 47 form of locale ("EN_us" -> "en-US"),
// or the cleaned input when it does not parse.
func canonicalLocale(locale string) string {
	cleaned := cleanLocale(locale)
	if cleaned == "" {
		return ""
	}
	tag, err := language.Parse(cleaned)
	if err != nil {
		return cleaned
	}
	return tag.String()
}

// parentLocales lists the ancestors of locale, nearest first
// ("es-MX" -> "es-419", "es"). Codes x/text cannot parse lose one subtag
// per step instead.
func parentLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	var parents []string
	tag, err := language.Parse(locale)
	if err != nil {
		for i := strings.LastIndex(locale, "-"); i > 0; i = strings.LastIndex(locale, "-") {
			locale = locale[:i]
			parents = append(parents, locale)
		}
		return parents
	}

	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		code := parent.String()
		if len(parents) > 0 && parents[len(parents)-1] == code {
			break
		}
		parents = append(parents, code)
	}
	// scripts such as sr-Latn have no CLDR parent but still share a base
	if base, conf := tag.Base(); conf != language.No {
		code := base.String()
		if code != tag.String() && (len(parents) == 0 || parents[len(parents)-1] != code) {
			parents = append(parents, code)
		}
	}
	return parents
}

// uniqueLocales canonicalizes locales, drops blanks and duplicates, and
// sorts the result.
func uniqueLocales(locales []string) []string {
	seen := make(map[string]bool, len(locales))
	var out []string
	for _, locale := range locales {
		code := canonicalLocale(locale)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
