package num2text

import (
	"errors"
	"strings"
	"testing"
)

// brokenStore returns the embedded lexicons with locale's copy passed
// through mutate.
func brokenStore(t *testing.T, locale string, mutate func(*Lexicon)) Store {
	t.Helper()
	lexicons, err := EmbeddedLoader{}.Load()
	if err != nil {
		t.Fatalf("EmbeddedLoader.Load: %v", err)
	}
	lex := lexicons[locale].Clone()
	mutate(lex)
	lexicons[locale] = lex
	return NewStaticStore(lexicons)
}

func TestValidateRejectsDefectiveTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		locale  string
		mutate  func(*Lexicon)
		want    error
		wantMsg string
	}{
		{
			name:   "missing top scale",
			locale: "en",
			mutate: func(l *Lexicon) { delete(l.Scales, "decillion") },
			want:   ErrUnsupportedMagnitude,
		},
		{
			name:    "missing default currency",
			locale:  "en",
			mutate:  func(l *Lexicon) { delete(l.Currencies, "USD") },
			want:    ErrLookupMiss,
			wantMsg: "USD",
		},
		{
			name:    "missing token",
			locale:  "en",
			mutate:  func(l *Lexicon) { delete(l.Tokens, TokenNaN) },
			want:    ErrLookupMiss,
			wantMsg: "missing tokens",
		},
		{
			name:   "missing scale form",
			locale: "ru",
			mutate: func(l *Lexicon) {
				l.Scales["thousand"] = ScaleWord{
					Gender: GenderFeminine,
					Forms:  Forms{PluralOne: "тысяча", PluralMany: "тысяч"},
				}
			},
			want:    ErrLookupMiss,
			wantMsg: "scale form",
		},
		{
			name:   "missing currency form",
			locale: "ru",
			mutate: func(l *Lexicon) {
				names := l.Currencies["RUB"]
				names.Minor = UnitWords{Gender: GenderFeminine, Forms: Forms{PluralOne: "копейка"}}
				l.Currencies["RUB"] = names
			},
			want:    ErrLookupMiss,
			wantMsg: "currency form",
		},
		{
			name:    "short list",
			locale:  "en",
			mutate:  func(l *Lexicon) { l.Lists["teens"] = l.Lists["teens"][:5] },
			want:    ErrLookupMiss,
			wantMsg: "build en",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRegistry(
				WithStore(brokenStore(t, tt.locale, tt.mutate)),
				WithLocales(tt.locale),
			)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewRegistry error = %v; want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("NewRegistry error = %v; want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateIncompleteLocale(t *testing.T) {
	t.Parallel()

	if err := validateLocale(nil, nil); err == nil {
		t.Fatalf("validateLocale(nil) succeeded")
	}
	if err := validateLocale(&Locale{Code: "en"}, nil); err == nil {
		t.Fatalf("validateLocale without tables succeeded")
	}
}

func TestValidateBuiltinLocales(t *testing.T) {
	t.Parallel()

	culture := Default().Culture()
	for _, code := range Default().Locales() {
		conv, err := Default().Bind(code)
		if err != nil {
			t.Fatalf("Bind(%s): %v", code, err)
		}
		if err := validateLocale(conv.Locale(), culture); err != nil {
			t.Errorf("validateLocale(%s): %v", code, err)
		}
	}
}
