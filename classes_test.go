package num2text

import (
	"slices"
	"testing"

	"golang.org/x/text/language"
)

func TestSlavicAgreesWithCLDR(t *testing.T) {
	t.Parallel()

	ru := language.MustParse("ru")
	for n := 0; n <= 1000; n++ {
		got := SlavicSelector.Classify(ClassRequest{Value: n}).Class
		if want := cldrClass(ru, n, false); got != want {
			t.Fatalf("SlavicSelector(%d) = %s; want %s", n, got, want)
		}
	}
}

func TestDualAgreesWithCLDR(t *testing.T) {
	t.Parallel()

	ar := language.MustParse("ar")
	for _, compound := range []bool{false, true} {
		for n := 0; n <= 1000; n++ {
			if compound && n >= 1000 {
				continue
			}
			got := DualSelector.Classify(ClassRequest{Value: n, Compound: compound}).Class
			if want := cldrClass(ar, n, compound); got != want {
				t.Fatalf("DualSelector(%d, compound=%v) = %s; want %s", n, compound, got, want)
			}
		}
	}
}

func TestCLDRSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		req    ClassRequest
		want   PluralCategory
	}{
		{name: "en one", locale: "en", req: ClassRequest{Value: 1}, want: PluralOne},
		{name: "en compound one", locale: "en", req: ClassRequest{Value: 1, Compound: true}, want: PluralOther},
		{name: "en zero", locale: "en", req: ClassRequest{Value: 0}, want: PluralOther},
		{name: "ru compound one", locale: "ru", req: ClassRequest{Value: 1, Compound: true}, want: PluralOne},
		{name: "ru few", locale: "ru", req: ClassRequest{Value: 23}, want: PluralFew},
		{name: "ru teen", locale: "ru", req: ClassRequest{Value: 12}, want: PluralMany},
		{name: "ja single form", locale: "ja", req: ClassRequest{Value: 1}, want: PluralOther},
		{name: "unparsable locale", locale: "!!", req: ClassRequest{Value: 1}, want: PluralOther},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewCLDRSelector(tt.locale).Classify(tt.req).Class
			if got != tt.want {
				t.Fatalf("NewCLDRSelector(%q).Classify(%+v) = %s; want %s", tt.locale, tt.req, got, tt.want)
			}
		})
	}
}

func TestSelectorsCarryContext(t *testing.T) {
	t.Parallel()

	selectors := map[string]ClassSelector{
		"cldr-en": NewCLDRSelector("en"),
		"cldr-ar": NewCLDRSelector("ar"),
		"slavic":  SlavicSelector,
		"dual":    DualSelector,
		"single":  SingleFormSelector,
	}

	for name, sel := range selectors {
		name := name
		sel := sel
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for n := 0; n < 10000; n += 7 {
				req := ClassRequest{
					Value:    n,
					Level:    n % 4,
					Role:     RoleCurrencyMinor,
					Gender:   GenderFeminine,
					Compound: n%2 == 0,
				}
				ctx := sel.Classify(req)
				if !slices.Contains(pluralCategories, ctx.Class) {
					t.Fatalf("%s.Classify(%d) = %q; want a known category", name, n, ctx.Class)
				}
				if ctx.Gender != req.Gender || ctx.Role != req.Role || ctx.Level != req.Level {
					t.Fatalf("%s.Classify(%+v) = %+v; context not carried", name, req, ctx)
				}
			}
		})
	}
}

func TestAttributive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ctx  GrammaticalContext
		want bool
	}{
		{ctx: GrammaticalContext{Role: RoleCardinal}, want: false},
		{ctx: GrammaticalContext{Role: RoleCardinal, Level: 1}, want: true},
		{ctx: GrammaticalContext{Role: RoleCurrencyMajor}, want: true},
		{ctx: GrammaticalContext{Role: RoleCurrencyMinor}, want: true},
		{ctx: GrammaticalContext{Role: RoleYear}, want: false},
	}
	for _, tt := range tests {
		if got := tt.ctx.Attributive(); got != tt.want {
			t.Errorf("%+v.Attributive() = %v; want %v", tt.ctx, got, tt.want)
		}
	}
}

func TestFormsVariant(t *testing.T) {
	t.Parallel()

	f := Forms{PluralOne: "rouble", PluralOther: "roubles", PluralFew: ""}
	tests := []struct {
		class PluralCategory
		want  string
	}{
		{PluralOne, "rouble"},
		{PluralFew, "roubles"},
		{PluralMany, "roubles"},
	}
	for _, tt := range tests {
		if got, ok := f.Variant(tt.class); !ok || got != tt.want {
			t.Errorf("Variant(%s) = %q, %v; want %q", tt.class, got, ok, tt.want)
		}
	}
	if _, ok := (Forms{PluralOne: "x"}).Variant(PluralMany); ok {
		t.Errorf("Variant without other form succeeded")
	}
	if _, ok := Forms(nil).Variant(PluralOther); ok {
		t.Errorf("Variant on nil forms succeeded")
	}
}
