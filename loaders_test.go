package num2text

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	lexicons, err := EmbeddedLoader{}.Load()
	if err != nil {
		t.Fatalf("EmbeddedLoader.Load: %v", err)
	}
	for code := range builtinPacks {
		lex, ok := lexicons[code]
		if !ok {
			t.Fatalf("embedded lexicons missing %q", code)
		}
		if lex.Name == "" {
			t.Errorf("lexicon %q has no name", code)
		}
	}
	if got := lexicons["en-IN"].Parent; got != "en" {
		t.Fatalf("en-IN parent = %q; want en", got)
	}
}

func TestFileLoaderFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		code   string
		token  string
		want   string
		unit   string
		forms  Forms
		gender Gender
	}{
		{
			name:  "json",
			path:  "testdata/lexicon_en.json",
			code:  "en",
			token: TokenNegative,
			want:  "negative",
			unit:  "CAD",
			forms: Forms{PluralOne: "Canadian dollar", PluralOther: "Canadian dollars"},
		},
		{
			name:   "yaml",
			path:   "testdata/lexicon_es.yaml",
			code:   "es",
			token:  TokenNaN,
			want:   "no numérico",
			unit:   "ARS",
			forms:  Forms{PluralOne: "peso argentino", PluralOther: "pesos argentinos"},
			gender: GenderMasculine,
		},
		{
			name:   "toml",
			path:   "testdata/lexicon_ru.toml",
			code:   "ru",
			token:  TokenNaN,
			want:   "нечисло",
			unit:   "KZT",
			forms:  Forms{PluralOther: "тенге"},
			gender: GenderMasculine,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lexicons, err := NewFileLoader(tt.path).Load()
			if err != nil {
				t.Fatalf("Load(%s): %v", tt.path, err)
			}
			lex, ok := lexicons[tt.code]
			if !ok {
				t.Fatalf("Load(%s) has no %q lexicon", tt.path, tt.code)
			}
			if got := lex.OptionalToken(tt.token); got != tt.want {
				t.Fatalf("token %s = %q; want %q", tt.token, got, tt.want)
			}
			names, ok := lex.Currencies[tt.unit]
			if !ok {
				t.Fatalf("currency %s missing", tt.unit)
			}
			if len(names.Major.Forms) != len(tt.forms) {
				t.Fatalf("%s major forms = %v; want %v", tt.unit, names.Major.Forms, tt.forms)
			}
			for k, v := range tt.forms {
				if names.Major.Forms[k] != v {
					t.Fatalf("%s major form %s = %q; want %q", tt.unit, k, names.Major.Forms[k], v)
				}
			}
			if names.Major.Gender != tt.gender {
				t.Fatalf("%s gender = %q; want %q", tt.unit, names.Major.Gender, tt.gender)
			}
		})
	}
}

func TestFileLoaderRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		loader  *FileLoader
		wantErr string
	}{
		{name: "no paths", loader: NewFileLoader(), wantErr: "no lexicon paths"},
		{name: "missing file", loader: NewFileLoader("testdata/missing.yaml"), wantErr: "read testdata/missing.yaml"},
		{name: "unknown yaml field", loader: NewFileLoader("testdata/lexicon_unknown_field.yaml"), wantErr: "yaml parse error"},
		{name: "unknown toml key", loader: NewFileLoader("testdata/lexicon_unknown_key.toml"), wantErr: "unknown keys"},
		{name: "no code", loader: NewFileLoader("testdata/lexicon_nocode.yaml"), wantErr: "has no code"},
		{name: "locale mismatch", loader: NewFileLoader("testdata/lexicon_en.json").ForLocale("ru"), wantErr: "expected \"ru\""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.loader.Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v; want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFileLoaderForLocale(t *testing.T) {
	t.Parallel()

	lexicons, err := NewFileLoader("testdata/lexicon_nocode.yaml").ForLocale("en").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := lexicons["en"].OptionalToken(TokenNegative); got != "less" {
		t.Fatalf("negative token = %q; want %q", got, "less")
	}
}

func TestDecodeLexiconFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		data    string
		wantErr string
	}{
		{name: "unsupported extension", file: "lexicon.ini", data: "code=en", wantErr: "unsupported extension .ini"},
		{name: "unknown json field", file: "x.json", data: `{"code":"en","colour":"red"}`, wantErr: "json parse error"},
		{name: "bad plural category", file: "x.yaml", data: "code: en\nscales:\n  thousand:\n    forms: {several: x}\n", wantErr: "unknown plural category"},
		{name: "bad bare category", file: "x.yaml", data: "code: en\nscales:\n  thousand:\n    bare: [single]\n    forms: {other: x}\n", wantErr: "unknown plural category"},
		{name: "bad gender", file: "x.yaml", data: "code: en\ncurrencies:\n  usd:\n    major:\n      gender: plural\n      forms: {other: x}\n", wantErr: "unknown gender"},
		{name: "bad spacing", file: "x.yaml", data: "code: en\nspacing: tabs\n", wantErr: "unknown spacing"},
		{name: "bad era", file: "x.yaml", data: "code: en\nera: middle\n", wantErr: "unknown era placement"},
		{name: "bad conjunction", file: "x.yaml", data: "code: ar\nconjunction: suffix\n", wantErr: "unknown conjunction style"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := decodeLexiconFile(tt.file, []byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("decodeLexiconFile(%s) error = %v; want containing %q", tt.file, err, tt.wantErr)
			}
		})
	}

	lex, err := decodeLexiconFile("x.yml", []byte("code: en_GB\ncurrencies:\n  gbp:\n    major:\n      forms: {ONE: pound, Other: pounds}\n"))
	if err != nil {
		t.Fatalf("decodeLexiconFile: %v", err)
	}
	if lex.Code != "en-GB" {
		t.Errorf("code = %q; want en-GB", lex.Code)
	}
	if got := lex.Currencies["GBP"].Major.Forms[PluralOne]; got != "pound" {
		t.Errorf("GBP one form = %q; want pound", got)
	}
}

func TestMultiLoaderLaterWins(t *testing.T) {
	t.Parallel()

	first := LoaderFunc(func() (Lexicons, error) {
		return Lexicons{"en": {Code: "en", Tokens: map[string]string{"zero": "zero", "nan": "nan"}}}, nil
	})
	second := LoaderFunc(func() (Lexicons, error) {
		return Lexicons{"en": {Code: "en", Tokens: map[string]string{"zero": "nought"}}}, nil
	})

	lexicons, err := MultiLoader{first, nil, second}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	en := lexicons["en"]
	if got := en.OptionalToken("zero"); got != "nought" {
		t.Errorf("zero = %q; want nought", got)
	}
	if got := en.OptionalToken("nan"); got != "nan" {
		t.Errorf("nan = %q; want nan", got)
	}

	failing := LoaderFunc(func() (Lexicons, error) { return nil, errors.New("boom") })
	if _, err := (MultiLoader{first, failing}).Load(); err == nil {
		t.Fatalf("MultiLoader with failing loader succeeded")
	}
}

func TestRegistryWithLexiconFiles(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		WithLexiconFiles("testdata/lexicon_en.json", "testdata/lexicon_es.yaml", "testdata/lexicon_ru.toml"),
	)

	tests := []struct {
		name   string
		locale string
		value  any
		opts   Options
		want   string
	}{
		{name: "json token", locale: "en", value: -3, want: "negative three"},
		{name: "json currency", locale: "en", value: 2.01, opts: Options{Mode: ModeCurrency, CurrencyCode: "CAD"}, want: "two Canadian dollars and one cent"},
		{name: "json keeps builtin", locale: "en", value: 1.5, opts: Options{Mode: ModeCurrency}, want: "one dollar and fifty cents"},
		{name: "yaml currency", locale: "es", value: 2, opts: Options{Mode: ModeCurrency, CurrencyCode: "ARS"}, want: "dos pesos argentinos"},
		{name: "toml currency", locale: "ru", value: 2.02, opts: Options{Mode: ModeCurrency, CurrencyCode: "KZT"}, want: "два тенге два тиына"},
		{name: "child inherits override", locale: "en-IN", value: -3, want: "negative three"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.Spell(tt.locale, tt.value, tt.opts)
			if err != nil || got != tt.want {
				t.Fatalf("Spell(%s, %v) = %q, %v; want %q", tt.locale, tt.value, got, err, tt.want)
			}
		})
	}

	if got := r.Convert("es", "abc", Options{}); got != "no numérico" {
		t.Fatalf("Convert(es, abc) = %q; want %q", got, "no numérico")
	}
}

func TestRegistryWithLexiconOverride(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, WithLexiconOverride("EN", "testdata/lexicon_nocode.yaml"))
	got, err := r.Spell("en", -1, Options{})
	if err != nil || got != "less one" {
		t.Fatalf("Spell(en, -1) = %q, %v; want %q", got, err, "less one")
	}

	if _, err := NewRegistry(WithLexiconFiles("testdata/lexicon_unknown_field.yaml")); err == nil {
		t.Fatalf("NewRegistry with a malformed lexicon succeeded")
	}
}
