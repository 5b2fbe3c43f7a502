package num2text

import (
	"fmt"
	"sort"
	"strings"
)

// Token keys understood by the composer.
const (
	TokenZero             = "zero"
	TokenNegative         = "negative"
	TokenNaN              = "nan"
	TokenInfinity         = "infinity"
	TokenNegativeInfinity = "negative_infinity"
	TokenPoint            = "point"
	TokenComma            = "comma"
	TokenPeriod           = "period"
	TokenCurrencyJoin     = "currency_join"
	TokenGroupSeparator   = "group_separator"
	TokenGroupJoin        = "group_join"
	TokenFinalJoin        = "final_join"
	TokenEraAD            = "era_ad"
	TokenEraBC            = "era_bc"
	TokenYearSuffix       = "year_suffix"
)

var requiredTokens = []string{
	TokenZero, TokenNegative, TokenNaN, TokenInfinity,
	TokenPoint, TokenComma, TokenEraAD, TokenEraBC,
}

// Spacing values.
const (
	SpacingSpace = "space"
	SpacingNone  = "none"
)

// Era placement values.
const (
	EraSuffix = "suffix"
	EraPrefix = "prefix"
)

// Conjunction values. With ConjunctionPrefix the join tokens are written
// onto the word that follows them ("ألف وواحد").
const (
	ConjunctionWord   = "word"
	ConjunctionPrefix = "prefix"
)

// Lexicon is the data half of a locale: every word the locale can emit.
// Lexicons are plain data and are decoded from YAML, JSON or TOML.
type Lexicon struct {
	Code        string                   `yaml:"code" json:"code" toml:"code"`
	Name        string                   `yaml:"name" json:"name" toml:"name"`
	Parent      string                   `yaml:"parent" json:"parent" toml:"parent"`
	Spacing     string                   `yaml:"spacing" json:"spacing" toml:"spacing"`
	Decimal     string                   `yaml:"decimal" json:"decimal" toml:"decimal"`
	Era         string                   `yaml:"era" json:"era" toml:"era"`
	Conjunction string                   `yaml:"conjunction" json:"conjunction" toml:"conjunction"`
	Tokens      map[string]string        `yaml:"tokens" json:"tokens" toml:"tokens"`
	Words       map[string]string        `yaml:"words" json:"words" toml:"words"`
	Lists       map[string][]string      `yaml:"lists" json:"lists" toml:"lists"`
	Scales      map[string]ScaleWord     `yaml:"scales" json:"scales" toml:"scales"`
	Currencies  map[string]CurrencyNames `yaml:"currencies" json:"currencies" toml:"currencies"`
}

// ScaleWord names one magnitude level. Bare lists the classes for which the
// numeral before the scale word is dropped ("mil", not "uno mil"). Attach
// glues the scale word to its numeral and to the following group.
type ScaleWord struct {
	Forms  Forms            `yaml:"forms" json:"forms" toml:"forms"`
	Gender Gender           `yaml:"gender" json:"gender" toml:"gender"`
	Bare   []PluralCategory `yaml:"bare" json:"bare" toml:"bare"`
	Attach bool             `yaml:"attach" json:"attach" toml:"attach"`
}

// IsBare reports whether class drops the numeral.
func (s ScaleWord) IsBare(class PluralCategory) bool {
	for _, c := range s.Bare {
		if c == class {
			return true
		}
	}
	return false
}

// CurrencyNames holds the unit words of one currency in one language.
type CurrencyNames struct {
	Major UnitWords `yaml:"major" json:"major" toml:"major"`
	Minor UnitWords `yaml:"minor" json:"minor" toml:"minor"`
}

// Lexicons maps locale codes to lexicons.
type Lexicons map[string]*Lexicon

// Token returns a required token.
func (l *Lexicon) Token(key string) (string, error) {
	if v, ok := l.Tokens[key]; ok && v != "" {
		return v, nil
	}
	return "", lookupMiss(l.Code, "token", key)
}

// OptionalToken returns a token or "".
func (l *Lexicon) OptionalToken(key string) string {
	return l.Tokens[key]
}

// Word returns a required single word.
func (l *Lexicon) Word(key string) (string, error) {
	if v, ok := l.Words[key]; ok && v != "" {
		return v, nil
	}
	return "", lookupMiss(l.Code, "word", key)
}

// List returns a word list that must hold exactly size entries.
func (l *Lexicon) List(key string, size int) ([]string, error) {
	list, ok := l.Lists[key]
	if !ok {
		return nil, lookupMiss(l.Code, "list", key)
	}
	if len(list) != size {
		return nil, fmt.Errorf("%w: list %q has %d entries, want %d", ErrLookupMiss, key, len(list), size)
	}
	return list, nil
}

// Scale returns the scale word for key.
func (l *Lexicon) Scale(key string) (ScaleWord, error) {
	scale, ok := l.Scales[key]
	if !ok || len(scale.Forms) == 0 {
		return ScaleWord{}, fmt.Errorf("%w: %s has no scale word %q", ErrUnsupportedMagnitude, l.Code, key)
	}
	return scale, nil
}

// Glued reports whether the locale writes numbers without spaces.
func (l *Lexicon) Glued() bool {
	return l.Spacing == SpacingNone
}

// PrefixConjunction reports whether join tokens attach to the next word.
func (l *Lexicon) PrefixConjunction() bool {
	return l.Conjunction == ConjunctionPrefix
}

// normalize validates categories and genders and lowercases keys.
func (l *Lexicon) normalize() error {
	if l == nil {
		return nil
	}
	l.Code = cleanLocale(l.Code)
	l.Parent = cleanLocale(l.Parent)
	switch l.Spacing {
	case "", SpacingSpace, SpacingNone:
	default:
		return fmt.Errorf("num2text: %s: unknown spacing %q", l.Code, l.Spacing)
	}
	switch l.Era {
	case "", EraSuffix, EraPrefix:
	default:
		return fmt.Errorf("num2text: %s: unknown era placement %q", l.Code, l.Era)
	}
	switch l.Conjunction {
	case "", ConjunctionWord, ConjunctionPrefix:
	default:
		return fmt.Errorf("num2text: %s: unknown conjunction style %q", l.Code, l.Conjunction)
	}

	for key, scale := range l.Scales {
		forms, err := normalizeForms(scale.Forms)
		if err != nil {
			return fmt.Errorf("num2text: %s: scale %q: %w", l.Code, key, err)
		}
		scale.Forms = forms
		for i, class := range scale.Bare {
			category, err := parsePluralCategory(string(class))
			if err != nil {
				return fmt.Errorf("num2text: %s: scale %q: %w", l.Code, key, err)
			}
			scale.Bare[i] = category
		}
		if err := validateGender(scale.Gender); err != nil {
			return fmt.Errorf("num2text: %s: scale %q: %w", l.Code, key, err)
		}
		l.Scales[key] = scale
	}

	currencies := make(map[string]CurrencyNames, len(l.Currencies))
	for code, names := range l.Currencies {
		var err error
		if names.Major, err = normalizeUnit(names.Major); err != nil {
			return fmt.Errorf("num2text: %s: currency %q: %w", l.Code, code, err)
		}
		if names.Minor, err = normalizeUnit(names.Minor); err != nil {
			return fmt.Errorf("num2text: %s: currency %q: %w", l.Code, code, err)
		}
		currencies[strings.ToUpper(code)] = names
	}
	if len(currencies) > 0 {
		l.Currencies = currencies
	}
	return nil
}

func normalizeUnit(unit UnitWords) (UnitWords, error) {
	forms, err := normalizeForms(unit.Forms)
	if err != nil {
		return unit, err
	}
	unit.Forms = forms
	return unit, validateGender(unit.Gender)
}

func normalizeForms(forms Forms) (Forms, error) {
	if len(forms) == 0 {
		return forms, nil
	}
	out := make(Forms, len(forms))
	for key, form := range forms {
		category, err := parsePluralCategory(string(key))
		if err != nil {
			return nil, err
		}
		out[category] = form
	}
	return out, nil
}

func validateGender(g Gender) error {
	switch g {
	case GenderUnspecified, GenderMasculine, GenderFeminine, GenderNeuter:
		return nil
	default:
		return fmt.Errorf("unknown gender %q", g)
	}
}

// Clone returns a deep copy.
func (l *Lexicon) Clone() *Lexicon {
	if l == nil {
		return nil
	}
	out := &Lexicon{
		Code:        l.Code,
		Name:        l.Name,
		Parent:      l.Parent,
		Spacing:     l.Spacing,
		Decimal:     l.Decimal,
		Era:         l.Era,
		Conjunction: l.Conjunction,
	}
	out.merge(l)
	return out
}

// merge overlays src onto l; entries in src win.
func (l *Lexicon) merge(src *Lexicon) {
	if src == nil {
		return
	}
	if src.Name != "" {
		l.Name = src.Name
	}
	if src.Parent != "" {
		l.Parent = src.Parent
	}
	if src.Spacing != "" {
		l.Spacing = src.Spacing
	}
	if src.Decimal != "" {
		l.Decimal = src.Decimal
	}
	if src.Era != "" {
		l.Era = src.Era
	}
	if src.Conjunction != "" {
		l.Conjunction = src.Conjunction
	}

	if len(src.Tokens) > 0 && l.Tokens == nil {
		l.Tokens = make(map[string]string, len(src.Tokens))
	}
	for k, v := range src.Tokens {
		l.Tokens[k] = v
	}

	if len(src.Words) > 0 && l.Words == nil {
		l.Words = make(map[string]string, len(src.Words))
	}
	for k, v := range src.Words {
		l.Words[k] = v
	}

	if len(src.Lists) > 0 && l.Lists == nil {
		l.Lists = make(map[string][]string, len(src.Lists))
	}
	for k, v := range src.Lists {
		l.Lists[k] = append([]string(nil), v...)
	}

	if len(src.Scales) > 0 && l.Scales == nil {
		l.Scales = make(map[string]ScaleWord, len(src.Scales))
	}
	for k, v := range src.Scales {
		v.Forms = v.Forms.clone()
		v.Bare = append([]PluralCategory(nil), v.Bare...)
		l.Scales[k] = v
	}

	if len(src.Currencies) > 0 && l.Currencies == nil {
		l.Currencies = make(map[string]CurrencyNames, len(src.Currencies))
	}
	for k, v := range src.Currencies {
		v.Major.Forms = v.Major.Forms.clone()
		v.Minor.Forms = v.Minor.Forms.clone()
		l.Currencies[k] = v
	}
}

// missingTokens lists required tokens absent from l.
func (l *Lexicon) missingTokens() []string {
	var missing []string
	for _, key := range requiredTokens {
		if l.Tokens[key] == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
