package num2text

import "math/big"

// WordProvider renders one group of a number. value is in
// [1, 10^GroupSize); zero groups never reach the provider. The returned
// fragments are joined with the locale spacing.
type WordProvider interface {
	Group(value int, ctx GrammaticalContext) ([]string, error)
}

// CardinalFunc renders a non-negative integer with the locale's own rules.
// Hooks use it to build larger phrases.
type CardinalFunc func(n *big.Int, role Role, gender Gender) (string, error)

// YearSpeller is implemented by providers with a dedicated way of reading
// years ("nineteen eighty-four"). ok=false defers to the cardinal reading.
type YearSpeller interface {
	SpellYear(year *big.Int, cardinal CardinalFunc) (text string, ok bool, err error)
}

// OrdinalSpeller is implemented by providers that can read ordinals.
type OrdinalSpeller interface {
	SpellOrdinal(n *big.Int, gender Gender, cardinal CardinalFunc) (string, error)
}

// RatioSpeller reads a fractional number as a count over a power of ten.
type RatioSpeller interface {
	SpellRatio(integer *big.Int, fraction string, cardinal CardinalFunc) (string, error)
}

// UnitLinker joins a numeral with the currency unit it counts. amount is
// the counted quantity.
type UnitLinker interface {
	LinkUnit(amount *big.Int, numeral, unit string, ctx GrammaticalContext) string
}

// Locale binds a magnitude model, a word provider and a class selector over
// one lexicon. A Locale is immutable once built.
type Locale struct {
	Code      string
	Lexicon   *Lexicon
	Magnitude *MagnitudeModel
	Words     WordProvider
	Classes   ClassSelector
}

// LanguagePack builds a Locale from its resolved lexicon.
type LanguagePack func(lex *Lexicon) (*Locale, error)

// Capabilities lists the optional features of a locale.
type Capabilities struct {
	Ordinals    bool
	Years       bool
	Ratios      bool
	UnitLinking bool
}

// Capabilities reports the optional hooks the provider implements.
func (l *Locale) Capabilities() Capabilities {
	_, ordinals := l.Words.(OrdinalSpeller)
	_, years := l.Words.(YearSpeller)
	_, ratios := l.Words.(RatioSpeller)
	_, linking := l.Words.(UnitLinker)
	return Capabilities{
		Ordinals:    ordinals,
		Years:       years,
		Ratios:      ratios,
		UnitLinking: linking,
	}
}

// newLocale assembles a locale. A nil magnitude model means ShortScale.
func newLocale(lex *Lexicon, model *MagnitudeModel, words WordProvider, classes ClassSelector) *Locale {
	if model == nil {
		model = ShortScale()
	}
	return &Locale{
		Code:      lex.Code,
		Lexicon:   lex,
		Magnitude: model,
		Words:     words,
		Classes:   classes,
	}
}

// groupWords is the common table-driven shape of a 0..999 group: units,
// teens and tens lists indexed by digit.
type groupWords struct {
	units []string
	teens []string
	tens  []string
}

func loadGroupWords(lex *Lexicon) (groupWords, error) {
	units, err := lex.List("units", 10)
	if err != nil {
		return groupWords{}, err
	}
	teens, err := lex.List("teens", 10)
	if err != nil {
		return groupWords{}, err
	}
	tens, err := lex.List("tens", 10)
	if err != nil {
		return groupWords{}, err
	}
	return groupWords{units: units, teens: teens, tens: tens}, nil
}

// below100 reads 1..99 with a joiner between tens and units.
func (w groupWords) below100(n int, joiner string) string {
	switch {
	case n < 10:
		return w.units[n]
	case n < 20:
		return w.teens[n-10]
	case n%10 == 0:
		return w.tens[n/10]
	default:
		return w.tens[n/10] + joiner + w.units[n%10]
	}
}
