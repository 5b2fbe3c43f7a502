package num2text

import (
	"fmt"
	"math/big"
)

// Spanish long scale: mil at 10^3, then a new name every six digits. The
// millón tier holds up to 999 999 and is read through the same model
// ("mil quinientos millones").
var spanishScale = []string{"", "mil", "millon", "billon", "trillon", "cuatrillon"}

var spanishBoundaries = []int{0, 3, 6, 12, 18, 24}

type spanish struct {
	groupWords
	twenties         []string
	hundreds         []string
	hundredsFeminine []string
	and              string
	of               string
	hundred          string
	hundredPrefix    string
	oneApocope       string
	oneFeminine      string
	twentyOneApocope string
	twentyOneFem     string
}

var _ UnitLinker = (*spanish)(nil)

func newSpanish(lex *Lexicon) (*Locale, error) {
	words, err := loadGroupWords(lex)
	if err != nil {
		return nil, err
	}
	s := &spanish{groupWords: words}

	lists := []struct {
		key string
		dst *[]string
	}{
		{"twenties", &s.twenties},
		{"hundreds", &s.hundreds},
		{"hundreds_feminine", &s.hundredsFeminine},
	}
	for _, l := range lists {
		if *l.dst, err = lex.List(l.key, 10); err != nil {
			return nil, err
		}
	}

	single := []struct {
		key string
		dst *string
	}{
		{"and", &s.and},
		{"of", &s.of},
		{"hundred", &s.hundred},
		{"hundred_prefix", &s.hundredPrefix},
		{"one_apocope", &s.oneApocope},
		{"one_feminine", &s.oneFeminine},
		{"twenty_one_apocope", &s.twentyOneApocope},
		{"twenty_one_feminine", &s.twentyOneFem},
	}
	for _, w := range single {
		if *w.dst, err = lex.Word(w.key); err != nil {
			return nil, err
		}
	}

	model, err := NewMagnitudeModel(3, spanishScale, spanishBoundaries)
	if err != nil {
		return nil, err
	}
	return newLocale(lex, model, s, NewCLDRSelector(lex.Code)), nil
}

// Group implements WordProvider. A final "uno" shortens to "un" before a
// noun and becomes "una" before a feminine one.
func (s *spanish) Group(value int, ctx GrammaticalContext) ([]string, error) {
	if value < 1 || value > 999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}
	h, r := value/100, value%100
	feminine := ctx.Gender == GenderFeminine

	var out []string
	switch {
	case h == 1 && r == 0:
		out = append(out, s.hundred)
	case h == 1:
		out = append(out, s.hundredPrefix)
	case h > 1 && feminine:
		out = append(out, s.hundredsFeminine[h])
	case h > 1:
		out = append(out, s.hundreds[h])
	}

	switch {
	case r == 0:
	case r == 1:
		out = append(out, s.one(ctx))
	case r == 21:
		out = append(out, s.twentyOne(ctx))
	case r < 10:
		out = append(out, s.units[r])
	case r < 20:
		out = append(out, s.teens[r-10])
	case r < 30:
		out = append(out, s.twenties[r-20])
	case r%10 == 0:
		out = append(out, s.tens[r/10])
	case r%10 == 1:
		out = append(out, s.tens[r/10], s.and, s.one(ctx))
	default:
		out = append(out, s.tens[r/10], s.and, s.units[r%10])
	}
	return out, nil
}

func (s *spanish) one(ctx GrammaticalContext) string {
	switch {
	case ctx.Gender == GenderFeminine:
		return s.oneFeminine
	case ctx.Attributive():
		return s.oneApocope
	default:
		return s.units[1]
	}
}

func (s *spanish) twentyOne(ctx GrammaticalContext) string {
	switch {
	case ctx.Gender == GenderFeminine:
		return s.twentyOneFem
	case ctx.Attributive():
		return s.twentyOneApocope
	default:
		return s.twenties[1]
	}
}

var spanishMillion = big.NewInt(1000000)

// LinkUnit inserts "de" after round millions: "un millón de euros".
func (s *spanish) LinkUnit(amount *big.Int, numeral, unit string, _ GrammaticalContext) string {
	if amount.Cmp(spanishMillion) >= 0 && new(big.Int).Rem(amount, spanishMillion).Sign() == 0 {
		return numeral + " " + s.of + " " + unit
	}
	return numeral + " " + unit
}
