package num2text

import (
	"fmt"
	"math/big"
)

// arabic reads units before tens joined by "و" ("واحد وعشرون"). From three
// to ten the numeral takes the opposite gender marking of its noun, which
// the two unit lists already encode.
type arabic struct {
	groupWords
	feminine      []string
	teensFeminine []string
	hundreds      []string
	and           string
	tenFeminine   string
}

var _ UnitLinker = (*arabic)(nil)

func newArabic(lex *Lexicon) (*Locale, error) {
	words, err := loadGroupWords(lex)
	if err != nil {
		return nil, err
	}
	a := &arabic{groupWords: words}
	if a.feminine, err = lex.List("units_feminine", 10); err != nil {
		return nil, err
	}
	if a.teensFeminine, err = lex.List("teens_feminine", 10); err != nil {
		return nil, err
	}
	if a.hundreds, err = lex.List("hundreds", 10); err != nil {
		return nil, err
	}
	if a.and, err = lex.Word("and"); err != nil {
		return nil, err
	}
	if a.tenFeminine, err = lex.Word("ten_feminine"); err != nil {
		return nil, err
	}
	return newLocale(lex, ShortScale(), a, DualSelector), nil
}

// Group implements WordProvider.
func (a *arabic) Group(value int, ctx GrammaticalContext) ([]string, error) {
	if value < 1 || value > 999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}
	h, r := value/100, value%100
	feminine := ctx.Gender == GenderFeminine

	var out []string
	if h > 0 {
		out = append(out, a.hundreds[h])
	}
	if r == 0 {
		return out, nil
	}

	var rest string
	switch u := r % 10; {
	case r == 10 && feminine:
		rest = a.tenFeminine
	case r >= 10 && r < 20 && feminine:
		rest = a.teensFeminine[r-10]
	case r >= 10 && r < 20:
		rest = a.teens[r-10]
	case r < 10:
		rest = a.unit(r, feminine)
	case u == 0:
		rest = a.tens[r/10]
	default:
		rest = a.unit(u, feminine) + " " + a.and + a.tens[r/10]
	}
	if h > 0 {
		rest = a.and + rest
	}
	return append(out, rest), nil
}

func (a *arabic) unit(u int, feminine bool) string {
	if feminine {
		return a.feminine[u]
	}
	return a.units[u]
}

// LinkUnit puts a lone one after its noun ("ريال واحد") and drops a lone
// two, which the dual form of the noun already expresses ("ريالان").
func (a *arabic) LinkUnit(_ *big.Int, numeral, unit string, ctx GrammaticalContext) string {
	switch ctx.Class {
	case PluralOne:
		return unit + " " + a.unit(1, ctx.Gender == GenderFeminine)
	case PluralTwo:
		return unit
	default:
		return numeral + " " + unit
	}
}
