package num2text

import (
	"fmt"
	"math/big"
)

var germanScale = []string{
	"", "tausend", "million", "milliarde", "billion", "billiarde",
	"trillion", "trilliarde", "quadrillion", "quadrilliarde",
}

// german writes every group as one compound word ("dreihunderteinundzwanzig").
// A final one is "eins" on its own, "ein" before a masculine or neuter noun
// and "eine" before a feminine one.
type german struct {
	groupWords
	compound    []string
	and         string
	hundred     string
	oneFeminine string
}

var _ YearSpeller = (*german)(nil)

func newGerman(lex *Lexicon) (*Locale, error) {
	words, err := loadGroupWords(lex)
	if err != nil {
		return nil, err
	}
	g := &german{groupWords: words}
	if g.compound, err = lex.List("units_compound", 10); err != nil {
		return nil, err
	}
	if g.and, err = lex.Word("and"); err != nil {
		return nil, err
	}
	if g.hundred, err = lex.Word("hundred"); err != nil {
		return nil, err
	}
	if g.oneFeminine, err = lex.Word("one_feminine"); err != nil {
		return nil, err
	}

	model, err := NewMagnitudeModel(3, germanScale, nil)
	if err != nil {
		return nil, err
	}
	return newLocale(lex, model, g, NewCLDRSelector(lex.Code)), nil
}

// Group implements WordProvider.
func (g *german) Group(value int, ctx GrammaticalContext) ([]string, error) {
	if value < 1 || value > 999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}
	return []string{g.word(value, ctx)}, nil
}

func (g *german) word(value int, ctx GrammaticalContext) string {
	h, r := value/100, value%100

	var out string
	if h > 0 {
		out = g.compound[h] + g.hundred
	}
	switch {
	case r == 0:
	case r == 1:
		out += g.one(ctx)
	case r < 10:
		out += g.units[r]
	case r < 20:
		out += g.teens[r-10]
	case r%10 == 0:
		out += g.tens[r/10]
	default:
		out += g.compound[r%10] + g.and + g.tens[r/10]
	}
	return out
}

func (g *german) one(ctx GrammaticalContext) string {
	switch {
	case !ctx.Attributive():
		return g.units[1]
	case ctx.Gender == GenderFeminine:
		return g.oneFeminine
	default:
		return g.compound[1]
	}
}

// SpellYear reads 1100 to 1999 in hundreds: "neunzehnhundertvierundachtzig".
func (g *german) SpellYear(year *big.Int, _ CardinalFunc) (string, bool, error) {
	if !year.IsInt64() {
		return "", false, nil
	}
	y := year.Int64()
	if y < 1100 || y > 1999 {
		return "", false, nil
	}
	high, low := int(y/100), int(y%100)

	ctx := GrammaticalContext{Class: PluralOther, Role: RoleYear}
	out := g.word(high, ctx) + g.hundred
	if low > 0 {
		out += g.word(low, ctx)
	}
	return out, true, nil
}
