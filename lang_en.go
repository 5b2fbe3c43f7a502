package num2text

import (
	"fmt"
	"math/big"
	"strings"
)

// english reads groups as "three hundred and forty-two". It also spells
// years in pairs and ordinals.
type english struct {
	groupWords
	hundred  string
	and      string
	oh       string
	ordinals map[string]string
}

var (
	_ YearSpeller    = (*english)(nil)
	_ OrdinalSpeller = (*english)(nil)
)

func newEnglish(lex *Lexicon) (*Locale, error) {
	return newEnglishLocale(lex, ShortScale())
}

func newIndianEnglish(lex *Lexicon) (*Locale, error) {
	model, err := NewMagnitudeModel(3, []string{"", "thousand", "lakh", "crore"}, []int{0, 3, 5, 7})
	if err != nil {
		return nil, err
	}
	return newEnglishLocale(lex, model)
}

func newEnglishLocale(lex *Lexicon, model *MagnitudeModel) (*Locale, error) {
	words, err := loadGroupWords(lex)
	if err != nil {
		return nil, err
	}
	e := &english{groupWords: words}
	if e.hundred, err = lex.Word("hundred"); err != nil {
		return nil, err
	}
	if e.and, err = lex.Word("and"); err != nil {
		return nil, err
	}
	if e.oh, err = lex.Word("oh"); err != nil {
		return nil, err
	}

	plain, forms := lex.Lists["ordinal_words"], lex.Lists["ordinal_forms"]
	if len(plain) != len(forms) {
		return nil, fmt.Errorf("%w: %s: ordinal_words and ordinal_forms differ in length", ErrLookupMiss, lex.Code)
	}
	e.ordinals = make(map[string]string, len(plain))
	for i, word := range plain {
		e.ordinals[word] = forms[i]
	}

	return newLocale(lex, model, e, NewCLDRSelector(lex.Code)), nil
}

// Group implements WordProvider.
func (e *english) Group(value int, _ GrammaticalContext) ([]string, error) {
	if value < 1 || value > 999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}
	h, r := value/100, value%100

	var out []string
	if h > 0 {
		out = append(out, e.units[h], e.hundred)
	}
	if r > 0 {
		if h > 0 {
			out = append(out, e.and)
		}
		out = append(out, e.below100(r, "-"))
	}
	return out, nil
}

// SpellYear reads four-digit years as two pairs: 1984 is "nineteen
// eighty-four", 1905 "nineteen oh-five", 1900 "nineteen hundred". Years
// below 1000, round thousands with a small remainder (2005) and years past
// 9999 read as cardinals.
func (e *english) SpellYear(year *big.Int, _ CardinalFunc) (string, bool, error) {
	if !year.IsInt64() {
		return "", false, nil
	}
	y := year.Int64()
	high, low := int(y/100), int(y%100)
	if high < 10 || high >= 100 || (high%10 == 0 && low < 10) {
		return "", false, nil
	}

	out := e.below100(high, "-")
	switch {
	case low == 0:
		out += " " + e.hundred
	case low < 10:
		out += " " + e.oh + "-" + e.units[low]
	default:
		out += " " + e.below100(low, "-")
	}
	return out, true, nil
}

// SpellOrdinal turns the last word of the cardinal into its ordinal form.
func (e *english) SpellOrdinal(n *big.Int, gender Gender, cardinal CardinalFunc) (string, error) {
	text, err := cardinal(n, RoleCardinal, gender)
	if err != nil {
		return "", err
	}

	cut := strings.LastIndexAny(text, " -") + 1
	head, last := text[:cut], text[cut:]
	switch form, ok := e.ordinals[last]; {
	case ok:
		last = form
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}
	return head + last, nil
}
