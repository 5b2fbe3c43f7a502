package num2text

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// azerbaijani has no teens ("on bir") and drops "bir" before "yüz". Suffixes
// follow vowel harmony on the last vowel of the cardinal.
type azerbaijani struct {
	units        []string
	tens         []string
	denominators []string
	hundred      string
	whole        string
}

var (
	_ OrdinalSpeller = (*azerbaijani)(nil)
	_ RatioSpeller   = (*azerbaijani)(nil)
)

func newAzerbaijani(lex *Lexicon) (*Locale, error) {
	a := &azerbaijani{}
	var err error
	if a.units, err = lex.List("units", 10); err != nil {
		return nil, err
	}
	if a.tens, err = lex.List("tens", 10); err != nil {
		return nil, err
	}
	if a.denominators, err = lex.List("denominators", 4); err != nil {
		return nil, err
	}
	if a.hundred, err = lex.Word("hundred"); err != nil {
		return nil, err
	}
	if a.whole, err = lex.Word("whole"); err != nil {
		return nil, err
	}
	return newLocale(lex, ShortScale(), a, NewCLDRSelector(lex.Code)), nil
}

// Group implements WordProvider.
func (a *azerbaijani) Group(value int, _ GrammaticalContext) ([]string, error) {
	if value < 1 || value > 999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}
	h, t, u := value/100, value/10%10, value%10

	var out []string
	if h > 1 {
		out = append(out, a.units[h])
	}
	if h > 0 {
		out = append(out, a.hundred)
	}
	if t > 0 {
		out = append(out, a.tens[t])
	}
	if u > 0 {
		out = append(out, a.units[u])
	}
	return out, nil
}

// SpellOrdinal appends -ıncı/-inci/-uncu/-üncü, dropping the suffix vowel
// after a final vowel ("iyirminci").
func (a *azerbaijani) SpellOrdinal(n *big.Int, gender Gender, cardinal CardinalFunc) (string, error) {
	text, err := cardinal(n, RoleCardinal, gender)
	if err != nil {
		return "", err
	}
	v := lastVowel(text)
	if v == 0 {
		return "", fmt.Errorf("num2text: az: no vowel in %q", text)
	}

	last, _ := utf8.DecodeLastRuneInString(text)
	suffix := ordinalSuffix(v)
	if isVowel(last) {
		_, size := utf8.DecodeRuneInString(suffix)
		suffix = suffix[size:]
	}
	return text + suffix, nil
}

// SpellRatio reads 3.14 as "üç tam yüzdə on dörd".
func (a *azerbaijani) SpellRatio(integer *big.Int, fraction string, cardinal CardinalFunc) (string, error) {
	whole, err := cardinal(integer, RoleCardinal, GenderUnspecified)
	if err != nil {
		return "", err
	}

	numerator, ok := new(big.Int).SetString(fraction, 10)
	if !ok {
		return "", notNumeric(fraction, nil)
	}
	count, err := cardinal(numerator, RoleCardinal, GenderUnspecified)
	if err != nil {
		return "", err
	}

	var denominator string
	if len(fraction) < len(a.denominators) {
		denominator = a.denominators[len(fraction)]
	} else {
		base, err := cardinal(pow10(len(fraction)), RoleCardinal, GenderUnspecified)
		if err != nil {
			return "", err
		}
		denominator = base + locativeSuffix(base)
	}
	return strings.Join([]string{whole, a.whole, denominator, count}, " "), nil
}

func lastVowel(s string) rune {
	for s != "" {
		r, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		if isVowel(r) {
			return r
		}
	}
	return 0
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'ə', 'ı', 'i', 'o', 'ö', 'u', 'ü':
		return true
	}
	return false
}

func ordinalSuffix(v rune) string {
	switch v {
	case 'a', 'ı':
		return "ıncı"
	case 'o', 'u':
		return "uncu"
	case 'ö', 'ü':
		return "üncü"
	default:
		return "inci"
	}
}

func locativeSuffix(s string) string {
	switch lastVowel(s) {
	case 'a', 'ı', 'o', 'u':
		return "da"
	default:
		return "də"
	}
}
