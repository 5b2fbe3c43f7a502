package num2text

import "fmt"

// russian agrees the final one and two with the gender of the counted
// noun: "одна тысяча", "две копейки", "один рубль".
type russian struct {
	groupWords
	feminine []string
	neuter   []string
	hundreds []string
}

func newRussian(lex *Lexicon) (*Locale, error) {
	words, err := loadGroupWords(lex)
	if err != nil {
		return nil, err
	}
	r := &russian{groupWords: words}
	if r.feminine, err = lex.List("units_feminine", 10); err != nil {
		return nil, err
	}
	if r.neuter, err = lex.List("units_neuter", 10); err != nil {
		return nil, err
	}
	if r.hundreds, err = lex.List("hundreds", 10); err != nil {
		return nil, err
	}
	return newLocale(lex, ShortScale(), r, SlavicSelector), nil
}

// Group implements WordProvider.
func (r *russian) Group(value int, ctx GrammaticalContext) ([]string, error) {
	if value < 1 || value > 999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}
	h, rest := value/100, value%100

	var out []string
	if h > 0 {
		out = append(out, r.hundreds[h])
	}
	switch {
	case rest == 0:
	case rest >= 10 && rest < 20:
		out = append(out, r.teens[rest-10])
	default:
		if rest >= 20 {
			out = append(out, r.tens[rest/10])
		}
		if u := rest % 10; u > 0 {
			out = append(out, r.unit(u, ctx.Gender))
		}
	}
	return out, nil
}

func (r *russian) unit(u int, gender Gender) string {
	switch gender {
	case GenderFeminine:
		return r.feminine[u]
	case GenderNeuter:
		return r.neuter[u]
	default:
		return r.units[u]
	}
}
