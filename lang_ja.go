package num2text

import "fmt"

var japaneseScale = []string{
	"", "man", "oku", "cho", "kei", "gai", "shi", "jo", "ko", "kan", "sei", "sai", "goku",
}

// japanese groups by four digits and drops the one before 十, 百 and 千.
type japanese struct {
	digits []string
	places []string
}

func newJapanese(lex *Lexicon) (*Locale, error) {
	j := &japanese{}
	var err error
	if j.digits, err = lex.List("digits", 10); err != nil {
		return nil, err
	}
	if j.places, err = lex.List("places", 4); err != nil {
		return nil, err
	}
	model, err := NewMagnitudeModel(4, japaneseScale, nil)
	if err != nil {
		return nil, err
	}
	return newLocale(lex, model, j, NewCLDRSelector(lex.Code)), nil
}

// Group implements WordProvider.
func (j *japanese) Group(value int, _ GrammaticalContext) ([]string, error) {
	if value < 1 || value > 9999 {
		return nil, fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, value)
	}

	var out []string
	for place, div := 3, 1000; place >= 0; place, div = place-1, div/10 {
		d := value / div % 10
		switch {
		case d == 0:
		case place == 0:
			out = append(out, j.digits[d])
		case d == 1:
			out = append(out, j.places[place])
		default:
			out = append(out, j.digits[d]+j.places[place])
		}
	}
	return out, nil
}
