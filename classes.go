package num2text

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// ClassRequest is the input of a numeral-class selector. Value is the lowest
// plain group of the quantity; Compound is set when higher digits are
// non-zero (1001 selects like 1 in Slavic languages, like 1001 in English).
type ClassRequest struct {
	Value    int
	Level    int
	Role     Role
	Gender   Gender
	Compound bool
}

// ClassSelector picks the grammatical context for one group. Implementations
// must be pure.
type ClassSelector interface {
	Classify(req ClassRequest) GrammaticalContext
}

// ClassifierFunc adapts a function to ClassSelector.
type ClassifierFunc func(req ClassRequest) GrammaticalContext

// Classify implements ClassSelector.
func (fn ClassifierFunc) Classify(req ClassRequest) GrammaticalContext {
	return fn(req)
}

// compoundOffset is added to a compound value before CLDR matching. It keeps
// the value's residues mod 10, 100 and 1000 while making it large.
const compoundOffset = 1000000

func contextFor(req ClassRequest, class PluralCategory) GrammaticalContext {
	return GrammaticalContext{
		Gender: req.Gender,
		Class:  class,
		Role:   req.Role,
		Level:  req.Level,
	}
}

// CLDRSelector selects classes with the CLDR cardinal rules of a language.
type CLDRSelector struct {
	Tag language.Tag
}

// NewCLDRSelector returns a selector for locale, or for the root language
// when locale does not parse.
func NewCLDRSelector(locale string) CLDRSelector {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return CLDRSelector{Tag: tag}
}

// Classify implements ClassSelector.
func (s CLDRSelector) Classify(req ClassRequest) GrammaticalContext {
	return contextFor(req, cldrClass(s.Tag, req.Value, req.Compound))
}

func cldrClass(tag language.Tag, value int, compound bool) PluralCategory {
	if compound {
		value += compoundOffset
	}
	return categoryFromForm(plural.Cardinal.MatchPlural(tag, value, 0, 0, 0, 0))
}

func categoryFromForm(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// SlavicSelector implements the one/few/many split on the last two digits
// used by East Slavic languages.
var SlavicSelector = ClassifierFunc(func(req ClassRequest) GrammaticalContext {
	return contextFor(req, slavicClass(req.Value))
})

func slavicClass(n int) PluralCategory {
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// DualSelector implements the six-way split with a dual used by Arabic.
var DualSelector = ClassifierFunc(func(req ClassRequest) GrammaticalContext {
	return contextFor(req, dualClass(req.Value, req.Compound))
})

func dualClass(n int, compound bool) PluralCategory {
	if !compound {
		switch n {
		case 0:
			return PluralZero
		case 1:
			return PluralOne
		case 2:
			return PluralTwo
		}
	}
	switch mod100 := n % 100; {
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	default:
		return PluralOther
	}
}

// SingleFormSelector always selects PluralOther.
var SingleFormSelector = ClassifierFunc(func(req ClassRequest) GrammaticalContext {
	return contextFor(req, PluralOther)
})
