package num2text

// PluralCategory is the numeral class selected for a quantity. Scale words,
// currency units and agreeing numerals pick their form by category.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

var pluralCategories = []PluralCategory{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}

// Gender of the counted noun.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMasculine   Gender = "masculine"
	GenderFeminine    Gender = "feminine"
	GenderNeuter      Gender = "neuter"
)

// Role tells the selector and provider what a numeral is counting.
type Role string

const (
	RoleCardinal      Role = "cardinal"
	RoleCurrencyMajor Role = "currency-major"
	RoleCurrencyMinor Role = "currency-minor"
	RoleYear          Role = "year"
)

// GrammaticalContext is the agreement information passed to a word
// provider when rendering one group.
type GrammaticalContext struct {
	Gender Gender
	Class  PluralCategory
	Role   Role
	Level  int
}

// Attributive reports whether the numeral stands before a noun (a scale word
// or a unit) rather than alone.
func (c GrammaticalContext) Attributive() bool {
	return c.Level > 0 || c.Role == RoleCurrencyMajor || c.Role == RoleCurrencyMinor
}

// Forms maps numeral classes to word forms.
type Forms map[PluralCategory]string

// Variant returns the form for category, falling back to PluralOther.
func (f Forms) Variant(category PluralCategory) (string, bool) {
	if len(f) == 0 {
		return "", false
	}
	if form, ok := f[category]; ok && form != "" {
		return form, true
	}
	form, ok := f[PluralOther]
	return form, ok && form != ""
}

func (f Forms) clone() Forms {
	if f == nil {
		return nil
	}
	out := make(Forms, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Mode selects how the dispatcher renders a value.
type Mode int

const (
	ModePlain Mode = iota
	ModeCurrency
	ModeYear
	ModeOrdinal
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeCurrency:
		return "currency"
	case ModeYear:
		return "year"
	case ModeOrdinal:
		return "ordinal"
	default:
		return "unknown"
	}
}

// DecimalStyle picks the word read between the integer and fraction parts.
type DecimalStyle int

const (
	DecimalDefault DecimalStyle = iota
	DecimalPoint
	DecimalComma
	DecimalPeriod
)

// FractionStyle picks how fraction digits are read.
type FractionStyle int

const (
	// FractionDigits reads each digit on its own.
	FractionDigits FractionStyle = iota
	// FractionInteger reads the digit string as one integer, with leading
	// zeros read one by one.
	FractionInteger
	// FractionRatio reads the fraction as a count over a power of ten, when
	// the locale supports it. Other locales read digits.
	FractionRatio
)

// Options controls a single rendering.
type Options struct {
	Mode           Mode
	NegativePrefix string
	DecimalStyle   DecimalStyle
	FractionStyle  FractionStyle
	EraSuffix      bool
	Currency       *Currency
	CurrencyCode   string
	ShowZeroMinor  bool
	Gender         Gender
}

// UnitWords names one currency unit.
type UnitWords struct {
	Gender Gender `yaml:"gender" json:"gender" toml:"gender"`
	Forms  Forms  `yaml:"forms" json:"forms" toml:"forms"`
}

// Currency describes the unit pair used in currency mode. Empty fields are
// completed from the locale lexicon and currency metadata.
type Currency struct {
	Code        string
	Symbol      string
	MinorDigits int
	Major       UnitWords
	Minor       UnitWords
	minorSet    bool
}

// WithMinorDigits returns a copy of c with an explicit minor unit precision.
// Zero means the currency has no minor unit.
func (c Currency) WithMinorDigits(digits int) Currency {
	c.MinorDigits = digits
	c.minorSet = true
	return c
}
