package num2text

// Speller spells a value in a given locale.
type Speller interface {
	Spell(locale string, value any, opts Options) (string, error)
}

// SpellerFunc adapts a function to Speller.
type SpellerFunc func(locale string, value any, opts Options) (string, error)

// Spell implements Speller.
func (fn SpellerFunc) Spell(locale string, value any, opts Options) (string, error) {
	return fn(locale, value, opts)
}
