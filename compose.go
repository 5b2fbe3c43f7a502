package num2text

import (
	"fmt"
	"math/big"
	"strings"
)

// token is one output word. glue attaches it to the previous token.
type token struct {
	text string
	glue bool
}

type phrase []token

func spaced(words ...string) phrase {
	out := make(phrase, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, token{text: w})
	}
	return out
}

func (p phrase) join(glued bool) string {
	var b strings.Builder
	for _, t := range p {
		if t.text == "" {
			continue
		}
		if b.Len() > 0 && !t.glue && !glued {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// composer turns canonical numbers into phrases for one locale.
type composer struct {
	loc     *Locale
	lex     *Lexicon
	culture CultureService
}

func (c *composer) glued() bool {
	return c.lex.Glued()
}

func (c *composer) classify(req ClassRequest) GrammaticalContext {
	ctx := c.loc.Classes.Classify(req)
	if ctx.Class == "" {
		ctx.Class = PluralOther
	}
	return ctx
}

// cardinal renders n (sign ignored) and returns the context that a following
// noun agrees with.
func (c *composer) cardinal(n *big.Int, role Role, gender Gender) (phrase, GrammaticalContext, error) {
	groups := c.loc.Magnitude.Decompose(n)

	units := groups[len(groups)-1]
	compound := false
	for _, g := range groups[:len(groups)-1] {
		if !g.IsZero() {
			compound = true
			break
		}
	}
	ctx := c.classify(ClassRequest{
		Value:    units.Value,
		Level:    0,
		Role:     role,
		Gender:   gender,
		Compound: compound,
	})

	if n.Sign() == 0 {
		zero, err := c.lex.Token(TokenZero)
		if err != nil {
			return nil, ctx, err
		}
		return spaced(zero), ctx, nil
	}

	body, err := c.groups(groups, 0, role, gender)
	if err != nil {
		return nil, ctx, err
	}
	return body, ctx, nil
}

// cardinalText is the CardinalFunc handed to provider hooks.
func (c *composer) cardinalText(n *big.Int, role Role, gender Gender) (string, error) {
	p, _, err := c.cardinal(n, role, gender)
	if err != nil {
		return "", err
	}
	return p.join(c.glued()), nil
}

// groups renders decomposed groups. base is the level that the units group
// of this decomposition stands for: 0 at the top, the enclosing scale level
// inside a nested tier.
func (c *composer) groups(groups []NumberGroup, base int, role Role, gender Gender) (phrase, error) {
	var (
		out      phrase
		attach   bool
		rendered bool
	)

	for _, g := range groups {
		if g.IsZero() {
			continue
		}

		level := g.Level
		ctxLevel, groupRole, groupGender := base, role, gender
		var scale ScaleWord
		if level > 0 {
			key := c.loc.Magnitude.Scales[level]
			var err error
			if scale, err = c.lex.Scale(key); err != nil {
				return nil, err
			}
			ctxLevel, groupRole, groupGender = level, RoleCardinal, scale.Gender
		}

		ctx := c.classify(ClassRequest{
			Value:    g.Lowest(),
			Level:    ctxLevel,
			Role:     groupRole,
			Gender:   groupGender,
			Compound: g.Compound(),
		})

		var part phrase
		switch {
		case g.Nested != nil:
			nested, err := c.groups(g.Nested, ctxLevel, groupRole, groupGender)
			if err != nil {
				return nil, err
			}
			part = nested
		case level > 0 && scale.IsBare(ctx.Class):
		default:
			words, err := c.loc.Words.Group(g.Value, ctx)
			if err != nil {
				return nil, err
			}
			part = spaced(words...)
		}

		if level > 0 {
			form, ok := scale.Forms.Variant(ctx.Class)
			if !ok {
				return nil, lookupMiss(c.lex.Code, "scale form", fmt.Sprintf("%s/%s", c.loc.Magnitude.Scales[level], ctx.Class))
			}
			part = append(part, token{text: form, glue: scale.Attach && len(part) > 0})
		}
		if len(part) == 0 {
			return nil, lookupMiss(c.lex.Code, "group", fmt.Sprint(g.Value))
		}

		if rendered {
			if attach {
				part[0].glue = true
			} else {
				out, part = c.joinGroups(out, part, g)
			}
		}
		out = append(out, part...)
		attach = level > 0 && scale.Attach
		rendered = true
	}
	return out, nil
}

// joinGroups inserts the separator between out and part, the rendering of
// group g.
func (c *composer) joinGroups(out, part phrase, g NumberGroup) (phrase, phrase) {
	if final := c.lex.OptionalToken(TokenFinalJoin); final != "" && g.Level == 0 && g.Nested == nil && g.Value < 100 {
		return c.conjoin(out, part, final)
	}
	if sep := c.lex.OptionalToken(TokenGroupSeparator); sep != "" && len(out) > 0 {
		out[len(out)-1].text += sep
	}
	if join := c.lex.OptionalToken(TokenGroupJoin); join != "" {
		out, part = c.conjoin(out, part, join)
	}
	return out, part
}

// conjoin places a conjunction before part, either as its own word or
// written onto part's first word.
func (c *composer) conjoin(out, part phrase, word string) (phrase, phrase) {
	if c.lex.PrefixConjunction() && len(part) > 0 {
		part[0].text = word + part[0].text
		return out, part
	}
	return append(out, token{text: word}), part
}

func (c *composer) separatorWord(style DecimalStyle) (string, error) {
	key := TokenPoint
	switch style {
	case DecimalComma:
		key = TokenComma
	case DecimalPeriod:
		key = TokenPeriod
	case DecimalDefault:
		switch c.lex.Decimal {
		case "comma":
			key = TokenComma
		case "period":
			key = TokenPeriod
		}
	}
	if key == TokenPeriod {
		if word := c.lex.OptionalToken(TokenPeriod); word != "" {
			return word, nil
		}
		key = TokenPoint
	}
	return c.lex.Token(key)
}

func (c *composer) digitWord(d int) (string, error) {
	if d == 0 {
		return c.lex.Token(TokenZero)
	}
	ctx := c.classify(ClassRequest{Value: d, Role: RoleCardinal})
	words, err := c.loc.Words.Group(d, ctx)
	if err != nil {
		return "", err
	}
	return spaced(words...).join(c.glued()), nil
}

// fraction renders the separator word and the fraction digits.
func (c *composer) fraction(digits string, opts Options) (phrase, error) {
	sep, err := c.separatorWord(opts.DecimalStyle)
	if err != nil {
		return nil, err
	}
	out := spaced(sep)

	if opts.FractionStyle == FractionInteger {
		rest := strings.TrimLeft(digits, "0")
		for i := 0; i < len(digits)-len(rest); i++ {
			zero, err := c.lex.Token(TokenZero)
			if err != nil {
				return nil, err
			}
			out = append(out, token{text: zero})
		}
		if rest != "" {
			n, _ := new(big.Int).SetString(rest, 10)
			body, _, err := c.cardinal(n, RoleCardinal, GenderUnspecified)
			if err != nil {
				return nil, err
			}
			out = append(out, body...)
		}
		return out, nil
	}

	for _, r := range digits {
		word, err := c.digitWord(int(r - '0'))
		if err != nil {
			return nil, err
		}
		out = append(out, token{text: word})
	}
	return out, nil
}

// plain renders a finite number without a unit.
func (c *composer) plain(num CanonicalNumber, opts Options) (string, error) {
	integer := num.IntegerValue()

	if num.Fraction != "" && opts.FractionStyle == FractionRatio {
		if ratio, ok := c.loc.Words.(RatioSpeller); ok {
			body, err := ratio.SpellRatio(integer, num.Fraction, c.cardinalText)
			if err != nil {
				return "", err
			}
			return c.signed(num.Negative, body, opts)
		}
	}

	body, _, err := c.cardinal(integer, RoleCardinal, opts.Gender)
	if err != nil {
		return "", err
	}
	if num.Fraction != "" {
		frac, err := c.fraction(num.Fraction, opts)
		if err != nil {
			return "", err
		}
		body = append(body, frac...)
	}
	return c.signed(num.Negative, body.join(c.glued()), opts)
}

// signed prefixes the negative word. The prefix is always followed by a
// space, even in locales written without spaces.
func (c *composer) signed(negative bool, body string, opts Options) (string, error) {
	if !negative {
		return body, nil
	}
	prefix, err := c.negativeWord(opts)
	if err != nil {
		return "", err
	}
	return prefix + " " + body, nil
}

func (c *composer) negativeWord(opts Options) (string, error) {
	if opts.NegativePrefix != "" {
		return opts.NegativePrefix, nil
	}
	return c.lex.Token(TokenNegative)
}

// special renders NaN and the infinities.
func (c *composer) special(s Special, opts Options) (string, error) {
	switch s {
	case SpecialNaN:
		return c.lex.Token(TokenNaN)
	case SpecialPositiveInfinity:
		return c.lex.Token(TokenInfinity)
	case SpecialNegativeInfinity:
		if opts.NegativePrefix == "" {
			if word := c.lex.OptionalToken(TokenNegativeInfinity); word != "" {
				return word, nil
			}
		}
		inf, err := c.lex.Token(TokenInfinity)
		if err != nil {
			return "", err
		}
		return c.signed(true, inf, opts)
	default:
		return "", fmt.Errorf("num2text: not a special value: %v", s)
	}
}

// year renders a whole number as a calendar year with an optional era.
func (c *composer) year(num CanonicalNumber, opts Options) (string, error) {
	if !num.IsWhole() {
		return "", notInteger(num.String())
	}
	y := num.IntegerValue()

	var body string
	handled := false
	if speller, ok := c.loc.Words.(YearSpeller); ok {
		text, ok, err := speller.SpellYear(y, c.cardinalText)
		if err != nil {
			return "", err
		}
		body, handled = text, ok
	}
	if !handled {
		text, err := c.cardinalText(y, RoleYear, GenderUnspecified)
		if err != nil {
			return "", err
		}
		body = text
	}

	out := spaced(body)
	if suffix := c.lex.OptionalToken(TokenYearSuffix); suffix != "" {
		out = append(out, token{text: suffix})
	}

	var era string
	switch {
	case num.Negative:
		word, err := c.lex.Token(TokenEraBC)
		if err != nil {
			return "", err
		}
		era = word
	case opts.EraSuffix:
		word, err := c.lex.Token(TokenEraAD)
		if err != nil {
			return "", err
		}
		era = word
	}
	if era != "" {
		if c.lex.Era == EraPrefix {
			out = append(spaced(era), out...)
		} else {
			out = append(out, token{text: era})
		}
	}
	return out.join(c.glued()), nil
}

// ordinal renders a whole number as an ordinal.
func (c *composer) ordinal(num CanonicalNumber, opts Options) (string, error) {
	speller, ok := c.loc.Words.(OrdinalSpeller)
	if !ok {
		return "", fmt.Errorf("%w: %s does not read ordinals", ErrUnsupportedMode, c.lex.Code)
	}
	if !num.IsWhole() {
		return "", notInteger(num.String())
	}
	body, err := speller.SpellOrdinal(num.IntegerValue(), opts.Gender, c.cardinalText)
	if err != nil {
		return "", err
	}
	return c.signed(num.Negative, body, opts)
}
