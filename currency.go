package num2text

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// resolveCurrency completes the currency record for a rendering: the code
// comes from the options or the locale default, precision and symbol from
// currency metadata, unit words from the lexicon. Explicit fields in
// opts.Currency win.
func (c *composer) resolveCurrency(opts Options) (Currency, error) {
	var explicit Currency
	if opts.Currency != nil {
		explicit = *opts.Currency
	}

	code := strings.ToUpper(strings.TrimSpace(explicit.Code))
	if code == "" {
		code = strings.ToUpper(strings.TrimSpace(opts.CurrencyCode))
	}
	if code == "" && c.culture != nil {
		if def, err := c.culture.GetCurrencyCode(c.lex.Code); err == nil {
			code = def
		}
	}

	cur := Currency{Code: code, MinorDigits: 2}
	if code != "" && c.culture != nil {
		if info, err := c.culture.GetCurrency(c.lex.Code, code); err == nil {
			cur.Symbol = info.Symbol
			cur.MinorDigits = info.MinorDigits
		}
	}
	if names, ok := c.lex.Currencies[code]; ok {
		cur.Major = names.Major
		cur.Minor = names.Minor
	}

	if explicit.Symbol != "" {
		cur.Symbol = explicit.Symbol
	}
	if explicit.minorSet {
		cur.MinorDigits = explicit.MinorDigits
	}
	cur.Major = overlayUnit(cur.Major, explicit.Major)
	cur.Minor = overlayUnit(cur.Minor, explicit.Minor)

	if len(cur.Major.Forms) == 0 {
		return Currency{}, lookupMiss(c.lex.Code, "currency", code)
	}
	if cur.MinorDigits > 0 && len(cur.Minor.Forms) == 0 {
		return Currency{}, lookupMiss(c.lex.Code, "minor currency unit", code)
	}
	if cur.MinorDigits < 0 || cur.MinorDigits > 8 {
		return Currency{}, fmt.Errorf("num2text: %s: minor digits %d out of range", code, cur.MinorDigits)
	}
	return cur, nil
}

func overlayUnit(base, overlay UnitWords) UnitWords {
	if overlay.Gender != GenderUnspecified {
		base.Gender = overlay.Gender
	}
	if len(overlay.Forms) > 0 {
		forms := base.Forms.clone()
		if forms == nil {
			forms = make(Forms, len(overlay.Forms))
		}
		for k, v := range overlay.Forms {
			forms[k] = v
		}
		base.Forms = forms
	}
	return base
}

// splitAmount rounds the absolute value of num to the currency precision
// and returns the major and minor unit counts.
func splitAmount(num CanonicalNumber, minorDigits int) (major, minor *big.Int, err error) {
	amount, err := decimal.NewFromString(strings.TrimPrefix(num.String(), "-"))
	if err != nil {
		return nil, nil, err
	}
	rounded := amount.Round(int32(minorDigits))
	whole := rounded.Truncate(0)
	major = whole.BigInt()
	minor = rounded.Sub(whole).Shift(int32(minorDigits)).BigInt()
	return major, minor, nil
}

// currency renders an amount as major units and, when non-zero, minor units.
func (c *composer) currency(num CanonicalNumber, opts Options) (string, error) {
	cur, err := c.resolveCurrency(opts)
	if err != nil {
		return "", err
	}

	major, minor, err := splitAmount(num, cur.MinorDigits)
	if err != nil {
		return "", err
	}

	majorText, err := c.countUnit(major, RoleCurrencyMajor, cur.Major)
	if err != nil {
		return "", err
	}
	out := spaced(majorText)

	if cur.MinorDigits > 0 && (minor.Sign() != 0 || opts.ShowZeroMinor) {
		minorText, err := c.countUnit(minor, RoleCurrencyMinor, cur.Minor)
		if err != nil {
			return "", err
		}
		minorPart := phrase{{text: minorText}}
		if join := c.lex.OptionalToken(TokenCurrencyJoin); join != "" {
			out, minorPart = c.conjoin(out, minorPart, join)
		}
		out = append(out, minorPart...)
	}

	negative := num.Negative && (major.Sign() != 0 || minor.Sign() != 0)
	return c.signed(negative, out.join(c.glued()), opts)
}

// countUnit renders amount followed by the agreeing unit word.
func (c *composer) countUnit(amount *big.Int, role Role, unit UnitWords) (string, error) {
	numeral, ctx, err := c.cardinal(amount, role, unit.Gender)
	if err != nil {
		return "", err
	}
	word, ok := unit.Forms.Variant(ctx.Class)
	if !ok {
		return "", lookupMiss(c.lex.Code, "currency form", string(ctx.Class))
	}
	text := numeral.join(c.glued())
	if linker, ok := c.loc.Words.(UnitLinker); ok {
		return linker.LinkUnit(amount, text, word, ctx), nil
	}
	return phrase{{text: text}, {text: word}}.join(c.glued()), nil
}
