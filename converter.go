package num2text

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Converter renders numbers for one bound locale. It holds no mutable
// state and is safe for concurrent use.
type Converter struct {
	locale       *Locale
	compose      composer
	fallbackText *string
	hooks        []ConversionHook
	logger       *zap.Logger
}

func newConverter(loc *Locale, culture CultureService, fallbackText *string, hooks []ConversionHook, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		locale:       loc,
		compose:      composer{loc: loc, lex: loc.Lexicon, culture: culture},
		fallbackText: fallbackText,
		hooks:        hooks,
		logger:       logger.With(zap.String("locale", loc.Code)),
	}
}

// Code returns the locale code the converter is bound to.
func (c *Converter) Code() string {
	return c.locale.Code
}

// Locale returns the bound locale.
func (c *Converter) Locale() *Locale {
	return c.locale
}

// Render converts value and reports failures as errors. NaN and infinities
// render as locale tokens without error.
func (c *Converter) Render(value any, opts Options) (string, error) {
	out, _, err := c.run(value, opts)
	return out, err
}

// Convert converts value and never fails: errors and NaN are replaced by
// the configured fallback text, or by the locale's not-a-number word when no
// fallback was configured. Infinities always render as tokens.
func (c *Converter) Convert(value any, opts Options) string {
	out, special, err := c.run(value, opts)
	if err == nil {
		if special == SpecialNaN && c.fallbackText != nil {
			return *c.fallbackText
		}
		return out
	}
	return c.recover(value, opts, err)
}

func (c *Converter) run(value any, opts Options) (string, Special, error) {
	if len(c.hooks) == 0 {
		return c.render(value, opts)
	}

	ctx := &ConversionContext{
		Locale:  c.locale.Code,
		Value:   value,
		Options: opts,
	}
	for _, hook := range c.hooks {
		hook.BeforeConvert(ctx)
	}

	ctx.Result, ctx.Special, ctx.Error = c.render(ctx.Value, ctx.Options)

	for _, hook := range c.hooks {
		hook.AfterConvert(ctx)
	}
	return ctx.Result, ctx.Special, ctx.Error
}

func (c *Converter) render(value any, opts Options) (string, Special, error) {
	num, err := Normalize(value)
	if err != nil {
		return "", SpecialNone, err
	}
	if num.IsSpecial() {
		out, err := c.compose.special(num.Special, opts)
		return out, num.Special, err
	}

	var out string
	switch opts.Mode {
	case ModePlain:
		out, err = c.compose.plain(num, opts)
	case ModeCurrency:
		out, err = c.compose.currency(num, opts)
	case ModeYear:
		out, err = c.compose.year(num, opts)
	case ModeOrdinal:
		out, err = c.compose.ordinal(num, opts)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedMode, opts.Mode)
	}
	return out, SpecialNone, err
}

func (c *Converter) recover(value any, opts Options, err error) string {
	switch {
	case errors.Is(err, ErrNotNumeric), errors.Is(err, ErrNotInteger), errors.Is(err, ErrOutOfRange), errors.Is(err, ErrUnsupportedMode):
		c.logger.Debug("num2text: input rejected",
			zap.String("mode", opts.Mode.String()),
			zap.String("value_type", fmt.Sprintf("%T", value)),
			zap.Error(err))
	default:
		c.logger.Error("num2text: locale table defect",
			zap.String("mode", opts.Mode.String()),
			zap.Error(err))
	}

	if c.fallbackText != nil {
		return *c.fallbackText
	}
	nan, tokenErr := c.compose.lex.Token(TokenNaN)
	if tokenErr != nil {
		return ""
	}
	return nan
}
