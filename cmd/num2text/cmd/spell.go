package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	num2text "github.com/rahmat412/num2text-sub006"
)

type spellFlags struct {
	locale        string
	mode          string
	currency      string
	decimal       string
	fraction      string
	gender        string
	negative      string
	era           bool
	showZeroMinor bool
	lenient       bool
}

func newSpellCommand(a *app) *cobra.Command {
	f := &spellFlags{}

	cmd := &cobra.Command{
		Use:   "spell [value...]",
		Short: "Spell one or more values",
		Long: `Spell each value as words. Without arguments, values are read from
standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}

			registry, err := a.registry()
			if err != nil {
				return err
			}
			conv, err := registry.Bind(f.locale)
			if err != nil {
				return err
			}

			values := args
			if len(values) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						values = append(values, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, value := range values {
				if f.lenient {
					fmt.Fprintln(out, conv.Convert(value, opts))
					continue
				}
				text, err := conv.Render(value, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", value, err)
				}
				fmt.Fprintln(out, text)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.locale, "locale", "l", "", "locale code (default from config)")
	flags.StringVarP(&f.mode, "mode", "m", "plain", "plain, currency, year or ordinal")
	flags.StringVarP(&f.currency, "currency", "c", "", "ISO 4217 code for currency mode")
	flags.StringVar(&f.decimal, "decimal", "default", "decimal word: default, point, comma or period")
	flags.StringVar(&f.fraction, "fraction", "digits", "fraction reading: digits, integer or ratio")
	flags.StringVar(&f.gender, "gender", "", "gender of the counted noun: masculine, feminine or neuter")
	flags.StringVar(&f.negative, "negative", "", "override the negative word")
	flags.BoolVar(&f.era, "era", false, "append the era marker to positive years")
	flags.BoolVar(&f.showZeroMinor, "show-zero-minor", false, "spell a zero minor unit in currency mode")
	flags.BoolVar(&f.lenient, "lenient", false, "print the fallback text instead of failing")
	return cmd
}

func (f *spellFlags) options() (num2text.Options, error) {
	opts := num2text.Options{
		CurrencyCode:   f.currency,
		NegativePrefix: f.negative,
		EraSuffix:      f.era,
		ShowZeroMinor:  f.showZeroMinor,
		Gender:         num2text.Gender(f.gender),
	}

	switch f.mode {
	case "", "plain":
		opts.Mode = num2text.ModePlain
	case "currency":
		opts.Mode = num2text.ModeCurrency
	case "year":
		opts.Mode = num2text.ModeYear
	case "ordinal":
		opts.Mode = num2text.ModeOrdinal
	default:
		return opts, fmt.Errorf("unknown mode %q", f.mode)
	}

	switch f.decimal {
	case "", "default":
		opts.DecimalStyle = num2text.DecimalDefault
	case "point":
		opts.DecimalStyle = num2text.DecimalPoint
	case "comma":
		opts.DecimalStyle = num2text.DecimalComma
	case "period":
		opts.DecimalStyle = num2text.DecimalPeriod
	default:
		return opts, fmt.Errorf("unknown decimal style %q", f.decimal)
	}

	switch f.fraction {
	case "", "digits":
		opts.FractionStyle = num2text.FractionDigits
	case "integer":
		opts.FractionStyle = num2text.FractionInteger
	case "ratio":
		opts.FractionStyle = num2text.FractionRatio
	default:
		return opts, fmt.Errorf("unknown fraction style %q", f.fraction)
	}

	switch opts.Gender {
	case num2text.GenderUnspecified, num2text.GenderMasculine, num2text.GenderFeminine, num2text.GenderNeuter:
	default:
		return opts, fmt.Errorf("unknown gender %q", f.gender)
	}
	return opts, nil
}
