package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	num2text "github.com/rahmat412/num2text-sub006"
)

func newLocalesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the bound locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.registry()
			if err != nil {
				return err
			}
			catalog := registry.Catalog()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tGROUP\tCURRENCY\tFEATURES")
			for _, code := range catalog.AllLocaleCodes() {
				meta, _ := catalog.Locale(code)
				marker := ""
				if code == catalog.DefaultLocale() {
					marker = " *"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%d\t%s\t%s\n",
					code, marker, meta.DisplayName, meta.GroupSize, meta.Currency, features(meta.Capabilities))
			}
			return w.Flush()
		},
	}
}

func features(c num2text.Capabilities) string {
	var out []string
	if c.Ordinals {
		out = append(out, "ordinal")
	}
	if c.Years {
		out = append(out, "year")
	}
	if c.Ratios {
		out = append(out, "ratio")
	}
	if c.UnitLinking {
		out = append(out, "unit-linking")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}
