// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"errors"
	"fmt"
	"os"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/token"
)

func errUnknownToken(t *theme.Theme, name string) error {
	closest := lo.MinBy(t.Tokens().Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	msg := fmt.Sprintf(
		"unknown token %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

func completionTokenNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return theme.Active().Tokens().Names(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolP("raw", "r", false, "Suppress swatches and kind annotations in the output")
	tokensCmd.SetOut(os.Stdout)
}

// tokensCmd displays the token palette of the active theme.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Display the token palette of the active theme",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			raw = lo.Must(cmd.Flags().GetBool("raw"))
			t   = theme.Active()
		)

		for _, name := range t.Tokens().Names() {
			value, _ := t.Tokens().Resolve(name)

			if raw {
				cmd.Printf("%s=%s\n", name, value.Raw)
				continue
			}

			cmd.Printf("%s %s %s %s\n",
				tokenSwatch(value),
				style.Bold(name),
				value.Raw,
				style.Faint(value.Kind.String()),
			)
		}
	},
}

func init() {
	tokensCmd.AddCommand(tokensGetCmd)
}

// tokensGetCmd resolves a single token by name.
var tokensGetCmd = &cobra.Command{
	Use:               "get [name]",
	Short:             "Resolve a single palette token by name",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionTokenNames,
	Run: func(cmd *cobra.Command, args []string) {
		t := theme.Active()

		value, err := t.Tokens().Resolve(args[0])
		if err != nil {
			handleErr(errUnknownToken(t, args[0]))
		}

		fmt.Println(value.Raw)
	},
}

func tokenSwatch(value token.Value) string {
	if c, ok := value.Color().Get(); ok {
		return style.Swatch(c.Lipgloss())
	}

	return "   "
}
