// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolP("no-audit", "A", false, "Skip the contrast audit and only check structural validity")
	validateCmd.Flags().Float64P("min-ratio", "m", 0, "Minimum contrast ratio to enforce (0 uses the configured value)")
	validateCmd.SetOut(os.Stdout)
}

// validateCmd checks a theme document for structural and accessibility problems.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a theme document and audit its contrast",
	Long: `Load a TOML or Lua theme document, compile it, and report problems.

Compilation fails on missing classes, unknown interaction states and
attribute values referencing undefined tokens. Unless disabled, text and
background pairs are then audited against the configured WCAG contrast ratio.`,
	Example: "  tinct validate ~/.config/tinct/themes/solarized.toml",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := theme.LoadFile(args[0])
		handleErr(err)

		cmd.Printf("%s %s compiles: %s, %s\n",
			icon.Get(icon.Success),
			style.Bold(t.Name),
			util.Quantify(t.Tokens().Len(), "token", "tokens"),
			util.Quantify(len(t.Resolver().Rules()), "rule", "rules"),
		)

		if lo.Must(cmd.Flags().GetBool("no-audit")) || !viper.GetBool(key.ContrastAudit) {
			return
		}

		minRatio := lo.Must(cmd.Flags().GetFloat64("min-ratio"))
		if minRatio == 0 {
			minRatio = viper.GetFloat64(key.ContrastMinimumRatio)
		}

		findings := theme.Audit(t, minRatio)
		if len(findings) == 0 {
			cmd.Printf("%s all text passes %.1f:1 contrast\n", icon.Get(icon.Contrast), minRatio)
			return
		}

		for _, finding := range findings {
			cmd.Printf("%s %s\n", icon.Get(icon.Warning), finding)
		}

		handleErr(fmt.Errorf(
			"%s below the %.1f:1 contrast minimum",
			util.Quantify(len(findings), "selector is", "selectors are"),
			minRatio,
		))
	},
}
