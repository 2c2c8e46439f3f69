// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/inline"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/query"
	"github.com/tinct-cli/tinct/theme"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("states", "s", "all", "Interaction states to resolve for (all, default, or a comma separated list)")
	resolveCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	resolveCmd.Flags().Float64P("scale", "x", 0, "Multiply pixel metrics by a factor (0 uses the configured ui.scale)")
	resolveCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("states", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		suggestions := []string{"all", "default"}
		for _, state := range cascade.States() {
			suggestions = append(suggestions, state.String())
		}
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}))
}

// resolveCmd runs the cascade for a selector in non-interactive, scriptable mode.
var resolveCmd = &cobra.Command{
	Use:   "resolve [selector]",
	Short: "Resolve the styling attributes a selector receives under the active theme",
	Long: `Run the full cascade for a widget selector and print the resulting attribute set.

Selectors use stylesheet notation:
  Button                    - a widget class
  Button#startButton        - a specific widget instance
  Button#startButton:hover  - an instance in a given interaction state

A selector without an explicit state is resolved for every interaction state,
subject to the --states filter. More specific rules override less specific
ones; ties are broken by declaration order.`,
	Example: "  tinct resolve 'Button#startButton:hover' --json",
	Args:    cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		selector, err := cascade.ParseSelector(args[0])
		handleErr(err)

		statesFilter, err := inline.ParseStatesFilter(lo.Must(cmd.Flags().GetString("states")))
		handleErr(err)

		scale := lo.Must(cmd.Flags().GetFloat64("scale"))
		if scale == 0 {
			scale = viper.GetFloat64(key.UIScale)
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		_ = query.Remember(selector.String(), 1)

		options := &inline.Options{
			Out:      writer,
			Theme:    theme.Active(),
			Selector: selector,
			States:   statesFilter,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Scale:    scale,
		}

		handleErr(inline.Run(options))
	},
}
