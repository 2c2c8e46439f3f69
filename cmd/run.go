// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

// runCmd facilitates the execution of local Lua theme scripts for development and debugging.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a local Lua theme script",
	Long: `Initialize the Lua 5.1 virtual machine to execute a specified theme script
and compile its result. Useful for theme development and debugging.`,
	Args:    cobra.ExactArgs(1),
	Example: "  tinct run ./solarized.lua",
	Run: func(cmd *cobra.Command, args []string) {
		t, err := theme.LoadFile(args[0])
		handleErr(err)

		cmd.Printf("%s: %s, %s\n",
			t.Name,
			util.Quantify(t.Tokens().Len(), "token", "tokens"),
			util.Quantify(len(t.Resolver().Rules()), "rule", "rules"),
		)
	},
}
