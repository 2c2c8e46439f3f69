// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/constant"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/log"
	"github.com/tinct-cli/tinct/mini"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/tui"
	"github.com/tinct-cli/tinct/util"
	"github.com/tinct-cli/tinct/version"
	"github.com/tinct-cli/tinct/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "T", "", "Preview a specific theme instead of the active one")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", completionThemeNames))
	lo.Must0(viper.BindPFlag(key.ThemeDefault, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.Flags().BoolP("static", "s", false, "Print a one-shot gallery instead of launching the interactive preview")
	rootCmd.Flags().BoolP("playground", "p", false, "Open the selector playground directly")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the tinct application.
var rootCmd = &cobra.Command{
	Use:   constant.Tinct,
	Short: "A theme and widget styling toolkit for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Preview, resolve and audit widget themes from the comfort of your terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		active := theme.Active()

		if lo.Must(cmd.Flags().GetBool("static")) {
			handleErr(mini.Run(&mini.Options{Theme: active}))
			return
		}

		options := tui.Options{
			Query: lo.Must(cmd.Flags().GetBool("playground")),
		}
		if cmd.Flags().Changed("theme") {
			options.Theme = active
		}
		handleErr(tui.Run(&options))
	},
}

func completionThemeNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := lo.Map(theme.All(), func(t *theme.Theme, _ int) string {
		return t.Name
	})

	return names, cobra.ShellCompDirectiveNoFileComp
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
