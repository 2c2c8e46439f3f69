// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/constant"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
	"github.com/tinct-cli/tinct/where"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

// themesCmd provides a parent command for managing built-in and custom themes.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage built-in and custom themes",
}

func init() {
	themesCmd.AddCommand(themesListCmd)

	themesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	themesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom themes")
	themesListCmd.Flags().BoolP("builtin", "b", false, "Display only built-in themes")

	themesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	themesListCmd.SetOut(os.Stdout)
}

// themesListCmd displays a summary of all registered themes.
var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered themes",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		active := theme.Active()

		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printOne := func(t *theme.Theme) {
			if printHeader && t.Name == active.Name {
				cmd.Printf("%s %s\n", t.Name, style.Fg(color.Green)("(active)"))
				return
			}
			cmd.Println(t.Name)
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, t := range theme.Builtins() {
				printOne(t)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, t := range theme.Customs() {
				printOne(t)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	themesCmd.AddCommand(themesUseCmd)
}

// themesUseCmd persists a theme as the application default.
var themesUseCmd = &cobra.Command{
	Use:               "use [name]",
	Short:             "Set the default theme",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionThemeNames,
	Run: func(cmd *cobra.Command, args []string) {
		var name string

		if len(args) == 1 {
			name = args[0]
		} else {
			names := lo.Map(theme.All(), func(t *theme.Theme, _ int) string {
				return t.Name
			})

			prompt := &survey.Select{
				Message: "Which theme should be the default?",
				Options: names,
				Default: theme.Active().Name,
			}
			handleErr(survey.AskOne(prompt, &name))
		}

		t, err := theme.Get(name)
		handleErr(err)

		viper.Set(key.ThemeDefault, t.Name)
		handleErr(writeConfig())

		fmt.Printf(
			"%s now using %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(t.Name),
		)
	},
}

func init() {
	themesCmd.AddCommand(themesToggleCmd)
}

// themesToggleCmd flips between the dark and light built-ins.
var themesToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between the dark and light built-in themes",
	Run: func(cmd *cobra.Command, args []string) {
		t := theme.Toggle()
		handleErr(writeConfig())

		fmt.Printf(
			"%s switched to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(t.Name),
		)
	},
}

func init() {
	themesCmd.AddCommand(themesInitCmd)

	themesInitCmd.Flags().StringP("name", "n", "", "The display name of the new theme")
	themesInitCmd.Flags().BoolP("light", "l", false, "Seed the scaffold with the light palette instead of the dark one")

	lo.Must0(themesInitCmd.MarkFlagRequired("name"))
}

// themesInitCmd scaffolds a boilerplate TOML theme document.
var themesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new TOML theme document using a predefined template",
	Long:  `Generate a boilerplate theme document with a starter palette and rule table.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name        string
			Author      string
			Background  string
			Surface     string
			TextPrimary string
			Primary     string
		}{
			Name:        lo.Must(cmd.Flags().GetString("name")),
			Author:      author,
			Background:  "#2D3436",
			Surface:     "#34495E",
			TextPrimary: "#DFE6E9",
			Primary:     "#6C5CE7",
		}

		if lo.Must(cmd.Flags().GetBool("light")) {
			s.Background = "#F5F6FA"
			s.Surface = "#DFE6E9"
			s.TextPrimary = "#2D3436"
		}

		tmpl, err := template.New("theme").Parse(constant.ThemeTemplate)
		handleErr(err)

		target := filepath.Join(where.Themes(), util.SanitizeFilename(s.Name)+".toml")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}

func init() {
	themesCmd.AddCommand(themesRemoveCmd)

	themesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom theme(s) to uninstall")
	lo.Must0(themesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		entries, err := filesystem.API().ReadDir(where.Themes())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(entries, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, ".toml") && !strings.HasSuffix(name, ".lua") {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// themesRemoveCmd facilitates the uninstallation of custom themes.
var themesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom themes from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			var removed bool
			for _, ext := range []string{".toml", ".lua"} {
				path := filepath.Join(where.Themes(), name+ext)
				if exists, _ := filesystem.API().Exists(path); exists {
					handleErr(filesystem.API().Remove(path))
					removed = true
				}
			}

			if !removed {
				handleErr(fmt.Errorf("no custom theme named %s", name))
			}

			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	themesCmd.AddCommand(themesExportCmd)

	themesExportCmd.Flags().StringP("output", "o", "", "Specify a file path to write the exported document")
}

// themesExportCmd serializes a theme into its portable document form.
var themesExportCmd = &cobra.Command{
	Use:               "export [name]",
	Short:             "Export a theme as a portable JSON document",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionThemeNames,
	Run: func(cmd *cobra.Command, args []string) {
		t, err := theme.Get(args[0])
		handleErr(err)

		out := os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)

			encoder := json.NewEncoder(f)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(theme.Export(t)))
			return
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(theme.Export(t)))
	},
}

// writeConfig persists viper state, creating the config file when absent.
func writeConfig() error {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		return viper.SafeWriteConfig()
	default:
		return err
	}
}
