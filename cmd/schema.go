// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinct-cli/tinct/inline"
	"github.com/tinct-cli/tinct/theme"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("resolve", "r", false, "Generate the JSON Schema for resolve command output instead of theme documents")
}

// schemaCmd generates JSON schemas for the application's structured formats.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for theme documents and structured outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "document", "documentrule", "output", "resolution":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("resolve")):
			schema = reflector.Reflect(&inline.Output{})
		default:
			schema = reflector.Reflect(&theme.Document{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
