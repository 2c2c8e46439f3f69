// Package theme manages built-in and custom interface themes.
package theme

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/theme/custom"
	"github.com/tinct-cli/tinct/util"
)

// LoadFile reads, validates, and compiles a theme definition from disk.
// TOML documents and Lua theme scripts are both supported, dispatched on the
// file extension. Malformed input is a fatal load error; there is no partial
// recovery for static styling data.
func LoadFile(path string) (*Theme, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return loadTOML(path)
	case ".lua":
		return loadLua(path)
	default:
		return nil, fmt.Errorf("unsupported theme format %q", filepath.Ext(path))
	}
}

func loadTOML(path string) (*Theme, error) {
	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read theme document %s: %w", path, err)
	}

	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("parse theme document %s: %w", path, err)
	}

	if doc.Name == "" {
		doc.Name = util.FileStem(path)
	}

	return doc.Theme()
}

func loadLua(path string) (*Theme, error) {
	script, err := custom.LoadScript(path)
	if err != nil {
		return nil, err
	}

	doc := Document{
		Name:   script.Name,
		Tokens: script.Tokens,
		Rules: make([]DocumentRule, 0, len(script.Rules)),
	}

	for _, rule := range script.Rules {
		doc.Rules = append(doc.Rules, DocumentRule{
			Class: rule.Class,
			ID:    rule.ID,
			State: rule.State,
			Attrs: rule.Attrs,
		})
	}

	return doc.Theme()
}
