// Package theme manages built-in and custom interface themes.
package theme

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/log"
	"github.com/tinct-cli/tinct/where"
)

// Customs discovers and loads user themes from the themes directory.
// Unloadable files are skipped with a log entry rather than failing discovery.
func Customs() []*Theme {
	files, err := filesystem.API().ReadDir(where.Themes())
	if err != nil {
		log.Errorf("read themes directory: %v", err)
		return nil
	}

	var themes []*Theme
	for _, f := range files {
		ext := filepath.Ext(f.Name())
		if f.IsDir() || (ext != ".toml" && ext != ".lua") {
			continue
		}

		path := filepath.Join(where.Themes(), f.Name())
		t, err := LoadFile(path)
		if err != nil {
			log.Errorf("skipping theme %s: %v", f.Name(), err)
			continue
		}

		themes = append(themes, t)
	}

	return themes
}

// All returns every available theme, built-ins first.
func All() []*Theme {
	return append(Builtins(), Customs()...)
}

// Get finds a theme by name among built-ins and customs.
func Get(name string) (*Theme, error) {
	t, ok := lo.Find(All(), func(t *Theme) bool {
		return t.Name == name
	})
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// Active resolves the configured default theme, falling back to the dark
// built-in when the configured name does not resolve.
func Active() *Theme {
	name := viper.GetString(key.ThemeDefault)

	t, err := Get(name)
	if err != nil {
		log.Warnf("configured theme %q not found, using %s", name, Dark.Name)
		return Dark
	}
	return t
}

// Toggle switches the configured default between the dark and light built-ins
// and returns the newly active theme. A custom active theme toggles to dark.
func Toggle() *Theme {
	next := Dark
	if Active() == Dark {
		next = Light
	}

	viper.Set(key.ThemeDefault, next.Name)
	return next
}

// Find returns the theme by name as an Option, for callers that treat absence
// as an ordinary outcome.
func Find(name string) mo.Option[*Theme] {
	t, err := Get(name)
	if err != nil {
		return mo.None[*Theme]()
	}
	return mo.Some(t)
}
