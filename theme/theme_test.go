package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/token"
	"github.com/tinct-cli/tinct/where"
)

func TestBuiltins(t *testing.T) {
	Convey("Given the built-in themes", t, func() {
		Convey("Both should be registered", func() {
			So(Builtins(), ShouldHaveLength, 2)
			So(Dark.Name, ShouldEqual, "dark")
			So(Light.Name, ShouldEqual, "light")
		})

		Convey("The start button should resolve to the success background by default", func() {
			attrs := Dark.Resolve("Button", "startButton", cascade.StateDefault)
			So(attrs["background"], ShouldEqual, "#00B894")
			So(attrs["color"], ShouldEqual, "white")
		})

		Convey("Disabling the start button must override the success background", func() {
			attrs := Dark.Resolve("Button", "startButton", cascade.StateDisabled)
			So(attrs["background"], ShouldEqual, "#34495E")
			So(attrs["color"], ShouldEqual, "#7F8C8D")
		})

		Convey("Unstyled widgets should resolve to an empty attribute set", func() {
			So(Dark.Resolve("Carousel", "", cascade.StateHover), ShouldBeEmpty)
		})

		Convey("The light theme shares the rule table with its own palette", func() {
			dark := Dark.Resolve("Window", "", cascade.StateDefault)
			light := Light.Resolve("Window", "", cascade.StateDefault)
			So(dark["background"], ShouldEqual, "#2D3436")
			So(light["background"], ShouldEqual, "#F5F6FA")
			So(light["font-size"], ShouldEqual, dark["font-size"])
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Compiling a theme", t, func() {
		palette := token.NewPalette(map[string]string{"primary": "#6C5CE7"})

		Convey("Orphan token references should fail at load time", func() {
			_, err := New("broken", palette, []cascade.Rule{
				{
					Selector: cascade.Selector{Class: "Button"},
					Attrs:    cascade.Attributes{"background": "$missing"},
				},
			})
			So(err, ShouldNotBeNil)

			var unknown *token.UnknownTokenError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Name, ShouldEqual, "missing")
		})

		Convey("References should be inlined into concrete values", func() {
			compiled, err := New("ok", palette, []cascade.Rule{
				{
					Selector: cascade.Selector{Class: "Button"},
					Attrs:    cascade.Attributes{"background": "$primary", "color": "white"},
				},
			})
			So(err, ShouldBeNil)

			attrs := compiled.Resolve("Button", "", cascade.StateDefault)
			So(attrs["background"], ShouldEqual, "#6C5CE7")
			So(attrs["color"], ShouldEqual, "white")
		})
	})

	Convey("Metric scaling", t, func() {
		attrs := cascade.Attributes{"padding": "10px", "background": "#2D3436"}
		scaled := ScaleMetrics(attrs, 1.5)
		So(scaled["padding"], ShouldEqual, "15px")
		So(scaled["background"], ShouldEqual, "#2D3436")

		Convey("A unit factor returns the input unchanged", func() {
			So(ScaleMetrics(attrs, 1), ShouldResemble, attrs)
		})
	})
}

func TestDocument(t *testing.T) {
	Convey("Validating a theme document", t, func() {
		Convey("A class-less rule should fail", func() {
			doc := Document{
				Name:  "bad",
				Rules: []DocumentRule{{Attrs: map[string]string{"color": "white"}}},
			}
			_, err := doc.Theme()
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown state should fail", func() {
			doc := Document{
				Name:  "bad",
				Rules: []DocumentRule{{Class: "Button", State: "blinking"}},
			}
			_, err := doc.Theme()
			So(err, ShouldNotBeNil)
		})

		Convey("A nameless document should fail", func() {
			doc := Document{}
			_, err := doc.Theme()
			So(err, ShouldNotBeNil)
		})

		Convey("A well-formed document should compile as custom", func() {
			doc := Document{
				Name:   "mint",
				Tokens: map[string]string{"accent": "#00B894"},
				Rules: []DocumentRule{
					{Class: "Button", ID: "startButton", State: "hover", Attrs: map[string]string{"background": "$accent"}},
				},
			}
			compiled, err := doc.Theme()
			So(err, ShouldBeNil)
			So(compiled.IsCustom, ShouldBeTrue)
			So(compiled.Resolve("Button", "startButton", cascade.StateHover)["background"], ShouldEqual, "#00B894")
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given an in-memory themes directory", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		So(os.Setenv(where.EnvConfigPath, "/tinct-test"), ShouldBeNil)
		defer func() { _ = os.Unsetenv(where.EnvConfigPath) }()

		Convey("A TOML document should load and compile", func() {
			path := filepath.Join(where.Themes(), "ocean.toml")
			doc := `
name = "ocean"

[tokens]
deep = "#003049"

[[rules]]
class = "Window"
[rules.attrs]
background = "$deep"
`
			So(filesystem.API().WriteFile(path, []byte(doc), 0644), ShouldBeNil)

			loaded, err := LoadFile(path)
			So(err, ShouldBeNil)
			So(loaded.Name, ShouldEqual, "ocean")
			So(loaded.Resolve("Window", "", cascade.StateDefault)["background"], ShouldEqual, "#003049")
		})

		Convey("A Lua theme script should load and compile", func() {
			path := filepath.Join(where.Themes(), "ember.lua")
			script := `
Name = "ember"

function Tokens()
    return { flame = "#FF6B6B" }
end

function Rules()
    return {
        { class = "Button", state = "hover", attrs = { background = "$flame" } },
    }
end
`
			So(filesystem.API().WriteFile(path, []byte(script), 0644), ShouldBeNil)

			loaded, err := LoadFile(path)
			So(err, ShouldBeNil)
			So(loaded.Name, ShouldEqual, "ember")
			So(loaded.Resolve("Button", "", cascade.StateHover)["background"], ShouldEqual, "#FF6B6B")
		})

		Convey("An orphan reference in a document should fail the load", func() {
			path := filepath.Join(where.Themes(), "orphan.toml")
			doc := `
name = "orphan"

[[rules]]
class = "Button"
[rules.attrs]
background = "$ghost"
`
			So(filesystem.API().WriteFile(path, []byte(doc), 0644), ShouldBeNil)

			_, err := LoadFile(path)
			So(err, ShouldNotBeNil)
		})

		Convey("Unsupported formats should be rejected", func() {
			_, err := LoadFile("theme.yaml")
			So(err, ShouldNotBeNil)
		})

		Convey("Customs should discover loadable themes and skip broken ones", func() {
			good := filepath.Join(where.Themes(), "plain.toml")
			So(filesystem.API().WriteFile(good, []byte("name = \"plain\"\n"), 0644), ShouldBeNil)

			broken := filepath.Join(where.Themes(), "broken.toml")
			So(filesystem.API().WriteFile(broken, []byte("name = [unclosed"), 0644), ShouldBeNil)

			names := make(map[string]bool)
			for _, custom := range Customs() {
				names[custom.Name] = true
			}
			So(names["plain"], ShouldBeTrue)
			So(names["broken"], ShouldBeFalse)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Theme selection", t, func() {
		Convey("Get should find built-ins", func() {
			found, err := Get("light")
			So(err, ShouldBeNil)
			So(found, ShouldEqual, Light)

			_, err = Get("nonexistent")
			So(err, ShouldNotBeNil)
			So(Find("nonexistent").IsAbsent(), ShouldBeTrue)
		})

		Convey("Active should fall back to dark for unknown names", func() {
			viper.Set(key.ThemeDefault, "nonexistent")
			So(Active(), ShouldEqual, Dark)
		})

		Convey("Toggle should flip between dark and light", func() {
			viper.Set(key.ThemeDefault, "dark")
			So(Toggle(), ShouldEqual, Light)
			So(Toggle(), ShouldEqual, Dark)
		})
	})
}

func TestAudit(t *testing.T) {
	Convey("Contrast auditing", t, func() {
		Convey("A low-contrast pairing should be reported", func() {
			doc := Document{
				Name: "murky",
				Rules: []DocumentRule{
					{Class: "Label", Attrs: map[string]string{"color": "#777777", "background": "#6C6C6C"}},
				},
			}
			murky, err := doc.Theme()
			So(err, ShouldBeNil)

			findings := Audit(murky, 4.5)
			So(findings, ShouldNotBeEmpty)
			So(findings[0].Ratio, ShouldBeLessThan, 4.5)
			So(findings[0].Selector, ShouldStartWith, "Label")
		})

		Convey("A compliant pairing should produce no findings", func() {
			doc := Document{
				Name: "stark",
				Rules: []DocumentRule{
					{Class: "Window", Attrs: map[string]string{"color": "#FFFFFF", "background": "#000000"}},
				},
			}
			stark, err := doc.Theme()
			So(err, ShouldBeNil)
			So(Audit(stark, 4.5), ShouldBeEmpty)
		})

		Convey("Disabled widgets are exempt from the audit", func() {
			doc := Document{
				Name: "dim",
				Rules: []DocumentRule{
					{Class: "Button", State: "disabled", Attrs: map[string]string{"color": "#777777", "background": "#6C6C6C"}},
				},
			}
			dim, err := doc.Theme()
			So(err, ShouldBeNil)
			So(Audit(dim, 4.5), ShouldBeEmpty)
		})

		Convey("The dark theme's white-on-status buttons fall below AA", func() {
			findings := Audit(Dark, 4.5)

			selectors := make(map[string]bool)
			for _, f := range findings {
				selectors[f.Selector] = true
			}
			So(selectors["Button#startButton:default"], ShouldBeTrue)
		})
	})
}
