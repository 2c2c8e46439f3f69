package cascade

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStates(t *testing.T) {
	Convey("Interaction state parsing", t, func() {
		Convey("Every concrete state should round-trip through its name", func() {
			for _, s := range States() {
				parsed, err := ParseState(s.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, s)
			}
		})

		Convey("The empty string should parse as the wildcard", func() {
			parsed, err := ParseState("")
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, StateAny)
		})

		Convey("Unknown names should fail", func() {
			_, err := ParseState("blinking")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("State layering", t, func() {
		Convey("Disabled should override hover", func() {
			So(Effective(StateHover, StateDisabled), ShouldEqual, StateDisabled)
			So(Effective(StateDisabled, StateHover), ShouldEqual, StateDisabled)
		})

		Convey("Pressed should override hover and focus", func() {
			So(Effective(StateFocus, StatePressed, StateHover), ShouldEqual, StatePressed)
		})

		Convey("No states should collapse to default", func() {
			So(Effective(), ShouldEqual, StateDefault)
			So(Effective(StateAny), ShouldEqual, StateDefault)
		})
	})
}

func TestSelector(t *testing.T) {
	Convey("Selector matching", t, func() {
		s := Selector{Class: "Button", ID: "startButton", State: StateHover}

		So(s.Matches("Button", "startButton", StateHover), ShouldBeTrue)
		So(s.Matches("Button", "startButton", StateDefault), ShouldBeFalse)
		So(s.Matches("Button", "stopButton", StateHover), ShouldBeFalse)
		So(s.Matches("Label", "startButton", StateHover), ShouldBeFalse)

		Convey("Wildcard identifier and state should match anything in class", func() {
			wide := Selector{Class: "Button"}
			So(wide.Matches("Button", "startButton", StateHover), ShouldBeTrue)
			So(wide.Matches("Button", "", StateDisabled), ShouldBeTrue)
		})

		Convey("Identifier-bearing selectors should not match identifier-less queries", func() {
			So(s.Matches("Button", "", StateHover), ShouldBeFalse)
		})
	})

	Convey("Specificity total order", t, func() {
		class := Selector{Class: "Button"}
		classState := Selector{Class: "Button", State: StateHover}
		id := Selector{Class: "Button", ID: "startButton"}
		idState := Selector{Class: "Button", ID: "startButton", State: StateHover}

		So(idState.Specificity(), ShouldBeGreaterThan, id.Specificity())
		So(id.Specificity(), ShouldBeGreaterThan, classState.Specificity())
		So(classState.Specificity(), ShouldBeGreaterThan, class.Specificity())
	})

	Convey("Stylesheet notation", t, func() {
		So(Selector{Class: "Button"}.String(), ShouldEqual, "Button")
		So(Selector{Class: "Button", ID: "startButton"}.String(), ShouldEqual, "Button#startButton")
		So(Selector{Class: "Button", ID: "startButton", State: StateDisabled}.String(), ShouldEqual, "Button#startButton:disabled")
		So(Selector{Class: "List", State: StateSelected}.String(), ShouldEqual, "List:selected")
	})

	Convey("Parsing stylesheet notation", t, func() {
		Convey("Round-trips every shape", func() {
			for _, notation := range []string{
				"Button",
				"Button#startButton",
				"Button#startButton:hover",
				"List:selected",
			} {
				parsed, err := ParseSelector(notation)
				So(err, ShouldBeNil)
				So(parsed.String(), ShouldEqual, notation)
			}
		})

		Convey("A bare class is state-agnostic", func() {
			parsed, err := ParseSelector("ProgressBar")
			So(err, ShouldBeNil)
			So(parsed.State, ShouldEqual, StateAny)
		})

		Convey("Rejects unknown states and missing classes", func() {
			_, err := ParseSelector("Button:glowing")
			So(err, ShouldNotBeNil)

			_, err = ParseSelector("#startButton")
			So(err, ShouldNotBeNil)

			_, err = ParseSelector("  ")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResolver(t *testing.T) {
	Convey("Given a rule table mirroring the original start button styling", t, func() {
		resolver := NewResolver([]Rule{
			{Selector: Selector{Class: "Button"}, Attrs: Attributes{"border-radius": "6px", "background": "#34495E"}},
			{Selector: Selector{Class: "Button", ID: "startButton"}, Attrs: Attributes{"background": "#00B894", "color": "white"}},
			{Selector: Selector{Class: "Button", ID: "startButton", State: StateHover}, Attrs: Attributes{"background": "#00A884"}},
			{Selector: Selector{Class: "Button", ID: "startButton", State: StateDisabled}, Attrs: Attributes{"background": "#34495E", "color": "#7F8C8D"}},
		})

		Convey("A rule's own query should include every declared attribute", func() {
			got := resolver.Resolve("Button", "startButton", StateHover)
			So(got["background"], ShouldEqual, "#00A884")
			So(got["color"], ShouldEqual, "white")
			So(got["border-radius"], ShouldEqual, "6px")
		})

		Convey("Identifier-specific rules should beat class-wide rules", func() {
			got := resolver.Resolve("Button", "startButton", StateDefault)
			So(got["background"], ShouldEqual, "#00B894")
		})

		Convey("Disabled must not inherit the enabled background", func() {
			got := resolver.Resolve("Button", "startButton", StateDisabled)
			So(got["background"], ShouldEqual, "#34495E")
			So(got["color"], ShouldEqual, "#7F8C8D")
		})

		Convey("Identifier-less queries should see only class-wide rules", func() {
			got := resolver.Resolve("Button", "", StateDefault)
			So(got, ShouldResemble, Attributes{"border-radius": "6px", "background": "#34495E"})
		})

		Convey("No matching rule should yield an empty set, not an error", func() {
			So(resolver.Resolve("Splitter", "", StateHover), ShouldBeEmpty)
			So(resolver.Resolve("Button", "ghost", StatePressed), ShouldNotBeEmpty) // falls back to class rules
		})

		Convey("Class and ID enumeration should preserve declaration order", func() {
			So(resolver.Classes(), ShouldResemble, []string{"Button"})
			So(resolver.IDs("Button"), ShouldResemble, []string{"startButton"})
		})
	})

	Convey("Equal specificity resolves by declaration order, last wins", t, func() {
		resolver := NewResolver([]Rule{
			{Selector: Selector{Class: "Label"}, Attrs: Attributes{"color": "#DFE6E9", "padding": "2px"}},
			{Selector: Selector{Class: "Label"}, Attrs: Attributes{"color": "#B2BEC3"}},
		})

		got := resolver.Resolve("Label", "", StateDefault)
		So(got["color"], ShouldEqual, "#B2BEC3")
		So(got["padding"], ShouldEqual, "2px")
	})

	Convey("The resolver owns its rule list", t, func() {
		input := []Rule{
			{Selector: Selector{Class: "Dialog"}, Attrs: Attributes{"background": "#2D3436"}},
		}
		resolver := NewResolver(input)

		input[0].Attrs = Attributes{"background": "mutated"}
		So(resolver.Resolve("Dialog", "", StateDefault)["background"], ShouldEqual, "#2D3436")
	})
}
