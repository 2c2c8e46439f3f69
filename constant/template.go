// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Theme Script Function Identifiers - these constants define the required global function signatures for Lua theme modules.
const (
	ThemeTokensFn = "Tokens"
	ThemeRulesFn  = "Rules"
	ThemeNameVar  = "Name"
)

// ThemeTemplate is a Go text/template for scaffolding new TOML theme documents.
const ThemeTemplate = `# {{ .Name }} - a tinct theme
# Author: {{ .Author }}
#
# Tokens are named color or metric constants. Rules map a widget selector
# (class, optional id, optional interaction state) to visual attributes.
# Attribute values starting with "$" reference a token by name.

name = "{{ .Name }}"

[tokens]
background = "{{ .Background }}"
surface = "{{ .Surface }}"
text-primary = "{{ .TextPrimary }}"
text-disabled = "#7F8C8D"
primary = "{{ .Primary }}"
success = "#00B894"
warning = "#FDCB6E"
error = "#FF6B6B"
border = "#495A6B"
radius-medium = "6px"
padding-small = "6px"

[[rules]]
class = "Window"
[rules.attrs]
background = "$background"
color = "$text-primary"

[[rules]]
class = "Button"
[rules.attrs]
background = "$surface"
color = "$text-primary"
border-radius = "$radius-medium"

[[rules]]
class = "Button"
state = "hover"
[rules.attrs]
border-color = "$primary"

[[rules]]
class = "Button"
state = "disabled"
[rules.attrs]
background = "$surface"
color = "$text-disabled"
`
