// Package custom provides a bridge between the Go core and Lua-based theme scripts.
//
// A theme script declares a global Name string plus Tokens() and Rules()
// functions returning tables; the script is executed once at load time and the
// returned tables are converted into plain Go data for validation upstream.
package custom

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/tinct-cli/tinct/constant"
	"github.com/tinct-cli/tinct/internal/luac"
	"github.com/tinct-cli/tinct/util"
)

// Script is the raw, unvalidated content a Lua theme script produced.
type Script struct {
	Name   string
	Tokens map[string]string
	Rules  []Rule
}

// Rule mirrors a rule table entry: selector fields plus attribute declarations.
type Rule struct {
	Class string
	ID    string
	State string
	Attrs map[string]string
}

// LoadScript executes and validates a Lua theme script, returning its raw content.
func LoadScript(path string) (*Script, error) {
	state := lua.NewState()
	defer state.Close()

	if err := luac.PreCompileAndLoad(state, path); err != nil {
		return nil, fmt.Errorf("execute theme script %s: %w", path, err)
	}

	// Validation: both table-producing functions must be defined.
	for _, fn := range []string{constant.ThemeTokensFn, constant.ThemeRulesFn} {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			return nil, fmt.Errorf("function %s is required but not defined in %s", fn, path)
		}
	}

	script := &Script{Name: util.FileStem(path)}
	if name, ok := state.GetGlobal(constant.ThemeNameVar).(lua.LString); ok {
		script.Name = string(name)
	}

	tokens, err := callTable(state, constant.ThemeTokensFn)
	if err != nil {
		return nil, err
	}
	script.Tokens, err = tableToStringMap(tokens)
	if err != nil {
		return nil, fmt.Errorf("%s(): %w", constant.ThemeTokensFn, err)
	}

	rules, err := callTable(state, constant.ThemeRulesFn)
	if err != nil {
		return nil, err
	}
	script.Rules, err = tableToRules(rules)
	if err != nil {
		return nil, fmt.Errorf("%s(): %w", constant.ThemeRulesFn, err)
	}

	return script, nil
}

// callTable invokes a no-argument global function expected to return a table.
func callTable(state *lua.LState, fn string) (*lua.LTable, error) {
	if err := state.CallByParam(lua.P{
		Fn:      state.GetGlobal(fn),
		NRet:    1,
		Protect: true,
	}); err != nil {
		return nil, fmt.Errorf("call %s(): %w", fn, err)
	}

	ret := state.Get(-1)
	state.Pop(1)

	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s() must return a table, got %s", fn, ret.Type())
	}
	return table, nil
}

// tableToStringMap converts a Lua table of string keys to string values.
func tableToStringMap(table *lua.LTable) (map[string]string, error) {
	out := make(map[string]string)
	var convErr error

	table.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}

		name, ok := k.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("non-string key %s", k.String())
			return
		}

		switch value := v.(type) {
		case lua.LString:
			out[string(name)] = string(value)
		case lua.LNumber:
			out[string(name)] = value.String()
		default:
			convErr = fmt.Errorf("token %s: unsupported value type %s", name, v.Type())
		}
	})

	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

// tableToRules converts an array-style Lua table of rule entries.
func tableToRules(table *lua.LTable) ([]Rule, error) {
	var (
		rules   []Rule
		convErr error
	)

	table.ForEach(func(_, v lua.LValue) {
		if convErr != nil {
			return
		}

		entry, ok := v.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("rule entries must be tables, got %s", v.Type())
			return
		}

		rule := Rule{
			Class: lua.LVAsString(entry.RawGetString("class")),
			ID:    lua.LVAsString(entry.RawGetString("id")),
			State: lua.LVAsString(entry.RawGetString("state")),
		}

		if rule.Class == "" {
			convErr = fmt.Errorf("rule %d: class is required", len(rules)+1)
			return
		}

		attrs, ok := entry.RawGetString("attrs").(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("rule %s: attrs table is required", rule.Class)
			return
		}

		rule.Attrs, convErr = tableToStringMap(attrs)
		if convErr != nil {
			convErr = fmt.Errorf("rule %s: %w", rule.Class, convErr)
			return
		}

		rules = append(rules, rule)
	})

	if convErr != nil {
		return nil, convErr
	}
	return rules, nil
}
