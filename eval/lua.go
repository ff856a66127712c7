package eval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Lua is the legacy evaluator, matched to the original host grammar:
// $(...) spans run as Lua expressions, and a bare $name or $(name) that
// names a registered command invokes it. Its restricted twin evaluates in
// a VM where the standard os/io/load surface is removed and every
// registered command is replaced by a stub that raises, so a probe that
// reaches an invokable operation always errors.
type Lua struct {
	restricted bool
	vars       map[string]any
	commands   map[string]lua.LGFunction
}

type LuaOption func(*Lua)

// WithCommand registers a host command invokable from substitution spans.
func WithCommand(name string, fn lua.LGFunction) LuaOption {
	return func(e *Lua) { e.commands[name] = fn }
}

// WithVars sets variable bindings visible as globals.
func WithVars(vars map[string]any) LuaOption {
	return func(e *Lua) {
		for k, v := range vars {
			e.vars[k] = v
		}
	}
}

func NewLua(opts ...LuaOption) *Lua {
	e := &Lua{
		vars:     map[string]any{},
		commands: map[string]lua.LGFunction{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Lua) Restricted() Evaluator {
	if e.restricted {
		return e
	}
	r := *e
	r.restricted = true
	return &r
}

func (e *Lua) Substitute(ctx context.Context, s string) (string, error) {
	L := e.newState(ctx)
	defer L.Close()
	return substitute(s, func(src string, ident bool) (string, error) {
		name := strings.TrimSpace(src)
		if ident || isIdentifier(name) {
			if _, isCmd := e.commands[name]; isCmd {
				// command invocation by bare name, per the host grammar
				src = name + "()"
			}
		}
		if err := L.DoString("return (" + src + ")"); err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrSubstitute, src, err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		return renderLua(ret), nil
	})
}

// newState builds the evaluation VM. The restricted variant strips the
// sandbox-hostile surface from the globals and
// replaces each command with a raising stub.
func (e *Lua) newState(ctx context.Context) *lua.LState {
	L := lua.NewState()
	L.SetContext(ctx)
	if e.restricted {
		for _, g := range []string{
			"os", "io", "require", "dofile", "loadfile",
			"load", "loadstring", "debug", "print",
		} {
			L.SetGlobal(g, lua.LNil)
		}
	}
	for k, v := range e.vars {
		L.SetGlobal(k, toLValue(L, v))
	}
	for name, fn := range e.commands {
		if e.restricted {
			name := name
			L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
				L.RaiseError("operation %q is disabled in restricted evaluation", name)
				return 0
			}))
			continue
		}
		L.SetGlobal(name, L.NewFunction(fn))
	}
	return L
}

// Commands lists registered command names, sorted.
func (e *Lua) Commands() []string {
	names := make([]string, 0, len(e.commands))
	for n := range e.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func toLValue(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(x)
	case string:
		return lua.LString(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	default:
		return lua.LString(fmt.Sprintf("%v", x))
	}
}

func renderLua(v lua.LValue) string {
	if v.Type() == lua.LTNil {
		return ""
	}
	return v.String()
}
