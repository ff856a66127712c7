package eval

import (
	"context"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
)

// Bindings is the production evaluator: $name looks a binding up and
// $(expr) evaluates an expr-lang expression over the binding table. The
// grammar has no command invocation, so Bindings is its own restricted
// twin and guard probes cost one extra evaluation, nothing more.
type Bindings struct {
	vars map[string]any
}

// NewBindings copies vars into a binding table. The literals true, false,
// and null are predefined and can be shadowed.
func NewBindings(vars map[string]any) *Bindings {
	m := map[string]any{
		"true":  true,
		"false": false,
		"null":  nil,
	}
	for k, v := range vars {
		m[k] = v
	}
	return &Bindings{vars: m}
}

func (b *Bindings) Substitute(ctx context.Context, s string) (string, error) {
	return substitute(s, func(src string, ident bool) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrSubstitute, err)
		}
		if ident {
			v, ok := b.vars[src]
			if !ok {
				// unknown references expand to nothing, like env vars
				return "", nil
			}
			return renderAny(v), nil
		}
		v, err := expr.Eval(src, b.vars)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrSubstitute, src, err)
		}
		return renderAny(v), nil
	})
}

func (b *Bindings) Restricted() Evaluator { return b }

func renderAny(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
