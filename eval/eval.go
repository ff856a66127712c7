// Package eval resolves variable and expression references embedded in
// configuration values. Two evaluators exist: Bindings, a deliberately
// non-Turing-complete expression engine over an explicit binding table,
// and Lua, a host-grammar-compatible evaluator whose restricted twin backs
// the safety guard.
package eval

import (
	"context"
	"errors"
)

var (
	ErrSubstitute = errors.New("substitution error")
)

// Evaluator resolves the $name and $(expr) references in a value.
// Restricted returns a twin in which every externally invokable operation
// is disabled; the safety guard probes with the twin before any caller
// runs the real substitution.
type Evaluator interface {
	Substitute(ctx context.Context, s string) (string, error)
	Restricted() Evaluator
}
