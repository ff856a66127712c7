package literal

import (
	"context"

	"github.com/confit-format/confit/eval"
	"github.com/confit-format/confit/ir"
)

// Engine is the value typing pipeline: host substitution, optional
// environment expansion, then classification. It must only run over
// content the safety guard has approved.
type Engine struct {
	Eval      eval.Evaluator
	ExpandEnv bool
	// Environ overrides environment lookup; nil means the process
	// environment.
	Environ func(string) (string, bool)
	Locale  Locale
}

// TypedValue resolves raw into its typed form. The returned value is
// always usable; a non-nil error is diagnostic only (substitution
// failure or an unrepresentable numeric literal) and comes with the
// deterministic string fallback.
func (e *Engine) TypedValue(ctx context.Context, raw string) (ir.Value, error) {
	ev := e.Eval
	if ev == nil {
		ev = eval.NewBindings(nil)
	}
	s, err := ev.Substitute(ctx, raw)
	if err != nil {
		return ir.String(raw), err
	}
	if e.ExpandEnv {
		s = eval.ExpandEnv(s, e.Environ)
	}
	return Classify(s, e.Locale)
}
