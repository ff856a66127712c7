package parse

import (
	"context"

	"github.com/confit-format/confit/diag"
	"github.com/confit-format/confit/eval"
	"github.com/confit-format/confit/literal"
)

type parseOpts struct {
	ctx       context.Context
	ev        eval.Evaluator
	expandEnv bool
	environ   func(string) (string, bool)
	locale    literal.Locale
	logger    diag.Logger
	noGuard   bool
}

type ParseOption func(*parseOpts)

// WithContext bounds substitution and the safety guard; cancellation
// fails closed.
func WithContext(ctx context.Context) ParseOption {
	return func(o *parseOpts) { o.ctx = ctx }
}

// WithEvaluator selects the substitution evaluator. The default is an
// empty binding table.
func WithEvaluator(ev eval.Evaluator) ParseOption {
	return func(o *parseOpts) { o.ev = ev }
}

// WithExpandEnv turns on %NAME% environment expansion after substitution.
func WithExpandEnv(v bool) ParseOption {
	return func(o *parseOpts) { o.expandEnv = v }
}

// WithEnviron overrides environment lookup; nil means the process
// environment.
func WithEnviron(lookup func(string) (string, bool)) ParseOption {
	return func(o *parseOpts) { o.environ = lookup }
}

// WithLocale fixes the separator conventions for numeric literals. The
// default is the caller's current locale.
func WithLocale(loc literal.Locale) ParseOption {
	return func(o *parseOpts) { o.locale = loc }
}

// WithLogger routes diagnostics; logging never affects control flow.
func WithLogger(l diag.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

// withoutGuard skips the document-wide safety approval. Only tests that
// exercise the pipeline below the guard use this; there is deliberately
// no exported way to turn the guard off.
func withoutGuard() ParseOption {
	return func(o *parseOpts) { o.noGuard = true }
}
