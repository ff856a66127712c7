// Package resolve re-runs substitution and type inference over an
// existing document, picking up whatever external bindings currently
// exist. Raw values are never rewritten; only typed values refresh.
package resolve

import (
	"context"

	"github.com/confit-format/confit/diag"
	"github.com/confit-format/confit/eval"
	"github.com/confit-format/confit/ir"
	"github.com/confit-format/confit/literal"
	"github.com/confit-format/confit/sandbox"
)

type resolveOpts struct {
	ctx       context.Context
	ev        eval.Evaluator
	expandEnv bool
	environ   func(string) (string, bool)
	locale    literal.Locale
	logger    diag.Logger
}

type Option func(*resolveOpts)

// WithContext bounds substitution and the safety guard.
func WithContext(ctx context.Context) Option {
	return func(o *resolveOpts) { o.ctx = ctx }
}

// WithEvaluator selects the substitution evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(o *resolveOpts) { o.ev = ev }
}

// WithExpandEnv turns on %NAME% environment expansion after substitution.
func WithExpandEnv(v bool) Option {
	return func(o *resolveOpts) { o.expandEnv = v }
}

// WithEnviron overrides environment lookup.
func WithEnviron(lookup func(string) (string, bool)) Option {
	return func(o *resolveOpts) { o.environ = lookup }
}

// WithLocale fixes numeric separator conventions.
func WithLocale(loc literal.Locale) Option {
	return func(o *resolveOpts) { o.locale = loc }
}

// WithLogger routes diagnostics.
func WithLogger(l diag.Logger) Option {
	return func(o *resolveOpts) { o.logger = l }
}

// Resolve produces a new document with identical section and key
// structure, unchanged raw values, and freshly computed typed values. The
// guard approves all raw values of doc in one call before any real
// substitution; resolving twice under unchanged bindings yields equal
// typed values.
func Resolve(doc *ir.Document, opts ...Option) (*ir.Document, error) {
	o := &resolveOpts{
		ctx:    context.Background(),
		ev:     eval.NewBindings(nil),
		locale: literal.SystemLocale(),
		logger: diag.Noop(),
	}
	for _, f := range opts {
		f(o)
	}

	guard := sandbox.New(o.ev,
		sandbox.ExpandEnv(o.expandEnv),
		sandbox.Environ(o.environ),
	)
	if err := guard.Approve(o.ctx, doc.RawConcat()); err != nil {
		o.logger.Error("substitution rejected, aborting resolve", "err", err)
		return nil, err
	}

	engine := &literal.Engine{
		Eval:      o.ev,
		ExpandEnv: o.expandEnv,
		Environ:   o.environ,
		Locale:    o.locale,
	}

	out := ir.NewDocument()
	for _, sec := range doc.Sections() {
		outSec := out.EnsureSection(sec.Name())
		for _, e := range sec.Entries() {
			switch e.Kind {
			case ir.CommentEntry:
				outSec.AddComment(e.Text)
			case ir.KeyValueEntry:
				typed, err := engine.TypedValue(o.ctx, e.RawValue)
				if err != nil {
					o.logger.Warn("value fell back to string",
						"section", sec.Name(), "key", e.Key, "err", err)
				}
				outSec.AddKeyValue(e.Key, e.RawValue, typed)
			}
		}
	}
	return out, nil
}
