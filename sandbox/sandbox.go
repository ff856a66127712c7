// Package sandbox guards the substitution capability: before any real
// substitution runs over a document, the same two-step expansion is
// attempted with the evaluator's restricted twin, isolated in its own
// goroutine. Any error from the attempt, including cancellation, fails
// closed.
package sandbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/confit-format/confit/eval"
)

// ErrSecurityViolation reports that substituting a candidate string would
// have invoked an externally visible operation. Callers must not proceed
// to real substitution.
var ErrSecurityViolation = errors.New("security violation")

// Guard approves candidate strings for substitution.
type Guard struct {
	ev        eval.Evaluator
	expandEnv bool
	lookup    func(string) (string, bool)
}

type Option func(*Guard)

// ExpandEnv includes the environment-expansion step in the probe.
func ExpandEnv(v bool) Option {
	return func(g *Guard) { g.expandEnv = v }
}

// Environ overrides the environment lookup used by the probe's expansion
// step. Nil means the process environment.
func Environ(lookup func(string) (string, bool)) Option {
	return func(g *Guard) { g.lookup = lookup }
}

func New(ev eval.Evaluator, opts ...Option) *Guard {
	g := &Guard{ev: ev}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Approve attempts the substitution of s with the restricted evaluator on
// a separate goroutine and blocks until the attempt finishes or ctx ends.
// A nil return approves; anything else wraps ErrSecurityViolation, and
// cancellation is indistinguishable from rejection. Callers pass the
// concatenation of every raw value in the document, so the guard runs
// once per document rather than once per value.
func (g *Guard) Approve(ctx context.Context, s string) error {
	restricted := g.ev.Restricted()
	done := make(chan error, 1)
	go func() {
		out, err := restricted.Substitute(ctx, s)
		if err == nil && g.expandEnv {
			eval.ExpandEnv(out, g.lookup)
		}
		done <- err
	}()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrSecurityViolation, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSecurityViolation, err)
		}
		return nil
	}
}
