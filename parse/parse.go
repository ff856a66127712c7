// Package parse reads configuration text into a document. Each line is
// classified in priority order; before any substitution runs, the safety
// guard approves the concatenation of every raw value in a single
// document-wide call.
package parse

import (
	"context"
	"strings"

	"github.com/confit-format/confit/diag"
	"github.com/confit-format/confit/eval"
	"github.com/confit-format/confit/ir"
	"github.com/confit-format/confit/literal"
	"github.com/confit-format/confit/sandbox"
	"github.com/confit-format/confit/token"
)

// rawEntry is a classified line pending typing. Typing happens only after
// the guard approves the whole document.
type rawEntry struct {
	section string
	line    token.Line
	lineNo  int
}

// Parse reads d into a new document. Malformed lines are logged and
// skipped; a guard rejection aborts with sandbox.ErrSecurityViolation
// before any real substitution has run.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	o := &parseOpts{
		ctx:    context.Background(),
		ev:     eval.NewBindings(nil),
		locale: literal.SystemLocale(),
		logger: diag.Noop(),
	}
	for _, f := range opts {
		f(o)
	}

	entries, rawAll := classify(string(d), o)

	if !o.noGuard {
		guard := sandbox.New(o.ev,
			sandbox.ExpandEnv(o.expandEnv),
			sandbox.Environ(o.environ),
		)
		if err := guard.Approve(o.ctx, rawAll); err != nil {
			o.logger.Error("substitution rejected, aborting import", "err", err)
			return nil, err
		}
	}

	engine := &literal.Engine{
		Eval:      o.ev,
		ExpandEnv: o.expandEnv,
		Environ:   o.environ,
		Locale:    o.locale,
	}

	doc := ir.NewDocument()
	for _, re := range entries {
		if re.line.Kind == token.LineSection {
			doc.EnsureSection(re.line.Name)
			continue
		}
		sec := doc.EnsureSection(re.section)
		switch re.line.Kind {
		case token.LineComment:
			sec.AddComment(re.line.Text)
		case token.LineKeyValue:
			typed, err := engine.TypedValue(o.ctx, re.line.Value)
			if err != nil {
				o.logger.Warn("value fell back to string",
					"section", re.section, "key", re.line.Key,
					"line", re.lineNo, "err", err)
			}
			sec.AddKeyValue(re.line.Key, re.line.Value, typed)
			o.logger.Debug("typed value",
				"section", re.section, "key", re.line.Key,
				"kind", typed.Kind.String())
		}
	}
	return doc, nil
}

// classify splits d into lines, classifies each, and collects the
// concatenation of all raw values for the guard. Section state threads
// through: entries before any header land in the No-Section section.
func classify(d string, o *parseOpts) ([]rawEntry, string) {
	var (
		entries []rawEntry
		raws    strings.Builder
		section = ir.NoSection
	)
	lines := strings.Split(strings.ReplaceAll(d, "\r\n", "\n"), "\n")
	for i, text := range lines {
		ln := token.Classify(text)
		switch ln.Kind {
		case token.LineBlank:
			continue
		case token.LineSection:
			section = ln.Name
			o.logger.Verbose("section", "name", ln.Name, "line", i+1)
		case token.LineMalformed:
			o.logger.Warn("malformed line skipped", "line", i+1, "text", text)
			continue
		case token.LineKeyValue:
			raws.WriteString(ln.Value)
		}
		entries = append(entries, rawEntry{section: section, line: ln, lineNo: i + 1})
	}
	return entries, raws.String()
}
