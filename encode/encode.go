// Package encode renders a document back to configuration text under a
// configurable output mode and byte encoding. Encoding only reads the
// document; no transformation here ever mutates it.
package encode

import (
	"fmt"
	"io"
	"os"

	"github.com/confit-format/confit/ir"
	"github.com/confit-format/confit/token"
	"golang.org/x/text/transform"
)

// Encode writes doc to w. Sections appear in document order and entries
// in insertion order; one blank line terminates each section's block.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.enc == nil {
		return encodeTo(doc, w, es.mode)
	}
	tw := transform.NewWriter(w, es.enc.NewEncoder())
	if err := encodeTo(doc, tw, es.mode); err != nil {
		tw.Close()
		return err
	}
	// the final flush can fail too
	if err := tw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return nil
}

func encodeTo(doc *ir.Document, w io.Writer, mode Mode) error {
	for i, sec := range doc.Sections() {
		// entries before any header serialize headerless, so they parse
		// back into the same synthetic section
		if !(i == 0 && sec.Name() == ir.NoSection) {
			if err := writeLine(w, "["+sec.Name()+"]"); err != nil {
				return err
			}
		}
		for _, e := range sec.Entries() {
			if err := writeEntry(w, e, mode); err != nil {
				return err
			}
		}
		if err := writeLine(w, ""); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, e *ir.Entry, mode Mode) error {
	if e.Kind == ir.CommentEntry {
		return writeLine(w, e.Text)
	}
	key := token.EscapeKey(e.Key)
	switch mode {
	case Unexpanded:
		return writeLine(w, key+"="+e.RawValue)
	case Expanded:
		return writeLine(w, key+"="+e.Typed.Render())
	case All:
		if err := writeLine(w, key+"="+e.Typed.Render()); err != nil {
			return err
		}
		return writeLine(w, key+"unexpanded="+e.RawValue)
	}
	return fmt.Errorf("%w: unknown mode %d", ErrEncoding, mode)
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}

// Export renders doc into the file at path. Failure to create or write
// the target is fatal and surfaced; the document is unaffected either
// way. NoClobber refuses an existing target; Append appends instead of
// truncating.
func Export(doc *ir.Document, path string, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	flags := os.O_WRONLY | os.O_CREATE
	switch {
	case es.noClobber:
		flags |= os.O_EXCL
	case es.appendTo:
		flags |= os.O_APPEND
	default:
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %q: %w", ErrIO, path, err)
	}
	if err := Encode(doc, f, opts...); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %q: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", ErrIO, path, err)
	}
	return nil
}
