package parse

import (
	"testing"

	"github.com/confit-format/confit/ir"
)

// FuzzParse asserts that arbitrary input never panics and that whatever
// parses keeps the raw-before-typed invariant.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("[a]\nk=v\n")
	f.Add("; comment\nk=$(1 + 2)kb\n")
	f.Add("\\;weird\\==x\n[s]\n")
	f.Add("k=%HOME%\n")
	f.Fuzz(func(t *testing.T, in string) {
		doc, err := Parse([]byte(in))
		if err != nil {
			return
		}
		for _, s := range doc.Sections() {
			for _, e := range s.Entries() {
				if e.Kind == ir.KeyValueEntry && e.Key == "" {
					t.Errorf("empty key accepted in section %q", s.Name())
				}
			}
		}
	})
}
