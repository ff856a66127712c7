// Package validate checks a document against a required-keys
// specification. Findings are diagnostics only: validation never mutates
// or rejects a document.
package validate

import (
	"fmt"
	"os"
	"sort"

	"github.com/confit-format/confit/ir"
	"github.com/goccy/go-yaml"
)

// Spec maps a section name to the keys that section must contain.
type Spec map[string][]string

// ParseSpec reads a YAML required-keys specification:
//
//	database:
//	  - host
//	  - port
//	logging:
//	  - level
func ParseSpec(d []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(d, &s); err != nil {
		return nil, fmt.Errorf("bad required-keys spec: %w", err)
	}
	return s, nil
}

// LoadSpec reads a required-keys specification file.
func LoadSpec(path string) (Spec, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read required-keys spec %q: %w", path, err)
	}
	return ParseSpec(d)
}

// Finding reports one required section or key absent from a document.
// An empty Key means the whole section is missing.
type Finding struct {
	Section string
	Key     string
}

func (f Finding) String() string {
	if f.Key == "" {
		return fmt.Sprintf("missing required section [%s]", f.Section)
	}
	return fmt.Sprintf("missing required key %q in section [%s]", f.Key, f.Section)
}

// Check reports every required section and key of spec absent from doc,
// in deterministic (sorted) order.
func Check(doc *ir.Document, spec Spec) []Finding {
	var findings []Finding
	sections := make([]string, 0, len(spec))
	for name := range spec {
		sections = append(sections, name)
	}
	sort.Strings(sections)
	for _, name := range sections {
		sec, ok := doc.Section(name)
		if !ok {
			findings = append(findings, Finding{Section: name})
			continue
		}
		keys := append([]string(nil), spec[name]...)
		sort.Strings(keys)
		for _, key := range keys {
			if e, ok := sec.Entry(key); !ok || e.Kind != ir.KeyValueEntry {
				findings = append(findings, Finding{Section: name, Key: key})
			}
		}
	}
	return findings
}
