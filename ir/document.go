// Package ir holds the in-memory form of a parsed configuration document:
// ordered sections of ordered entries, with each key/value entry keeping
// both its raw source text and its resolved typed value.
package ir

import "fmt"

// NoSection is the synthetic section holding entries that appear before
// any section header in the source.
const NoSection = "No-Section"

// EntryKind discriminates the Entry union.
type EntryKind int

const (
	CommentEntry EntryKind = iota
	KeyValueEntry
)

func (k EntryKind) String() string {
	switch k {
	case CommentEntry:
		return "Comment"
	case KeyValueEntry:
		return "KeyValue"
	}
	return "<unknown entry kind>"
}

// Entry is one element of a section: either a verbatim comment line or a
// key/value record. For comments, Name is the synthetic Comment<N> name and
// Text the full literal comment line. For key/values, Name equals Key,
// RawValue is the literal source text after '=', and Typed is RawValue
// after substitution and type inference. RawValue is never rewritten once
// set; re-resolution only recomputes Typed.
type Entry struct {
	Kind EntryKind
	Name string

	Text string

	Key      string
	RawValue string
	Typed    Value
}

// Section is an ordered set of entries under one section name. Comments
// and key/value entries occupy separate namespaces: a key literally named
// Comment0 never collides with the synthetic name of the section's first
// comment.
type Section struct {
	name     string
	entries  []*Entry
	keys     map[string]*Entry
	comments int
}

func (s *Section) Name() string { return s.name }

func (s *Section) Len() int { return len(s.entries) }

// Entries returns the section's entries in insertion order.
func (s *Section) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry looks an entry up by name: a key first, then the synthetic
// Comment<N> names.
func (s *Section) Entry(name string) (*Entry, bool) {
	if e, ok := s.keys[name]; ok {
		return e, true
	}
	for _, e := range s.entries {
		if e.Kind == CommentEntry && e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Keys returns the names of the key/value entries in insertion order.
func (s *Section) Keys() []string {
	var keys []string
	for _, e := range s.entries {
		if e.Kind == KeyValueEntry {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// AddComment stores a verbatim comment line under the next synthetic
// Comment<N> name and returns that name.
func (s *Section) AddComment(text string) string {
	name := fmt.Sprintf("Comment%d", s.comments)
	s.comments++
	s.entries = append(s.entries, &Entry{Kind: CommentEntry, Name: name, Text: text})
	return name
}

// AddKeyValue appends a key/value entry. A duplicate key overwrites the
// typed and raw values in place, keeping the original position.
func (s *Section) AddKeyValue(key, raw string, typed Value) {
	if e, ok := s.keys[key]; ok {
		e.RawValue = raw
		e.Typed = typed
		return
	}
	e := &Entry{
		Kind:     KeyValueEntry,
		Name:     key,
		Key:      key,
		RawValue: raw,
		Typed:    typed,
	}
	s.entries = append(s.entries, e)
	s.keys[key] = e
}

// Document is an ordered mapping from section name to Section. It is
// constructed once, by the parser or the resolver, and read-only
// thereafter; every transformation produces a new Document.
type Document struct {
	order    []string
	sections map[string]*Section
}

func NewDocument() *Document {
	return &Document{sections: map[string]*Section{}}
}

func (d *Document) Len() int { return len(d.order) }

// SectionNames returns section names in insertion order.
func (d *Document) SectionNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Sections returns the sections in insertion order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, 0, len(d.order))
	for _, n := range d.order {
		out = append(out, d.sections[n])
	}
	return out
}

func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// EnsureSection returns the named section, creating it at the end of the
// document if absent. Reopening an existing section continues it.
func (d *Document) EnsureSection(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := &Section{name: name, keys: map[string]*Entry{}}
	d.order = append(d.order, name)
	d.sections[name] = s
	return s
}

// RawConcat concatenates every RawValue in document order. This is the
// string the safety guard approves in a single document-wide call.
func (d *Document) RawConcat() string {
	var out []byte
	for _, s := range d.Sections() {
		for _, e := range s.Entries() {
			if e.Kind == KeyValueEntry {
				out = append(out, e.RawValue...)
			}
		}
	}
	return string(out)
}
