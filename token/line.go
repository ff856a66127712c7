// Package token classifies single lines of configuration source.
package token

import "strings"

// LineKind is the classification of one source line. Classification runs
// in priority order: blank, section header, comment, key/value, malformed.
type LineKind int

const (
	LineBlank LineKind = iota
	LineSection
	LineComment
	LineKeyValue
	LineMalformed
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "Blank"
	case LineSection:
		return "Section"
	case LineComment:
		return "Comment"
	case LineKeyValue:
		return "KeyValue"
	case LineMalformed:
		return "Malformed"
	}
	return "<unknown line kind>"
}

// Line is one classified source line. Text keeps the verbatim line for
// comment and malformed lines. For key/value lines, Key is the unescaped
// key and Value the remainder after '=' verbatim (possibly empty).
type Line struct {
	Kind  LineKind
	Text  string
	Name  string
	Key   string
	Value string
}

// Classify classifies one line, without its terminator.
func Classify(line string) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: LineBlank, Text: line}
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		name := trimmed[1 : len(trimmed)-1]
		if name != "" {
			return Line{Kind: LineSection, Text: line, Name: name}
		}
		return Line{Kind: LineMalformed, Text: line}
	}
	if trimmed[0] == ';' || trimmed[0] == '#' {
		return Line{Kind: LineComment, Text: line}
	}
	if key, value, ok := splitKeyValue(line); ok {
		return Line{Kind: LineKeyValue, Text: line, Key: key, Value: value}
	}
	return Line{Kind: LineMalformed, Text: line}
}

// splitKeyValue splits at the first unescaped '='. The key may not be
// empty and may not contain an unescaped ';' or '#'; surrounding
// whitespace around the key is insignificant. The value is everything
// after '=' verbatim.
func splitKeyValue(line string) (key, value string, ok bool) {
	esc := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case ';', '#':
			return "", "", false
		case '=':
			k := strings.TrimSpace(line[:i])
			if k == "" {
				return "", "", false
			}
			return UnescapeKey(k), line[i+1:], true
		}
	}
	return "", "", false
}

// EscapeKey escapes the characters that would otherwise terminate or
// reclassify a key: '=', ';', '#' and backslash itself. The serializer
// uses this so an exported key/value line re-imports as the same key.
func EscapeKey(k string) string {
	if !strings.ContainsAny(k, `=;#\`) {
		return k
	}
	var b strings.Builder
	b.Grow(len(k) + 4)
	for i := 0; i < len(k); i++ {
		switch k[i] {
		case '=', ';', '#', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(k[i])
	}
	return b.String()
}

// UnescapeKey reverses EscapeKey. A backslash before any character yields
// that character; a trailing backslash is kept literally.
func UnescapeKey(k string) string {
	if !strings.ContainsRune(k, '\\') {
		return k
	}
	var b strings.Builder
	b.Grow(len(k))
	esc := false
	for i := 0; i < len(k); i++ {
		c := k[i]
		if esc {
			b.WriteByte(c)
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		b.WriteByte(c)
	}
	if esc {
		b.WriteByte('\\')
	}
	return b.String()
}
