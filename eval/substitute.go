package eval

import (
	"fmt"
	"strings"
)

// substitute scans s for $$ (a literal dollar), $(expr) spans, and $name
// references, handing each span to evalSpan. A dollar followed by
// anything else stays literal. Parentheses nest; quoting inside a span is
// not interpreted.
func substitute(s string, evalSpan func(src string, ident bool) (string, error)) (string, error) {
	i := strings.IndexByte(s, '$')
	if i < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		b.WriteString(s[:i])
		s = s[i+1:]
		switch {
		case s == "":
			b.WriteByte('$')
		case s[0] == '$':
			b.WriteByte('$')
			s = s[1:]
		case s[0] == '(':
			end := matchParen(s)
			if end < 0 {
				return "", fmt.Errorf("%w: unbalanced parentheses", ErrSubstitute)
			}
			out, err := evalSpan(s[1:end], false)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			s = s[end+1:]
		case isIdentStart(s[0]):
			j := 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			out, err := evalSpan(s[:j], true)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			s = s[j:]
		default:
			b.WriteByte('$')
		}
		i = strings.IndexByte(s, '$')
		if i < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
	}
}

// matchParen returns the index of the ')' balancing s[0] == '(', or -1.
func matchParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// isIdentifier reports whether s is a bare identifier.
func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}
