package eval

import (
	"os"
	"strings"
)

// ExpandEnv expands %NAME% placeholders using lookup (os.LookupEnv when
// nil). %% is a literal percent; an unset name leaves the placeholder
// unchanged, matching the host expansion this models.
func ExpandEnv(s string, lookup func(string) (string, bool)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		b.WriteString(s[:i])
		s = s[i+1:]
		j := strings.IndexByte(s, '%')
		switch {
		case j < 0:
			b.WriteByte('%')
		case j == 0:
			b.WriteByte('%')
			s = s[1:]
		default:
			name := s[:j]
			if v, ok := lookup(name); ok {
				b.WriteString(v)
			} else {
				b.WriteByte('%')
				b.WriteString(name)
				b.WriteByte('%')
			}
			s = s[j+1:]
		}
		i = strings.IndexByte(s, '%')
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
	}
}
