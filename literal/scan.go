package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// numeric is the result of scanning a candidate numeric literal:
// [sign] (0x<hex> | [int][.frac][e[sign]exp]) [width] [multiplier].
type numeric struct {
	neg bool

	hex       bool
	hexDigits string

	// canonical decimal form with '.' as separator, group separators
	// stripped, for the non-hex branch
	canon   string
	hasFrac bool
	hasExp  bool

	width string // "", y, uy, s, us, u, l, ul, n, d
	mult  int    // exponent of 1024, 0 when absent
}

// widthSuffixes is ordered longest-first so "us" never scans as "u"+"s".
var widthSuffixes = []string{"uy", "us", "ul", "y", "s", "u", "l", "n", "d"}

var multSuffixes = map[string]int{"kb": 1, "mb": 2, "gb": 3, "tb": 4, "pb": 5}

// scanNumeric reports whether s (already trimmed) matches the numeric
// literal grammar under loc's separator conventions. A match says nothing
// about representability; conversion decides that.
func scanNumeric(s string, loc Locale) (numeric, bool) {
	var n numeric
	if s == "" {
		return n, false
	}
	i := 0
	switch s[0] {
	case '+':
		i++
	case '-':
		n.neg = true
		i++
	}
	if i >= len(s) {
		return n, false
	}

	if strings.HasPrefix(s[i:], "0x") || strings.HasPrefix(s[i:], "0X") {
		i += 2
		start := i
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
		if i == start {
			return n, false
		}
		n.hex = true
		n.hexDigits = s[start:i]
		return scanSuffixes(&n, s[i:])
	}

	dec := byte(loc.Decimal)
	grp := byte(loc.Group)
	var canon strings.Builder
	intDigits, fracDigits := 0, 0

	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			canon.WriteByte(c)
			intDigits++
			i++
			continue
		case c == grp && intDigits > 0 && i+1 < len(s) && isDigit(s[i+1]):
			// group separator between digits
			i++
			continue
		}
		break
	}
	if i < len(s) && s[i] == dec {
		j := i + 1
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			canon.WriteByte('.')
			canon.WriteString(s[start:j])
			fracDigits = j - start
			n.hasFrac = true
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return n, false
	}
	if intDigits == 0 {
		// ".5" has no integer digits; keep the canonical form parseable
		n.canon = "0" + canon.String()
	} else {
		n.canon = canon.String()
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		// exponent only when digits follow, else 'e' starts a suffix
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			n.canon += "e" + s[i+1:j]
			n.hasExp = true
			i = j
		}
	}
	return scanSuffixes(&n, s[i:])
}

// scanSuffixes consumes an optional width suffix then an optional
// multiplier suffix; anything left over fails the grammar. Hexadecimal
// magnitudes consume 'd' as a digit, so the decimal width suffix can
// never attach to a hex literal.
func scanSuffixes(n *numeric, rest string) (numeric, bool) {
	if !isASCII(rest) {
		return *n, false
	}
	rest = strings.ToLower(rest)
	for _, w := range widthSuffixes {
		if strings.HasPrefix(rest, w) {
			n.width = w
			rest = rest[len(w):]
			break
		}
	}
	if len(rest) == 2 {
		if m, ok := multSuffixes[rest]; ok {
			n.mult = m
			rest = ""
		}
	}
	if rest != "" {
		return *n, false
	}
	return *n, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// scanBool matches an optional single non-alphanumeric prefix rune
// followed by true/false, case-insensitively.
func scanBool(s string) (val, ok bool) {
	if s == "" {
		return false, false
	}
	r, sz := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && sz <= 1 {
		return false, false
	}
	body := s
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		body = s[sz:]
	}
	switch strings.ToLower(body) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
