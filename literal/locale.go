package literal

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale fixes how digit grouping and the decimal separator are read in
// numeric literals, so classification is stable regardless of the host's
// process locale.
type Locale struct {
	Tag     language.Tag
	Decimal rune
	Group   rune
}

// commaDecimal lists base languages whose conventional numeric format uses
// a comma decimal separator and a point (or space) group separator.
var commaDecimal = map[string]bool{
	"af": true, "az": true, "be": true, "bg": true, "bs": true, "ca": true,
	"cs": true, "da": true, "de": true, "el": true, "es": true, "et": true,
	"fi": true, "fr": true, "hr": true, "hu": true, "hy": true, "id": true,
	"is": true, "it": true, "ka": true, "kk": true, "lt": true, "lv": true,
	"mk": true, "nb": true, "nl": true, "nn": true, "no": true, "pl": true,
	"pt": true, "ro": true, "ru": true, "sk": true, "sl": true, "sq": true,
	"sr": true, "sv": true, "tr": true, "uk": true, "vi": true,
}

// LocaleFor derives separator conventions from a BCP 47 tag. The
// undetermined tag gives point-decimal, comma-group.
func LocaleFor(tag language.Tag) Locale {
	loc := Locale{Tag: tag, Decimal: '.', Group: ','}
	base, conf := tag.Base()
	if conf == language.No {
		return loc
	}
	if commaDecimal[base.String()] {
		loc.Decimal = ','
		loc.Group = '.'
	}
	return loc
}

// SystemLocale reads the caller's locale from LC_ALL, LC_NUMERIC, and LANG
// in that order, falling back to the undetermined tag.
func SystemLocale() Locale {
	for _, name := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// strip ".UTF-8" style charset and "@" modifiers
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		tag, err := language.Parse(v)
		if err != nil {
			continue
		}
		return LocaleFor(tag)
	}
	return LocaleFor(language.Und)
}
