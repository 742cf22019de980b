// internal/escpos/sanitize.go
package escpos

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and removes the combining
// marks, folding e.g. "ç" to "c" and "ã" to "a".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// specials maps Latin characters that do not decompose into base + mark
// to close ASCII transliterations.
var specials = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"þ", "th", "Þ", "Th",
	"ð", "dh", "Ð", "Dh",
	"ł", "l", "Ł", "L",
)

// Sanitize folds text to the printable character set of the printer's
// single-byte encoding. Diacritics are stripped, a handful of special
// Latin characters are transliterated and anything else outside printable
// ASCII is dropped. Line breaks and tabs pass through verbatim.
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	folded, _, err := transform.String(stripMarks, specials.Replace(s))
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(r)
		case r >= 0x20 && r < 0x7F:
			b.WriteRune(r)
		}
	}
	return b.String()
}
