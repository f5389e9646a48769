package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// encodingRepairs maps common UTF-8-decoded-as-Latin-1 artifacts back to the
// characters they came from. Applied first to last; a later entry with the
// same source sequence wins over an earlier one.
var encodingRepairs = []struct{ from, to string }{
	{"â‚¬", "€"},
	{"Ã©", "é"},
	{"Ã¨", "è"},
	{"Ã«", "ë"},
	{"Ã¤", "ä"},
	{"Ã¶", "ö"},
	{"Ã¼", "ü"},
	{"ÃŸ", "ß"},
	{"Ã€", "À"},
	{"Ã‰", "É"},
	{"Ã ", "à"},
	{"Ã§", "ç"},
	{"Ã±", "ñ"},
	{"Ã³", "ó"},
	{"Ã­", "í"},
	{"Ãº", "ú"},
	{"Ã¡", "á"},
	{"Â£", "£"},
	{"Â°", "°"},
	{"Â ", " "},
	{"â€™", "'"},
	{"â€œ", "\""},
	{"â€�", "\""},
	{"â€“", "-"},
	{"â€”", "-"},
}

var (
	reCRLF          = regexp.MustCompile(`\r\n?`)
	reSpaceRun      = regexp.MustCompile(`[ \t]{8,}`)
	reBlankRun      = regexp.MustCompile(`\n{6,}`)
	reMojibakeProbe = regexp.MustCompile(`Ã[\x80-\xBF€‚ƒ„…†‡ˆ‰Š‹ŒŽ‘’“”•–—˜™š›œžŸ¡-¿]`)
)

// Light repairs encoding artifacts and pathological whitespace runs so the
// format classifier can pattern-match reliably. It never strips boilerplate
// or joins lines; classification depends on line structure staying intact.
// Idempotent, total, and empty-safe.
func Light(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = repairEncoding(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reSpaceRun.ReplaceAllString(s, " ")
	s = reBlankRun.ReplaceAllString(s, "\n\n\n")
	return strings.TrimSpace(s)
}

// repairEncoding applies the artifact table and the probe-gated Windows-1252
// round-trip until the text stops changing. A single pass peels only one
// layer of mis-decoding, and the round-trip can surface sequences the table
// knows; every repair strictly shrinks the text, so a fixed point is reached.
func repairEncoding(s string) string {
	for {
		prev := s
		for _, r := range encodingRepairs {
			s = strings.ReplaceAll(s, r.from, r.to)
		}
		if reMojibakeProbe.MatchString(s) {
			s = repairDoubleEncoding(s)
		}
		if s == prev {
			return s
		}
	}
}

// repairDoubleEncoding undoes one round of UTF-8 text mistakenly decoded as
// Windows-1252: it re-encodes the runes back to their 1252 bytes and checks
// whether those bytes form valid UTF-8. On any failure the input is returned
// unchanged.
func repairDoubleEncoding(s string) string {
	enc := charmap.Windows1252.NewEncoder()
	fixed, _, err := transform.String(enc, s)
	if err != nil || !utf8.ValidString(fixed) {
		return s
	}
	return fixed
}
