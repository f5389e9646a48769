package normalize

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

// Pagination markers and legal boilerplate, per format. Regional invoices
// are frequently multi-language, so the regional list carries pagination
// phrases for every locale the classifier can imply.
var (
	reDomesticPagination = regexp.MustCompile(`(?im)^\s*page\s+\d+\s+of\s+\d+\s*$`)
	reRegionalPagination = regexp.MustCompile(`(?im)^\s*(?:page\s+\d+\s+(?:of|sur)\s+\d+|seite\s+\d+\s+von\s+\d+|pagina\s+\d+\s+di\s+\d+|página\s+\d+\s+de\s+\d+)\s*$`)

	domesticBoilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^.*conditions of use.*$`),
		regexp.MustCompile(`(?im)^.*privacy notice.*$`),
		regexp.MustCompile(`(?im)^.*©.*all rights reserved.*$`),
	}
	regionalBoilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^.*impressum.*$`),
		regexp.MustCompile(`(?im)^.*umsatzsteuer-identifikationsnummer.*$`),
		regexp.MustCompile(`(?im)^.*conditions générales de vente.*$`),
		regexp.MustCompile(`(?im)^.*condizioni generali di vendita.*$`),
		regexp.MustCompile(`(?im)^.*condiciones generales de venta.*$`),
		regexp.MustCompile(`(?im)^.*©.*all rights reserved.*$`),
	}
)

var (
	// regional layouts break words at the margin without trailing
	// whitespace; domestic ones leave a space after the hyphen
	reHyphenRegional = regexp.MustCompile(`(\p{L})-\n(\p{L})`)
	reHyphenDomestic = regexp.MustCompile(`(\p{L})- +\n\s*(\p{L})`)

	reCurrencySpacing = regexp.MustCompile(`(\d)([€£])`)
	reCheckboxGlyphs  = regexp.MustCompile(`[☐☑☒□■✓✔]`)

	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// ForFormat performs the aggressive, format-conditioned cleanup that runs
// after classification: boilerplate and pagination removal, hyphenation
// rejoin, currency spacing, form-field artifact removal, and a final
// whitespace pass. Unknown formats get the generic variant with no
// locale-specific phrase lists.
func ForFormat(s string, tag entity.FormatTag) string {
	if s == "" {
		return ""
	}
	switch tag {
	case entity.FormatDomestic:
		s = reDomesticPagination.ReplaceAllString(s, "")
		for _, re := range domesticBoilerplate {
			s = re.ReplaceAllString(s, "")
		}
		s = reHyphenDomestic.ReplaceAllString(s, "$1$2")
	case entity.FormatRegionalEU:
		s = reRegionalPagination.ReplaceAllString(s, "")
		for _, re := range regionalBoilerplate {
			s = re.ReplaceAllString(s, "")
		}
		s = reHyphenRegional.ReplaceAllString(s, "$1$2")
	default:
		s = reHyphenDomestic.ReplaceAllString(s, "$1$2")
	}
	s = reCurrencySpacing.ReplaceAllString(s, "$1 $2")
	s = reCheckboxGlyphs.ReplaceAllString(s, "")
	return finalWhitespacePass(s)
}

// finalWhitespacePass collapses noisy whitespace while keeping line breaks.
// Conservative: runs of 3+ blank lines become exactly one blank line.
func finalWhitespacePass(s string) string {
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
