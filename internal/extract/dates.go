package extract

import "regexp"

var reYear = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
var reShortDate = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b`)

// genericDatePatterns is the cross-locale fallback scan, tried in order when
// no locale-labeled date pattern matched.
var genericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},\s*\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}\.?\s+(?:januar|februar|märz|april|mai|juni|juli|august|september|oktober|november|dezember)\s+\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4})\b`),
	regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
	regexp.MustCompile(`\b(\d{1,2}\.\d{1,2}\.\d{2,4})\b`),
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`),
}

// plausibleDate accepts a captured date string only when it is short enough
// to be a date and carries either a 4-digit year or a short numeric form.
func plausibleDate(s string) bool {
	if s == "" || len(s) > 40 {
		return false
	}
	return reYear.MatchString(s) || reShortDate.MatchString(s)
}

// genericDateScan tries the cross-locale patterns in fixed order and returns
// the first plausible capture, or empty.
func genericDateScan(text string) string {
	for _, re := range genericDatePatterns {
		if m := re.FindStringSubmatch(text); m != nil && plausibleDate(m[1]) {
			return m[1]
		}
	}
	return ""
}
