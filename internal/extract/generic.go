package extract

import "regexp"

// anyAmount matches either the domestic or the regional amount shape.
const anyAmount = `(?:` + usd + `|` + eur + `)`

// NewGeneric builds the best-effort fallback extractor used when detection
// confidence is low or the locale has no registered extractor. It relies on
// the label-free structural order-number pattern, the generic date scan, a
// conservative description+price item pattern, and label-free total lines.
func NewGeneric() Extractor {
	return &localeExtractor{p: profile{
		language: "generic",
		datePatterns: []*regexp.Regexp{
			// no labeled patterns; ExtractOrderDate falls through to the
			// generic scan
		},
		itemLinePattern: regexp.MustCompile(`^(.{3,}?)\s+(` + anyAmount + `)$`),
		summarySkip:     regexp.MustCompile(`(?i)^(?:sub\s?total|total|totale?|summe|gesamt|zwischensumme|shipping|versand|livraison|spedizione|envío|tax|mwst|tva|iva)`),
		subtotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:sub\s?total|subtotale|zwischensumme|sous-total)\s*:?\s*(` + anyAmount + `)`),
		},
		totalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^(?:total|totale|gesamtbetrag|summe)\s*:?\s*(` + anyAmount + `)`),
		},
	}}
}
