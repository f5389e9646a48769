package extract

import "regexp"

// eur is the regional amount shape: comma decimals, optional dotted
// thousands, trailing euro sign.
const eur = `\d{1,3}(?:\.\d{3})*,\d{2}\s?€`

// NewGerman builds the regional German extractor.
func NewGerman() Extractor {
	return &localeExtractor{p: profile{
		language:     "DE",
		vendor:       "amazon.de",
		currency:     "EUR",
		decimalComma: true,
		orderNumberPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)bestellnummer\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)bestell-?nr\.?\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)bestellung\s*:?\s*(\d{3}-\d{7}-\d{7})`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)bestellung aufgegeben am\s*:?\s*(\d{1,2}\.?\s?\p{L}+\s+\d{4})`),
			regexp.MustCompile(`(?i)bestelldatum\s*:?\s*(\d{1,2}\.\d{1,2}\.\d{2,4})`),
			regexp.MustCompile(`(?i)rechnungsdatum\s*:?\s*(\d{1,2}\.\d{1,2}\.\d{2,4})`),
		},
		itemQtyPattern:  regexp.MustCompile(`^(\d{1,3})\s*[xX×]\s+(.{3,}?)\s+(` + eur + `)$`),
		itemLinePattern: regexp.MustCompile(`^(.{3,}?)\s+(` + eur + `)$`),
		summarySkip:     regexp.MustCompile(`(?i)^(?:zwischensumme|gesamt|summe|versand|verpackung|mwst|umsatzsteuer|rechnungsbetrag|artikel)`),
		subtotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)zwischensumme\s*:?\s*(` + eur + `)`),
		},
		shippingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)verpackung\s*(?:&|und)\s*versand\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)versandkosten\s*:?\s*(` + eur + `)`),
		},
		taxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:anfallende\s+)?mwst\.?\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)umsatzsteuer\s*:?\s*(` + eur + `)`),
		},
		totalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)gesamtbetrag\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)gesamtsumme\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?im)^summe\s*:?\s*(` + eur + `)`),
		},
	}}
}
