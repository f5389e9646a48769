package extract

import "regexp"

// NewFrench builds the regional French extractor.
func NewFrench() Extractor {
	return &localeExtractor{p: profile{
		language:     "FR",
		vendor:       "amazon.fr",
		currency:     "EUR",
		decimalComma: true,
		orderNumberPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)numéro de commande\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)commande n[°o]\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)commande\s*:?\s*(\d{3}-\d{7}-\d{7})`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)commande effectuée le\s*:?\s*(\d{1,2}\s+\p{L}+\s+\d{4})`),
			regexp.MustCompile(`(?i)date de (?:la )?facture\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
			regexp.MustCompile(`(?i)date de (?:la )?commande\s*:?\s*(\d{1,2}\s+\p{L}+\s+\d{4})`),
		},
		itemQtyPattern:  regexp.MustCompile(`^(\d{1,3})\s*[xX×]\s+(.{3,}?)\s+(` + eur + `)$`),
		itemLinePattern: regexp.MustCompile(`^(.{3,}?)\s+(` + eur + `)$`),
		summarySkip:     regexp.MustCompile(`(?i)^(?:sous-total|total|montant|livraison|frais de port|tva|articles?)`),
		subtotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)sous-total\s*:?\s*(` + eur + `)`),
		},
		shippingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)frais de port\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)livraison\s*:?\s*(` + eur + `)`),
		},
		taxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)tva\s*(?:\(\d+\s?%\))?\s*:?\s*(` + eur + `)`),
		},
		totalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)montant total\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?im)^total\s*(?:ttc)?\s*:?\s*(` + eur + `)`),
		},
	}}
}
