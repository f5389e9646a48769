package extract

import "regexp"

// NewItalian builds the regional Italian extractor.
func NewItalian() Extractor {
	return &localeExtractor{p: profile{
		language:     "IT",
		vendor:       "amazon.it",
		currency:     "EUR",
		decimalComma: true,
		orderNumberPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)numero ordine\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)ordine n\.?\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)ordine\s*:?\s*(\d{3}-\d{7}-\d{7})`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ordine effettuato il\s*:?\s*(\d{1,2}\s+\p{L}+\s+\d{4})`),
			regexp.MustCompile(`(?i)data (?:della )?fattura\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
			regexp.MustCompile(`(?i)data ordine\s*:?\s*(\d{1,2}\s+\p{L}+\s+\d{4})`),
		},
		itemQtyPattern:  regexp.MustCompile(`^(\d{1,3})\s*[xX×]\s+(.{3,}?)\s+(` + eur + `)$`),
		itemLinePattern: regexp.MustCompile(`^(.{3,}?)\s+(` + eur + `)$`),
		summarySkip:     regexp.MustCompile(`(?i)^(?:subtotale|totale|spedizione|iva|importo|articol)`),
		subtotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)subtotale\s*:?\s*(` + eur + `)`),
		},
		shippingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)spedizione\s*(?:e gestione)?\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)costi di spedizione\s*:?\s*(` + eur + `)`),
		},
		taxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)iva\s*(?:\(\d+\s?%\))?\s*:?\s*(` + eur + `)`),
		},
		totalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)totale ordine\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?im)^totale\s*:?\s*(` + eur + `)`),
		},
	}}
}
