package extract

import "regexp"

// NewSpanish builds the regional Spanish extractor.
func NewSpanish() Extractor {
	return &localeExtractor{p: profile{
		language:     "ES",
		vendor:       "amazon.es",
		currency:     "EUR",
		decimalComma: true,
		orderNumberPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)número de pedido\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)pedido n\.?[°º]?\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)pedido\s*:?\s*(\d{3}-\d{7}-\d{7})`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)pedido realizado el\s*:?\s*(\d{1,2}\s+de\s+\p{L}+\s+de\s+\d{4})`),
			regexp.MustCompile(`(?i)fecha de (?:la )?factura\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
			regexp.MustCompile(`(?i)fecha del pedido\s*:?\s*(\d{1,2}\s+de\s+\p{L}+\s+de\s+\d{4})`),
		},
		itemQtyPattern:  regexp.MustCompile(`^(\d{1,3})\s*[xX×]\s+(.{3,}?)\s+(` + eur + `)$`),
		itemLinePattern: regexp.MustCompile(`^(.{3,}?)\s+(` + eur + `)$`),
		summarySkip:     regexp.MustCompile(`(?i)^(?:subtotal|total|importe|envío|gastos de envío|iva|artículos?)`),
		subtotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)subtotal\s*:?\s*(` + eur + `)`),
		},
		shippingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)gastos de envío\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)envío\s*:?\s*(` + eur + `)`),
		},
		taxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)iva\s*(?:\(\d+\s?%\))?\s*:?\s*(` + eur + `)`),
		},
		totalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)importe total\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?i)total del pedido\s*:?\s*(` + eur + `)`),
			regexp.MustCompile(`(?im)^total\s*:?\s*(` + eur + `)`),
		},
	}}
}
