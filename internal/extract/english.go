package extract

import "regexp"

// usd is the domestic amount shape: dollar sign, optional thousands
// separators, two decimals.
const usd = `\$\s?\d{1,3}(?:,\d{3})*\.\d{2}`

// NewEnglish builds the domestic English extractor.
func NewEnglish() Extractor {
	return &localeExtractor{p: profile{
		language:     "EN",
		vendor:       "amazon.com",
		currency:     "USD",
		decimalComma: false,
		orderNumberPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)final details for order\s*#?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)order\s*(?:number|#)\s*:?\s*(\d{3}-\d{7}-\d{7})`),
			regexp.MustCompile(`(?i)order\s*:?\s*(\d{3}-\d{7}-\d{7})`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)order placed\s*:?\s*([A-Za-z]+\s+\d{1,2},\s*\d{4})`),
			regexp.MustCompile(`(?i)invoice date\s*:?\s*([A-Za-z]+\s+\d{1,2},\s*\d{4})`),
			regexp.MustCompile(`(?i)order placed\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
		},
		itemQtyPattern:  regexp.MustCompile(`^(\d{1,3})\s*[xX×]\s+(.{3,}?)\s+(` + usd + `)$`),
		itemLinePattern: regexp.MustCompile(`^(.{3,}?)\s+(` + usd + `)$`),
		summarySkip:     regexp.MustCompile(`(?i)^(?:sub\s?total|total|order total|grand total|shipping|tax|estimated tax|balance|items? (?:ordered|shipped)|payment|gift)`),
		subtotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)item\(?s?\)?\s+subtotal\s*:?\s*(` + usd + `)`),
			regexp.MustCompile(`(?i)sub\s?total\s*:?\s*(` + usd + `)`),
		},
		shippingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)shipping\s*(?:&|and)\s*handling\s*:?\s*(` + usd + `)`),
			regexp.MustCompile(`(?i)shipping\s*:?\s*(` + usd + `)`),
		},
		taxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)estimated tax(?:\s+to be collected)?\s*:?\s*(` + usd + `)`),
			regexp.MustCompile(`(?i)sales tax\s*:?\s*(` + usd + `)`),
			regexp.MustCompile(`(?i)\btax\s*:?\s*(` + usd + `)`),
		},
		totalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)grand total\s*:?\s*(` + usd + `)`),
			regexp.MustCompile(`(?i)order total\s*:?\s*(` + usd + `)`),
			regexp.MustCompile(`(?im)^total\s*:?\s*(` + usd + `)`),
		},
	}}
}
