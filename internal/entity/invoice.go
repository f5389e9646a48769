package entity

// FormatTag is a coarse marketplace-layout classification, independent of
// language. It selects which normalization rules run before extraction.
type FormatTag string

const (
	FormatDomestic   FormatTag = "domestic"
	FormatRegionalEU FormatTag = "regional_eu"
	FormatUnknown    FormatTag = "unknown"
)

// LanguageUnknown is the sentinel language code used when no locale scorer
// reaches the minimum confidence threshold.
const LanguageUnknown = "unknown"

// RawText is the pipeline input: the extracted text blob plus source
// metadata. Document-to-text extraction itself happens upstream.
type RawText struct {
	Text    string `json:"text"`
	ByteLen int    `json:"byte_len"`
	Pages   int    `json:"pages"`
}

// LanguageDetection carries the winning locale, a saturating [0,1]
// confidence, and a short human-readable justification. Evidence is for
// logging only and never drives control flow.
type LanguageDetection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// InvoiceItem is a single extracted line item. Monetary fields keep the
// original locale formatting (e.g. "129,99 €"); Quantity defaults to 1 when
// the extractor cannot parse an explicit count.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    *int    `json:"quantity,omitempty"`
	UnitPrice   *string `json:"unit_price,omitempty"`
	TotalPrice  *string `json:"total_price,omitempty"`
}

// InvoiceRecord is the root output entity. Every monetary field is either
// nil (not found) or a syntactically valid localized amount string; the
// record is fully built in one extractor pass and only the validator
// attaches to it afterwards.
type InvoiceRecord struct {
	OrderNumber       *string           `json:"order_number"`
	OrderDate         *string           `json:"order_date"`
	Items             []InvoiceItem     `json:"items"`
	Subtotal          *string           `json:"subtotal"`
	Shipping          *string           `json:"shipping"`
	Tax               *string           `json:"tax"`
	Total             *string           `json:"total"`
	Currency          string            `json:"currency"`
	Vendor            string            `json:"vendor"`
	LanguageDetection LanguageDetection `json:"language_detection"`
	Validation        *ValidationResult `json:"validation,omitempty"`

	// Diagnostics holds ordered per-stage notes collected when the caller
	// requested debug output. Empty otherwise.
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// Int returns a pointer to v. Extractors use it for quantity defaults.
func Int(v int) *int { return &v }

// Str returns a pointer to s.
func Str(s string) *string { return &s }
