// Package extract pulls order metadata, line items, and monetary totals out
// of normalized invoice text. One extractor per supported locale, selected
// by detected language code, with a generic best-effort fallback. Every
// method returns nil/empty on unmatched input; nothing in this package
// panics or returns an error for malformed text.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

// Extractor is the shared per-locale contract. Extract is the entry point;
// the field methods are exposed individually for diagnostic tooling.
type Extractor interface {
	Language() string
	ExtractOrderNumber(text string) *string
	ExtractOrderDate(text string) *string
	ExtractItems(text string) []entity.InvoiceItem
	ExtractSubtotal(text string) *string
	ExtractShipping(text string) *string
	ExtractTax(text string) *string
	ExtractTotal(text string) *string
	CalculateSubtotalFromItems(items []entity.InvoiceItem) *string
	Extract(text string) *entity.InvoiceRecord
}

// reStructuralOrder is the label-free 3-7-7 digit-group pattern shared by
// every marketplace layout. Tried after all locale-labeled patterns.
var reStructuralOrder = regexp.MustCompile(`\b(\d{3})-(\d{7})-(\d{7})\b`)

var reWhitespaceRun = regexp.MustCompile(`\s+`)

// profile parameterizes the shared extractor implementation for one locale:
// ordered pattern lists (first match wins), the summary-label filter for the
// item scan, and number-formatting conventions.
type profile struct {
	language     string
	vendor       string
	currency     string
	decimalComma bool

	orderNumberPatterns []*regexp.Regexp // capture 1: full order number
	datePatterns        []*regexp.Regexp // capture 1: date string
	itemQtyPattern      *regexp.Regexp   // captures: qty, description, amount
	itemLinePattern     *regexp.Regexp   // captures: description, amount
	summarySkip         *regexp.Regexp   // lines to exclude from item scan
	subtotalPatterns    []*regexp.Regexp // capture 1: amount
	shippingPatterns    []*regexp.Regexp
	taxPatterns         []*regexp.Regexp
	totalPatterns       []*regexp.Regexp
}

type localeExtractor struct {
	p profile
}

func (e *localeExtractor) Language() string { return e.p.language }

// ExtractOrderNumber tries the locale-labeled patterns in order, then the
// structural 3-7-7 scan. Digit-group lengths are validated before a match
// is accepted.
func (e *localeExtractor) ExtractOrderNumber(text string) *string {
	for _, re := range e.p.orderNumberPatterns {
		if m := re.FindStringSubmatch(text); m != nil && validOrderNumber(m[1]) {
			return entity.Str(m[1])
		}
	}
	if m := reStructuralOrder.FindString(text); m != "" && validOrderNumber(m) {
		return entity.Str(m)
	}
	return nil
}

func validOrderNumber(s string) bool {
	groups := strings.Split(s, "-")
	if len(groups) != 3 {
		return false
	}
	return len(groups[0]) == 3 && len(groups[1]) == 7 && len(groups[2]) == 7
}

// ExtractOrderDate tries labeled patterns in fixed order, validates each
// capture for plausibility, then falls back to the generic cross-locale
// scan.
func (e *localeExtractor) ExtractOrderDate(text string) *string {
	for _, re := range e.p.datePatterns {
		if m := re.FindStringSubmatch(text); m != nil && plausibleDate(m[1]) {
			return entity.Str(m[1])
		}
	}
	if d := genericDateScan(text); d != "" {
		return entity.Str(d)
	}
	return nil
}

// ExtractItems scans line by line. Quantity-prefixed patterns run before the
// bare description+price pattern, and lines matching the locale's summary
// labels are skipped so subtotal/total rows are not misread as items.
func (e *localeExtractor) ExtractItems(text string) []entity.InvoiceItem {
	var items []entity.InvoiceItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if e.p.summarySkip != nil && e.p.summarySkip.MatchString(line) {
			continue
		}
		if it, ok := e.matchItem(line); ok {
			items = append(items, it)
		}
	}
	return items
}

func (e *localeExtractor) matchItem(line string) (entity.InvoiceItem, bool) {
	if e.p.itemQtyPattern != nil {
		if m := e.p.itemQtyPattern.FindStringSubmatch(line); m != nil {
			qty := parseQuantity(m[1])
			unit := m[3]
			it := entity.InvoiceItem{
				Description: cleanDescription(m[2]),
				Quantity:    entity.Int(qty),
				UnitPrice:   entity.Str(unit),
			}
			it.TotalPrice = e.lineTotal(unit, qty)
			return it, true
		}
	}
	if e.p.itemLinePattern != nil {
		if m := e.p.itemLinePattern.FindStringSubmatch(line); m != nil {
			return entity.InvoiceItem{
				Description: cleanDescription(m[1]),
				Quantity:    entity.Int(1),
				UnitPrice:   entity.Str(m[2]),
				TotalPrice:  entity.Str(m[2]),
			}, true
		}
	}
	return entity.InvoiceItem{}, false
}

// parse applies the profile's decimal convention, or per-value sniffing for
// the generic profile, which has no currency of its own.
func (e *localeExtractor) parse(s string) (decimal.Decimal, error) {
	if e.p.currency == "" {
		return ParseAmount(s, looksCommaDecimal(s))
	}
	return ParseAmount(s, e.p.decimalComma)
}

func (e *localeExtractor) lineTotal(unit string, qty int) *string {
	d, err := e.parse(unit)
	if err != nil {
		return nil
	}
	total := d.Mul(decimal.NewFromInt(int64(qty)))
	return entity.Str(RenderAmount(total, e.p.currency))
}

func parseQuantity(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 1
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 {
		return 1
	}
	return n
}

func cleanDescription(s string) string {
	return strings.TrimSpace(reWhitespaceRun.ReplaceAllString(s, " "))
}

func (e *localeExtractor) ExtractSubtotal(text string) *string {
	return firstAmount(e.p.subtotalPatterns, text)
}

func (e *localeExtractor) ExtractShipping(text string) *string {
	return firstAmount(e.p.shippingPatterns, text)
}

func (e *localeExtractor) ExtractTax(text string) *string {
	return firstAmount(e.p.taxPatterns, text)
}

func (e *localeExtractor) ExtractTotal(text string) *string {
	return firstAmount(e.p.totalPatterns, text)
}

func firstAmount(patterns []*regexp.Regexp, text string) *string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if s := strings.TrimSpace(m[1]); s != "" {
				return entity.Str(s)
			}
		}
	}
	return nil
}

// CalculateSubtotalFromItems sums unitPrice × quantity over items with
// parseable prices and re-renders the result in the locale's number format.
// Returns nil when no item price parses.
func (e *localeExtractor) CalculateSubtotalFromItems(items []entity.InvoiceItem) *string {
	sum := decimal.Zero
	parsed := 0
	for _, it := range items {
		price := it.UnitPrice
		if price == nil {
			price = it.TotalPrice
		}
		if price == nil {
			continue
		}
		d, err := e.parse(*price)
		if err != nil {
			continue
		}
		qty := 1
		if it.Quantity != nil && *it.Quantity > 0 {
			qty = *it.Quantity
		}
		sum = sum.Add(d.Mul(decimal.NewFromInt(int64(qty))))
		parsed++
	}
	if parsed == 0 {
		return nil
	}
	return entity.Str(RenderAmount(sum, e.p.currency))
}

// Extract orchestrates the field extractors into a populated InvoiceRecord.
// When no labeled subtotal is found the item-sum fallback fills it in. The
// record is returned before validation; missing fields stay nil.
func (e *localeExtractor) Extract(text string) *entity.InvoiceRecord {
	rec := &entity.InvoiceRecord{
		OrderNumber: e.ExtractOrderNumber(text),
		OrderDate:   e.ExtractOrderDate(text),
		Items:       e.ExtractItems(text),
		Subtotal:    e.ExtractSubtotal(text),
		Shipping:    e.ExtractShipping(text),
		Tax:         e.ExtractTax(text),
		Total:       e.ExtractTotal(text),
		Currency:    e.p.currency,
		Vendor:      e.p.vendor,
	}
	if rec.Subtotal == nil && len(rec.Items) > 0 {
		rec.Subtotal = e.CalculateSubtotalFromItems(rec.Items)
	}
	return rec
}
