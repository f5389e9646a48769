// Package validate cross-checks an extracted InvoiceRecord for arithmetic
// and structural consistency and scores it. It only annotates; extracted
// values are never mutated.
package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
	"github.com/joseph-ayodele/invoice-pipeline/internal/extract"
)

// Config holds the tolerance and scoring knobs.
type Config struct {
	// Tolerance is the absolute currency-unit allowance for rounding
	// differences. A discrepancy of exactly this value is still minor.
	Tolerance decimal.Decimal
	// MinorFloor is the smallest discrepancy worth a warning at all.
	MinorFloor decimal.Decimal

	CriticalPenalty int
	HighPenalty     int
	WarningPenalty  int
}

// DefaultConfig returns the standard tolerance of one currency unit and the
// standard penalty ladder.
func DefaultConfig() Config {
	return Config{
		Tolerance:       decimal.NewFromInt(1),
		MinorFloor:      decimal.NewFromFloat(0.10),
		CriticalPenalty: 40,
		HighPenalty:     25,
		WarningPenalty:  10,
	}
}

// Validator scores extracted records against a fixed Config.
type Validator struct {
	cfg Config
}

// New returns a Validator for cfg. Only the zero value of Config selects
// DefaultConfig; an explicitly configured tolerance of zero is honored.
func New(cfg Config) *Validator {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Validator{cfg: cfg}
}

// Validate parses the record's monetary fields using its currency
// convention, cross-checks item sums against the subtotal (or total when no
// subtotal was extracted), checks subtotal + shipping + tax against the
// total, and reduces the score per issue severity. isValid is true iff no
// critical or high issue exists.
func (v *Validator) Validate(rec *entity.InvoiceRecord) *entity.ValidationResult {
	res := &entity.ValidationResult{
		Errors:   []entity.Issue{},
		Warnings: []entity.Issue{},
	}

	subtotal, hasSubtotal := v.parseField(rec, rec.Subtotal)
	shipping, _ := v.parseField(rec, rec.Shipping)
	tax, _ := v.parseField(rec, rec.Tax)
	total, hasTotal := v.parseField(rec, rec.Total)

	itemSum, itemsParsed := v.sumItems(rec)

	// item sum vs subtotal, falling back to total when subtotal is absent
	if itemsParsed > 0 {
		base, hasBase, against := subtotal, hasSubtotal, "subtotal"
		if !hasBase {
			base, hasBase, against = total, hasTotal, "total"
		}
		if hasBase {
			v.checkDiscrepancy(res, "item_sum_mismatch",
				fmt.Sprintf("sum of %d item(s) %s differs from %s %s", itemsParsed, itemSum, against, base),
				itemSum.Sub(base).Abs(), base)
		}
	}

	// internal total consistency: subtotal + shipping + tax ≈ total
	if hasSubtotal && hasTotal {
		computed := subtotal.Add(shipping).Add(tax)
		v.checkDiscrepancy(res, "total_mismatch",
			fmt.Sprintf("subtotal + shipping + tax = %s differs from total %s", computed, total),
			computed.Sub(total).Abs(), total)
	}

	// structural findings stay warnings: they reflect missing data, not
	// inconsistent data
	if !hasTotal && !hasSubtotal {
		res.Warnings = append(res.Warnings, entity.Issue{
			Type:     "missing_totals",
			Severity: entity.SeverityWarning,
			Message:  "neither total nor subtotal could be extracted",
		})
	}
	if len(rec.Items) == 0 {
		res.Warnings = append(res.Warnings, entity.Issue{
			Type:     "no_items",
			Severity: entity.SeverityWarning,
			Message:  "no line items were extracted",
		})
	}
	if rec.OrderNumber == nil {
		res.Warnings = append(res.Warnings, entity.Issue{
			Type:     "missing_order_number",
			Severity: entity.SeverityWarning,
			Message:  "no order number could be extracted",
		})
	}

	res.Score = v.Score(res.Errors, res.Warnings)
	res.IsValid = len(res.Errors) == 0
	return res
}

// Score starts at 100 and subtracts a fixed penalty per issue severity,
// flooring at 0.
func (v *Validator) Score(errors, warnings []entity.Issue) int {
	score := 100
	for _, is := range errors {
		switch is.Severity {
		case entity.SeverityCritical:
			score -= v.cfg.CriticalPenalty
		default:
			score -= v.cfg.HighPenalty
		}
	}
	score -= len(warnings) * v.cfg.WarningPenalty
	if score < 0 {
		score = 0
	}
	return score
}

// checkDiscrepancy classifies a discrepancy by relative and absolute
// magnitude: critical above 10% of the base, high above the tolerance,
// warning for minor sub-tolerance rounding differences. A diff of exactly
// the tolerance is still minor.
func (v *Validator) checkDiscrepancy(res *entity.ValidationResult, issueType, msg string, diff, base decimal.Decimal) {
	switch {
	case base.IsPositive() && diff.GreaterThan(base.Mul(decimal.NewFromFloat(0.10))) && diff.GreaterThan(v.cfg.Tolerance):
		res.Errors = append(res.Errors, entity.Issue{Type: issueType, Severity: entity.SeverityCritical, Message: msg})
	case diff.GreaterThan(v.cfg.Tolerance):
		res.Errors = append(res.Errors, entity.Issue{Type: issueType, Severity: entity.SeverityHigh, Message: msg})
	case diff.GreaterThanOrEqual(v.cfg.MinorFloor):
		res.Warnings = append(res.Warnings, entity.Issue{Type: issueType, Severity: entity.SeverityWarning, Message: msg})
	}
}

func (v *Validator) parseField(rec *entity.InvoiceRecord, field *string) (decimal.Decimal, bool) {
	if field == nil {
		return decimal.Zero, false
	}
	d, err := extract.ParseLocalized(*field, rec.Currency)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (v *Validator) sumItems(rec *entity.InvoiceRecord) (decimal.Decimal, int) {
	sum := decimal.Zero
	parsed := 0
	for _, it := range rec.Items {
		price := it.UnitPrice
		if price == nil {
			price = it.TotalPrice
		}
		if price == nil {
			continue
		}
		d, err := extract.ParseLocalized(*price, rec.Currency)
		if err != nil {
			continue
		}
		qty := int64(1)
		if it.Quantity != nil && *it.Quantity > 0 {
			qty = int64(*it.Quantity)
		}
		sum = sum.Add(d.Mul(decimal.NewFromInt(qty)))
		parsed++
	}
	return sum, parsed
}
