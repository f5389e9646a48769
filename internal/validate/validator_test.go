package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

func record(currency string, items []entity.InvoiceItem, subtotal, shipping, tax, total *string) *entity.InvoiceRecord {
	return &entity.InvoiceRecord{
		OrderNumber: entity.Str("123-4567890-1234567"),
		Items:       items,
		Subtotal:    subtotal,
		Shipping:    shipping,
		Tax:         tax,
		Total:       total,
		Currency:    currency,
	}
}

func usdItem(desc, price string, qty int) entity.InvoiceItem {
	return entity.InvoiceItem{Description: desc, Quantity: entity.Int(qty), UnitPrice: entity.Str(price)}
}

func TestValidateConsistentRecord(t *testing.T) {
	v := New(DefaultConfig())
	rec := record("USD",
		[]entity.InvoiceItem{usdItem("Mouse", "$39.99", 1), usdItem("Cable", "$39.99", 1)},
		entity.Str("$79.98"), entity.Str("$0.00"), entity.Str("$6.40"), entity.Str("$86.38"))

	res := v.Validate(rec)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 100, res.Score)
}

func TestValidateToleranceBoundary(t *testing.T) {
	v := New(DefaultConfig())

	// discrepancy of exactly the tolerance: minor, never "high"
	rec := record("USD", []entity.InvoiceItem{usdItem("Widget", "$10.00", 1)},
		entity.Str("$11.00"), nil, nil, nil)
	res := v.Validate(rec)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "item_sum_mismatch", res.Warnings[0].Type)
	assert.Equal(t, entity.SeverityWarning, res.Warnings[0].Severity)

	// one cent above the tolerance: high
	rec = record("USD", []entity.InvoiceItem{usdItem("Widget", "$10.00", 1)},
		entity.Str("$11.01"), nil, nil, nil)
	res = v.Validate(rec)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, entity.SeverityHigh, res.Errors[0].Severity)
	assert.False(t, res.IsValid)
}

func TestNewHonorsZeroTolerance(t *testing.T) {
	// a $0.50 discrepancy: within the default tolerance
	rec := record("USD", []entity.InvoiceItem{usdItem("Widget", "$10.00", 1)},
		entity.Str("$10.50"), nil, nil, nil)

	v := New(DefaultConfig())
	res := v.Validate(rec)
	assert.Empty(t, res.Errors)

	// zero tolerance is a legal setting, not a request for defaults
	cfg := DefaultConfig()
	cfg.Tolerance = decimal.Zero
	res = New(cfg).Validate(rec)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, entity.SeverityHigh, res.Errors[0].Severity)

	// only the zero-value Config falls back to DefaultConfig
	res = New(Config{}).Validate(rec)
	assert.Empty(t, res.Errors)
}

func TestValidateCriticalDiscrepancy(t *testing.T) {
	v := New(DefaultConfig())
	rec := record("USD", []entity.InvoiceItem{usdItem("Widget", "$10.00", 1)},
		entity.Str("$20.00"), nil, nil, nil)
	res := v.Validate(rec)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, entity.SeverityCritical, res.Errors[0].Severity)
	assert.False(t, res.IsValid)
}

func TestValidateSubTenCentDifferencesIgnored(t *testing.T) {
	v := New(DefaultConfig())
	rec := record("USD", []entity.InvoiceItem{usdItem("Widget", "$10.00", 1)},
		entity.Str("$10.05"), nil, nil, nil)
	res := v.Validate(rec)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidateItemSumAgainstTotalWhenNoSubtotal(t *testing.T) {
	v := New(DefaultConfig())
	rec := record("USD", []entity.InvoiceItem{usdItem("Widget", "$10.00", 2)},
		nil, nil, nil, entity.Str("$40.00"))
	res := v.Validate(rec)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "item_sum_mismatch", res.Errors[0].Type)
	assert.Equal(t, entity.SeverityCritical, res.Errors[0].Severity)
}

func TestValidateTotalConsistency(t *testing.T) {
	v := New(DefaultConfig())
	rec := record("USD", nil,
		entity.Str("$50.00"), entity.Str("$5.00"), entity.Str("$4.00"), entity.Str("$70.00"))
	res := v.Validate(rec)
	found := false
	for _, is := range res.Errors {
		if is.Type == "total_mismatch" {
			found = true
			assert.Equal(t, entity.SeverityCritical, is.Severity)
		}
	}
	assert.True(t, found, "expected a total_mismatch issue")
}

func TestValidateRegionalCommaDecimals(t *testing.T) {
	v := New(DefaultConfig())
	rec := record("EUR",
		[]entity.InvoiceItem{
			{Description: "Lautsprecher", Quantity: entity.Int(1), UnitPrice: entity.Str("129,99 €")},
			{Description: "Kabel", Quantity: entity.Int(1), UnitPrice: entity.Str("29,99 €")},
		},
		entity.Str("159,98 €"), nil, nil, nil)
	res := v.Validate(rec)
	for _, is := range append(res.Errors, res.Warnings...) {
		assert.NotEqual(t, "item_sum_mismatch", is.Type, "comma decimals must reconcile cleanly")
	}
}

func TestValidateMissingDataIsWarnedNotFatal(t *testing.T) {
	v := New(DefaultConfig())
	rec := &entity.InvoiceRecord{Currency: "USD"}
	res := v.Validate(rec)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.NotEmpty(t, res.Warnings)
	assert.Less(t, res.Score, 100)
}

func TestScoreMonotonicUnderCriticalIssues(t *testing.T) {
	v := New(DefaultConfig())
	critical := entity.Issue{Type: "x", Severity: entity.SeverityCritical, Message: "x"}

	var errs []entity.Issue
	prev := v.Score(errs, nil)
	assert.Equal(t, 100, prev)
	for i := 0; i < 5; i++ {
		errs = append(errs, critical)
		next := v.Score(errs, nil)
		if prev > 0 {
			assert.Less(t, next, prev)
		} else {
			assert.Equal(t, 0, next)
		}
		assert.GreaterOrEqual(t, next, 0)
		prev = next
	}
}

func TestScoreSeverityOrdering(t *testing.T) {
	v := New(DefaultConfig())
	critical := []entity.Issue{{Severity: entity.SeverityCritical}}
	high := []entity.Issue{{Severity: entity.SeverityHigh}}
	warning := []entity.Issue{{Severity: entity.SeverityWarning}}

	assert.Less(t, v.Score(critical, nil), v.Score(high, nil))
	assert.Less(t, v.Score(high, nil), v.Score(nil, warning))
	assert.Less(t, v.Score(nil, warning), v.Score(nil, nil))
}
