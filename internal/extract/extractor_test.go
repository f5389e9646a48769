package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

func TestExtractOrderNumberLabeled(t *testing.T) {
	ex := NewEnglish()
	got := ex.ExtractOrderNumber("Order Number: 111-2223334-4445556")
	require.NotNil(t, got)
	assert.Equal(t, "111-2223334-4445556", *got)
}

func TestExtractOrderNumberStructuralFallback(t *testing.T) {
	// no label the extractor knows, structural 3-7-7 pattern still fires
	ex := NewGeneric()
	got := ex.ExtractOrderNumber("Bestelnummer: 123-4567890-1234567 bedankt")
	require.NotNil(t, got)
	assert.Equal(t, "123-4567890-1234567", *got)
}

func TestExtractOrderNumberRejectsBadGroups(t *testing.T) {
	ex := NewEnglish()
	assert.Nil(t, ex.ExtractOrderNumber("Order Number: 12-345-678"))
	assert.Nil(t, ex.ExtractOrderNumber("ref 1234-5678901-2345678x"))
	assert.Nil(t, ex.ExtractOrderNumber("no numbers here"))
}

func TestExtractOrderDateLabeled(t *testing.T) {
	ex := NewEnglish()
	got := ex.ExtractOrderDate("Order Placed: December 15, 2023")
	require.NotNil(t, got)
	assert.Equal(t, "December 15, 2023", *got)
}

func TestExtractOrderDateGenericFallback(t *testing.T) {
	ex := NewEnglish()
	got := ex.ExtractOrderDate("Datum: 15.12.2023")
	require.NotNil(t, got)
	assert.Equal(t, "15.12.2023", *got)

	assert.Nil(t, ex.ExtractOrderDate("no date in sight"))
}

func TestExtractItemsQuantityPrefixed(t *testing.T) {
	ex := NewEnglish()
	items := ex.ExtractItems("2 x Widget   $5.00\nPlain Gadget $7.50")
	require.Len(t, items, 2)

	assert.Equal(t, "Widget", items[0].Description)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 2, *items[0].Quantity)
	assert.Equal(t, "$5.00", *items[0].UnitPrice)
	assert.Equal(t, "$10.00", *items[0].TotalPrice)

	assert.Equal(t, "Plain Gadget", items[1].Description)
	assert.Equal(t, 1, *items[1].Quantity)
	assert.Equal(t, "$7.50", *items[1].UnitPrice)
}

func TestExtractItemsSkipsSummaryRows(t *testing.T) {
	ex := NewEnglish()
	text := "Subtotal: $10.00\nTotal: $12.00\nShipping & Handling: $2.00\nReal Item $10.00"
	items := ex.ExtractItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Real Item", items[0].Description)
}

func TestCalculateSubtotalFromItemsCommaDecimal(t *testing.T) {
	ex := NewGerman()
	items := []entity.InvoiceItem{
		{Description: "Lautsprecher", Quantity: entity.Int(1), UnitPrice: entity.Str("129,99 €")},
		{Description: "Kabel", Quantity: entity.Int(1), UnitPrice: entity.Str("29,99 €")},
	}
	got := ex.CalculateSubtotalFromItems(items)
	require.NotNil(t, got)
	assert.Equal(t, "159,98 €", *got)
}

func TestCalculateSubtotalFromItemsNoParseablePrices(t *testing.T) {
	ex := NewGerman()
	items := []entity.InvoiceItem{{Description: "kein Preis"}}
	assert.Nil(t, ex.CalculateSubtotalFromItems(items))
}

func TestExtractFillsSubtotalFromItems(t *testing.T) {
	ex := NewGerman()
	rec := ex.Extract("1 x Lautsprecher 129,99 €\n1 x Kabel 29,99 €")
	require.NotNil(t, rec.Subtotal)
	assert.Equal(t, "159,98 €", *rec.Subtotal)
}

func TestParseAmountConventions(t *testing.T) {
	d, err := ParseAmount("1.234,56 €", true)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.String())

	d, err = ParseAmount("$1,234.56", false)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.String())

	_, err = ParseAmount("no digits", false)
	assert.Error(t, err)
}

func TestRenderAmount(t *testing.T) {
	d, err := ParseAmount("159,98 €", true)
	require.NoError(t, err)
	assert.Equal(t, "159,98 €", RenderAmount(d, "EUR"))
	assert.Equal(t, "$159.98", RenderAmount(d, "USD"))
	assert.Equal(t, "159.98", RenderAmount(d, ""))
}

func TestRegistryDispatch(t *testing.T) {
	assert.Equal(t, "EN", ForLanguage("EN").Language())
	assert.Equal(t, "DE", ForLanguage("de").Language())
	assert.Equal(t, "generic", ForLanguage("NL").Language())
	assert.Equal(t, "generic", ForLanguage(entity.LanguageUnknown).Language())

	avail := Available()
	assert.Len(t, avail, 5)
	// mutating the copy must not touch the registry
	delete(avail, "EN")
	assert.Equal(t, "EN", ForLanguage("EN").Language())
}

func TestExtractTotalsGerman(t *testing.T) {
	ex := NewGerman()
	text := "Zwischensumme: 159,98 €\nVersandkosten: 0,00 €\nMwSt: 30,40 €\nGesamtbetrag: 190,38 €"
	require.NotNil(t, ex.ExtractSubtotal(text))
	assert.Equal(t, "159,98 €", *ex.ExtractSubtotal(text))
	assert.Equal(t, "0,00 €", *ex.ExtractShipping(text))
	assert.Equal(t, "30,40 €", *ex.ExtractTax(text))
	assert.Equal(t, "190,38 €", *ex.ExtractTotal(text))
}

func TestExtractMissesAreNil(t *testing.T) {
	ex := NewFrench()
	rec := ex.Extract("rien d'utile ici")
	assert.Nil(t, rec.OrderNumber)
	assert.Nil(t, rec.OrderDate)
	assert.Empty(t, rec.Items)
	assert.Nil(t, rec.Subtotal)
	assert.Nil(t, rec.Shipping)
	assert.Nil(t, rec.Tax)
	assert.Nil(t, rec.Total)
	assert.Equal(t, "EUR", rec.Currency)
	assert.Equal(t, "amazon.fr", rec.Vendor)
}
