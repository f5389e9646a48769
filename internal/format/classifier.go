// Package format assigns a coarse marketplace-layout tag to lightly
// normalized invoice text. The tag is independent of language and only
// selects which normalization rules run next.
package format

import (
	"strings"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

// Layout-identifying phrases. Domestic is checked before regional; the
// first list with a hit wins and no scoring is involved.
var domesticSignals = []string{
	"FINAL DETAILS FOR ORDER",
	"AMAZON.COM",
	"ORDER PLACED:",
	"SHIPPING & HANDLING",
	"CONDITIONS OF USE",
}

var regionalSignals = []string{
	"AMAZON.DE",
	"AMAZON.FR",
	"AMAZON.IT",
	"AMAZON.ES",
	"UMSATZSTEUER",
	"IMPRESSUM",
	"CONDITIONS GÉNÉRALES DE VENTE",
	"CONDIZIONI GENERALI DI VENDITA",
	"CONDICIONES GENERALES DE VENTA",
	"RECHNUNG",
	"FACTURE",
	"FATTURA",
}

// Classify inspects lightly normalized text and returns the best matching
// FormatTag, or FormatUnknown when no signal fires. Deterministic:
// first-match-wins in the fixed order above.
func Classify(text string) entity.FormatTag {
	upper := strings.ToUpper(text)
	for _, sig := range domesticSignals {
		if strings.Contains(upper, sig) {
			return entity.FormatDomestic
		}
	}
	for _, sig := range regionalSignals {
		if strings.Contains(upper, sig) {
			return entity.FormatRegionalEU
		}
	}
	return entity.FormatUnknown
}
