package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

func TestClassifyDomestic(t *testing.T) {
	assert.Equal(t, entity.FormatDomestic, Classify("Final Details for Order #123-4567890-1234567"))
	assert.Equal(t, entity.FormatDomestic, Classify("thank you for shopping at amazon.com"))
}

func TestClassifyRegional(t *testing.T) {
	assert.Equal(t, entity.FormatRegionalEU, Classify("amazon.de Rechnung für Ihre Bestellung"))
	assert.Equal(t, entity.FormatRegionalEU, Classify("Facture\nConditions Générales de Vente"))
	assert.Equal(t, entity.FormatRegionalEU, Classify("Impressum\nSeite 1 von 1"))
}

func TestClassifyUnknown(t *testing.T) {
	assert.Equal(t, entity.FormatUnknown, Classify(""))
	assert.Equal(t, entity.FormatUnknown, Classify("lorem ipsum dolor sit amet"))
}

func TestClassifyDomesticWinsTies(t *testing.T) {
	// both signal sets fire; domestic is checked first
	text := "Final Details for Order\nRechnung\nImpressum"
	assert.Equal(t, entity.FormatDomestic, Classify(text))
}
