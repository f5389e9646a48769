package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightEmptyAndWhitespace(t *testing.T) {
	assert.Equal(t, "", Light(""))
	assert.Equal(t, "", Light("   \n\t  "))
}

func TestLightRepairsEncodingArtifacts(t *testing.T) {
	assert.Equal(t, "Café 12,00 €", Light("CafÃ© 12,00 â‚¬"))
	assert.Equal(t, "Größe: groß", Light("GrÃ¶ÃŸe: groÃŸ"))
	assert.Equal(t, "Livré à domicile", Light("LivrÃ© Ã  domicile"))
}

func TestLightRepairsDoubleEncoding(t *testing.T) {
	// "â" is not in the repair table; the charmap round-trip recovers it
	assert.Equal(t, "â la carte", Light("Ã¢ la carte"))
}

func TestLightRepairsDoubleMojibake(t *testing.T) {
	// two layers of mis-decoding: the charmap round-trip peels the outer
	// layer and yields a sequence the repair table then resolves
	assert.Equal(t, "Café", Light("CafÃƒÂ©"))
}

func TestLightCollapsesPathologicalWhitespace(t *testing.T) {
	got := Light("Total:" + strings.Repeat(" ", 40) + "$5.00")
	assert.Equal(t, "Total: $5.00", got)

	got = Light("a" + strings.Repeat("\n", 12) + "b")
	assert.Equal(t, "a\n\n\nb", got)
}

func TestLightKeepsLineStructure(t *testing.T) {
	in := "Final Details for Order\nPage 1 of 2\nSubtotal: $5.00"
	assert.Equal(t, in, Light(in))
}

func TestLightIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"CafÃ© â‚¬ 12,00",
		"CafÃƒÂ©",
		"Ã¢ la carte",
		"a\t\t\t\t\t\t\t\t\tb",
		"x" + strings.Repeat("\n", 20) + "y",
		"\x00\x01\xff\xfe binary garbage \x80",
		"Total:   $86.38\r\nTax: $6.40",
	}
	for _, in := range inputs {
		once := Light(in)
		assert.Equal(t, once, Light(once), "second pass changed output for %q", in)
	}
}
