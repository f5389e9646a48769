package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reAmountNoise = regexp.MustCompile(`[^\d.,-]`)
	reCommaTail   = regexp.MustCompile(`,\d{1,2}\s*€?\s*$`)
)

// ParseAmount parses a localized amount string into a decimal. decimalComma
// selects the regional convention (comma as decimal separator, dot as
// thousands separator); otherwise the domestic convention applies.
func ParseAmount(s string, decimalComma bool) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(reAmountNoise.ReplaceAllString(s, ""))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("no numeric content in %q", s)
	}
	if decimalComma {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	return decimal.NewFromString(cleaned)
}

// ParseLocalized parses an amount using the convention implied by the
// record's currency tag, falling back to per-value sniffing when the
// currency is unknown (generic extractor output).
func ParseLocalized(s, currency string) (decimal.Decimal, error) {
	switch currency {
	case "EUR":
		return ParseAmount(s, true)
	case "USD":
		return ParseAmount(s, false)
	default:
		return ParseAmount(s, looksCommaDecimal(s))
	}
}

func looksCommaDecimal(s string) bool {
	return reCommaTail.MatchString(s)
}

// RenderAmount re-renders a decimal in the locale formatting implied by the
// currency tag. Used only for derived values (subtotal-from-items); directly
// extracted amounts keep their original text.
func RenderAmount(d decimal.Decimal, currency string) string {
	switch currency {
	case "USD":
		return "$" + d.StringFixed(2)
	case "EUR":
		return strings.ReplaceAll(d.StringFixed(2), ".", ",") + " €"
	default:
		return d.StringFixed(2)
	}
}
