// Package language scores normalized invoice text against every supported
// locale and picks the best match. Confidence is a saturating sum of
// independent pattern weights clamped to 1.0, not a probability.
package language

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
)

// MinConfidence is the floor below which detection reports the unknown
// sentinel and the pipeline falls back to the generic extractor.
const MinConfidence = 0.20

const (
	weightStrong     = 0.15
	weightSupporting = 0.08
)

type formatSignal struct {
	re     *regexp.Regexp
	weight float64
	label  string
}

// localeScorer holds the three weighted signal classes for one locale:
// high-confidence lexical markers, medium-confidence supporting phrases,
// and locale-typical currency/date formatting patterns.
type localeScorer struct {
	language   string
	strong     []string
	supporting []string
	formats    []formatSignal
}

func (sc localeScorer) score(upper string) (float64, []string) {
	var total float64
	var hits []string
	for _, m := range sc.strong {
		if strings.Contains(upper, m) {
			total += weightStrong
			hits = append(hits, m)
		}
	}
	for _, m := range sc.supporting {
		if strings.Contains(upper, m) {
			total += weightSupporting
			hits = append(hits, m)
		}
	}
	for _, f := range sc.formats {
		if f.re.MatchString(upper) {
			total += f.weight
			hits = append(hits, f.label)
		}
	}
	if total > 1.0 {
		total = 1.0
	}
	return total, hits
}

var (
	reDollarAmount = regexp.MustCompile(`\$\s?\d+(?:,\d{3})*\.\d{2}`)
	reEuroComma    = regexp.MustCompile(`\d+(?:\.\d{3})*,\d{2}\s?€`)

	reDateEN = regexp.MustCompile(`(?:JANUARY|FEBRUARY|MARCH|APRIL|MAY|JUNE|JULY|AUGUST|SEPTEMBER|OCTOBER|NOVEMBER|DECEMBER)\s+\d{1,2},\s+\d{4}`)
	reDateDE = regexp.MustCompile(`\d{1,2}\.\s?(?:JANUAR|FEBRUAR|MÄRZ|APRIL|MAI|JUNI|JULI|AUGUST|SEPTEMBER|OKTOBER|NOVEMBER|DEZEMBER)\s+\d{4}`)
	reDateFR = regexp.MustCompile(`\d{1,2}\s+(?:JANVIER|FÉVRIER|MARS|AVRIL|MAI|JUIN|JUILLET|AOÛT|SEPTEMBRE|OCTOBRE|NOVEMBRE|DÉCEMBRE)\s+\d{4}`)
	reDateIT = regexp.MustCompile(`\d{1,2}\s+(?:GENNAIO|FEBBRAIO|MARZO|APRILE|MAGGIO|GIUGNO|LUGLIO|AGOSTO|SETTEMBRE|OTTOBRE|NOVEMBRE|DICEMBRE)\s+\d{4}`)
	reDateES = regexp.MustCompile(`\d{1,2}\s+DE\s+(?:ENERO|FEBRERO|MARZO|ABRIL|MAYO|JUNIO|JULIO|AGOSTO|SEPTIEMBRE|OCTUBRE|NOVIEMBRE|DICIEMBRE)\s+DE\s+\d{4}`)
)

// scorers is ordered by locale priority; ties break toward the earlier
// entry (most common locales first).
var scorers = []localeScorer{
	{
		language:   "EN",
		strong:     []string{"FINAL DETAILS FOR ORDER", "ORDER PLACED", "INVOICE", "ORDER TOTAL", "AMAZON.COM"},
		supporting: []string{"SUBTOTAL", "SHIPPING & HANDLING", "ITEMS ORDERED", "SALES TAX", "GRAND TOTAL"},
		formats: []formatSignal{
			{reDollarAmount, 0.15, "USD amount format"},
			{reDateEN, 0.10, "EN date format"},
		},
	},
	{
		language:   "DE",
		strong:     []string{"RECHNUNG", "BESTELLNUMMER", "BESTELLUNG AUFGEGEBEN", "AMAZON.DE"},
		supporting: []string{"ZWISCHENSUMME", "VERSANDKOSTEN", "MWST", "GESAMTBETRAG", "ARTIKEL"},
		formats: []formatSignal{
			{reEuroComma, 0.10, "EUR comma format"},
			{reDateDE, 0.10, "DE date format"},
		},
	},
	{
		language:   "FR",
		strong:     []string{"FACTURE", "NUMÉRO DE COMMANDE", "COMMANDE EFFECTUÉE", "AMAZON.FR"},
		supporting: []string{"SOUS-TOTAL", "LIVRAISON", "TVA", "MONTANT TOTAL", "ARTICLES"},
		formats: []formatSignal{
			{reEuroComma, 0.10, "EUR comma format"},
			{reDateFR, 0.10, "FR date format"},
		},
	},
	{
		language:   "IT",
		strong:     []string{"FATTURA", "NUMERO ORDINE", "ORDINE EFFETTUATO", "AMAZON.IT"},
		supporting: []string{"SUBTOTALE", "SPEDIZIONE", "IVA", "TOTALE ORDINE", "ARTICOLI"},
		formats: []formatSignal{
			{reEuroComma, 0.10, "EUR comma format"},
			{reDateIT, 0.10, "IT date format"},
		},
	},
	{
		language:   "ES",
		strong:     []string{"FACTURA", "NÚMERO DE PEDIDO", "PEDIDO REALIZADO", "AMAZON.ES"},
		supporting: []string{"SUBTOTAL", "ENVÍO", "IVA", "IMPORTE TOTAL", "ARTÍCULOS"},
		formats: []formatSignal{
			{reEuroComma, 0.10, "EUR comma format"},
			{reDateES, 0.10, "ES date format"},
		},
	},
}

// Detect runs every locale scorer over the uppercased text and returns the
// best match. Below MinConfidence the language is the unknown sentinel and
// the low score is reported as-is; detection never fails outright.
func Detect(text string) entity.LanguageDetection {
	if strings.TrimSpace(text) == "" {
		return entity.LanguageDetection{
			Language: entity.LanguageUnknown,
			Evidence: "empty input",
		}
	}
	upper := strings.ToUpper(text)

	best := entity.LanguageDetection{Language: entity.LanguageUnknown}
	for _, sc := range scorers {
		conf, hits := sc.score(upper)
		// strictly-greater keeps the earlier (higher priority) locale on ties
		if conf > best.Confidence {
			best = entity.LanguageDetection{
				Language:   sc.language,
				Confidence: conf,
				Evidence:   fmt.Sprintf("matched %s", strings.Join(hits, ", ")),
			}
		}
	}
	if best.Confidence < MinConfidence {
		best.Language = entity.LanguageUnknown
		if best.Evidence == "" {
			best.Evidence = "no locale signals matched"
		}
	}
	return best
}
