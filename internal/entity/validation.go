package entity

// Severity ranks a validation finding. Critical and high findings make the
// record invalid; warnings only reduce the score.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityWarning  Severity = "warning"
)

// Issue is a single categorized validation finding.
type Issue struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult annotates an InvoiceRecord with an overall score and the
// issues found. IsValid is false whenever Errors is non-empty.
type ValidationResult struct {
	Score    int     `json:"score"`
	IsValid  bool    `json:"is_valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}
