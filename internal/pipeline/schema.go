package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// serialized InvoiceRecord shape, as a generic map. Downstream consumers
// (export, web layer) rely on this field set staying stable.
func BuildRecordJSONSchema() map[string]any {
	amount := map[string]any{"type": []string{"string", "null"}}
	issue := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"type":     map[string]any{"type": "string"},
			"severity": map[string]any{"type": "string", "enum": []string{"critical", "high", "warning"}},
			"message":  map[string]any{"type": "string"},
		},
		"required": []string{"type", "severity", "message"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"order_number": map[string]any{"type": []string{"string", "null"}},
			"order_date":   map[string]any{"type": []string{"string", "null"}},
			"items": map[string]any{
				"type": []string{"array", "null"},
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"quantity":    map[string]any{"type": "integer", "minimum": 1},
						"unit_price":  amount,
						"total_price": amount,
					},
					"required": []string{"description"},
				},
			},
			"subtotal": amount,
			"shipping": amount,
			"tax":      amount,
			"total":    amount,
			"currency": map[string]any{"type": "string"},
			"vendor":   map[string]any{"type": "string"},
			"language_detection": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"language":   map[string]any{"type": "string"},
					"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"evidence":   map[string]any{"type": "string"},
				},
				"required": []string{"language", "confidence", "evidence"},
			},
			"validation": map[string]any{
				"type":                 []string{"object", "null"},
				"additionalProperties": false,
				"properties": map[string]any{
					"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"is_valid": map[string]any{"type": "boolean"},
					"errors":   map[string]any{"type": "array", "items": issue},
					"warnings": map[string]any{"type": "array", "items": issue},
				},
				"required": []string{"score", "is_valid", "errors", "warnings"},
			},
			"diagnostics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"currency", "vendor", "language_detection"},
	}
}

// ValidateRecordJSON validates a serialized record against the schema.
func ValidateRecordJSON(data []byte) error {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
