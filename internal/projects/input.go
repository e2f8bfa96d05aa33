package projects

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/plotplan/takeoff-tracker/internal/common"
)

// ManualInput is a manually entered measurement record, the alternative to
// extracting quantities from a document.
type ManualInput struct {
	Address    string  `json:"address"`
	Block      string  `json:"block"`
	Lot        string  `json:"lot"`
	SidewalkSF float64 `json:"sidewalk_sf"`
	ApronSF    float64 `json:"apron_sf"`
	CurbLF     float64 `json:"curb_lf"`
	DrivewaySF float64 `json:"driveway_sf"`
	Notes      string  `json:"notes"`
}

// BuildManualInputJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. Quantities are constrained to non-negative numbers so bad
// input is rejected before it reaches the calculator.
func BuildManualInputJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"address":     map[string]any{"type": "string", "minLength": 1},
			"block":       map[string]any{"type": "string"},
			"lot":         map[string]any{"type": "string"},
			"sidewalk_sf": quantityProp(),
			"apron_sf":    quantityProp(),
			"curb_lf":     quantityProp(),
			"driveway_sf": quantityProp(),
			"notes":       map[string]any{"type": "string"},
		},
		"required": []string{"address"},
	}
}

func quantityProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validate json: %w", err)
	}
	return nil
}

// ParseManualInput parses and validates a manual-entry JSON document.
func ParseManualInput(data []byte) (*ManualInput, error) {
	if err := ValidateJSONAgainstSchema(BuildManualInputJSONSchema(), data); err != nil {
		return nil, common.NewAppError("MANUAL_INPUT", err.Error(), common.ErrInvalidInput)
	}

	var in ManualInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, common.NewAppError("MANUAL_INPUT", "decode input", err)
	}
	return &in, nil
}
