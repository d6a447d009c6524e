package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://wellquiz-catalog.json"

// fileSchema is the JSON Schema a catalog file must satisfy.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"prompts": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type": "integer",
					},
					"text": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"interventions": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"id", "text", "interventions"},
				"additionalProperties": false,
			},
		},
		"interventions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "minLength": 1},
					"emoji":    map[string]any{"type": "string"},
					"benefits": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"timing":   map[string]any{"type": "string"},
					"dosage":   map[string]any{"type": "string"},
				},
				"required":             []any{"name"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"prompts", "interventions"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles fileSchema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the Go literal through encoding/json.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against fileSchema.
func validateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: schema validation failed: %w", ErrInvalidCatalog, err)
	}
	return nil
}
