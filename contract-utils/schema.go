package contract_utils

import (
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
	"github.com/nuts-foundation/nuts-contract-service/domain"
)

const contractRequestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["@type", "ids:permission"],
  "properties": {
    "@type": {"const": "ids:ContractRequest"},
    "@id": {"type": "string"},
    "ids:permission": {
      "type": "array",
      "items": {"$ref": "#/$defs/permission"}
    }
  },
  "$defs": {
    "reference": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {
          "type": "object",
          "required": ["@id"],
          "properties": {"@id": {"type": "string", "minLength": 1}}
        }
      ]
    },
    "permission": {
      "type": "object",
      "required": ["ids:target"],
      "properties": {
        "ids:target": {"$ref": "#/$defs/reference"},
        "ids:action": {"type": "array", "items": {"$ref": "#/$defs/reference"}},
        "ids:constraint": {"type": "array", "items": {"type": "object"}}
      }
    }
  }
}`

var (
	requestSchema     *jsonschema.Schema
	requestSchemaErr  error
	requestSchemaOnce sync.Once
)

func compiledRequestSchema() (*jsonschema.Schema, error) {
	requestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		requestSchema, requestSchemaErr = compiler.Compile([]byte(contractRequestSchema))
	})
	return requestSchema, requestSchemaErr
}

// validateContractRequest checks body against the ContractRequest document schema.
func validateContractRequest(body []byte) error {
	schema, err := compiledRequestSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	result := schema.ValidateJSON(body)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: schema validation failed: %v", domain.ErrMalformedRequest, result.Errors)
}
