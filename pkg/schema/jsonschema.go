package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed registry-schema.json
var registrySchemaJSON string

// ValidateDocument checks a whole raw registry document against the
// embedded JSON schema. It complements ValidateEntry: the per-field
// validator owns the exact entry-level messages, while the schema also
// catches shape problems (wrong value types, malformed categories)
// that the field rules tolerate.
func ValidateDocument(raw map[string]any) error {
	schemaLoader := gojsonschema.NewStringLoader(registrySchemaJSON)
	documentLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("registry document does not conform to schema:")
	for _, desc := range result.Errors() {
		sb.WriteString(fmt.Sprintf("\n  - %s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
