package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/kkc-shortcuts/config.schema.json"

// GenerateSchema returns the JSON Schema of config.toml, indented.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "kkc-shortcuts configuration"
	schema.Description = "Configuration of the kana-kanji shortcut editor"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
