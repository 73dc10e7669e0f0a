package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of deckctl.yaml.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true, FieldNameTag: "yaml", DoNotReference: true, RequiredFromJSONSchemaTags: true}
	s := r.Reflect(&Config{})
	s.Title = "deckctl configuration"
	s.Description = "deckctl.yaml; every key can be overridden with DECKCTL_<SECTION>_<KEY>."
	return s
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(s *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
