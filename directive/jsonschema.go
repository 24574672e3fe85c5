package directive

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/c360/componentvocab/errors"
)

// JSONSchema renders the directive schema as a JSON Schema (draft-07)
// document, for consumers that validate whole directive documents or
// generate forms from a standard schema format.
func (s Schema) JSONSchema() ([]byte, error) {
	properties := make(map[string]any, len(s.Fields))
	for _, field := range s.Fields {
		properties[field.Name] = propertySchema(field)
	}

	doc := map[string]any{
		"$schema":     "http://json-schema.org/draft-07/schema#",
		"title":       s.Name,
		"description": s.Description,
		"type":        "object",
		"properties":  properties,
	}
	if required := s.Required(); len(required) > 0 {
		doc["required"] = required
	}

	rendered, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Schema", "JSONSchema", "schema rendering")
	}
	return rendered, nil
}

func propertySchema(field Field) map[string]any {
	prop := map[string]any{
		"description": field.Title,
	}
	switch field.Type {
	case FieldBool:
		prop["type"] = "boolean"
	case FieldTokens:
		prop["type"] = "array"
		prop["items"] = map[string]any{"type": "string"}
	case FieldIdentifier:
		prop["type"] = "string"
		prop["pattern"] = identifierPattern.String()
	case FieldGlobalObject, FieldGlobalInterface:
		prop["type"] = "string"
		prop["pattern"] = dottedPathPattern.String()
	default:
		prop["type"] = "string"
	}
	if field.Default != nil {
		prop["default"] = field.Default
	}
	return prop
}

// ValidateDocument validates a JSON directive document against the
// schema's JSON Schema rendering. Structural failures are returned as
// ValidationErrors; a broken schema or unparseable document is an error.
func (s Schema) ValidateDocument(document []byte) ([]ValidationError, error) {
	rendered, err := s.JSONSchema()
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(rendered),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Schema", "ValidateDocument", "document validation")
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, resultError := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   resultError.Field(),
			Message: resultError.Description(),
			Code:    resultError.Type(),
		})
	}
	return errs, nil
}
