package directive

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360/componentvocab/errors"
)

// Load reads one directive schema declaration from YAML. Declarations are
// static metadata only; nothing here parses or dispatches directives.
//
// Unknown document keys are rejected so typos in declarations surface
// early instead of silently dropping a field.
func Load(r io.Reader) (Schema, error) {
	var s Schema
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return Schema{}, errors.WrapInvalid(err, "Schema", "Load", "YAML decoding")
	}
	if err := checkSchema(s); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// LoadFile reads one directive schema declaration from a YAML file.
func LoadFile(path string) (Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return Schema{}, errors.Wrap(err, "Schema", "LoadFile", "open")
	}
	defer f.Close()
	return Load(f)
}

func checkSchema(s Schema) error {
	if s.Name == "" {
		return errors.WrapInvalid(errors.ErrInvalidSchema, "Schema", "Load", "schema name validation")
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.Name == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: unnamed field in %q", errors.ErrInvalidSchema, s.Name),
				"Schema", "Load", "field name validation")
		}
		if seen[field.Name] {
			return errors.WrapInvalid(
				fmt.Errorf("%w: duplicate field %q in %q", errors.ErrInvalidSchema, field.Name, s.Name),
				"Schema", "Load", "duplicate field check")
		}
		seen[field.Name] = true

		if !field.Type.Valid() {
			return errors.WrapInvalid(
				fmt.Errorf("%w: field %q has unknown type %q", errors.ErrInvalidSchema, field.Name, field.Type),
				"Schema", "Load", "field type validation")
		}
		if field.Type == FieldTokens {
			if field.ValueType != "" && !field.ValueType.Valid() {
				return errors.WrapInvalid(
					fmt.Errorf("%w: field %q has unknown element type %q",
						errors.ErrInvalidSchema, field.Name, field.ValueType),
					"Schema", "Load", "element type validation")
			}
		} else if field.ValueType != "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: field %q declares an element type but is not a tokens field",
					errors.ErrInvalidSchema, field.Name),
				"Schema", "Load", "element type validation")
		}
	}
	return nil
}
