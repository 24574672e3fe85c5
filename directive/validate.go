package directive

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a validation error for a specific directive field.
// It provides structured error information that can be displayed to users
// and mapped to specific form fields in the UI.
//
// Error codes are standardized:
//   - "required": Field is required but missing
//   - "type": Value doesn't match the field's declared type
//   - "identifier": String is not a valid identifier
//   - "dotted": String is not a valid dotted path
//   - "tokens": Tokens list or one of its elements is malformed
type ValidationError struct {
	Field   string `json:"field"`   // Name of the field that failed validation
	Message string `json:"message"` // Human-readable error message
	Code    string `json:"code"`    // Machine-readable error code (see above)
}

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	dottedPathPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// Validate validates a directive's attribute map against its schema.
//
// The validation is lenient: unknown fields are allowed to support schema
// evolution, and only declared fields are checked against their
// constraints. Returns all failures found; an empty slice means the
// attributes are valid.
func Validate(config map[string]any, s Schema) []ValidationError {
	var errs []ValidationError

	for _, requiredField := range s.Required() {
		if _, exists := config[requiredField]; !exists {
			errs = append(errs, ValidationError{
				Field:   requiredField,
				Message: fmt.Sprintf("Field %q is required", requiredField),
				Code:    "required",
			})
		}
	}

	for fieldName, value := range config {
		field, declared := s.Field(fieldName)
		if !declared {
			// Unknown fields are allowed (lenient validation)
			continue
		}
		if err := validateValue(fieldName, value, field.Type, field.ValueType); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

func validateValue(fieldName string, value any, fieldType, valueType FieldType) *ValidationError {
	switch fieldType {
	case FieldText, FieldPermission:
		if _, ok := value.(string); !ok {
			return typeError(fieldName, value, "string")
		}
	case FieldBool:
		if _, ok := value.(bool); !ok {
			return typeError(fieldName, value, "bool")
		}
	case FieldIdentifier:
		str, ok := value.(string)
		if !ok {
			return typeError(fieldName, value, "string")
		}
		if !identifierPattern.MatchString(str) {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("Field %q must be an identifier, got %q", fieldName, str),
				Code:    "identifier",
			}
		}
	case FieldGlobalObject, FieldGlobalInterface:
		str, ok := value.(string)
		if !ok {
			return typeError(fieldName, value, "string")
		}
		if !dottedPathPattern.MatchString(str) {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("Field %q must be a dotted path, got %q", fieldName, str),
				Code:    "dotted",
			}
		}
	case FieldTokens:
		return validateTokens(fieldName, value, valueType)
	}
	return nil
}

// validateTokens accepts either a whitespace-separated string (the wire
// form) or a pre-split []any / []string, then checks each element against
// the declared element kind.
func validateTokens(fieldName string, value any, valueType FieldType) *ValidationError {
	var elements []any
	switch v := value.(type) {
	case string:
		for _, tok := range strings.Fields(v) {
			elements = append(elements, tok)
		}
	case []string:
		for _, tok := range v {
			elements = append(elements, tok)
		}
	case []any:
		elements = v
	default:
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("Field %q must be a tokens list, got %T", fieldName, value),
			Code:    "tokens",
		}
	}

	elementType := valueType
	if elementType == "" {
		elementType = FieldText
	}
	for _, element := range elements {
		if err := validateValue(fieldName, element, elementType, ""); err != nil {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("Field %q has an invalid element: %s", fieldName, err.Message),
				Code:    "tokens",
			}
		}
	}
	return nil
}

func typeError(fieldName string, value any, expected string) *ValidationError {
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("Field %q must be a %s, got %T", fieldName, expected, value),
		Code:    "type",
	}
}
