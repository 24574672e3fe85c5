// Package directive declares the schemas of view and resource
// registration directives as static metadata.
//
// The schemas describe the attributes each directive accepts: names,
// titles, types, required flags, and element types for token lists. An
// external configuration engine reads these declarations to parse and
// dispatch its directives, and an admin UI reads them to build forms;
// this package itself executes nothing.
//
// Three consumption paths are provided:
//
//   - the Schema/Field structs directly (Builtin, ViewDirective,
//     ResourceDirective, ...), JSON-serializable for UI export;
//   - Validate, a lenient field-by-field check of a directive's attribute
//     map producing structured, form-mappable errors;
//   - JSONSchema/ValidateDocument for consumers standardized on JSON
//     Schema documents.
//
// Schema declarations can also be loaded from YAML with Load/LoadFile.
package directive
