// Package componentvocab provides integration glue for a component
// architecture: enumerable, tokenized vocabularies over a utility
// registry, declarative schemas for view and resource registration
// directives, and redirection tables for moved import paths.
//
// # Scope
//
// componentvocab is a read-only adapter layer. It defines no registry of
// its own beyond the in-memory implementation its tests and small
// embedders use, performs no I/O, and executes no directives; it binds
// into a larger framework that supplies those.
//
//	┌─────────────────────────────────────┐
//	│           Admin UI / forms          │  consumes terms + schemas
//	└─────────────────────────────────────┘
//	           ↓ renders from
//	┌─────────────────────────────────────┐
//	│  vocabulary    directive  deprecate │  adapters + static metadata
//	└─────────────────────────────────────┘
//	           ↓ reads
//	┌─────────────────────────────────────┐
//	│             registry                │  utilities by (contract, name)
//	└─────────────────────────────────────┘
//
// # Packages
//
//   - registry: capability contracts, the narrow Reader interface
//     vocabularies consume, and a thread-safe in-memory registry.
//   - vocabulary: snapshot and live vocabularies over registered
//     utilities, name-token encoding, interface-derived vocabularies.
//   - directive: view/resource directive schemas as static metadata with
//     field-level and JSON Schema validation.
//   - deprecate: forwarding tables for moved identifiers.
//   - errors: classified errors shared by all packages.
//   - metric: prometheus counters for registry and vocabulary lookups.
package componentvocab
