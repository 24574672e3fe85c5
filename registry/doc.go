// Package registry provides the utility registry the vocabulary adapters
// read from, together with the capability-contract model utilities are
// registered against.
//
// # Model
//
// An Interface is a named capability contract; it may extend other
// contracts, and Flattened() enumerates the full transitive set. A utility
// is any value registered for a contract under a name (the empty name is
// the "unnamed utility"). Objects advertise the contracts they satisfy by
// implementing Provider rather than being introspected.
//
// # Reader vs Registry
//
// Vocabularies consume the narrow Reader interface and nothing else. The
// concrete Registry implements Reader plus the write API and an index of
// contracts by qualified name. Embedders with their own registry only need
// to satisfy Reader:
//
//	type Reader interface {
//	    UtilitiesFor(iface *Interface) []NamedUtility
//	    QueryUtility(iface *Interface, name string) (any, bool)
//	}
//
// # Concurrency
//
// Registry is safe for concurrent readers and writers; all reads return
// copies. Vocabularies built on top add no shared mutable state of their
// own.
package registry
