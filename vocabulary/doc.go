// Package vocabulary provides enumerable, tokenized views over a utility
// registry, used to populate selection widgets (drop-downs) in admin UIs.
//
// # Contracts
//
// A Term is a (value, token, title) triple; a token is a restricted-ASCII
// string form of the term's identity, safe for round-tripping through form
// submissions. A Vocabulary is a read-only set of terms supporting
// containment, lookup by value, lookup by token, iteration, and length.
//
// # Variants
//
// Four vocabularies cover the common registry views:
//
//   - UtilityVocabulary: point-in-time snapshot of all utilities
//     registered for one contract. Queries the registry once at
//     construction; iterates sorted by token for stable UI ordering.
//   - UtilityNames: live view over the registration names of one
//     contract. Every operation re-queries the registry, so results are
//     always current. Names are tokenized through a reversible base64
//     encoding, so arbitrary Unicode names survive a form round-trip and
//     the unnamed utility gets the short token "t".
//   - InterfacesVocabulary: snapshot over the contracts known to the
//     registry's interface index.
//   - ObjectInterfacesVocabulary: the flattened set of contracts one
//     object provides, each named by its qualified name.
//
// # Lifecycle
//
// A vocabulary is built per lookup context (typically once per form
// render) and discarded. Vocabularies never write to the registry, take
// the registry as an explicit constructor dependency, and add no shared
// mutable state of their own.
//
// # Errors
//
// Failed lookups return a classified TermNotFound error carrying the
// unmatched key; errors.IsNotFoundByValue and errors.IsNotFoundByToken
// distinguish the two lookup paths. Contains never fails: it reports a
// failed lookup as false.
package vocabulary
