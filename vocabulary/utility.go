package vocabulary

import (
	"reflect"
	"sort"

	"github.com/c360/componentvocab/errors"
	"github.com/c360/componentvocab/registry"
)

// Vocabulary is an enumerable, tokenized set of terms used to populate
// selection UI. Implementations are read-only; lookups either succeed or
// fail with a TermNotFound error carrying the unmatched key.
type Vocabulary interface {
	// Contains reports whether some term's value equals value. It never
	// fails; a failed lookup is reported as false.
	Contains(value any) bool
	// GetTerm returns the term whose value equals value.
	GetTerm(value any) (Term, error)
	// GetTermByToken returns the term identified by token.
	GetTermByToken(token string) (Term, error)
	// Terms returns a fresh finite slice of all terms. Each call is
	// independently re-iterable.
	Terms() []Term
	// Len returns the number of terms.
	Len() int
}

// sameValue compares term values. Comparable values use Go equality;
// uncomparable ones (slices, maps, funcs inside) fall back to deep
// equality rather than panicking.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// UtilityVocabulary is a point-in-time snapshot over all utilities
// registered for one contract. The registry is queried exactly once at
// construction; the vocabulary never sees later registrations.
//
// Tokens are the registration names verbatim, so iteration sorted by token
// is iteration sorted by name.
type UtilityVocabulary struct {
	iface    *registry.Interface
	nameOnly bool
	terms    map[string]UtilityTerm
}

var _ Vocabulary = (*UtilityVocabulary)(nil)

// Option configures a UtilityVocabulary.
type Option func(*UtilityVocabulary)

// NameOnly makes term values the registration names instead of the
// utilities themselves. Useful when the UI only needs to present names.
func NameOnly() Option {
	return func(v *UtilityVocabulary) {
		v.nameOnly = true
	}
}

// NewUtilityVocabulary builds a snapshot vocabulary over every utility the
// reader has registered for iface.
func NewUtilityVocabulary(reader registry.Reader, iface *registry.Interface, opts ...Option) (*UtilityVocabulary, error) {
	if reader == nil {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig,
			"UtilityVocabulary", "NewUtilityVocabulary", "reader validation")
	}
	if iface == nil {
		return nil, errors.WrapInvalid(errors.ErrNilInterface,
			"UtilityVocabulary", "NewUtilityVocabulary", "interface validation")
	}

	v := &UtilityVocabulary{
		iface: iface,
		terms: make(map[string]UtilityTerm),
	}
	for _, opt := range opts {
		opt(v)
	}

	for _, nu := range reader.UtilitiesFor(iface) {
		value := nu.Utility
		if v.nameOnly {
			value = nu.Name
		}
		v.terms[nu.Name] = NewUtilityTerm(value, nu.Name)
	}

	return v, nil
}

// Interface returns the contract this vocabulary was built over.
func (v *UtilityVocabulary) Interface() *registry.Interface {
	return v.iface
}

// Contains reports whether some term's value equals value.
func (v *UtilityVocabulary) Contains(value any) bool {
	for _, term := range v.terms {
		if sameValue(term.value, value) {
			return true
		}
	}
	return false
}

// GetTerm returns the first term (in token order) whose value equals
// value, or a not-found-by-value error.
func (v *UtilityVocabulary) GetTerm(value any) (Term, error) {
	for _, term := range v.sortedTerms() {
		if sameValue(term.value, value) {
			return term, nil
		}
	}
	return nil, errors.NotFoundByValue("UtilityVocabulary", value)
}

// GetTermByToken returns the term registered under token, or a
// not-found-by-token error.
func (v *UtilityVocabulary) GetTermByToken(token string) (Term, error) {
	term, exists := v.terms[token]
	if !exists {
		return nil, errors.NotFoundByToken("UtilityVocabulary", token)
	}
	return term, nil
}

// Terms returns all terms sorted by token. Each call produces a fresh
// slice, so ordering is stable across renders of the same snapshot.
func (v *UtilityVocabulary) Terms() []Term {
	sorted := v.sortedTerms()
	terms := make([]Term, len(sorted))
	for i, term := range sorted {
		terms[i] = term
	}
	return terms
}

// Len returns the number of utilities captured at snapshot time.
func (v *UtilityVocabulary) Len() int {
	return len(v.terms)
}

func (v *UtilityVocabulary) sortedTerms() []UtilityTerm {
	terms := make([]UtilityTerm, 0, len(v.terms))
	for _, term := range v.terms {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].token < terms[j].token })
	return terms
}
