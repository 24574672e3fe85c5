package vocabulary

import (
	"github.com/c360/componentvocab/errors"
	"github.com/c360/componentvocab/registry"
)

// InterfaceIndex is the slice of the registry the interface vocabularies
// need: enumeration and name-based lookup of known contracts.
// *registry.Registry satisfies it.
type InterfaceIndex interface {
	Interfaces() []*registry.Interface
	InterfaceByName(qualified string) (*registry.Interface, bool)
}

// NewInterfacesVocabulary builds a snapshot vocabulary whose utilities are
// the contracts known to the index, each tokenized by its qualified name.
func NewInterfacesVocabulary(index InterfaceIndex) (*UtilityVocabulary, error) {
	if index == nil {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig,
			"InterfacesVocabulary", "NewInterfacesVocabulary", "index validation")
	}

	v := &UtilityVocabulary{
		terms: make(map[string]UtilityTerm),
	}
	for _, iface := range index.Interfaces() {
		qualified := iface.QualifiedName()
		v.terms[qualified] = NewTypedUtilityTerm(iface, qualified, "Interface")
	}
	return v, nil
}

// ObjectInterfacesVocabulary lists the contracts provided by one object,
// flattened to include everything those contracts extend. The term order
// is the flattening order fixed at construction; it is not re-sorted.
type ObjectInterfacesVocabulary struct {
	terms   []UtilityTerm
	byToken map[string]int
}

var _ Vocabulary = (*ObjectInterfacesVocabulary)(nil)

// NewObjectInterfacesVocabulary builds the vocabulary for object.
// The unwrapper, when non-nil, strips any wrapping layer (such as a
// security proxy) before the object's contracts are enumerated.
func NewObjectInterfacesVocabulary(object any, unwrap registry.Unwrapper) *ObjectInterfacesVocabulary {
	if unwrap != nil {
		object = unwrap(object)
	}

	ifaces := registry.ProvidedBy(object)
	v := &ObjectInterfacesVocabulary{
		terms:   make([]UtilityTerm, 0, len(ifaces)),
		byToken: make(map[string]int, len(ifaces)),
	}
	for _, iface := range ifaces {
		qualified := iface.QualifiedName()
		if _, exists := v.byToken[qualified]; exists {
			continue
		}
		v.byToken[qualified] = len(v.terms)
		v.terms = append(v.terms, NewTypedUtilityTerm(iface, qualified, "Interface"))
	}
	return v
}

// NewRegistrationInterfacesVocabulary builds the provided-interfaces
// vocabulary for the component behind a utility registration.
func NewRegistrationInterfacesVocabulary(reg registry.Registration, unwrap registry.Unwrapper) *ObjectInterfacesVocabulary {
	return NewObjectInterfacesVocabulary(reg.Component, unwrap)
}

// Contains reports whether the object provides the given contract.
func (v *ObjectInterfacesVocabulary) Contains(value any) bool {
	iface, ok := value.(*registry.Interface)
	if !ok {
		return false
	}
	idx, exists := v.byToken[iface.QualifiedName()]
	return exists && v.terms[idx].value == value
}

// GetTerm returns the term for the given contract, or a
// not-found-by-value error.
func (v *ObjectInterfacesVocabulary) GetTerm(value any) (Term, error) {
	if !v.Contains(value) {
		return nil, errors.NotFoundByValue("ObjectInterfacesVocabulary", value)
	}
	iface := value.(*registry.Interface)
	return v.terms[v.byToken[iface.QualifiedName()]], nil
}

// GetTermByToken returns the term whose contract has the given qualified
// name, or a not-found-by-token error.
func (v *ObjectInterfacesVocabulary) GetTermByToken(token string) (Term, error) {
	idx, exists := v.byToken[token]
	if !exists {
		return nil, errors.NotFoundByToken("ObjectInterfacesVocabulary", token)
	}
	return v.terms[idx], nil
}

// Terms returns the terms in flattening order. Each call produces a fresh
// slice over the list fixed at construction.
func (v *ObjectInterfacesVocabulary) Terms() []Term {
	terms := make([]Term, len(v.terms))
	for i, term := range v.terms {
		terms[i] = term
	}
	return terms
}

// Len returns the number of provided contracts.
func (v *ObjectInterfacesVocabulary) Len() int {
	return len(v.terms)
}
