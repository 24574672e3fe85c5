package vocabulary

import "github.com/c360/componentvocab/registry"

// Deprecated: Use NewInterfacesVocabulary instead.
// NewInterfaceNamesVocabulary is the old name from before the interface
// index became the vocabulary's backing store.
func NewInterfaceNamesVocabulary(index InterfaceIndex) (*UtilityVocabulary, error) {
	return NewInterfacesVocabulary(index)
}

// Deprecated: Use NewRegistrationInterfacesVocabulary instead.
// NewUtilityComponentInterfacesVocabulary is the old constructor name; it
// now forwards with the same registration-based signature.
func NewUtilityComponentInterfacesVocabulary(reg registry.Registration, unwrap registry.Unwrapper) *ObjectInterfacesVocabulary {
	return NewRegistrationInterfacesVocabulary(reg, unwrap)
}
