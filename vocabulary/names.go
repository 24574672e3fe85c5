package vocabulary

import (
	"github.com/c360/componentvocab/errors"
	"github.com/c360/componentvocab/registry"
)

// UtilityNames is a live vocabulary over the registration names of one
// contract. Unlike UtilityVocabulary it caches nothing: every operation
// re-queries the registry, so results always reflect current state at the
// cost of a query per call.
//
// Term values are names (possibly the empty string, for the unnamed
// utility); tokens are the reversible encoded form of those names.
type UtilityNames struct {
	reader registry.Reader
	iface  *registry.Interface
}

var _ Vocabulary = (*UtilityNames)(nil)

// NewUtilityNames builds a live name vocabulary over iface.
func NewUtilityNames(reader registry.Reader, iface *registry.Interface) (*UtilityNames, error) {
	if reader == nil {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig,
			"UtilityNames", "NewUtilityNames", "reader validation")
	}
	if iface == nil {
		return nil, errors.WrapInvalid(errors.ErrNilInterface,
			"UtilityNames", "NewUtilityNames", "interface validation")
	}
	return &UtilityNames{reader: reader, iface: iface}, nil
}

// Interface returns the contract this vocabulary reads from.
func (v *UtilityNames) Interface() *registry.Interface {
	return v.iface
}

// Contains reports whether a utility is currently registered under the
// given name. Non-string values are never contained.
func (v *UtilityNames) Contains(value any) bool {
	name, ok := value.(string)
	if !ok {
		return false
	}
	_, ok = v.reader.QueryUtility(v.iface, name)
	return ok
}

// GetTerm returns a name term for value if a utility is currently
// registered under that name, or a not-found-by-value error.
func (v *UtilityNames) GetTerm(value any) (Term, error) {
	name, ok := value.(string)
	if !ok || !v.Contains(name) {
		return nil, errors.NotFoundByValue("UtilityNames", value)
	}
	return NewUtilityNameTerm(name), nil
}

// GetTermByToken scans the currently registered names, re-encoding each
// candidate and comparing tokens. The bare prefix marker matches the
// unnamed utility. Fails with a not-found-by-token error when no name's
// encoding matches.
func (v *UtilityNames) GetTermByToken(token string) (Term, error) {
	for _, nu := range v.reader.UtilitiesFor(v.iface) {
		if token == NameTokenPrefix {
			if nu.Name == "" {
				return v.GetTerm(nu.Name)
			}
			continue
		}
		if EncodeNameToken(nu.Name) == token {
			return v.GetTerm(nu.Name)
		}
	}
	return nil, errors.NotFoundByToken("UtilityNames", token)
}

// Terms returns one name term per currently registered utility, in
// whatever order the registry yields.
func (v *UtilityNames) Terms() []Term {
	utilities := v.reader.UtilitiesFor(v.iface)
	terms := make([]Term, len(utilities))
	for i, nu := range utilities {
		terms[i] = NewUtilityNameTerm(nu.Name)
	}
	return terms
}

// Len re-counts the currently registered utilities. Each call queries and
// materializes the full registration list just to measure it.
func (v *UtilityNames) Len() int {
	return len(v.reader.UtilitiesFor(v.iface))
}
