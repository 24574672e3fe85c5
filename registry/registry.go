package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/c360/componentvocab/errors"
)

// MaxNameLength bounds registration names. Names travel verbatim as
// vocabulary tokens in form submissions, so they are kept short.
const MaxNameLength = 1024

// NamedUtility is one (name, utility) pair returned by registry queries.
type NamedUtility struct {
	Name    string
	Utility any
}

// Registration records one utility registration.
type Registration struct {
	ID        uuid.UUID  // Unique identifier for this registration
	Name      string     // Registration name; empty for the unnamed utility
	Provides  *Interface // Contract the utility is registered for
	Component any        // The registered utility itself
}

// Reader is the read-only registry view consumed by vocabularies.
// It is deliberately narrow: vocabularies never write, and accepting the
// interface keeps the registry an explicit constructor dependency instead
// of ambient global state.
type Reader interface {
	// UtilitiesFor returns all utilities registered for the contract,
	// sorted by registration name.
	UtilitiesFor(iface *Interface) []NamedUtility
	// QueryUtility returns the utility registered under the given name,
	// or false when there is none.
	QueryUtility(iface *Interface, name string) (any, bool)
}

// Registry is an in-memory utility registry. It implements Reader and adds
// the write API plus an index of known contracts by qualified name.
//
// All methods are safe for concurrent use; read methods return copies.
type Registry struct {
	utilities  map[*Interface]map[string]*Registration
	interfaces map[string]*Interface
	logger     *slog.Logger
	mu         sync.RWMutex
}

var _ Reader = (*Registry)(nil)

// NewRegistry creates a new empty utility registry logging through logger.
// A nil logger falls back to slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		utilities:  make(map[*Interface]map[string]*Registration),
		interfaces: make(map[string]*Interface),
		logger:     logger,
	}
}

// ValidateUtilityName validates a registration name. The empty name is
// valid: it denotes the unnamed utility. Non-empty names must be printable
// with no control characters, since the snapshot vocabulary uses them
// verbatim as form tokens.
func ValidateUtilityName(name string) error {
	if len(name) > MaxNameLength {
		return errors.WrapInvalid(errors.ErrInvalidName, "Registry", "ValidateUtilityName", "name too long")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.WrapInvalid(errors.ErrInvalidName, "Registry", "ValidateUtilityName",
				"control character in name")
		}
	}
	return nil
}

// RegisterUtility registers a utility for a contract under the given name.
// The empty name registers the unnamed utility. Within one contract, names
// are unique; registering a duplicate (contract, name) pair is an error.
// Identical names under different contracts never conflict.
func (r *Registry) RegisterUtility(iface *Interface, name string, utility any) (*Registration, error) {
	if iface == nil {
		return nil, errors.WrapInvalid(errors.ErrNilInterface, "Registry", "RegisterUtility", "interface validation")
	}
	if utility == nil {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "RegisterUtility", "utility validation")
	}
	if err := ValidateUtilityName(name); err != nil {
		return nil, errors.Wrap(err, "Registry", "RegisterUtility", "name validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, exists := r.utilities[iface]
	if !exists {
		byName = make(map[string]*Registration)
		r.utilities[iface] = byName
	}

	if _, exists := byName[name]; exists {
		msg := fmt.Errorf("%w: %q for %s", errors.ErrDuplicateRegistration, name, iface.QualifiedName())
		return nil, errors.WrapInvalid(msg, "Registry", "RegisterUtility", "duplicate registration check")
	}

	registration := &Registration{
		ID:        uuid.New(),
		Name:      name,
		Provides:  iface,
		Component: utility,
	}
	byName[name] = registration

	r.logger.Debug("registered utility",
		"interface", iface.QualifiedName(),
		"name", name,
		"id", registration.ID)

	return &Registration{
		ID:        registration.ID,
		Name:      registration.Name,
		Provides:  registration.Provides,
		Component: registration.Component,
	}, nil
}

// UnregisterUtility removes the registration for (contract, name).
// Removing an absent registration is a no-op.
func (r *Registry) UnregisterUtility(iface *Interface, name string) {
	if iface == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, exists := r.utilities[iface]
	if !exists {
		return
	}
	if _, exists := byName[name]; exists {
		delete(byName, name)
		r.logger.Debug("unregistered utility",
			"interface", iface.QualifiedName(),
			"name", name)
	}
	if len(byName) == 0 {
		delete(r.utilities, iface)
	}
}

// UtilitiesFor returns all utilities registered for the contract, sorted by
// registration name for reproducible output. The slice is a fresh copy.
func (r *Registry) UtilitiesFor(iface *Interface) []NamedUtility {
	if iface == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := r.utilities[iface]
	result := make([]NamedUtility, 0, len(byName))
	for name, registration := range byName {
		result = append(result, NamedUtility{Name: name, Utility: registration.Component})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result
}

// QueryUtility returns the utility registered for (contract, name), or
// false when there is none. The empty name queries the unnamed utility.
func (r *Registry) QueryUtility(iface *Interface, name string) (any, bool) {
	if iface == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	registration, exists := r.utilities[iface][name]
	if !exists {
		return nil, false
	}
	return registration.Component, true
}

// Registrations returns snapshot copies of all registrations for the
// contract, sorted by registration name.
func (r *Registry) Registrations(iface *Interface) []Registration {
	if iface == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := r.utilities[iface]
	result := make([]Registration, 0, len(byName))
	for _, registration := range byName {
		result = append(result, *registration)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result
}

// RegisterInterface adds a contract to the registry's interface index so it
// can be resolved by qualified name. Re-registering the same contract is a
// no-op; registering a different contract under an already-indexed name is
// an error.
func (r *Registry) RegisterInterface(iface *Interface) error {
	if iface == nil {
		return errors.WrapInvalid(errors.ErrNilInterface, "Registry", "RegisterInterface", "interface validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	qualified := iface.QualifiedName()
	if existing, exists := r.interfaces[qualified]; exists {
		if existing == iface {
			return nil
		}
		msg := fmt.Errorf("%w: interface %q", errors.ErrDuplicateRegistration, qualified)
		return errors.WrapInvalid(msg, "Registry", "RegisterInterface", "duplicate interface check")
	}

	r.interfaces[qualified] = iface
	r.logger.Debug("registered interface", "interface", qualified)

	return nil
}

// InterfaceByName resolves a contract by its qualified name.
func (r *Registry) InterfaceByName(qualified string) (*Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	iface, exists := r.interfaces[qualified]
	return iface, exists
}

// Interfaces returns all indexed contracts sorted by qualified name.
func (r *Registry) Interfaces() []*Interface {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Interface, 0, len(r.interfaces))
	for _, iface := range r.interfaces {
		result = append(result, iface)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].QualifiedName() < result[j].QualifiedName()
	})

	return result
}
