package registry

// Interface describes a named capability contract that utilities can be
// registered and queried against. A contract may extend other contracts;
// anything registered for a contract also satisfies queries for the
// contracts it extends.
//
// Interfaces are compared by identity. Two separately constructed contracts
// are distinct even when their qualified names collide, which keeps the
// model free of global name coordination; the Registry's interface index
// adds name-based lookup where it is wanted.
type Interface struct {
	// Module is the dotted path of the package declaring the contract
	// (e.g., "app.storage"). May be empty for ad hoc contracts.
	Module string
	// Name is the contract's identifier within its module.
	Name string
	// Bases are the contracts this one extends, in declaration order.
	Bases []*Interface
}

// NewInterface creates a capability contract extending the given bases.
func NewInterface(module, name string, bases ...*Interface) *Interface {
	return &Interface{
		Module: module,
		Name:   name,
		Bases:  bases,
	}
}

// QualifiedName returns the module-qualified identifier of the contract,
// "Module.Name", or just "Name" when the module is empty.
func (i *Interface) QualifiedName() string {
	if i.Module == "" {
		return i.Name
	}
	return i.Module + "." + i.Name
}

// Flattened returns the contract followed by every contract it transitively
// extends, depth-first in declaration order with duplicates removed. The
// order is deterministic for a given declaration.
func (i *Interface) Flattened() []*Interface {
	var result []*Interface
	seen := make(map[*Interface]bool)

	var walk func(iface *Interface)
	walk = func(iface *Interface) {
		if iface == nil || seen[iface] {
			return
		}
		seen[iface] = true
		result = append(result, iface)
		for _, base := range iface.Bases {
			walk(base)
		}
	}
	walk(i)

	return result
}

// Extends reports whether other appears among this contract's transitive
// bases. A contract does not extend itself.
func (i *Interface) Extends(other *Interface) bool {
	if other == nil {
		return false
	}
	for _, iface := range i.Flattened() {
		if iface == other && iface != i {
			return true
		}
	}
	return false
}

// Provider declares the capability contracts an object satisfies.
// Objects that want to appear in interface-derived vocabularies implement
// this instead of being introspected at runtime.
type Provider interface {
	ProvidedInterfaces() []*Interface
}

// Unwrapper removes a wrapping layer (such as a security proxy) from an
// object before its provided interfaces are enumerated. A nil Unwrapper
// is treated as the identity function.
type Unwrapper func(object any) any

// ProvidedBy returns the flattened set of contracts provided by object:
// every declared contract plus everything those contracts extend, in
// declaration order with duplicates removed. Objects that are not
// Providers provide nothing.
func ProvidedBy(object any) []*Interface {
	provider, ok := object.(Provider)
	if !ok {
		return nil
	}

	var result []*Interface
	seen := make(map[*Interface]bool)
	for _, declared := range provider.ProvidedInterfaces() {
		for _, iface := range declared.Flattened() {
			if seen[iface] {
				continue
			}
			seen[iface] = true
			result = append(result, iface)
		}
	}
	return result
}
