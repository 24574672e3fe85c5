package deprecate

// Forwards for identifiers that moved during the split of the directive
// schemas out of the registry package and the consolidation of the
// interface vocabularies. The Go-level aliases live in the owning
// packages; see vocabulary/deprecated.go and registry/deprecated.go.
func init() {
	Register(
		"registry.ViewDirectiveSchema",
		"directive.ViewDirective",
		"directive schemas moved to the directive package; alias is removed in v2")
	Register(
		"registry.ResourceDirectiveSchema",
		"directive.ResourceDirective",
		"directive schemas moved to the directive package; alias is removed in v2")
	Register(
		"vocabulary.InterfaceNamesVocabulary",
		"vocabulary.InterfacesVocabulary",
		"renamed when the interface index became the backing store; alias is removed in v2")
	Register(
		"vocabulary.UtilityComponentInterfacesVocabulary",
		"vocabulary.NewRegistrationInterfacesVocabulary",
		"constructor now takes a registry.Registration; alias is removed in v2")
}
