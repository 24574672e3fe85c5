package directive

// FieldType identifies the kind of value a directive field accepts.
// The global* kinds hold dotted paths resolved by the configuration
// engine against its import namespace; this package only declares and
// validates them.
type FieldType string

const (
	// FieldText is a plain string value.
	FieldText FieldType = "text"
	// FieldBool is a boolean value.
	FieldBool FieldType = "bool"
	// FieldIdentifier is a single source-level identifier.
	FieldIdentifier FieldType = "identifier"
	// FieldGlobalObject is a dotted path naming any importable object.
	FieldGlobalObject FieldType = "globalObject"
	// FieldGlobalInterface is a dotted path naming a capability contract.
	FieldGlobalInterface FieldType = "globalInterface"
	// FieldPermission is a permission identifier checked by the security
	// machinery.
	FieldPermission FieldType = "permission"
	// FieldTokens is a whitespace-separated list; ValueType gives the
	// element kind.
	FieldTokens FieldType = "tokens"
)

// Valid reports whether ft is a known field type.
func (ft FieldType) Valid() bool {
	switch ft {
	case FieldText, FieldBool, FieldIdentifier, FieldGlobalObject,
		FieldGlobalInterface, FieldPermission, FieldTokens:
		return true
	default:
		return false
	}
}

// Field declares one attribute of a configuration directive.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type        FieldType `json:"type" yaml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	// ValueType is the element kind for tokens fields; ignored otherwise.
	ValueType FieldType `json:"valueType,omitempty" yaml:"valueType,omitempty"`
}

// Schema declares the attributes of one configuration directive as static
// metadata. The external configuration engine reads these declarations to
// parse and dispatch directives; nothing here executes a directive.
type Schema struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	// Extends lists the schema names whose fields this schema absorbed,
	// recorded for documentation and UI grouping.
	Extends []string `json:"extends,omitempty" yaml:"extends,omitempty"`
	Fields  []Field  `json:"fields" yaml:"fields"`
}

// Field returns the declaration of the named field.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the names of all required fields in declaration order.
func (s Schema) Required() []string {
	var required []string
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// mergeFields concatenates field sets; a later declaration of an
// already-present name replaces the earlier one in place.
func mergeFields(sets ...[]Field) []Field {
	var merged []Field
	index := make(map[string]int)
	for _, set := range sets {
		for _, f := range set {
			if i, exists := index[f.Name]; exists {
				merged[i] = f
				continue
			}
			index[f.Name] = len(merged)
			merged = append(merged, f)
		}
	}
	return merged
}

// BasicViewInformation declares the attributes shared by all view
// registration directives.
func BasicViewInformation() Schema {
	return Schema{
		Name:        "basicViewInformation",
		Description: "Attributes shared by all view registration directives.",
		Fields:      basicViewFields(),
	}
}

func basicViewFields() []Field {
	return []Field{
		{
			Name:        "for",
			Title:       "Specifications of the objects to be viewed",
			Description: "A list of interfaces or classes the view is registered for.",
			Type:        FieldTokens,
			ValueType:   FieldGlobalObject,
			Required:    true,
		},
		{
			Name:        "permission",
			Title:       "Permission",
			Description: "The permission needed to use the view.",
			Type:        FieldPermission,
		},
		{
			Name:        "class",
			Title:       "Class",
			Description: "A class that provides attributes used by the view.",
			Type:        FieldGlobalObject,
		},
		{
			Name:  "layer",
			Title: "The layer the view is in.",
			Description: "A skin is composed of layers. It is common to put skin " +
				"specific views in a layer named after the skin. If the 'layer' " +
				"attribute is not supplied, it defaults to 'default'.",
			Type: FieldGlobalInterface,
		},
		{
			Name:  "allowed_interface",
			Title: "Interface that is also allowed if user has permission.",
			Description: "By default, 'permission' only applies to viewing the view " +
				"and any possible sub views. By specifying this attribute, the " +
				"permission also applies to everything described in the supplied " +
				"interface. Multiple interfaces can be provided, separated by whitespace.",
			Type:      FieldTokens,
			ValueType: FieldGlobalInterface,
		},
		{
			Name:  "allowed_attributes",
			Title: "View attributes that are also allowed if the user has permission.",
			Description: "By specifying 'allowed_attributes', the permission also " +
				"applies to the extra attributes on the view object.",
			Type:      FieldTokens,
			ValueType: FieldIdentifier,
		},
	}
}

// BasicResourceInformation declares the attributes shared by all resource
// registration directives.
func BasicResourceInformation() Schema {
	return Schema{
		Name:        "basicResourceInformation",
		Description: "Attributes shared by all resource registration directives.",
		Fields:      basicResourceFields(),
	}
}

func basicResourceFields() []Field {
	return []Field{
		{
			Name:        "name",
			Title:       "The name of the resource.",
			Description: "The name shows up in URLs/paths. For example 'foo'.",
			Type:        FieldText,
			Required:    true,
			Default:     "",
		},
		{
			Name:  "provides",
			Title: "The interface this component provides.",
			Description: "A view can provide an interface. This would be used for " +
				"views that support other views.",
			Type: FieldGlobalInterface,
		},
		{
			Name:     "type",
			Title:    "Request type",
			Type:     FieldGlobalInterface,
			Required: true,
		},
	}
}

// ViewDirective declares the directive that registers a view for a
// component: the shared view and resource attributes plus the view factory
// chain.
func ViewDirective() Schema {
	return Schema{
		Name:        "view",
		Description: "Register a view for a component.",
		Extends:     []string{"basicViewInformation", "basicResourceInformation"},
		Fields: mergeFields(
			basicViewFields(),
			basicResourceFields(),
			[]Field{
				{
					Name:      "factory",
					Title:     "Factory",
					Type:      FieldTokens,
					ValueType: FieldGlobalObject,
				},
			},
		),
	}
}

// ResourceDirective declares the directive that registers a resource.
func ResourceDirective() Schema {
	return Schema{
		Name:        "resource",
		Description: "Register a resource.",
		Extends:     []string{"basicResourceInformation"},
		Fields: mergeFields(
			basicResourceFields(),
			[]Field{
				{
					Name:  "component",
					Title: "Component to be used",
					Type:  FieldGlobalObject,
				},
				{
					Name:  "factory",
					Title: "Factory",
					Type:  FieldGlobalObject,
				},
				{
					Name:  "permission",
					Title: "Permission",
					Type:  FieldPermission,
				},
				{
					Name:  "layer",
					Title: "The layer the resource is in.",
					Type:  FieldGlobalInterface,
				},
				{
					Name:      "allowed_interface",
					Title:     "Interface that is also allowed if user has permission.",
					Type:      FieldTokens,
					ValueType: FieldGlobalInterface,
				},
				{
					Name:      "allowed_attributes",
					Title:     "View attributes that are also allowed if user has permission.",
					Type:      FieldTokens,
					ValueType: FieldIdentifier,
				},
			},
		),
	}
}

// Builtin returns all directive schemas this module declares, keyed by
// directive name.
func Builtin() map[string]Schema {
	return map[string]Schema{
		"basicViewInformation":     BasicViewInformation(),
		"basicResourceInformation": BasicResourceInformation(),
		"view":                     ViewDirective(),
		"resource":                 ResourceDirective(),
	}
}
