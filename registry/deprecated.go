package registry

import "github.com/c360/componentvocab/directive"

// Deprecated: Use directive.ViewDirective instead.
// ViewDirectiveSchema remains from before the directive schemas moved to
// their own package.
func ViewDirectiveSchema() directive.Schema {
	return directive.ViewDirective()
}

// Deprecated: Use directive.ResourceDirective instead.
// ResourceDirectiveSchema remains from before the directive schemas moved
// to their own package.
func ResourceDirectiveSchema() directive.Schema {
	return directive.ResourceDirective()
}
