package vocabulary

import (
	"encoding/base64"
	"fmt"
)

// NameTokenPrefix is the marker prepended to every encoded name token.
// It guarantees the unnamed utility (empty name) still has a non-empty
// token: base64 of empty input is empty, so its token is the bare prefix.
const NameTokenPrefix = "t"

// UnnamedUtilityTitle is the display title used for the unnamed utility.
const UnnamedUtilityTitle = "(unnamed utility)"

// Term is one selectable vocabulary entry: a value, a token safe for
// transport in form submissions, and a display title.
type Term interface {
	// Value returns the entry's underlying value.
	Value() any
	// Token returns the entry's identity as a restricted-ASCII string.
	Token() string
	// Title returns the entry's display string.
	Title() string
}

// EncodeNameToken encodes a registration name into a printable token:
// the prefix marker followed by standard base64 of the name's UTF-8 bytes.
// Distinct names always yield distinct tokens, and the empty name encodes
// to the bare prefix marker.
func EncodeNameToken(name string) string {
	return NameTokenPrefix + base64.StdEncoding.EncodeToString([]byte(name))
}

// UtilityTerm is a term representing one registered utility. Its token is
// the registration name verbatim, so the name must be token-safe (the
// registry validates this on registration).
type UtilityTerm struct {
	value    any
	token    string
	typeName string
}

// NewUtilityTerm creates a term for value with the given token.
func NewUtilityTerm(value any, token string) UtilityTerm {
	return UtilityTerm{value: value, token: token, typeName: "utility"}
}

// NewTypedUtilityTerm creates a term carrying an explicit type-name string
// used only by String() for debug display.
func NewTypedUtilityTerm(value any, token, typeName string) UtilityTerm {
	return UtilityTerm{value: value, token: token, typeName: typeName}
}

// Value returns the utility (or its name in name-only vocabularies).
func (t UtilityTerm) Value() any {
	return t.value
}

// Token returns the registration name.
func (t UtilityTerm) Token() string {
	return t.token
}

// Title returns the registration name; utility terms have no separate
// display string.
func (t UtilityTerm) Title() string {
	return t.token
}

// String formats the term for debugging using the type name supplied at
// construction; no runtime type introspection is involved.
func (t UtilityTerm) String() string {
	return FormatTerm("UtilityTerm", t.token, t.typeName)
}

// FormatTerm renders a term's debug form from already-known strings.
func FormatTerm(kind, token, typeName string) string {
	return fmt.Sprintf("<%s %s, instance of %s>", kind, token, typeName)
}

// UtilityNameTerm is a term whose value is a utility's registration name.
// Its token is the reversible printable encoding of the name, so arbitrary
// Unicode names round-trip through a restricted token alphabet.
type UtilityNameTerm struct {
	value string
}

// NewUtilityNameTerm creates a term for the given registration name.
// The empty name denotes the unnamed utility.
func NewUtilityNameTerm(name string) UtilityNameTerm {
	return UtilityNameTerm{value: name}
}

// Value returns the registration name.
func (t UtilityNameTerm) Value() any {
	return t.value
}

// Name returns the registration name as a string, avoiding the type
// assertion Value() requires.
func (t UtilityNameTerm) Name() string {
	return t.value
}

// Token returns the encoded form of the name.
func (t UtilityNameTerm) Token() string {
	return EncodeNameToken(t.value)
}

// Title returns the name itself, or a placeholder label for the unnamed
// utility.
func (t UtilityNameTerm) Title() string {
	if t.value == "" {
		return UnnamedUtilityTitle
	}
	return t.value
}

var (
	_ Term = UtilityTerm{}
	_ Term = UtilityNameTerm{}
)
