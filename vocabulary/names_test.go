package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/componentvocab/errors"
	"github.com/c360/componentvocab/registry"
)

func TestNewUtilityNames_Validation(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	_, err := NewUtilityNames(nil, iface)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	_, err = NewUtilityNames(reg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNilInterface)
}

func TestUtilityNames_Live(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	assert.Equal(t, 0, vocab.Len())
	assert.False(t, vocab.Contains("one"))

	// The vocabulary sees registrations made after construction.
	_, err = reg.RegisterUtility(iface, "one", &object{name: "one"})
	require.NoError(t, err)
	_, err = reg.RegisterUtility(iface, "two", &object{name: "two"})
	require.NoError(t, err)

	assert.Equal(t, 2, vocab.Len())
	assert.True(t, vocab.Contains("one"))
	assert.True(t, vocab.Contains("two"))
	assert.False(t, vocab.Contains("three"))

	_, err = reg.RegisterUtility(iface, "three", &object{name: "three"})
	require.NoError(t, err)
	assert.True(t, vocab.Contains("three"))

	// And removals.
	reg.UnregisterUtility(iface, "three")
	assert.False(t, vocab.Contains("three"))
}

func TestUtilityNames_GetTerm(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	_, err := reg.RegisterUtility(iface, "one", &object{name: "one"})
	require.NoError(t, err)

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	term, err := vocab.GetTerm("one")
	require.NoError(t, err)
	assert.Equal(t, "one", term.Value())
	assert.Equal(t, "tb25l", term.Token())

	// Absent name fails by value; the classification distinguishes it
	// from token misses for callers that care.
	_, err = vocab.GetTerm("four")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundByValue(err))
	assert.ErrorIs(t, err, errors.ErrTermNotFound)

	// Non-string values are never present.
	_, err = vocab.GetTerm(42)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundByValue(err))
}

func TestUtilityNames_GetTermByToken(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	_, err := reg.RegisterUtility(iface, "one", &object{name: "one"})
	require.NoError(t, err)

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	term, err := vocab.GetTermByToken("tb25l")
	require.NoError(t, err)
	assert.Equal(t, "one", term.Value())

	_, err = vocab.GetTermByToken("no such term")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundByToken(err))
}

func TestUtilityNames_RoundTrip(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	names := []string{"one", "two", "café", ""}
	for _, name := range names {
		_, err := reg.RegisterUtility(iface, name, &object{name: name})
		require.NoError(t, err)
	}

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	// Every registered name survives the encode/decode round trip.
	for _, name := range names {
		term, err := vocab.GetTermByToken(EncodeNameToken(name))
		require.NoError(t, err, "round trip for %q", name)
		assert.Equal(t, name, term.Value())
	}
}

func TestUtilityNames_UnnamedUtility(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	_, err := reg.RegisterUtility(iface, "", &object{name: "anonymous"})
	require.NoError(t, err)
	_, err = reg.RegisterUtility(iface, "one", &object{name: "one"})
	require.NoError(t, err)

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	assert.True(t, vocab.Contains(""))

	term, err := vocab.GetTerm("")
	require.NoError(t, err)
	assert.Equal(t, "t", term.Token())
	assert.Equal(t, UnnamedUtilityTitle, term.Title())

	// The bare prefix marker resolves back to the empty name.
	roundTrip, err := vocab.GetTermByToken("t")
	require.NoError(t, err)
	assert.Equal(t, "", roundTrip.Value())
}

func TestUtilityNames_BareMarkerWithoutUnnamedUtility(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	_, err := reg.RegisterUtility(iface, "one", &object{name: "one"})
	require.NoError(t, err)

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	// No unnamed utility registered: the bare marker matches nothing.
	_, err = vocab.GetTermByToken("t")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundByToken(err))
}

func TestUtilityNames_Terms(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IMyUtility")

	for _, name := range []string{"one", "two"} {
		_, err := reg.RegisterUtility(iface, name, &object{name: name})
		require.NoError(t, err)
	}

	vocab, err := NewUtilityNames(reg, iface)
	require.NoError(t, err)

	values := make([]string, 0, 2)
	for _, term := range vocab.Terms() {
		values = append(values, term.Value().(string))
	}
	assert.ElementsMatch(t, []string{"one", "two"}, values)
}
