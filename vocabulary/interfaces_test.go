package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/componentvocab/errors"
	"github.com/c360/componentvocab/registry"
)

type providedObject struct {
	ifaces []*registry.Interface
}

func (p *providedObject) ProvidedInterfaces() []*registry.Interface {
	return p.ifaces
}

// wrapped simulates a security-proxied object: the wrapper itself provides
// nothing, the plain object inside does.
type wrapped struct {
	plain any
}

func unwrapProxy(object any) any {
	if w, ok := object.(*wrapped); ok {
		return w.plain
	}
	return object
}

func TestObjectInterfacesVocabulary(t *testing.T) {
	i2 := registry.NewInterface("app", "I2")
	i3 := registry.NewInterface("app", "I3", i2)
	i1 := registry.NewInterface("app", "I1")
	obj := &providedObject{ifaces: []*registry.Interface{i3, i1}}

	vocab := NewObjectInterfacesVocabulary(obj, nil)

	// Flattening order: declared contracts first, then what they extend.
	tokens := make([]string, 0, vocab.Len())
	for _, term := range vocab.Terms() {
		tokens = append(tokens, term.Token())
	}
	assert.Equal(t, []string{"app.I3", "app.I2", "app.I1"}, tokens)
	assert.Equal(t, 3, vocab.Len())

	assert.True(t, vocab.Contains(i2), "inherited contract is provided")
	assert.False(t, vocab.Contains(registry.NewInterface("app", "I4")))
	assert.False(t, vocab.Contains("not an interface"))
}

func TestObjectInterfacesVocabulary_Lookups(t *testing.T) {
	i1 := registry.NewInterface("app", "I1")
	obj := &providedObject{ifaces: []*registry.Interface{i1}}

	vocab := NewObjectInterfacesVocabulary(obj, nil)

	term, err := vocab.GetTerm(i1)
	require.NoError(t, err)
	assert.Equal(t, "app.I1", term.Token())
	assert.Same(t, i1, term.Value())

	term, err = vocab.GetTermByToken("app.I1")
	require.NoError(t, err)
	assert.Same(t, i1, term.Value())

	_, err = vocab.GetTerm(registry.NewInterface("app", "I9"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundByValue(err))

	_, err = vocab.GetTermByToken("app.I9")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundByToken(err))
}

func TestObjectInterfacesVocabulary_Unwraps(t *testing.T) {
	i1 := registry.NewInterface("app", "I1")
	plain := &providedObject{ifaces: []*registry.Interface{i1}}
	proxied := &wrapped{plain: plain}

	// Without unwrapping the proxy hides the provided contracts.
	assert.Equal(t, 0, NewObjectInterfacesVocabulary(proxied, nil).Len())

	vocab := NewObjectInterfacesVocabulary(proxied, unwrapProxy)
	assert.Equal(t, 1, vocab.Len())
	assert.True(t, vocab.Contains(i1))
}

func TestObjectInterfacesVocabulary_NonProvider(t *testing.T) {
	vocab := NewObjectInterfacesVocabulary(struct{}{}, nil)
	assert.Equal(t, 0, vocab.Len())
	assert.Empty(t, vocab.Terms())
}

func TestNewRegistrationInterfacesVocabulary(t *testing.T) {
	i1 := registry.NewInterface("app", "I1")
	component := &providedObject{ifaces: []*registry.Interface{i1}}

	reg := registry.NewRegistry(nil)
	iface := registry.NewInterface("app", "IService")
	_, err := reg.RegisterUtility(iface, "main", component)
	require.NoError(t, err)

	registrations := reg.Registrations(iface)
	require.Len(t, registrations, 1)

	vocab := NewRegistrationInterfacesVocabulary(registrations[0], nil)
	assert.Equal(t, 1, vocab.Len())
	assert.True(t, vocab.Contains(i1))
}

func TestNewInterfacesVocabulary(t *testing.T) {
	reg := registry.NewRegistry(nil)
	iObject := registry.NewInterface("app", "IObject")
	iStore := registry.NewInterface("app.storage", "IStore")
	require.NoError(t, reg.RegisterInterface(iObject))
	require.NoError(t, reg.RegisterInterface(iStore))

	vocab, err := NewInterfacesVocabulary(reg)
	require.NoError(t, err)

	assert.Equal(t, 2, vocab.Len())

	tokens := make([]string, 0, 2)
	for _, term := range vocab.Terms() {
		tokens = append(tokens, term.Token())
	}
	assert.Equal(t, []string{"app.IObject", "app.storage.IStore"}, tokens)

	term, err := vocab.GetTermByToken("app.storage.IStore")
	require.NoError(t, err)
	assert.Same(t, iStore, term.Value())

	assert.True(t, vocab.Contains(iObject))

	_, err = NewInterfacesVocabulary(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}
