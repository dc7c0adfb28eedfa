package graphmarshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPrototypeRefPlainObject(t *testing.T) {
	r := NewRegistry(nil, nil, nil)
	ref, err := r.prototypeRef(NewObject(nil))
	require.NoError(t, err)
	assert.Equal(t, PlainPrototype, ref)
}

func TestRegistryPrototypeRefRegisteredClass(t *testing.T) {
	foo := NewPrototype("Foo")
	bar := NewPrototype("Bar")
	r := NewRegistry([]*Prototype{foo, bar}, nil, nil)

	ref, err := r.prototypeRef(NewObject(bar))
	require.NoError(t, err)
	assert.Equal(t, "1", ref)
}

func TestRegistryPrototypeRefUnknown(t *testing.T) {
	r := NewRegistry([]*Prototype{NewPrototype("Foo")}, nil, nil)
	_, err := r.prototypeRef(NewObject(NewPrototype("Stray")))
	require.Error(t, err)
	var target *UnknownPrototypeError
	assert.ErrorAs(t, err, &target)
}

func TestRegistryFunctionIndexByIdentity(t *testing.T) {
	f1 := NewFunc("f1", "function f1(){}", nil)
	f2 := NewFunc("f2", "function f2(){}", nil)
	r := NewRegistry(nil, []*FuncValue{f1, f2}, nil)

	idx, err := r.functionIndex(f2)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestRegistryFunctionIndexBySourceText(t *testing.T) {
	source := "k => k.length"
	registered := NewFunc("g", source, nil)
	r := NewRegistry(nil, []*FuncValue{registered}, nil)

	// A function independently constructed in a peer process, with
	// identical source but a distinct identity, must still resolve
	// (spec.md §6 "Function equivalence rule").
	peerFn := NewFunc("g", source, nil)
	idx, err := r.functionIndex(peerFn)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestRegistryFunctionIndexUnknown(t *testing.T) {
	r := NewRegistry(nil, []*FuncValue{NewFunc("f", "function(){}", nil)}, nil)
	_, err := r.functionIndex(NewFunc("other", "function other(){}", nil))
	require.Error(t, err)
	var target *UnknownFunctionError
	assert.ErrorAs(t, err, &target)
}

func TestRegistrySymbolIndexByIdentityOnly(t *testing.T) {
	s1 := NewSymbol("iterator")
	s2 := NewSymbol("iterator") // same name, distinct identity
	r := NewRegistry(nil, nil, []*Symbol{s1})

	idx, err := r.symbolIndex(s1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = r.symbolIndex(s2)
	require.Error(t, err)
	var target *UnknownSymbolError
	assert.ErrorAs(t, err, &target)
}

func TestRegistryAtOutOfRange(t *testing.T) {
	r := NewRegistry([]*Prototype{NewPrototype("Foo")}, nil, nil)
	_, err := r.prototypeAt(5)
	require.Error(t, err)
	var target *RegistryMismatchError
	assert.ErrorAs(t, err, &target)
}

func TestRegistryDescribe(t *testing.T) {
	r := NewRegistry([]*Prototype{NewPrototype("Foo"), NewPrototype("Bar")}, nil, nil)
	assert.Equal(t, []string{"Foo", "Bar"}, r.Describe())
}
