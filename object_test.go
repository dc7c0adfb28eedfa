package graphmarshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSetPreservesKeyPosition(t *testing.T) {
	o := NewObject(nil)
	o.Set("a", 1.0)
	o.Set("b", 2.0)
	o.Set("a", 99.0)

	assert.Equal(t, []any{"a", "b"}, o.OwnKeys())
	v, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, 99.0, v)
}

func TestObjectDefinePropertyNonEnumerable(t *testing.T) {
	o := NewObject(nil)
	o.DefineProperty("hidden", Descriptor{
		Configurable: false,
		Enumerable:   false,
		Writable:     false,
		HasValue:     true,
		Value:        "secret",
	})

	desc, ok := o.Descriptor("hidden")
	require.True(t, ok)
	assert.False(t, desc.Enumerable)
	assert.False(t, desc.Writable)
	assert.False(t, desc.Configurable)
	assert.Equal(t, "secret", desc.Value)

	// Own-property enumeration still includes it, per spec.md §4.4 item 7.
	assert.Contains(t, o.OwnKeys(), "hidden")
}

func TestObjectSymbolKey(t *testing.T) {
	sym := NewSymbol("iterator")
	o := NewObject(nil)
	o.Set(sym, "symbol-backed value")

	v, ok := o.Get(sym)
	require.True(t, ok)
	assert.Equal(t, "symbol-backed value", v)
}

func TestObjectAccessorDescriptorHasNoValue(t *testing.T) {
	getter := NewFunc("getHi", "function(){ return this.hello }", nil)
	o := NewObject(nil)
	o.Set("hello", "world")
	o.DefineProperty("hi", Descriptor{
		Configurable: true,
		Enumerable:   true,
		HasAccessor:  true,
		Get:          getter,
	})

	desc, ok := o.Descriptor("hi")
	require.True(t, ok)
	assert.True(t, desc.HasAccessor)
	assert.False(t, desc.HasValue)
	assert.Same(t, getter, desc.Get)
	assert.Nil(t, desc.Set)

	_, ok = o.Get("hi")
	assert.False(t, ok, "Get should not resolve accessor properties")
}

func TestArrayWrapsElementsWithoutCopy(t *testing.T) {
	elems := []any{1.0, "two", Undefined{}}
	a := NewArray(elems...)
	require.Len(t, a.Elements, 3)
	assert.Equal(t, 1.0, a.Elements[0])
	assert.Equal(t, "two", a.Elements[1])
	assert.Equal(t, Undefined{}, a.Elements[2])

	// The caller's slice is the Array's backing store.
	elems[0] = 2.0
	assert.Equal(t, 2.0, a.Elements[0])
}
