package graphmarshal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapValuePreservesInsertionOrder(t *testing.T) {
	mv := NewMapValue()
	mv.Set("z", 1.0)
	mv.Set("a", 2.0)
	mv.Set("m", 3.0)

	entries := mv.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "z", entries[0].Key)
	assert.Equal(t, "a", entries[1].Key)
	assert.Equal(t, "m", entries[2].Key)
}

func TestMapValueResetPreservesPosition(t *testing.T) {
	mv := NewMapValue()
	mv.Set("a", 1.0)
	mv.Set("b", 2.0)
	mv.Set("a", 99.0)

	entries := mv.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, 99.0, entries[0].Value)
}

func TestMapValueObjectKeyByIdentity(t *testing.T) {
	k1 := NewObject(nil)
	k2 := NewObject(nil)

	mv := NewMapValue()
	mv.Set(k1, "one")
	mv.Set(k2, "two")

	v, ok := mv.Get(k1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = mv.Get(k2)
	require.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestMapValueNaNKeySelfEqual(t *testing.T) {
	mv := NewMapValue()
	mv.Set(math.NaN(), "nan-value")

	v, ok := mv.Get(math.NaN())
	require.True(t, ok)
	assert.Equal(t, "nan-value", v)
}

func TestSetValueAddIsIdempotent(t *testing.T) {
	sv := NewSetValue()
	sv.Add(1.0)
	sv.Add(2.0)
	sv.Add(1.0)

	assert.Equal(t, 2, sv.Len())
	assert.True(t, sv.Has(1.0))
	assert.True(t, sv.Has(2.0))
	assert.False(t, sv.Has(3.0))
}

func TestSetValuePreservesInsertionOrder(t *testing.T) {
	sv := NewSetValue()
	sv.Add(3.0)
	sv.Add(1.0)
	sv.Add(2.0)

	assert.Equal(t, []any{3.0, 1.0, 2.0}, sv.Values())
}
