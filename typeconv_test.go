package graphmarshal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFloat64(t *testing.T) {
	f, err := AsFloat64(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	_, err = AsFloat64("3.5")
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect number; got %T", "3.5"))
}

func TestAsString(t *testing.T) {
	s, err := AsString("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	_, err = AsString(1.0)
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect string; got %T", 1.0))
}

func TestAsBool(t *testing.T) {
	b, err := AsBool(true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = AsBool("true")
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect bool; got %T", "true"))
}

func TestAsBigNumber(t *testing.T) {
	want, err := NewBigNumber("42")
	require.NoError(t, err)

	got, err := AsBigNumber(want)
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = AsBigNumber(42.0)
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect bignumber; got %T", 42.0))
}

func TestAsDate(t *testing.T) {
	want := NewDate(time.UnixMilli(100))
	got, err := AsDate(want)
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = AsDate("not a date")
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect date; got %T", "not a date"))
}

func TestAsObject(t *testing.T) {
	want := NewObject(nil)
	got, err := AsObject(want)
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = AsObject(NewArray())
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect object; got %T", NewArray()))
}

func TestAsArray(t *testing.T) {
	want := NewArray(1.0, 2.0)
	got, err := AsArray(want)
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = AsArray(NewObject(nil))
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf("expect array; got %T", NewObject(nil)))
}

func TestIsUndefinedAndIsNull(t *testing.T) {
	assert.True(t, IsUndefined(Undefined{}))
	assert.False(t, IsUndefined(Null{}))
	assert.False(t, IsUndefined("undefined"))

	assert.True(t, IsNull(Null{}))
	assert.False(t, IsNull(Undefined{}))
	assert.False(t, IsNull(nil))
}
