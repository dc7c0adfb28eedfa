package graphmarshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesNameTheFailingValue(t *testing.T) {
	assert.Contains(t, (&UnknownPrototypeError{Prototype: NewPrototype("Foo")}).Error(), "Foo")
	assert.Contains(t, (&UnknownFunctionError{Name: "onClick"}).Error(), "onClick")
	assert.Contains(t, (&UnknownSymbolError{Name: "iterator"}).Error(), "iterator")
	assert.Contains(t, (&NonFiniteError{Value: 0}).Error(), "non-finite")
	assert.Contains(t, (&BadDocumentError{Reason: "dangling ref", Ordinal: 3}).Error(), "dangling ref")
	assert.Contains(t, (&RegistryMismatchError{Kind: "symbol", Index: 9, Len: 2}).Error(), "symbol")
}

func TestUnsupportedValueErrorNamesType(t *testing.T) {
	err := &UnsupportedValueError{Value: make(chan int)}
	assert.Contains(t, err.Error(), "chan int")
}
