package graphmarshal

import "fmt"

// UnknownPrototypeError is returned by Marshal when an object's prototype
// is not present in the Registry.
type UnknownPrototypeError struct {
	Prototype *Prototype
}

func (e *UnknownPrototypeError) Error() string {
	if e.Prototype == nil {
		return "marshal: object has non-plain prototype not present in registry"
	}
	return fmt.Sprintf("marshal: unknown prototype %q", e.Prototype.Name)
}

// UnknownFunctionError is returned by Marshal when a function value is not
// present in the Registry, neither by identity nor by source-text match.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("marshal: unknown function %q", e.Name)
}

// UnknownSymbolError is returned by Marshal when a symbol value is not
// present in the Registry.
type UnknownSymbolError struct {
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("marshal: unknown symbol %q", e.Name)
}

// NonFiniteError is returned by Marshal when RejectNonFinite is set and a
// non-finite float64 (NaN or ±Inf) is encountered.
type NonFiniteError struct {
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("marshal: non-finite number %v", e.Value)
}

// UnsupportedValueError is returned by Marshal when a value's runtime
// shape matches none of the dispatch cases in spec.md §4.4 — e.g. a raw Go
// struct that was never wrapped in an *Object, or a key type other than
// string/*Symbol on a property.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("marshal: unsupported value of type %T", e.Value)
}

// BadDocumentError is returned by Unmarshal on structural corruption: an
// unknown tag, an out-of-range or dangling ordinal, or a malformed node.
type BadDocumentError struct {
	Reason  string
	Ordinal int
}

func (e *BadDocumentError) Error() string {
	return fmt.Sprintf("unmarshal: bad document at node %d: %s", e.Ordinal, e.Reason)
}

// RegistryMismatchError is returned by Unmarshal when a symbol/function/
// prototype index exceeds the peer registry's length.
type RegistryMismatchError struct {
	Kind  string // "prototype", "function" or "symbol"
	Index int
	Len   int
}

func (e *RegistryMismatchError) Error() string {
	return fmt.Sprintf("unmarshal: %s index %d out of range for registry of length %d", e.Kind, e.Index, e.Len)
}
