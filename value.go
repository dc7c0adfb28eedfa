package graphmarshal

import "time"

// Undefined represents the host graph's "undefined" primitive, distinct
// from Null. It is an inline primitive: never reference-tracked.
type Undefined struct{}

// Null represents the host graph's "null" primitive, distinct from
// Undefined and from a nil Go interface. It is an inline primitive: never
// reference-tracked.
type Null struct{}

// Prototype is an identity token for a registered class: two objects
// sharing the same *Prototype decode as instances of the same class. The
// zero value must not be used; construct with NewPrototype.
type Prototype struct {
	Name string
}

// NewPrototype returns a fresh prototype identity token named name.
func NewPrototype(name string) *Prototype {
	return &Prototype{Name: name}
}

// Symbol is a unique, identity-compared value that can only be encoded if
// present in the Registry. Construct with NewSymbol.
type Symbol struct {
	Name string
}

// NewSymbol returns a fresh symbol named name. Two calls with the same name
// return distinct, non-equal symbols, matching host-language symbol
// semantics.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

// FuncValue is a callable value that can only be encoded if present in the
// Registry, either by identity or by Source equality (see the package doc
// for the cross-process equivalence rule). Construct with NewFunc.
type FuncValue struct {
	Name   string
	Source string
	Call   func(this *Object, args []any) (any, error)
}

// NewFunc wraps call as a registrable function named name, whose source
// text is source. source is what two independently-constructed registries
// compare to decide two functions are "the same" function.
func NewFunc(name, source string, call func(this *Object, args []any) (any, error)) *FuncValue {
	return &FuncValue{Name: name, Source: source, Call: call}
}

// DateValue is a point in time, represented internally as the number of
// milliseconds since the Unix epoch, matching the host graph's Date.
type DateValue struct {
	EpochMS int64
}

// NewDate returns a DateValue for t.
func NewDate(t time.Time) *DateValue {
	return &DateValue{EpochMS: t.UnixMilli()}
}

// Time returns d as a time.Time in UTC.
func (d *DateValue) Time() time.Time {
	return time.UnixMilli(d.EpochMS).UTC()
}

// ErrorValue is an error-shaped record: a message, an optional name (e.g.
// "TypeError"), and an optional stack trace.
type ErrorValue struct {
	Message  string
	Name     string
	HasName  bool
	Stack    string
	HasStack bool
}

// NewError returns an ErrorValue with the given message and no name/stack.
func NewError(message string) *ErrorValue {
	return &ErrorValue{Message: message}
}

// WithName sets e's name and returns e, for chaining after NewError.
func (e *ErrorValue) WithName(name string) *ErrorValue {
	e.Name = name
	e.HasName = true
	return e
}

// WithStack sets e's stack trace and returns e, for chaining after NewError.
func (e *ErrorValue) WithStack(stack string) *ErrorValue {
	e.Stack = stack
	e.HasStack = true
	return e
}

// Error implements the error interface so an *ErrorValue can be used
// wherever the caller's graph embeds a Go error.
func (e *ErrorValue) Error() string {
	return e.Message
}
