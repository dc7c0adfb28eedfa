package graphmarshal

// Descriptor is the domain-level property attribute record: a data slot
// (Value, valid when HasValue) or an accessor pair (Get/Set, valid when
// HasAccessor), plus the configurable/enumerable/writable flags. It is the
// in-memory counterpart of the wire PropertyDescriptor in node.go.
type Descriptor struct {
	Configurable bool
	Enumerable   bool
	Writable     bool

	HasValue bool
	Value    any

	HasAccessor bool
	Get         *FuncValue
	Set         *FuncValue
}

// Object is a record: either a plain object (Prototype == nil) or an
// instance of a registered class. Properties are stored with full
// descriptors and iterated in insertion order, mirroring a host object's
// own-property enumeration (spec.md §4.4 item 7: "iterates all own property
// keys ... including non-enumerable ones, preserving insertion order").
//
// Keys are either string or *Symbol. Construct with NewObject.
type Object struct {
	Prototype *Prototype

	keys  []any
	props map[any]Descriptor
}

// NewObject returns a new object. A nil prototype makes it a plain object;
// otherwise it is an instance of proto, decoded without running any
// constructor (spec.md §4.5: "bypassing the constructor").
func NewObject(proto *Prototype) *Object {
	return &Object{
		Prototype: proto,
		props:     make(map[any]Descriptor),
	}
}

// Set defines key as an ordinary, writable, enumerable, configurable data
// property — the common case. Re-setting an existing key updates its value
// and attributes in place without changing its position in OwnKeys.
func (o *Object) Set(key any, value any) {
	o.DefineProperty(key, Descriptor{
		Configurable: true,
		Enumerable:   true,
		Writable:     true,
		HasValue:     true,
		Value:        value,
	})
}

// DefineProperty installs desc (a data or accessor descriptor) at key,
// preserving key's original position if it is already present. This is the
// low-level operation the decoder uses to restore descriptors bit-for-bit.
func (o *Object) DefineProperty(key any, desc Descriptor) {
	if _, exists := o.props[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.props[key] = desc
}

// Get returns the data value stored at key, and whether key is present as
// a data property (accessor properties are not resolved here — the
// marshaller never invokes accessors; see spec.md §7).
func (o *Object) Get(key any) (any, bool) {
	d, ok := o.props[key]
	if !ok || !d.HasValue {
		return nil, false
	}
	return d.Value, true
}

// Descriptor returns the full descriptor stored at key.
func (o *Object) Descriptor(key any) (Descriptor, bool) {
	d, ok := o.props[key]
	return d, ok
}

// OwnKeys returns all own property keys (string and *Symbol) in insertion
// order.
func (o *Object) OwnKeys() []any {
	out := make([]any, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of own properties.
func (o *Object) Len() int {
	return len(o.keys)
}

// Array is an ordered, reference-tracked list, the marshalled counterpart
// of the host graph's array built-in.
type Array struct {
	Elements []any
}

// NewArray returns an Array wrapping elements directly (no copy).
func NewArray(elements ...any) *Array {
	return &Array{Elements: elements}
}
