package graphmarshal

import (
	"math"
	"reflect"
)

// MarshallerConfig configures a Marshaller (spec.md §6): the three
// positional registry tables, plus an opt-in policy for non-finite
// numbers. Mirrors the teacher's EncoderConfig/DecoderConfig pattern — one
// struct, passed once, read-only afterwards.
type MarshallerConfig struct {
	Prototypes []*Prototype
	Functions  []*FuncValue
	Symbols    []*Symbol

	// RejectNonFinite, if set, makes Marshal fail with NonFiniteError on
	// NaN/±Inf instead of the default pass-through behavior (spec.md §4.4:
	// "optional policy; the default may pass through").
	RejectNonFinite bool
}

// Marshaller is the shared entry point for Marshal/Unmarshal against one
// Registry. A single Marshaller may be used concurrently by multiple
// goroutines as long as the registry is not mutated (it never is, once
// built) — see spec.md §5.
type Marshaller struct {
	registry        *Registry
	rejectNonFinite bool
}

// New builds a Marshaller from config. All three registry tables default
// to empty.
func New(config MarshallerConfig) *Marshaller {
	return &Marshaller{
		registry:        NewRegistry(config.Prototypes, config.Functions, config.Symbols),
		rejectNonFinite: config.RejectNonFinite,
	}
}

// Registry returns m's registry, e.g. for Describe() in diagnostics.
func (m *Marshaller) Registry() *Registry {
	return m.registry
}

// Marshal traverses v once, depth-first and left-to-right, producing a
// Document (spec.md §4.4). The per-call reference table is discarded when
// Marshal returns; nothing about one call affects the next.
func (m *Marshaller) Marshal(v any) (Document, error) {
	enc := &encoder{
		registry:        m.registry,
		rejectNonFinite: m.rejectNonFinite,
		refs:            make(map[any]int),
	}
	root, err := enc.encodeValue(v)
	if err != nil {
		return Document{}, err
	}
	return Document{Root: root, Nodes: enc.nodes}, nil
}

type encoder struct {
	registry        *Registry
	rejectNonFinite bool
	nodes           []Node
	refs            map[any]int // identity -> ordinal, for reference-tracked values
}

// nodeBuilder constructs the Node content for a reference-tracked value
// once its ordinal has already been allocated and bound, so that a cycle
// encountered while building it resolves to a ref instead of recursing
// forever (spec.md §4.2).
type nodeBuilder func() (Node, error)

// encodeRefTracked implements the reference table's encode-side protocol:
// bind the ordinal before descending into build, so self-references
// produced during the descent see the binding already in place.
func (e *encoder) encodeRefTracked(identity any, build nodeBuilder) (Field, error) {
	if ord, ok := e.refs[identity]; ok {
		return fieldRef(ord), nil
	}
	ord := len(e.nodes)
	e.nodes = append(e.nodes, Node{}) // placeholder, overwritten below
	e.refs[identity] = ord

	node, err := build()
	if err != nil {
		return Field{}, err
	}
	e.nodes[ord] = node
	return fieldRef(ord), nil
}

// encodeValue dispatches on v's runtime shape in the priority order of
// spec.md §4.4: inline primitives, symbols, functions, dates, errors,
// ordered containers, objects (registered then plain).
func (e *encoder) encodeValue(v any) (Field, error) {
	if v == nil {
		return fieldNull(), nil
	}

	switch val := v.(type) {
	case Undefined:
		return fieldUndefined(), nil
	case Null:
		return fieldNull(), nil

	case *BigNumber:
		return e.encodeRefTracked(val, func() (Node, error) {
			return Node{Tag: TagBigNumber, Decimal: val.decimalNode()}, nil
		})

	case *Symbol:
		return e.encodeRefTracked(val, func() (Node, error) {
			idx, err := e.registry.symbolIndex(val)
			if err != nil {
				return Node{}, err
			}
			return Node{Tag: TagSymbol, Index: idx}, nil
		})

	case *FuncValue:
		return e.encodeRefTracked(val, func() (Node, error) {
			idx, err := e.registry.functionIndex(val)
			if err != nil {
				return Node{}, err
			}
			return Node{Tag: TagFunction, Index: idx}, nil
		})

	case *DateValue:
		return e.encodeRefTracked(val, func() (Node, error) {
			return Node{Tag: TagDate, Epoch: val.EpochMS}, nil
		})

	case *ErrorValue:
		return e.encodeRefTracked(val, func() (Node, error) {
			return Node{
				Tag:      TagError,
				Message:  val.Message,
				Name:     val.Name,
				HasName:  val.HasName,
				Stack:    val.Stack,
				HasStack: val.HasStack,
			}, nil
		})

	case *Array:
		return e.encodeRefTracked(val, func() (Node, error) {
			elems := make([]Field, len(val.Elements))
			for i, el := range val.Elements {
				f, err := e.encodeValue(el)
				if err != nil {
					return Node{}, err
				}
				elems[i] = f
			}
			return Node{Tag: TagArray, Elements: elems}, nil
		})

	case *MapValue:
		return e.encodeRefTracked(val, func() (Node, error) {
			entries := val.Entries()
			out := make([]MapEntry, len(entries))
			for i, en := range entries {
				k, err := e.encodeValue(en.Key)
				if err != nil {
					return Node{}, err
				}
				v, err := e.encodeValue(en.Value)
				if err != nil {
					return Node{}, err
				}
				out[i] = MapEntry{Key: k, Value: v}
			}
			return Node{Tag: TagMap, Entries: out}, nil
		})

	case *SetValue:
		return e.encodeRefTracked(val, func() (Node, error) {
			values := val.Values()
			elems := make([]Field, len(values))
			for i, v := range values {
				f, err := e.encodeValue(v)
				if err != nil {
					return Node{}, err
				}
				elems[i] = f
			}
			return Node{Tag: TagSet, Elements: elems}, nil
		})

	case *Object:
		return e.encodeRefTracked(val, func() (Node, error) {
			return e.encodeObjectBody(val)
		})
	}

	// anything else: dispatch on reflect.Kind so callers can pass plain
	// Go bool/string/numeric values without wrapping them.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return fieldBool(rv.Bool()), nil

	case reflect.String:
		return fieldString(rv.String()), nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if e.rejectNonFinite && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return Field{}, &NonFiniteError{Value: f}
		}
		return fieldNumber(f), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fieldNumber(float64(rv.Int())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fieldNumber(float64(rv.Uint())), nil

	default:
		return Field{}, &UnsupportedValueError{Value: v}
	}
}

// encodeObjectBody builds the object Node for obj: its prototype reference
// plus every own property (string and symbol keys, including
// non-enumerable ones), in insertion order, with the full descriptor
// (spec.md §4.4 item 7).
func (e *encoder) encodeObjectBody(obj *Object) (Node, error) {
	protoRef, err := e.registry.prototypeRef(obj)
	if err != nil {
		return Node{}, err
	}

	keys := obj.OwnKeys()
	props := make([]PropertyEntry, len(keys))
	for i, key := range keys {
		desc, _ := obj.Descriptor(key)

		keyField, err := e.encodePropertyKey(key)
		if err != nil {
			return Node{}, err
		}

		wireDesc := PropertyDescriptor{
			Configurable: desc.Configurable,
			Enumerable:   desc.Enumerable,
			Writable:     desc.Writable,
		}

		switch {
		case desc.HasValue:
			wireDesc.HasValue = true
			vf, err := e.encodeValue(desc.Value)
			if err != nil {
				return Node{}, err
			}
			wireDesc.Value = vf

		case desc.HasAccessor:
			wireDesc.HasAccessor = true
			wireDesc.Get = fieldUndefined()
			wireDesc.Set = fieldUndefined()
			if desc.Get != nil {
				gf, err := e.encodeValue(desc.Get)
				if err != nil {
					return Node{}, err
				}
				wireDesc.Get = gf
			}
			if desc.Set != nil {
				sf, err := e.encodeValue(desc.Set)
				if err != nil {
					return Node{}, err
				}
				wireDesc.Set = sf
			}
		}

		props[i] = PropertyEntry{Key: keyField, Descriptor: wireDesc}
	}

	return Node{Tag: TagObject, Prototype: protoRef, Properties: props}, nil
}

// encodePropertyKey encodes an own-property key, which must be a string or
// a registered *Symbol.
func (e *encoder) encodePropertyKey(key any) (Field, error) {
	switch k := key.(type) {
	case string:
		return fieldString(k), nil
	case *Symbol:
		return e.encodeValue(k)
	default:
		return Field{}, &UnsupportedValueError{Value: key}
	}
}
