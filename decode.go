package graphmarshal

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// Unmarshal reconstructs a value from doc against m's registry. It runs in
// two passes over doc.Nodes (spec.md §4.5): an allocate pass that creates
// one shell per node — enough to hand out a stable identity for any
// back-reference — followed by a populate pass that fills in each shell's
// contents, resolving refs against shells that may themselves still be
// unpopulated. This order is what makes cyclic documents decode without
// infinite recursion or placeholder leakage: every ref, however deeply
// nested, resolves to a shell that already exists by the time populate
// needs it.
func (m *Marshaller) Unmarshal(doc Document) (any, error) {
	// Defensively clone the node slice so that replacing a node in the
	// caller's doc.Nodes does not affect a decode in flight. The clone is
	// shallow: each node's Elements, Entries and Properties slices are
	// still shared with the caller.
	doc.Nodes = slices.Clone(doc.Nodes)

	dec := &decoder{registry: m.registry, doc: doc}
	if err := dec.allocate(); err != nil {
		return nil, err
	}
	if err := dec.populate(); err != nil {
		return nil, err
	}
	return dec.resolveField(doc.Root)
}

type decoder struct {
	registry *Registry
	doc      Document
	values   []any // shell (then fully populated) value per node ordinal
}

// allocate builds one shell per node, in order, without following any Refs
// into composite bodies. Leaf node kinds (bignumber, symbol, function, date,
// error) carry no references to other nodes, so they are fully built here.
func (d *decoder) allocate() error {
	d.values = make([]any, len(d.doc.Nodes))
	for ord, n := range d.doc.Nodes {
		v, err := d.allocateNode(ord, n)
		if err != nil {
			return err
		}
		d.values[ord] = v
	}
	return nil
}

func (d *decoder) allocateNode(ord int, n Node) (any, error) {
	switch n.Tag {
	case TagBigNumber:
		b, err := parseBigNumberNode(n.Decimal)
		if err != nil {
			return nil, &BadDocumentError{Reason: err.Error(), Ordinal: ord}
		}
		return b, nil

	case TagSymbol:
		return d.registry.symbolAt(n.Index)

	case TagFunction:
		return d.registry.functionAt(n.Index)

	case TagDate:
		return &DateValue{EpochMS: n.Epoch}, nil

	case TagError:
		return &ErrorValue{
			Message:  n.Message,
			Name:     n.Name,
			HasName:  n.HasName,
			Stack:    n.Stack,
			HasStack: n.HasStack,
		}, nil

	case TagArray:
		return &Array{Elements: make([]any, len(n.Elements))}, nil

	case TagMap:
		return NewMapValue(), nil

	case TagSet:
		return NewSetValue(), nil

	case TagObject:
		proto, err := d.resolvePrototype(n.Prototype, ord)
		if err != nil {
			return nil, err
		}
		return NewObject(proto), nil

	default:
		return nil, &BadDocumentError{Reason: fmt.Sprintf("unexpected node tag %q", n.Tag), Ordinal: ord}
	}
}

func (d *decoder) resolvePrototype(ref string, ord int) (*Prototype, error) {
	if ref == "" || ref == PlainPrototype {
		return nil, nil
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return nil, &BadDocumentError{Reason: fmt.Sprintf("malformed prototype reference %q", ref), Ordinal: ord}
	}
	return d.registry.prototypeAt(idx)
}

// populate fills in every shell's composite contents, resolving each Field
// against the (by now fully allocated) values table.
func (d *decoder) populate() error {
	for ord, n := range d.doc.Nodes {
		if err := d.populateNode(ord, n); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) populateNode(ord int, n Node) error {
	switch n.Tag {
	case TagArray:
		arr := d.values[ord].(*Array)
		for i, f := range n.Elements {
			v, err := d.resolveField(f)
			if err != nil {
				return err
			}
			arr.Elements[i] = v
		}

	case TagMap:
		mv := d.values[ord].(*MapValue)
		for _, entry := range n.Entries {
			k, err := d.resolveField(entry.Key)
			if err != nil {
				return err
			}
			v, err := d.resolveField(entry.Value)
			if err != nil {
				return err
			}
			mv.Set(k, v)
		}

	case TagSet:
		sv := d.values[ord].(*SetValue)
		for _, f := range n.Elements {
			v, err := d.resolveField(f)
			if err != nil {
				return err
			}
			sv.Add(v)
		}

	case TagObject:
		obj := d.values[ord].(*Object)
		for _, prop := range n.Properties {
			key, err := d.resolvePropertyKey(prop.Key, ord)
			if err != nil {
				return err
			}
			desc, err := d.resolveDescriptor(prop.Descriptor, ord)
			if err != nil {
				return err
			}
			obj.DefineProperty(key, desc)
		}

	default:
		// bignumber, symbol, function, date, error: fully built in allocate.
	}
	return nil
}

// resolveField converts a wire Field into a domain value: an inline
// primitive is converted directly, a ref resolves against the values table
// (which is fully allocated by the time populate runs, however deep the
// cycle).
func (d *decoder) resolveField(f Field) (any, error) {
	switch f.Tag {
	case TagUndefined:
		return Undefined{}, nil
	case TagNull:
		return Null{}, nil
	case TagBool:
		return f.Bool, nil
	case TagNumber:
		return f.Number, nil
	case TagString:
		return f.Str, nil
	case TagRef:
		if f.Ordinal < 0 || f.Ordinal >= len(d.values) {
			return nil, &BadDocumentError{Reason: fmt.Sprintf("ref to out-of-range ordinal %d", f.Ordinal), Ordinal: f.Ordinal}
		}
		return d.values[f.Ordinal], nil
	default:
		return nil, &BadDocumentError{Reason: fmt.Sprintf("unexpected field tag %q", f.Tag), Ordinal: -1}
	}
}

// resolvePropertyKey resolves an own-property key field, which must be an
// inline string or a ref to a symbol node.
func (d *decoder) resolvePropertyKey(f Field, ord int) (any, error) {
	switch f.Tag {
	case TagString:
		return f.Str, nil
	case TagRef:
		v, err := d.resolveField(f)
		if err != nil {
			return nil, err
		}
		sym, ok := v.(*Symbol)
		if !ok {
			return nil, &BadDocumentError{Reason: "property key ref does not resolve to a symbol", Ordinal: ord}
		}
		return sym, nil
	default:
		return nil, &BadDocumentError{Reason: fmt.Sprintf("invalid property key field tag %q", f.Tag), Ordinal: ord}
	}
}

// resolveDescriptor converts a wire PropertyDescriptor into a Descriptor,
// resolving its value or accessor fields.
func (d *decoder) resolveDescriptor(wd PropertyDescriptor, ord int) (Descriptor, error) {
	desc := Descriptor{
		Configurable: wd.Configurable,
		Enumerable:   wd.Enumerable,
		Writable:     wd.Writable,
	}

	switch {
	case wd.HasValue:
		v, err := d.resolveField(wd.Value)
		if err != nil {
			return Descriptor{}, err
		}
		desc.HasValue = true
		desc.Value = v

	case wd.HasAccessor:
		desc.HasAccessor = true
		if wd.Get.Tag != TagUndefined {
			g, err := d.resolveField(wd.Get)
			if err != nil {
				return Descriptor{}, err
			}
			fn, ok := g.(*FuncValue)
			if !ok {
				return Descriptor{}, &BadDocumentError{Reason: "accessor getter does not resolve to a function", Ordinal: ord}
			}
			desc.Get = fn
		}
		if wd.Set.Tag != TagUndefined {
			s, err := d.resolveField(wd.Set)
			if err != nil {
				return Descriptor{}, err
			}
			fn, ok := s.(*FuncValue)
			if !ok {
				return Descriptor{}, &BadDocumentError{Reason: "accessor setter does not resolve to a function", Ordinal: ord}
			}
			desc.Set = fn
		}
	}

	return desc, nil
}
