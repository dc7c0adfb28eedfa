package graphmarshal

import (
	"strconv"

	"golang.org/x/exp/maps"
)

// Registry holds the peer-shared, position-keyed tables of prototypes,
// functions and symbols (spec.md §4.1). It is immutable once constructed;
// both peers must build equivalent registries (same length, same semantic
// content per index) for a Document to decode faithfully — positional
// mismatches are the caller's responsibility and are not detected here
// except when an index is out of range (RegistryMismatchError).
type Registry struct {
	prototypes []*Prototype
	protoIndex map[*Prototype]int

	functions []*FuncValue
	funcIndex map[*FuncValue]int

	symbols  []*Symbol
	symIndex map[*Symbol]int
}

// NewRegistry builds a Registry from positional tables. Any of the three
// may be nil, meaning that category is empty.
func NewRegistry(prototypes []*Prototype, functions []*FuncValue, symbols []*Symbol) *Registry {
	r := &Registry{
		prototypes: prototypes,
		functions:  functions,
		symbols:    symbols,
		protoIndex: make(map[*Prototype]int, len(prototypes)),
		funcIndex:  make(map[*FuncValue]int, len(functions)),
		symIndex:   make(map[*Symbol]int, len(symbols)),
	}
	for i, p := range prototypes {
		r.protoIndex[p] = i
	}
	for i, f := range functions {
		r.funcIndex[f] = i
	}
	for i, s := range symbols {
		r.symIndex[s] = i
	}
	return r
}

// prototypeRef returns PlainPrototype if o is a plain object, or the
// decimal registry index of o's prototype. It fails with
// UnknownPrototypeError if o has a non-plain prototype absent from the
// registry.
func (r *Registry) prototypeRef(o *Object) (string, error) {
	if o.Prototype == nil {
		return PlainPrototype, nil
	}
	idx, ok := r.protoIndex[o.Prototype]
	if !ok {
		return "", &UnknownPrototypeError{Prototype: o.Prototype}
	}
	return strconv.Itoa(idx), nil
}

// functionIndex returns the registry index of f, matching by identity
// first and falling back to byte-for-byte Source equality (spec.md §4.1,
// §6 "Function equivalence rule") so two independently-constructed
// registries defined by the same source can interoperate.
func (r *Registry) functionIndex(f *FuncValue) (int, error) {
	if idx, ok := r.funcIndex[f]; ok {
		return idx, nil
	}
	for i, cand := range r.functions {
		if cand.Source == f.Source {
			return i, nil
		}
	}
	return 0, &UnknownFunctionError{Name: f.Name}
}

// symbolIndex returns the registry index of s, matching by identity only.
func (r *Registry) symbolIndex(s *Symbol) (int, error) {
	idx, ok := r.symIndex[s]
	if !ok {
		return 0, &UnknownSymbolError{Name: s.Name}
	}
	return idx, nil
}

// prototypeAt returns the prototype at idx, or a RegistryMismatchError if
// idx is out of range.
func (r *Registry) prototypeAt(idx int) (*Prototype, error) {
	if idx < 0 || idx >= len(r.prototypes) {
		return nil, &RegistryMismatchError{Kind: "prototype", Index: idx, Len: len(r.prototypes)}
	}
	return r.prototypes[idx], nil
}

// functionAt returns the function at idx, or a RegistryMismatchError if idx
// is out of range.
func (r *Registry) functionAt(idx int) (*FuncValue, error) {
	if idx < 0 || idx >= len(r.functions) {
		return nil, &RegistryMismatchError{Kind: "function", Index: idx, Len: len(r.functions)}
	}
	return r.functions[idx], nil
}

// symbolAt returns the symbol at idx, or a RegistryMismatchError if idx is
// out of range.
func (r *Registry) symbolAt(idx int) (*Symbol, error) {
	if idx < 0 || idx >= len(r.symbols) {
		return nil, &RegistryMismatchError{Kind: "symbol", Index: idx, Len: len(r.symbols)}
	}
	return r.symbols[idx], nil
}

// Describe returns the registered prototype names, in registration order.
// It exists for debugging/tests; it carries no wire-protocol meaning.
func (r *Registry) Describe() []string {
	byIndex := make(map[int]string, len(r.protoIndex))
	for p, i := range r.protoIndex {
		byIndex[i] = p.Name
	}
	indices := maps.Keys(byIndex)
	names := make([]string, len(r.prototypes))
	for _, i := range indices {
		names[i] = byIndex[i]
	}
	return names
}
