package graphmarshal

// MapValue and SetValue are the marshalled counterparts of the host
// graph's ordered map/set built-ins (spec.md §3, §4.4 item 6). Both need
// key/element lookup across mixed value types — numbers, strings, dates,
// objects compared by reference — which is exactly the problem the
// teacher's Dict (dict.go) solves for Python equality. The same
// gomap.Map[any,any] + custom equal/hash approach is reused here, narrowed
// to the simpler "SameValueZero"-style equality a dynamically-typed graph
// needs: primitives compare by value (NaN self-equal, like SameValueZero),
// everything else compares by pointer identity — which matches how the
// Reference Table already keys non-primitives during encode.
//
// Insertion order is not something gomap tracks (its own Dict.Iter doc
// says "the order to visit entries is arbitrary"), so both types keep a
// parallel order slice, appended to only on first insertion of a key.

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"reflect"

	"github.com/aristanetworks/gomap"
)

var hashSeed = maphash.MakeSeed()

// valueEqual reports whether a and b are the same graph value for the
// purposes of map-key/set-element identity.
func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	default:
		// *Object, *Array, *MapValue, *SetValue, *DateValue, *BigNumber,
		// *Symbol, *FuncValue, *ErrorValue: compared by pointer identity,
		// consistent with how the encoder's reference table dedups them.
		return a == b
	}
}

// valueHash returns a hash of x consistent with valueEqual.
func valueHash(seed maphash.Seed, x any) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	switch v := x.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case float64:
		// valueEqual treats +0/-0 as equal and every NaN as equal, so both
		// are normalised to one bit pattern before hashing.
		if v == 0 {
			v = 0
		} else if math.IsNaN(v) {
			v = math.NaN()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
		return h.Sum64()
	case string:
		h.WriteString(v)
		return h.Sum64()
	default:
		rv := reflect.ValueOf(x)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			// unreachable for well-formed graphs; fall back to a constant
			// bucket rather than panicking on an unexpected key type.
			return 0
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(rv.Pointer()))
		h.Write(b[:])
		return h.Sum64()
	}
}

// MapEntryValue is one key/value pair of a MapValue, as returned by
// Entries in insertion order.
type MapEntryValue struct {
	Key   any
	Value any
}

// MapValue is an ordered, reference-tracked map whose keys may be any
// graph value (numbers, strings, dates, or other containers/objects
// compared by reference).
type MapValue struct {
	m     *gomap.Map[any, any]
	order []any
}

// NewMapValue returns a new, empty MapValue.
func NewMapValue() *MapValue {
	return &MapValue{m: gomap.NewHint[any, any](0, valueEqual, valueHash)}
}

// Set associates key with value, preserving key's original insertion
// position if it was already present.
func (mv *MapValue) Set(key, value any) {
	if _, exists := mv.m.Get(key); !exists {
		mv.order = append(mv.order, key)
	}
	mv.m.Set(key, value)
}

// Get returns the value associated with key, and whether key is present.
func (mv *MapValue) Get(key any) (any, bool) {
	return mv.m.Get(key)
}

// Len returns the number of entries.
func (mv *MapValue) Len() int {
	return len(mv.order)
}

// Entries returns all entries in insertion order.
func (mv *MapValue) Entries() []MapEntryValue {
	out := make([]MapEntryValue, 0, len(mv.order))
	for _, k := range mv.order {
		v, _ := mv.m.Get(k)
		out = append(out, MapEntryValue{Key: k, Value: v})
	}
	return out
}

// SetValue is an ordered, reference-tracked set of distinct graph values.
type SetValue struct {
	m     *gomap.Map[any, any]
	order []any
}

// NewSetValue returns a new, empty SetValue.
func NewSetValue() *SetValue {
	return &SetValue{m: gomap.NewHint[any, any](0, valueEqual, valueHash)}
}

// Add inserts v if not already present; re-adding an existing value is a
// no-op.
func (sv *SetValue) Add(v any) {
	if _, exists := sv.m.Get(v); !exists {
		sv.order = append(sv.order, v)
		sv.m.Set(v, struct{}{})
	}
}

// Has reports whether v is a member.
func (sv *SetValue) Has(v any) bool {
	_, ok := sv.m.Get(v)
	return ok
}

// Len returns the number of elements.
func (sv *SetValue) Len() int {
	return len(sv.order)
}

// Values returns all elements in insertion order.
func (sv *SetValue) Values() []any {
	out := make([]any, len(sv.order))
	copy(out, sv.order)
	return out
}
