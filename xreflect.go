package graphmarshal

// Utilities that complement the std reflect package.

import "reflect"

// deepEqual is like reflect.DeepEqual but also understands the container
// types backed by gomap.Map (*MapValue, *SetValue), plus *Array and *Object.
//
// It is needed because reflect.DeepEqual considers two MapValues (or
// SetValues) holding the same entries not-equal, since each one's
// *gomap.Map is built with its own seed and internal bucket layout — the
// same failure mode the teacher's Dict hits, documented in dict.go.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case *MapValue:
		bv, ok := b.(*MapValue)
		if !ok {
			return false
		}
		return mapValueDeepEqual(av, bv)

	case *SetValue:
		bv, ok := b.(*SetValue)
		if !ok {
			return false
		}
		return setValueDeepEqual(av, bv)

	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !deepEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case *Object:
		bv, ok := b.(*Object)
		if !ok {
			return false
		}
		return objectDeepEqual(av, bv)

	default:
		return reflect.DeepEqual(a, b)
	}
}

func mapValueDeepEqual(a, b *MapValue) bool {
	if a.Len() != b.Len() {
		return false
	}
	ae, be := a.Entries(), b.Entries()
	for i := range ae {
		if !deepEqual(ae[i].Key, be[i].Key) || !deepEqual(ae[i].Value, be[i].Value) {
			return false
		}
	}
	return true
}

func setValueDeepEqual(a, b *SetValue) bool {
	if a.Len() != b.Len() {
		return false
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		if !deepEqual(av[i], bv[i]) {
			return false
		}
	}
	return true
}

func objectDeepEqual(a, b *Object) bool {
	if a.Prototype != b.Prototype {
		return false
	}
	ak, bk := a.OwnKeys(), b.OwnKeys()
	if len(ak) != len(bk) {
		return false
	}
	for i := range ak {
		if !deepEqual(ak[i], bk[i]) {
			return false
		}
		da, _ := a.Descriptor(ak[i])
		db, _ := b.Descriptor(bk[i])
		if da.Configurable != db.Configurable || da.Enumerable != db.Enumerable || da.Writable != db.Writable {
			return false
		}
		if da.HasValue != db.HasValue || da.HasAccessor != db.HasAccessor {
			return false
		}
		if da.HasValue && !deepEqual(da.Value, db.Value) {
			return false
		}
		if da.HasAccessor && (da.Get != db.Get || da.Set != db.Set) {
			return false
		}
	}
	return true
}
