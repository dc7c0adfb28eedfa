//go:build gofuzz

package graphmarshal

import (
	"encoding/json"
	"fmt"
)

// Fuzz exercises the decode(encode(x)) == x round trip (spec.md §8, property
// 1), adapted from the teacher's fuzz.go. Unlike the teacher, which fuzzes
// its own wire bytes directly, graphmarshal's wire format is a Document the
// caller is free to serialize however it likes — so this harness treats data
// as a JSON-encoded Document, decodes it, then re-encodes and re-decodes the
// result and checks for a fixed point. Equality is checked with deepEqual,
// not raw reflect.DeepEqual, because a decoded value may contain
// *MapValue/*SetValue — both backed by a gomap.Map whose internal layout
// depends on a per-instance seed, so two logically-equal containers built
// independently are not reflect.DeepEqual (the same failure mode the
// teacher's own Dict hits; see xreflect.go).
func Fuzz(data []byte) int {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0
	}

	m := New(MarshallerConfig{})
	v, err := m.Unmarshal(doc)
	if err != nil {
		return 0
	}

	redoc, err := m.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("re-encode error after successful decode: %s", err))
	}

	v2, err := m.Unmarshal(redoc)
	if err != nil {
		panic(fmt.Sprintf("re-decode error after re-encode: %s\ndocument: %#v", err, redoc))
	}

	if !deepEqual(v, v2) {
		panic(fmt.Sprintf("decode·encode·decode != identity:\nhave: %#v\nwant: %#v", v2, v))
	}

	return 1
}
