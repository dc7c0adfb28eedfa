// Package graphmarshal is a graph-preserving object marshaller for an
// in-process, dynamically-typed object graph.
//
// Given a value built from the types in this package — primitives,
// [*Object] instances with optional [*Prototype], the built-in containers
// [*Array], [*MapValue] and [*SetValue], [*DateValue], [*BigNumber],
// [*ErrorValue], [*Symbol] and [*FuncValue] — Marshal produces a
// [Document]: a self-describing, portable representation that Unmarshal can
// turn back into an isomorphic graph, including cycles and shared
// references.
//
//	m := graphmarshal.New(graphmarshal.MarshallerConfig{})
//	doc, err := m.Marshal(graph)
//	...
//	back, err := m.Unmarshal(doc)
//
// Reference identity
//
// Two peers that want to exchange documents describing instances of their
// own classes, or containing their own functions and accessors, share a
// [Registry] built from the same [MarshallerConfig]:
//
//	fooProto := graphmarshal.NewPrototype("Foo")
//	sayHello := graphmarshal.NewFunc("sayHello", `function(){...}`, func(this *graphmarshal.Object, args []any) (any, error) {
//		...
//	})
//	m := graphmarshal.New(graphmarshal.MarshallerConfig{
//		Prototypes: []*graphmarshal.Prototype{fooProto},
//		Functions:  []*graphmarshal.FuncValue{sayHello},
//	})
//
// Both peers must build positionally-equivalent registries; a function is
// considered the "same" function across two independently-constructed
// registries if its source text is byte-for-byte equal, so two processes
// sharing source code can interoperate without sharing memory.
//
// Scope
//
// This package implements only the encode/decode pair and its
// reference-identity protocol. Transport (JSON text, binary framing,
// storage) and any shared-registry discovery mechanism are left to the
// caller; [Document] is a plain, transport-neutral tree of [Node] values
// whose tags are string discriminators, ready for encoding/json or any
// other serializer.
package graphmarshal
