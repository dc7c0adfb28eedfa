package graphmarshal

// Tag discriminates the kind of a Node or an inline Field.
type Tag string

const (
	TagUndefined Tag = "undefined"
	TagNull      Tag = "null"
	TagBool      Tag = "bool"
	TagNumber    Tag = "number"
	TagString    Tag = "string"
	TagDate      Tag = "date"
	TagBigNumber Tag = "bignumber"
	TagSymbol    Tag = "symbol"
	TagFunction  Tag = "function"
	TagArray     Tag = "array"
	TagMap       Tag = "map"
	TagSet       Tag = "set"
	TagError     Tag = "error"
	TagObject    Tag = "object"
	TagRef       Tag = "ref"
)

// PlainPrototype is the Node.Prototype value used for plain objects, as
// opposed to a decimal registry index for class instances.
const PlainPrototype = "plain"

// Field is a value occupying an array element, a map/set entry side, a
// property value/accessor slot, or the document root: either an inline
// primitive (never reference-tracked, per spec invariant 2) or a Ref to a
// node elsewhere in the document.
type Field struct {
	Tag Tag `json:"tag"`

	// populated when Tag is bool, number or string respectively.
	Bool   bool    `json:"bool,omitempty"`
	Number float64 `json:"number,omitempty"`
	Str    string  `json:"string,omitempty"`

	// populated when Tag == TagRef.
	Ordinal int `json:"ordinal,omitempty"`
}

func fieldUndefined() Field        { return Field{Tag: TagUndefined} }
func fieldNull() Field             { return Field{Tag: TagNull} }
func fieldBool(b bool) Field       { return Field{Tag: TagBool, Bool: b} }
func fieldNumber(n float64) Field  { return Field{Tag: TagNumber, Number: n} }
func fieldString(s string) Field   { return Field{Tag: TagString, Str: s} }
func fieldRef(ordinal int) Field   { return Field{Tag: TagRef, Ordinal: ordinal} }

// MapEntry is one ordered key/value pair of a map Node.
type MapEntry struct {
	Key   Field `json:"key"`
	Value Field `json:"value"`
}

// PropertyDescriptor mirrors a low-level property descriptor: a data slot
// (Value, gated by HasValue) or an accessor pair (Get/Set, gated by
// HasAccessor), plus the three attribute flags.
type PropertyDescriptor struct {
	Configurable bool `json:"configurable"`
	Enumerable   bool `json:"enumerable"`
	Writable     bool `json:"writable,omitempty"`

	HasValue bool  `json:"hasValue,omitempty"`
	Value    Field `json:"value,omitempty"`

	HasAccessor bool  `json:"hasAccessor,omitempty"`
	Get         Field `json:"get,omitempty"`
	Set         Field `json:"set,omitempty"`
}

// PropertyEntry is one ordered own-property of an object Node. Key is
// either an inline string Field or a Ref to a symbol Node.
type PropertyEntry struct {
	Key        Field              `json:"key"`
	Descriptor PropertyDescriptor `json:"descriptor"`
}

// Node is one tagged record in a Document. Which fields are meaningful
// depends on Tag; see the Tag constants.
type Node struct {
	Tag Tag `json:"tag"`

	// date
	Epoch int64 `json:"epoch,omitempty"`

	// bignumber: arbitrary-precision decimal literal, e.g. "3.14159".
	Decimal string `json:"decimal,omitempty"`

	// symbol, function: index into the peer registry.
	Index int `json:"index,omitempty"`

	// array, set
	Elements []Field `json:"elements,omitempty"`

	// map
	Entries []MapEntry `json:"entries,omitempty"`

	// error
	Message  string `json:"message,omitempty"`
	Name     string `json:"name,omitempty"`
	HasName  bool   `json:"hasName,omitempty"`
	Stack    string `json:"stack,omitempty"`
	HasStack bool   `json:"hasStack,omitempty"`

	// object: Prototype is PlainPrototype or a decimal registry index.
	Prototype  string          `json:"prototype,omitempty"`
	Properties []PropertyEntry `json:"properties,omitempty"`
}

// Document is the wire-neutral result of Marshal: an ordered sequence of
// nodes plus the root field (which may itself be an inline primitive, in
// which case Nodes may be empty).
type Document struct {
	Root  Field  `json:"root"`
	Nodes []Node `json:"nodes"`
}
