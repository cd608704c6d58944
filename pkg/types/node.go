package types

import "fmt"

// Kind tags the concrete type behind a Node.
type Kind uint8

const (
	KindRootInfo Kind = iota
	KindFixedInfo
	KindStringFileInfo
	KindStringTable
	KindString
	KindVarFileInfo
	KindVar
	KindValue
	KindUnknown
)

var kindNames = [...]string{
	KindRootInfo:       "VS_VERSION_INFO",
	KindFixedInfo:      "VS_FIXEDFILEINFO",
	KindStringFileInfo: "StringFileInfo",
	KindStringTable:    "StringTable",
	KindString:         "String",
	KindVarFileInfo:    "VarFileInfo",
	KindVar:            "Var",
	KindValue:          "VarValue",
	KindUnknown:        "Unknown",
}

// String returns the structure name used in text output.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Span is the half-open byte range [Start, End) a node was decoded from.
type Span struct {
	Start int
	End   int
}

// Len returns End-Start.
func (s Span) Len() int { return s.End - s.Start }

// Range returns the span itself; embedding Span gives every node its Range.
func (s Span) Range() Span { return s }

// Node is one record of the version resource tree. The set of
// implementations is closed; switch on the concrete type or on Kind.
type Node interface {
	Kind() Kind
	Range() Span
	// Nodes returns the children in on-disk order.
	Nodes() []Node
	node()
}

// -----------------------------------------------------------------------------
// Header and key
// -----------------------------------------------------------------------------

// Header holds the fields common to every record.
type Header struct {
	Length      uint16 `json:"wLength"`
	ValueLength uint16 `json:"wValueLength"`
	Type        uint16 `json:"wType"`
	Key         Key    `json:"szKey"`
}

// Key is a record's szKey.
type Key struct {
	Value KeyValue `json:"Value"`
	// Standard reports whether the key is the name expected for the record
	// kind. Nil when no single name applies (String records).
	Standard *bool `json:"Standard,omitempty"`
}

// KeyValue is the raw and decoded key text.
type KeyValue struct {
	Bytes   []byte `json:"Bytes"`
	Decoded string `json:"Decoded"`
	// Parsed is set for StringTable keys that are 8 hex digits.
	Parsed *LanguageCode `json:"Parsed,omitempty"`
}

// Text returns the decoded key.
func (k Key) Text() string { return k.Value.Decoded }

// IsStandard reports whether Standard is set and true.
func (k Key) IsStandard() bool { return k.Standard != nil && *k.Standard }

// Shape marks a StringFileInfo or VarFileInfo node that was not classified
// from a well-formed first child.
type Shape string

const (
	// ShapeStandard is the zero value: children match the node kind.
	ShapeStandard Shape = ""
	// ShapeStringChildren means the first child carried a text value, so the
	// children were decoded as String records.
	ShapeStringChildren Shape = "StringChildren"
	// ShapeKeyOnly means no child header fit and the node was recognised from
	// its own key.
	ShapeKeyOnly Shape = "KeyOnly"
)

// -----------------------------------------------------------------------------
// Records
// -----------------------------------------------------------------------------

// RootInfo is the VS_VERSION_INFO record.
type RootInfo struct {
	Span `json:"-"`
	Header
	Padding1 int        `json:"Padding1"`
	Value    *FixedInfo `json:"Value,omitempty"`
	// RawValue holds a value region whose length is not that of
	// VS_FIXEDFILEINFO.
	RawValue []byte `json:"RawValue,omitempty"`
	Padding2 int    `json:"Padding2,omitempty"`
	Children []Node `json:"Children"`
}

// FixedInfo wraps the VS_FIXEDFILEINFO block as a node.
type FixedInfo struct {
	Span `json:"-"`
	FixedFileInfo
}

// StringFileInfo is the container of StringTable records.
type StringFileInfo struct {
	Span `json:"-"`
	Header
	Padding  int    `json:"Padding"`
	Shape    Shape  `json:"Shape,omitempty"`
	Children []Node `json:"Children"`
}

// StringTable holds the String records of one language/code page.
type StringTable struct {
	Span `json:"-"`
	Header
	Padding  int    `json:"Padding"`
	Children []Node `json:"Children"`
}

// String is a key/value text pair.
type String struct {
	Span `json:"-"`
	Header
	Padding int `json:"Padding"`
	// Value is nil when the record ends right after its header.
	Value *StringValue `json:"Value"`
}

// StringValue is the text value of a String record.
type StringValue struct {
	Bytes   []byte `json:"Bytes"`
	Decoded string `json:"Decoded"`
	Padding int    `json:"Padding"`
}

// Text returns the decoded value, or "" when there is none.
func (s *String) Text() string {
	if s.Value == nil {
		return ""
	}
	return s.Value.Decoded
}

// VarFileInfo is the container of Var records.
type VarFileInfo struct {
	Span `json:"-"`
	Header
	Padding  int    `json:"Padding"`
	Shape    Shape  `json:"Shape,omitempty"`
	Children []Node `json:"Children"`
}

// Var is a binary record, normally "Translation", whose value is an array of
// language/code page pairs.
type Var struct {
	Span `json:"-"`
	Header
	Padding  int    `json:"Padding"`
	Children []Node `json:"Children"`
}

// Value is one language/code page pair of a Var record.
type Value struct {
	Span `json:"-"`
	LanguageCode
}

// Unknown is a record the decoder could not classify. Bytes holds whatever
// followed its header up to the record end.
type Unknown struct {
	Span `json:"-"`
	*Header
	Padding int    `json:"Padding"`
	Bytes   []byte `json:"Bytes"`
}

func (*RootInfo) Kind() Kind       { return KindRootInfo }
func (*FixedInfo) Kind() Kind      { return KindFixedInfo }
func (*StringFileInfo) Kind() Kind { return KindStringFileInfo }
func (*StringTable) Kind() Kind    { return KindStringTable }
func (*String) Kind() Kind         { return KindString }
func (*VarFileInfo) Kind() Kind    { return KindVarFileInfo }
func (*Var) Kind() Kind            { return KindVar }
func (*Value) Kind() Kind          { return KindValue }
func (*Unknown) Kind() Kind        { return KindUnknown }

func (n *RootInfo) Nodes() []Node       { return n.Children }
func (*FixedInfo) Nodes() []Node        { return nil }
func (n *StringFileInfo) Nodes() []Node { return n.Children }
func (n *StringTable) Nodes() []Node    { return n.Children }
func (*String) Nodes() []Node           { return nil }
func (n *VarFileInfo) Nodes() []Node    { return n.Children }
func (n *Var) Nodes() []Node            { return n.Children }
func (*Value) Nodes() []Node            { return nil }
func (*Unknown) Nodes() []Node          { return nil }

func (*RootInfo) node()       {}
func (*FixedInfo) node()      {}
func (*StringFileInfo) node() {}
func (*StringTable) node()    {}
func (*String) node()         {}
func (*VarFileInfo) node()    {}
func (*Var) node()            {}
func (*Value) node()          {}
func (*Unknown) node()        {}

// Walk visits n and its descendants depth-first in on-disk order, using an
// explicit stack. Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		kids := cur.Nodes()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}
