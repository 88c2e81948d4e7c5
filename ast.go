package jsontree

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Kind is an enum for any JSON type.
type Kind uint8

// Kinds to compare nodes of a tree with. The zero value signals an
// invalid node.
const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

var kindStr = [...]string{
	Invalid: "Invalid",
	Null:    "Null",
	Bool:    "Bool",
	Number:  "Number",
	String:  "String",
	Array:   "Array",
	Object:  "Object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// Node is one node of a JSON document tree.
// Depending on its kind it holds a different value:
//
//	Kind    ValueType
//	Null    nil
//	Bool    bool
//	Number  float64
//	String  string
//	Array   []Node
//	Object  []Node (every child carries a key)
//
// Children are stored by value and appending moves the argument into
// the container, so a node is never shared between two containers and
// never its own ancestor. Within an object child order is insertion
// order; it is preserved when writing but carries no meaning for
// lookup.
type Node struct {
	kind  Kind
	key   string
	value interface{}
}

// NewObject creates an empty object node. The key names the node as an
// object member; it stays empty for array elements and the root.
func NewObject(key string) Node { return Node{kind: Object, key: key, value: []Node(nil)} }

// NewArray creates an empty array node.
func NewArray(key string) Node { return Node{kind: Array, key: key, value: []Node(nil)} }

// NewNumber creates a number node holding v.
func NewNumber(key string, v float64) Node { return Node{kind: Number, key: key, value: v} }

// NewBool creates a boolean node holding v.
func NewBool(key string, v bool) Node { return Node{kind: Bool, key: key, value: v} }

// NewString creates a string node holding v. The bytes of v are written
// out verbatim, embedded escape sequences included.
func NewString(key, v string) Node { return Node{kind: String, key: key, value: v} }

// NewNull creates a null node.
func NewNull(key string) Node { return Node{kind: Null, key: key} }

// Type returns the Kind of a node.
func (n *Node) Type() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// Key returns the member key of a node. It is empty for array elements
// and the document root.
func (n *Node) Key() string {
	if n == nil {
		return ""
	}
	return n.key
}

// children returns the child slice of a container, nil for any other
// node.
func (n *Node) children() []Node {
	cc, _ := n.value.([]Node)
	return cc
}

// assertNodeType reports whether the value variant matches the kind.
func assertNodeType(n *Node) bool {
	switch n.value.(type) {
	case nil:
		return n.kind == Null
	case bool:
		return n.kind == Bool
	case float64:
		return n.kind == Number
	case string:
		return n.kind == String
	case []Node:
		return n.kind == Array || n.kind == Object
	default:
		return false
	}
}

// Append moves child to the end of n's children. n must be an array or
// object node. Storage grows geometrically from a small base, so a run
// of appends is amortized O(1).
func (n *Node) Append(child Node) error {
	if n.Type() != Array && n.Type() != Object {
		return errors.Wrapf(ErrNotArrayOrObject, "append to %s", n.Type())
	}
	cc := n.children()
	if len(cc)+1 > cap(cc) {
		ncap := 16
		if cap(cc) >= 16 {
			ncap = 2 * cap(cc)
		}
		grown := make([]Node, len(cc), ncap)
		copy(grown, cc)
		cc = grown
	}
	n.value = append(cc, child)
	return nil
}

// RemoveKey removes the first child of the object n whose key is key.
// Removal is swap-and-pop: the last child takes the removed slot, so
// sibling order is not preserved. Removing an absent key is a no-op.
func (n *Node) RemoveKey(key string) error {
	if n.Type() != Object {
		return &TypeError{Op: "remove key", Want: Object, Got: n.Type()}
	}
	cc := n.children()
	for i := range cc {
		if cc[i].key == key {
			cc[i] = cc[len(cc)-1]
			n.value = cc[:len(cc)-1]
			return nil
		}
	}
	return nil
}

// RemoveIndex removes the element at idx from the array n, swap-and-pop
// like RemoveKey.
func (n *Node) RemoveIndex(idx int) error {
	if n.Type() != Array {
		return &TypeError{Op: "remove index", Want: Array, Got: n.Type()}
	}
	cc := n.children()
	if idx < 0 || idx >= len(cc) {
		return &BoundsError{Index: idx, Len: len(cc)}
	}
	cc[idx] = cc[len(cc)-1]
	n.value = cc[:len(cc)-1]
	return nil
}

// RemoveAll drops every child of the container n. Capacity is retained
// for reuse.
func (n *Node) RemoveAll() error {
	if n.Type() != Array && n.Type() != Object {
		return errors.Wrapf(ErrNotArrayOrObject, "remove all from %s", n.Type())
	}
	n.value = n.children()[:0]
	return nil
}

// Query returns the first child of the object n whose key is key,
// scanning in child order. It reports ErrKeyNotFound when no member
// matches. The returned pointer aliases n's storage and stays valid
// until the next mutation of n.
func (n *Node) Query(key string) (*Node, error) {
	if n.Type() != Object {
		return nil, &TypeError{Op: "query", Want: Object, Got: n.Type()}
	}
	cc := n.children()
	for i := range cc {
		if cc[i].key == key {
			return &cc[i], nil
		}
	}
	return nil, ErrKeyNotFound
}

// AsObject views n as an object and returns its members. The slice is
// borrowed; it is owned by n.
func (n *Node) AsObject() ([]Node, error) {
	if n.Type() != Object {
		return nil, &TypeError{Op: "as object", Want: Object, Got: n.Type()}
	}
	return n.children(), nil
}

// AsArray views n as an array and returns its elements. The slice is
// borrowed; it is owned by n.
func (n *Node) AsArray() ([]Node, error) {
	if n.Type() != Array {
		return nil, &TypeError{Op: "as array", Want: Array, Got: n.Type()}
	}
	return n.children(), nil
}

// AsNumber views n as a number.
func (n *Node) AsNumber() (float64, error) {
	if n.Type() != Number {
		return 0, &TypeError{Op: "as number", Want: Number, Got: n.Type()}
	}
	return n.value.(float64), nil
}

// AsBool views n as a boolean.
func (n *Node) AsBool() (bool, error) {
	if n.Type() != Bool {
		return false, &TypeError{Op: "as bool", Want: Bool, Got: n.Type()}
	}
	return n.value.(bool), nil
}

// AsString views n as a string.
func (n *Node) AsString() (string, error) {
	if n.Type() != String {
		return "", &TypeError{Op: "as string", Want: String, Got: n.Type()}
	}
	return n.value.(string), nil
}

// Len gives the length of an array or the number of members in an
// object. Scalars count as one.
func (n *Node) Len() int {
	switch n.Type() {
	case Array, Object:
		return len(n.children())
	case Invalid:
		return 0
	default:
		return 1
	}
}

// Total returns the number of nodes in the subtree rooted at n.
func (n *Node) Total() int {
	switch n.Type() {
	case Array, Object:
		i := 1
		cc := n.children()
		for j := range cc {
			i += cc[j].Total()
		}
		return i
	default:
		return n.Len()
	}
}

// Keys returns the member keys of an object in child order. It is nil
// for any other node and non-nil with length 0 for an empty object.
func (n *Node) Keys() []string {
	if n.Type() != Object {
		return nil
	}
	cc := n.children()
	ss := make([]string, len(cc))
	for i := range cc {
		ss[i] = cc[i].key
	}
	return ss
}

// Value creates the Go representation of a node.
// Like encoding/json the possible underlying types of the first return
// parameter are:
//
//	Object  map[string]interface{}
//	Array   []interface{}
//	String  string
//	Number  float64
//	Bool    bool
//	Null    nil (with the error being nil too)
func (n *Node) Value() (interface{}, error) {
	if n == nil || !assertNodeType(n) {
		return nil, fmt.Errorf("internal type mismatch; kind %s holds %T", n.Type(), nodeValue(n))
	}
	switch n.kind {
	case Object:
		m := make(map[string]interface{}, n.Len())
		cc := n.children()
		for i := range cc {
			itf, err := cc[i].Value()
			if err != nil {
				return nil, err
			}
			m[cc[i].key] = itf
		}
		return m, nil
	case Array:
		s := make([]interface{}, 0, n.Len())
		cc := n.children()
		for i := range cc {
			itf, err := cc[i].Value()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	default:
		return n.value, nil
	}
}

func nodeValue(n *Node) interface{} {
	if n == nil {
		return nil
	}
	return n.value
}

// EqNode compares the nodes and all their children: kinds, keys, values
// and child order all have to match.
func EqNode(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind || a.key != b.key {
		return false
	}
	switch a.kind {
	case Array, Object:
		ac, bc := a.children(), b.children()
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if !EqNode(&ac[i], &bc[i]) {
				return false
			}
		}
		return true
	default:
		return a.value == b.value
	}
}

// MarshalJSON implements the json.Marshaler interface for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	if err := n.Write(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node.
func (n *Node) UnmarshalJSON(data []byte) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	*n = *m
	return nil
}
