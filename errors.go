package jsontree

import (
	"errors"
	"fmt"
)

// ErrNotArrayOrObject is returned by container operations invoked on a
// node that holds a standalone value.
var ErrNotArrayOrObject = errors.New("not array or object")

// ErrKeyNotFound is returned by Query when no member carries the key.
var ErrKeyNotFound = errors.New("key not found")

// ErrEmptyInput is returned by ParseFile for a file without content.
var ErrEmptyInput = errors.New("empty input")

// SyntaxError reports input that does not match the JSON grammar: a
// token of the wrong kind where a specific one is required, an
// unterminated string or container, or a byte no token starts with.
type SyntaxError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// TypeError reports a typed accessor or mutation invoked on a node
// whose kind does not support it.
type TypeError struct {
	Op   string
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	if e.Want == Invalid {
		return fmt.Sprintf("%s: %s node", e.Op, e.Got)
	}
	return fmt.Sprintf("%s: want %s node, got %s", e.Op, e.Want, e.Got)
}

// BoundsError reports index-based removal outside a container's
// children.
type BoundsError struct {
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d)", e.Index, e.Len)
}
