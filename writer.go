package jsontree

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const indentUnit = "    "

// Write prints the tree rooted at n to w as canonical indented JSON:
// 4-space indentation, one member or element per line, a comma after
// every entry but the last, no newline after the closing delimiter.
// The layout is independent of how the tree was constructed.
func (n *Node) Write(w io.Writer) error {
	if n == nil {
		return &TypeError{Op: "write", Got: Invalid}
	}
	buf, err := n.render(make([]byte, 0, 256), 0)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// WriteFile writes the canonical text of n to the file at path,
// creating or truncating it.
func (n *Node) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := n.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// String formats the tree as canonical JSON. It returns the empty
// string for invalid nodes.
func (n *Node) String() string {
	b := &strings.Builder{}
	if err := n.Write(b); err != nil {
		return ""
	}
	return b.String()
}

// render appends n's text at the given indent level. The opening
// delimiter lands wherever the buffer currently ends; callers emit any
// leading indent themselves.
func (n *Node) render(buf []byte, level int) ([]byte, error) {
	if !assertNodeType(n) {
		return nil, fmt.Errorf("write: kind %s holds %T", n.kind, n.value)
	}
	switch n.kind {
	case Null:
		return append(buf, "null"...), nil
	case Bool:
		if n.value.(bool) {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case Number:
		// up to 15 significant digits, like %.15g
		return strconv.AppendFloat(buf, n.value.(float64), 'g', 15, 64), nil
	case String:
		buf = append(buf, '"')
		buf = append(buf, n.value.(string)...)
		return append(buf, '"'), nil
	case Array:
		buf = append(buf, '[', '\n')
		cc := n.children()
		for i := range cc {
			buf = appendIndent(buf, level+1)
			var err error
			buf, err = cc[i].render(buf, level+1)
			if err != nil {
				return nil, err
			}
			if i < len(cc)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, '\n')
		}
		buf = appendIndent(buf, level)
		return append(buf, ']'), nil
	case Object:
		buf = append(buf, '{', '\n')
		cc := n.children()
		for i := range cc {
			buf = appendIndent(buf, level+1)
			buf = append(buf, '"')
			buf = append(buf, cc[i].key...)
			buf = append(buf, '"', ':', ' ')
			var err error
			buf, err = cc[i].render(buf, level+1)
			if err != nil {
				return nil, err
			}
			if i < len(cc)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, '\n')
		}
		buf = appendIndent(buf, level)
		return append(buf, '}'), nil
	default:
		return nil, fmt.Errorf("node of unknown kind: %#v", n)
	}
}

func appendIndent(buf []byte, level int) []byte {
	for i := 0; i < level; i++ {
		buf = append(buf, indentUnit...)
	}
	return buf
}
