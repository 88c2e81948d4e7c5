package jsontree

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Parse reads a JSON document from data and returns the root node of
// its tree. The document must be object-rooted; bytes after the closing
// brace of the root are ignored.
func Parse(data []byte) (*Node, error) {
	lx := newLexer(data)
	if _, err := lx.expect(objectOToken); err != nil {
		return nil, err
	}
	root, err := parseObject(lx)
	if err != nil {
		return nil, err
	}
	return &root, nil
}

// ParseFile reads the whole file at path into memory and parses it like
// Parse. Peak memory is the file size plus the resulting tree.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if len(data) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "load %s", path)
	}
	return Parse(data)
}

// parseValue dispatches on the next token to one production per JSON
// grammar rule.
func parseValue(lx *lexer) (Node, error) {
	t, err := lx.next()
	if err != nil {
		return Node{}, err
	}
	switch t.kind {
	case nullToken:
		return Node{kind: Null}, nil
	case trueToken:
		return Node{kind: Bool, value: true}, nil
	case falseToken:
		return Node{kind: Bool, value: false}, nil
	case numberToken:
		num, err := strconv.ParseFloat(string(t.lit), 64)
		if err != nil {
			return Node{}, &SyntaxError{Offset: t.off, Expected: "number", Found: string(t.lit)}
		}
		return Node{kind: Number, value: num}, nil
	case stringToken:
		return Node{kind: String, value: string(t.lit)}, nil
	case objectOToken:
		return parseObject(lx)
	case arrayOToken:
		return parseArray(lx)
	default:
		return Node{}, &SyntaxError{Offset: t.off, Expected: "value", Found: t.String()}
	}
}

// parsePair parses one "key": value member and attaches the key to the
// value node.
func parsePair(lx *lexer) (Node, error) {
	key, err := lx.expect(stringToken)
	if err != nil {
		return Node{}, err
	}
	if _, err := lx.expect(colonToken); err != nil {
		return Node{}, err
	}
	n, err := parseValue(lx)
	if err != nil {
		return Node{}, err
	}
	n.key = string(key.lit)
	return n, nil
}

// parseObject parses members until the closing brace. The opening brace
// has already been consumed by the caller.
func parseObject(lx *lexer) (Node, error) {
	node := NewObject("")
	for {
		t, err := lx.peek()
		if err != nil {
			return Node{}, err
		}
		if t.kind == objectCToken {
			break
		}
		if t.kind == commaToken {
			lx.next()
			continue
		}
		pair, err := parsePair(lx)
		if err != nil {
			return Node{}, err
		}
		if err := node.Append(pair); err != nil {
			return Node{}, err
		}
	}
	if _, err := lx.expect(objectCToken); err != nil {
		return Node{}, err
	}
	return node, nil
}

// parseArray mirrors parseObject with values instead of pairs.
func parseArray(lx *lexer) (Node, error) {
	node := NewArray("")
	for {
		t, err := lx.peek()
		if err != nil {
			return Node{}, err
		}
		if t.kind == arrayCToken {
			break
		}
		if t.kind == commaToken {
			lx.next()
			continue
		}
		elem, err := parseValue(lx)
		if err != nil {
			return Node{}, err
		}
		if err := node.Append(elem); err != nil {
			return Node{}, err
		}
	}
	if _, err := lx.expect(arrayCToken); err != nil {
		return Node{}, err
	}
	return node, nil
}
