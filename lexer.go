package jsontree

import "fmt"

// lexer generates tokens from a json buffer on demand. It never
// allocates; every token is a view into data.
type lexer struct {
	data []byte
	pos  int
}

func newLexer(data []byte) *lexer {
	return &lexer{data: data}
}

// next scans and consumes the next token. After the input is exhausted
// it keeps returning an eofToken.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.data) {
		return token{kind: eofToken, off: l.pos}, nil
	}
	start := l.pos
	switch b := l.data[l.pos]; {
	case punctKind(b) != invalidToken:
		l.pos++
		return token{kind: punctKind(b), lit: l.data[start:l.pos], off: start}, nil
	case b == '"':
		return l.scanString()
	case b == '-' || isDigit(b):
		return l.scanNumber()
	case isAlpha(b):
		return l.scanLiteral()
	default:
		return token{}, &SyntaxError{
			Offset:   start,
			Expected: "token",
			Found:    fmt.Sprintf("character %q", b),
		}
	}
}

// peek inspects the next token without advancing the cursor.
func (l *lexer) peek() (token, error) {
	save := l.pos
	t, err := l.next()
	l.pos = save
	return t, err
}

// expect consumes the next token and checks its kind.
func (l *lexer) expect(kind tokenKind) (token, error) {
	t, err := l.next()
	if err != nil {
		return token{}, err
	}
	if t.kind != kind {
		return token{}, &SyntaxError{
			Offset:   t.off,
			Expected: kind.String(),
			Found:    t.String(),
		}
	}
	return t, nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

// scanString reads a quoted string. The contents are taken verbatim, no
// escape decoding happens; a backslash only shields the following byte
// from terminating the scan.
func (l *lexer) scanString() (token, error) {
	start := l.pos
	l.pos++ // opening '"'
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			t := token{kind: stringToken, lit: l.data[start+1 : l.pos], off: start}
			l.pos++ // closing '"'
			return t, nil
		default:
			l.pos++
		}
	}
	return token{}, &SyntaxError{
		Offset:   start,
		Expected: `'"'`,
		Found:    eofToken.String(),
	}
}

// scanNumber reads an optionally signed number with optional fraction
// and exponent.
func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	if l.data[l.pos] == '-' {
		l.pos++
	}
	if n := l.digits(); n == 0 {
		return token{}, &SyntaxError{
			Offset:   start,
			Expected: "digit",
			Found:    l.byteAt(l.pos),
		}
	}
	if l.pos < len(l.data) && l.data[l.pos] == '.' {
		l.pos++
		l.digits()
	}
	if l.pos < len(l.data) && (l.data[l.pos] == 'e' || l.data[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.data) && (l.data[l.pos] == '+' || l.data[l.pos] == '-') {
			l.pos++
		}
		if n := l.digits(); n == 0 {
			return token{}, &SyntaxError{
				Offset:   start,
				Expected: "exponent digit",
				Found:    l.byteAt(l.pos),
			}
		}
	}
	return token{kind: numberToken, lit: l.data[start:l.pos], off: start}, nil
}

// scanLiteral reads an alphabetic run and requires it to be one of the
// three JSON keywords.
func (l *lexer) scanLiteral() (token, error) {
	start := l.pos
	for l.pos < len(l.data) && isAlpha(l.data[l.pos]) {
		l.pos++
	}
	lit := l.data[start:l.pos]
	kind := invalidToken
	switch string(lit) {
	case "true":
		kind = trueToken
	case "false":
		kind = falseToken
	case "null":
		kind = nullToken
	default:
		return token{}, &SyntaxError{
			Offset:   start,
			Expected: "'true', 'false' or 'null'",
			Found:    fmt.Sprintf("%q", lit),
		}
	}
	return token{kind: kind, lit: lit, off: start}, nil
}

// digits consumes a greedy digit run and reports its length.
func (l *lexer) digits() int {
	n := 0
	for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
		l.pos++
		n++
	}
	return n
}

func (l *lexer) byteAt(i int) string {
	if i >= len(l.data) {
		return eofToken.String()
	}
	return fmt.Sprintf("character %q", l.data[i])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
