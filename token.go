package jsontree

type tokenKind uint8

const (
	invalidToken tokenKind = iota
	objectOToken
	objectCToken
	arrayOToken
	arrayCToken
	commaToken
	colonToken
	trueToken
	falseToken
	nullToken
	numberToken
	stringToken
	eofToken
)

var tokenKindStr = [...]string{
	invalidToken: "invalid token",
	objectOToken: "'{'",
	objectCToken: "'}'",
	arrayOToken:  "'['",
	arrayCToken:  "']'",
	commaToken:   "','",
	colonToken:   "':'",
	trueToken:    "'true'",
	falseToken:   "'false'",
	nullToken:    "'null'",
	numberToken:  "number",
	stringToken:  "string",
	eofToken:     "end of input",
}

func (k tokenKind) String() string {
	if int(k) >= len(tokenKindStr) {
		return tokenKindStr[invalidToken]
	}
	return tokenKindStr[k]
}

// token is a view into the lexer's input: a kind plus the byte range
// holding the literal text. String tokens exclude the surrounding
// quotes. No token owns its bytes; lit aliases the input buffer.
type token struct {
	kind tokenKind
	lit  []byte
	off  int
}

// punctKind maps a punctuation byte to its token kind, or invalidToken.
func punctKind(b byte) tokenKind {
	switch b {
	case '{':
		return objectOToken
	case '}':
		return objectCToken
	case '[':
		return arrayOToken
	case ']':
		return arrayCToken
	case ',':
		return commaToken
	case ':':
		return colonToken
	default:
		return invalidToken
	}
}

// String generates a readable form of a token meant for debugging and
// error messages.
func (t token) String() string {
	switch t.kind {
	case numberToken:
		return "number " + string(t.lit)
	case stringToken:
		return `string "` + string(t.lit) + `"`
	default:
		return t.kind.String()
	}
}
