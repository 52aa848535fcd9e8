// tokens.go defines the token stream produced by the tokenizer.
package bbcode

// TokenType represents the kind of a token.
type TokenType int

const (
	TokenText TokenType = iota // literal text run
	TokenTag                   // content between '[' and ']'
)

// String returns a lowercase name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Token represents a single token from BBCode scanning.
type Token struct {
	Type     TokenType
	Value    string // literal text for TokenText, raw tag body (without brackets) for TokenTag
	Position int    // byte offset in original input
}

// IsClose reports whether the token is a closing tag marker like [/b].
func (t Token) IsClose() bool {
	return t.Type == TokenTag && len(t.Value) > 0 && t.Value[0] == '/'
}

// Source returns the original input text the token was scanned from.
func (t Token) Source() string {
	if t.Type == TokenTag {
		return "[" + t.Value + "]"
	}
	return t.Value
}
