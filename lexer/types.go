package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenLeftParen                 // Open parenthesis: "("
	TokenRightParen                // Close parenthesis: ")"
	TokenLeftBracket               // Open square bracket: "["
	TokenRightBracket              // Close square bracket: "]"
	TokenVectorOpen                // Vector opener: "#("
	TokenBinaryOpen                // Bit sequence opener: "#B(" or "#b("
	TokenQuote                     // Quote shorthand: "'"
	TokenBackquote                 // Backquote shorthand: "`"
	TokenUnquote                   // Unquote shorthand: ","
	TokenUnquoteSplicing           // Unquote-splicing shorthand: ",@"
	TokenDot                       // Standalone dot: "."
	TokenInt                       // Integer literal
	TokenFloat                     // Float literal
	TokenSymbol                    // Bare or |quoted| symbol
	TokenString                    // Double-quoted string
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenLeftParen:       "left_paren",
	TokenRightParen:      "right_paren",
	TokenLeftBracket:     "left_bracket",
	TokenRightBracket:    "right_bracket",
	TokenVectorOpen:      "vector_open",
	TokenBinaryOpen:      "binary_open",
	TokenQuote:           "quote",
	TokenBackquote:       "backquote",
	TokenUnquote:         "unquote",
	TokenUnquoteSplicing: "unquote_splicing",
	TokenDot:             "dot",
	TokenInt:             "int",
	TokenFloat:           "float",
	TokenSymbol:          "symbol",
	TokenString:          "string",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsSymbolChar reports whether r may appear anywhere in a bare symbol:
// printable ASCII above space, or anything above Latin-1 NBSP, minus
// the structural characters, the string quote and the comment
// character.
func IsSymbolChar(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '"', ';':
		return false
	}
	return (r > ' ' && r <= '~') || r > 0xA0
}

// IsSymbolStartChar reports whether r may start a bare symbol. A few
// characters are valid inside a symbol but carry other meanings at the
// start of a token.
func IsSymbolStartChar(r rune) bool {
	switch r {
	case '#', '`', '\'', ',', '|':
		return false
	}
	return IsSymbolChar(r)
}
