package mdast

// TokenKind classifies the type of a token in the Markdown source.
type TokenKind uint16

// Token kinds cover every byte in the source, classifying Markdown syntax elements.
const (
	TokText TokenKind = iota

	TokHash          // '#' run
	TokStar          // '*' run
	TokUnderscore    // '_' run
	TokDash          // '-'
	TokPlus          // '+'
	TokOrderedMarker // '1.', '2)', etc.
	TokGreaterThan   // '>'
	TokBacktick      // '`' run
	TokTilde         // '~' run
	TokLeftBracket   // '['
	TokRightBracket  // ']'
	TokLeftParen     // '('
	TokRightParen    // ')'
	TokBang          // '!'

	TokNewline   // line terminator ('\n', '\r\n', or '\r')
	TokBlankLine // whitespace-only line content
	TokEOF
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokText:
		return "Text"
	case TokHash:
		return "Hash"
	case TokStar:
		return "Star"
	case TokUnderscore:
		return "Underscore"
	case TokDash:
		return "Dash"
	case TokPlus:
		return "Plus"
	case TokOrderedMarker:
		return "OrderedMarker"
	case TokGreaterThan:
		return "GreaterThan"
	case TokBacktick:
		return "Backtick"
	case TokTilde:
		return "Tilde"
	case TokLeftBracket:
		return "LeftBracket"
	case TokRightBracket:
		return "RightBracket"
	case TokLeftParen:
		return "LeftParen"
	case TokRightParen:
		return "RightParen"
	case TokBang:
		return "Bang"
	case TokNewline:
		return "Newline"
	case TokBlankLine:
		return "BlankLine"
	case TokEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token represents a classified span of the Markdown source.
// Tokens are contiguous and non-overlapping; concatenating the Text of every
// token in a stream reconstructs the original input exactly.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Text is the literal source text of the token.
	// Escaped characters keep their backslash so the stream stays lossless.
	Text string

	// Offset is the byte index where this token begins.
	Offset int

	// Line and Column are the 1-based source position of the token start.
	// Column counts bytes from the line start, not runes, so multi-byte
	// characters advance it by their encoded length.
	Line   int
	Column int

	// Count carries the run length for marker runs (Hash, Star, Underscore,
	// Backtick, Tilde) and the numeric value for OrderedMarker tokens.
	// Zero for all other kinds.
	Count int
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return len(t.Text)
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return len(t.Text) == 0
}

// IsLineEnd reports whether the token terminates a logical line.
func (t Token) IsLineEnd() bool {
	return t.Kind == TokNewline || t.Kind == TokEOF
}

// ValidateTokens checks that a token stream is lossless with respect to the
// given source: offsets are contiguous, start at zero, and the token texts
// cover the full input. Returns true if valid.
func ValidateTokens(tokens []Token, source string) bool {
	if len(tokens) == 0 {
		return len(source) == 0
	}

	offset := 0
	for _, tok := range tokens {
		if tok.Offset != offset {
			return false
		}
		end := offset + len(tok.Text)
		if end > len(source) || source[offset:end] != tok.Text {
			return false
		}
		offset = end
	}

	// The final token must be EOF and the stream must cover every byte.
	return tokens[len(tokens)-1].Kind == TokEOF && offset == len(source)
}
