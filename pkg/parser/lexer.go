package parser

import (
	"strings"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// lexer performs a single-pass, line-oriented tokenization of Markdown text.
// It produces a lossless token stream: concatenating every token's Text
// reconstructs the input exactly.
type lexer struct {
	src    string
	pos    int
	line   int
	col    int
	tokens []mdast.Token
}

// Tokenize scans Markdown text into a flat, positioned token stream.
// It is total: any character that matches no marker kind becomes part of a
// Text token, and the stream always ends with a single EOF token.
func Tokenize(src string) []mdast.Token {
	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	lex := &lexer{
		src:    src,
		line:   1,
		col:    1,
		tokens: make([]mdast.Token, 0, len(src)/initialCapacityDivisor+1),
	}

	for lex.pos < len(lex.src) {
		lex.lexLine()
	}
	lex.emit(mdast.TokEOF, "", 0)

	return lex.tokens
}

// emit appends a token at the current position and advances the column.
func (l *lexer) emit(kind mdast.TokenKind, text string, count int) {
	l.tokens = append(l.tokens, mdast.Token{
		Kind:   kind,
		Text:   text,
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
		Count:  count,
	})
	l.pos += len(text)
	l.col += len(text)
}

// emitNewline appends the line terminator token and moves to the next line.
func (l *lexer) emitNewline(text string) {
	l.emit(mdast.TokNewline, text, 0)
	l.line++
	l.col = 1
}

// lexLine tokenizes one source line including its terminator.
func (l *lexer) lexLine() {
	content, terminator := l.splitLine()

	if isBlank(content) {
		// Whitespace-only content is a block boundary signal. The token may
		// be empty for a bare newline; the stream stays lossless either way.
		l.emit(mdast.TokBlankLine, content, 0)
	} else {
		end := l.pos + len(content)
		for l.pos < end {
			l.lexInLine(end)
		}
	}

	if terminator != "" {
		l.emitNewline(terminator)
	}
}

// splitLine returns the content and terminator of the line starting at pos.
func (l *lexer) splitLine() (content, terminator string) {
	start := l.pos
	i := start
	for i < len(l.src) && l.src[i] != '\n' && l.src[i] != '\r' {
		i++
	}

	content = l.src[start:i]
	if i < len(l.src) {
		if l.src[i] == '\r' && i+1 < len(l.src) && l.src[i+1] == '\n' {
			terminator = l.src[i : i+2]
		} else {
			terminator = l.src[i : i+1]
		}
	}

	return content, terminator
}

// lexInLine emits the next token of the current line, which ends at end.
func (l *lexer) lexInLine(end int) {
	ch := l.src[l.pos]

	switch ch {
	case '#':
		l.emitRun(mdast.TokHash, ch, end)
		return
	case '*':
		l.emitRun(mdast.TokStar, ch, end)
		return
	case '_':
		l.emitRun(mdast.TokUnderscore, ch, end)
		return
	case '`':
		l.emitRun(mdast.TokBacktick, ch, end)
		return
	case '~':
		l.emitRun(mdast.TokTilde, ch, end)
		return
	case '-':
		l.emit(mdast.TokDash, "-", 0)
		return
	case '+':
		l.emit(mdast.TokPlus, "+", 0)
		return
	case '>':
		l.emit(mdast.TokGreaterThan, ">", 0)
		return
	case '[':
		l.emit(mdast.TokLeftBracket, "[", 0)
		return
	case ']':
		l.emit(mdast.TokRightBracket, "]", 0)
		return
	case '(':
		l.emit(mdast.TokLeftParen, "(", 0)
		return
	case ')':
		l.emit(mdast.TokRightParen, ")", 0)
		return
	case '!':
		l.emit(mdast.TokBang, "!", 0)
		return
	}

	if isDigit(ch) {
		if text, value, ok := l.scanOrderedMarker(end); ok {
			l.emit(mdast.TokOrderedMarker, text, value)
			return
		}
	}

	l.lexText(end)
}

// emitRun collapses a run of identical marker characters into one token
// carrying its length, so the parser can tell '*' from '**' from '***'
// without re-scanning.
func (l *lexer) emitRun(kind mdast.TokenKind, ch byte, end int) {
	i := l.pos
	for i < end && l.src[i] == ch {
		i++
	}
	l.emit(kind, l.src[l.pos:i], i-l.pos)
}

// maxOrderedMarkerDigits bounds ordered marker values to keep them in int range.
const maxOrderedMarkerDigits = 9

// scanOrderedMarker recognizes a digit run followed by '.' or ')'.
// The numeric value is carried in the token's Count field.
func (l *lexer) scanOrderedMarker(end int) (text string, value int, ok bool) {
	i := l.pos
	for i < end && isDigit(l.src[i]) {
		i++
	}
	if i-l.pos > maxOrderedMarkerDigits {
		return "", 0, false
	}
	if i >= end || (l.src[i] != '.' && l.src[i] != ')') {
		return "", 0, false
	}

	for _, digit := range []byte(l.src[l.pos:i]) {
		value = value*10 + int(digit-'0')
	}

	return l.src[l.pos : i+1], value, true
}

// lexText emits a maximal run of characters that start no other token kind.
// A backslash followed by Markdown punctuation is folded into the run so the
// escaped character cannot open a marker token; the backslash itself stays
// in the token text to preserve losslessness.
func (l *lexer) lexText(end int) {
	i := l.pos
	for i < end {
		ch := l.src[i]

		if ch == '\\' && i+1 < end && isMarkdownPunct(l.src[i+1]) {
			i += 2
			continue
		}
		if isMarkerStart(ch) {
			break
		}
		if isDigit(ch) && l.peekOrderedMarker(i, end) {
			break
		}
		i++
	}

	if i == l.pos {
		// A digit that looked like a marker start must still make progress.
		i = l.pos + 1
	}

	l.emit(mdast.TokText, l.src[l.pos:i], 0)
}

// peekOrderedMarker reports whether an ordered marker starts at offset i.
func (l *lexer) peekOrderedMarker(i, end int) bool {
	j := i
	for j < end && isDigit(l.src[j]) {
		j++
	}
	if j-i > maxOrderedMarkerDigits {
		return false
	}
	return j < end && (l.src[j] == '.' || l.src[j] == ')')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isMarkerStart(ch byte) bool {
	switch ch {
	case '#', '*', '_', '`', '~', '-', '+', '>', '[', ']', '(', ')', '!':
		return true
	default:
		return false
	}
}

// isMarkdownPunct reports whether a character is escapable ASCII punctuation.
func isMarkdownPunct(ch byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", ch) >= 0
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
