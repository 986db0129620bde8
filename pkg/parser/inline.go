package parser

import (
	"strings"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// emphasisRunLimit is the longest delimiter run that participates in
// emphasis matching; longer runs are literal text.
const emphasisRunLimit = 3

// ParseInline resolves the raw text of a leaf block into inline AST nodes:
// emphasis, strong emphasis, code spans, links, images, hard line breaks,
// and escape sequences. It is total: unmatched delimiters and malformed
// link syntax degrade to literal text.
func ParseInline(raw string) []*mdast.Node {
	s := &inlineScanner{raw: raw}
	s.scan()
	return mergeText(s.out)
}

// delimiter is one entry of the emphasis matching stack. It references the
// placeholder text node that holds the run's unconsumed characters.
type delimiter struct {
	char   byte
	length int
	outIdx int
}

// inlineScanner performs the two-pass inline parse: a left-to-right scan
// that emits provisional nodes, with a delimiter stack resolving emphasis
// as closing runs arrive. The stack keeps worst-case behavior linear.
type inlineScanner struct {
	raw   string
	pos   int
	out   []*mdast.Node
	buf   []byte
	stack []*delimiter
}

func (s *inlineScanner) scan() {
	for s.pos < len(s.raw) {
		ch := s.raw[s.pos]

		switch ch {
		case '\\':
			s.scanEscape()
		case '`':
			s.scanCodeSpan()
		case '\n':
			s.scanLineBreak()
		case '!':
			if !s.scanImage() {
				s.literal("!")
				s.pos++
			}
		case '[':
			if !s.scanLink() {
				s.literal("[")
				s.pos++
			}
		case '*', '_':
			s.scanDelimiterRun(ch)
		default:
			s.buf = append(s.buf, ch)
			s.pos++
		}
	}

	s.flushText()
}

// literal appends text to the pending text buffer.
func (s *inlineScanner) literal(text string) {
	s.buf = append(s.buf, text...)
}

// flushText converts the pending buffer into a text node.
func (s *inlineScanner) flushText() {
	if len(s.buf) == 0 {
		return
	}
	s.out = append(s.out, mdast.NewText(string(s.buf)))
	s.buf = s.buf[:0]
}

// scanEscape folds a backslash escape into a literal character.
// A trailing or unmatched backslash is literal text.
func (s *inlineScanner) scanEscape() {
	if s.pos+1 < len(s.raw) && isMarkdownPunct(s.raw[s.pos+1]) {
		s.buf = append(s.buf, s.raw[s.pos+1])
		s.pos += 2
		return
	}
	s.buf = append(s.buf, '\\')
	s.pos++
}

// scanCodeSpan matches a backtick run against the next run of identical
// length. Content is verbatim: no nested inline parsing, escapes literal.
func (s *inlineScanner) scanCodeSpan() {
	length := runLength(s.raw, s.pos, '`')

	end := findCodeSpanEnd(s.raw, s.pos+length, length)
	if end < 0 {
		s.literal(s.raw[s.pos : s.pos+length])
		s.pos += length
		return
	}

	s.flushText()
	s.out = append(s.out, mdast.NewCodeSpan(s.raw[s.pos+length:end]))
	s.pos = end + length
}

// findCodeSpanEnd locates the next backtick run of exactly the given length.
func findCodeSpanEnd(raw string, from, length int) int {
	i := from
	for i < len(raw) {
		if raw[i] != '`' {
			i++
			continue
		}
		run := runLength(raw, i, '`')
		if run == length {
			return i
		}
		i += run
	}
	return -1
}

// scanLineBreak resolves a newline: two or more trailing spaces produce a
// hard break node, otherwise the soft break collapses to a single space.
func (s *inlineScanner) scanLineBreak() {
	trailing := 0
	for len(s.buf)-trailing > 0 && s.buf[len(s.buf)-1-trailing] == ' ' {
		trailing++
	}
	s.buf = s.buf[:len(s.buf)-trailing]

	if trailing >= 2 {
		s.flushText()
		s.out = append(s.out, mdast.NewHardBreak())
	} else {
		s.buf = append(s.buf, ' ')
	}
	s.pos++
}

// scanLink matches [text](url "title"). The link text is itself
// inline-parsed. Returns false (consuming nothing) if the grammar does not
// match, so the bracket degrades to literal text.
func (s *inlineScanner) scanLink() bool {
	closeIdx := matchBracket(s.raw, s.pos)
	if closeIdx < 0 {
		return false
	}

	dest, title, end, ok := parseLinkTarget(s.raw, closeIdx+1)
	if !ok {
		return false
	}

	children := ParseInline(s.raw[s.pos+1 : closeIdx])
	s.flushText()
	s.out = append(s.out, mdast.NewLink(dest, title, children...))
	s.pos = end
	return true
}

// scanImage matches ![alt](url "title"). Alt text is literal, not
// inline-parsed.
func (s *inlineScanner) scanImage() bool {
	if s.pos+1 >= len(s.raw) || s.raw[s.pos+1] != '[' {
		return false
	}

	closeIdx := matchBracket(s.raw, s.pos+1)
	if closeIdx < 0 {
		return false
	}

	dest, title, end, ok := parseLinkTarget(s.raw, closeIdx+1)
	if !ok {
		return false
	}

	alt := unescape(s.raw[s.pos+2 : closeIdx])
	s.flushText()
	s.out = append(s.out, mdast.NewImage(dest, title, alt))
	s.pos = end
	return true
}

// matchBracket returns the index of the ']' matching the '[' at start,
// honoring nesting and backslash escapes, or -1.
func matchBracket(raw string, start int) int {
	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseLinkTarget parses `(url "optional title")` starting at i.
// Returns the position just past the closing paren.
func parseLinkTarget(raw string, i int) (dest, title string, end int, ok bool) {
	if i >= len(raw) || raw[i] != '(' {
		return "", "", 0, false
	}
	i = skipSpaces(raw, i+1)

	dest, i, ok = parseDestination(raw, i)
	if !ok {
		return "", "", 0, false
	}
	i = skipSpaces(raw, i)

	if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
		title, i, ok = parseTitle(raw, i)
		if !ok {
			return "", "", 0, false
		}
		i = skipSpaces(raw, i)
	}

	if i >= len(raw) || raw[i] != ')' {
		return "", "", 0, false
	}
	return dest, title, i + 1, true
}

// parseDestination reads a link URL: either <angle-bracketed> or a run of
// non-space characters with balanced parentheses.
func parseDestination(raw string, i int) (dest string, end int, ok bool) {
	var sb strings.Builder

	if i < len(raw) && raw[i] == '<' {
		for j := i + 1; j < len(raw); j++ {
			switch raw[j] {
			case '>':
				return sb.String(), j + 1, true
			case '\n', '<':
				return "", 0, false
			case '\\':
				if j+1 < len(raw) && isMarkdownPunct(raw[j+1]) {
					j++
				}
				sb.WriteByte(raw[j])
			default:
				sb.WriteByte(raw[j])
			}
		}
		return "", 0, false
	}

	depth := 0
	for ; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n':
			return sb.String(), i, true
		case ch == '\\' && i+1 < len(raw) && isMarkdownPunct(raw[i+1]):
			i++
			sb.WriteByte(raw[i])
		case ch == '(':
			depth++
			sb.WriteByte(ch)
		case ch == ')':
			if depth == 0 {
				return sb.String(), i, true
			}
			depth--
			sb.WriteByte(ch)
		default:
			sb.WriteByte(ch)
		}
	}
	return "", 0, false
}

// parseTitle reads a quoted title starting at the opening quote.
func parseTitle(raw string, i int) (title string, end int, ok bool) {
	quote := raw[i]
	var sb strings.Builder

	for j := i + 1; j < len(raw); j++ {
		switch raw[j] {
		case quote:
			return sb.String(), j + 1, true
		case '\\':
			if j+1 < len(raw) && isMarkdownPunct(raw[j+1]) {
				j++
			}
			sb.WriteByte(raw[j])
		default:
			sb.WriteByte(raw[j])
		}
	}
	return "", 0, false
}

// scanDelimiterRun handles a '*' or '_' run: it may close emphasis opened
// earlier on the stack, open new emphasis, or fall back to literal text.
// Flanking: a run may open only if followed by a non-whitespace character
// and close only if preceded by one.
func (s *inlineScanner) scanDelimiterRun(char byte) {
	length := runLength(s.raw, s.pos, char)
	start := s.pos
	s.pos += length

	if length > emphasisRunLimit {
		s.literal(s.raw[start : start+length])
		return
	}

	canOpen := s.pos < len(s.raw) && !isWhitespace(s.raw[s.pos])
	canClose := start > 0 && !isWhitespace(s.raw[start-1])

	remaining := length
	if canClose {
		remaining = s.closeEmphasis(char, remaining)
	}
	if remaining == 0 {
		return
	}

	if canOpen {
		s.flushText()
		placeholder := mdast.NewText(strings.Repeat(string(char), remaining))
		s.out = append(s.out, placeholder)
		s.stack = append(s.stack, &delimiter{char: char, length: remaining, outIdx: len(s.out) - 1})
		return
	}

	s.literal(strings.Repeat(string(char), remaining))
}

// closeEmphasis matches a closing run of the given length against the
// topmost compatible opener, preferring the innermost (stack discipline).
// Run length 1 closes Emphasis, 2 closes Strong, 3 closes Strong(Emphasis).
// Returns the unconsumed run length.
func (s *inlineScanner) closeEmphasis(char byte, length int) int {
	for length > 0 {
		idx := s.topOpener(char)
		if idx < 0 {
			return length
		}

		// Unmatched openers above the match become literal text; their
		// placeholder nodes are already in the output.
		s.stack = s.stack[:idx+1]
		entry := s.stack[idx]
		s.flushText()

		children := append([]*mdast.Node(nil), s.out[entry.outIdx+1:]...)
		children = mergeText(children)

		var wrapper *mdast.Node
		var consumed int
		switch {
		case entry.length >= 3 && length >= 3:
			consumed = 3
			wrapper = mdast.NewStrong(mdast.NewEmphasis(children...))
		case entry.length >= 2 && length >= 2:
			consumed = 2
			wrapper = mdast.NewStrong(children...)
		default:
			consumed = 1
			wrapper = mdast.NewEmphasis(children...)
		}

		entry.length -= consumed
		length -= consumed

		s.out = s.out[:entry.outIdx+1]
		placeholder := s.out[entry.outIdx]
		placeholder.Literal = placeholder.Literal[:entry.length]
		if entry.length == 0 {
			s.out = s.out[:entry.outIdx]
			s.stack = s.stack[:idx]
		}
		s.out = append(s.out, wrapper)
	}
	return 0
}

// topOpener returns the index of the topmost stack entry for char, or -1.
func (s *inlineScanner) topOpener(char byte) int {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].char == char {
			return i
		}
	}
	return -1
}

// mergeText collapses adjacent text nodes into one.
func mergeText(nodes []*mdast.Node) []*mdast.Node {
	merged := nodes[:0:0]
	for _, n := range nodes {
		if n.Kind == mdast.NodeText && n.Literal == "" {
			continue
		}
		if n.Kind == mdast.NodeText && len(merged) > 0 && merged[len(merged)-1].Kind == mdast.NodeText {
			prev := merged[len(merged)-1]
			merged[len(merged)-1] = mdast.NewText(prev.Literal + n.Literal)
			continue
		}
		merged = append(merged, n)
	}
	return merged
}

// unescape resolves backslash escapes in literal contexts (image alt text,
// link destinations are handled during their own parse).
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isMarkdownPunct(s[i+1]) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func runLength(s string, i int, ch byte) int {
	j := i
	for j < len(s) && s[j] == ch {
		j++
	}
	return j - i
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}
