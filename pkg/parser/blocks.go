package parser

import (
	"strings"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// blockIndentLimit is the maximum leading-space width at which a line can
// still open a block construct; deeper indentation means indented code.
const blockIndentLimit = 3

// indentedCodeWidth is the indentation that opens an indented code block.
const indentedCodeWidth = 4

// logicalLine is one source line of the token stream, delimited by
// Newline/EOF tokens. The terminator itself is not part of the line.
type logicalLine struct {
	toks  []mdast.Token
	text  string
	blank bool
}

// indent returns the width of the line's leading spaces.
func (ln logicalLine) indent() int {
	i := 0
	for i < len(ln.text) && ln.text[i] == ' ' {
		i++
	}
	return i
}

// contentToks returns the line's tokens with a leading all-space Text token
// skipped. Only spaces count as skippable indentation; a tab in the prefix
// keeps the Text token in place, so the line cannot open a block construct
// and indent() stays aligned with the first content token.
func (ln logicalLine) contentToks() []mdast.Token {
	if len(ln.toks) > 0 && ln.toks[0].Kind == mdast.TokText && allSpaces(ln.toks[0].Text) {
		return ln.toks[1:]
	}
	return ln.toks
}

// allSpaces reports whether s consists only of space characters.
func allSpaces(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			return false
		}
	}
	return true
}

// splitLines groups a token stream into logical lines.
func splitLines(tokens []mdast.Token) []logicalLine {
	var lines []logicalLine
	var current []mdast.Token

	flush := func() {
		if len(current) == 0 {
			return
		}
		var sb strings.Builder
		blank := false
		for _, tok := range current {
			sb.WriteString(tok.Text)
			if tok.Kind == mdast.TokBlankLine {
				blank = true
			}
		}
		lines = append(lines, logicalLine{toks: current, text: sb.String(), blank: blank})
		current = nil
	}

	for _, tok := range tokens {
		if tok.IsLineEnd() {
			if tok.Kind == mdast.TokEOF && len(current) == 0 {
				break
			}
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()

	return lines
}

// blockParser groups logical lines into a block tree. Leaf blocks that carry
// inline content (headings, paragraphs) keep their raw text in Literal for
// the inline phase.
type blockParser struct {
	lines []logicalLine
	pos   int
}

// ParseBlocks consumes a token stream and produces a Document block tree.
// It is total: malformed input degrades to paragraph text rather than
// failing. The returned tree still holds un-parsed inline text on its
// leaves; ResolveInlines completes it into the final AST.
func ParseBlocks(tokens []mdast.Token) *mdast.Node {
	p := &blockParser{lines: splitLines(tokens)}

	doc := mdast.NewDocument()
	for p.pos < len(p.lines) {
		if block := p.parseBlock(); block != nil {
			mdast.AppendChild(doc, block)
		}
	}

	return doc
}

// parseFragment re-lexes and block-parses a text fragment, used for the
// recursive content of blockquotes and list items.
func parseFragment(text string) []*mdast.Node {
	return ParseBlocks(Tokenize(text)).Children
}

// parseBlock classifies the current line and parses one block.
// Block-start rules are tried in fixed priority order; the first match wins.
func (p *blockParser) parseBlock() *mdast.Node {
	ln := p.lines[p.pos]

	if ln.blank {
		p.pos++
		return nil
	}

	if ln.indent() >= indentedCodeWidth {
		return p.parseIndentedCode()
	}
	if level, raw, ok := headingLine(ln); ok {
		p.pos++
		heading := mdast.NewHeading(level)
		heading.Literal = raw
		return heading
	}
	if fenceChar, fenceLen, info, ok := fenceOpenLine(ln); ok {
		return p.parseFencedCode(fenceChar, fenceLen, info)
	}
	if quoteLine(ln) {
		return p.parseBlockquote()
	}
	if thematicBreakLine(ln) {
		p.pos++
		return mdast.NewThematicBreak()
	}
	if marker, ok := listMarkerLine(ln); ok {
		return p.parseList(marker)
	}

	return p.parseParagraph()
}

// headingLine matches an ATX heading: a hash run of length 1-6 followed by
// whitespace. Longer runs degrade to paragraph text.
func headingLine(ln logicalLine) (level int, raw string, ok bool) {
	toks := ln.contentToks()
	if len(toks) == 0 || toks[0].Kind != mdast.TokHash {
		return 0, "", false
	}
	level = toks[0].Count
	if level > 6 {
		return 0, "", false
	}

	rest := ln.text[ln.indent()+level:]
	if rest == "" {
		return level, "", true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}

	return level, strings.TrimSpace(rest), true
}

// fenceOpenLine matches an opening code fence: three or more backticks or
// tildes, optionally followed by an info string.
func fenceOpenLine(ln logicalLine) (fenceChar byte, fenceLen int, info string, ok bool) {
	toks := ln.contentToks()
	if len(toks) == 0 {
		return 0, 0, "", false
	}
	tok := toks[0]
	if (tok.Kind != mdast.TokBacktick && tok.Kind != mdast.TokTilde) || tok.Count < 3 {
		return 0, 0, "", false
	}

	info = strings.TrimSpace(ln.text[ln.indent()+tok.Count:])
	return tok.Text[0], tok.Count, info, true
}

// fenceCloseLine matches a closing fence of the same character with a run
// length equal to or greater than the opening fence.
func fenceCloseLine(ln logicalLine, fenceChar byte, fenceLen int) bool {
	toks := ln.contentToks()
	if len(toks) == 0 || ln.indent() > blockIndentLimit {
		return false
	}
	tok := toks[0]
	if (tok.Kind != mdast.TokBacktick && tok.Kind != mdast.TokTilde) ||
		tok.Text[0] != fenceChar || tok.Count < fenceLen {
		return false
	}

	rest := toks[1:]
	return len(rest) == 0 || (len(rest) == 1 && rest[0].Kind == mdast.TokText && isBlank(rest[0].Text))
}

// parseFencedCode copies lines verbatim until a matching closing fence or
// end of input (an unterminated fence closes implicitly).
func (p *blockParser) parseFencedCode(fenceChar byte, fenceLen int, info string) *mdast.Node {
	p.pos++ // opening fence

	var body []string
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if fenceCloseLine(ln, fenceChar, fenceLen) {
			p.pos++
			break
		}
		body = append(body, ln.text)
		p.pos++
	}

	attrs := &mdast.CodeBlockAttrs{
		FenceChar:   fenceChar,
		FenceLength: fenceLen,
		Info:        info,
	}
	return mdast.NewCodeBlock(attrs, strings.Join(body, "\n"))
}

// parseIndentedCode collects consecutive lines indented by at least four
// spaces. Interior blank lines are kept; trailing blanks are dropped.
func (p *blockParser) parseIndentedCode() *mdast.Node {
	var body []string
	pendingBlanks := 0

	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.blank {
			pendingBlanks++
			p.pos++
			continue
		}
		if ln.indent() < indentedCodeWidth {
			break
		}
		for ; pendingBlanks > 0; pendingBlanks-- {
			body = append(body, "")
		}
		body = append(body, stripIndent(ln.text, indentedCodeWidth))
		p.pos++
	}

	attrs := &mdast.CodeBlockAttrs{Indented: true}
	return mdast.NewCodeBlock(attrs, strings.Join(body, "\n"))
}

// quoteLine matches a blockquote marker at line start.
func quoteLine(ln logicalLine) bool {
	toks := ln.contentToks()
	return len(toks) > 0 && toks[0].Kind == mdast.TokGreaterThan && ln.indent() <= blockIndentLimit
}

// parseBlockquote collects consecutive quote lines, strips one level of
// markers, and recursively block-parses the remaining text. Nested quotes
// resolve through the recursion.
func (p *blockParser) parseBlockquote() *mdast.Node {
	var inner []string
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if !quoteLine(ln) {
			break
		}
		inner = append(inner, stripQuoteMarker(ln.text))
		p.pos++
	}

	quote := mdast.NewBlockquote()
	mdast.AppendChild(quote, parseFragment(strings.Join(inner, "\n"))...)
	return quote
}

// stripQuoteMarker removes the leading '>' and one optional following space.
func stripQuoteMarker(text string) string {
	idx := strings.IndexByte(text, '>')
	rest := text[idx+1:]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest
}

// thematicBreakLine matches a line of three or more identical '-', '*' or
// '_' characters, optionally space-separated.
func thematicBreakLine(ln logicalLine) bool {
	var marker byte
	count := 0
	for i := 0; i < len(ln.text); i++ {
		ch := ln.text[i]
		if ch == ' ' || ch == '\t' {
			continue
		}
		if ch != '-' && ch != '*' && ch != '_' {
			return false
		}
		if marker == 0 {
			marker = ch
		} else if ch != marker {
			return false
		}
		count++
	}
	return count >= 3
}

// listMarker describes a recognized list-item marker line.
type listMarker struct {
	ordered bool
	bullet  string // "-", "+", "*" for unordered lists
	delim   string // "." or ")" for ordered lists
	start   int    // numeric value of the first ordered marker
	indent  int    // leading spaces before the marker
	width   int    // marker width in bytes
	content string // first-line content after the marker
}

// contentCol returns the column at which item content begins; continuation
// lines must be indented to at least this column.
func (m listMarker) contentCol() int {
	return m.indent + m.width + 1
}

// compatible reports whether a later marker continues the same list.
func (m listMarker) compatible(other listMarker) bool {
	if m.ordered != other.ordered {
		return false
	}
	if m.ordered {
		return m.delim == other.delim
	}
	return m.bullet == other.bullet
}

// listMarkerLine matches an unordered bullet ('-', '+', '*' followed by
// whitespace) or an ordered marker (digits plus '.' or ')' followed by
// whitespace). A bare marker with no content is an empty item.
func listMarkerLine(ln logicalLine) (listMarker, bool) {
	toks := ln.contentToks()
	if len(toks) == 0 || ln.indent() > blockIndentLimit {
		return listMarker{}, false
	}

	tok := toks[0]
	marker := listMarker{indent: ln.indent(), width: len(tok.Text)}

	switch tok.Kind {
	case mdast.TokDash, mdast.TokPlus:
		marker.bullet = tok.Text
	case mdast.TokStar:
		if tok.Count != 1 {
			return listMarker{}, false
		}
		marker.bullet = tok.Text
	case mdast.TokOrderedMarker:
		marker.ordered = true
		marker.start = tok.Count
		marker.delim = tok.Text[len(tok.Text)-1:]
	default:
		return listMarker{}, false
	}

	rest := ln.text[marker.indent+marker.width:]
	switch {
	case rest == "":
		marker.content = ""
	case rest[0] == ' ' || rest[0] == '\t':
		marker.content = rest[1:]
	default:
		return listMarker{}, false
	}

	return marker, true
}

// parseList groups consecutive compatible marker lines into one List node.
// A blank line followed by content indented to the item's content column is
// a lazy continuation of the item; lesser indentation ends the list.
func (p *blockParser) parseList(first listMarker) *mdast.Node {
	attrs := &mdast.ListAttrs{
		Ordered:      first.ordered,
		BulletMarker: first.bullet,
		Start:        first.start,
		Delimiter:    first.delim,
		Tight:        true,
	}

	list := mdast.NewList(attrs)
	marker := first
	p.pos++

	itemLines := []string{marker.content}
	flushItem := func() {
		item := mdast.NewListItem()
		mdast.AppendChild(item, parseFragment(strings.Join(itemLines, "\n"))...)
		mdast.AppendChild(list, item)
	}

	pendingBlank := false
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]

		if ln.blank {
			pendingBlank = true
			p.pos++
			continue
		}

		// Indented content binds to the open item even when it looks like a
		// marker line; that is how nested lists come about.
		if ln.indent() >= marker.contentCol() {
			if pendingBlank {
				attrs.Tight = false
				pendingBlank = false
				itemLines = append(itemLines, "")
			}
			itemLines = append(itemLines, stripIndent(ln.text, marker.contentCol()))
			p.pos++
			continue
		}

		if next, ok := listMarkerLine(ln); ok && marker.compatible(next) {
			if pendingBlank {
				attrs.Tight = false
				pendingBlank = false
			}
			flushItem()
			marker = next
			itemLines = []string{marker.content}
			p.pos++
			continue
		}

		break
	}

	flushItem()
	return list
}

// parseParagraph accumulates consecutive non-blank lines that start no other
// block, joined with newlines so the inline phase can resolve soft and hard
// line breaks.
func (p *blockParser) parseParagraph() *mdast.Node {
	var raw []string

	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.blank {
			break
		}
		if len(raw) > 0 && startsBlock(ln) {
			break
		}
		// Trailing spaces are preserved for hard-break detection.
		raw = append(raw, strings.TrimLeft(ln.text, " \t"))
		p.pos++
	}

	para := mdast.NewParagraph()
	para.Literal = strings.TrimRight(strings.Join(raw, "\n"), " \t")
	return para
}

// startsBlock reports whether a line interrupts an open paragraph.
// Indented lines do not: they lazily continue the paragraph.
func startsBlock(ln logicalLine) bool {
	if ln.indent() >= indentedCodeWidth {
		return false
	}
	if _, _, ok := headingLine(ln); ok {
		return true
	}
	if _, _, _, ok := fenceOpenLine(ln); ok {
		return true
	}
	if quoteLine(ln) || thematicBreakLine(ln) {
		return true
	}
	if _, ok := listMarkerLine(ln); ok {
		return true
	}
	return false
}

// stripIndent removes up to n leading spaces.
func stripIndent(s string, n int) string {
	i := 0
	for i < len(s) && i < n && s[i] == ' ' {
		i++
	}
	return s[i:]
}
