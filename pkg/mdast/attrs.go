package mdast

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// CodeBlock holds code block attributes for NodeCodeBlock.
	CodeBlock *CodeBlockAttrs
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// BulletMarker is the bullet character used ("-", "+", "*").
	// Empty for ordered lists.
	BulletMarker string

	// Start is the starting number for ordered lists, taken from the
	// first item's marker. Subsequent item numbers are ignored.
	Start int

	// Delimiter is the delimiter for ordered lists ("." or ")").
	Delimiter string

	// Tight is true if no blank lines separate the items.
	Tight bool
}

// CodeBlockAttrs holds attributes for code block nodes.
type CodeBlockAttrs struct {
	// FenceChar is the fence character ('`' or '~'). Zero for indented blocks.
	FenceChar byte

	// FenceLength is the number of fence characters in the opening fence.
	FenceLength int

	// Info is the info string following the opening fence (language identifier).
	Info string

	// Indented is true for indented code blocks (vs fenced).
	Indented bool
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Link holds link attributes for NodeLink and NodeImage.
	Link *LinkAttrs

	// HardBreak is true for NodeLineBreak nodes produced by two or more
	// trailing spaces before a newline. Soft breaks are collapsed to a
	// single space by the inline parser and never become nodes.
	HardBreak bool
}

// LinkAttrs holds attributes for link and image nodes.
type LinkAttrs struct {
	// Destination is the link URL or image source.
	Destination string

	// Title is the optional title from `[text](url "title")`.
	Title string
}
