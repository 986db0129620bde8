package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Text", mdast.TokText.String())
	assert.Equal(t, "Hash", mdast.TokHash.String())
	assert.Equal(t, "EOF", mdast.TokEOF.String())
	assert.NotEmpty(t, mdast.TokenKind(9999).String())
}

func TestTokenHelpers(t *testing.T) {
	t.Parallel()

	tok := mdast.Token{Kind: mdast.TokText, Text: "abc"}
	assert.Equal(t, 3, tok.Len())
	assert.False(t, tok.IsEmpty())
	assert.False(t, tok.IsLineEnd())

	eof := mdast.Token{Kind: mdast.TokEOF}
	assert.True(t, eof.IsEmpty())
	assert.True(t, eof.IsLineEnd())

	nl := mdast.Token{Kind: mdast.TokNewline, Text: "\n"}
	assert.True(t, nl.IsLineEnd())
}

func TestValidateTokens(t *testing.T) {
	t.Parallel()

	t.Run("valid contiguous stream", func(t *testing.T) {
		t.Parallel()

		tokens := []mdast.Token{
			{Kind: mdast.TokText, Text: "ab", Offset: 0},
			{Kind: mdast.TokStar, Text: "*", Offset: 2},
			{Kind: mdast.TokEOF, Offset: 3},
		}
		assert.True(t, mdast.ValidateTokens(tokens, "ab*"))
	})

	t.Run("gap in offsets", func(t *testing.T) {
		t.Parallel()

		tokens := []mdast.Token{
			{Kind: mdast.TokText, Text: "ab", Offset: 0},
			{Kind: mdast.TokEOF, Offset: 3},
		}
		assert.False(t, mdast.ValidateTokens(tokens, "ab*"))
	})

	t.Run("text mismatch", func(t *testing.T) {
		t.Parallel()

		tokens := []mdast.Token{
			{Kind: mdast.TokText, Text: "xy", Offset: 0},
			{Kind: mdast.TokEOF, Offset: 2},
		}
		assert.False(t, mdast.ValidateTokens(tokens, "ab"))
	})

	t.Run("missing terminal EOF", func(t *testing.T) {
		t.Parallel()

		tokens := []mdast.Token{
			{Kind: mdast.TokText, Text: "ab", Offset: 0},
		}
		assert.False(t, mdast.ValidateTokens(tokens, "ab"))
	})

	t.Run("incomplete coverage", func(t *testing.T) {
		t.Parallel()

		tokens := []mdast.Token{
			{Kind: mdast.TokText, Text: "ab", Offset: 0},
			{Kind: mdast.TokEOF, Offset: 2},
		}
		assert.False(t, mdast.ValidateTokens(tokens, "abc"))
	})

	t.Run("empty stream requires empty source", func(t *testing.T) {
		t.Parallel()

		assert.True(t, mdast.ValidateTokens(nil, ""))
		assert.False(t, mdast.ValidateTokens(nil, "x"))
	})
}
