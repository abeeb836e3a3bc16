package plaintext_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/tokenizer/plaintext"
)

func TestTokenize_SplitsPagesOnFormFeed(t *testing.T) {
	tok := plaintext.New()
	in := strings.NewReader("page one text\fpage two text\fpage three")

	pages, err := tok.Tokenize(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "page one text", pages[0].Text)
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, 3, pages[2].Number)
}

func TestTokenize_EmptyPagesKeepNumbering(t *testing.T) {
	tok := plaintext.New()
	in := strings.NewReader("first\f\fthird")

	pages, err := tok.Tokenize(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Empty(t, pages[1].Text)
	assert.Empty(t, pages[1].Tokens)
	assert.Equal(t, "third", pages[2].Text)
}

func TestTokenize_SingleNoFormFeed(t *testing.T) {
	tok := plaintext.New()

	pages, err := tok.Tokenize(context.Background(), strings.NewReader("only page"))
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
}

func TestTokenize_TokenBoxes(t *testing.T) {
	tok := plaintext.New()

	pages, err := tok.Tokenize(context.Background(), strings.NewReader("ab  cd\nef"))
	require.NoError(t, err)
	require.Len(t, pages, 1)

	tokens := pages[0].Tokens
	require.Len(t, tokens, 3)

	assert.Equal(t, "ab", tokens[0].Text)
	assert.Equal(t, [4]int{0, 0, 2, 12}, tokens[0].Box)

	assert.Equal(t, "cd", tokens[1].Text)
	assert.Equal(t, [4]int{4, 0, 6, 12}, tokens[1].Box)

	assert.Equal(t, "ef", tokens[2].Text)
	assert.Equal(t, [4]int{0, 12, 2, 24}, tokens[2].Box)
}

func TestTokenize_CanceledContext(t *testing.T) {
	tok := plaintext.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tok.Tokenize(ctx, strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
