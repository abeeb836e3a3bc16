// Package plaintext tokenizes plain-text renderings of carrier
// invoices. Pages are separated by form feed characters, the layout
// produced by most PDF-to-text converters. Token bounding boxes are
// synthesized from line and column positions so that downstream
// consumers expecting coordinates keep working.
package plaintext

import (
	"context"
	"fmt"
	"io"
	"strings"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

const lineHeight = 12

// Tokenizer implements port.PageTokenizer for plain text input.
type Tokenizer struct{}

func New() *Tokenizer {
	return &Tokenizer{}
}

var _ port.PageTokenizer = (*Tokenizer)(nil)

// Tokenize reads the whole stream and splits it into form-feed
// separated pages. Page numbers are one-based and include empty pages
// so that numbering matches the source document.
func (t *Tokenizer) Tokenize(ctx context.Context, r io.Reader) ([]domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("plaintext.Tokenizer: read: %w", err)
	}

	raw := strings.Split(string(data), "\f")
	pages := make([]domain.Page, 0, len(raw))
	for i, pageText := range raw {
		pages = append(pages, domain.Page{
			Number: i + 1,
			Text:   pageText,
			Tokens: tokenizePage(pageText),
		})
	}
	return pages, nil
}

func tokenizePage(text string) []domain.Token {
	var tokens []domain.Token
	for lineNo, line := range strings.Split(text, "\n") {
		col := 0
		for {
			rest := line[col:]
			trimmed := strings.TrimLeft(rest, " \t")
			if trimmed == "" {
				break
			}
			start := col + len(rest) - len(trimmed)
			end := start + wordLen(line[start:])
			tokens = append(tokens, domain.Token{
				Text: line[start:end],
				Box:  [4]int{start, lineNo * lineHeight, end, (lineNo + 1) * lineHeight},
			})
			col = end
		}
	}
	return tokens
}

func wordLen(s string) int {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return i
	}
	return len(s)
}
