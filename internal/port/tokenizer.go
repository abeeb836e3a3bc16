package port

import (
	"context"
	"io"

	"shipmatrix/internal/domain"
)

// PageTokenizer turns an uploaded document stream into ordered pages of
// tokens. Implementations decide what a "page" is for their format; the
// extraction core only consumes the flattened page text and the page
// order.
type PageTokenizer interface {
	Tokenize(ctx context.Context, r io.Reader) ([]domain.Page, error)
}
