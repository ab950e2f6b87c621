package ports

import "github.com/bnema/instagram-query-cli/internal/domain"

// ResultSink persists a Result's textual or structured form and returns the
// path written.
type ResultSink interface {
	WriteText(result domain.Result) (string, error)
	WriteJSON(result domain.Result) (string, error)
}
