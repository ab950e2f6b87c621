package ports

import (
	"context"

	"github.com/bnema/instagram-query-cli/internal/domain"
)

type GraphClient interface {
	Fetch(ctx context.Context, session domain.Session, query domain.Query) (domain.Result, error)
}
