package ports

import (
	"context"

	"github.com/bnema/instagram-query-cli/internal/domain"
)

type SessionRepository interface {
	GetByAccount(ctx context.Context, account string) (domain.StoredSession, error)
	List(ctx context.Context) ([]domain.StoredSession, error)
	Save(ctx context.Context, session domain.StoredSession) error
	Clear(ctx context.Context) error
}
