package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/bnema/instagram-query-cli/internal/ports"
)

// Service orchestrates the remote side of a dispatch cycle: credential
// resolution against stored sessions, query execution, and the persistence
// policy applied to each Result.
type Service struct {
	graph    ports.GraphClient
	sessions ports.SessionRepository
	sink     ports.ResultSink
	clock    ports.Clock
}

func NewService(graph ports.GraphClient, sessions ports.SessionRepository, sink ports.ResultSink, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		graph:    graph,
		sessions: sessions,
		sink:     sink,
		clock:    clock,
	}
}

// ResolveCredential returns the token to query with. A non-empty credential
// wins and is stored for later runs; an empty one falls back to the stored
// session for the account.
func (s *Service) ResolveCredential(ctx context.Context, account, credential string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential != "" {
		stored := domain.StoredSession{
			Account: account,
			Token:   credential,
			SavedAt: s.clock.Now(),
		}
		if err := s.sessions.Save(ctx, stored); err != nil {
			return "", fmt.Errorf("store session: %w", err)
		}

		return credential, nil
	}

	stored, err := s.sessions.GetByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return "", fmt.Errorf("%w for account %q: pass the token positional or see `igq sessions`", domain.ErrMissingCredential, account)
		}
		return "", fmt.Errorf("load stored session: %w", err)
	}

	return stored.Token, nil
}

func (s *Service) ListSessions(ctx context.Context) ([]domain.StoredSession, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored sessions: %w", err)
	}

	return sessions, nil
}

func (s *Service) ClearSessions(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored sessions: %w", err)
	}

	return nil
}

// Query issues exactly one GET for the given remote command.
func (s *Service) Query(ctx context.Context, session domain.Session, query domain.Query) (domain.Result, error) {
	result, err := s.graph.Fetch(ctx, session, query)
	if err != nil {
		return domain.Result{}, fmt.Errorf("fetch %s for %s: %w", query.Name, session.Account, err)
	}

	return result, nil
}

// Persist applies the session's output toggles to a Result and returns the
// paths written. Both forms may be written independently for the same Result.
func (s *Service) Persist(session domain.Session, result domain.Result) ([]string, error) {
	paths := make([]string, 0, 2)

	if session.SaveText {
		path, err := s.sink.WriteText(result)
		if err != nil {
			return paths, fmt.Errorf("persist text result: %w", err)
		}
		paths = append(paths, path)
	}

	if session.SaveJSON {
		path, err := s.sink.WriteJSON(result)
		if err != nil {
			return paths, fmt.Errorf("persist json result: %w", err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
