package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	sessionsPath := filepath.Join(t.TempDir(), "sessions.toml")
	config := viper.New()
	config.Set("sessions.path", sessionsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo, sessionsPath
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	savedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	first := domain.StoredSession{Account: "alice", Token: "TOK-1", SavedAt: savedAt}
	second := domain.StoredSession{Account: "bob", Token: "TOK-2", SavedAt: savedAt}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.StoredSession{first, second}, sessions)
}

func TestRepositorySaveReplacesExistingAccountEntry(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.StoredSession{Account: "alice", Token: "old"}))
	require.NoError(t, repo.Save(context.Background(), domain.StoredSession{Account: "alice", Token: "new"}))

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "new", sessions[0].Token)
}

func TestRepositoryGetMissingAccountReturnsSentinel(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	_, err := repo.GetByAccount(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepositoryClearRemovesSessionsFile(t *testing.T) {
	t.Parallel()

	repo, sessionsPath := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.StoredSession{Account: "alice", Token: "TOK"}))
	require.FileExists(t, sessionsPath)

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoFileExists(t, sessionsPath)

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRepositoryClearIsIdempotent(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))
}

func TestRepositoryWritesRestrictedFileMode(t *testing.T) {
	t.Parallel()

	repo, sessionsPath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.StoredSession{Account: "alice", Token: "TOK"}))

	info, err := os.Stat(sessionsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, sessionsPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(sessionsPath, []byte("version = 99\n"), 0o600))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sessions schema version")
}

func TestRepositoryHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, repo.Save(ctx, domain.StoredSession{Account: "alice"}))
	_, err := repo.List(ctx)
	require.Error(t, err)
}
