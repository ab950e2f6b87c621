package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bnema/instagram-query-cli/internal/adapters/graph"
	resultadapter "github.com/bnema/instagram-query-cli/internal/adapters/render/result"
	tomlrepo "github.com/bnema/instagram-query-cli/internal/adapters/repo/toml"
	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/bnema/instagram-query-cli/internal/ports"
	"github.com/bnema/instagram-query-cli/internal/shell"
	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "https://graph.instagram.com"
	baseURLKey     = "api.base_url"
)

type app struct {
	sessions     ports.SessionRepository
	graph        ports.GraphClient
	clock        ports.Clock
	baseURL      string
	renderResult func(domain.Result) (string, error)
	renderHelp   func([]*shell.Command) string
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault(baseURLKey, defaultBaseURL)

	// NewRepository reads config.toml into cfg, so api.base_url is
	// available afterwards. The environment still wins over the file.
	sessions, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	return &app{
		sessions: sessions,
		graph:    graph.NewClient(http.DefaultClient),
		clock:    ports.SystemClock{},
		baseURL:  envOrDefault("IGQ_API_BASE_URL", cfg.GetString(baseURLKey)),
		renderResult: func(res domain.Result) (string, error) {
			return resultadapter.Render(res, resultadapter.RenderOptions{ShowHeader: true})
		},
		renderHelp: renderHelpTable,
	}, nil
}

func renderHelpTable(commands []*shell.Command) string {
	entries := make([]resultadapter.HelpEntry, 0, len(commands))
	for _, command := range commands {
		entries = append(entries, resultadapter.HelpEntry{
			Name:    command.Name,
			Aliases: command.Aliases,
			Summary: command.Summary,
			Remote:  command.IsRemote(),
		})
	}

	return resultadapter.RenderHelp(entries)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
