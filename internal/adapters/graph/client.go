package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/bnema/instagram-query-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

var ErrTokenRejected = errors.New("access token rejected")

// Client issues one HTTP GET per query against a Graph-style REST API. The
// credential travels as the access_token query parameter; responses are
// decoded as JSON without schema validation.
type Client struct {
	http *http.Client
}

var _ ports.GraphClient = (*Client)(nil)

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{http: httpClient}
}

func (c *Client) Fetch(ctx context.Context, session domain.Session, query domain.Query) (domain.Result, error) {
	endpoint := strings.TrimRight(session.BaseURL, "/") + "/" + url.PathEscape(session.Account)
	if query.Edge != "" {
		endpoint += "/" + url.PathEscape(query.Edge)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Result{}, fmt.Errorf("create request: %w", err)
	}

	params := request.URL.Query()
	if query.Fields != "" {
		params.Set("fields", query.Fields)
	}
	params.Set("access_token", session.Token)
	request.URL.RawQuery = params.Encode()
	request.Header.Set("User-Agent", "igq/query")

	response, err := c.http.Do(request)
	if err != nil {
		return domain.Result{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return domain.Result{}, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
			return domain.Result{}, fmt.Errorf("%w: status %d: %s", ErrTokenRejected, response.StatusCode, strings.TrimSpace(string(body)))
		}
		return domain.Result{}, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.Result{}, fmt.Errorf("decode response: %w", err)
	}

	return domain.Result{
		Account: session.Account,
		Command: query.Name,
		Doc:     doc,
	}, nil
}
