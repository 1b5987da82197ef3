package gh

import (
	"context"
	"encoding/json"
	"iter"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/alertsnap/pkg/domain/interfaces"
	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL  = "https://api.github.com/"
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 100

	userAgent = "alertsnap"
)

// Client reads organization repositories and code scanning alerts with a
// static token.
type Client struct {
	client   *github.Client
	pageSize int
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	timeout   time.Duration
	pageSize  int
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL sets the REST API root, e.g. https://ghe.example.com/api/v3/ for
// GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout of every HTTP request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithPageSize(size int) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// WithTransport replaces the underlying round tripper. The token transport
// is always layered on top of it.
func WithTransport(tr http.RoundTripper) Option {
	return func(c *config) {
		c.transport = tr
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	cfg := &config{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		pageSize:  DefaultPageSize,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.timeout <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", cfg.timeout))
	}
	if cfg.pageSize <= 0 || cfg.pageSize > 100 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "page size must be between 1 and 100", goerr.V("pageSize", cfg.pageSize))
	}

	baseURL, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid API URL", goerr.V("url", cfg.baseURL), goerr.V("error", err.Error()))
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "API URL must be absolute", goerr.V("url", cfg.baseURL))
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	httpClient := &http.Client{
		Timeout: cfg.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   cfg.transport,
		},
	}

	client := github.NewClient(httpClient)
	client.BaseURL = baseURL
	client.UserAgent = userAgent

	return &Client{
		client:   client,
		pageSize: cfg.pageSize,
	}, nil
}

// cursor points at a page. GitHub uses page numbers for most listings and an
// "after" token for some cursor-paginated ones; the Link header tells which.
type cursor struct {
	page  int
	after string
}

func (c cursor) apply(q url.Values) {
	if c.page > 0 {
		q.Set("page", strconv.Itoa(c.page))
	}
	if c.after != "" {
		q.Set("after", c.after)
	}
}

func nextCursor(resp *github.Response) (cursor, bool) {
	switch {
	case resp.NextPage != 0:
		return cursor{page: resp.NextPage}, true
	case resp.After != "":
		return cursor{after: resp.After}, true
	default:
		return cursor{}, false
	}
}

// Paginate walks a listing endpoint such as "orgs/acme/repos" and yields its
// items one at a time. No request is sent until the sequence is iterated,
// and each iteration starts again from the first page. Every request asks
// for the configured page size. The walk follows the rel="next" link and
// stops at a page without one or at an empty page. A failed request yields
// one error and ends the sequence; items of that page are not yielded.
func (x *Client) Paginate(ctx context.Context, path string, query url.Values) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		cur := cursor{}
		for pageNum := 1; ; pageNum++ {
			items, resp, err := x.fetchPage(ctx, path, query, cur)
			if err != nil {
				yield(nil, goerr.Wrap(err, "failed to fetch page",
					goerr.V("path", path),
					goerr.V("page", pageNum),
				))
				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			if len(items) == 0 {
				return
			}
			next, ok := nextCursor(resp)
			if !ok || next == cur {
				return
			}
			cur = next
		}
	}
}

func (x *Client) fetchPage(ctx context.Context, path string, query url.Values, cur cursor) ([]json.RawMessage, *github.Response, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("per_page", strconv.Itoa(x.pageSize))
	cur.apply(q)

	req, err := x.client.NewRequest(http.MethodGet, path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to build request")
	}

	var items []json.RawMessage
	resp, err := x.client.Do(ctx, req, &items)
	if err != nil {
		return nil, nil, err
	}

	logging.From(ctx).Debug("Fetched page",
		slog.String("path", path),
		slog.Int("items", len(items)),
		slog.Int("next", resp.NextPage),
	)

	return items, resp, nil
}

// ListOrgRepos lists every repository of org, archived ones included.
func (x *Client) ListOrgRepos(ctx context.Context, org types.OrgName) iter.Seq2[*model.Repository, error] {
	path := "orgs/" + url.PathEscape(org.String()) + "/repos"
	return decodeEach(x.Paginate(ctx, path, nil), decodeRepository)
}

// ListOpenAlerts lists open code scanning alerts of repo.
func (x *Client) ListOpenAlerts(ctx context.Context, repo *model.Repository) iter.Seq2[*model.Alert, error] {
	owner, name, _ := strings.Cut(repo.FullName, "/")
	path := "repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name) + "/code-scanning/alerts"
	query := url.Values{"state": []string{"open"}}

	return decodeEach(x.Paginate(ctx, path, query), model.NewAlert)
}

func decodeRepository(raw []byte) (*model.Repository, error) {
	var repo model.Repository
	if err := json.Unmarshal(raw, &repo); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "failed to decode repository", goerr.V("error", err.Error()))
	}
	if repo.FullName == "" {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "repository has no full_name", goerr.V("name", repo.Name))
	}
	return &repo, nil
}

func decodeEach[T any](seq iter.Seq2[json.RawMessage, error], decode func([]byte) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for raw, err := range seq {
			if err != nil {
				yield(zero, err)
				return
			}

			v, err := decode(raw)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
