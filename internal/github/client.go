// Package github fetches public repository listings. It is a best-effort
// enrichment: failures degrade to a not-found answer and never affect the
// rest of the profile pipeline.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/cache"
	apperrors "devconnect/internal/errors"
)

const (
	requestTimeout = 5 * time.Second
	cacheTTL       = 10 * time.Minute
	cacheKeyPrefix = "github:repos:"
)

// Repo is one repository as exposed to clients.
type Repo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

// Client talks to the GitHub API with a bounded per-request timeout.
type Client struct {
	http    *http.Client
	cache   *cache.Client
	baseURL string
	token   string
}

// NewClient creates a client. cache may be nil; lookups then always hit the API.
func NewClient(baseURL, token string, cacheClient *cache.Client) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		cache:   cacheClient,
		baseURL: baseURL,
		token:   token,
	}
}

// UserRepos returns the five most recently created public repositories of a
// user. Results are cached; a cache outage behaves like a miss.
func (c *Client) UserRepos(ctx context.Context, username string) ([]Repo, error) {
	key := cacheKeyPrefix + username
	if data, _ := c.cache.Get(ctx, key); data != nil {
		var repos []Repo
		if err := json.Unmarshal(data, &repos); err == nil {
			return repos, nil
		}
	}

	u := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnect")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.ErrNoGithubProfile
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrNoGithubProfile
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, apperrors.ErrNoGithubProfile
	}

	if payload, err := json.Marshal(repos); err == nil {
		_ = c.cache.Set(ctx, key, payload, cacheTTL)
	}

	return repos, nil
}
