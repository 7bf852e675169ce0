package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "devconnect/internal/errors"
)

func TestClient_UserRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/ann/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"devconnect","description":"networking app","html_url":"https://github.com/ann/devconnect","stargazers_count":3,"watchers_count":3,"forks_count":1}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	repos, err := client.UserRepos(context.Background(), "ann")

	assert.NoError(t, err)
	assert.Len(t, repos, 1)
	assert.Equal(t, "devconnect", repos[0].Name)
	assert.Equal(t, 3, repos[0].Stars)
}

func TestClient_UserReposUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	repos, err := client.UserRepos(context.Background(), "nobody")

	assert.ErrorIs(t, err, apperrors.ErrNoGithubProfile)
	assert.Nil(t, repos)
}

func TestClient_UserReposProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "", nil)
	repos, err := client.UserRepos(context.Background(), "ann")

	assert.ErrorIs(t, err, apperrors.ErrNoGithubProfile)
	assert.Nil(t, repos)
}

func TestClient_SendsAuthorizationWhenTokenSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "gh-token", nil)
	_, err := client.UserRepos(context.Background(), "ann")
	assert.NoError(t, err)
}
