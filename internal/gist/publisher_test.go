package gist

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T, handler http.Handler) *Publisher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := github.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return New(client, "abc123")
}

func TestPublishOverwritesFirstFileOnly(t *testing.T) {
	var patched []byte

	mux := http.NewServeMux()
	mux.HandleFunc("/gists/abc123", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{
				"id": "abc123",
				"files": {
					"zzz.md": {"filename": "zzz.md", "content": "old"},
					"aaa.md": {"filename": "aaa.md", "content": "old"}
				}
			}`))
		case http.MethodPatch:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			patched = body
			w.Write([]byte(`{"id": "abc123"}`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})

	pub := newTestPublisher(t, mux)
	require.NoError(t, pub.Publish(context.Background(), "I'm a night 🦉", "report body"))

	var update struct {
		Files map[string]struct {
			Filename string `json:"filename"`
			Content  string `json:"content"`
		} `json:"files"`
	}
	require.NoError(t, sonic.Unmarshal(patched, &update))

	require.Len(t, update.Files, 1, "only one file may be touched")
	file, ok := update.Files["aaa.md"]
	require.True(t, ok, "the lexicographically first file is the report target")
	assert.Equal(t, "I'm a night 🦉", file.Filename)
	assert.Equal(t, "report body", file.Content)
}

func TestPublishNoFiles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gists/abc123", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method, "an empty gist must never be patched")
		w.Write([]byte(`{"id": "abc123", "files": {}}`))
	})

	pub := newTestPublisher(t, mux)
	err := pub.Publish(context.Background(), "title", "body")
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestPublishGistFetchFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gists/abc123", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	pub := newTestPublisher(t, mux)
	err := pub.Publish(context.Background(), "title", "body")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPublishUpdateFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gists/abc123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"id": "abc123", "files": {"a.md": {"filename": "a.md"}}}`))
			return
		}
		http.Error(w, "validation failed", http.StatusUnprocessableEntity)
	})

	pub := newTestPublisher(t, mux)
	err := pub.Publish(context.Background(), "title", "body")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNoFiles)
}
