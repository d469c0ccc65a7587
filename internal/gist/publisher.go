package gist

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

var (
	// ErrNoFiles means the target gist exists but holds no files to overwrite.
	ErrNoFiles = errors.New("no gist files found")
	// ErrUnavailable wraps failures to read the target gist.
	ErrUnavailable = errors.New("failed to get gist")
)

// NewClient builds an authenticated REST client for the gist API.
func NewClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// Publisher overwrites the first file of a fixed gist with the report.
type Publisher struct {
	client *github.Client
	id     string
}

func New(client *github.Client, id string) *Publisher {
	return &Publisher{client: client, id: id}
}

// Publish renames the gist's first file to title and replaces its content
// with body. Only that one file is touched; the rest are left as-is.
func (p *Publisher) Publish(ctx context.Context, title, body string) error {
	g, _, err := p.client.Gists.Get(ctx, p.id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(g.Files) == 0 {
		return ErrNoFiles
	}

	// Map iteration order is random; sort so "first file" is stable.
	names := make([]string, 0, len(g.Files))
	for name := range g.Files {
		names = append(names, string(name))
	}
	sort.Strings(names)
	first := github.GistFilename(names[0])

	update := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			first: {
				Filename: github.String(title),
				Content:  github.String(body),
			},
		},
	}
	if _, _, err := p.client.Gists.Edit(ctx, p.id, update); err != nil {
		return fmt.Errorf("update gist %s: %v", p.id, err)
	}
	return nil
}
