package pipeline

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gitowl/gitowl/internal/gist"
	"github.com/gitowl/gitowl/internal/githubql"
	"github.com/gitowl/gitowl/internal/stats"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// QueryClient executes one GraphQL request.
type QueryClient interface {
	Do(ctx context.Context, req githubql.Request, out any) error
}

// Publisher writes the finished report to the external store.
type Publisher interface {
	Publish(ctx context.Context, title, body string) error
}

// Pipeline runs the identity → repos → commits → aggregate → publish chain.
type Pipeline struct {
	Client    QueryClient
	Publisher Publisher
	Location  *time.Location
	// Progress draws a terminal bar over the per-repo fetches; off in
	// server mode and tests.
	Progress bool
}

// Run executes one full invocation and always returns a terminal outcome.
func (p *Pipeline) Run(ctx context.Context) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pipeline panic: %v", r)
			outcome = OutcomeInternalError
		}
	}()

	viewer, out := p.fetchIdentity(ctx)
	if out != nil {
		return *out
	}

	repos, out := p.fetchContributedRepos(ctx, viewer.Login)
	if out != nil {
		return *out
	}

	times, out := p.fetchCommitTimes(ctx, viewer.ID, repos)
	if out != nil {
		return *out
	}

	buckets := stats.Aggregate(times, p.Location)
	if buckets.Total() == 0 {
		return OutcomeNoCommits
	}

	return p.publish(ctx, buckets)
}

func (p *Pipeline) fetchIdentity(ctx context.Context) (githubql.Viewer, *Outcome) {
	var data githubql.IdentityData
	if err := p.Client.Do(ctx, githubql.IdentityQuery(), &data); err != nil {
		log.Printf("identity query failed: %v", err)
		return githubql.Viewer{}, &OutcomeUserInfoFailed
	}
	viewer := data.Viewer
	if viewer.Login == "" || viewer.ID == "" {
		log.Printf("identity response missing login or id")
		return githubql.Viewer{}, &OutcomeUserInfoIncomplete
	}
	return viewer, nil
}

func (p *Pipeline) fetchContributedRepos(ctx context.Context, login string) ([]githubql.RepoRef, *Outcome) {
	var data githubql.ContributedReposData
	err := p.Client.Do(ctx, githubql.ContributedReposQuery(login), &data)
	if errors.Is(err, githubql.ErrBadCredentials) {
		log.Printf("github rejected the token")
		return nil, &OutcomeBadToken
	}
	if err != nil {
		log.Printf("contributed repos query failed: %v", err)
		return nil, &OutcomeReposFailed
	}

	nodes := data.User.RepositoriesContributedTo.Nodes
	repos := make([]githubql.RepoRef, 0, len(nodes))
	for _, node := range nodes {
		if node.IsFork {
			continue
		}
		repos = append(repos, githubql.RepoRef{Name: node.Name, Owner: node.Owner.Login})
	}
	return repos, nil
}

// fetchCommitTimes fans out one history query per repository and joins them
// all-or-nothing: the first failure cancels the rest and the whole stage
// fails, discarding partial results.
func (p *Pipeline) fetchCommitTimes(ctx context.Context, identityID string, repos []githubql.RepoRef) ([]time.Time, *Outcome) {
	var bar *progressbar.ProgressBar
	if p.Progress && len(repos) > 0 {
		bar = progressbar.NewOptions(len(repos),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Fetching commit histories 🦉[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	results := make([][]time.Time, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			var data githubql.CommitHistoryData
			req := githubql.CommitHistoryQuery(identityID, repo.Name, repo.Owner)
			if err := p.Client.Do(gctx, req, &data); err != nil {
				return err
			}
			results[i] = data.Timestamps()
			if bar != nil {
				bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("commit history fetch failed: %v", err)
		return nil, &OutcomeCommitsFailed
	}
	if bar != nil {
		bar.Finish()
	}

	var times []time.Time
	for _, result := range results {
		times = append(times, result...)
	}
	return times, nil
}

func (p *Pipeline) publish(ctx context.Context, buckets stats.Buckets) Outcome {
	title := stats.Classify(buckets)
	body := stats.RenderReport(buckets)

	err := p.Publisher.Publish(ctx, title, body)
	switch {
	case errors.Is(err, gist.ErrNoFiles):
		log.Printf("gist has no files to update")
		return OutcomeNoGistFiles
	case errors.Is(err, gist.ErrUnavailable):
		log.Printf("gist fetch failed: %v", err)
		return OutcomeGistFailed
	case err != nil:
		log.Printf("gist update failed: %v", err)
		return OutcomeInternalError
	}
	return OutcomeSuccess
}
