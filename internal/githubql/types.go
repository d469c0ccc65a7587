package githubql

import "time"

// Request is one GraphQL call: a fixed query document plus its variables.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Viewer identifies the authenticated user.
type Viewer struct {
	Login string `json:"login"`
	ID    string `json:"id"`
}

type IdentityData struct {
	Viewer Viewer `json:"viewer"`
}

// RepoNode is one entry of the contributed-repositories listing.
type RepoNode struct {
	IsFork bool   `json:"isFork"`
	Name   string `json:"name"`
	Owner  struct {
		Login string `json:"login"`
	} `json:"owner"`
}

type ContributedReposData struct {
	User struct {
		RepositoriesContributedTo struct {
			Nodes []RepoNode `json:"nodes"`
		} `json:"repositoriesContributedTo"`
	} `json:"user"`
}

// RepoRef names a repository to fetch commit history from.
type RepoRef struct {
	Name  string
	Owner string
}

// CommitHistoryData mirrors the history query response. DefaultBranchRef is
// a pointer: a repository without a default branch comes back null and
// contributes zero timestamps.
type CommitHistoryData struct {
	Repository struct {
		DefaultBranchRef *struct {
			Target struct {
				History struct {
					Edges []struct {
						Node struct {
							CommittedDate time.Time `json:"committedDate"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"history"`
			} `json:"target"`
		} `json:"defaultBranchRef"`
	} `json:"repository"`
}

// Timestamps flattens the history edges into commit times.
func (d CommitHistoryData) Timestamps() []time.Time {
	ref := d.Repository.DefaultBranchRef
	if ref == nil {
		return nil
	}
	edges := ref.Target.History.Edges
	times := make([]time.Time, 0, len(edges))
	for _, edge := range edges {
		times = append(times, edge.Node.CommittedDate)
	}
	return times
}
