package githubql

// Queries are fixed documents; user-controlled values only ever travel in
// the variables map, so a hostile login or repo name cannot change the
// document structure.

const identityQuery = `query {
  viewer {
    login
    id
  }
}`

const contributedReposQuery = `query($login: String!) {
  user(login: $login) {
    repositoriesContributedTo(last: 100, includeUserRepositories: true) {
      nodes {
        isFork
        name
        owner {
          login
        }
      }
    }
  }
}`

const commitHistoryQuery = `query($name: String!, $owner: String!, $id: ID!) {
  repository(name: $name, owner: $owner) {
    defaultBranchRef {
      target {
        ... on Commit {
          history(first: 100, author: { id: $id }) {
            edges {
              node {
                committedDate
              }
            }
          }
        }
      }
    }
  }
}`

// IdentityQuery requests the authenticated user's login and node id.
func IdentityQuery() Request {
	return Request{Query: identityQuery}
}

// ContributedReposQuery requests up to 100 repositories the given user has
// contributed to, including their own.
func ContributedReposQuery(login string) Request {
	return Request{
		Query: contributedReposQuery,
		Variables: map[string]any{
			"login": login,
		},
	}
}

// CommitHistoryQuery requests up to 100 default-branch commits authored by
// identityID in the given repository.
func CommitHistoryQuery(identityID, name, owner string) Request {
	return Request{
		Query: commitHistoryQuery,
		Variables: map[string]any{
			"id":    identityID,
			"name":  name,
			"owner": owner,
		},
	}
}
