package githubql

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityQuery(t *testing.T) {
	req := IdentityQuery()
	assert.Contains(t, req.Query, "viewer")
	assert.Empty(t, req.Variables)
}

func TestContributedReposQueryParameterizesLogin(t *testing.T) {
	tests := []struct {
		name  string
		login string
	}{
		{name: "plain", login: "octocat"},
		{name: "quotes", login: `evil"){ viewer { id } }`},
		{name: "newlines_and_braces", login: "a\nb}{"},
		{name: "backslashes", login: `\\" mutation { }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ContributedReposQuery(tt.login)

			// The document is a fixed template; the login travels only as
			// a variable.
			assert.Equal(t, contributedReposQuery, req.Query)
			assert.NotContains(t, req.Query, tt.login)
			assert.Equal(t, tt.login, req.Variables["login"])

			payload, err := sonic.Marshal(req)
			require.NoError(t, err)

			var decoded struct {
				Query     string            `json:"query"`
				Variables map[string]string `json:"variables"`
			}
			require.NoError(t, sonic.Unmarshal(payload, &decoded))
			assert.Equal(t, contributedReposQuery, decoded.Query)
			assert.Equal(t, tt.login, decoded.Variables["login"])
		})
	}
}

func TestCommitHistoryQueryParameterizesAllInputs(t *testing.T) {
	req := CommitHistoryQuery(`id"inject`, `repo{}`, `owner"`)

	assert.Equal(t, commitHistoryQuery, req.Query)
	assert.Equal(t, `id"inject`, req.Variables["id"])
	assert.Equal(t, `repo{}`, req.Variables["name"])
	assert.Equal(t, `owner"`, req.Variables["owner"])

	assert.Contains(t, req.Query, "first: 100")
	assert.Contains(t, req.Query, "committedDate")
}

func TestQueriesCapPageSize(t *testing.T) {
	assert.Contains(t, ContributedReposQuery("x").Query, "last: 100")
	assert.Contains(t, CommitHistoryQuery("a", "b", "c").Query, "first: 100")
}
