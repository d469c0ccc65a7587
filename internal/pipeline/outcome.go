package pipeline

// Outcome is the single terminal result of one invocation. Every stage
// failure converts into exactly one of these; the entrypoint translates it
// to an HTTP status + body or a CLI exit.
type Outcome struct {
	Status int
	Body   string
}

var (
	OutcomeSuccess            = Outcome{200, "Success to update the gist 🎉"}
	OutcomeNoCommits          = Outcome{200, "No commit data found"}
	OutcomeBadToken           = Outcome{401, "Invalid GitHub token"}
	OutcomeNoGistFiles        = Outcome{404, "No gist files found"}
	OutcomeUserInfoFailed     = Outcome{500, "Failed to get user info"}
	OutcomeUserInfoIncomplete = Outcome{500, "User info incomplete"}
	OutcomeReposFailed        = Outcome{500, "Failed to get contributed repos"}
	OutcomeCommitsFailed      = Outcome{500, "Failed to get commit info"}
	OutcomeGistFailed         = Outcome{500, "Failed to get gist"}
	OutcomeInternalError      = Outcome{500, "Internal Server Error"}
)

// OK reports whether the invocation ended in a success-class outcome.
func (o Outcome) OK() bool {
	return o.Status < 400
}
