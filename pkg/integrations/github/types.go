package github

// repoResponse is the subset of GET /repos/{owner}/{repo} the client reads.
type repoResponse struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
}
