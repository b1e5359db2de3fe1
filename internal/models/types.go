package models

import "time"

// Actor is the nested login object GitHub attaches to issues, PRs,
// commits and events. It is nil when the record has no platform
// account behind it (e.g. commits authored outside GitHub).
type Actor struct {
	Login string `json:"login"`
}

type Issue struct {
	RepoName  string     `json:"repo_name"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	User      *Actor     `json:"user,omitempty"`
	Assignee  *Actor     `json:"assignee,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

type PullRequest struct {
	RepoName  string     `json:"repo_name"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	User      *Actor     `json:"user,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
}

type Commit struct {
	RepoName    string    `json:"repo_name"`
	SHA         string    `json:"sha"`
	Author      *Actor    `json:"author,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Message     string    `json:"message,omitempty"`
	CommittedAt time.Time `json:"committed_at"`
}

type IssueEvent struct {
	RepoName  string    `json:"repo_name"`
	Event     string    `json:"event"`
	Actor     *Actor    `json:"actor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivitySet bundles the four record streams one extraction run
// produces. Any of the slices may be nil or empty.
type ActivitySet struct {
	Issues       []Issue
	PullRequests []PullRequest
	Commits      []Commit
	IssueEvents  []IssueEvent
}

type Member struct {
	Login       string     `json:"login"`
	ID          int64      `json:"id"`
	Name        string     `json:"name,omitempty"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	Email       string     `json:"email,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	PublicRepos int        `json:"public_repos"`
	Followers   int        `json:"followers"`
	Following   int        `json:"following"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Fork        bool      `json:"fork"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stargazers_count"`
	OpenIssues  int       `json:"open_issues_count"`
	CreatedAt   time.Time `json:"created_at"`
	PushedAt    time.Time `json:"pushed_at"`
}

// RepositoryDetail is the full record the per-repository endpoint
// returns, a superset of the listing shape.
type RepositoryDetail struct {
	Repository
	DefaultBranch string   `json:"default_branch,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	Forks         int      `json:"forks_count"`
	Subscribers   int      `json:"subscribers_count"`
	Archived      bool     `json:"archived"`
}
