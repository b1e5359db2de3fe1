package network

import "github.com/coopstools/orgpulse/internal/models"

// UnknownRepo is the bucket for records that arrive without a
// repository name. They are kept rather than dropped so that a
// partially malformed extract still contributes signal.
const UnknownRepo = "unknown"

// Pair ties one login to one repository. It is the only thing the
// graph needs to know about an activity record.
type Pair struct {
	Repo  string
	Login string
}

// Normalize flattens the four record streams into contributor pairs.
// Records without a login are dropped; an issue yields a pair for the
// reporter and another for the assignee when both are present.
func Normalize(set models.ActivitySet) []Pair {
	var pairs []Pair
	pairs = appendIssuePairs(pairs, set.Issues)
	pairs = appendPullPairs(pairs, set.PullRequests)
	pairs = appendCommitPairs(pairs, set.Commits)
	pairs = appendEventPairs(pairs, set.IssueEvents)
	return pairs
}

func appendIssuePairs(pairs []Pair, issues []models.Issue) []Pair {
	for _, issue := range issues {
		repo := repoOrUnknown(issue.RepoName)
		if login := actorLogin(issue.User); login != "" {
			pairs = append(pairs, Pair{Repo: repo, Login: login})
		}
		if login := actorLogin(issue.Assignee); login != "" {
			pairs = append(pairs, Pair{Repo: repo, Login: login})
		}
	}
	return pairs
}

func appendPullPairs(pairs []Pair, pulls []models.PullRequest) []Pair {
	for _, pr := range pulls {
		if login := actorLogin(pr.User); login != "" {
			pairs = append(pairs, Pair{Repo: repoOrUnknown(pr.RepoName), Login: login})
		}
	}
	return pairs
}

func appendCommitPairs(pairs []Pair, commits []models.Commit) []Pair {
	for _, commit := range commits {
		if login := actorLogin(commit.Author); login != "" {
			pairs = append(pairs, Pair{Repo: repoOrUnknown(commit.RepoName), Login: login})
		}
	}
	return pairs
}

func appendEventPairs(pairs []Pair, events []models.IssueEvent) []Pair {
	for _, event := range events {
		if login := actorLogin(event.Actor); login != "" {
			pairs = append(pairs, Pair{Repo: repoOrUnknown(event.RepoName), Login: login})
		}
	}
	return pairs
}

func actorLogin(a *models.Actor) string {
	if a == nil {
		return ""
	}
	return a.Login
}

func repoOrUnknown(repo string) string {
	if repo == "" {
		return UnknownRepo
	}
	return repo
}
