package analytics

import (
	"sort"

	"github.com/coopstools/orgpulse/internal/models"
	"github.com/coopstools/orgpulse/internal/network"
)

// ContributionMetrics totals one login's activity across the four
// record streams.
type ContributionMetrics struct {
	User               string `json:"user"`
	Issues             int    `json:"issues"`
	PullRequests       int    `json:"pull_requests"`
	Commits            int    `json:"commits"`
	IssueEvents        int    `json:"issue_events"`
	TotalContributions int    `json:"total_contributions"`
	HasContributed     bool   `json:"has_contributed"`
}

// RepositoryMetrics totals activity per repository.
type RepositoryMetrics struct {
	Repo          string `json:"repo"`
	Issues        int    `json:"issues"`
	PullRequests  int    `json:"pull_requests"`
	Commits       int    `json:"commits"`
	IssueEvents   int    `json:"issue_events"`
	TotalActivity int    `json:"total_activity"`
}

// ContributionDistribution summarizes the spread of per-user totals.
type ContributionDistribution struct {
	Contributors    int     `json:"contributors"`
	NonContributors int     `json:"non_contributors"`
	MeanTotal       float64 `json:"mean_total"`
	MedianTotal     float64 `json:"median_total"`
	MaxTotal        int     `json:"max_total"`
}

// ComputeContributions tallies activity per login. Members from the
// roster appear even with zero activity so the distribution can count
// non-contributors; logins seen only in records are included too.
func ComputeContributions(members []models.Member, set models.ActivitySet) []ContributionMetrics {
	totals := make(map[string]*ContributionMetrics)
	get := func(login string) *ContributionMetrics {
		if login == "" {
			return nil
		}
		if m, ok := totals[login]; ok {
			return m
		}
		m := &ContributionMetrics{User: login}
		totals[login] = m
		return m
	}

	for _, m := range members {
		get(m.Login)
	}

	for _, issue := range set.Issues {
		if issue.User != nil {
			if m := get(issue.User.Login); m != nil {
				m.Issues++
			}
		}
	}
	for _, pr := range set.PullRequests {
		if pr.User != nil {
			if m := get(pr.User.Login); m != nil {
				m.PullRequests++
			}
		}
	}
	for _, commit := range set.Commits {
		if commit.Author != nil {
			if m := get(commit.Author.Login); m != nil {
				m.Commits++
			}
		}
	}
	for _, event := range set.IssueEvents {
		if event.Actor != nil {
			if m := get(event.Actor.Login); m != nil {
				m.IssueEvents++
			}
		}
	}

	metrics := make([]ContributionMetrics, 0, len(totals))
	for _, m := range totals {
		m.TotalContributions = m.Issues + m.PullRequests + m.Commits + m.IssueEvents
		m.HasContributed = m.TotalContributions > 0
		metrics = append(metrics, *m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].TotalContributions != metrics[j].TotalContributions {
			return metrics[i].TotalContributions > metrics[j].TotalContributions
		}
		return metrics[i].User < metrics[j].User
	})
	return metrics
}

// ComputeRepositoryMetrics tallies activity per repository, using the
// same unknown-repo bucket as the network normalizer.
func ComputeRepositoryMetrics(set models.ActivitySet) []RepositoryMetrics {
	totals := make(map[string]*RepositoryMetrics)
	get := func(repo string) *RepositoryMetrics {
		if repo == "" {
			repo = network.UnknownRepo
		}
		if m, ok := totals[repo]; ok {
			return m
		}
		m := &RepositoryMetrics{Repo: repo}
		totals[repo] = m
		return m
	}

	for _, issue := range set.Issues {
		get(issue.RepoName).Issues++
	}
	for _, pr := range set.PullRequests {
		get(pr.RepoName).PullRequests++
	}
	for _, commit := range set.Commits {
		get(commit.RepoName).Commits++
	}
	for _, event := range set.IssueEvents {
		get(event.RepoName).IssueEvents++
	}

	metrics := make([]RepositoryMetrics, 0, len(totals))
	for _, m := range totals {
		m.TotalActivity = m.Issues + m.PullRequests + m.Commits + m.IssueEvents
		metrics = append(metrics, *m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].TotalActivity != metrics[j].TotalActivity {
			return metrics[i].TotalActivity > metrics[j].TotalActivity
		}
		return metrics[i].Repo < metrics[j].Repo
	})
	return metrics
}

// Distribution summarizes contributor totals; means and medians are 0
// for an empty input.
func Distribution(metrics []ContributionMetrics) ContributionDistribution {
	var dist ContributionDistribution
	var totals []float64
	sum := 0

	for _, m := range metrics {
		if !m.HasContributed {
			dist.NonContributors++
			continue
		}
		dist.Contributors++
		sum += m.TotalContributions
		totals = append(totals, float64(m.TotalContributions))
		if m.TotalContributions > dist.MaxTotal {
			dist.MaxTotal = m.TotalContributions
		}
	}

	if len(totals) > 0 {
		dist.MeanTotal = float64(sum) / float64(len(totals))
		dist.MedianTotal = percentile(totals, 50)
	}
	return dist
}
