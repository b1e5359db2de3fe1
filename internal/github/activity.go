package github

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/coopstools/orgpulse/internal/config"
	"github.com/coopstools/orgpulse/internal/models"
	"github.com/fatih/color"
	"github.com/google/go-github/v57/github"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentRepos = 5

func toActor(user *github.User) *models.Actor {
	if user == nil || user.GetLogin() == "" {
		return nil
	}
	return &models.Actor{Login: user.GetLogin()}
}

// FetchRepoIssues returns the repository's issues with pull requests
// filtered out (the issues endpoint mixes both).
func FetchRepoIssues(ctx context.Context, client *github.Client, owner, repo string) ([]models.Issue, error) {
	var issues []models.Issue
	opt := &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		page, resp, err := client.Issues.ListByRepo(ctx, owner, repo, opt)
		if err != nil {
			return nil, fmt.Errorf("error fetching issues for %s: %v", repo, err)
		}
		for _, issue := range page {
			if issue.IsPullRequest() {
				continue
			}
			rec := models.Issue{
				RepoName:  repo,
				Number:    issue.GetNumber(),
				Title:     issue.GetTitle(),
				State:     issue.GetState(),
				User:      toActor(issue.User),
				Assignee:  toActor(issue.Assignee),
				CreatedAt: issue.GetCreatedAt().Time,
			}
			if issue.ClosedAt != nil {
				t := issue.ClosedAt.Time
				rec.ClosedAt = &t
			}
			issues = append(issues, rec)
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return issues, nil
}

func FetchRepoPulls(ctx context.Context, client *github.Client, owner, repo string) ([]models.PullRequest, error) {
	var pulls []models.PullRequest
	opt := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		page, resp, err := client.PullRequests.List(ctx, owner, repo, opt)
		if err != nil {
			return nil, fmt.Errorf("error fetching pull requests for %s: %v", repo, err)
		}
		for _, pr := range page {
			rec := models.PullRequest{
				RepoName:  repo,
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				State:     pr.GetState(),
				User:      toActor(pr.User),
				CreatedAt: pr.GetCreatedAt().Time,
			}
			if pr.ClosedAt != nil {
				t := pr.ClosedAt.Time
				rec.ClosedAt = &t
			}
			if pr.MergedAt != nil {
				t := pr.MergedAt.Time
				rec.MergedAt = &t
			}
			pulls = append(pulls, rec)
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return pulls, nil
}

func FetchRepoCommits(ctx context.Context, client *github.Client, owner, repo string) ([]models.Commit, error) {
	var commits []models.Commit
	opt := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		page, resp, err := client.Repositories.ListCommits(ctx, owner, repo, opt)
		if err != nil {
			if resp != nil && resp.StatusCode == 409 {
				// empty repository
				return nil, nil
			}
			return nil, fmt.Errorf("error fetching commits for %s: %v", repo, err)
		}
		for _, commit := range page {
			if commit.Commit == nil {
				continue
			}
			rec := models.Commit{
				RepoName: repo,
				SHA:      commit.GetSHA(),
				Author:   toActor(commit.Author),
				Message:  commit.Commit.GetMessage(),
			}
			if commit.Commit.Author != nil {
				rec.AuthorName = commit.Commit.Author.GetName()
				rec.AuthorEmail = commit.Commit.Author.GetEmail()
				rec.CommittedAt = commit.Commit.Author.GetDate().Time
			}
			commits = append(commits, rec)
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return commits, nil
}

// FetchRepoEvents pulls recent issue events, capped at maxPages since
// event streams on busy repos are effectively unbounded.
func FetchRepoEvents(ctx context.Context, client *github.Client, owner, repo string, maxPages int) ([]models.IssueEvent, error) {
	var events []models.IssueEvent
	opt := &github.ListOptions{PerPage: perPage}

	for pages := 0; pages < maxPages; pages++ {
		page, resp, err := client.Issues.ListRepositoryEvents(ctx, owner, repo, opt)
		if err != nil {
			return nil, fmt.Errorf("error fetching issue events for %s: %v", repo, err)
		}
		for _, event := range page {
			events = append(events, models.IssueEvent{
				RepoName:  repo,
				Event:     event.GetEvent(),
				Actor:     toActor(event.Actor),
				CreatedAt: event.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return events, nil
}

// ExtractActivity walks every repository and collects the four record
// streams, a few repos at a time. A repo that fails is warned about
// and skipped; the run carries on with whatever it got.
func ExtractActivity(ctx context.Context, client *github.Client, repos []*github.Repository, cfg *config.OrgConfig) models.ActivitySet {
	var set models.ActivitySet
	var mu sync.Mutex

	bar := progressbar.NewOptions(len(repos),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Extracting activity[reset]"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRepos)

	for _, repo := range repos {
		repo := repo
		g.Go(func() error {
			owner := repo.GetOwner().GetLogin()
			name := repo.GetName()

			issues, err := FetchRepoIssues(ctx, client, owner, name)
			if err != nil {
				color.Yellow("[!] Skipping issues for %s: %v", name, err)
			}
			pulls, err := FetchRepoPulls(ctx, client, owner, name)
			if err != nil {
				color.Yellow("[!] Skipping pull requests for %s: %v", name, err)
			}
			commits, err := FetchRepoCommits(ctx, client, owner, name)
			if err != nil {
				color.Yellow("[!] Skipping commits for %s: %v", name, err)
			}
			events, err := FetchRepoEvents(ctx, client, owner, name, cfg.MaxEventsPages)
			if err != nil {
				color.Yellow("[!] Skipping issue events for %s: %v", name, err)
			}

			mu.Lock()
			set.Issues = append(set.Issues, issues...)
			set.PullRequests = append(set.PullRequests, pulls...)
			set.Commits = append(set.Commits, commits...)
			set.IssueEvents = append(set.IssueEvents, events...)
			mu.Unlock()

			bar.Add(1)
			return nil
		})
	}

	g.Wait()
	bar.Finish()
	return set
}
