package github

import (
	"context"
	"fmt"
	"os"

	"github.com/coopstools/orgpulse/internal/config"
	"github.com/coopstools/orgpulse/internal/models"
	"github.com/fatih/color"
	"github.com/google/go-github/v57/github"
	"github.com/schollz/progressbar/v3"
)

const perPage = 100

// FetchOrgRepos pulls every public repository of the organization.
func FetchOrgRepos(ctx context.Context, client *github.Client, orgName string) ([]*github.Repository, error) {
	var allRepos []*github.Repository
	opt := &github.RepositoryListByOrgOptions{
		Type:        "public",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		repos, resp, err := client.Repositories.ListByOrg(ctx, orgName, opt)
		if err != nil {
			return nil, fmt.Errorf("error fetching repositories: %v", err)
		}
		allRepos = append(allRepos, repos...)
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return allRepos, nil
}

// FilterRepos drops forks and blacklisted names per the org config.
func FilterRepos(repos []*github.Repository, cfg *config.OrgConfig) []*github.Repository {
	var kept []*github.Repository
	for _, repo := range repos {
		if cfg.ShouldSkipRepo(repo.GetName(), repo.GetFork()) {
			continue
		}
		kept = append(kept, repo)
	}
	return kept
}

// ToRepository converts the API shape into the bronze record.
func ToRepository(repo *github.Repository) models.Repository {
	return models.Repository{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Fork:        repo.GetFork(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		CreatedAt:   repo.GetCreatedAt().Time,
		PushedAt:    repo.GetPushedAt().Time,
	}
}

// ToRepositoryDetail converts a full repository record, keeping the
// fields the per-repository endpoint adds over the listing shape.
func ToRepositoryDetail(repo *github.Repository) models.RepositoryDetail {
	return models.RepositoryDetail{
		Repository:    ToRepository(repo),
		DefaultBranch: repo.GetDefaultBranch(),
		Topics:        repo.Topics,
		Forks:         repo.GetForksCount(),
		Subscribers:   repo.GetSubscribersCount(),
		Archived:      repo.GetArchived(),
	}
}

// FetchRepoDetails hydrates the first limit repositories with their
// full records. Individual failures are warned about and skipped.
func FetchRepoDetails(ctx context.Context, client *github.Client, repos []*github.Repository, limit int) []models.RepositoryDetail {
	if limit > len(repos) {
		limit = len(repos)
	}

	var details []models.RepositoryDetail
	for _, repo := range repos[:limit] {
		full, _, err := client.Repositories.Get(ctx, repo.GetOwner().GetLogin(), repo.GetName())
		if err != nil {
			color.Yellow("[!] Skipping details for %s: %v", repo.GetName(), err)
			continue
		}
		details = append(details, ToRepositoryDetail(full))
	}
	return details
}

// FetchMembers lists the organization roster.
func FetchMembers(ctx context.Context, client *github.Client, orgName string) ([]*github.User, error) {
	var allMembers []*github.User
	opt := &github.ListMembersOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		members, resp, err := client.Organizations.ListMembers(ctx, orgName, opt)
		if err != nil {
			return nil, fmt.Errorf("error fetching members: %v", err)
		}
		allMembers = append(allMembers, members...)
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return allMembers, nil
}

// FetchMemberDetails hydrates each roster entry with the full user
// profile. Individual failures are skipped; a partial roster is still
// useful downstream.
func FetchMemberDetails(ctx context.Context, client *github.Client, members []*github.User) []models.Member {
	bar := progressbar.NewOptions(len(members),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Fetching member profiles[reset]"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var detailed []models.Member
	for _, member := range members {
		user, _, err := client.Users.Get(ctx, member.GetLogin())
		bar.Add(1)
		if err != nil {
			continue
		}
		detailed = append(detailed, ToMember(user))
	}
	bar.Finish()
	return detailed
}

func ToMember(user *github.User) models.Member {
	m := models.Member{
		Login:       user.GetLogin(),
		ID:          user.GetID(),
		Name:        user.GetName(),
		Company:     user.GetCompany(),
		Location:    user.GetLocation(),
		Email:       user.GetEmail(),
		Bio:         user.GetBio(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}
	if created := user.GetCreatedAt(); !created.IsZero() {
		t := created.Time
		m.CreatedAt = &t
	}
	if updated := user.GetUpdatedAt(); !updated.IsZero() {
		t := updated.Time
		m.UpdatedAt = &t
	}
	return m
}
