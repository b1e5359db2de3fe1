package network

import (
	"testing"

	"github.com/coopstools/orgpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_SingleSharedRepo(t *testing.T) {
	set := models.ActivitySet{
		Issues:       []models.Issue{{RepoName: "r1", User: actor("alice")}},
		PullRequests: []models.PullRequest{{RepoName: "r1", User: actor("bob")}},
	}

	net := Analyze(set)

	require.Len(t, net.Edges, 1)
	assert.Equal(t, "alice", net.Edges[0].Source)
	assert.Equal(t, "bob", net.Edges[0].Target)
	assert.Equal(t, 1, net.Edges[0].Weight)
	assert.Equal(t, []string{"r1"}, net.Edges[0].Repos)

	require.Len(t, net.Users, 2)
	for _, u := range net.Users {
		assert.Equal(t, 1, u.CollaboratorCount)
	}

	require.Len(t, net.Repos, 1)
	assert.Equal(t, 2, net.Repos[0].ContributorCount)
	assert.Equal(t, 1.0, net.Repos[0].CollaborationDensity)

	assert.Empty(t, net.Hubs)
}

func TestAnalyze_CrossRepoHub(t *testing.T) {
	set := models.ActivitySet{
		Issues: []models.Issue{
			{RepoName: "r1", User: actor("alice")},
			{RepoName: "r2", User: actor("alice")},
			{RepoName: "r1", User: actor("bob")},
			{RepoName: "r2", User: actor("carol")},
		},
	}

	net := Analyze(set)

	require.Len(t, net.Edges, 2)
	for _, e := range net.Edges {
		assert.Equal(t, "alice", e.Source)
		assert.Equal(t, 1, e.Weight)
	}

	require.Len(t, net.Hubs, 1)
	assert.Equal(t, "alice", net.Hubs[0].User)
	assert.Equal(t, 2, net.Hubs[0].RepoCount)
	assert.Equal(t, []string{"r1", "r2"}, net.Hubs[0].Repositories)
	assert.Equal(t, 2, net.Hubs[0].TotalCollaborators)
}

func TestAnalyze_DisjointRepos(t *testing.T) {
	set := models.ActivitySet{
		Commits: []models.Commit{
			{RepoName: "r1", Author: actor("alice")},
			{RepoName: "r2", Author: actor("bob")},
		},
	}

	net := Analyze(set)

	assert.Empty(t, net.Edges)
	assert.Empty(t, net.Hubs)
	require.Len(t, net.Repos, 2)
	for _, r := range net.Repos {
		assert.Zero(t, r.CollaborationDensity)
	}
}

func TestAnalyze_MalformedIssueContributesNothing(t *testing.T) {
	set := models.ActivitySet{
		Issues: []models.Issue{{RepoName: "r1"}},
	}

	net := Analyze(set)
	assert.Empty(t, net.Edges)
	assert.Empty(t, net.Users)
	assert.Zero(t, net.Summary.TotalUsers)
}

func TestAnalyze_DuplicateRecordsCollapse(t *testing.T) {
	set := models.ActivitySet{
		Issues:      []models.Issue{{RepoName: "r1", User: actor("alice")}},
		Commits:     []models.Commit{{RepoName: "r1", Author: actor("alice")}},
		IssueEvents: []models.IssueEvent{{RepoName: "r1", Actor: actor("alice"), Event: "closed"}},
		PullRequests: []models.PullRequest{
			{RepoName: "r1", User: actor("bob")},
			{RepoName: "r1", User: actor("bob")},
		},
	}

	net := Analyze(set)
	require.Len(t, net.Edges, 1)
	assert.Equal(t, 1, net.Edges[0].Weight)
	assert.Equal(t, 2, net.Summary.TotalUsers)
}

func TestAnalyze_Idempotent(t *testing.T) {
	set := models.ActivitySet{
		Issues: []models.Issue{
			{RepoName: "r1", User: actor("alice"), Assignee: actor("bob")},
			{RepoName: "r2", User: actor("carol")},
		},
		PullRequests: []models.PullRequest{{RepoName: "r2", User: actor("alice")}},
		Commits:      []models.Commit{{RepoName: "r1", Author: actor("dave")}},
	}

	first := Analyze(set)
	second := Analyze(set)

	assert.Equal(t, first.Edges, second.Edges)
	assert.Equal(t, first.Users, second.Users)
	assert.Equal(t, first.Repos, second.Repos)
	assert.Equal(t, first.Hubs, second.Hubs)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestAnalyze_HubMembershipMatchesRepoCount(t *testing.T) {
	set := models.ActivitySet{
		Issues: []models.Issue{
			{RepoName: "r1", User: actor("alice")},
			{RepoName: "r2", User: actor("alice")},
			{RepoName: "r3", User: actor("bob")},
			{RepoName: "r1", User: actor("carol")},
			{RepoName: "r3", User: actor("carol")},
		},
	}

	net := Analyze(set)

	hubLogins := make(map[string]bool)
	for _, h := range net.Hubs {
		hubLogins[h.User] = true
	}
	for _, u := range net.Users {
		assert.Equal(t, u.RepositoriesContributed > 1, hubLogins[u.User],
			"hub membership for %s", u.User)
	}
}
