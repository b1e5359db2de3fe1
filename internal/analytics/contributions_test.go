package analytics

import (
	"testing"

	"github.com/coopstools/orgpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(name string) *models.Actor {
	return &models.Actor{Login: name}
}

func TestComputeContributions_TotalsAcrossStreams(t *testing.T) {
	set := models.ActivitySet{
		Issues: []models.Issue{
			{RepoName: "r1", User: login("alice")},
			{RepoName: "r2", User: login("alice")},
		},
		PullRequests: []models.PullRequest{{RepoName: "r1", User: login("alice")}},
		Commits:      []models.Commit{{RepoName: "r1", Author: login("bob")}},
		IssueEvents:  []models.IssueEvent{{RepoName: "r1", Actor: login("alice")}},
	}

	metrics := ComputeContributions(nil, set)
	require.Len(t, metrics, 2)

	alice := metrics[0]
	assert.Equal(t, "alice", alice.User)
	assert.Equal(t, 2, alice.Issues)
	assert.Equal(t, 1, alice.PullRequests)
	assert.Equal(t, 1, alice.IssueEvents)
	assert.Equal(t, 4, alice.TotalContributions)
	assert.True(t, alice.HasContributed)
}

func TestComputeContributions_RosterMembersWithoutActivity(t *testing.T) {
	members := []models.Member{{Login: "quietperson"}}
	set := models.ActivitySet{
		Commits: []models.Commit{{RepoName: "r1", Author: login("bob")}},
	}

	metrics := ComputeContributions(members, set)
	require.Len(t, metrics, 2)
	assert.Equal(t, "bob", metrics[0].User)
	assert.Equal(t, "quietperson", metrics[1].User)
	assert.False(t, metrics[1].HasContributed)
}

func TestComputeContributions_SkipsAnonymousRecords(t *testing.T) {
	set := models.ActivitySet{
		Commits: []models.Commit{{RepoName: "r1", AuthorName: "No Account"}},
	}
	assert.Empty(t, ComputeContributions(nil, set))
}

func TestComputeRepositoryMetrics(t *testing.T) {
	set := models.ActivitySet{
		Issues:       []models.Issue{{RepoName: "r1", User: login("alice")}},
		PullRequests: []models.PullRequest{{RepoName: "r1", User: login("bob")}},
		Commits:      []models.Commit{{Author: login("carol")}},
	}

	metrics := ComputeRepositoryMetrics(set)
	require.Len(t, metrics, 2)
	assert.Equal(t, "r1", metrics[0].Repo)
	assert.Equal(t, 2, metrics[0].TotalActivity)
	assert.Equal(t, "unknown", metrics[1].Repo)
	assert.Equal(t, 1, metrics[1].Commits)
}

func TestDistribution(t *testing.T) {
	metrics := []ContributionMetrics{
		{User: "a", TotalContributions: 10, HasContributed: true},
		{User: "b", TotalContributions: 4, HasContributed: true},
		{User: "c", TotalContributions: 1, HasContributed: true},
		{User: "d"},
	}

	dist := Distribution(metrics)
	assert.Equal(t, 3, dist.Contributors)
	assert.Equal(t, 1, dist.NonContributors)
	assert.Equal(t, 10, dist.MaxTotal)
	assert.InDelta(t, 5.0, dist.MeanTotal, 1e-9)
	assert.InDelta(t, 4.0, dist.MedianTotal, 1e-9)
}

func TestDistribution_Empty(t *testing.T) {
	dist := Distribution(nil)
	assert.Zero(t, dist.Contributors)
	assert.Zero(t, dist.MeanTotal)
	assert.Zero(t, dist.MedianTotal)
}
