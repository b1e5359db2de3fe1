package aggregate

import (
	"testing"
	"time"

	"github.com/coopstools/orgpulse/internal/analytics"
	"github.com/coopstools/orgpulse/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributor(user string, total int) analytics.ContributionMetrics {
	return analytics.ContributionMetrics{
		User:               user,
		TotalContributions: total,
		HasContributed:     total > 0,
	}
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	members := []analytics.MemberAnalytics{
		{Status: analytics.StatusNew},
		{Status: analytics.StatusEstablished},
		{Status: analytics.StatusEstablished},
	}
	contributions := []analytics.ContributionMetrics{
		contributor("alice", 12),
		contributor("bob", 3),
		contributor("carol", 0),
	}
	summary := network.Summary{
		TotalCollaborations:     4,
		CrossRepoContributors:   1,
		AvgCollaboratorsPerUser: 1.5,
	}
	temporal := analytics.TemporalStats{
		TotalEvents:      20,
		AvgDailyActivity: 2.5,
		DateRangeDays:    8,
	}

	dash := BuildDashboard(members, contributions, summary, temporal, now)

	assert.Equal(t, now, dash.GeneratedAt)
	assert.Equal(t, 3, dash.OrganizationHealth.TotalMembers)
	assert.Equal(t, 2, dash.OrganizationHealth.ActiveContributors)
	assert.Equal(t, 1, dash.OrganizationHealth.NewMembers)
	assert.Equal(t, 2, dash.OrganizationHealth.EstablishedMembers)
	assert.Equal(t, 4, dash.CollaborationMetrics.TotalCollaborations)
	assert.Equal(t, 20, dash.ActivityMetrics.TotalEvents)
	assert.Len(t, dash.TopContributors, 3)
}

func TestBuildDashboard_CapsTopContributors(t *testing.T) {
	var contributions []analytics.ContributionMetrics
	for i := 0; i < 15; i++ {
		contributions = append(contributions, contributor("user", 15-i))
	}

	dash := BuildDashboard(nil, contributions, network.Summary{}, analytics.TemporalStats{}, time.Now())
	assert.Len(t, dash.TopContributors, 10)
	assert.Equal(t, 15, dash.TopContributors[0].TotalContributions)
}

func TestBuildTiers(t *testing.T) {
	contributions := []analytics.ContributionMetrics{
		contributor("a", 100),
		contributor("b", 50),
		contributor("c", 20),
		contributor("d", 10),
		contributor("e", 5),
		contributor("f", 2),
		contributor("g", 1),
		contributor("h", 1),
		contributor("i", 1),
		contributor("j", 1),
		contributor("k", 0),
	}

	tiers := BuildTiers(contributions)

	require.NotEmpty(t, tiers.TopPerformers)
	assert.Equal(t, "a", tiers.TopPerformers[0].User)
	assert.Len(t, tiers.NonContributors, 1)

	total := len(tiers.TopPerformers) + len(tiers.RegularContributors) +
		len(tiers.OccasionalContributors) + len(tiers.NonContributors)
	assert.Equal(t, len(contributions), total)
}

func TestBuildTiers_NobodyContributed(t *testing.T) {
	contributions := []analytics.ContributionMetrics{
		contributor("a", 0),
		contributor("b", 0),
	}

	tiers := BuildTiers(contributions)
	assert.Empty(t, tiers.TopPerformers)
	assert.Len(t, tiers.NonContributors, 2)
}
