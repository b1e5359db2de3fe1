package aggregate

import (
	"sort"
	"time"

	"github.com/coopstools/orgpulse/internal/analytics"
	"github.com/coopstools/orgpulse/internal/network"
)

const topContributorCount = 10

type OrganizationHealth struct {
	TotalMembers       int `json:"total_members"`
	ActiveContributors int `json:"active_contributors"`
	NewMembers         int `json:"new_members"`
	EstablishedMembers int `json:"established_members"`
}

type CollaborationKPIs struct {
	TotalCollaborations     int     `json:"total_collaborations"`
	CrossRepoContributors   int     `json:"cross_repo_contributors"`
	AvgCollaboratorsPerUser float64 `json:"avg_collaborators_per_user"`
}

type ActivityKPIs struct {
	TotalEvents      int     `json:"total_events"`
	AvgDailyActivity float64 `json:"avg_daily_activity"`
	DateRangeDays    int     `json:"date_range_days"`
}

// ExecutiveDashboard is the gold-layer rollup of everything the silver
// stages produced.
type ExecutiveDashboard struct {
	GeneratedAt          time.Time                       `json:"generated_at"`
	OrganizationHealth   OrganizationHealth              `json:"organization_health"`
	CollaborationMetrics CollaborationKPIs               `json:"collaboration_metrics"`
	ActivityMetrics      ActivityKPIs                    `json:"activity_metrics"`
	TopContributors      []analytics.ContributionMetrics `json:"top_contributors"`
}

// PerformanceTiers splits contributors by percentile thresholds over
// their contribution totals.
type PerformanceTiers struct {
	TopPerformers          []analytics.ContributionMetrics `json:"top_performers"`
	RegularContributors    []analytics.ContributionMetrics `json:"regular_contributors"`
	OccasionalContributors []analytics.ContributionMetrics `json:"occasional_contributors"`
	NonContributors        []analytics.ContributionMetrics `json:"non_contributors"`
}

// BuildDashboard assembles the executive KPIs. Contributions must be
// sorted by total descending, as ComputeContributions returns them.
func BuildDashboard(
	members []analytics.MemberAnalytics,
	contributions []analytics.ContributionMetrics,
	summary network.Summary,
	temporal analytics.TemporalStats,
	now time.Time,
) ExecutiveDashboard {
	health := OrganizationHealth{TotalMembers: len(members)}
	for _, m := range members {
		switch m.Status {
		case analytics.StatusNew:
			health.NewMembers++
		case analytics.StatusEstablished:
			health.EstablishedMembers++
		}
	}
	for _, c := range contributions {
		if c.HasContributed {
			health.ActiveContributors++
		}
	}

	top := contributions
	if len(top) > topContributorCount {
		top = top[:topContributorCount]
	}

	return ExecutiveDashboard{
		GeneratedAt:        now,
		OrganizationHealth: health,
		CollaborationMetrics: CollaborationKPIs{
			TotalCollaborations:     summary.TotalCollaborations,
			CrossRepoContributors:   summary.CrossRepoContributors,
			AvgCollaboratorsPerUser: summary.AvgCollaboratorsPerUser,
		},
		ActivityMetrics: ActivityKPIs{
			TotalEvents:      temporal.TotalEvents,
			AvgDailyActivity: temporal.AvgDailyActivity,
			DateRangeDays:    temporal.DateRangeDays,
		},
		TopContributors: top,
	}
}

// BuildTiers buckets contributors around the 10th and 25th percentile
// totals of those who contributed at all. Without any contributions
// everyone lands in NonContributors.
func BuildTiers(contributions []analytics.ContributionMetrics) PerformanceTiers {
	var tiers PerformanceTiers

	var totals []int
	for _, c := range contributions {
		if c.HasContributed {
			totals = append(totals, c.TotalContributions)
		}
	}
	if len(totals) == 0 {
		tiers.NonContributors = append(tiers.NonContributors, contributions...)
		return tiers
	}

	top10 := thresholdAt(totals, 0.10)
	top25 := thresholdAt(totals, 0.25)

	for _, c := range contributions {
		switch {
		case c.TotalContributions == 0:
			tiers.NonContributors = append(tiers.NonContributors, c)
		case c.TotalContributions >= top10:
			tiers.TopPerformers = append(tiers.TopPerformers, c)
		case c.TotalContributions >= top25:
			tiers.RegularContributors = append(tiers.RegularContributors, c)
		default:
			tiers.OccasionalContributors = append(tiers.OccasionalContributors, c)
		}
	}
	return tiers
}

// thresholdAt picks the total at the given fraction down a
// descending-sorted copy of totals.
func thresholdAt(totals []int, fraction float64) int {
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	idx := int(float64(len(sorted)) * fraction)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
