package analytics

import (
	"sort"
	"time"

	"github.com/coopstools/orgpulse/internal/models"
)

// TemporalEvent is one activity record flattened onto the timeline.
type TemporalEvent struct {
	Type      string    `json:"type"`
	Repo      string    `json:"repo"`
	User      string    `json:"user,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type DailyActivity struct {
	Date   string `json:"date"`
	Events int    `json:"events"`
}

// CycleTime measures open-to-close for issues and open-to-merge for
// pull requests, in hours.
type CycleTime struct {
	Type   string  `json:"type"`
	Repo   string  `json:"repo"`
	Number int     `json:"number"`
	Hours  float64 `json:"hours"`
}

type TemporalStats struct {
	TotalEvents      int     `json:"total_events"`
	DateRangeStart   string  `json:"date_range_start,omitempty"`
	DateRangeEnd     string  `json:"date_range_end,omitempty"`
	DateRangeDays    int     `json:"date_range_days"`
	AvgDailyActivity float64 `json:"avg_daily_activity"`
	PeakDay          string  `json:"peak_day,omitempty"`
	AvgIssueCycle    float64 `json:"avg_issue_cycle_hours"`
	AvgPRCycle       float64 `json:"avg_pr_cycle_hours"`
}

// FlattenEvents orders every timestamped record onto one timeline.
// Records with a zero timestamp are skipped; they carry no temporal
// signal.
func FlattenEvents(set models.ActivitySet) []TemporalEvent {
	var events []TemporalEvent
	add := func(kind, repo string, actor *models.Actor, ts time.Time) {
		if ts.IsZero() {
			return
		}
		ev := TemporalEvent{Type: kind, Repo: repo, Timestamp: ts}
		if actor != nil {
			ev.User = actor.Login
		}
		events = append(events, ev)
	}

	for _, issue := range set.Issues {
		add("issue", issue.RepoName, issue.User, issue.CreatedAt)
	}
	for _, pr := range set.PullRequests {
		add("pull_request", pr.RepoName, pr.User, pr.CreatedAt)
	}
	for _, commit := range set.Commits {
		add("commit", commit.RepoName, commit.Author, commit.CommittedAt)
	}
	for _, event := range set.IssueEvents {
		add("issue_event", event.RepoName, event.Actor, event.CreatedAt)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events
}

// DailySummary buckets events by UTC calendar day, sorted by date.
func DailySummary(events []TemporalEvent) []DailyActivity {
	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.Timestamp.UTC().Format("2006-01-02")]++
	}

	days := make([]DailyActivity, 0, len(counts))
	for date, n := range counts {
		days = append(days, DailyActivity{Date: date, Events: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// Heatmap counts events per weekday (Sunday=0) and UTC hour.
func Heatmap(events []TemporalEvent) [7][24]int {
	var grid [7][24]int
	for _, ev := range events {
		ts := ev.Timestamp.UTC()
		grid[int(ts.Weekday())][ts.Hour()]++
	}
	return grid
}

// CycleTimes extracts resolution times for closed issues and merged
// pull requests. Still-open records are skipped.
func CycleTimes(set models.ActivitySet) []CycleTime {
	var cycles []CycleTime
	for _, issue := range set.Issues {
		if issue.ClosedAt == nil || issue.CreatedAt.IsZero() {
			continue
		}
		cycles = append(cycles, CycleTime{
			Type:   "issue",
			Repo:   issue.RepoName,
			Number: issue.Number,
			Hours:  issue.ClosedAt.Sub(issue.CreatedAt).Hours(),
		})
	}
	for _, pr := range set.PullRequests {
		if pr.MergedAt == nil || pr.CreatedAt.IsZero() {
			continue
		}
		cycles = append(cycles, CycleTime{
			Type:   "pull_request",
			Repo:   pr.RepoName,
			Number: pr.Number,
			Hours:  pr.MergedAt.Sub(pr.CreatedAt).Hours(),
		})
	}
	return cycles
}

// ComputeTemporalStats rolls the timeline up. Events must be in
// timeline order, as FlattenEvents returns them. All ratios are 0 when
// their denominator is 0.
func ComputeTemporalStats(events []TemporalEvent, cycles []CycleTime) TemporalStats {
	stats := TemporalStats{TotalEvents: len(events)}

	if len(events) > 0 {
		start := events[0].Timestamp.UTC()
		end := events[len(events)-1].Timestamp.UTC()
		stats.DateRangeStart = start.Format("2006-01-02")
		stats.DateRangeEnd = end.Format("2006-01-02")
		stats.DateRangeDays = int(end.Sub(start).Hours()/24) + 1

		days := DailySummary(events)
		stats.AvgDailyActivity = float64(len(events)) / float64(stats.DateRangeDays)
		peak := days[0]
		for _, d := range days[1:] {
			if d.Events > peak.Events {
				peak = d
			}
		}
		stats.PeakDay = peak.Date
	}

	var issueSum, prSum float64
	var issueN, prN int
	for _, c := range cycles {
		switch c.Type {
		case "issue":
			issueSum += c.Hours
			issueN++
		case "pull_request":
			prSum += c.Hours
			prN++
		}
	}
	if issueN > 0 {
		stats.AvgIssueCycle = issueSum / float64(issueN)
	}
	if prN > 0 {
		stats.AvgPRCycle = prSum / float64(prN)
	}
	return stats
}
