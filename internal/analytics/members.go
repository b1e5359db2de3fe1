package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/coopstools/orgpulse/internal/models"
)

const (
	StatusNew         = "new"
	StatusEstablished = "established"
)

// MemberAnalytics is a member profile enriched with a maturity score
// and a new/established classification.
type MemberAnalytics struct {
	models.Member
	MaturityScore  float64 `json:"maturity_score"`
	Status         string  `json:"status"`
	AccountAgeDays int     `json:"account_age_days"`
}

// MaturityBands buckets members by 33rd/67th score percentiles.
type MaturityBands struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// MaturityScore weighs account age, public repos and followers on a
// log1p scale. Followers dominate heavily: a following is harder to
// fake than a pile of repos.
func MaturityScore(m models.Member, now time.Time) float64 {
	age := accountAgeDays(m, now)
	return 0.5*math.Log1p(float64(age)) +
		3*math.Log1p(float64(m.PublicRepos)) +
		20*math.Log1p(float64(m.Followers))
}

// ClassifyStatus labels a member "new" when the account is under a
// year old, or when it shows little footprint (under 10 repos and
// under 10 followers).
func ClassifyStatus(m models.Member, now time.Time) string {
	if accountAgeDays(m, now) < 365 {
		return StatusNew
	}
	if m.PublicRepos < 10 && m.Followers < 10 {
		return StatusNew
	}
	return StatusEstablished
}

func accountAgeDays(m models.Member, now time.Time) int {
	if m.CreatedAt == nil {
		return 0
	}
	days := int(now.Sub(*m.CreatedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ProcessMembers scores and classifies every member, preserving input
// order.
func ProcessMembers(members []models.Member, now time.Time) []MemberAnalytics {
	processed := make([]MemberAnalytics, 0, len(members))
	for _, m := range members {
		processed = append(processed, MemberAnalytics{
			Member:         m,
			MaturityScore:  MaturityScore(m, now),
			Status:         ClassifyStatus(m, now),
			AccountAgeDays: accountAgeDays(m, now),
		})
	}
	return processed
}

func StatusDistribution(members []MemberAnalytics) map[string]int {
	dist := make(map[string]int)
	for _, m := range members {
		dist[m.Status]++
	}
	return dist
}

// BandMembers splits members into low/medium/high maturity bands.
// Returns a zero-valued struct for an empty roster.
func BandMembers(members []MemberAnalytics) MaturityBands {
	if len(members) == 0 {
		return MaturityBands{}
	}

	scores := make([]float64, 0, len(members))
	for _, m := range members {
		scores = append(scores, m.MaturityScore)
	}
	p33 := percentile(scores, 33)
	p67 := percentile(scores, 67)

	var bands MaturityBands
	for _, s := range scores {
		switch {
		case s < p33:
			bands.Low++
		case s < p67:
			bands.Medium++
		default:
			bands.High++
		}
	}
	return bands
}

// percentile with linear interpolation between closest ranks.
func percentile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
