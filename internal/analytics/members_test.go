package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/coopstools/orgpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func memberCreated(daysAgo int, repos, followers int) models.Member {
	created := testNow.AddDate(0, 0, -daysAgo)
	return models.Member{
		Login:       "someone",
		PublicRepos: repos,
		Followers:   followers,
		CreatedAt:   &created,
	}
}

func TestMaturityScore_Weighting(t *testing.T) {
	m := memberCreated(1000, 20, 50)
	want := 0.5*math.Log1p(1000) + 3*math.Log1p(20) + 20*math.Log1p(50)
	assert.InDelta(t, want, MaturityScore(m, testNow), 1e-9)
}

func TestMaturityScore_MissingCreatedAt(t *testing.T) {
	m := models.Member{Login: "ghost", PublicRepos: 5, Followers: 2}
	want := 3*math.Log1p(5) + 20*math.Log1p(2)
	assert.InDelta(t, want, MaturityScore(m, testNow), 1e-9)
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		name   string
		member models.Member
		want   string
	}{
		{"young account", memberCreated(100, 50, 100), StatusNew},
		{"old but quiet", memberCreated(2000, 3, 4), StatusNew},
		{"old with repos", memberCreated(2000, 15, 0), StatusEstablished},
		{"old but few repos and followers", memberCreated(2000, 3, 30), StatusEstablished},
		{"no created_at", models.Member{PublicRepos: 50, Followers: 50}, StatusNew},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyStatus(tc.member, testNow))
		})
	}
}

func TestProcessMembers(t *testing.T) {
	members := []models.Member{
		memberCreated(2000, 40, 300),
		memberCreated(50, 1, 0),
	}

	processed := ProcessMembers(members, testNow)
	require.Len(t, processed, 2)
	assert.Equal(t, StatusEstablished, processed[0].Status)
	assert.Equal(t, StatusNew, processed[1].Status)
	assert.Equal(t, 2000, processed[0].AccountAgeDays)
	assert.Greater(t, processed[0].MaturityScore, processed[1].MaturityScore)

	dist := StatusDistribution(processed)
	assert.Equal(t, 1, dist[StatusNew])
	assert.Equal(t, 1, dist[StatusEstablished])
}

func TestBandMembers(t *testing.T) {
	var members []MemberAnalytics
	for i := 0; i < 9; i++ {
		members = append(members, MemberAnalytics{MaturityScore: float64(i * 10)})
	}

	bands := BandMembers(members)
	assert.Equal(t, 9, bands.Low+bands.Medium+bands.High)
	assert.Greater(t, bands.Low, 0)
	assert.Greater(t, bands.High, 0)
}

func TestBandMembers_Empty(t *testing.T) {
	assert.Equal(t, MaturityBands{}, BandMembers(nil))
}
