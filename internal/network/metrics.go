package network

import "sort"

// UserProfile describes one login's position in the graph. Profiles
// exist only for logins that appear in at least one edge; a sole
// contributor has no profile but still counts toward repository
// metrics.
type UserProfile struct {
	User                    string   `json:"user"`
	CollaboratorCount       int      `json:"collaborator_count"`
	Collaborators           []string `json:"collaborators"`
	RepositoriesContributed int      `json:"repositories_contributed"`
}

type RepoProfile struct {
	Repo                    string   `json:"repo"`
	ContributorCount        int      `json:"contributor_count"`
	Contributors            []string `json:"contributors"`
	PotentialCollaborations int      `json:"potential_collaborations"`
	ActualCollaborations    int      `json:"actual_collaborations"`
	CollaborationDensity    float64  `json:"collaboration_density"`
}

type Summary struct {
	TotalUsers              int     `json:"total_users"`
	TotalCollaborations     int     `json:"total_collaborations"`
	TotalRepositories       int     `json:"total_repositories"`
	CrossRepoContributors   int     `json:"cross_repo_contributors"`
	AvgCollaboratorsPerUser float64 `json:"avg_collaborators_per_user"`
	AvgContributorsPerRepo  float64 `json:"avg_contributors_per_repo"`
}

// UserProfiles derives one profile per login incident to an edge,
// sorted by collaborator count descending, login ascending on ties.
// Collaborator sets come straight from the edge list, which keeps them
// symmetric by construction.
func UserProfiles(idx *Index, edges []Edge) []UserProfile {
	collaborators := make(map[string]map[string]struct{})
	link := func(a, b string) {
		if _, ok := collaborators[a]; !ok {
			collaborators[a] = make(map[string]struct{})
		}
		collaborators[a][b] = struct{}{}
	}
	for _, e := range edges {
		link(e.Source, e.Target)
		link(e.Target, e.Source)
	}

	profiles := make([]UserProfile, 0, len(collaborators))
	for user, set := range collaborators {
		profiles = append(profiles, UserProfile{
			User:                    user,
			CollaboratorCount:       len(set),
			Collaborators:           sortedKeys(set),
			RepositoriesContributed: len(idx.Repos[user]),
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].CollaboratorCount != profiles[j].CollaboratorCount {
			return profiles[i].CollaboratorCount > profiles[j].CollaboratorCount
		}
		return profiles[i].User < profiles[j].User
	})
	return profiles
}

// RepoProfiles derives one profile per indexed repository, including
// those with zero or one contributor, sorted by contributor count
// descending, name ascending on ties.
func RepoProfiles(idx *Index, edges []Edge) []RepoProfile {
	profiles := make([]RepoProfile, 0, len(idx.Contributors))
	for repo, contributors := range idx.Contributors {
		n := len(contributors)
		potential := n * (n - 1) / 2

		actual := 0
		for _, e := range edges {
			if e.Touches(repo) {
				actual++
			}
		}

		density := 0.0
		if potential > 0 {
			density = float64(actual) / float64(potential)
		}

		profiles = append(profiles, RepoProfile{
			Repo:                    repo,
			ContributorCount:        n,
			Contributors:            sortedKeys(contributors),
			PotentialCollaborations: potential,
			ActualCollaborations:    actual,
			CollaborationDensity:    density,
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].ContributorCount != profiles[j].ContributorCount {
			return profiles[i].ContributorCount > profiles[j].ContributorCount
		}
		return profiles[i].Repo < profiles[j].Repo
	})
	return profiles
}

// Summarize rolls the graph up into six scalars. Every mean is defined
// as 0 when its denominator is 0.
func Summarize(idx *Index, edges []Edge, users []UserProfile) Summary {
	s := Summary{
		TotalUsers:          len(users),
		TotalCollaborations: len(edges),
		TotalRepositories:   len(idx.Contributors),
	}

	totalCollaborators := 0
	for _, u := range users {
		totalCollaborators += u.CollaboratorCount
		if u.RepositoriesContributed > 1 {
			s.CrossRepoContributors++
		}
	}
	if len(users) > 0 {
		s.AvgCollaboratorsPerUser = float64(totalCollaborators) / float64(len(users))
	}

	totalContributors := 0
	for _, contributors := range idx.Contributors {
		totalContributors += len(contributors)
	}
	if len(idx.Contributors) > 0 {
		s.AvgContributorsPerRepo = float64(totalContributors) / float64(len(idx.Contributors))
	}
	return s
}
