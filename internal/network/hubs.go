package network

import "sort"

// Hub is a login active in more than one repository, the kind of
// contributor that links otherwise disjoint communities.
type Hub struct {
	User               string   `json:"user"`
	Repositories       []string `json:"repositories"`
	RepoCount          int      `json:"repo_count"`
	TotalCollaborators int      `json:"total_collaborators"`
}

// DetectHubs filters user profiles down to cross-repository
// contributors, sorted by repository count descending, login ascending
// on ties. An empty result is a valid outcome, not a failure.
func DetectHubs(idx *Index, users []UserProfile) []Hub {
	var hubs []Hub
	for _, u := range users {
		if u.RepositoriesContributed <= 1 {
			continue
		}
		hubs = append(hubs, Hub{
			User:               u.User,
			Repositories:       idx.RepoList(u.User),
			RepoCount:          u.RepositoriesContributed,
			TotalCollaborators: u.CollaboratorCount,
		})
	}

	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].RepoCount != hubs[j].RepoCount {
			return hubs[i].RepoCount > hubs[j].RepoCount
		}
		return hubs[i].User < hubs[j].User
	})
	return hubs
}
