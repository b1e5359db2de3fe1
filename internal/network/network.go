package network

import "github.com/coopstools/orgpulse/internal/models"

// Network holds everything one pass over the activity records derives.
// Each run rebuilds it wholesale; nothing is kept between runs.
type Network struct {
	Edges   []Edge
	Users   []UserProfile
	Repos   []RepoProfile
	Hubs    []Hub
	Summary Summary
}

// Analyze runs the full pipeline: normalize the record streams, index
// contributors per repository, build the weighted graph, then derive
// profiles, hubs and the summary. Pure; empty or partial input
// degrades to empty outputs.
func Analyze(set models.ActivitySet) *Network {
	idx := BuildIndex(Normalize(set))
	edges := BuildEdges(idx)
	users := UserProfiles(idx, edges)

	return &Network{
		Edges:   edges,
		Users:   users,
		Repos:   RepoProfiles(idx, edges),
		Hubs:    DetectHubs(idx, users),
		Summary: Summarize(idx, edges, users),
	}
}
