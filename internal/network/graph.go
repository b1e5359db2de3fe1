package network

import "sort"

// Edge joins two logins who share at least one repository. Source is
// always the lexicographically smaller login so {a,b} and {b,a} can
// never both materialize. Weight equals len(Repos).
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight int      `json:"weight"`
	Repos  []string `json:"repos"`
	Type   string   `json:"collaboration_type"`
}

const edgeTypeSameRepo = "same_repository"

// BuildEdges enumerates every unordered contributor pair per
// repository and accumulates the repositories each pair shares.
//
// Cost is O(sum of n_i^2) over per-repository contributor counts n_i:
// quadratic within a repository, linear across repositories. Fine for
// organization-sized inputs, the known limit for anything bigger.
func BuildEdges(idx *Index) []Edge {
	type pairKey struct {
		a, b string
	}
	shared := make(map[pairKey][]string)

	for repo, contributors := range idx.Contributors {
		logins := sortedKeys(contributors)
		for i := 0; i < len(logins); i++ {
			for j := i + 1; j < len(logins); j++ {
				// logins are sorted, so the key is already canonical
				// and i < j rules out self-loops.
				key := pairKey{a: logins[i], b: logins[j]}
				shared[key] = append(shared[key], repo)
			}
		}
	}

	edges := make([]Edge, 0, len(shared))
	for key, repos := range shared {
		sort.Strings(repos)
		edges = append(edges, Edge{
			Source: key.a,
			Target: key.b,
			Weight: len(repos),
			Repos:  repos,
			Type:   edgeTypeSameRepo,
		})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}

// Touches reports whether the edge's repository list contains repo.
// The list is sorted, so binary search keeps repo profile counting
// cheap.
func (e Edge) Touches(repo string) bool {
	i := sort.SearchStrings(e.Repos, repo)
	return i < len(e.Repos) && e.Repos[i] == repo
}
