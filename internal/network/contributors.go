package network

import "sort"

// Index groups normalized pairs both ways: which logins touched a
// repository, and which repositories a login touched. The reverse
// mapping is built in the same pass so later stages never rescan the
// forward one.
type Index struct {
	Contributors map[string]map[string]struct{} // repo -> logins
	Repos        map[string]map[string]struct{} // login -> repos
}

func NewIndex() *Index {
	return &Index{
		Contributors: make(map[string]map[string]struct{}),
		Repos:        make(map[string]map[string]struct{}),
	}
}

// BuildIndex folds pairs into an Index. Insertion is idempotent, so a
// login reaching the same repository through several record kinds
// still counts once.
func BuildIndex(pairs []Pair) *Index {
	idx := NewIndex()
	for _, p := range pairs {
		idx.add(p.Repo, p.Login)
	}
	return idx
}

func (idx *Index) add(repo, login string) {
	if _, ok := idx.Contributors[repo]; !ok {
		idx.Contributors[repo] = make(map[string]struct{})
	}
	idx.Contributors[repo][login] = struct{}{}

	if _, ok := idx.Repos[login]; !ok {
		idx.Repos[login] = make(map[string]struct{})
	}
	idx.Repos[login][repo] = struct{}{}
}

// ContributorList returns a repository's logins sorted ascending.
func (idx *Index) ContributorList(repo string) []string {
	return sortedKeys(idx.Contributors[repo])
}

// RepoList returns the repositories a login touched, sorted ascending.
func (idx *Index) RepoList(login string) []string {
	return sortedKeys(idx.Repos[login])
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
