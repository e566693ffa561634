package pair

import (
	"sort"
)

// SelectGreedy picks a subset of candidates in which no residue appears
// twice. Candidates are visited from the highest Score down, and a
// candidate is kept only if neither of its residues was kept before.
//
// This is a greedy approximation of a maximum weight matching, not an exact
// one. When two candidates have exactly the same score, the one earlier in
// cands wins unless deterministicTies is set, in which case the candidate
// with the lexically smaller (ResID1, ResID2) wins. Only the latter gives the
// same answer regardless of how the caller ordered its input.
//
// cands is not modified.
func SelectGreedy(cands []*CandidatePair,
	deterministicTies bool) []*CandidatePair {

	sorted := make([]*CandidatePair, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Score != b.Score || !deterministicTies {
			return a.Score > b.Score
		}
		if a.ResID1 != b.ResID1 {
			return a.ResID1 < b.ResID1
		}
		return a.ResID2 < b.ResID2
	})

	paired := make(map[string]bool, 2*len(sorted))
	selected := make([]*CandidatePair, 0, len(sorted)/2+1)
	for _, c := range sorted {
		if paired[c.ResID1] || paired[c.ResID2] {
			continue
		}
		paired[c.ResID1] = true
		paired[c.ResID2] = true
		selected = append(selected, c)
	}
	return selected
}
