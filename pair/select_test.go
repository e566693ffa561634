package pair

import (
	"fmt"
	"math/rand"
	"testing"
)

func cand(id1, id2 string, score float64) *CandidatePair {
	return &CandidatePair{ResID1: id1, ResID2: id2, Score: score, Valid: true}
}

func pairs(cands []*CandidatePair) []string {
	s := make([]string, len(cands))
	for i, c := range cands {
		s[i] = c.ResID1 + "-" + c.ResID2
	}
	return s
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSelectGreedy(t *testing.T) {
	in := []*CandidatePair{
		cand("A.1", "B.3", 0.7),
		cand("A.1", "B.2", 0.9),
		cand("A.2", "B.2", 0.5),
		cand("A.3", "B.1", 0.65),
	}
	got := pairs(SelectGreedy(in, true))
	want := []string{"A.1-B.2", "A.3-B.1"}
	if !sameOrder(got, want) {
		t.Fatalf("selected %v, want %v", got, want)
	}

	// The input order is left alone.
	if in[0].ResID2 != "B.3" || in[1].ResID2 != "B.2" {
		t.Errorf("input was reordered: %v", pairs(in))
	}
}

func TestSelectGreedyEmpty(t *testing.T) {
	if got := SelectGreedy(nil, true); len(got) != 0 {
		t.Errorf("selected %v from nothing", pairs(got))
	}
}

func TestSelectGreedyTies(t *testing.T) {
	a := cand("A.1", "B.1", 0.8)
	b := cand("A.1", "B.2", 0.8)

	if got := pairs(SelectGreedy([]*CandidatePair{b, a}, false)); got[0] != "A.1-B.2" {
		t.Errorf("input order tie-break selected %v", got)
	}
	for _, in := range [][]*CandidatePair{{a, b}, {b, a}} {
		got := pairs(SelectGreedy(in, true))
		if !sameOrder(got, []string{"A.1-B.1"}) {
			t.Errorf("deterministic tie-break selected %v from %v",
				got, pairs(in))
		}
	}
}

func TestSelectGreedyUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		var in []*CandidatePair
		n := 1 + rng.Intn(40)
		for i := 0; i < n; i++ {
			id1 := fmt.Sprintf("A.%d", rng.Intn(10))
			id2 := fmt.Sprintf("B.%d", rng.Intn(10))
			in = append(in, cand(id1, id2, float64(rng.Intn(5))/4))
		}

		selected := SelectGreedy(in, true)
		seen := map[string]bool{}
		for _, c := range selected {
			if seen[c.ResID1] || seen[c.ResID2] {
				t.Fatalf("residue paired twice in %v", pairs(selected))
			}
			seen[c.ResID1], seen[c.ResID2] = true, true
		}
		for i := 1; i < len(selected); i++ {
			if selected[i].Score > selected[i-1].Score {
				t.Fatalf("selection is not by descending score: %v",
					pairs(selected))
			}
		}

		// Every candidate left out conflicts with a selected one.
		for _, c := range in {
			if !seen[c.ResID1] && !seen[c.ResID2] {
				t.Fatalf("%s was skipped without a conflict", c)
			}
		}

		// Shuffling the input does not change a deterministic selection.
		shuffled := append([]*CandidatePair(nil), in...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		again := SelectGreedy(shuffled, true)
		if !sameOrder(pairs(selected), pairs(again)) {
			t.Fatalf("selection depends on input order: %v != %v",
				pairs(selected), pairs(again))
		}
	}
}
