package hbond

import (
	"github.com/TuftsBCB/basepair/seq"
)

// Expected is one hydrogen bond of a pattern. DonorRes and AcceptorRes are 1
// or 2 and say which residue of the pair holds each atom. They are
// informational only: Score matches bonds on atom names alone.
type Expected struct {
	DonorRes    int
	Donor       string
	AcceptorRes int
	Acceptor    string
}

// swap returns the same bond with the residue roles exchanged.
func (e Expected) swap() Expected {
	return Expected{3 - e.DonorRes, e.Donor, 3 - e.AcceptorRes, e.Acceptor}
}

// Key identifies a pattern by normalized two letter sequence and
// Leontis-Westhof class, e.g., {"GC", "cWW"}.
type Key struct {
	Sequence string
	Class    string
}

// Table maps sequence/class combinations to their expected hydrogen bonds.
type Table map[Key][]Expected

// DefaultTable holds the hand curated patterns for the common pairs.
var DefaultTable = Table{
	// Watson-Crick and wobble.
	{"GC", "cWW"}: {
		{1, "N1", 2, "N3"},
		{1, "N2", 2, "O2"},
		{2, "N4", 1, "O6"},
	},
	{"AU", "cWW"}: {
		{1, "N6", 2, "O4"},
		{2, "N3", 1, "N1"},
	},
	{"GU", "cWW"}: {
		{1, "N1", 2, "O2"},
		{2, "N3", 1, "O6"},
	},

	// Reverse Watson-Crick.
	{"AU", "tWW"}: {
		{1, "N6", 2, "O2"},
		{2, "N3", 1, "N1"},
	},
	{"GC", "tWW"}: {
		{1, "N1", 2, "O2"},
		{2, "N4", 1, "N7"},
	},

	// Hoogsteen and reverse Hoogsteen.
	{"UA", "cWH"}: {
		{1, "N3", 2, "N7"},
		{2, "N6", 1, "O4"},
	},
	{"CG", "cWH"}: {
		{1, "N3", 2, "N7"},
		{1, "N4", 2, "O6"},
	},
	{"UA", "tWH"}: {
		{1, "N3", 2, "N7"},
		{2, "N6", 1, "O2"},
	},
	{"AA", "tWH"}: {
		{1, "N6", 2, "N7"},
		{2, "N6", 1, "N1"},
	},

	// Sugar edge pairs.
	{"AG", "tHS"}: {
		{1, "N6", 2, "N3"},
		{2, "N2", 1, "N7"},
	},
	{"AA", "tHS"}: {
		{1, "N6", 2, "N3"},
		{2, "N6", 1, "N7"},
	},
	{"GA", "tSS"}: {
		{1, "N2", 2, "N3"},
		{2, "N6", 1, "N3"},
	},
	{"AC", "cWS"}: {
		{1, "N6", 2, "O2"},
		{2, "N4", 1, "N1"},
	},

	// Hoogsteen/Hoogsteen.
	{"AA", "tHH"}: {
		{1, "N6", 2, "N7"},
		{2, "N6", 1, "N7"},
	},
	{"GG", "cHH"}: {
		{1, "N1", 2, "N7"},
		{1, "N2", 2, "O6"},
	},
}

// Lookup returns the expected hydrogen bonds for the sequence and class
// given. The sequence is normalized first. If there is no pattern for the
// sequence, the reversed sequence is tried and its pattern is returned with
// the residue roles swapped. Nil is returned when neither exists.
func (t Table) Lookup(sequence, class string) []Expected {
	sequence = seq.NormalizePair(sequence)
	if pattern, ok := t[Key{sequence, class}]; ok {
		return pattern
	}
	pattern, ok := t[Key{seq.ReversePair(sequence), class}]
	if !ok {
		return nil
	}
	swapped := make([]Expected, len(pattern))
	for i, e := range pattern {
		swapped[i] = e.swap()
	}
	return swapped
}

// Result is the outcome of comparing observed bonds with a pattern. Score is
// Matched / max(Expected, 1), in [0, 1].
type Result struct {
	Matched  int
	Expected int
	Score    float64
}

// Score counts how many of the expected bonds for the sequence and class are
// found in bonds. Only BaseBase bonds are considered, atom names are compared
// in both directions, and each observed bond satisfies at most one expected
// bond. A sequence/class without a pattern scores zero with Expected = 0.
func (t Table) Score(sequence, class string, bonds []HBond) Result {
	pattern := t.Lookup(sequence, class)
	used := make([]bool, len(bonds))
	matched := 0
	for _, exp := range pattern {
		for i, hb := range bonds {
			if used[i] || hb.Context != BaseBase {
				continue
			}
			if hb.Matches(exp.Donor, exp.Acceptor) {
				used[i] = true
				matched++
				break
			}
		}
	}

	denom := len(pattern)
	if denom < 1 {
		denom = 1
	}
	score := float64(matched) / float64(denom)
	if score > 1 {
		score = 1
	}
	return Result{Matched: matched, Expected: len(pattern), Score: score}
}

// Score is Table.Score on DefaultTable.
func Score(sequence, class string, bonds []HBond) Result {
	return DefaultTable.Score(sequence, class, bonds)
}
