package pair

import (
	"github.com/TuftsBCB/basepair/geom"
	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/seq"
)

// C1Atom is the sugar atom used for the coarse distance filter.
const C1Atom = "C1'"

// Generate returns every pair of residues that passes the distance filters:
// the C1'-C1' distance must be at most cfg.MaxC1Distance, and the distance
// between the glycosidic nitrogens (N9 for purines, N1 for pyrimidines) must
// fall in the range of at least one class in cfg.Classes. If
// cfg.CanonicalOnly is set, pairs without a Watson-Crick or wobble sequence
// are dropped too. Residues missing any reference atom are skipped.
//
// Each unordered pair is visited once, with ResID1 < ResID2. All residues
// are compared against each other, which is fine for structures up to a few
// thousand nucleotides.
func Generate(residues map[string]*pdb.Residue, cfg Config) []*CandidatePair {
	ids := pdb.SortedIDs(residues)
	cands := make([]*CandidatePair, 0, len(ids))
	for i := 0; i < len(ids); i++ {
		r1 := residues[ids[i]]
		c1a, ok := r1.Atom(C1Atom)
		if !ok {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			r2 := residues[ids[j]]
			c1b, ok := r2.Atom(C1Atom)
			if !ok {
				continue
			}
			c1dist := geom.Distance(c1a, c1b)
			if c1dist > cfg.MaxC1Distance {
				continue
			}

			n1, ok1 := r1.Atom(seq.GlycosidicNitrogen(r1.Base))
			n2, ok2 := r2.Atom(seq.GlycosidicNitrogen(r2.Base))
			if !ok1 || !ok2 {
				continue
			}
			ndist := geom.Distance(n1, n2)
			if !cfg.inAnyClassRange(ndist) {
				continue
			}

			sequence := string([]byte{r1.Base, r2.Base})
			if cfg.CanonicalOnly && !seq.IsCanonical(sequence) {
				continue
			}
			cands = append(cands, &CandidatePair{
				ResID1:       ids[i],
				ResID2:       ids[j],
				Sequence:     sequence,
				C1Distance:   c1dist,
				N1N9Distance: ndist,
			})
		}
	}
	return cands
}

func (cfg Config) inAnyClassRange(d float64) bool {
	for _, class := range cfg.Classes {
		if r, ok := cfg.ClassRanges[class]; ok && r.Contains(d) {
			return true
		}
	}
	return false
}
