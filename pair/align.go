package pair

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/rmsd"
	"github.com/TuftsBCB/basepair/seq"
	"github.com/TuftsBCB/basepair/template"
)

// Aligner superposes the ring atoms of an observed pair onto idealized
// templates.
type Aligner struct {
	Registry     template.Registry
	MinRingAtoms int
}

// Align returns the RMSD of the best superposition of the ring atoms of r1
// and r2 onto the template for their sequence and class. Both residues are
// fit together, so the RMSD measures the relative placement of the two
// bases and not just the shape of each.
//
// If there is no template for the sequence, the template of the reversed
// sequence is used with the residue roles swapped. +Inf is returned when
// there is no template either way, when fewer than MinRingAtoms ring atoms
// of either residue are found in the template, or when the fit is
// degenerate.
func (a Aligner) Align(r1, r2 *pdb.Residue, class string) float64 {
	if a.Registry == nil {
		return math.Inf(1)
	}
	sequence := string([]byte{r1.Base, r2.Base})
	ideal1, ideal2, ok := a.lookup(sequence, class)
	if !ok {
		return math.Inf(1)
	}

	src1, dst1 := matchRing(r1, ideal1)
	src2, dst2 := matchRing(r2, ideal2)
	if len(src1) < a.MinRingAtoms || len(src2) < a.MinRingAtoms {
		return math.Inf(1)
	}

	sup, err := rmsd.Superpose(append(src1, src2...), append(dst1, dst2...))
	if err != nil {
		return math.Inf(1)
	}
	return sup.RMSD
}

// lookup returns the template ring atoms for the first and second residue
// of sequence.
func (a Aligner) lookup(sequence, class string) (
	ideal1, ideal2 map[string]r3.Vector, ok bool) {

	if t, ok := a.Registry.Template(sequence, class); ok {
		return t.Residue1, t.Residue2, true
	}
	if t, ok := a.Registry.Template(seq.ReversePair(sequence), class); ok {
		return t.Residue2, t.Residue1, true
	}
	return nil, nil, false
}

// matchRing returns the coordinates of the ring atoms present in both the
// residue and the template, in ring order.
func matchRing(res *pdb.Residue, ideal map[string]r3.Vector) (
	observed, expected []r3.Vector) {

	for _, name := range seq.RingAtoms(res.Base) {
		o, ok := res.Atom(name)
		if !ok {
			continue
		}
		e, ok := ideal[name]
		if !ok {
			continue
		}
		observed = append(observed, o)
		expected = append(expected, e)
	}
	return
}
