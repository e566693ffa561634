package main

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/basepair/pair"
)

// The report types exist because RMSD is +Inf for classes without a fit,
// which JSON cannot represent.

type classReport struct {
	Class         string   `json:"class"`
	RMSD          *float64 `json:"rmsd"`
	HBondMatched  int      `json:"hbonds_matched"`
	HBondExpected int      `json:"hbonds_expected"`
	Score         float64  `json:"score"`
	Valid         bool     `json:"valid"`
}

func newClassReport(r pair.ClassAlignmentResult) classReport {
	cr := classReport{
		Class:         r.Class,
		HBondMatched:  r.HBondMatched,
		HBondExpected: r.HBondExpected,
		Score:         r.Score,
		Valid:         r.Valid,
	}
	if r.HasFit() {
		rmsd := r.RMSD
		cr.RMSD = &rmsd
	}
	return cr
}

type pairReport struct {
	Residue1   string      `json:"residue1"`
	Residue2   string      `json:"residue2"`
	Sequence   string      `json:"sequence"`
	C1Distance float64     `json:"c1_distance"`
	NDistance  float64     `json:"n1n9_distance"`
	Angle      float64     `json:"interbase_angle"`
	Best       classReport `json:"best"`
	Selected   bool        `json:"selected"`
}

type structureReport struct {
	Name  string       `json:"name"`
	Pairs []pairReport `json:"pairs"`
}

// newStructureReport lists the selected pairs of a result, or every
// candidate when all is set.
func newStructureReport(res pair.Result, all bool) structureReport {
	selected := make(map[*pair.CandidatePair]bool, len(res.Selected))
	for _, c := range res.Selected {
		selected[c] = true
	}
	cands := res.Selected
	if all {
		cands = res.Candidates
	}

	sr := structureReport{Name: res.Name, Pairs: make([]pairReport, 0)}
	for _, c := range cands {
		sr.Pairs = append(sr.Pairs, pairReport{
			Residue1:   c.ResID1,
			Residue2:   c.ResID2,
			Sequence:   c.Sequence,
			C1Distance: c.C1Distance,
			NDistance:  c.N1N9Distance,
			Angle:      c.Angle,
			Best:       newClassReport(bestOf(c)),
			Selected:   selected[c],
		})
	}
	return sr
}

// bestOf returns the class result the candidate's Class refers to.
func bestOf(c *pair.CandidatePair) pair.ClassAlignmentResult {
	for _, r := range c.Classes {
		if r.Class == c.Class {
			return r
		}
	}
	return pair.ClassAlignmentResult{Class: c.Class, Score: c.Score}
}

func (sr structureReport) writeText(w io.Writer) {
	for _, p := range sr.Pairs {
		rmsd := "-"
		if p.Best.RMSD != nil {
			rmsd = fmt.Sprintf("%0.3f", *p.Best.RMSD)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%0.3f\t%s\t%d/%d\t%0.1f\t%v\n",
			sr.Name, p.Residue1, p.Residue2, p.Sequence, p.Best.Class,
			p.Best.Score, rmsd, p.Best.HBondMatched, p.Best.HBondExpected,
			p.Angle, p.Selected)
	}
}

type classificationReport struct {
	Residue1   string       `json:"residue1"`
	Residue2   string       `json:"residue2"`
	Sequence   string       `json:"sequence"`
	Angle      float64      `json:"interbase_angle"`
	Best       classReport  `json:"best"`
	SecondBest *classReport `json:"second_best"`
	Confidence float64      `json:"confidence"`
}

func newClassificationReport(c pair.Classification) classificationReport {
	cr := classificationReport{
		Residue1:   c.ResID1,
		Residue2:   c.ResID2,
		Sequence:   c.Sequence,
		Angle:      c.Angle,
		Best:       newClassReport(c.Best),
		Confidence: c.Confidence(),
	}
	if c.SecondBest != nil {
		second := newClassReport(*c.SecondBest)
		cr.SecondBest = &second
	}
	return cr
}

func (cr classificationReport) writeText(w io.Writer) {
	line := func(label string, r *classReport) {
		rmsd := "-"
		if r.RMSD != nil {
			rmsd = fmt.Sprintf("%0.3f", *r.RMSD)
		}
		fmt.Fprintf(w, "%s\t%s\tscore=%0.3f\trmsd=%s\thbonds=%d/%d\n",
			label, r.Class, r.Score, rmsd, r.HBondMatched, r.HBondExpected)
	}
	fmt.Fprintf(w, "%s-%s %s (interbase angle %0.1f)\n",
		cr.Residue1, cr.Residue2, cr.Sequence, cr.Angle)
	line("best", &cr.Best)
	if cr.SecondBest != nil {
		line("second", cr.SecondBest)
	}
	fmt.Fprintf(w, "confidence\t%0.3f\n", cr.Confidence)
}
