package pair

import (
	"math"
	"sort"

	"github.com/TuftsBCB/basepair/geom"
	"github.com/TuftsBCB/basepair/hbond"
	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/template"
)

// RMSDScore maps an RMSD to [0, 1]: 1 at or below RMSDGood, 0 at or above
// RMSDBad (and for +Inf), linear in between.
func (cfg Config) RMSDScore(rmsd float64) float64 {
	return ramp(rmsd, cfg.RMSDGood, cfg.RMSDBad)
}

// AngleScore maps an interbase angle in degrees to [0, 1]: 1 at or below
// AngleGood, 0 at or above AngleBad, linear in between.
func (cfg Config) AngleScore(angle float64) float64 {
	return ramp(angle, cfg.AngleGood, cfg.AngleBad)
}

// ramp is 1 for x <= good, 0 for x >= bad or NaN, and falls linearly
// between them.
func ramp(x, good, bad float64) float64 {
	switch {
	case math.IsNaN(x) || x >= bad:
		return 0
	case x <= good:
		return 1
	}
	return 1 - (x-good)/(bad-good)
}

// IsValid applies the acceptance rule to one class result: a superposition
// must exist, and either Score >= MinScore with at least MinMatched bonds, or
// RMSD < TightRMSD with at least TightMatched bonds.
func (cfg Config) IsValid(r ClassAlignmentResult) bool {
	if !r.HasFit() {
		return false
	}
	if r.Score >= cfg.MinScore && r.HBondMatched >= cfg.MinMatched {
		return true
	}
	return r.RMSD < cfg.TightRMSD && r.HBondMatched >= cfg.TightMatched
}

// Scorer computes the composite score of residue pairs.
type Scorer struct {
	Config  Config
	Aligner Aligner
}

// NewScorer returns a scorer that aligns against the templates in reg.
func NewScorer(reg template.Registry, cfg Config) *Scorer {
	return &Scorer{
		Config:  cfg,
		Aligner: Aligner{Registry: reg, MinRingAtoms: cfg.MinRingAtoms},
	}
}

// Class scores one class for the residue pair given the interbase angle and
// the observed bonds, combining the sub-scores with w.
func (s *Scorer) Class(r1, r2 *pdb.Residue, class string, angle float64,
	bonds []hbond.HBond, w Weights) ClassAlignmentResult {

	sequence := string([]byte{r1.Base, r2.Base})
	hb := s.Config.hbonds().Score(sequence, class, bonds)
	res := ClassAlignmentResult{
		Class:         class,
		RMSD:          s.Aligner.Align(r1, r2, class),
		HBondMatched:  hb.Matched,
		HBondExpected: hb.Expected,
	}
	res.Score = w.Combine(hb.Score, s.Config.RMSDScore(res.RMSD),
		s.Config.AngleScore(angle), hb.Matched)
	res.Valid = s.Config.validate(res, hb.Score, angle)
	return res
}

// validate applies IsValid to r rescored with the validation weights, so
// validity means the same thing whatever weights r.Score was computed with.
func (cfg Config) validate(r ClassAlignmentResult, hbScore,
	angle float64) bool {

	r.Score = cfg.Validation.Combine(hbScore, cfg.RMSDScore(r.RMSD),
		cfg.AngleScore(angle), r.HBondMatched)
	return cfg.IsValid(r)
}

// Classes scores every class in the configuration with weights w and
// returns the results in configuration order.
func (s *Scorer) Classes(r1, r2 *pdb.Residue, angle float64,
	bonds []hbond.HBond, w Weights) []ClassAlignmentResult {

	results := make([]ClassAlignmentResult, len(s.Config.Classes))
	for i, class := range s.Config.Classes {
		results[i] = s.Class(r1, r2, class, angle, bonds, w)
	}
	return results
}

// Evaluate fills in a candidate using the validation weights. The
// candidate's Class, Score and Valid come from its best valid class, or from
// its best scoring class when none is valid.
func (s *Scorer) Evaluate(c *CandidatePair, r1, r2 *pdb.Residue,
	bonds []hbond.HBond) {

	c.Angle = geom.InterbaseAngle(r1, r2)
	c.Classes = s.Classes(r1, r2, c.Angle, bonds, s.Config.Validation)

	best := bestResult(c.Classes)
	if best < 0 {
		c.Class, c.Score, c.Valid = "", 0, false
		return
	}
	c.Class = c.Classes[best].Class
	c.Score = c.Classes[best].Score
	c.Valid = c.Classes[best].Valid
}

// bestResult returns the index of the highest scoring valid result, falling
// back to the highest scoring result. It returns -1 for an empty slice.
func bestResult(results []ClassAlignmentResult) int {
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := results[order[i]], results[order[j]]
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Score > b.Score
	})
	if len(order) == 0 {
		return -1
	}
	return order[0]
}
