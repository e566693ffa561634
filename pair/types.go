package pair

import (
	"fmt"
	"math"

	"github.com/TuftsBCB/basepair/hbond"
	"github.com/TuftsBCB/basepair/pdb"
)

// ClassAlignmentResult is the evidence for one pair class. RMSD is +Inf when
// no template or too few ring atoms were available.
type ClassAlignmentResult struct {
	Class         string
	RMSD          float64
	HBondMatched  int
	HBondExpected int
	Score         float64
	Valid         bool
}

// HasFit returns true if a template superposition was computed.
func (r ClassAlignmentResult) HasFit() bool {
	return !math.IsInf(r.RMSD, 1) && !math.IsNaN(r.RMSD)
}

func (r ClassAlignmentResult) String() string {
	return fmt.Sprintf("%s rmsd=%0.3f hbonds=%d/%d score=%0.3f",
		r.Class, r.RMSD, r.HBondMatched, r.HBondExpected, r.Score)
}

// CandidatePair is a pair of residues close enough to possibly be a base
// pair. It is created by Generate and filled in by Scorer.Evaluate.
type CandidatePair struct {
	ResID1, ResID2 string
	Sequence       string
	C1Distance     float64
	N1N9Distance   float64

	// Interbase angle in degrees.
	Angle float64

	// One result per evaluated class, in evaluation order.
	Classes []ClassAlignmentResult

	// Class, Score and Valid describe the best class.
	Class string
	Score float64
	Valid bool
}

func (c *CandidatePair) String() string {
	return fmt.Sprintf("%s-%s %s %s score=%0.3f",
		c.ResID1, c.ResID2, c.Sequence, c.Class, c.Score)
}

// Classification is the best and runner-up class of a residue pair.
type Classification struct {
	ResID1, ResID2 string
	Sequence       string
	Angle          float64
	Best           ClassAlignmentResult
	SecondBest     *ClassAlignmentResult

	gap float64
}

// Confidence is min(1, (best - second) / gap), where gap is the configured
// confidence gap, or 1 when there is no runner-up.
func (c Classification) Confidence() float64 {
	if c.SecondBest == nil {
		return 1
	}
	gap := c.gap
	if gap <= 0 {
		gap = DefaultConfig().ConfidenceGap
	}
	return math.Min(1, (c.Best.Score-c.SecondBest.Score)/gap)
}

// Structure is everything known about one structure: its residues keyed by
// identifier and the observed hydrogen bonds between them.
type Structure struct {
	Name     string
	Residues map[string]*pdb.Residue
	HBonds   hbond.List
}

// Result is the outcome of analyzing one structure. Candidates holds every
// scored candidate and Selected the conflict free subset of valid ones.
type Result struct {
	Name       string
	Candidates []*CandidatePair
	Selected   []*CandidatePair
}
