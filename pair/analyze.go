/*
Package pair finds and classifies base pairs in a nucleic acid structure.

The pipeline for one structure is:

	Generate        candidate residue pairs from C1' and N1/N9 distances
	Aligner.Align   superpose each candidate onto idealized class templates
	hbond.Score     compare observed hydrogen bonds with expected patterns
	Scorer          combine RMSD, hydrogen bonds and interbase angle
	SelectGreedy    keep a subset in which every residue pairs at most once

Scorer.Classify reports the best and second best class of a single residue
pair instead.

Everything here is synchronous and only reads its inputs, so independent
structures can be analyzed concurrently with a shared template registry.
*/
package pair

import (
	"fmt"

	"github.com/TuftsBCB/basepair/template"
)

// Analyzer runs the full pipeline over structures. It holds no per-structure
// state, so a single Analyzer may be used from many goroutines.
type Analyzer struct {
	*Scorer
}

// NewAnalyzer validates the configuration and returns an analyzer using the
// templates in reg.
func NewAnalyzer(reg template.Registry, cfg Config) (*Analyzer, error) {
	if reg == nil {
		return nil, fmt.Errorf("A template registry is required.")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Invalid configuration: %w", err)
	}
	return &Analyzer{NewScorer(reg, cfg)}, nil
}

// Analyze generates and scores every candidate of the structure, then
// selects a conflict free set from the valid ones.
func (a *Analyzer) Analyze(s Structure) Result {
	cands := Generate(s.Residues, a.Config)
	valid := make([]*CandidatePair, 0, len(cands))
	for _, c := range cands {
		r1, r2 := s.Residues[c.ResID1], s.Residues[c.ResID2]
		a.Evaluate(c, r1, r2, s.HBonds.Between(c.ResID1, c.ResID2))
		if c.Valid {
			valid = append(valid, c)
		}
	}
	return Result{
		Name:       s.Name,
		Candidates: cands,
		Selected:   SelectGreedy(valid, a.Config.DeterministicTies),
	}
}

// ClassifyPair classifies the residues id1 and id2 of the structure.
func (a *Analyzer) ClassifyPair(s Structure,
	id1, id2 string) (Classification, error) {

	r1, ok := s.Residues[id1]
	if !ok {
		return Classification{}, fmt.Errorf("Residue '%s' is not in %s.",
			id1, s.Name)
	}
	r2, ok := s.Residues[id2]
	if !ok {
		return Classification{}, fmt.Errorf("Residue '%s' is not in %s.",
			id2, s.Name)
	}
	return a.Classify(r1, r2, s.HBonds.Between(id1, id2))
}

// Analyze is a shortcut for NewAnalyzer followed by Analyzer.Analyze. Use an
// Analyzer directly when analyzing more than one structure.
func Analyze(s Structure, reg template.Registry, cfg Config) (Result, error) {
	a, err := NewAnalyzer(reg, cfg)
	if err != nil {
		return Result{}, err
	}
	return a.Analyze(s), nil
}
