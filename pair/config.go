package pair

import (
	"fmt"

	"github.com/TuftsBCB/basepair/hbond"
)

// Classes lists the twelve Leontis-Westhof classes: cis and trans for every
// combination of the Watson-Crick (W), Hoogsteen (H) and sugar (S) edges.
var Classes = []string{
	"cWW", "tWW", "cWH", "tWH", "cWS", "tWS",
	"cHH", "tHH", "cHS", "tHS", "cSS", "tSS",
}

// Range is an inclusive distance range in Angstroms.
type Range struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// Contains returns true if Min <= d <= Max.
func (r Range) Contains(d float64) bool {
	return d >= r.Min && d <= r.Max
}

// Weights combine the hydrogen bond, RMSD and interbase angle sub-scores.
// PerBond is added once for every matched hydrogen bond.
type Weights struct {
	HBond   float64 `mapstructure:"hbond"`
	RMSD    float64 `mapstructure:"rmsd"`
	Angle   float64 `mapstructure:"angle"`
	PerBond float64 `mapstructure:"per-bond"`
}

// Combine returns the weighted sum of the sub-scores.
func (w Weights) Combine(hbondScore, rmsdScore, angleScore float64,
	matched int) float64 {

	return w.HBond*hbondScore + w.RMSD*rmsdScore + w.Angle*angleScore +
		w.PerBond*float64(matched)
}

// Config holds every threshold and weight used by the pipeline. The numbers
// in DefaultConfig were tuned empirically and are kept for compatibility.
type Config struct {
	// Maximum C1'-C1' distance of a candidate pair.
	MaxC1Distance float64 `mapstructure:"max-c1-distance"`

	// Allowed glycosidic nitrogen (N1/N9) distance per class.
	ClassRanges map[string]Range `mapstructure:"class-ranges"`

	// Classes evaluated for every candidate.
	Classes []string `mapstructure:"classes"`

	// Only keep candidates with a Watson-Crick or wobble sequence.
	CanonicalOnly bool `mapstructure:"canonical-only"`

	// Minimum number of ring atoms per residue shared with a template.
	MinRingAtoms int `mapstructure:"min-ring-atoms"`

	// RMSD (Angstroms) at or below RMSDGood scores 1, at or above RMSDBad 0.
	RMSDGood float64 `mapstructure:"rmsd-good"`
	RMSDBad  float64 `mapstructure:"rmsd-bad"`

	// Interbase angle (degrees) at or below AngleGood scores 1, at or above
	// AngleBad 0.
	AngleGood float64 `mapstructure:"angle-good"`
	AngleBad  float64 `mapstructure:"angle-bad"`

	// Validation weights are used to accept or reject candidates,
	// Discrimination weights to rank classes against each other.
	Validation     Weights `mapstructure:"validation"`
	Discrimination Weights `mapstructure:"discrimination"`

	// A class is valid if Score >= MinScore with at least MinMatched bonds,
	// or if RMSD < TightRMSD with at least TightMatched bonds.
	MinScore     float64 `mapstructure:"min-score"`
	MinMatched   int     `mapstructure:"min-matched"`
	TightRMSD    float64 `mapstructure:"tight-rmsd"`
	TightMatched int     `mapstructure:"tight-matched"`

	// Score gap between the two best classes that gives confidence 1.
	ConfidenceGap float64 `mapstructure:"confidence-gap"`

	// Break score ties in greedy selection by residue identifiers instead of
	// by input order.
	DeterministicTies bool `mapstructure:"deterministic-ties"`

	// Expected hydrogen bond patterns. Nil means hbond.DefaultTable.
	HBonds hbond.Table `mapstructure:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxC1Distance: 15.0,
		ClassRanges: map[string]Range{
			"cWW": {8.0, 10.0}, "tWW": {8.0, 10.5},
			"cWH": {6.5, 9.5}, "tWH": {6.5, 9.5},
			"cWS": {5.5, 9.0}, "tWS": {5.5, 9.5},
			"cHH": {7.0, 11.0}, "tHH": {7.0, 11.0},
			"cHS": {5.5, 10.0}, "tHS": {5.5, 10.0},
			"cSS": {4.5, 8.5}, "tSS": {4.5, 9.0},
		},
		Classes:       append([]string(nil), Classes...),
		CanonicalOnly: false,
		MinRingAtoms:  4,
		RMSDGood:      0.5,
		RMSDBad:       1.5,
		AngleGood:     15,
		AngleBad:      30,
		Validation: Weights{
			HBond: 0.4,
			RMSD:  0.3,
			Angle: 0.3,
		},
		Discrimination: Weights{
			HBond:   0.6,
			RMSD:    0.4,
			PerBond: 0.05,
		},
		MinScore:          0.6,
		MinMatched:        1,
		TightRMSD:         0.5,
		TightMatched:      2,
		ConfidenceGap:     0.3,
		DeterministicTies: true,
	}
}

// Validate returns an error describing the first inconsistency found.
func (cfg Config) Validate() error {
	if cfg.MaxC1Distance <= 0 {
		return fmt.Errorf("max-c1-distance must be positive, got %f",
			cfg.MaxC1Distance)
	}
	if len(cfg.Classes) == 0 {
		return fmt.Errorf("at least one class must be evaluated")
	}
	for _, class := range cfg.Classes {
		r, ok := cfg.ClassRanges[class]
		if !ok {
			return fmt.Errorf("class '%s' has no N1/N9 distance range", class)
		}
		if r.Min > r.Max {
			return fmt.Errorf("class '%s' has an empty distance range "+
				"[%f, %f]", class, r.Min, r.Max)
		}
	}
	if cfg.MinRingAtoms < 2 {
		return fmt.Errorf("min-ring-atoms must be at least 2, got %d",
			cfg.MinRingAtoms)
	}
	if cfg.RMSDBad <= cfg.RMSDGood {
		return fmt.Errorf("rmsd-bad (%f) must be greater than rmsd-good (%f)",
			cfg.RMSDBad, cfg.RMSDGood)
	}
	if cfg.AngleBad <= cfg.AngleGood {
		return fmt.Errorf("angle-bad (%f) must be greater than "+
			"angle-good (%f)", cfg.AngleBad, cfg.AngleGood)
	}
	if cfg.ConfidenceGap <= 0 {
		return fmt.Errorf("confidence-gap must be positive, got %f",
			cfg.ConfidenceGap)
	}
	return nil
}

func (cfg Config) hbonds() hbond.Table {
	if cfg.HBonds == nil {
		return hbond.DefaultTable
	}
	return cfg.HBonds
}
