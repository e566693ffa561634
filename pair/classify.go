package pair

import (
	"fmt"
	"sort"

	"github.com/TuftsBCB/basepair/geom"
	"github.com/TuftsBCB/basepair/hbond"
	"github.com/TuftsBCB/basepair/pdb"
)

// Classify scores every configured class for one residue pair with the
// discrimination weights, and reports the best class and the runner-up.
// The runner-up is what makes a call auditable: a small gap between the two
// means low confidence.
func (s *Scorer) Classify(r1, r2 *pdb.Residue,
	bonds []hbond.HBond) (Classification, error) {

	if len(s.Config.Classes) == 0 {
		return Classification{}, fmt.Errorf("No classes to evaluate for "+
			"%s-%s.", r1.ID, r2.ID)
	}

	angle := geom.InterbaseAngle(r1, r2)
	results := s.Classes(r1, r2, angle, bonds, s.Config.Discrimination)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	c := Classification{
		ResID1:   r1.ID,
		ResID2:   r2.ID,
		Sequence: string([]byte{r1.Base, r2.Base}),
		Angle:    angle,
		Best:     results[0],
		gap:      s.Config.ConfidenceGap,
	}
	if len(results) > 1 {
		second := results[1]
		c.SecondBest = &second
	}
	return c, nil
}
