/*
Package geom provides the small set of geometric measurements needed to
compare nucleotide bases: angles between vectors, base plane normals and the
angle between two base planes.

Degenerate input is never an error here. Each function documents the value
it returns when a vector or plane cannot be defined.
*/
package geom

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/TuftsBCB/basepair/pdb"
)

// Epsilon is the smallest vector norm considered non-zero.
const Epsilon = 1e-10

// UndefinedInterbaseAngle is reported by InterbaseAngle when either base
// plane is undefined. It is large enough to score as a poor pairing.
const UndefinedInterbaseAngle = 90.0

// NormalAtoms are the three ring atoms, present in both purines and
// pyrimidines, that define a base plane.
var NormalAtoms = [3]string{"C2", "C4", "C6"}

// Distance returns the euclidean distance between two points.
func Distance(a, b r3.Vector) float64 {
	return a.Sub(b).Norm()
}

// AngleBetween returns the angle between v1 and v2 in degrees, in the range
// [0, 180]. If either vector has a norm smaller than Epsilon, 0 is returned.
func AngleBetween(v1, v2 r3.Vector) float64 {
	n1, n2 := v1.Norm(), v2.Norm()
	if n1 < Epsilon || n2 < Epsilon {
		return 0
	}
	return degrees(math.Acos(clamp(v1.Dot(v2) / (n1 * n2))))
}

// PlaneNormal returns the unit normal of the plane through the atoms named
// in names, computed as normalize((p1 - p0) x (p2 - p0)). The second return
// value is false if any of the atoms is missing or if they are collinear.
func PlaneNormal(atoms map[string]pdb.Atom, names [3]string) (r3.Vector, bool) {
	var ps [3]r3.Vector
	for i, name := range names {
		atom, ok := atoms[name]
		if !ok {
			return r3.Vector{}, false
		}
		ps[i] = atom.Coords
	}
	cross := ps[1].Sub(ps[0]).Cross(ps[2].Sub(ps[0]))
	if cross.Norm() == 0 {
		return r3.Vector{}, false
	}
	return cross.Normalize(), true
}

// BaseNormal returns the normal of a residue's base plane using NormalAtoms.
func BaseNormal(res *pdb.Residue) (r3.Vector, bool) {
	return PlaneNormal(res.Atoms, NormalAtoms)
}

// InterbaseAngle returns the angle in degrees between the base planes of two
// residues. The sign of the normals is ignored, so two coplanar bases always
// measure 0 regardless of which face points up. If either normal cannot be
// computed, UndefinedInterbaseAngle is returned.
func InterbaseAngle(a, b *pdb.Residue) float64 {
	n1, ok1 := BaseNormal(a)
	n2, ok2 := BaseNormal(b)
	if !ok1 || !ok2 {
		return UndefinedInterbaseAngle
	}
	return degrees(math.Acos(clamp(math.Abs(n1.Dot(n2)))))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// clamp keeps rounding error from pushing a cosine outside [-1, 1].
func clamp(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}
