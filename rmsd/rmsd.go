package rmsd

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewPoints is returned when fewer than three point pairs are given.
	// The rotation is undetermined in that case.
	ErrTooFewPoints = errors.New("at least 3 point pairs are required")

	// ErrDegenerate is returned when the points are coincident or collinear,
	// so that no unique rotation exists.
	ErrDegenerate = errors.New("point sets are degenerate (collinear or coincident)")
)

// degenerateRatio is the smallest allowed ratio between the second and the
// first singular value of the covariance matrix.
const degenerateRatio = 1e-8

// Superposition is the rigid transformation that maps a source point set
// onto a target point set, along with the RMSD after applying it.
//
// Rotation is a 3x3 matrix in row-major order
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
type Superposition struct {
	Rotation    [9]float64
	Translation r3.Vector
	RMSD        float64
}

// Apply rotates and then translates v.
func (s Superposition) Apply(v r3.Vector) r3.Vector {
	r := s.Rotation
	return r3.Vector{
		X: r[0]*v.X + r[1]*v.Y + r[2]*v.Z,
		Y: r[3]*v.X + r[4]*v.Y + r[5]*v.Z,
		Z: r[6]*v.X + r[7]*v.Y + r[8]*v.Z,
	}.Add(s.Translation)
}

// Det returns the determinant of the rotation matrix. It is always +1 (up to
// rounding) for a Superposition returned by this package.
func (s Superposition) Det() float64 {
	return mat.Det(mat.NewDense(3, 3, s.Rotation[:]))
}

// Superpose computes the rotation and translation that minimize the RMSD
// when mapping src onto dst. src[i] is paired with dst[i].
//
// A brief, high-level overview:
//
// Center both sets on their centroids.
//
// Compute the covariance matrix H = (src^T)dst.
//
// Compute the SVD of H = US(V^T).
//
// The rotation is R = V(U^T). If det(R) < 0, the fit found a reflection, so
// the last column of V is negated and R is recomputed.
//
// The translation is centroid(dst) - R centroid(src).
func Superpose(src, dst []r3.Vector) (Superposition, error) {
	return superpose(src, dst, true)
}

// SuperposeRotation is like Superpose, except neither point set is centered.
// The rotation is about the origin and the translation is always zero.
func SuperposeRotation(src, dst []r3.Vector) (Superposition, error) {
	return superpose(src, dst, false)
}

func superpose(src, dst []r3.Vector, translate bool) (Superposition, error) {
	if len(src) != len(dst) {
		return Superposition{}, fmt.Errorf("Superposition requires point "+
			"sets of equal length, but the lengths given are %d and %d.",
			len(src), len(dst))
	}
	if len(src) < 3 {
		return Superposition{}, ErrTooFewPoints
	}

	var csrc, cdst r3.Vector
	if translate {
		csrc, cdst = Centroid(src), Centroid(dst)
	}

	// H = (src^T)dst over centered coordinates.
	var h [9]float64
	for i := range src {
		p, q := src[i].Sub(csrc), dst[i].Sub(cdst)
		ps, qs := [3]float64{p.X, p.Y, p.Z}, [3]float64{q.X, q.Y, q.Z}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				h[r*3+c] += ps[r] * qs[c]
			}
		}
	}

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(3, 3, h[:]), mat.SVDFull) {
		return Superposition{}, fmt.Errorf("SVD of the covariance matrix " +
			"did not converge.")
	}
	vals := svd.Values(nil)
	if vals[0] == 0 || vals[1] < degenerateRatio*vals[0] {
		return Superposition{}, ErrDegenerate
	}

	var u, v, rot mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	rot.Mul(&v, u.T())

	// Correct an improper rotation. Without this, a mirror image of a chiral
	// point set can fit with a spuriously low RMSD.
	if mat.Det(&rot) < 0 {
		for i := 0; i < 3; i++ {
			v.Set(i, 2, -v.At(i, 2))
		}
		rot.Mul(&v, u.T())
	}

	var sup Superposition
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sup.Rotation[r*3+c] = rot.At(r, c)
		}
	}
	if translate {
		sup.Translation = cdst.Sub(sup.Apply(csrc))
	}

	var sum float64
	for i := range src {
		d := sup.Apply(src[i]).Sub(dst[i])
		sum += d.Dot(d)
	}
	sup.RMSD = math.Sqrt(sum / float64(len(src)))
	return sup, nil
}

// RMSD returns the root-mean-square deviation between two paired point sets
// without superposing them first. It panics if the lengths differ.
func RMSD(a, b []r3.Vector) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("Computing the RMSD of two point sets requires "+
			"that they have equal length. But the lengths given are %d and %d.",
			len(a), len(b)))
	}
	if len(a) == 0 {
		return 0
	}
	var sum float64
	for i := range a {
		d := a[i].Sub(b[i])
		sum += d.Dot(d)
	}
	return math.Sqrt(sum / float64(len(a)))
}

// Centroid calculates the average position of a set of points.
func Centroid(points []r3.Vector) r3.Vector {
	var c r3.Vector
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(points)))
}
