package pair

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/TuftsBCB/basepair/hbond"
	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/template"
)

type idealAtom struct {
	name    string
	x, y, z float64
}

// Base coordinates in the standard reference frame of Olson et al. (2001).
// A Watson-Crick partner is obtained by rotating 180 degrees about the x
// axis.
var idealBases = map[string][]idealAtom{
	"G": {
		{"C1'", -2.477, 5.399, 0.000}, {"N9", -1.289, 4.551, 0.000},
		{"C8", 0.023, 4.962, 0.000}, {"N7", 0.870, 3.969, 0.000},
		{"C5", 0.071, 2.833, 0.000}, {"C6", 0.424, 1.460, 0.000},
		{"O6", 1.554, 0.955, 0.000}, {"N1", -0.700, 0.641, 0.000},
		{"C2", -1.999, 1.087, 0.000}, {"N2", -2.949, 0.139, -0.001},
		{"N3", -2.342, 2.364, 0.001}, {"C4", -1.265, 3.177, 0.000},
	},
	"A": {
		{"C1'", -2.479, 5.346, 0.000}, {"N9", -1.291, 4.498, 0.000},
		{"C8", 0.024, 4.897, 0.000}, {"N7", 0.877, 3.902, 0.000},
		{"C5", 0.071, 2.771, 0.000}, {"C6", 0.369, 1.398, 0.000},
		{"N6", 1.611, 0.909, 0.000}, {"N1", -0.668, 0.532, 0.000},
		{"C2", -1.912, 1.023, 0.000}, {"N3", -2.320, 2.290, 0.000},
		{"C4", -1.267, 3.124, 0.000},
	},
	"C": {
		{"C1'", -2.477, 5.402, 0.000}, {"N1", -1.285, 4.542, 0.000},
		{"C2", -1.472, 3.158, 0.000}, {"O2", -2.628, 2.709, 0.001},
		{"N3", -0.391, 2.344, 0.000}, {"C4", 0.837, 2.868, 0.000},
		{"N4", 1.875, 2.027, 0.001}, {"C5", 1.056, 4.275, 0.000},
		{"C6", -0.023, 5.068, 0.000},
	},
	"U": {
		{"C1'", -2.481, 5.354, 0.000}, {"N1", -1.284, 4.500, 0.000},
		{"C2", -1.462, 3.135, 0.000}, {"O2", -2.562, 2.608, 0.000},
		{"N3", -0.298, 2.407, 0.000}, {"C4", 0.994, 2.897, 0.000},
		{"O4", 1.944, 2.119, 0.000}, {"C5", 1.106, 4.338, 0.000},
		{"C6", -0.024, 5.057, 0.000},
	},
}

type transform func(r3.Vector) r3.Vector

func identity(v r3.Vector) r3.Vector { return v }

// partner maps a base in the standard frame onto the position of its
// Watson-Crick partner.
func partner(v r3.Vector) r3.Vector {
	return r3.Vector{X: v.X, Y: -v.Y, Z: -v.Z}
}

func then(fs ...transform) transform {
	return func(v r3.Vector) r3.Vector {
		for _, f := range fs {
			v = f(v)
		}
		return v
	}
}

func shift(d r3.Vector) transform {
	return func(v r3.Vector) r3.Vector { return v.Add(d) }
}

// rotate returns a rotation of angle degrees about axis through the origin.
func rotate(axis r3.Vector, angle float64) transform {
	axis = axis.Normalize()
	rad := angle * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return func(v r3.Vector) r3.Vector {
		// Rodrigues' rotation formula.
		return v.Mul(c).Add(axis.Cross(v).Mul(s)).
			Add(axis.Mul(axis.Dot(v) * (1 - c)))
	}
}

// residue builds a residue of the given base with every atom moved by f.
// Atoms named in drop are left out.
func residue(t *testing.T, id, base string, f transform,
	drop ...string) *pdb.Residue {

	skip := map[string]bool{}
	for _, name := range drop {
		skip[name] = true
	}
	var atoms []pdb.Atom
	for _, a := range idealBases[base] {
		if skip[a.name] {
			continue
		}
		v := r3.Vector{X: a.x, Y: a.y, Z: a.z}
		atoms = append(atoms, pdb.Atom{Name: a.name, Coords: f(v)})
	}
	res, err := pdb.NewResidue(id, base, atoms)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func residueMap(rs ...*pdb.Residue) map[string]*pdb.Residue {
	m := make(map[string]*pdb.Residue, len(rs))
	for _, r := range rs {
		m[r.ID] = r
	}
	return m
}

// watsonCrickLibrary holds ideal cWW templates for GC and AU.
func watsonCrickLibrary(t *testing.T) *template.Library {
	lib := template.NewLibrary("test")
	for _, s := range []string{"GC", "AU"} {
		r1 := residue(t, "T.1", s[0:1], identity)
		r2 := residue(t, "T.2", s[1:2], partner)
		entry := &pdb.Entry{
			Path:     s,
			Residues: residueMap(r1, r2),
			Order:    []string{r1.ID, r2.ID},
		}
		tmpl, err := template.FromEntry(entry, "cWW")
		if err != nil {
			t.Fatal(err)
		}
		if err := lib.Add(tmpl); err != nil {
			t.Fatal(err)
		}
	}
	return lib
}

func bb(donor, acceptor string) hbond.HBond {
	return hbond.HBond{
		Donor: donor, Acceptor: acceptor, Distance: 2.9,
		Context: hbond.BaseBase,
	}
}

var gcBonds = []hbond.HBond{bb("N1", "N3"), bb("N2", "O2"), bb("N4", "O6")}
var auBonds = []hbond.HBond{bb("N6", "O4"), bb("N3", "N1")}
