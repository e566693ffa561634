package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/seq"
)

// FromPDBDir builds a library from a directory of idealized base pair PDB
// files. Each file must be named "<class>_<anything>.pdb" (or ".pdb.gz"),
// e.g., "cWW_GC.pdb", and contain exactly two nucleotide residues. The
// template's sequence is read from the residues in file order, and only ring
// atoms are kept.
func FromPDBDir(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(name, ".pdb") || strings.HasSuffix(name, ".pdb.gz") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	lib := NewLibrary(filepath.Base(dir))
	for _, name := range names {
		class := strings.SplitN(name, "_", 2)[0]
		if class == name {
			return nil, fmt.Errorf("Template file '%s' is not named "+
				"'<class>_<name>.pdb'.", name)
		}
		entry, err := pdb.ReadPDB(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("Could not read template '%s': %w",
				name, err)
		}
		t, err := FromEntry(entry, class)
		if err != nil {
			return nil, err
		}
		if err := lib.Add(t); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// FromEntry builds a template of the given class from a PDB entry with
// exactly two residues.
func FromEntry(entry *pdb.Entry, class string) (*Template, error) {
	if len(entry.Order) != 2 {
		return nil, fmt.Errorf("Template '%s' has %d nucleotide residues; "+
			"expected 2.", entry.Path, len(entry.Order))
	}
	r1 := entry.Residues[entry.Order[0]]
	r2 := entry.Residues[entry.Order[1]]
	return &Template{
		Sequence: string([]byte{r1.Base, r2.Base}),
		Class:    class,
		Residue1: ringCoords(r1),
		Residue2: ringCoords(r2),
	}, nil
}

func ringCoords(res *pdb.Residue) map[string]r3.Vector {
	ring := seq.RingAtoms(res.Base)
	coords := make(map[string]r3.Vector, len(ring))
	for _, name := range ring {
		if v, ok := res.Atom(name); ok {
			coords[name] = v
		}
	}
	return coords
}
