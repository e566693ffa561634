package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/TuftsBCB/basepair/seq"
)

// Atom is a single named atom with its 3 dimensional coordinates.
type Atom struct {
	Name   string
	Coords r3.Vector
}

// Residue is a nucleotide residue. Base is the single letter code of the
// parent nucleotide (modified residues are mapped to their parent by
// NewResidue), and Atoms is keyed by atom name.
type Residue struct {
	ID    string
	Name  string
	Base  byte
	Atoms map[string]Atom
}

// NewResidue builds a residue from its identifier, residue name and atoms.
// An error is returned if the residue name does not correspond to a known
// nucleotide, or if two atoms share a name.
func NewResidue(id, name string, atoms []Atom) (*Residue, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("Residue '%s' has an empty identifier.", name)
	}
	base, ok := seq.ParentBase(name)
	if !ok {
		return nil, fmt.Errorf("The residue '%s' (%s) is not a nucleotide.",
			name, id)
	}
	res := &Residue{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Base:  base,
		Atoms: make(map[string]Atom, len(atoms)),
	}
	for _, atom := range atoms {
		if _, ok := res.Atoms[atom.Name]; ok {
			return nil, fmt.Errorf("The residue %s has more than one atom "+
				"named '%s'.", id, atom.Name)
		}
		res.Atoms[atom.Name] = atom
	}
	return res, nil
}

// Atom returns the coordinates of the atom with the given name, and whether
// that atom exists in the residue.
func (r *Residue) Atom(name string) (r3.Vector, bool) {
	atom, ok := r.Atoms[name]
	return atom.Coords, ok
}

// String returns the identifier and residue name, e.g., "A.12 G".
func (r *Residue) String() string {
	return fmt.Sprintf("%s %s", r.ID, r.Name)
}

// Entry represents the nucleotide residues of the first model in a PDB file.
// Order lists the residue identifiers in the order they appear in the file.
type Entry struct {
	Path     string
	Residues map[string]*Residue
	Order    []string

	// pending collects atoms per residue while reading.
	pending map[string]*pendingResidue
}

type pendingResidue struct {
	name  string
	atoms []Atom
}

// ReadPDB creates a new PDB Entry from a file. If the file cannot be read, or
// there is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func ReadPDB(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f

	// If the file is gzipped, use the gzip decompressor.
	if path.Ext(fileName) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	return Read(reader, fileName)
}

// Read parses ATOM and HETATM records of nucleotide residues from the reader.
// Only the first model is read. Alternate locations other than the first are
// skipped. Records for residues that are not nucleotides are ignored.
func Read(r io.Reader, name string) (*Entry, error) {
	entry := &Entry{
		Path:     name,
		Residues: make(map[string]*Residue, 100),
		pending:  make(map[string]*pendingResidue, 100),
	}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}

		// The record name is always in the first six columns.
		record := strings.TrimSpace(line[0:6])
		if record == "ENDMDL" {
			break
		}
		if record != "ATOM" && record != "HETATM" {
			continue
		}
		if err := entry.parseAtom(line); err != nil {
			return nil, fmt.Errorf("%s:%d: %s", name, lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, id := range entry.Order {
		p := entry.pending[id]
		res, err := NewResidue(id, p.name, p.atoms)
		if err != nil {
			return nil, err
		}
		entry.Residues[id] = res
	}
	entry.pending = nil
	return entry, nil
}

// parseAtom loads the atom name, residue and coordinates from a fixed column
// ATOM or HETATM record. Records whose residue name is not a nucleotide are
// skipped without error.
func (e *Entry) parseAtom(line string) error {
	if len(line) < 54 {
		return fmt.Errorf("ATOM record has only %d columns", len(line))
	}

	// Residue name is in columns 18-20, but some files use 21 as well.
	resName := strings.TrimSpace(line[17:21])
	if _, ok := seq.ParentBase(resName); !ok {
		return nil
	}

	// Only the first alternate location is kept.
	if alt := line[16]; alt != ' ' && alt != 'A' && alt != '1' {
		return nil
	}

	atomName := strings.TrimSpace(line[12:16])
	atomName = strings.Replace(atomName, "*", "'", -1)

	var coords [3]float64
	for i := 0; i < 3; i++ {
		field := strings.TrimSpace(line[30+8*i : 38+8*i])
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("could not parse coordinate '%s': %s", field, err)
		}
		coords[i] = f
	}

	id := ResidueID(line[21], strings.TrimSpace(line[22:26]), line[26])
	p, ok := e.pending[id]
	if !ok {
		p = &pendingResidue{name: resName}
		e.pending[id] = p
		e.Order = append(e.Order, id)
	}
	p.atoms = append(p.atoms, Atom{
		Name:   atomName,
		Coords: r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]},
	})
	return nil
}

// ResidueID builds the identifier used for residues in this package from a
// chain identifier, a residue sequence number and an insertion code. e.g.,
// chain 'A', number "12" and no insertion code gives "A.12".
func ResidueID(chain byte, num string, icode byte) string {
	if chain == ' ' {
		chain = '_'
	}
	id := fmt.Sprintf("%c.%s", chain, num)
	if icode != ' ' && icode != 0 {
		id += string(icode)
	}
	return id
}

// String returns one line per residue in file order.
func (e *Entry) String() string {
	lines := make([]string, 0, len(e.Order))
	for _, id := range e.Order {
		lines = append(lines, e.Residues[id].String())
	}
	return strings.Join(lines, "\n")
}

// Sequence returns the single letter sequence of the entry's residues in
// file order.
func (e *Entry) Sequence() string {
	bs := make([]byte, len(e.Order))
	for i, id := range e.Order {
		bs[i] = e.Residues[id].Base
	}
	return string(bs)
}

// SortedIDs returns the residue identifiers of a residue map in lexical
// order. It is used wherever iteration order must be reproducible.
func SortedIDs(residues map[string]*Residue) []string {
	ids := make([]string, 0, len(residues))
	for id := range residues {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
