/*
Package template provides the idealized base pair geometries that observed
pairs are superposed onto. A Template holds the ring atom coordinates of both
residues of one (sequence, Leontis-Westhof class) combination. A Library is
the in-memory Registry of templates; it can be saved to and opened from a gob
file, or built from a directory of idealized PDB files.

A Library is never modified after it is loaded, so it can be shared by any
number of goroutines.
*/
package template

import (
	"encoding/gob"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/TuftsBCB/basepair/seq"
)

// Template is the idealized geometry of one base pair class for one
// sequence. Residue1 holds the ring atoms of the first base of Sequence and
// Residue2 those of the second.
type Template struct {
	Sequence string
	Class    string
	Residue1 map[string]r3.Vector
	Residue2 map[string]r3.Vector
}

// String returns the class and sequence with the number of atoms per residue.
func (t *Template) String() string {
	return fmt.Sprintf("%s %s (%d, %d)",
		t.Class, t.Sequence, len(t.Residue1), len(t.Residue2))
}

// Key identifies a template.
type Key struct {
	Sequence string
	Class    string
}

// Registry is anything that can find the template for a normalized two
// letter sequence and a class.
type Registry interface {
	Template(sequence, class string) (*Template, bool)
}

// Library is a Registry backed by a map.
type Library struct {
	Ident     string
	Templates map[Key]*Template
}

// NewLibrary initializes an empty template library with the given name.
func NewLibrary(name string) *Library {
	return &Library{
		Ident:     name,
		Templates: make(map[Key]*Template),
	}
}

// Add adds a template to the library. The template's sequence is normalized
// (e.g., T becomes U). It is an error to add a template without atoms for
// both residues, with a sequence that isn't two letters, or with a
// sequence/class already in the library.
func (lib *Library) Add(t *Template) error {
	if len(t.Sequence) != 2 {
		return fmt.Errorf("Template %s has sequence '%s'; expected two "+
			"letters.", t.Class, t.Sequence)
	}
	if len(t.Class) == 0 {
		return fmt.Errorf("Template with sequence %s has no class.",
			t.Sequence)
	}
	if len(t.Residue1) == 0 || len(t.Residue2) == 0 {
		return fmt.Errorf("Template %s %s is missing atoms for one of its "+
			"residues.", t.Class, t.Sequence)
	}

	t.Sequence = seq.NormalizePair(t.Sequence)
	key := Key{t.Sequence, t.Class}
	if _, ok := lib.Templates[key]; ok {
		return fmt.Errorf("Template %s %s is already in library '%s'.",
			t.Class, t.Sequence, lib.Ident)
	}
	lib.Templates[key] = t
	return nil
}

// Template returns the template for the sequence and class given. The
// sequence is normalized before lookup.
func (lib *Library) Template(sequence, class string) (*Template, bool) {
	t, ok := lib.Templates[Key{seq.NormalizePair(sequence), class}]
	return t, ok
}

// Size returns the number of templates in the library.
func (lib *Library) Size() int {
	return len(lib.Templates)
}

// Keys returns the keys of every template, sorted by class then sequence.
func (lib *Library) Keys() []Key {
	keys := make([]Key, 0, len(lib.Templates))
	for k := range lib.Templates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Class != keys[j].Class {
			return keys[i].Class < keys[j].Class
		}
		return keys[i].Sequence < keys[j].Sequence
	})
	return keys
}

// String returns the name of the library and the templates it holds.
func (lib *Library) String() string {
	lines := []string{fmt.Sprintf("%s (%d templates)", lib.Ident, lib.Size())}
	for _, k := range lib.Keys() {
		lines = append(lines, "\t"+lib.Templates[k].String())
	}
	return strings.Join(lines, "\n")
}

// Save writes the full library to the writer provided.
func (lib *Library) Save(w io.Writer) error {
	return gob.NewEncoder(w).Encode(lib)
}

// Open loads a library written by Save from the reader provided.
func Open(r io.Reader) (*Library, error) {
	var lib *Library
	if err := gob.NewDecoder(r).Decode(&lib); err != nil {
		return nil, err
	}
	if lib.Templates == nil {
		lib.Templates = make(map[Key]*Template)
	}
	return lib, nil
}
