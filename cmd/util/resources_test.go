package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHBondsPath(t *testing.T) {
	tests := []struct {
		pdb, suffix, want string
	}{
		{"data/1ffk.pdb", ".hbonds", "data/1ffk.hbonds"},
		{"data/1ffk.pdb.gz", ".hbonds", "data/1ffk.hbonds"},
		{"1ffk.ent", ".hb.txt", "1ffk.hb.txt"},
	}
	for _, tt := range tests {
		if got := HBondsPath(tt.pdb, tt.suffix); got != tt.want {
			t.Errorf("HBondsPath(%s, %s) = %s, want %s",
				tt.pdb, tt.suffix, got, tt.want)
		}
	}
}

func TestReadStructure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join("..", "..", "template", "testdata", "ideal", "cWW_GC.pdb")
	pdbPath := filepath.Join(dir, "gc.pdb")
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pdbPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	// Without a bond file, the structure is still read.
	hbPath := HBondsPath(pdbPath, ".hbonds")
	s, err := ReadStructure(pdbPath, hbPath)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "gc.pdb" || len(s.Residues) != 2 || len(s.HBonds) != 0 {
		t.Errorf("read %s with %d residues and %d bonded pairs",
			s.Name, len(s.Residues), len(s.HBonds))
	}

	bonds := "A.1 B.1 N1 N3 2.9\nA.1 B.1 N2 O2 2.8 base_base\n"
	if err := os.WriteFile(hbPath, []byte(bonds), 0644); err != nil {
		t.Fatal(err)
	}
	s, err = ReadStructure(pdbPath, hbPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.HBonds.Between("B.1", "A.1")); got != 2 {
		t.Errorf("read %d bonds between A.1 and B.1, want 2", got)
	}

	if err := os.WriteFile(hbPath, []byte("A.1 B.1 N1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadStructure(pdbPath, hbPath); err == nil {
		t.Errorf("malformed bond file was accepted")
	}
	if _, err := ReadStructure(filepath.Join(dir, "none.pdb"), hbPath); err == nil {
		t.Errorf("missing PDB file was accepted")
	}
}

func TestPDBFiles(t *testing.T) {
	dir := filepath.Join("..", "..", "template", "testdata")
	files := PDBFiles([]string{dir, "other.pdb"})
	if len(files) != 4 || files[len(files)-1] != "other.pdb" {
		t.Errorf("unexpected files %v", files)
	}
}
