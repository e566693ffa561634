package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/TuftsBCB/basepair/config"
	"github.com/TuftsBCB/basepair/hbond"
	"github.com/TuftsBCB/basepair/pair"
	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/template"
)

// TemplateLibrary opens a library written by 'basepair templates', or builds
// one from a directory of PDB files.
func TemplateLibrary(path string) *template.Library {
	if len(path) == 0 {
		Fatalf("A template library is required (see --templates).")
	}
	if IsDir(path) {
		lib, err := template.FromPDBDir(path)
		Assert(err, "Could not build templates from '%s'", path)
		return lib
	}
	f := OpenFile(path)
	defer f.Close()

	lib, err := template.Open(f)
	Assert(err, "Could not GOB decode template library '%s'", path)
	return lib
}

func TemplateLibraryWrite(path string, lib *template.Library) {
	f := CreateFile(path)
	defer f.Close()
	Assert(lib.Save(f), "Could not GOB encode template library")
}

// HBondsPath returns the hydrogen bond file for a PDB file: the PDB file
// name with its ".pdb" or ".pdb.gz" extension replaced by suffix.
func HBondsPath(pdbPath, suffix string) string {
	base := strings.TrimSuffix(pdbPath, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + suffix
}

// ReadStructure reads a PDB file and its hydrogen bonds. A missing bond file
// is only a warning, since the structure can still be searched for
// candidates; none of them will be valid though.
func ReadStructure(pdbPath, hbondsPath string) (pair.Structure, error) {
	entry, err := pdb.ReadPDB(pdbPath)
	if err != nil {
		return pair.Structure{}, fmt.Errorf("Could not open PDB file "+
			"'%s': %w", pdbPath, err)
	}
	s := pair.Structure{
		Name:     filepath.Base(pdbPath),
		Residues: entry.Residues,
		HBonds:   make(hbond.List),
	}
	if !Exists(hbondsPath) {
		Warnf("No hydrogen bonds for '%s' ('%s' does not exist).",
			pdbPath, hbondsPath)
		return s, nil
	}

	f, err := os.Open(hbondsPath)
	if err != nil {
		return pair.Structure{}, err
	}
	defer f.Close()
	if s.HBonds, err = hbond.ReadList(f); err != nil {
		return pair.Structure{}, fmt.Errorf("Could not read hydrogen bonds "+
			"'%s': %w", hbondsPath, err)
	}
	return s, nil
}

func StructureRead(pdbPath, hbondsPath string) pair.Structure {
	s, err := ReadStructure(pdbPath, hbondsPath)
	Assert(err)
	return s
}

// Config loads the settings file named by --settings, environment variables
// and the flags given.
func Config(flags *pflag.FlagSet) pair.Config {
	cfg, err := config.Load(FlagSettings, flags)
	Assert(err, "Could not load settings")
	return cfg
}
