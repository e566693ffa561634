package util

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteJSON writes v as indented JSON followed by a new line.
func WriteJSON(w io.Writer, v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	Assert(err, "Could not encode JSON")
	_, err = w.Write(append(b, '\n'))
	Assert(err, "Could not write JSON")
}

// RecursiveFiles returns every PDB file (".pdb" or ".pdb.gz") under dir.
func RecursiveFiles(dir string) []string {
	files := make([]string, 0)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".pdb") || strings.HasSuffix(path, ".pdb.gz") {
			files = append(files, path)
		}
		return nil
	})
	Assert(err, "Could not read directory '%s'", dir)
	return files
}

// PDBFiles expands every directory argument to the PDB files under it.
func PDBFiles(args []string) []string {
	files := make([]string, 0, len(args))
	for _, fordir := range args {
		if IsDir(fordir) {
			files = append(files, RecursiveFiles(fordir)...)
		} else {
			files = append(files, fordir)
		}
	}
	return files
}
